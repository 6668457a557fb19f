package main

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"

	"github.com/scslimpo/hotspots-backend-go/internal/api"
	"github.com/scslimpo/hotspots-backend-go/internal/config"
	"github.com/scslimpo/hotspots-backend-go/internal/seed"
	"github.com/scslimpo/hotspots-backend-go/internal/store"
)

func main() {
	// .env is optional; real deployments configure through the environment
	if err := godotenv.Load(); err != nil {
		log.Println("[main] no .env file found, using environment")
	}

	cfg := config.Load()

	s := store.New()
	if cfg.SeedDemo {
		s.SeedCameras(seed.Cameras(cfg.SeedLat, cfg.SeedLng))
		s.SeedCooperatives(seed.Cooperatives())
		log.Println("[main] seeded default camera and cooperatives")
	}

	// Periodic reaggregation keeps time-based sub-scores fresh even when
	// no mutation arrives.
	c := cron.New()
	if _, err := c.AddFunc(cfg.RecomputeInterval, func() {
		s.RecomputeHotspots()
	}); err != nil {
		log.Fatalf("[main] invalid recompute interval %q: %v", cfg.RecomputeInterval, err)
	}
	c.Start()
	defer c.Stop()

	router := api.SetupRouter(cfg, s)

	log.Printf("Server starting on port %s", cfg.Port)
	if err := router.Run(cfg.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
