package config

import (
	"os"
	"strconv"
)

// Config holds runtime settings, all overridable through the environment
type Config struct {
	Port              string
	RateLimit         int    // requests per IP per minute
	RecomputeInterval string // cron spec for the periodic reaggregation
	SeedDemo          bool   // seed the default camera and cooperatives at startup
	SeedLat           float64
	SeedLng           float64
}

// Load reads configuration from the environment with sane defaults
func Load() *Config {
	port := os.Getenv("PORT")
	if port == "" {
		port = ":8080"
	}

	rateLimit := 300
	if v := os.Getenv("RATE_LIMIT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			rateLimit = n
		}
	}

	interval := os.Getenv("RECOMPUTE_INTERVAL")
	if interval == "" {
		interval = "@every 1m"
	}

	seedDemo := true
	if v := os.Getenv("SEED_DEMO"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			seedDemo = b
		}
	}

	// Brasilia city center, where the pilot deployment runs
	seedLat := envFloat("SEED_LAT", -15.7967737)
	seedLng := envFloat("SEED_LNG", -47.8870557)

	return &Config{
		Port:              port,
		RateLimit:         rateLimit,
		RecomputeInterval: interval,
		SeedDemo:          seedDemo,
		SeedLat:           seedLat,
		SeedLng:           seedLng,
	}
}

func envFloat(key string, def float64) float64 {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return def
	}
	return f
}
