package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/scslimpo/hotspots-backend-go/internal/config"
	"github.com/scslimpo/hotspots-backend-go/internal/handler"
	"github.com/scslimpo/hotspots-backend-go/internal/metrics"
	"github.com/scslimpo/hotspots-backend-go/internal/middleware"
	"github.com/scslimpo/hotspots-backend-go/internal/store"
)

// SetupRouter wires all HTTP routes
func SetupRouter(cfg *config.Config, s *store.Store) *gin.Engine {
	r := gin.Default()

	// CORS middleware
	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PATCH, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	})

	r.Use(middleware.Logger())
	r.Use(middleware.RateLimit(cfg.RateLimit, time.Minute))

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"message": "Hotspots Backend API is running",
		})
	})

	// Prometheus metrics
	r.GET("/metrics", gin.WrapH(metrics.Handler()))

	occurrenceHandler := handler.NewOccurrenceHandler(s)
	detectionHandler := handler.NewDetectionHandler(s)
	hotspotHandler := handler.NewHotspotHandler(s)
	routeHandler := handler.NewRouteHandler(s)
	alertHandler := handler.NewAlertHandler(s)
	cameraHandler := handler.NewCameraHandler(s)
	dashboardHandler := handler.NewDashboardHandler(s)

	api := r.Group("/api/v1")
	{
		occurrences := api.Group("/occurrences")
		{
			occurrences.GET("", occurrenceHandler.List)
			occurrences.POST("", occurrenceHandler.Register)
			occurrences.PATCH("/:id", occurrenceHandler.Edit)
			occurrences.DELETE("/:id", occurrenceHandler.Delete)
			occurrences.PATCH("/:id/status", occurrenceHandler.UpdateStatus)
			occurrences.POST("/:id/finalize", occurrenceHandler.Finalize)
		}

		detections := api.Group("/detections")
		{
			detections.GET("", detectionHandler.List)
			detections.POST("", detectionHandler.Inject)
			detections.POST("/bulk", detectionHandler.InjectBulk)
		}

		hotspots := api.Group("/hotspots")
		{
			hotspots.GET("", hotspotHandler.List)
			hotspots.POST("/recompute", hotspotHandler.Recompute)
		}

		routes := api.Group("/routes")
		{
			routes.GET("", routeHandler.List)
			routes.POST("", routeHandler.Create)
			routes.PATCH("/:id/status", routeHandler.UpdateStatus)
		}

		alerts := api.Group("/alerts")
		{
			alerts.GET("", alertHandler.List)
			alerts.PATCH("/:id/status", alertHandler.UpdateStatus)
		}

		cameras := api.Group("/cameras")
		{
			cameras.GET("", cameraHandler.List)
			cameras.POST("", cameraHandler.Add)
			cameras.DELETE("/:id", cameraHandler.Remove)
		}

		api.GET("/cooperatives", dashboardHandler.Cooperatives)
		api.POST("/demo", dashboardHandler.RunDemo)
		api.GET("/dashboard/metrics", dashboardHandler.Metrics)
	}

	return r
}
