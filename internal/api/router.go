package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/munilab/transit-sampler-go/internal/handler"
	"github.com/munilab/transit-sampler-go/internal/middleware"
)

// SetupRouter wires the diagnostic API routes
func SetupRouter(status *handler.StatusHandler, log *zap.Logger) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.Logger(log))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"message": "transit sampler is running",
		})
	})

	api := r.Group("/api/v1")
	{
		api.GET("/boundary", status.GetBoundary)
		api.GET("/stats", status.GetStats)
		api.GET("/trips/recent", status.GetRecentTrips)
	}

	return r
}
