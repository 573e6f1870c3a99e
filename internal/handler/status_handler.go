// Package handler exposes the read-only diagnostic API: the sampling
// boundary and collection progress, for an analyst watching a long run.
package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/munilab/transit-sampler-go/internal/repository"
	"github.com/munilab/transit-sampler-go/internal/sampler"
)

// StatusHandler serves boundary and collection statistics
type StatusHandler struct {
	boundary *sampler.Boundary
	recorder *repository.BufferedRecorder
	log      *zap.Logger
}

// NewStatusHandler creates a new status handler
func NewStatusHandler(boundary *sampler.Boundary, recorder *repository.BufferedRecorder, log *zap.Logger) *StatusHandler {
	return &StatusHandler{boundary: boundary, recorder: recorder, log: log}
}

// GetBoundary returns the sampling polygon as a GeoJSON feature
func (h *StatusHandler) GetBoundary(c *gin.Context) {
	c.JSON(http.StatusOK, h.boundary.GeoJSON())
}

// GetStats returns stored/buffered row counts and sampling geometry figures
func (h *StatusHandler) GetStats(c *gin.Context) {
	stored, err := h.recorder.Count()
	if err != nil {
		h.log.Error("failed to count records", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to count records"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"stored":          stored,
		"buffered":        h.recorder.Len(),
		"boundary_area":   h.boundary.Area(),
		"acceptance_rate": h.boundary.AcceptanceRate(),
	})
}

// GetRecentTrips returns the latest persisted trip records
func (h *StatusHandler) GetRecentTrips(c *gin.Context) {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if err != nil || limit < 1 || limit > 500 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid limit"})
		return
	}

	trips, err := h.recorder.Recent(limit)
	if err != nil {
		h.log.Error("failed to load recent trips", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load trips"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": trips, "count": len(trips)})
}
