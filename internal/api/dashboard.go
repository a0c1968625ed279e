// Package api provides the HTTP handlers for the employee service.
package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// DashboardHandler serves the aggregated dashboard snapshot.
type DashboardHandler struct {
	snapshots SnapshotProvider
	log       *logrus.Logger
}

// NewDashboardHandler creates a DashboardHandler with the given provider and logger.
func NewDashboardHandler(snapshots SnapshotProvider, log *logrus.Logger) *DashboardHandler {
	return &DashboardHandler{snapshots: snapshots, log: log}
}

// Get handles GET /api/v1/dashboard. The snapshot never fails as a whole:
// unavailable pieces degrade to defaults inside the aggregator.
func (h *DashboardHandler) Get(c *gin.Context) {
	snapshot := h.snapshots.Snapshot(c.Request.Context())

	c.JSON(http.StatusOK, snapshot)
}
