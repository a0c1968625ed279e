package api

import (
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/junaidulhaquesheikh208-jpg/ai-employee/internal/vault"
)

// HealthHandler serves the liveness endpoint.
type HealthHandler struct {
	vault     *vault.Vault
	hub       ClientCounter
	log       *logrus.Logger
	version   string
	startTime time.Time
}

// NewHealthHandler creates a HealthHandler with the given dependencies.
func NewHealthHandler(v *vault.Vault, hub ClientCounter, log *logrus.Logger, version string) *HealthHandler {
	return &HealthHandler{
		vault:     v,
		hub:       hub,
		log:       log,
		version:   version,
		startTime: time.Now(),
	}
}

// healthResponse is the JSON payload returned by the liveness endpoint.
type healthResponse struct {
	Status        string  `json:"status"`
	Version       string  `json:"version"`
	Vault         string  `json:"vault"`
	WSClients     int     `json:"ws_clients"`
	UptimeSeconds float64 `json:"uptime_seconds"`
}

// Liveness handles GET /api/v1/health.
func (h *HealthHandler) Liveness(c *gin.Context) {
	resp := healthResponse{
		Status:        "ok",
		Version:       h.version,
		Vault:         "available",
		WSClients:     h.hub.ClientCount(),
		UptimeSeconds: time.Since(h.startTime).Seconds(),
	}

	// Best-effort vault check (non-fatal for liveness).
	if _, err := os.Stat(h.vault.Root()); err != nil {
		h.log.WithError(err).Warn("health: vault root unavailable")
		resp.Vault = "unavailable"
	}

	c.JSON(http.StatusOK, resp)
}
