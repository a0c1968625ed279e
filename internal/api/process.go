package api

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/junaidulhaquesheikh208-jpg/ai-employee/internal/models"
)

// ProcessHandler serves the manual action-dispatch endpoint.
type ProcessHandler struct {
	registry ProcessDispatcher
	log      *logrus.Logger
}

// NewProcessHandler creates a ProcessHandler with the given dispatcher and logger.
func NewProcessHandler(registry ProcessDispatcher, log *logrus.Logger) *ProcessHandler {
	return &ProcessHandler{registry: registry, log: log}
}

// Dispatch handles POST /api/v1/process.
func (h *ProcessHandler) Dispatch(c *gin.Context) {
	var req models.ProcessRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, ErrCodeInvalidRequest, "invalid request body")

		return
	}

	action := strings.TrimSpace(req.Action)
	if action == "" {
		respondError(c, http.StatusBadRequest, ErrCodeInvalidRequest, models.ErrMissingAction.Error())

		return
	}

	result, err := h.registry.Dispatch(c.Request.Context(), action, req.Data)
	if err != nil {
		if errors.Is(err, models.ErrUnknownAction) {
			respondError(c, http.StatusBadRequest, ErrCodeInvalidRequest,
				"unknown action, expected one of: "+strings.Join(h.registry.Actions(), ", "))

			return
		}

		h.log.WithError(err).WithField("process_action", action).Error("dispatching action")
		respondError(c, http.StatusInternalServerError, ErrCodeInternalError, "internal server error")

		return
	}

	h.log.WithFields(logrus.Fields{"action": "process.dispatch", "routine": action}).Info("audit")

	c.JSON(http.StatusOK, gin.H{"success": true, "message": result})
}
