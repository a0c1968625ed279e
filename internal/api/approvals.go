package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/junaidulhaquesheikh208-jpg/ai-employee/internal/models"
)

// ApprovalHandler serves the approval queue endpoints.
type ApprovalHandler struct {
	svc ApprovalService
	log *logrus.Logger
}

// NewApprovalHandler creates an ApprovalHandler with the given service and logger.
func NewApprovalHandler(svc ApprovalService, log *logrus.Logger) *ApprovalHandler {
	return &ApprovalHandler{svc: svc, log: log}
}

// List handles GET /api/v1/approvals.
func (h *ApprovalHandler) List(c *gin.Context) {
	pending, err := h.svc.ListPending(c.Request.Context())
	if err != nil {
		h.log.WithError(err).Error("listing pending approvals")
		respondError(c, http.StatusInternalServerError, ErrCodeInternalError, "internal server error")

		return
	}

	c.JSON(http.StatusOK, gin.H{"approvals": pending, "count": len(pending)})
}

// Decide handles POST /api/v1/approve.
//
// An unknown or already-decided id is a normal outcome of two dashboards
// racing, so it returns 200 with success=false rather than an error status.
func (h *ApprovalHandler) Decide(c *gin.Context) {
	var req models.DecideRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, ErrCodeInvalidRequest, "invalid request body")

		return
	}

	if err := req.Validate(); err != nil {
		respondError(c, http.StatusBadRequest, ErrCodeInvalidRequest, err.Error())

		return
	}

	outcome, err := models.ParseOutcome(req.Outcome)
	if err != nil {
		respondError(c, http.StatusBadRequest, ErrCodeInvalidRequest, err.Error())

		return
	}

	decided, err := h.svc.Decide(c.Request.Context(), req.ID, outcome)
	if err != nil {
		if errors.Is(err, models.ErrApprovalNotFound) {
			c.JSON(http.StatusOK, gin.H{
				"success": false,
				"message": "approval not found",
			})

			return
		}

		h.log.WithError(err).WithField("id", req.ID).Error("recording decision")
		respondError(c, http.StatusInternalServerError, ErrCodeInternalError, "internal server error")

		return
	}

	h.log.WithFields(logrus.Fields{
		"action":  "approval.decide",
		"id":      decided.ID,
		"outcome": string(outcome),
	}).Info("audit")

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": fmt.Sprintf("request %s %s", decided.ID, decided.Status),
	})
}
