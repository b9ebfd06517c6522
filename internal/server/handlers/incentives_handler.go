package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/salonops/backoffice/internal/server/middleware"
	"github.com/salonops/backoffice/internal/service/incentives"
)

// IncentivesHandler handles the daily staff metrics HTTP endpoints.
type IncentivesHandler struct {
	svc    *incentives.Service
	logger *zap.Logger
}

// NewIncentivesHandler constructs the HTTP handler adapter.
func NewIncentivesHandler(svc *incentives.Service, logger *zap.Logger) *IncentivesHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &IncentivesHandler{svc: svc, logger: logger}
}

// Record accepts one metrics submission and applies it to the staff member's
// day bucket.
func (h *IncentivesHandler) Record(c *gin.Context) {
	var input incentives.RecordInput
	if err := c.ShouldBindJSON(&input); err != nil {
		h.logger.Error("malformed incentives payload", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "An internal server error occurred"})
		return
	}

	record, err := h.svc.RecordDailyMetrics(c.Request.Context(), middleware.ActorFromContext(c), input)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Daily data updated successfully", "data": record})
}

// List returns the recorded day buckets for one staff member, optionally
// bounded by from/to query parameters.
func (h *IncentivesHandler) List(c *gin.Context) {
	records, err := h.svc.ListDailyMetrics(
		c.Request.Context(),
		middleware.ActorFromContext(c),
		c.Query("staffId"),
		c.Query("from"),
		c.Query("to"),
	)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": records})
}
