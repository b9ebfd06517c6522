package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/salonops/backoffice/internal/domain/models"
	"github.com/salonops/backoffice/internal/server/middleware"
	"github.com/salonops/backoffice/internal/service/staff"
)

// StaffHandler handles the staff directory HTTP endpoints.
type StaffHandler struct {
	svc    *staff.Service
	logger *zap.Logger
}

// NewStaffHandler constructs the HTTP handler adapter.
func NewStaffHandler(svc *staff.Service, logger *zap.Logger) *StaffHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &StaffHandler{svc: svc, logger: logger}
}

// List returns all staff members.
func (h *StaffHandler) List(c *gin.Context) {
	staffList, err := h.svc.List(c.Request.Context(), middleware.ActorFromContext(c))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": staffList})
}

type createStaffRequest struct {
	Name     string `json:"name"`
	Position string `json:"position"`
}

// Create adds a staff member to the directory.
func (h *StaffHandler) Create(c *gin.Context) {
	var req createStaffRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid request body"})
		return
	}

	created, err := h.svc.Create(c.Request.Context(), middleware.ActorFromContext(c), models.Staff{
		Name:     req.Name,
		Position: req.Position,
		Active:   true,
	})
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"data": created})
}
