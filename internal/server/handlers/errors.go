package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/salonops/backoffice/internal/service/auth"
	"github.com/salonops/backoffice/internal/service/incentives"
	"github.com/salonops/backoffice/internal/service/staff"
)

// respondError translates a service error into the HTTP status and body for
// the client. Unclassified errors surface as 500 with the detail kept
// server-side.
func respondError(c *gin.Context, logger *zap.Logger, err error) {
	var missingField *incentives.MissingFieldError
	var invalidDate *incentives.InvalidDateError
	var validation *incentives.ValidationError

	switch {
	case errors.Is(err, auth.ErrUnauthenticated):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required."})
	case errors.Is(err, auth.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"error": "You do not have permission to perform this action."})
	case errors.As(err, &missingField):
		c.JSON(http.StatusBadRequest, gin.H{"message": missingField.Error()})
	case errors.Is(err, incentives.ErrStaffNotFound):
		c.JSON(http.StatusNotFound, gin.H{"message": "Staff not found."})
	case errors.As(err, &invalidDate):
		c.JSON(http.StatusBadRequest, gin.H{"message": invalidDate.Error()})
	case errors.Is(err, staff.ErrNameRequired):
		c.JSON(http.StatusBadRequest, gin.H{"message": staff.ErrNameRequired.Error()})
	case errors.As(err, &validation):
		c.JSON(http.StatusBadRequest, gin.H{"message": "Validation Error", "error": validation.Err.Error()})
	default:
		if logger != nil {
			logger.Error("request failed", zap.Error(err))
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": "An internal server error occurred"})
	}
}
