package staff

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/salonops/backoffice/internal/domain/models"
	"github.com/salonops/backoffice/internal/repository/mongodb"
	"github.com/salonops/backoffice/internal/service/auth"
)

// ErrNameRequired indicates a staff record was submitted without a name.
var ErrNameRequired = errors.New("name is required")

// Service exposes the staff directory operations.
type Service struct {
	staff  mongodb.StaffRepository
	logger *zap.Logger
}

// NewService wires a new staff directory service instance.
func NewService(staff mongodb.StaffRepository, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{staff: staff, logger: logger}
}

// List returns all staff members. Requires the staff view permission.
func (s *Service) List(ctx context.Context, actor auth.Actor) ([]models.Staff, error) {
	if !actor.Authenticated {
		return nil, auth.ErrUnauthenticated
	}
	if !actor.HasPermission(auth.PermissionStaffView) {
		return nil, auth.ErrForbidden
	}

	staff, err := s.staff.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list staff: %w", err)
	}
	return staff, nil
}

// Create adds a staff member to the directory. Requires the staff manage
// permission.
func (s *Service) Create(ctx context.Context, actor auth.Actor, input models.Staff) (*models.Staff, error) {
	if !actor.Authenticated {
		return nil, auth.ErrUnauthenticated
	}
	if !actor.HasPermission(auth.PermissionStaffManage) {
		return nil, auth.ErrForbidden
	}

	if strings.TrimSpace(input.Name) == "" {
		return nil, ErrNameRequired
	}

	created, err := s.staff.Create(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("create staff: %w", err)
	}

	s.logger.Info("staff created", zap.String("staff_id", created.ID.Hex()))
	return created, nil
}
