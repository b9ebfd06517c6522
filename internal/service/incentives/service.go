package incentives

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"github.com/salonops/backoffice/internal/domain/models"
	"github.com/salonops/backoffice/internal/repository/mongodb"
	"github.com/salonops/backoffice/internal/service/auth"
)

// ErrStaffNotFound indicates the staffId does not resolve to a staff member.
var ErrStaffNotFound = errors.New("staff not found")

// MissingFieldError reports a required field that was absent from the input.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("%s is required", e.Field)
}

// InvalidDateError reports a date string that could not be parsed as a
// YYYY-MM-DD calendar day.
type InvalidDateError struct {
	Value string
}

func (e *InvalidDateError) Error() string {
	return fmt.Sprintf("invalid date %q, expected YYYY-MM-DD", e.Value)
}

// ValidationError wraps a write the store rejected on schema grounds.
type ValidationError struct {
	Err error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed: %v", e.Err)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// RecordInput is one metrics submission for a staff member's calendar day.
// All counters are optional and default to zero.
type RecordInput struct {
	StaffID          string  `json:"staffId"`
	Date             string  `json:"date"`
	ServiceSale      float64 `json:"serviceSale"`
	ProductSale      float64 `json:"productSale"`
	CustomerCount    int64   `json:"customerCount"`
	TotalRating      float64 `json:"totalRating"`
	ReviewsWithName  int64   `json:"reviewsWithName"`
	ReviewsWithPhoto int64   `json:"reviewsWithPhoto"`
}

// Service accumulates daily staff performance metrics into per-staff per-day
// aggregates. Every mutation goes through the store's atomic increment
// upsert, so concurrent submissions for the same (staff, day) key compound
// instead of overwriting each other.
type Service struct {
	staff  mongodb.StaffRepository
	sales  mongodb.DailySaleRepository
	logger *zap.Logger
}

// NewService wires a new incentives service instance.
func NewService(staff mongodb.StaffRepository, sales mongodb.DailySaleRepository, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{staff: staff, sales: sales, logger: logger}
}

// RecordDailyMetrics validates the submission and applies it as increments to
// the aggregate keyed by (staff, day). The caller must hold the incentives
// manage permission; nothing is written when any precondition fails. The
// post-update record is returned.
func (s *Service) RecordDailyMetrics(ctx context.Context, actor auth.Actor, input RecordInput) (*models.DailySale, error) {
	if !actor.Authenticated {
		return nil, auth.ErrUnauthenticated
	}
	if !actor.HasPermission(auth.PermissionStaffIncentivesManage) {
		return nil, auth.ErrForbidden
	}

	if input.StaffID == "" {
		return nil, &MissingFieldError{Field: "staffId"}
	}
	if input.Date == "" {
		return nil, &MissingFieldError{Field: "date"}
	}

	staffID, err := primitive.ObjectIDFromHex(input.StaffID)
	if err != nil {
		// An unparseable ID cannot reference an existing staff member.
		return nil, ErrStaffNotFound
	}

	if _, err := s.staff.FindByID(ctx, staffID); err != nil {
		if errors.Is(err, mongodb.ErrNotFound) {
			return nil, ErrStaffNotFound
		}
		return nil, fmt.Errorf("staff lookup: %w", err)
	}

	day, err := ParseDay(input.Date)
	if err != nil {
		return nil, err
	}

	delta := models.DailySaleDelta{
		ServiceSale:      input.ServiceSale,
		ProductSale:      input.ProductSale,
		CustomerCount:    input.CustomerCount,
		TotalRating:      input.TotalRating,
		ReviewsWithName:  input.ReviewsWithName,
		ReviewsWithPhoto: input.ReviewsWithPhoto,
		// Running sum of per-submission contributions, never recomputed
		// from the stored totals.
		ReviewCount: input.ReviewsWithName + input.ReviewsWithPhoto,
	}

	record, err := s.sales.IncrementDaily(ctx, staffID, day, delta)
	if err != nil {
		var writeErr mongo.WriteException
		var cmdErr mongo.CommandError
		if errors.As(err, &writeErr) || errors.As(err, &cmdErr) {
			return nil, &ValidationError{Err: err}
		}
		return nil, fmt.Errorf("increment daily sale: %w", err)
	}

	s.logger.Info("daily metrics recorded",
		zap.String("staff_id", staffID.Hex()),
		zap.Time("date", day))

	return record, nil
}

// ListDailyMetrics returns a staff member's aggregates, optionally bounded by
// an inclusive [from, to] day range. The caller must hold the incentives view
// permission.
func (s *Service) ListDailyMetrics(ctx context.Context, actor auth.Actor, staffID string, from, to string) ([]models.DailySale, error) {
	if !actor.Authenticated {
		return nil, auth.ErrUnauthenticated
	}
	if !actor.HasPermission(auth.PermissionStaffIncentivesView) {
		return nil, auth.ErrForbidden
	}

	if staffID == "" {
		return nil, &MissingFieldError{Field: "staffId"}
	}

	id, err := primitive.ObjectIDFromHex(staffID)
	if err != nil {
		return nil, ErrStaffNotFound
	}

	var fromDay, toDay time.Time
	if from != "" {
		if fromDay, err = ParseDay(from); err != nil {
			return nil, err
		}
	}
	if to != "" {
		if toDay, err = ParseDay(to); err != nil {
			return nil, err
		}
	}

	records, err := s.sales.ListByStaff(ctx, id, fromDay, toDay)
	if err != nil {
		return nil, fmt.Errorf("list daily sales: %w", err)
	}
	return records, nil
}

// ParseDay parses a YYYY-MM-DD string into midnight UTC of that calendar day.
// Months are 1-based in the input. Out-of-range components are normalized the
// way time.Date does it, so "2025-13-01" lands on January 1, 2026.
func ParseDay(value string) (time.Time, error) {
	parts := strings.Split(value, "-")
	if len(parts) != 3 {
		return time.Time{}, &InvalidDateError{Value: value}
	}

	nums := make([]int, 3)
	for i, part := range parts {
		n, err := strconv.Atoi(part)
		if err != nil {
			return time.Time{}, &InvalidDateError{Value: value}
		}
		nums[i] = n
	}

	return time.Date(nums[0], time.Month(nums[1]), nums[2], 0, 0, 0, 0, time.UTC), nil
}
