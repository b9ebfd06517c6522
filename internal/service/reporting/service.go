package reporting

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/salonops/backoffice/internal/domain/models"
	"github.com/salonops/backoffice/internal/repository/mongodb"
	"github.com/salonops/backoffice/internal/repository/sheets"
)

const (
	dateLayout       = "2006-01-02"
	digestSheetRange = "Digest!A:I"
)

// Service rolls daily sale aggregates up into company-wide digests and
// exports them.
type Service struct {
	sales  mongodb.DailySaleRepository
	sheet  sheets.Repository
	logger *zap.Logger
}

// NewService wires a new reporting service instance. The sheet repository may
// be nil, which disables the spreadsheet export.
func NewService(sales mongodb.DailySaleRepository, sheet sheets.Repository, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{sales: sales, sheet: sheet, logger: logger}
}

// GenerateDailyDigest aggregates all staff records for the given day. The day
// is truncated to midnight UTC, matching the bucketing of daily_sales.
func (s *Service) GenerateDailyDigest(ctx context.Context, day time.Time) (*models.DailyDigest, error) {
	day = time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.UTC)

	digest, err := s.sales.AggregateDay(ctx, day)
	if err != nil {
		return nil, fmt.Errorf("generate digest: %w", err)
	}
	return digest, nil
}

// ExportDigest appends the digest as one spreadsheet row. A disabled export
// is not an error.
func (s *Service) ExportDigest(ctx context.Context, digest *models.DailyDigest) error {
	if s.sheet == nil {
		s.logger.Debug("sheet export disabled, skipping digest row")
		return nil
	}

	row := []interface{}{
		digest.Date.Format(dateLayout),
		digest.StaffReporting,
		digest.ServiceSale,
		digest.ProductSale,
		digest.CustomerCount,
		digest.TotalRating,
		digest.ReviewCount,
		digest.ReviewsWithName,
		digest.ReviewsWithPhoto,
	}

	if err := s.sheet.AppendRow(ctx, digestSheetRange, row); err != nil {
		return fmt.Errorf("export digest: %w", err)
	}

	s.logger.Info("digest exported", zap.String("date", digest.Date.Format(dateLayout)))
	return nil
}

// FormatDigest renders the digest as a short text summary for notifications.
func FormatDigest(digest *models.DailyDigest) string {
	avgRating := 0.0
	if digest.ReviewCount > 0 {
		avgRating = digest.TotalRating / float64(digest.ReviewCount)
	}

	return fmt.Sprintf(
		"Daily summary %s: %d staff reported. Service sales %.2f, product sales %.2f, %d customers, %d reviews (avg rating %.2f).",
		digest.Date.Format(dateLayout),
		digest.StaffReporting,
		digest.ServiceSale,
		digest.ProductSale,
		digest.CustomerCount,
		digest.ReviewCount,
		avgRating,
	)
}
