package reporting

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/salonops/backoffice/internal/domain/models"
)

type fakeSalesRepo struct {
	digest      *models.DailyDigest
	requestedAt time.Time
}

func (f *fakeSalesRepo) IncrementDaily(context.Context, primitive.ObjectID, time.Time, models.DailySaleDelta) (*models.DailySale, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeSalesRepo) ListByStaff(context.Context, primitive.ObjectID, time.Time, time.Time) ([]models.DailySale, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeSalesRepo) AggregateDay(_ context.Context, day time.Time) (*models.DailyDigest, error) {
	f.requestedAt = day
	digest := *f.digest
	digest.Date = day
	return &digest, nil
}

type fakeSheetRepo struct {
	sheetRange string
	row        []interface{}
}

func (f *fakeSheetRepo) AppendRow(_ context.Context, sheetRange string, values []interface{}) error {
	f.sheetRange = sheetRange
	f.row = values
	return nil
}

func sampleDigest() *models.DailyDigest {
	return &models.DailyDigest{
		StaffReporting:   3,
		ServiceSale:      1200.50,
		ProductSale:      300,
		CustomerCount:    42,
		TotalRating:      45,
		ReviewCount:      10,
		ReviewsWithName:  6,
		ReviewsWithPhoto: 4,
	}
}

func TestGenerateDailyDigestTruncatesToUTCMidnight(t *testing.T) {
	sales := &fakeSalesRepo{digest: sampleDigest()}
	svc := NewService(sales, nil, nil)

	afternoon := time.Date(2025, time.July, 9, 15, 30, 12, 0, time.UTC)
	digest, err := svc.GenerateDailyDigest(context.Background(), afternoon)
	require.NoError(t, err)

	want := time.Date(2025, time.July, 9, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, want, sales.requestedAt)
	assert.Equal(t, want, digest.Date)
}

func TestExportDigestAppendsOneRow(t *testing.T) {
	sheet := &fakeSheetRepo{}
	svc := NewService(&fakeSalesRepo{digest: sampleDigest()}, sheet, nil)

	digest := sampleDigest()
	digest.Date = time.Date(2025, time.July, 9, 0, 0, 0, 0, time.UTC)

	require.NoError(t, svc.ExportDigest(context.Background(), digest))

	assert.Equal(t, digestSheetRange, sheet.sheetRange)
	require.Len(t, sheet.row, 9)
	assert.Equal(t, "2025-07-09", sheet.row[0])
	assert.Equal(t, int64(3), sheet.row[1])
}

func TestExportDigestDisabledWithoutSheet(t *testing.T) {
	svc := NewService(&fakeSalesRepo{digest: sampleDigest()}, nil, nil)

	digest := sampleDigest()
	assert.NoError(t, svc.ExportDigest(context.Background(), digest))
}

func TestFormatDigest(t *testing.T) {
	digest := sampleDigest()
	digest.Date = time.Date(2025, time.July, 9, 0, 0, 0, 0, time.UTC)

	text := FormatDigest(digest)

	assert.Contains(t, text, "2025-07-09")
	assert.Contains(t, text, "3 staff reported")
	assert.Contains(t, text, "42 customers")
	assert.Contains(t, text, "avg rating 4.50")
}

func TestFormatDigestHandlesZeroReviews(t *testing.T) {
	digest := sampleDigest()
	digest.ReviewCount = 0
	digest.TotalRating = 0

	text := FormatDigest(digest)
	assert.Contains(t, text, "avg rating 0.00")
}
