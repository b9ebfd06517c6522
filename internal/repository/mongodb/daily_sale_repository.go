package mongodb

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/salonops/backoffice/internal/domain/models"
)

// DailySaleRepository defines the storage operations for daily sale aggregates.
type DailySaleRepository interface {
	IncrementDaily(ctx context.Context, staffID primitive.ObjectID, day time.Time, delta models.DailySaleDelta) (*models.DailySale, error)
	ListByStaff(ctx context.Context, staffID primitive.ObjectID, from, to time.Time) ([]models.DailySale, error)
	AggregateDay(ctx context.Context, day time.Time) (*models.DailyDigest, error)
}

// MongoDailySaleRepository implements DailySaleRepository against MongoDB.
type MongoDailySaleRepository struct {
	coll *mongo.Collection
}

// NewDailySaleRepository builds the daily_sales repository.
func NewDailySaleRepository(store *Store) *MongoDailySaleRepository {
	return &MongoDailySaleRepository{coll: store.db.Collection(dailySalesCollection)}
}

// IncrementDaily applies the delta to the aggregate keyed by (staffID, day)
// in a single findOneAndUpdate with upsert, so concurrent submissions for the
// same key compound rather than overwrite each other. The document is created
// with zeroed fields on first write and the post-update state is returned.
func (r *MongoDailySaleRepository) IncrementDaily(ctx context.Context, staffID primitive.ObjectID, day time.Time, delta models.DailySaleDelta) (*models.DailySale, error) {
	filter := bson.M{"staff": staffID, "date": day}
	update := bson.M{
		"$inc": bson.M{
			"serviceSale":      delta.ServiceSale,
			"productSale":      delta.ProductSale,
			"customerCount":    delta.CustomerCount,
			"totalRating":      delta.TotalRating,
			"reviewsWithName":  delta.ReviewsWithName,
			"reviewsWithPhoto": delta.ReviewsWithPhoto,
			"reviewCount":      delta.ReviewCount,
		},
		"$setOnInsert": bson.M{"createdAt": time.Now().UTC()},
	}

	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var record models.DailySale
	if err := r.coll.FindOneAndUpdate(ctx, filter, update, opts).Decode(&record); err != nil {
		return nil, fmt.Errorf("increment daily sale: %w", err)
	}

	return &record, nil
}

// ListByStaff returns the aggregates for one staff member, newest first,
// optionally bounded by the inclusive [from, to] day range.
func (r *MongoDailySaleRepository) ListByStaff(ctx context.Context, staffID primitive.ObjectID, from, to time.Time) ([]models.DailySale, error) {
	filter := bson.M{"staff": staffID}

	dateFilter := bson.M{}
	if !from.IsZero() {
		dateFilter["$gte"] = from
	}
	if !to.IsZero() {
		dateFilter["$lte"] = to
	}
	if len(dateFilter) > 0 {
		filter["date"] = dateFilter
	}

	opts := options.Find().SetSort(bson.D{{Key: "date", Value: -1}})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("list daily sales: %w", err)
	}
	defer cursor.Close(ctx)

	var records []models.DailySale
	if err := cursor.All(ctx, &records); err != nil {
		return nil, fmt.Errorf("decode daily sales: %w", err)
	}

	return records, nil
}

// AggregateDay rolls the given day's records up into a company-wide digest.
// ErrNotFound is returned when no staff reported anything that day.
func (r *MongoDailySaleRepository) AggregateDay(ctx context.Context, day time.Time) (*models.DailyDigest, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"date": day}}},
		{{Key: "$group", Value: bson.M{
			"_id":              nil,
			"staffReporting":   bson.M{"$sum": 1},
			"serviceSale":      bson.M{"$sum": "$serviceSale"},
			"productSale":      bson.M{"$sum": "$productSale"},
			"customerCount":    bson.M{"$sum": "$customerCount"},
			"totalRating":      bson.M{"$sum": "$totalRating"},
			"reviewCount":      bson.M{"$sum": "$reviewCount"},
			"reviewsWithName":  bson.M{"$sum": "$reviewsWithName"},
			"reviewsWithPhoto": bson.M{"$sum": "$reviewsWithPhoto"},
		}}},
	}

	cursor, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("aggregate daily sales: %w", err)
	}
	defer cursor.Close(ctx)

	var rows []struct {
		StaffReporting   int64   `bson:"staffReporting"`
		ServiceSale      float64 `bson:"serviceSale"`
		ProductSale      float64 `bson:"productSale"`
		CustomerCount    int64   `bson:"customerCount"`
		TotalRating      float64 `bson:"totalRating"`
		ReviewCount      int64   `bson:"reviewCount"`
		ReviewsWithName  int64   `bson:"reviewsWithName"`
		ReviewsWithPhoto int64   `bson:"reviewsWithPhoto"`
	}
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, fmt.Errorf("decode digest row: %w", err)
	}

	if len(rows) == 0 {
		return nil, fmt.Errorf("digest for %s: %w", day.Format("2006-01-02"), ErrNotFound)
	}

	row := rows[0]
	return &models.DailyDigest{
		Date:             day,
		StaffReporting:   row.StaffReporting,
		ServiceSale:      row.ServiceSale,
		ProductSale:      row.ProductSale,
		CustomerCount:    row.CustomerCount,
		TotalRating:      row.TotalRating,
		ReviewCount:      row.ReviewCount,
		ReviewsWithName:  row.ReviewsWithName,
		ReviewsWithPhoto: row.ReviewsWithPhoto,
	}, nil
}
