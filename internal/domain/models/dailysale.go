package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// DailySale is the per-staff, per-calendar-day performance aggregate stored
// in MongoDB. The pair (Staff, Date) is the natural key; every numeric field
// is a running sum that only grows through increments from submissions.
type DailySale struct {
	ID               primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Staff            primitive.ObjectID `bson:"staff" json:"staff"`
	Date             time.Time          `bson:"date" json:"date"` // always midnight UTC
	ServiceSale      float64            `bson:"serviceSale" json:"serviceSale"`
	ProductSale      float64            `bson:"productSale" json:"productSale"`
	CustomerCount    int64              `bson:"customerCount" json:"customerCount"`
	TotalRating      float64            `bson:"totalRating" json:"totalRating"`
	ReviewsWithName  int64              `bson:"reviewsWithName" json:"reviewsWithName"`
	ReviewsWithPhoto int64              `bson:"reviewsWithPhoto" json:"reviewsWithPhoto"`
	ReviewCount      int64              `bson:"reviewCount" json:"reviewCount"`
	CreatedAt        time.Time          `bson:"createdAt,omitempty" json:"createdAt"`
}

// DailySaleDelta carries the increments contributed by a single submission.
// ReviewCount is derived from the name/photo review counts of the same
// submission, not recomputed from stored totals.
type DailySaleDelta struct {
	ServiceSale      float64
	ProductSale      float64
	CustomerCount    int64
	TotalRating      float64
	ReviewsWithName  int64
	ReviewsWithPhoto int64
	ReviewCount      int64
}
