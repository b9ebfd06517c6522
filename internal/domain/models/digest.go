package models

import "time"

// DailyDigest is the company-wide rollup of one calendar day's DailySale
// records, produced by the reporting service for export and notification.
type DailyDigest struct {
	Date             time.Time
	StaffReporting   int64
	ServiceSale      float64
	ProductSale      float64
	CustomerCount    int64
	TotalRating      float64
	ReviewCount      int64
	ReviewsWithName  int64
	ReviewsWithPhoto int64
}
