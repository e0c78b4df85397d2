package models

import "time"

// Review is the one-to-one feedback record for a completed booking.
// Sub-ratings and the overall rating are 1-5 integers, immutable once created.
type Review struct {
	ID            string    `bson:"id" json:"id"`
	BookingID     string    `bson:"bookingId" json:"bookingId"`
	CustomerID    string    `bson:"customerId" json:"customerId"`
	ProviderID    string    `bson:"providerId" json:"providerId"`
	Quality       int       `bson:"quality" json:"quality"`
	Timeliness    int       `bson:"timeliness" json:"timeliness"`
	Communication int       `bson:"communication" json:"communication"`
	Value         int       `bson:"value" json:"value"`
	OverallRating int       `bson:"overallRating" json:"overallRating"`
	CreatedAt     time.Time `bson:"createdAt" json:"createdAt"`
}
