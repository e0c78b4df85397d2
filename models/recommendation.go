package models

import "time"

// ScoreBreakdown holds the five per-signal sub-scores of a ranked provider,
// rounded to four decimal places in responses.
type ScoreBreakdown struct {
	Rating        float64 `bson:"rating" json:"rating"`
	Collaborative float64 `bson:"collaborative" json:"collaborative"`
	Content       float64 `bson:"content" json:"content"`
	Popularity    float64 `bson:"popularity" json:"popularity"`
	Availability  float64 `bson:"availability" json:"availability"`
}

// RecommendationRecord is a persisted ranking row, keyed by
// (customer, provider, category). Rows for a (customer, category) pair are
// replaced wholesale on every recomputation, never patched.
type RecommendationRecord struct {
	ID           string         `bson:"id" json:"id"`
	CustomerID   string         `bson:"customerId" json:"customerId"`
	ProviderID   string         `bson:"providerId" json:"providerId"`
	Category     string         `bson:"category" json:"category"` // empty string when no category filter was given
	Scores       ScoreBreakdown `bson:"scores" json:"scores"`
	FinalScore   float64        `bson:"finalScore" json:"finalScore"`
	CalculatedAt time.Time      `bson:"calculatedAt" json:"calculatedAt"`
}

// ProviderRecommendation is one entry of a computed provider ranking.
type ProviderRecommendation struct {
	ProviderID      string           `json:"providerId"`
	ProviderName    string           `json:"providerName"`
	FinalScore      float64          `json:"finalScore"`
	Scores          ScoreBreakdown   `json:"scoreBreakdown"`
	AverageRating   float64          `json:"averageRating"`
	TotalReviews    int              `json:"totalReviews"`
	YearsExperience int              `json:"yearsExperience"`
	CompletedJobs   int              `json:"completedJobs"`
	Services        []ServiceSummary `json:"services"` // up to 3 active services in the requested category
}

// ServiceRecommendation is one entry of the service ranking pass. The score
// is raw (unnormalized) and is not persisted.
type ServiceRecommendation struct {
	Service        ServiceSummary `json:"service"`
	Score          float64        `json:"score"`
	ProviderID     string         `json:"providerId"`
	ProviderName   string         `json:"providerName"`
	ProviderRating float64        `json:"providerRating"`
	Category       string         `json:"category"`
}
