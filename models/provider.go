package models

import "time"

// Provider verification statuses.
const (
	VerificationPending   = "pending"
	VerificationVerified  = "verified"
	VerificationSuspended = "suspended"
	VerificationRejected  = "rejected"
)

// Provider holds the provider profile the engine scores against. The average
// rating is recomputed by the review write path whenever a review is created
// or updated; the engine never writes it.
type Provider struct {
	ID                 string    `bson:"id" json:"id"`
	Name               string    `bson:"name" json:"name"`
	VerificationStatus string    `bson:"verificationStatus" json:"verificationStatus"` // pending|verified|suspended|rejected
	Available          bool      `bson:"available" json:"available"`                   // provider-controlled availability flag
	Active             bool      `bson:"active" json:"active"`
	AverageRating      float64   `bson:"averageRating" json:"averageRating"` // 0-5, two decimals, mean of review overall ratings
	TotalReviews       int       `bson:"totalReviews" json:"totalReviews"`
	CompletedJobs      int       `bson:"completedJobs" json:"completedJobs"`
	YearsExperience    int       `bson:"yearsExperience" json:"yearsExperience"`
	Description        string    `bson:"description" json:"description,omitempty"`
	Services           []Service `bson:"services" json:"services,omitempty"`
	CreatedAt          time.Time `bson:"createdAt" json:"createdAt,omitzero"`
	UpdatedAt          time.Time `bson:"updatedAt" json:"updatedAt,omitzero"`
}

// ActiveServicesInCategory returns the provider's active services for the
// given category. An empty category matches every active service.
func (p *Provider) ActiveServicesInCategory(category string) []Service {
	var out []Service
	for _, svc := range p.Services {
		if !svc.Active {
			continue
		}
		if category != "" && svc.Category != category {
			continue
		}
		out = append(out, svc)
	}
	return out
}
