package recommendation

import (
	"context"

	"servicehub/models"
)

// ProviderRequest carries the parameters of a provider ranking computation.
// Location is accepted for interface compatibility but is not applied as a
// filter; it is echoed back in response metadata only.
type ProviderRequest struct {
	CustomerID string
	Category   string
	Location   string
	Limit      int // 0 means the default of 10
}

// RecommendationService ranks providers and services for a customer.
//
// RecommendProviders never fails: lookup problems degrade individual signals
// to documented defaults, and a whole-pipeline problem yields an empty list.
// Callers that need to know whether a signal degraded can inspect the
// FellBack markers on the returned Result.
type RecommendationService interface {
	// RecommendProviders computes the hybrid provider ranking for a customer
	// and replaces the stored ranking rows for (customer, category).
	RecommendProviders(ctx context.Context, req ProviderRequest) Result
	// RecommendServices scores un-booked active services for a customer.
	// No persistence side effect.
	RecommendServices(ctx context.Context, customerID string, limit int) []models.ServiceRecommendation
	// LatestRanking returns the most recently computed provider ranking for
	// (customer, category) without recomputing or touching the store. The
	// boolean reports whether a warm copy existed.
	LatestRanking(ctx context.Context, customerID, category string) ([]models.ProviderRecommendation, bool)
	// StoredRecommendations returns the last persisted ranking rows for
	// (customer, category).
	StoredRecommendations(ctx context.Context, customerID, category string) ([]models.RecommendationRecord, error)
}

// Result is a computed provider ranking plus degradation markers per signal.
type Result struct {
	Recommendations []models.ProviderRecommendation
	// FellBack records, per signal, whether the scorer hit a lookup failure
	// and substituted its documented default.
	FellBack Fallbacks
}

// Fallbacks marks which signals degraded to their defaults.
type Fallbacks struct {
	Rating        bool
	Collaborative bool
	Content       bool
	Popularity    bool
	Availability  bool
}
