package recommendationRepo

import (
	"context"

	"servicehub/models"
)

// RecommendationRepository owns the recommendation_scores collection. The
// engine is its sole writer.
type RecommendationRepository interface {
	// Replace atomically swaps the stored ranking for (customer, category):
	// existing rows are deleted, then the new set is inserted. Concurrent
	// replacements for the same key are serialized.
	Replace(ctx context.Context, customerID, category string, records []models.RecommendationRecord) error
	// GetByCustomer returns the stored ranking rows for (customer, category),
	// ordered by final score descending.
	GetByCustomer(ctx context.Context, customerID, category string) ([]models.RecommendationRecord, error)
}
