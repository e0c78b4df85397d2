package reviewRepo

import (
	"context"

	"servicehub/models"
)

// ReviewRepository defines read access to reviews.
type ReviewRepository interface {
	// GetByCustomerAndProvider returns the customer's review of the provider,
	// or nil when none exists.
	GetByCustomerAndProvider(ctx context.Context, customerID, providerID string) (*models.Review, error)
	// CountByProvider counts the total reviews a provider has received.
	CountByProvider(ctx context.Context, providerID string) (int, error)
}
