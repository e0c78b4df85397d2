package providerRepo

import (
	"context"

	"servicehub/models"
)

// CandidateCriteria narrows the provider population before scoring.
// Location is accepted for interface compatibility but not applied as a
// filter; callers should treat it as informational only.
type CandidateCriteria struct {
	Category string
	Location string
}

// ProviderRepository defines read access to provider profiles.
type ProviderRepository interface {
	// GetByID retrieves a provider by its unique ID.
	GetByID(ctx context.Context, id string) (*models.Provider, error)
	// GetCandidates returns verified, available, active providers matching the
	// criteria. When a category is set, only providers with at least one
	// active service in that category are returned.
	GetCandidates(ctx context.Context, criteria CandidateCriteria) ([]models.Provider, error)
	// GetAllActive returns every active provider, used by the service
	// recommendation pass.
	GetAllActive(ctx context.Context) ([]models.Provider, error)
}
