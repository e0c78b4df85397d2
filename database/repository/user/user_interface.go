package userRepo

import (
	"context"

	"servicehub/models"
)

// UserRepository defines read access to platform accounts. The recommendation
// engine never mutates users.
type UserRepository interface {
	// GetByID retrieves a user by its unique ID.
	GetByID(ctx context.Context, id string) (*models.User, error)
}
