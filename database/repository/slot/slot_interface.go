package slotRepo

import "context"

// SlotRepository defines read access to provider availability slots.
type SlotRepository interface {
	// CountAvailable counts the provider's open weekly slots.
	CountAvailable(ctx context.Context, providerID string) (int, error)
}
