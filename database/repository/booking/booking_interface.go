package bookingRepo

import (
	"context"
	"time"

	"servicehub/models"
)

// BookingRepository defines read access to booking history. Only completed
// bookings carry interaction signal.
type BookingRepository interface {
	// GetCompletedByCustomer returns the customer's completed bookings.
	GetCompletedByCustomer(ctx context.Context, customerID string) ([]models.Booking, error)
	// GetAllCompleted returns every completed booking on the platform. The
	// collaborative scorer groups these by customer in memory.
	GetAllCompleted(ctx context.Context) ([]models.Booking, error)
	// CountCompletedByProviderSince counts a provider's completed bookings
	// created at or after the given time.
	CountCompletedByProviderSince(ctx context.Context, providerID string, since time.Time) (int, error)
}
