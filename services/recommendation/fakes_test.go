package recommendation

import (
	"context"
	"errors"
	"time"

	bookingRepo "servicehub/database/repository/booking"
	providerRepo "servicehub/database/repository/provider"
	reviewRepo "servicehub/database/repository/review"
	slotRepo "servicehub/database/repository/slot"
	userRepo "servicehub/database/repository/user"
	"servicehub/models"
)

var errFakeLookup = errors.New("fake lookup failure")

// fixture is a fabricated data snapshot backing the in-memory repositories.
type fixture struct {
	users     map[string]models.User
	providers []models.Provider
	bookings  []models.Booking
	reviews   []models.Review
	slots     map[string]int

	failBookings bool
	failSlots    bool
}

type fakeUserRepo struct{ fx *fixture }

func (r *fakeUserRepo) GetByID(_ context.Context, id string) (*models.User, error) {
	u, ok := r.fx.users[id]
	if !ok {
		return nil, errFakeLookup
	}
	return &u, nil
}

type fakeProviderRepo struct{ fx *fixture }

func (r *fakeProviderRepo) GetByID(_ context.Context, id string) (*models.Provider, error) {
	for _, p := range r.fx.providers {
		if p.ID == id {
			return &p, nil
		}
	}
	return nil, errFakeLookup
}

func (r *fakeProviderRepo) GetCandidates(_ context.Context, _ providerRepo.CandidateCriteria) ([]models.Provider, error) {
	// The engine's selector applies the eligibility rules.
	return append([]models.Provider(nil), r.fx.providers...), nil
}

func (r *fakeProviderRepo) GetAllActive(_ context.Context) ([]models.Provider, error) {
	var out []models.Provider
	for _, p := range r.fx.providers {
		if p.Active {
			out = append(out, p)
		}
	}
	return out, nil
}

type fakeBookingRepo struct{ fx *fixture }

func (r *fakeBookingRepo) GetCompletedByCustomer(_ context.Context, customerID string) ([]models.Booking, error) {
	if r.fx.failBookings {
		return nil, errFakeLookup
	}
	var out []models.Booking
	for _, b := range r.fx.bookings {
		if b.CustomerID == customerID && b.Status == models.BookingCompleted {
			out = append(out, b)
		}
	}
	return out, nil
}

func (r *fakeBookingRepo) GetAllCompleted(_ context.Context) ([]models.Booking, error) {
	if r.fx.failBookings {
		return nil, errFakeLookup
	}
	var out []models.Booking
	for _, b := range r.fx.bookings {
		if b.Status == models.BookingCompleted {
			out = append(out, b)
		}
	}
	return out, nil
}

func (r *fakeBookingRepo) CountCompletedByProviderSince(_ context.Context, providerID string, since time.Time) (int, error) {
	if r.fx.failBookings {
		return 0, errFakeLookup
	}
	count := 0
	for _, b := range r.fx.bookings {
		if b.ProviderID == providerID && b.Status == models.BookingCompleted && !b.CreatedAt.Before(since) {
			count++
		}
	}
	return count, nil
}

type fakeReviewRepo struct{ fx *fixture }

func (r *fakeReviewRepo) GetByCustomerAndProvider(_ context.Context, customerID, providerID string) (*models.Review, error) {
	for _, rev := range r.fx.reviews {
		if rev.CustomerID == customerID && rev.ProviderID == providerID {
			return &rev, nil
		}
	}
	return nil, nil
}

func (r *fakeReviewRepo) CountByProvider(_ context.Context, providerID string) (int, error) {
	count := 0
	for _, rev := range r.fx.reviews {
		if rev.ProviderID == providerID {
			count++
		}
	}
	return count, nil
}

type fakeSlotRepo struct{ fx *fixture }

func (r *fakeSlotRepo) CountAvailable(_ context.Context, providerID string) (int, error) {
	if r.fx.failSlots {
		return 0, errFakeLookup
	}
	return r.fx.slots[providerID], nil
}

// fakeRecommendationRepo mimics the delete-then-insert replacement semantics
// of the Mongo store.
type fakeRecommendationRepo struct {
	stored map[string][]models.RecommendationRecord
}

func newFakeRecommendationRepo() *fakeRecommendationRepo {
	return &fakeRecommendationRepo{stored: make(map[string][]models.RecommendationRecord)}
}

func (r *fakeRecommendationRepo) Replace(_ context.Context, customerID, category string, records []models.RecommendationRecord) error {
	r.stored[customerID+"|"+category] = append([]models.RecommendationRecord(nil), records...)
	return nil
}

func (r *fakeRecommendationRepo) GetByCustomer(_ context.Context, customerID, category string) ([]models.RecommendationRecord, error) {
	return r.stored[customerID+"|"+category], nil
}

// newTestEngine wires a DefaultRecommendationService over the fixture.
func newTestEngine(fx *fixture) (*DefaultRecommendationService, *fakeRecommendationRepo) {
	if fx.users == nil {
		fx.users = make(map[string]models.User)
	}
	if fx.slots == nil {
		fx.slots = make(map[string]int)
	}
	store := newFakeRecommendationRepo()
	engine := &DefaultRecommendationService{
		Users:           &fakeUserRepo{fx: fx},
		Providers:       &fakeProviderRepo{fx: fx},
		Bookings:        &fakeBookingRepo{fx: fx},
		Reviews:         &fakeReviewRepo{fx: fx},
		Slots:           &fakeSlotRepo{fx: fx},
		Recommendations: store,
	}
	return engine, store
}

// Compile-time checks that the fakes satisfy the repository contracts.
var (
	_ userRepo.UserRepository         = (*fakeUserRepo)(nil)
	_ providerRepo.ProviderRepository = (*fakeProviderRepo)(nil)
	_ bookingRepo.BookingRepository   = (*fakeBookingRepo)(nil)
	_ reviewRepo.ReviewRepository     = (*fakeReviewRepo)(nil)
	_ slotRepo.SlotRepository         = (*fakeSlotRepo)(nil)
)

// verifiedProvider builds a scoring-eligible provider with sane defaults.
func verifiedProvider(id string, rating float64, reviews int) models.Provider {
	return models.Provider{
		ID:                 id,
		Name:               "Provider " + id,
		VerificationStatus: models.VerificationVerified,
		Available:          true,
		Active:             true,
		AverageRating:      rating,
		TotalReviews:       reviews,
	}
}
