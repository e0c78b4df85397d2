package recommendation

import (
	"context"
	"reflect"
	"testing"

	"servicehub/models"
)

func TestRecommendProvidersRatingDominance(t *testing.T) {
	// A 5.0-rated provider with no reviews must outrank a 3.0-rated provider
	// with no reviews: the rating signal is unnormalized and carries 80% of
	// the weight, more than the other four signals can offset combined.
	fx := &fixture{
		users: map[string]models.User{
			"cust": {ID: "cust", Role: models.RoleCustomer, Active: true},
		},
		providers: []models.Provider{
			verifiedProvider("b", 3.0, 0),
			verifiedProvider("a", 5.0, 0),
		},
	}
	engine, _ := newTestEngine(fx)

	result := engine.RecommendProviders(context.Background(), ProviderRequest{CustomerID: "cust"})
	recs := result.Recommendations
	if len(recs) != 2 {
		t.Fatalf("expected 2 recommendations, got %d", len(recs))
	}
	if recs[0].ProviderID != "a" || recs[1].ProviderID != "b" {
		t.Fatalf("expected order [a b], got [%s %s]", recs[0].ProviderID, recs[1].ProviderID)
	}
	if recs[0].Scores.Rating != 1.0 {
		t.Errorf("rating sub-score for a = %v, want 1.0", recs[0].Scores.Rating)
	}
	if recs[1].Scores.Rating != 0.6 {
		t.Errorf("rating sub-score for b = %v, want 0.6", recs[1].Scores.Rating)
	}
	if recs[0].FinalScore <= recs[1].FinalScore {
		t.Errorf("final score of a (%v) must exceed b (%v)", recs[0].FinalScore, recs[1].FinalScore)
	}
}

func TestRecommendProvidersExampleOrdering(t *testing.T) {
	// Provider A: rating 5.0 with 12 reviews. Provider B: rating 3.0 with 2
	// reviews. Customer has no booking history. Expected order [A, B], with
	// A's rating sub-score at the 1.0 cap.
	fx := &fixture{
		users: map[string]models.User{
			"cust": {ID: "cust", Role: models.RoleCustomer, Active: true},
		},
		providers: []models.Provider{
			verifiedProvider("B", 3.0, 2),
			verifiedProvider("A", 5.0, 12),
		},
	}
	engine, _ := newTestEngine(fx)

	recs := engine.RecommendProviders(context.Background(), ProviderRequest{CustomerID: "cust"}).Recommendations
	if len(recs) != 2 || recs[0].ProviderID != "A" {
		t.Fatalf("expected [A B], got %+v", recs)
	}
	if recs[0].Scores.Rating != 1.0 {
		t.Errorf("A rating sub-score = %v, want 1.0", recs[0].Scores.Rating)
	}
	// 3.0/5 plus the 2-review confidence bonus.
	if recs[1].Scores.Rating != 0.7 {
		t.Errorf("B rating sub-score = %v, want 0.7", recs[1].Scores.Rating)
	}
}

func TestRecommendProvidersDeterministic(t *testing.T) {
	fx := &fixture{
		users: map[string]models.User{
			"cust": {ID: "cust", Role: models.RoleCustomer, Active: true, PreferredServices: "cleaning, plumbing"},
		},
		providers: []models.Provider{
			verifiedProvider("p1", 4.2, 8),
			verifiedProvider("p2", 4.2, 8),
			verifiedProvider("p3", 3.1, 2),
		},
		bookings: []models.Booking{
			{ID: "b1", CustomerID: "cust", ProviderID: "p1", Category: "Cleaning", Status: models.BookingCompleted},
			{ID: "b2", CustomerID: "other", ProviderID: "p1", Category: "Cleaning", Status: models.BookingCompleted},
			{ID: "b3", CustomerID: "other", ProviderID: "p3", Category: "Cleaning", Status: models.BookingCompleted},
		},
		slots: map[string]int{"p1": 20, "p2": 40, "p3": 8},
	}
	engine, _ := newTestEngine(fx)

	first := engine.RecommendProviders(context.Background(), ProviderRequest{CustomerID: "cust"})
	second := engine.RecommendProviders(context.Background(), ProviderRequest{CustomerID: "cust"})
	if !reflect.DeepEqual(first, second) {
		t.Errorf("two runs over the same snapshot differ:\nfirst:  %+v\nsecond: %+v", first, second)
	}
}

func TestRecommendProvidersTieBreakByProviderID(t *testing.T) {
	fx := &fixture{
		users: map[string]models.User{
			"cust": {ID: "cust", Role: models.RoleCustomer, Active: true},
		},
		providers: []models.Provider{
			verifiedProvider("zeta", 4.0, 10),
			verifiedProvider("alpha", 4.0, 10),
		},
	}
	engine, _ := newTestEngine(fx)

	recs := engine.RecommendProviders(context.Background(), ProviderRequest{CustomerID: "cust"}).Recommendations
	if recs[0].ProviderID != "alpha" {
		t.Errorf("equal scores must order by provider ID ascending, got %s first", recs[0].ProviderID)
	}
}

func TestRecommendProvidersColdStartStillRanks(t *testing.T) {
	fx := &fixture{
		users: map[string]models.User{
			"fresh": {ID: "fresh", Role: models.RoleCustomer, Active: true},
		},
		providers: []models.Provider{
			verifiedProvider("p1", 4.8, 25),
			verifiedProvider("p2", 4.1, 9),
		},
	}
	engine, _ := newTestEngine(fx)

	recs := engine.RecommendProviders(context.Background(), ProviderRequest{CustomerID: "fresh"}).Recommendations
	if len(recs) == 0 {
		t.Fatal("cold-start customer must still receive a ranking")
	}
	for _, rec := range recs {
		if rec.Scores.Collaborative != 0 {
			t.Errorf("provider %s: cold-start collaborative sub-score = %v, want 0", rec.ProviderID, rec.Scores.Collaborative)
		}
	}
}

func TestRecommendProvidersCategoryFilter(t *testing.T) {
	inCategory := verifiedProvider("in", 4.0, 3)
	inCategory.Services = []models.Service{{ID: "s1", ProviderID: "in", Category: "Plumbing", Title: "Pipes", Active: true}}
	inactiveService := verifiedProvider("inactive", 4.5, 3)
	inactiveService.Services = []models.Service{{ID: "s2", ProviderID: "inactive", Category: "Plumbing", Title: "Pipes", Active: false}}
	otherCategory := verifiedProvider("other", 4.9, 3)
	otherCategory.Services = []models.Service{{ID: "s3", ProviderID: "other", Category: "Cleaning", Title: "Mopping", Active: true}}

	fx := &fixture{
		users: map[string]models.User{
			"cust": {ID: "cust", Role: models.RoleCustomer, Active: true},
		},
		providers: []models.Provider{inCategory, inactiveService, otherCategory},
	}
	engine, _ := newTestEngine(fx)

	recs := engine.RecommendProviders(context.Background(), ProviderRequest{CustomerID: "cust", Category: "Plumbing"}).Recommendations
	if len(recs) != 1 || recs[0].ProviderID != "in" {
		t.Fatalf("expected only provider 'in', got %+v", recs)
	}
	if len(recs[0].Services) != 1 || recs[0].Services[0].Category != "Plumbing" {
		t.Errorf("attached services must be the matching category ones, got %+v", recs[0].Services)
	}
}

func TestRecommendProvidersNoCategoryAttachesNoServices(t *testing.T) {
	// Attached services are the ones matching the requested category. With
	// no category filter there is nothing to match, so the list stays empty
	// even for providers with active services.
	p := verifiedProvider("p1", 4.0, 5)
	p.Services = []models.Service{
		{ID: "s1", ProviderID: "p1", Category: "Cleaning", Title: "Deep Clean", Active: true},
	}
	fx := &fixture{
		users: map[string]models.User{
			"cust": {ID: "cust", Role: models.RoleCustomer, Active: true},
		},
		providers: []models.Provider{p},
	}
	engine, _ := newTestEngine(fx)

	recs := engine.RecommendProviders(context.Background(), ProviderRequest{CustomerID: "cust"}).Recommendations
	if len(recs) != 1 {
		t.Fatalf("expected 1 recommendation, got %d", len(recs))
	}
	if len(recs[0].Services) != 0 {
		t.Errorf("no-category request must attach no services, got %+v", recs[0].Services)
	}
}

func TestRecommendProvidersExcludesIneligible(t *testing.T) {
	pending := verifiedProvider("pending", 5.0, 50)
	pending.VerificationStatus = models.VerificationPending
	unavailable := verifiedProvider("unavailable", 5.0, 50)
	unavailable.Available = false
	inactive := verifiedProvider("inactive", 5.0, 50)
	inactive.Active = false
	ok := verifiedProvider("ok", 2.0, 1)

	fx := &fixture{
		users: map[string]models.User{
			"cust": {ID: "cust", Role: models.RoleCustomer, Active: true},
		},
		providers: []models.Provider{pending, unavailable, inactive, ok},
	}
	engine, _ := newTestEngine(fx)

	recs := engine.RecommendProviders(context.Background(), ProviderRequest{CustomerID: "cust"}).Recommendations
	if len(recs) != 1 || recs[0].ProviderID != "ok" {
		t.Fatalf("expected only the eligible provider, got %+v", recs)
	}
}

func TestRecommendProvidersEmptyCandidates(t *testing.T) {
	fx := &fixture{
		users: map[string]models.User{
			"cust": {ID: "cust", Role: models.RoleCustomer, Active: true},
		},
	}
	engine, store := newTestEngine(fx)

	result := engine.RecommendProviders(context.Background(), ProviderRequest{CustomerID: "cust"})
	if len(result.Recommendations) != 0 {
		t.Fatalf("expected empty result, got %+v", result.Recommendations)
	}
	if len(store.stored) != 0 {
		t.Error("no ranking should be persisted when there are no candidates")
	}
}

func TestRecommendProvidersStoreReplacement(t *testing.T) {
	fx := &fixture{
		users: map[string]models.User{
			"cust": {ID: "cust", Role: models.RoleCustomer, Active: true},
		},
		providers: []models.Provider{
			verifiedProvider("p1", 4.0, 5),
			verifiedProvider("p2", 3.5, 2),
			verifiedProvider("p3", 4.8, 9),
		},
	}
	engine, store := newTestEngine(fx)

	engine.RecommendProviders(context.Background(), ProviderRequest{CustomerID: "cust"})
	// Second run with a smaller candidate pool: the store must hold exactly
	// the second ranking, not the union.
	fx.providers = fx.providers[:2]
	engine.RecommendProviders(context.Background(), ProviderRequest{CustomerID: "cust"})

	stored, err := store.GetByCustomer(context.Background(), "cust", "")
	if err != nil {
		t.Fatal(err)
	}
	if len(stored) != 2 {
		t.Fatalf("stored records = %d, want 2 (full replacement)", len(stored))
	}
	for _, rec := range stored {
		if rec.CustomerID != "cust" || rec.Category != "" {
			t.Errorf("unexpected record key: %+v", rec)
		}
	}
}

func TestRecommendProvidersLimit(t *testing.T) {
	fx := &fixture{
		users: map[string]models.User{
			"cust": {ID: "cust", Role: models.RoleCustomer, Active: true},
		},
	}
	for i := 0; i < 15; i++ {
		fx.providers = append(fx.providers, verifiedProvider(string(rune('a'+i)), 3.0+float64(i)*0.1, i))
	}
	engine, _ := newTestEngine(fx)

	recs := engine.RecommendProviders(context.Background(), ProviderRequest{CustomerID: "cust"}).Recommendations
	if len(recs) != DefaultProviderLimit {
		t.Errorf("default limit: got %d results, want %d", len(recs), DefaultProviderLimit)
	}

	recs = engine.RecommendProviders(context.Background(), ProviderRequest{CustomerID: "cust", Limit: 3}).Recommendations
	if len(recs) != 3 {
		t.Errorf("explicit limit: got %d results, want 3", len(recs))
	}
}

func TestRecommendProvidersAvailabilityFallback(t *testing.T) {
	fx := &fixture{
		users: map[string]models.User{
			"cust": {ID: "cust", Role: models.RoleCustomer, Active: true},
		},
		providers: []models.Provider{
			verifiedProvider("p1", 4.0, 5),
			verifiedProvider("p2", 3.0, 2),
		},
		failSlots: true,
	}
	engine, _ := newTestEngine(fx)

	result := engine.RecommendProviders(context.Background(), ProviderRequest{CustomerID: "cust"})
	if !result.FellBack.Availability {
		t.Fatal("availability fallback marker must be set")
	}
	for _, rec := range result.Recommendations {
		if rec.Scores.Availability != 0.5 {
			t.Errorf("provider %s: availability sub-score = %v, want neutral 0.5", rec.ProviderID, rec.Scores.Availability)
		}
	}
}
