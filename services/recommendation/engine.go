package recommendation

import (
	"context"
	"sync"
	"time"

	"servicehub/config"
	bookingRepo "servicehub/database/repository/booking"
	providerRepo "servicehub/database/repository/provider"
	recommendationRepo "servicehub/database/repository/recommendation"
	reviewRepo "servicehub/database/repository/review"
	slotRepo "servicehub/database/repository/slot"
	userRepo "servicehub/database/repository/user"
	"servicehub/models"
	"servicehub/utils"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// DefaultProviderLimit and DefaultServiceLimit bound result list sizes when
// neither the caller nor the configuration specifies one.
const (
	DefaultProviderLimit = 10
	DefaultServiceLimit  = 8
)

func defaultProviderLimit() int {
	if n := config.AppConfig.MaxProviderRecommendations; n > 0 {
		return n
	}
	return DefaultProviderLimit
}

func defaultServiceLimit() int {
	if n := config.AppConfig.MaxServiceRecommendations; n > 0 {
		return n
	}
	return DefaultServiceLimit
}

// DefaultRecommendationService implements RecommendationService. It is
// stateless between invocations: every call computes one ranking from the
// current data snapshot through the injected repositories. The only state it
// writes is the recommendation store, which it owns exclusively.
type DefaultRecommendationService struct {
	Users           userRepo.UserRepository
	Providers       providerRepo.ProviderRepository
	Bookings        bookingRepo.BookingRepository
	Reviews         reviewRepo.ReviewRepository
	Slots           slotRepo.SlotRepository
	Recommendations recommendationRepo.RecommendationRepository
	// Cache keeps computed rankings warm for downstream display. Optional;
	// nil disables caching.
	Cache *redis.Client
}

// RecommendProviders computes the hybrid provider ranking for a customer.
//
// Pipeline: candidate selection, then the five signal scorers (independent,
// run concurrently), then weighted combination, ranking and truncation, and
// finally a best-effort replacement of the stored ranking rows. A failure in
// candidate selection yields an empty result; a persistence failure is logged
// and never withholds the computed ranking from the caller.
func (s *DefaultRecommendationService) RecommendProviders(ctx context.Context, req ProviderRequest) Result {
	logger := utils.GetLogger()

	limit := req.Limit
	if limit <= 0 {
		limit = defaultProviderLimit()
	}

	fetched, err := s.Providers.GetCandidates(ctx, providerRepo.CandidateCriteria{
		Category: req.Category,
		Location: req.Location,
	})
	if err != nil {
		logger.Error("recommendation: candidate selection failed",
			zap.String("customerId", req.CustomerID), zap.Error(err))
		return Result{Recommendations: []models.ProviderRecommendation{}}
	}
	candidates := selectCandidates(fetched, req.Category)
	if len(candidates) == 0 {
		return Result{Recommendations: []models.ProviderRecommendation{}}
	}

	// The content scorer degrades gracefully without a customer profile.
	customer, err := s.Users.GetByID(ctx, req.CustomerID)
	if err != nil {
		logger.Warn("recommendation: customer profile lookup failed",
			zap.String("customerId", req.CustomerID), zap.Error(err))
		customer = nil
	}

	// The five signals are independent, so compute them in parallel. Each
	// scorer handles its own lookup failures and falls back to a documented
	// default rather than failing the ranking.
	var signals signalSet
	var wg sync.WaitGroup
	wg.Add(5)
	go func() {
		defer wg.Done()
		signals.rating = ratingScores(candidates)
	}()
	go func() {
		defer wg.Done()
		signals.collaborative = s.collaborativeScores(ctx, req.CustomerID, candidates)
	}()
	go func() {
		defer wg.Done()
		signals.content = contentScores(customer, candidates, req.Category)
	}()
	go func() {
		defer wg.Done()
		signals.popularity = s.popularityScores(ctx, candidates)
	}()
	go func() {
		defer wg.Done()
		signals.availability = s.availabilityScores(ctx, candidates)
	}()
	wg.Wait()

	recommendations := combineAndRank(candidates, signals, req.Category, limit)

	s.persistRanking(ctx, req.CustomerID, req.Category, recommendations)
	cacheRanking(ctx, s.Cache, req.CustomerID, req.Category, recommendations)

	return Result{Recommendations: recommendations, FellBack: signals.fallbacks()}
}

// persistRanking replaces the stored rows for (customer, category) with the
// new ranking. The store is a side-effect cache, not the source of truth, so
// failures are logged and swallowed.
func (s *DefaultRecommendationService) persistRanking(ctx context.Context, customerID, category string, recs []models.ProviderRecommendation) {
	now := time.Now().UTC()
	records := make([]models.RecommendationRecord, 0, len(recs))
	for _, rec := range recs {
		records = append(records, models.RecommendationRecord{
			ID:           uuid.NewString(),
			CustomerID:   customerID,
			ProviderID:   rec.ProviderID,
			Category:     category,
			Scores:       rec.Scores,
			FinalScore:   rec.FinalScore,
			CalculatedAt: now,
		})
	}
	if err := s.Recommendations.Replace(ctx, customerID, category, records); err != nil {
		utils.GetLogger().Error("recommendation: failed to persist ranking",
			zap.String("customerId", customerID),
			zap.String("category", category),
			zap.Error(err))
	}
}

// LatestRanking serves the cached copy of the last computed ranking. It is
// the read side of the background refresh flow: a client enqueues a refresh
// and then reads the result here without triggering another computation or
// store replacement.
func (s *DefaultRecommendationService) LatestRanking(ctx context.Context, customerID, category string) ([]models.ProviderRecommendation, bool) {
	recs := cachedRanking(ctx, s.Cache, customerID, category)
	if recs == nil {
		return nil, false
	}
	return recs, true
}

// StoredRecommendations returns the last persisted ranking for the customer.
func (s *DefaultRecommendationService) StoredRecommendations(ctx context.Context, customerID, category string) ([]models.RecommendationRecord, error) {
	return s.Recommendations.GetByCustomer(ctx, customerID, category)
}
