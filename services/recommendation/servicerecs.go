package recommendation

import (
	"context"
	"sort"
	"strings"

	"servicehub/models"
	"servicehub/utils"

	"go.uber.org/zap"
)

const (
	serviceCategoryWeight     = 0.4
	serviceRatingWeight       = 0.3
	servicePriceWeight        = 0.2
	serviceAvailabilityWeight = 0.1

	// Prices within 20% of the category average count as reasonable.
	priceBandLow  = 0.8
	priceBandHigh = 1.2
)

// RecommendServices scores active services the customer has not yet booked:
// category preference match, provider rating, price reasonableness against
// the category average, and provider availability. Scores stay raw (no
// normalization) and nothing is persisted. Results are cached briefly.
func (s *DefaultRecommendationService) RecommendServices(ctx context.Context, customerID string, limit int) []models.ServiceRecommendation {
	logger := utils.GetLogger()
	if limit <= 0 {
		limit = defaultServiceLimit()
	}

	if cached := cachedServiceRecs(ctx, s.Cache, customerID); cached != nil {
		if len(cached) > limit {
			cached = cached[:limit]
		}
		return cached
	}

	booked := make(map[string]struct{})
	bookings, err := s.Bookings.GetCompletedByCustomer(ctx, customerID)
	if err != nil {
		logger.Error("service recommendation: booking history lookup failed",
			zap.String("customerId", customerID), zap.Error(err))
		return []models.ServiceRecommendation{}
	}
	for _, b := range bookings {
		booked[b.ServiceID] = struct{}{}
	}

	var preferences []string
	if customer, err := s.Users.GetByID(ctx, customerID); err != nil {
		logger.Warn("service recommendation: customer profile lookup failed",
			zap.String("customerId", customerID), zap.Error(err))
	} else {
		preferences = customer.PreferenceTags()
	}

	providers, err := s.Providers.GetAllActive(ctx)
	if err != nil {
		logger.Error("service recommendation: provider lookup failed",
			zap.String("customerId", customerID), zap.Error(err))
		return []models.ServiceRecommendation{}
	}

	type candidate struct {
		service  models.Service
		provider models.Provider
	}
	var candidates []candidate
	categoryTotals := make(map[string]float64)
	categoryCounts := make(map[string]int)
	for _, p := range providers {
		for _, svc := range p.Services {
			if !svc.Active {
				continue
			}
			categoryTotals[svc.Category] += svc.Price
			categoryCounts[svc.Category]++
			if _, already := booked[svc.ID]; already {
				continue
			}
			candidates = append(candidates, candidate{service: svc, provider: p})
		}
	}

	recs := make([]models.ServiceRecommendation, 0, len(candidates))
	for _, c := range candidates {
		var score float64

		if len(preferences) > 0 && tagsContain(preferences, c.service.Category) {
			score += serviceCategoryWeight
		}

		if c.provider.AverageRating > 0 {
			score += (c.provider.AverageRating / 5.0) * serviceRatingWeight
		}

		if count := categoryCounts[c.service.Category]; count > 0 {
			avg := categoryTotals[c.service.Category] / float64(count)
			if avg > 0 {
				ratio := c.service.Price / avg
				if ratio >= priceBandLow && ratio <= priceBandHigh {
					score += servicePriceWeight
				}
			}
		}

		if c.provider.Available {
			score += serviceAvailabilityWeight
		}

		recs = append(recs, models.ServiceRecommendation{
			Service:        c.service.Summary(),
			Score:          round4(score),
			ProviderID:     c.provider.ID,
			ProviderName:   c.provider.Name,
			ProviderRating: c.provider.AverageRating,
			Category:       c.service.Category,
		})
	}

	sort.Slice(recs, func(i, j int) bool {
		if recs[i].Score != recs[j].Score {
			return recs[i].Score > recs[j].Score
		}
		return recs[i].Service.ID < recs[j].Service.ID
	})

	// The cache holds the full scored list; the limit is applied per call
	// so a small-limit request cannot starve a later larger one.
	cacheServiceRecs(ctx, s.Cache, customerID, recs)
	if len(recs) > limit {
		recs = recs[:limit]
	}
	return recs
}

func tagsContain(tags []string, value string) bool {
	needle := strings.ToLower(strings.TrimSpace(value))
	for _, tag := range tags {
		if tag == needle {
			return true
		}
	}
	return false
}
