package recommendation

import (
	"context"
	"time"

	"servicehub/models"
	"servicehub/utils"

	"go.uber.org/zap"
)

const (
	popularityWindowDays    = 30
	recentBookingsCap       = 20.0
	reviewCountCap          = 50.0
	popularityBookingWeight = 0.6
	popularityReviewWeight  = 0.4
)

// popularityScores blends a provider's completed bookings over the last 30
// days with its total review count. A lookup failure zeroes only the
// affected candidate's component; the ranking continues.
func (s *DefaultRecommendationService) popularityScores(ctx context.Context, candidates []models.Provider) signal {
	logger := utils.GetLogger()
	since := time.Now().AddDate(0, 0, -popularityWindowDays)

	raw := make([]float64, len(candidates))
	fellBack := false
	for i, p := range candidates {
		var bookingScore, reviewScore float64

		recent, err := s.Bookings.CountCompletedByProviderSince(ctx, p.ID, since)
		if err != nil {
			logger.Warn("popularity scoring: recent booking count failed",
				zap.String("providerId", p.ID), zap.Error(err))
			fellBack = true
		} else {
			bookingScore = float64(recent) / recentBookingsCap
			if bookingScore > 1.0 {
				bookingScore = 1.0
			}
		}

		reviews, err := s.Reviews.CountByProvider(ctx, p.ID)
		if err != nil {
			logger.Warn("popularity scoring: review count failed",
				zap.String("providerId", p.ID), zap.Error(err))
			fellBack = true
		} else {
			reviewScore = float64(reviews) / reviewCountCap
			if reviewScore > 1.0 {
				reviewScore = 1.0
			}
		}

		raw[i] = popularityBookingWeight*bookingScore + popularityReviewWeight*reviewScore
	}

	return signal{values: MinMaxScale(raw), fellBack: fellBack}
}
