package recommendation

import (
	"context"

	"servicehub/models"
	"servicehub/utils"

	"go.uber.org/zap"
)

// neutralAvailability is the fallback when slot data cannot be read: better
// to rank with a neutral assumption than to fail the whole computation.
const neutralAvailability = 0.5

// availabilityScores measures how much of a nominal working week (56 slots)
// a provider has open. Providers whose availability flag is off score 0
// outright. If any slot lookup fails, every candidate falls back to 0.5.
func (s *DefaultRecommendationService) availabilityScores(ctx context.Context, candidates []models.Provider) signal {
	logger := utils.GetLogger()

	raw := make([]float64, len(candidates))
	for i, p := range candidates {
		if !p.Available {
			raw[i] = 0
			continue
		}
		slots, err := s.Slots.CountAvailable(ctx, p.ID)
		if err != nil {
			logger.Warn("availability scoring: slot lookup failed, using neutral default",
				zap.String("providerId", p.ID), zap.Error(err))
			neutral := make([]float64, len(candidates))
			for j := range neutral {
				neutral[j] = neutralAvailability
			}
			return signal{values: neutral, fellBack: true}
		}
		score := float64(slots) / float64(models.MaxWeeklySlots)
		if score > 1.0 {
			score = 1.0
		}
		raw[i] = score
	}

	return signal{values: MinMaxScale(raw)}
}
