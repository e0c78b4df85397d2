package recommendation

import "servicehub/models"

const (
	// reviewConfidenceDivisor and maxConfidenceBonus shape the small bonus a
	// well-reviewed provider earns on top of its raw rating.
	reviewConfidenceDivisor = 20.0
	maxConfidenceBonus      = 0.1
)

// ratingScores computes the direct rating signal. Unlike the other four
// signals it is NOT min-max normalized: a 5.0-rated provider must stay
// numerically distinguishable from a 3.0-rated one regardless of who else is
// in the candidate set, because rating carries 80% of the final weight.
func ratingScores(candidates []models.Provider) signal {
	values := make([]float64, len(candidates))
	for i, p := range candidates {
		var score float64
		if p.AverageRating > 0 {
			score = p.AverageRating / 5.0
		}
		bonus := float64(p.TotalReviews) / reviewConfidenceDivisor
		if bonus > maxConfidenceBonus {
			bonus = maxConfidenceBonus
		}
		score += bonus
		if score > 1.0 {
			score = 1.0
		}
		values[i] = score
	}
	return signal{values: values}
}
