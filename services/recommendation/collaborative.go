package recommendation

import (
	"context"
	"sort"

	"servicehub/models"
	"servicehub/utils"

	"go.uber.org/zap"
)

const (
	providerSimilarityWeight = 0.7
	categorySimilarityWeight = 0.3
	neighborhoodSize         = 20
	// defaultNeighborRating is assumed when a neighbor completed a booking
	// with a provider but left no review: mild positive signal rather than a
	// penalty for silence.
	defaultNeighborRating = 0.7
)

// interactions are one customer's completed-booking footprint.
type interactions struct {
	providers  map[string]struct{}
	categories map[string]struct{}
}

// neighbor is a customer similar to the target, with the combined similarity.
type neighbor struct {
	customerID string
	similarity float64
	providers  map[string]struct{}
}

// collaborativeScores scores a candidate higher when customers with a similar
// booking history booked and liked that provider. A customer with no
// completed bookings gets zero for every candidate (cold start, not an
// error). On a lookup failure the whole signal falls back to zeros.
func (s *DefaultRecommendationService) collaborativeScores(ctx context.Context, customerID string, candidates []models.Provider) signal {
	logger := utils.GetLogger()
	zeros := make([]float64, len(candidates))

	mine, err := s.Bookings.GetCompletedByCustomer(ctx, customerID)
	if err != nil {
		logger.Error("collaborative scoring: booking history lookup failed",
			zap.String("customerId", customerID), zap.Error(err))
		return signal{values: zeros, fellBack: true}
	}
	if len(mine) == 0 {
		// Cold start.
		return signal{values: zeros}
	}
	target := collectInteractions(mine)

	all, err := s.Bookings.GetAllCompleted(ctx)
	if err != nil {
		logger.Error("collaborative scoring: completed bookings lookup failed",
			zap.String("customerId", customerID), zap.Error(err))
		return signal{values: zeros, fellBack: true}
	}

	// With no positive-similarity neighbors the raw scores stay zero and the
	// degenerate normalization below maps every candidate to 0.5.
	neighbors := s.findNeighbors(customerID, target, all)

	raw := make([]float64, len(candidates))
	fellBack := false
	for i, candidate := range candidates {
		var weightedSum, weightSum float64
		for _, nb := range neighbors {
			if _, booked := nb.providers[candidate.ID]; !booked {
				continue
			}
			rating := defaultNeighborRating
			review, err := s.Reviews.GetByCustomerAndProvider(ctx, nb.customerID, candidate.ID)
			if err != nil {
				// Keep the booking as mild positive signal and continue.
				fellBack = true
			} else if review != nil {
				rating = float64(review.OverallRating) / 5.0
			}
			weightedSum += nb.similarity * rating
			weightSum += nb.similarity
		}
		if weightSum > 0 {
			raw[i] = weightedSum / weightSum
		}
	}

	return signal{values: MinMaxScale(raw), fellBack: fellBack}
}

// findNeighbors ranks every other customer with completed bookings by
// similarity to the target and keeps the top neighborhood. Ties are broken
// by customer ID so the neighborhood is deterministic.
func (s *DefaultRecommendationService) findNeighbors(customerID string, target interactions, all []models.Booking) []neighbor {
	byCustomer := make(map[string][]models.Booking)
	for _, b := range all {
		if b.CustomerID == customerID {
			continue
		}
		byCustomer[b.CustomerID] = append(byCustomer[b.CustomerID], b)
	}

	var neighbors []neighbor
	for otherID, bookings := range byCustomer {
		other := collectInteractions(bookings)
		sim := providerSimilarityWeight*jaccard(target.providers, other.providers) +
			categorySimilarityWeight*jaccard(target.categories, other.categories)
		if sim > 0 {
			neighbors = append(neighbors, neighbor{
				customerID: otherID,
				similarity: sim,
				providers:  other.providers,
			})
		}
	}

	sort.Slice(neighbors, func(i, j int) bool {
		if neighbors[i].similarity != neighbors[j].similarity {
			return neighbors[i].similarity > neighbors[j].similarity
		}
		return neighbors[i].customerID < neighbors[j].customerID
	})
	if len(neighbors) > neighborhoodSize {
		neighbors = neighbors[:neighborhoodSize]
	}
	return neighbors
}

func collectInteractions(bookings []models.Booking) interactions {
	out := interactions{
		providers:  make(map[string]struct{}),
		categories: make(map[string]struct{}),
	}
	for _, b := range bookings {
		out.providers[b.ProviderID] = struct{}{}
		if b.Category != "" {
			out.categories[b.Category] = struct{}{}
		}
	}
	return out
}

// jaccard computes |intersection| / |union| of two sets. Two empty sets have
// no overlap to speak of, so the similarity is 0.
func jaccard(a, b map[string]struct{}) float64 {
	if len(a) == 0 && len(b) == 0 {
		return 0
	}
	intersection := 0
	for k := range a {
		if _, ok := b[k]; ok {
			intersection++
		}
	}
	union := len(a) + len(b) - intersection
	if union == 0 {
		return 0
	}
	return float64(intersection) / float64(union)
}
