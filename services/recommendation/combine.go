package recommendation

import (
	"math"
	"sort"

	"servicehub/models"
)

// Signal weights. Rating is deliberately dominant: the product decision is
// that a provider's direct rating outweighs everything else combined.
const (
	weightRating        = 0.80
	weightCollaborative = 0.10
	weightContent       = 0.05
	weightPopularity    = 0.03
	weightAvailability  = 0.02
)

const maxAttachedServices = 3

// signal holds one scorer's per-candidate values, aligned with the candidate
// slice, plus a marker for whether the scorer degraded to its default.
type signal struct {
	values   []float64
	fellBack bool
}

// at returns the value for candidate index i, tolerating a short slice from
// a degraded scorer.
func (s signal) at(i int) float64 {
	if i >= len(s.values) {
		return 0
	}
	return s.values[i]
}

// signalSet bundles the five computed signals.
type signalSet struct {
	rating        signal
	collaborative signal
	content       signal
	popularity    signal
	availability  signal
}

func (ss signalSet) fallbacks() Fallbacks {
	return Fallbacks{
		Rating:        ss.rating.fellBack,
		Collaborative: ss.collaborative.fellBack,
		Content:       ss.content.fellBack,
		Popularity:    ss.popularity.fellBack,
		Availability:  ss.availability.fellBack,
	}
}

// combineAndRank applies the fixed weights, sorts by final score descending
// (ties broken by provider ID ascending for determinism), truncates to limit
// and attaches the explanatory sub-scores and up to 3 matching services.
func combineAndRank(candidates []models.Provider, signals signalSet, category string, limit int) []models.ProviderRecommendation {
	type scored struct {
		provider models.Provider
		scores   models.ScoreBreakdown
		final    float64
	}

	ranked := make([]scored, len(candidates))
	for i, p := range candidates {
		breakdown := models.ScoreBreakdown{
			Rating:        signals.rating.at(i),
			Collaborative: signals.collaborative.at(i),
			Content:       signals.content.at(i),
			Popularity:    signals.popularity.at(i),
			Availability:  signals.availability.at(i),
		}
		final := breakdown.Rating*weightRating +
			breakdown.Collaborative*weightCollaborative +
			breakdown.Content*weightContent +
			breakdown.Popularity*weightPopularity +
			breakdown.Availability*weightAvailability
		ranked[i] = scored{provider: p, scores: breakdown, final: final}
	}

	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].final != ranked[j].final {
			return ranked[i].final > ranked[j].final
		}
		return ranked[i].provider.ID < ranked[j].provider.ID
	})
	if limit > 0 && len(ranked) > limit {
		ranked = ranked[:limit]
	}

	out := make([]models.ProviderRecommendation, 0, len(ranked))
	for _, sc := range ranked {
		out = append(out, models.ProviderRecommendation{
			ProviderID:   sc.provider.ID,
			ProviderName: sc.provider.Name,
			FinalScore:   round4(sc.final),
			Scores: models.ScoreBreakdown{
				Rating:        round4(sc.scores.Rating),
				Collaborative: round4(sc.scores.Collaborative),
				Content:       round4(sc.scores.Content),
				Popularity:    round4(sc.scores.Popularity),
				Availability:  round4(sc.scores.Availability),
			},
			AverageRating:   sc.provider.AverageRating,
			TotalReviews:    sc.provider.TotalReviews,
			YearsExperience: sc.provider.YearsExperience,
			CompletedJobs:   sc.provider.CompletedJobs,
			Services:        matchingServices(sc.provider, category),
		})
	}
	return out
}

// matchingServices returns up to 3 of the provider's active services in the
// requested category. Without a category filter there is nothing to match,
// so no services are attached.
func matchingServices(p models.Provider, category string) []models.ServiceSummary {
	summaries := make([]models.ServiceSummary, 0, maxAttachedServices)
	if category == "" {
		return summaries
	}
	active := p.ActiveServicesInCategory(category)
	for _, svc := range active {
		if len(summaries) == maxAttachedServices {
			break
		}
		summaries = append(summaries, svc.Summary())
	}
	return summaries
}

func round4(v float64) float64 {
	return math.Round(v*10000) / 10000
}
