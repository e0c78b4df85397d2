package recommendation

import (
	"strings"

	"servicehub/models"
)

const (
	contentCategoryWeight   = 0.30
	contentRatingWeight     = 0.25
	contentExperienceWeight = 0.15
	contentJobsWeight       = 0.15
	contentKeywordWeight    = 0.15

	experienceYearsCap = 10.0
	completedJobsCap   = 50.0
)

// contentScores matches provider attributes against the customer profile:
// category coverage, rating, experience, completed jobs, and keyword overlap
// between the customer's preferred-service tags and the provider's
// description plus service titles. The per-candidate sum is capped at 1.0,
// then the whole set is min-max normalized.
func contentScores(customer *models.User, candidates []models.Provider, category string) signal {
	var preferences []string
	if customer != nil {
		preferences = customer.PreferenceTags()
	}

	raw := make([]float64, len(candidates))
	for i, p := range candidates {
		var score float64

		if category != "" && len(p.ActiveServicesInCategory(category)) > 0 {
			score += contentCategoryWeight
		}

		if p.AverageRating > 0 {
			ratingScore := p.AverageRating / 5.0
			if ratingScore > 1.0 {
				ratingScore = 1.0
			}
			score += ratingScore * contentRatingWeight
		}

		experienceScore := float64(p.YearsExperience) / experienceYearsCap
		if experienceScore > 1.0 {
			experienceScore = 1.0
		}
		score += experienceScore * contentExperienceWeight

		if p.CompletedJobs > 0 {
			jobsScore := float64(p.CompletedJobs) / completedJobsCap
			if jobsScore > 1.0 {
				jobsScore = 1.0
			}
			score += jobsScore * contentJobsWeight
		}

		if len(preferences) > 0 {
			score += keywordMatchScore(preferences, p) * contentKeywordWeight
		}

		if score > 1.0 {
			score = 1.0
		}
		raw[i] = score
	}

	return signal{values: MinMaxScale(raw)}
}

// keywordMatchScore returns the fraction of preference keywords that appear
// as literal substrings in the provider's description and service titles,
// case-insensitive.
func keywordMatchScore(preferences []string, p models.Provider) float64 {
	var sb strings.Builder
	sb.WriteString(p.Description)
	for _, svc := range p.Services {
		sb.WriteString(" ")
		sb.WriteString(svc.Title)
	}
	text := strings.ToLower(sb.String())

	matches := 0
	for _, pref := range preferences {
		if strings.Contains(text, pref) {
			matches++
		}
	}
	score := float64(matches) / float64(len(preferences))
	if score > 1.0 {
		score = 1.0
	}
	return score
}
