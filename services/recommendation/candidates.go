package recommendation

import "servicehub/models"

// selectCandidates narrows the provider population to scoring eligibility:
// verified, available, active, and offering at least one active service in
// the requested category when one is given. The repository query applies the
// same constraints; filtering again here keeps the rules authoritative in one
// place and de-duplicates the set.
func selectCandidates(providers []models.Provider, category string) []models.Provider {
	seen := make(map[string]struct{}, len(providers))
	var candidates []models.Provider
	for _, p := range providers {
		if _, dup := seen[p.ID]; dup {
			continue
		}
		if !eligibleCandidate(p, category) {
			continue
		}
		seen[p.ID] = struct{}{}
		candidates = append(candidates, p)
	}
	return candidates
}

func eligibleCandidate(p models.Provider, category string) bool {
	if p.VerificationStatus != models.VerificationVerified {
		return false
	}
	if !p.Available || !p.Active {
		return false
	}
	if category != "" && len(p.ActiveServicesInCategory(category)) == 0 {
		return false
	}
	return true
}
