package recommendation

import (
	"math"
	"testing"

	"servicehub/models"
)

func TestKeywordMatchScore(t *testing.T) {
	provider := models.Provider{
		Description: "Reliable deep cleaning and office maintenance",
		Services: []models.Service{
			{Title: "Window Washing", Active: true},
			{Title: "Carpet Care", Active: true},
		},
	}

	tests := []struct {
		name        string
		preferences []string
		want        float64
	}{
		{name: "full match", preferences: []string{"deep cleaning"}, want: 1},
		{name: "half match", preferences: []string{"carpet", "plumbing"}, want: 0.5},
		{name: "case insensitive", preferences: []string{"window washing"}, want: 1},
		{name: "no match", preferences: []string{"gardening"}, want: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := keywordMatchScore(tt.preferences, provider); math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("keywordMatchScore = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestContentScoresComponentWeights(t *testing.T) {
	// A provider maxing out every component hits the 1.0 cap; a blank
	// provider stays at the category weight only.
	strong := verifiedProvider("strong", 5.0, 30)
	strong.YearsExperience = 15
	strong.CompletedJobs = 80
	strong.Description = "expert plumbing repairs"
	strong.Services = []models.Service{{ID: "s1", Category: "Plumbing", Title: "Pipe Fix", Active: true}}

	weak := verifiedProvider("weak", 0, 0)
	weak.Services = []models.Service{{ID: "s2", Category: "Plumbing", Title: "Drains", Active: true}}

	customer := &models.User{ID: "c1", PreferredServices: "plumbing"}

	sig := contentScores(customer, []models.Provider{strong, weak}, "Plumbing")
	// Two distinct raw scores normalize to 1 and 0.
	if sig.values[0] != 1 || sig.values[1] != 0 {
		t.Errorf("normalized content scores = %v, want [1 0]", sig.values)
	}
}

func TestContentScoresNilCustomer(t *testing.T) {
	providers := []models.Provider{
		verifiedProvider("a", 4.0, 5),
		verifiedProvider("b", 2.0, 5),
	}
	// A missing customer profile degrades keyword matching but must not
	// panic or zero the whole signal.
	sig := contentScores(nil, providers, "")
	if len(sig.values) != 2 {
		t.Fatalf("expected 2 scores, got %d", len(sig.values))
	}
	if sig.values[0] != 1 || sig.values[1] != 0 {
		t.Errorf("normalized content scores = %v, want [1 0]", sig.values)
	}
}
