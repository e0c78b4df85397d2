package models

// Service is one offered service in a provider's catalogue.
type Service struct {
	ID         string  `bson:"id" json:"id"`
	ProviderID string  `bson:"providerId" json:"providerId"`
	Category   string  `bson:"category" json:"category"` // e.g. "Cleaning", "Plumbing"
	Title      string  `bson:"title" json:"title"`
	Price      float64 `bson:"price" json:"price"`
	Active     bool    `bson:"active" json:"active"`
}

// ServiceSummary is the trimmed service shape attached to recommendation
// results.
type ServiceSummary struct {
	ID       string  `json:"id"`
	Title    string  `json:"title"`
	Price    float64 `json:"price"`
	Category string  `json:"category"`
}

// Summary converts a Service to its response shape.
func (s Service) Summary() ServiceSummary {
	return ServiceSummary{ID: s.ID, Title: s.Title, Price: s.Price, Category: s.Category}
}
