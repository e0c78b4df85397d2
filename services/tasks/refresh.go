package tasks

import (
	"encoding/json"

	"github.com/hibiken/asynq"
)

const TypeRankingRefresh = "recommendation:refresh"

// RefreshPayload identifies the ranking a background worker should recompute.
type RefreshPayload struct {
	CustomerID string `json:"customerId"`
	Category   string `json:"category"`
	Location   string `json:"location,omitempty"`
	Limit      int    `json:"limit,omitempty"`
}

// NewRankingRefreshTask builds an asynq task asking the worker to recompute
// and persist the provider ranking for one (customer, category) pair.
func NewRankingRefreshTask(payload RefreshPayload) (*asynq.Task, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TypeRankingRefresh, b), nil
}
