package cron

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"servicehub/config"
	"servicehub/services/recommendation"
	"servicehub/services/tasks"

	"github.com/hibiken/asynq"
)

// InitRefreshWorker runs the async ranking-refresh worker in background.
// Tasks are enqueued by the refresh endpoint so that heavy recomputations for
// many customers do not happen on the request path.
func InitRefreshWorker(engine recommendation.RecommendationService) {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	}

	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(tasks.TypeRankingRefresh, handleRefreshTask(engine))

	// Start async worker with retry logic
	go func() {
		log.Println("[RefreshWorker] Starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[RefreshWorker] Attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[RefreshWorker] Max retry attempts reached. Exiting.")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second) // Exponential backoff
			} else {
				break
			}
		}
	}()
}

func handleRefreshTask(engine recommendation.RecommendationService) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p tasks.RefreshPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			log.Printf("[RefreshWorker] Invalid payload: %v", err)
			return err
		}

		log.Printf("[RefreshWorker] Recomputing ranking for customer %s (category %q)", p.CustomerID, p.Category)
		engine.RecommendProviders(ctx, recommendation.ProviderRequest{
			CustomerID: p.CustomerID,
			Category:   p.Category,
			Location:   p.Location,
			Limit:      p.Limit,
		})
		return nil
	}
}

// NewQueueClient returns an asynq client for enqueueing refresh tasks.
func NewQueueClient() *asynq.Client {
	return asynq.NewClient(asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	})
}
