package recommendation

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"servicehub/models"
	"servicehub/utils"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

const (
	rankingCacheTTL    = 2 * time.Hour
	serviceRecCacheTTL = 15 * time.Minute
)

// Rankings are kept warm in Redis for downstream display. A nil client
// disables caching; the Mongo store remains the persisted copy either way.

func rankingCacheKey(customerID, category string) string {
	return fmt.Sprintf("recs:providers:%s:%s", customerID, category)
}

func serviceRecCacheKey(customerID string) string {
	return fmt.Sprintf("recs:services:%s", customerID)
}

// cacheRanking stores the computed provider ranking in Redis, best effort.
func cacheRanking(ctx context.Context, cache *redis.Client, customerID, category string, recs []models.ProviderRecommendation) {
	if cache == nil {
		return
	}
	bytes, err := json.Marshal(recs)
	if err != nil {
		return
	}
	if err := cache.Set(ctx, rankingCacheKey(customerID, category), bytes, rankingCacheTTL).Err(); err != nil {
		utils.GetLogger().Warn("recommendation: failed to cache ranking",
			zap.String("customerId", customerID), zap.Error(err))
	}
}

// cachedRanking returns a previously cached provider ranking, or nil.
func cachedRanking(ctx context.Context, cache *redis.Client, customerID, category string) []models.ProviderRecommendation {
	if cache == nil {
		return nil
	}
	bytes, err := cache.Get(ctx, rankingCacheKey(customerID, category)).Bytes()
	if err != nil {
		return nil
	}
	var recs []models.ProviderRecommendation
	if err := json.Unmarshal(bytes, &recs); err != nil {
		return nil
	}
	return recs
}

// cachedServiceRecs returns a previously cached service ranking, or nil.
func cachedServiceRecs(ctx context.Context, cache *redis.Client, customerID string) []models.ServiceRecommendation {
	if cache == nil {
		return nil
	}
	bytes, err := cache.Get(ctx, serviceRecCacheKey(customerID)).Bytes()
	if err != nil {
		return nil
	}
	var recs []models.ServiceRecommendation
	if err := json.Unmarshal(bytes, &recs); err != nil {
		return nil
	}
	return recs
}

// cacheServiceRecs stores a computed service ranking, best effort.
func cacheServiceRecs(ctx context.Context, cache *redis.Client, customerID string, recs []models.ServiceRecommendation) {
	if cache == nil {
		return
	}
	bytes, err := json.Marshal(recs)
	if err != nil {
		return
	}
	if err := cache.Set(ctx, serviceRecCacheKey(customerID), bytes, serviceRecCacheTTL).Err(); err != nil {
		utils.GetLogger().Warn("recommendation: failed to cache service ranking",
			zap.String("customerId", customerID), zap.Error(err))
	}
}
