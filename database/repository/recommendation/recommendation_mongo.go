package recommendationRepo

import (
	"context"
	"fmt"
	"sync"
	"time"

	"servicehub/database"
	"servicehub/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoRecommendationRepo implements RecommendationRepository using MongoDB.
// A per-(customer, category) mutex serializes the delete-then-insert swap so
// that two concurrent recomputations for the same key cannot interleave and
// leave a partially overwritten or duplicated record set.
type MongoRecommendationRepo struct {
	coll  *mongo.Collection
	locks sync.Map // string key -> *sync.Mutex
}

// NewMongoRecommendationRepo creates a new instance of RecommendationRepository using MongoDB.
func NewMongoRecommendationRepo() RecommendationRepository {
	return &MongoRecommendationRepo{coll: database.Collection("recommendation_scores")}
}

func (r *MongoRecommendationRepo) keyLock(customerID, category string) *sync.Mutex {
	key := customerID + "|" + category
	mu, _ := r.locks.LoadOrStore(key, &sync.Mutex{})
	return mu.(*sync.Mutex)
}

func (r *MongoRecommendationRepo) Replace(ctx context.Context, customerID, category string, records []models.RecommendationRecord) error {
	mu := r.keyLock(customerID, category)
	mu.Lock()
	defer mu.Unlock()

	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	filter := bson.M{"customerId": customerID, "category": category}
	if _, err := r.coll.DeleteMany(ctx, filter); err != nil {
		return fmt.Errorf("failed to delete recommendations for customer %s: %w", customerID, err)
	}
	if len(records) == 0 {
		return nil
	}

	docs := make([]interface{}, 0, len(records))
	for _, rec := range records {
		docs = append(docs, rec)
	}
	if _, err := r.coll.InsertMany(ctx, docs); err != nil {
		return fmt.Errorf("failed to insert recommendations for customer %s: %w", customerID, err)
	}
	return nil
}

func (r *MongoRecommendationRepo) GetByCustomer(ctx context.Context, customerID, category string) ([]models.RecommendationRecord, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"customerId": customerID, "category": category}
	opts := options.Find().SetSort(bson.D{{Key: "finalScore", Value: -1}})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve recommendations for customer %s: %w", customerID, err)
	}
	defer cursor.Close(ctx)

	var records []models.RecommendationRecord
	for cursor.Next(ctx) {
		var rec models.RecommendationRecord
		if err := cursor.Decode(&rec); err != nil {
			return nil, fmt.Errorf("failed to decode recommendation record: %w", err)
		}
		records = append(records, rec)
	}
	return records, nil
}
