package slotRepo

import (
	"context"
	"fmt"
	"time"

	"servicehub/database"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoSlotRepo implements SlotRepository using MongoDB.
type MongoSlotRepo struct {
	coll *mongo.Collection
}

// NewMongoSlotRepo creates a new instance of SlotRepository using MongoDB.
func NewMongoSlotRepo() SlotRepository {
	return &MongoSlotRepo{coll: database.Collection("availability_slots")}
}

func (r *MongoSlotRepo) CountAvailable(ctx context.Context, providerID string) (int, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	filter := bson.M{"providerId": providerID, "available": true}
	count, err := r.coll.CountDocuments(ctx, filter)
	if err != nil {
		return 0, fmt.Errorf("failed to count available slots for provider %s: %w", providerID, err)
	}
	return int(count), nil
}
