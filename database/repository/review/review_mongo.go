package reviewRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"servicehub/database"
	"servicehub/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoReviewRepo implements ReviewRepository using MongoDB.
type MongoReviewRepo struct {
	coll *mongo.Collection
}

// NewMongoReviewRepo creates a new instance of ReviewRepository using MongoDB.
func NewMongoReviewRepo() ReviewRepository {
	return &MongoReviewRepo{coll: database.Collection("reviews")}
}

func (r *MongoReviewRepo) GetByCustomerAndProvider(ctx context.Context, customerID, providerID string) (*models.Review, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	var review models.Review
	filter := bson.M{"customerId": customerID, "providerId": providerID}
	err := r.coll.FindOne(ctx, filter).Decode(&review)
	if errors.Is(err, mongo.ErrNoDocuments) {
		// Absent review is a normal condition, not an error.
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch review for customer %s, provider %s: %w", customerID, providerID, err)
	}
	return &review, nil
}

func (r *MongoReviewRepo) CountByProvider(ctx context.Context, providerID string) (int, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	count, err := r.coll.CountDocuments(ctx, bson.M{"providerId": providerID})
	if err != nil {
		return 0, fmt.Errorf("failed to count reviews for provider %s: %w", providerID, err)
	}
	return int(count), nil
}
