// File: database/repository/profile/profile_mongo.go
package profileRepo

import (
	"context"
	"fmt"
	"time"

	"laundr/database"
	"laundr/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoProfileRepo is the MongoDB-backed profile repository.
type MongoProfileRepo struct {
	coll *mongo.Collection
}

// NewMongoProfileRepo returns a repo bound to the "profiles" collection.
func NewMongoProfileRepo() *MongoProfileRepo {
	coll := database.MongoClient.Database("laundr").Collection("profiles")
	return &MongoProfileRepo{coll: coll}
}

// Resolve fetches a profile by its laundr ID.
func (r *MongoProfileRepo) Resolve(ctx context.Context, laundrID string) (*models.Profile, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var profile models.Profile
	err := r.coll.FindOne(ctx, bson.M{"laundr_id": laundrID}).Decode(&profile)
	if err == mongo.ErrNoDocuments {
		return nil, ErrProfileNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to resolve profile %s: %w", laundrID, err)
	}
	return &profile, nil
}

// Create inserts a new profile document.
func (r *MongoProfileRepo) Create(ctx context.Context, profile *models.Profile) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	profile.CreatedAt = time.Now()
	if _, err := r.coll.InsertOne(ctx, profile); err != nil {
		return fmt.Errorf("failed to create profile: %w", err)
	}
	return nil
}

// GetAll returns every profile document.
func (r *MongoProfileRepo) GetAll(ctx context.Context) ([]models.Profile, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to list profiles: %w", err)
	}
	defer cursor.Close(ctx)

	var profiles []models.Profile
	if err := cursor.All(ctx, &profiles); err != nil {
		return nil, fmt.Errorf("failed to decode profiles: %w", err)
	}
	return profiles, nil
}
