package repository

import (
	"context"
	"errors"

	"loungeadvisor-service/internal/domain/entity"
	"loungeadvisor-service/internal/domain/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoUserRepository implements the user profile gateway on MongoDB
type MongoUserRepository struct {
	collection *mongo.Collection
}

// NewMongoUserRepository creates a new user profile repository
func NewMongoUserRepository(db *mongo.Database) repository.UserRepository {
	return &MongoUserRepository{
		collection: db.Collection("user_profiles"),
	}
}

// GetUser finds a user profile by ID. Returns (nil, nil) when absent.
func (r *MongoUserRepository) GetUser(ctx context.Context, userID string) (*entity.UserProfile, error) {
	var profile entity.UserProfile
	err := r.collection.FindOne(ctx, bson.M{"userId": userID}).Decode(&profile)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	if profile.Memberships == nil {
		profile.Memberships = []string{}
	}
	return &profile, nil
}
