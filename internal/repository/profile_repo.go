package repository

import (
	"context"
	"time"

	"finadvisor/internal/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ProfileRepo handles MongoDB operations for user profiles
type ProfileRepo interface {
	GetByUserID(ctx context.Context, userID string) (*model.UserProfile, error)
	Upsert(ctx context.Context, profile *model.UserProfile) error
}

type profileRepo struct {
	collection *mongo.Collection
}

// NewProfileRepo creates a new profile repository
func NewProfileRepo(db *mongo.Database) ProfileRepo {
	return &profileRepo{
		collection: db.Collection("profiles"),
	}
}

func (r *profileRepo) GetByUserID(ctx context.Context, userID string) (*model.UserProfile, error) {
	var profile model.UserProfile
	err := r.collection.FindOne(ctx, bson.M{"_id": userID}).Decode(&profile)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	profile.UserID = userID
	return &profile, nil
}

func (r *profileRepo) Upsert(ctx context.Context, profile *model.UserProfile) error {
	profile.UpdatedAt = time.Now()
	opts := options.Replace().SetUpsert(true)
	_, err := r.collection.ReplaceOne(ctx, bson.M{"_id": profile.UserID}, profile, opts)
	return err
}
