package repository

import (
	"context"

	"finadvisor/internal/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// RecommendationRepo handles MongoDB operations for synthesized
// recommendations. Recommendations are immutable: every synthesis inserts a
// new document, nothing is ever updated in place.
type RecommendationRepo interface {
	Save(ctx context.Context, rec *model.Recommendation) error
	ListByUser(ctx context.Context, userID string, limit int64) ([]*model.Recommendation, error)
	GetLatest(ctx context.Context, userID, advisorID string) (*model.Recommendation, error)
}

type recommendationRepo struct {
	collection *mongo.Collection
}

// NewRecommendationRepo creates a new recommendation repository
func NewRecommendationRepo(db *mongo.Database) RecommendationRepo {
	return &recommendationRepo{
		collection: db.Collection("recommendations"),
	}
}

func (r *recommendationRepo) Save(ctx context.Context, rec *model.Recommendation) error {
	_, err := r.collection.InsertOne(ctx, rec)
	return err
}

func (r *recommendationRepo) ListByUser(ctx context.Context, userID string, limit int64) ([]*model.Recommendation, error) {
	if limit <= 0 {
		limit = 20
	}
	opts := options.Find().
		SetSort(bson.M{"generatedAt": -1}).
		SetLimit(limit)

	cursor, err := r.collection.Find(ctx, bson.M{"userId": userID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var recs []*model.Recommendation
	if err := cursor.All(ctx, &recs); err != nil {
		return nil, err
	}
	return recs, nil
}

func (r *recommendationRepo) GetLatest(ctx context.Context, userID, advisorID string) (*model.Recommendation, error) {
	opts := options.FindOne().SetSort(bson.M{"generatedAt": -1})

	var rec model.Recommendation
	err := r.collection.FindOne(ctx, bson.M{"userId": userID, "advisorId": advisorID}, opts).Decode(&rec)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &rec, nil
}
