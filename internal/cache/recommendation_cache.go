package cache

import (
	"context"
	"encoding/json"
	"time"

	"finadvisor/internal/model"

	"github.com/redis/go-redis/v9"
)

// RecommendationCache keeps the latest synthesized recommendation per
// advisor for quick retrieval without a Mongo round-trip
type RecommendationCache interface {
	Set(ctx context.Context, advisorID string, rec *model.Recommendation) error
	Get(ctx context.Context, advisorID string) (*model.Recommendation, error)
	Delete(ctx context.Context, advisorID string) error
}

type recommendationCache struct {
	client *redis.Client
}

func NewRecommendationCache(client *redis.Client) RecommendationCache {
	return &recommendationCache{
		client: client,
	}
}

func recommendationKey(advisorID string) string {
	return "recommendation:" + advisorID
}

func (c *recommendationCache) Set(ctx context.Context, advisorID string, rec *model.Recommendation) error {
	data, err := json.Marshal(rec)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, recommendationKey(advisorID), data, 24*time.Hour).Err()
}

func (c *recommendationCache) Get(ctx context.Context, advisorID string) (*model.Recommendation, error) {
	data, err := c.client.Get(ctx, recommendationKey(advisorID)).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var rec model.Recommendation
	if err := json.Unmarshal([]byte(data), &rec); err != nil {
		return nil, nil
	}
	return &rec, nil
}

func (c *recommendationCache) Delete(ctx context.Context, advisorID string) error {
	return c.client.Del(ctx, recommendationKey(advisorID)).Err()
}
