package cache

import (
	"context"
	"encoding/json"
	"time"

	"finadvisor/internal/model"

	"github.com/redis/go-redis/v9"
)

// ProgressCache persists the in-progress decision path per advisor so a
// session can resume. Last write wins per advisor key.
type ProgressCache interface {
	Save(ctx context.Context, advisorID, userID string, path model.DecisionPath) error
	Load(ctx context.Context, advisorID string) (*model.ProgressRecord, error)
	Clear(ctx context.Context, advisorID string) error
}

type progressCache struct {
	client *redis.Client
}

func NewProgressCache(client *redis.Client) ProgressCache {
	return &progressCache{
		client: client,
	}
}

func progressKey(advisorID string) string {
	return "progress_" + advisorID
}

func (c *progressCache) Save(ctx context.Context, advisorID, userID string, path model.DecisionPath) error {
	record := model.ProgressRecord{
		AdvisorID: advisorID,
		UserID:    userID,
		Path:      path,
		Timestamp: time.Now(),
	}
	data, err := json.Marshal(record)
	if err != nil {
		return err
	}
	// no expiry: progress survives until reset or synthesis
	return c.client.Set(ctx, progressKey(advisorID), data, 0).Err()
}

// Load returns (nil, nil) on a missing key or a corrupt record; a broken
// entry must behave as if no progress existed.
func (c *progressCache) Load(ctx context.Context, advisorID string) (*model.ProgressRecord, error) {
	data, err := c.client.Get(ctx, progressKey(advisorID)).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var record model.ProgressRecord
	if err := json.Unmarshal([]byte(data), &record); err != nil {
		return nil, nil
	}
	return &record, nil
}

func (c *progressCache) Clear(ctx context.Context, advisorID string) error {
	return c.client.Del(ctx, progressKey(advisorID)).Err()
}
