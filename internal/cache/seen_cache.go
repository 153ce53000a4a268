package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	redis_v9 "github.com/redis/go-redis/v9"
)

// SeenCache caches the per-user seen-question sets so quiz generation does not
// rescan the attempts collection on every request. A miss always falls through
// to the store; entries are invalidated when a new attempt is created.
type SeenCache struct {
	client *redis_v9.Client
	ttl    time.Duration
}

func NewSeenCache(client *redis_v9.Client, ttl time.Duration) *SeenCache {
	return &SeenCache{client: client, ttl: ttl}
}

func seenKey(userID, quizType string) string {
	return fmt.Sprintf("seen:%s:%s", userID, quizType)
}

func (c *SeenCache) Get(ctx context.Context, userID, quizType string) ([]string, bool) {
	if c == nil || c.client == nil {
		return nil, false
	}
	raw, err := c.client.Get(ctx, seenKey(userID, quizType)).Bytes()
	if err != nil {
		return nil, false
	}
	var ids []string
	if err := json.Unmarshal(raw, &ids); err != nil {
		return nil, false
	}
	return ids, true
}

func (c *SeenCache) Set(ctx context.Context, userID, quizType string, ids []string) error {
	if c == nil || c.client == nil {
		return nil
	}
	val, err := json.Marshal(ids)
	if err != nil {
		return fmt.Errorf("error saving seen set to cache: %s", err)
	}
	return c.client.Set(ctx, seenKey(userID, quizType), val, c.ttl).Err()
}

func (c *SeenCache) Invalidate(ctx context.Context, userID, quizType string) error {
	if c == nil || c.client == nil {
		return nil
	}
	return c.client.Del(ctx, seenKey(userID, quizType)).Err()
}
