package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// RankingPage is the cacheable skeleton of a ranked listing: the
// ordered answer IDs and the total match count. Viewer-relative data
// (is_liked) is never cached; it is re-derived on every request.
type RankingPage struct {
	AnswerIDs []uuid.UUID `json:"answer_ids"`
	Total     int64       `json:"total"`
}

// RankingPageCache stores ranked page skeletons in Redis. A nil
// receiver is valid and disables caching, so callers never branch on
// whether Redis is configured.
type RankingPageCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRankingPageCache(client *redis.Client, ttl time.Duration) *RankingPageCache {
	if client == nil {
		return nil
	}
	return &RankingPageCache{client: client, ttl: ttl}
}

func pageKey(view string, page, pageSize int) string {
	return fmt.Sprintf("rank:%s:%d:%d", view, page, pageSize)
}

// Get returns the cached page for the view, or (nil, nil) on a miss.
func (c *RankingPageCache) Get(ctx context.Context, view string, page, pageSize int) (*RankingPage, error) {
	if c == nil {
		return nil, nil
	}
	raw, err := c.client.Get(ctx, pageKey(view, page, pageSize)).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var cached RankingPage
	if err := json.Unmarshal(raw, &cached); err != nil {
		return nil, err
	}
	return &cached, nil
}

func (c *RankingPageCache) Set(ctx context.Context, view string, page, pageSize int, value RankingPage) error {
	if c == nil {
		return nil
	}
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, pageKey(view, page, pageSize), raw, c.ttl).Err()
}
