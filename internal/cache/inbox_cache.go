package cache

import (
	"context"
	"encoding/json"
	"time"

	dom "github.com/rezsam09/remuncandygramdatabase/internal/domain"

	"github.com/redis/go-redis/v9"
)

const keyInbox = "inbox:"

// InboxCache caches per-recipient inbox listings in Redis. Values are the
// JSON-encoded message slices; the key is invalidated on every send to that
// recipient, so a hit is never stale.
type InboxCache struct {
	rdb *redis.Client
	ttl time.Duration
}

// NewInboxCache returns a new InboxCache.
func NewInboxCache(rdb *redis.Client, ttl time.Duration) *InboxCache {
	return &InboxCache{rdb: rdb, ttl: ttl}
}

// Get returns the cached inbox for recipient, or nil if miss.
func (c *InboxCache) Get(ctx context.Context, recipient string) ([]dom.Message, error) {
	b, err := c.rdb.Get(ctx, keyInbox+recipient).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var list []dom.Message
	if err := json.Unmarshal(b, &list); err != nil {
		return nil, err
	}
	if list == nil {
		// An empty inbox caches as "[]" so a hit stays distinguishable from a miss.
		list = []dom.Message{}
	}
	return list, nil
}

// Set stores the inbox listing for recipient.
func (c *InboxCache) Set(ctx context.Context, recipient string, list []dom.Message) error {
	if list == nil {
		list = []dom.Message{}
	}
	b, err := json.Marshal(list)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, keyInbox+recipient, b, c.ttl).Err()
}

// Invalidate removes the cached inbox for recipient (cache invalidation on write).
func (c *InboxCache) Invalidate(ctx context.Context, recipient string) error {
	return c.rdb.Del(ctx, keyInbox+recipient).Err()
}
