package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"CeibaCheckIn/models"

	"github.com/redis/go-redis/v9"
)

// guestCache keeps the collection as one JSON array under a single key,
// the same shape the browser kept in local storage.
type guestCache struct {
	rdb redis.Cmdable
	key string
}

// NewGuestCache returns the Redis-backed repository. The key never expires.
func NewGuestCache(rdb redis.Cmdable, key string) GuestRepository {
	return &guestCache{rdb: rdb, key: key}
}

func (c *guestCache) Load(ctx context.Context) ([]models.Guest, error) {
	val, err := c.rdb.Get(ctx, c.key).Result()
	if errors.Is(err, redis.Nil) {
		return nil, ErrNotStored
	}
	if err != nil {
		return nil, fmt.Errorf("load guests from %s: %w", c.key, err)
	}
	var items []models.Guest
	if err := json.Unmarshal([]byte(val), &items); err != nil {
		return nil, fmt.Errorf("decode guests from %s: %w", c.key, err)
	}
	if items == nil {
		items = []models.Guest{}
	}
	return items, nil
}

func (c *guestCache) Save(ctx context.Context, guests []models.Guest) error {
	if guests == nil {
		guests = []models.Guest{} // store "[]", not "null"
	}
	b, err := json.Marshal(guests)
	if err != nil {
		return fmt.Errorf("encode guests: %w", err)
	}
	if err := c.rdb.Set(ctx, c.key, b, 0).Err(); err != nil {
		return fmt.Errorf("save guests to %s: %w", c.key, err)
	}
	return nil
}
