// Package cache keeps the rendered ticket set for a day in Redis so the
// dashboard does not re-run the engine on every request.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// TicketCache is a day-keyed JSON cache. A nil *TicketCache is a no-op, so
// callers do not have to branch on Redis being configured.
type TicketCache struct {
	rdb *redis.Client
	ttl time.Duration
}

// New connects to Redis. Returns the client even if the instance is not yet
// reachable; individual operations fail soft.
func New(addr, password string, db int, ttl time.Duration) *TicketCache {
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	return &TicketCache{rdb: rdb, ttl: ttl}
}

func dayKey(date time.Time) string {
	return fmt.Sprintf("tickets:%s", date.Format("2006-01-02"))
}

// SetTickets stores the rendered ticket payload for a date.
func (c *TicketCache) SetTickets(ctx context.Context, date time.Time, payload interface{}) error {
	if c == nil {
		return nil
	}
	raw, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal tickets: %w", err)
	}
	return c.rdb.Set(ctx, dayKey(date), raw, c.ttl).Err()
}

// GetTickets loads the cached payload for a date; the bool reports a hit.
func (c *TicketCache) GetTickets(ctx context.Context, date time.Time, dest interface{}) (bool, error) {
	if c == nil {
		return false, nil
	}
	raw, err := c.rdb.Get(ctx, dayKey(date)).Bytes()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		return false, fmt.Errorf("unmarshal cached tickets: %w", err)
	}
	return true, nil
}

// Invalidate drops the cached payload for a date.
func (c *TicketCache) Invalidate(ctx context.Context, date time.Time) error {
	if c == nil {
		return nil
	}
	return c.rdb.Del(ctx, dayKey(date)).Err()
}

// Ping checks connectivity, for the health endpoint.
func (c *TicketCache) Ping(ctx context.Context) error {
	if c == nil {
		return nil
	}
	return c.rdb.Ping(ctx).Err()
}
