package cache

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"github.com/redis/go-redis/v9"

	"github.com/neexbeast/wayfarer-admin/internal/observability"
	"github.com/neexbeast/wayfarer-admin/internal/pricing"
)

const (
	DefaultTTL = 30 * time.Minute

	metricName = "explore"
)

// Cache wraps a Redis client and stores raw provider offers per exploration query.
type Cache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewCache constructs a Cache. A non-positive ttl uses DefaultTTL.
func NewCache(client *redis.Client, ttl time.Duration) *Cache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Cache{client: client, ttl: ttl}
}

// Key returns the Redis key for q: explore:{origin}:{ceilingHours}:{date}.
func Key(q pricing.ExploreQuery) string {
	date := q.DepartureDate
	if date == "" {
		date = "any"
	}
	return fmt.Sprintf("explore:%s:%d:%s",
		strings.ToUpper(strings.TrimSpace(q.Origin)),
		int(math.Ceil(q.MaxFlightTimeHours)),
		date,
	)
}

// Get retrieves cached offers for q.
// Returns nil, nil on a cache miss (not an error).
func (c *Cache) Get(ctx context.Context, q pricing.ExploreQuery) ([]pricing.Offer, error) {
	val, err := c.client.Get(ctx, Key(q)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			observability.ObserveCache(metricName, "miss")
			return nil, nil
		}
		observability.ObserveCache(metricName, "error")
		return nil, fmt.Errorf("cache get for %s: %w", Key(q), err)
	}

	offers := []pricing.Offer{}
	if err := json.Unmarshal(val, &offers); err != nil {
		observability.ObserveCache(metricName, "error")
		return nil, fmt.Errorf("unmarshaling cached offers for %s: %w", Key(q), err)
	}

	observability.ObserveCache(metricName, "hit")
	return offers, nil
}

// Set stores offers for q with the configured TTL. A nil slice is stored as empty
// so that "no offers" is remembered as well.
func (c *Cache) Set(ctx context.Context, q pricing.ExploreQuery, offers []pricing.Offer) error {
	if offers == nil {
		offers = []pricing.Offer{}
	}

	b, err := json.Marshal(offers)
	if err != nil {
		return fmt.Errorf("marshaling offers for %s: %w", Key(q), err)
	}

	if err := c.client.Set(ctx, Key(q), b, c.ttl).Err(); err != nil {
		observability.ObserveCache(metricName, "error")
		return fmt.Errorf("cache set for %s: %w", Key(q), err)
	}

	observability.ObserveCache(metricName, "set")
	return nil
}

// Ping reports whether Redis is reachable.
func (c *Cache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}
