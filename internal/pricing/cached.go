package pricing

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"golang.org/x/sync/singleflight"
)

// offerCache is the interface satisfied by cache.Cache.
type offerCache interface {
	Get(ctx context.Context, q ExploreQuery) ([]Offer, error)
	Set(ctx context.Context, q ExploreQuery, offers []Offer) error
}

// CachedExplorer puts a cache in front of an Explorer and collapses concurrent
// identical explorations into one upstream call. Cache failures are logged and bypassed.
type CachedExplorer struct {
	next  Explorer
	cache offerCache
	group singleflight.Group
	log   zerolog.Logger
}

// NewCachedExplorer wraps next with cache.
func NewCachedExplorer(next Explorer, cache offerCache, log zerolog.Logger) *CachedExplorer {
	return &CachedExplorer{next: next, cache: cache, log: log}
}

// Explore serves q from cache, or from the wrapped Explorer on a miss.
func (c *CachedExplorer) Explore(ctx context.Context, q ExploreQuery) ([]Offer, error) {
	cached, err := c.cache.Get(ctx, q)
	if err != nil {
		c.log.Warn().Err(err).Str("origin", q.Origin).Msg("explore cache get failed")
	}
	if cached != nil {
		return cached, nil
	}

	key := fmt.Sprintf("%s|%g|%s|%s", q.Origin, q.MaxFlightTimeHours, q.DepartureDate, q.SortBy)
	v, err, _ := c.group.Do(key, func() (any, error) {
		offers, err := c.next.Explore(ctx, q)
		if err != nil {
			return nil, err
		}
		if offers == nil {
			offers = []Offer{}
		}
		if err := c.cache.Set(ctx, q, offers); err != nil {
			c.log.Warn().Err(err).Str("origin", q.Origin).Msg("explore cache set failed")
		}
		return offers, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]Offer), nil
}
