package pricing_test

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/neexbeast/wayfarer-admin/internal/pricing"
)

// memCache is an in-memory offer cache.
type memCache struct {
	mu     sync.Mutex
	data   map[pricing.ExploreQuery][]pricing.Offer
	getErr error
	setErr error
}

func newMemCache() *memCache {
	return &memCache{data: make(map[pricing.ExploreQuery][]pricing.Offer)}
}

func (m *memCache) Get(_ context.Context, q pricing.ExploreQuery) ([]pricing.Offer, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.data[q], nil
}

func (m *memCache) Set(_ context.Context, q pricing.ExploreQuery, offers []pricing.Offer) error {
	if m.setErr != nil {
		return m.setErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[q] = offers
	return nil
}

func TestCachedExplorer_HitSkipsUpstream(t *testing.T) {
	var calls atomic.Int32
	next := &mockExplorer{exploreFn: func(context.Context, pricing.ExploreQuery) ([]pricing.Offer, error) {
		calls.Add(1)
		return []pricing.Offer{offer("BCN", 99)}, nil
	}}
	c := pricing.NewCachedExplorer(next, newMemCache(), zerolog.Nop())
	q := pricing.ExploreQuery{Origin: "LHR", MaxFlightTimeHours: 5}

	first, err := c.Explore(context.Background(), q)
	require.NoError(t, err)
	second, err := c.Explore(context.Background(), q)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, int32(1), calls.Load())
}

func TestCachedExplorer_EmptyResultIsCached(t *testing.T) {
	var calls atomic.Int32
	next := &mockExplorer{exploreFn: func(context.Context, pricing.ExploreQuery) ([]pricing.Offer, error) {
		calls.Add(1)
		return nil, nil
	}}
	c := pricing.NewCachedExplorer(next, newMemCache(), zerolog.Nop())
	q := pricing.ExploreQuery{Origin: "LHR"}

	for range 3 {
		offers, err := c.Explore(context.Background(), q)
		require.NoError(t, err)
		assert.Empty(t, offers)
	}
	assert.Equal(t, int32(1), calls.Load())
}

func TestCachedExplorer_UpstreamErrorNotCached(t *testing.T) {
	var calls atomic.Int32
	next := &mockExplorer{exploreFn: func(context.Context, pricing.ExploreQuery) ([]pricing.Offer, error) {
		calls.Add(1)
		return nil, errors.New("rate limited")
	}}
	c := pricing.NewCachedExplorer(next, newMemCache(), zerolog.Nop())
	q := pricing.ExploreQuery{Origin: "LHR"}

	_, err := c.Explore(context.Background(), q)
	require.Error(t, err)
	_, err = c.Explore(context.Background(), q)
	require.Error(t, err)
	assert.Equal(t, int32(2), calls.Load())
}

func TestCachedExplorer_CacheFailuresBypassed(t *testing.T) {
	mc := newMemCache()
	mc.getErr = errors.New("redis down")
	mc.setErr = errors.New("redis down")
	next := &mockExplorer{exploreFn: func(context.Context, pricing.ExploreQuery) ([]pricing.Offer, error) {
		return []pricing.Offer{offer("KEF", 210)}, nil
	}}
	c := pricing.NewCachedExplorer(next, mc, zerolog.Nop())

	offers, err := c.Explore(context.Background(), pricing.ExploreQuery{Origin: "LHR"})

	require.NoError(t, err)
	require.Len(t, offers, 1)
	assert.Equal(t, "KEF", offers[0].DestinationCode)
}

func TestCachedExplorer_CollapsesConcurrentMisses(t *testing.T) {
	var calls atomic.Int32
	release := make(chan struct{})
	next := &mockExplorer{exploreFn: func(context.Context, pricing.ExploreQuery) ([]pricing.Offer, error) {
		calls.Add(1)
		<-release
		return []pricing.Offer{offer("LIS", 75)}, nil
	}}
	c := pricing.NewCachedExplorer(next, newMemCache(), zerolog.Nop())
	q := pricing.ExploreQuery{Origin: "LHR", MaxFlightTimeHours: 4}

	var wg sync.WaitGroup
	for range 5 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			offers, err := c.Explore(context.Background(), q)
			assert.NoError(t, err)
			assert.Len(t, offers, 1)
		}()
	}
	time.Sleep(50 * time.Millisecond)
	close(release)
	wg.Wait()

	assert.Equal(t, int32(1), calls.Load())
}
