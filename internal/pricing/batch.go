package pricing

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/neexbeast/wayfarer-admin/internal/theme"
)

const (
	DefaultBatchSize  = 5
	DefaultBatchDelay = 200 * time.Millisecond
)

// quoter is the interface satisfied by Resolver.
type quoter interface {
	Resolve(ctx context.Context, origin, destination string, flightTimeHours float64) Quote
}

// BatchConfig tunes BatchResolver. A non-positive Size or negative Delay takes the
// default; a zero Delay disables pacing.
type BatchConfig struct {
	Size  int
	Delay time.Duration
	// Currency is used when a lookup panics and the slot is filled with an estimate.
	Currency string
}

// BatchResolver prices a candidate list in sequential batches of concurrent lookups.
// At most Size lookups are in flight at once.
type BatchResolver struct {
	quoter   quoter
	size     int
	delay    time.Duration
	currency string
	log      zerolog.Logger
}

// NewBatchResolver constructs a BatchResolver around q.
func NewBatchResolver(q quoter, cfg BatchConfig, log zerolog.Logger) *BatchResolver {
	if cfg.Size <= 0 {
		cfg.Size = DefaultBatchSize
	}
	if cfg.Delay < 0 {
		cfg.Delay = DefaultBatchDelay
	}
	return &BatchResolver{
		quoter:   q,
		size:     cfg.Size,
		delay:    cfg.Delay,
		currency: cfg.Currency,
		log:      log,
	}
}

// ResolveAll returns one Resolved per candidate, in candidate order.
// Failed or panicking lookups are filled with an estimate, never dropped.
func (b *BatchResolver) ResolveAll(ctx context.Context, origin string, candidates []theme.City) []Resolved {
	out := make([]Resolved, len(candidates))

	for start := 0; start < len(candidates); start += b.size {
		if start > 0 {
			sleepCtx(ctx, b.delay)
		}
		end := min(start+b.size, len(candidates))

		g := new(errgroup.Group)
		g.SetLimit(b.size)
		for i := start; i < end; i++ {
			city := candidates[i]
			g.Go(func() error {
				defer func() {
					if r := recover(); r != nil {
						b.log.Error().Interface("recover", r).Str("destination", city.Code).Msg("batch lookup panicked")
						out[i] = Resolved{City: city, Quote: EstimateQuote(city.Code, city.AverageFlightTime, b.currency)}
					}
				}()
				out[i] = Resolved{
					City:  city,
					Quote: b.quoter.Resolve(ctx, origin, city.Code, city.AverageFlightTime),
				}
				return nil
			})
		}
		// Lookups never return errors; Wait only joins the batch.
		_ = g.Wait()
	}

	return out
}

// sleepCtx waits for d or returns early if ctx is done.
func sleepCtx(ctx context.Context, d time.Duration) {
	if d <= 0 {
		return
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
	case <-t.C:
	}
}
