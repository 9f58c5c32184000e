package pricing

import (
	"context"
	"math"
	"strings"

	"github.com/rs/zerolog"

	"github.com/neexbeast/wayfarer-admin/internal/observability"
)

const (
	// FlightTimeBuffer widens the provider's flight-time ceiling past the catalog estimate.
	FlightTimeBuffer = 2.0

	heuristicPerHour   = 50
	heuristicBase      = 100
	heuristicVariation = 0.3
)

// Explorer is a destination-exploration pricing provider.
type Explorer interface {
	Explore(ctx context.Context, q ExploreQuery) ([]Offer, error)
}

// Resolver turns (origin, destination) into a quote, preferring live prices.
// Resolve never fails: provider errors degrade to a heuristic estimate.
type Resolver struct {
	explorer Explorer
	currency string
	log      zerolog.Logger
}

// NewResolver builds a Resolver. explorer may be nil, in which case every quote is estimated.
// currency is the unit of every quote; live offers priced in another currency are ignored.
func NewResolver(explorer Explorer, currency string, log zerolog.Logger) *Resolver {
	return &Resolver{explorer: explorer, currency: strings.ToUpper(currency), log: log}
}

// Resolve returns the cheapest live offer for the route in the configured currency,
// or an estimate in that currency.
func (r *Resolver) Resolve(ctx context.Context, origin, destination string, flightTimeHours float64) (q Quote) {
	defer func() {
		if rec := recover(); rec != nil {
			r.log.Error().Interface("recover", rec).Str("destination", destination).Msg("price lookup panicked")
			q = EstimateQuote(destination, flightTimeHours, r.currency)
		}
		observability.ObserveQuote(string(q.Source))
	}()

	if r.explorer == nil {
		return EstimateQuote(destination, flightTimeHours, r.currency)
	}

	offers, err := r.explorer.Explore(ctx, ExploreQuery{
		Origin:             origin,
		MaxFlightTimeHours: flightTimeHours + FlightTimeBuffer,
		SortBy:             "price",
	})
	if err != nil {
		r.log.Warn().Err(err).Str("origin", origin).Str("destination", destination).Msg("live price lookup failed")
		return EstimateQuote(destination, flightTimeHours, r.currency)
	}

	best, ok := cheapestOffer(offers, destination, r.currency)
	if !ok {
		r.log.Debug().Str("origin", origin).Str("destination", destination).Str("currency", r.currency).
			Msg("no live offer for destination in quote currency")
		return EstimateQuote(destination, flightTimeHours, r.currency)
	}

	return Quote{
		DestinationCode: destination,
		Currency:        r.currency,
		Amount:          best.Price.Total,
		Source:          Live,
	}
}

// cheapestOffer picks the lowest positive offer for destination priced in currency.
// An offer without a currency is taken to be in currency; offers in any other
// currency are skipped so every quote of a response shares one unit.
func cheapestOffer(offers []Offer, destination, currency string) (Offer, bool) {
	var best Offer
	found := false
	for _, o := range offers {
		if o.DestinationCode != destination || o.Price.Total <= 0 {
			continue
		}
		if o.Price.Currency != "" && !strings.EqualFold(o.Price.Currency, currency) {
			continue
		}
		if !found || o.Price.Total < best.Price.Total {
			best, found = o, true
		}
	}
	return best, found
}

// EstimateQuote prices a route from flight time alone:
// base = round(h*50+100), band = base ± round(base*0.3).
func EstimateQuote(destination string, flightTimeHours float64, currency string) Quote {
	base := math.Round(flightTimeHours*heuristicPerHour + heuristicBase)
	variation := math.Round(base * heuristicVariation)
	return Quote{
		DestinationCode: destination,
		Currency:        currency,
		Min:             base - variation,
		Max:             base + variation,
		Source:          Estimated,
	}
}
