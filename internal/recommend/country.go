package recommend

import (
	"math"
	"strings"

	"github.com/neexbeast/wayfarer-admin/internal/pricing"
)

const topCitiesPerCountry = 3

// band is the min/max price midpoint of one currency within a country.
type band struct {
	currency string
	lo, hi   float64
}

// SummarizeByCountry groups recs by country code in first-seen order.
// Prices in different currencies are never merged: each currency gets its own
// range, joined with " / " in first-seen order.
func SummarizeByCountry(recs []Destination) []CountrySummary {
	type group struct {
		summary  CountrySummary
		scoreSum int
		bands    []band
	}

	var order []string
	groups := make(map[string]*group)
	for _, r := range recs {
		g, ok := groups[r.CountryCode]
		if !ok {
			g = &group{
				summary: CountrySummary{
					CountryCode: r.CountryCode,
					CountryName: r.Country,
					TopCities:   []string{},
				},
			}
			groups[r.CountryCode] = g
			order = append(order, r.CountryCode)
		}

		g.summary.CityCount++
		g.scoreSum += r.MatchScore
		g.bands = widen(g.bands, r.Quote.Currency, r.Quote.Midpoint())
		if len(g.summary.TopCities) < topCitiesPerCountry {
			g.summary.TopCities = append(g.summary.TopCities, r.Name)
		}
	}

	out := make([]CountrySummary, 0, len(order))
	for _, code := range order {
		g := groups[code]
		g.summary.AverageMatchScore = float64(g.scoreSum) / float64(g.summary.CityCount)
		ranges := make([]string, len(g.bands))
		for i, b := range g.bands {
			ranges[i] = pricing.FormatRange(b.currency, b.lo, b.hi)
		}
		g.summary.PriceRange = strings.Join(ranges, " / ")
		out = append(out, g.summary)
	}
	return out
}

func widen(bands []band, currency string, mid float64) []band {
	for i := range bands {
		if bands[i].currency == currency {
			bands[i].lo = math.Min(bands[i].lo, mid)
			bands[i].hi = math.Max(bands[i].hi, mid)
			return bands
		}
	}
	return append(bands, band{currency: currency, lo: mid, hi: mid})
}
