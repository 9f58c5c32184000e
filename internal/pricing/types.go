package pricing

import (
	"fmt"
	"math"

	"github.com/neexbeast/wayfarer-admin/internal/theme"
)

// Source tags where a quote came from.
type Source string

const (
	Live      Source = "live"
	Estimated Source = "estimated"
)

// ExploreQuery is a destination-exploration request to the pricing provider.
type ExploreQuery struct {
	Origin string
	// MaxFlightTimeHours bounds the provider's search; zero means unbounded.
	MaxFlightTimeHours float64
	// DepartureDate is YYYY-MM-DD; empty lets the provider choose.
	DepartureDate string
	SortBy        string
}

// Price is a currency-qualified total.
type Price struct {
	Currency string  `json:"currency"`
	Total    float64 `json:"total"`
}

// Offer is one destination returned by an exploration call.
type Offer struct {
	DestinationCode string `json:"destinationCode"`
	Price           Price  `json:"price"`
}

// Quote is a resolved round-trip price for one destination.
// Live quotes carry Amount; estimated quotes carry the Min/Max band.
type Quote struct {
	DestinationCode string  `json:"destinationCode"`
	Currency        string  `json:"currency"`
	Amount          float64 `json:"amount,omitempty"`
	Min             float64 `json:"min,omitempty"`
	Max             float64 `json:"max,omitempty"`
	Source          Source  `json:"source"`
}

// Midpoint is the numeric value used for ranking.
func (q Quote) Midpoint() float64 {
	if q.Source == Live {
		return q.Amount
	}
	return (q.Min + q.Max) / 2
}

// Display renders the quote for the admin UI, e.g. "£123" or "£161 - £299".
func (q Quote) Display() string {
	if q.Source == Live {
		return FormatAmount(q.Currency, q.Amount)
	}
	return FormatRange(q.Currency, q.Min, q.Max)
}

var currencySymbols = map[string]string{
	"GBP": "£",
	"EUR": "€",
	"USD": "$",
}

// FormatAmount renders a whole-unit amount with the currency symbol when known.
func FormatAmount(currency string, amount float64) string {
	if sym, ok := currencySymbols[currency]; ok {
		return fmt.Sprintf("%s%.0f", sym, math.Round(amount))
	}
	return fmt.Sprintf("%s %.0f", currency, math.Round(amount))
}

// FormatRange renders lo-hi, collapsing to a single amount when they are equal.
func FormatRange(currency string, lo, hi float64) string {
	if math.Round(lo) == math.Round(hi) {
		return FormatAmount(currency, lo)
	}
	return FormatAmount(currency, lo) + " - " + FormatAmount(currency, hi)
}

// Resolved pairs a catalog city with its quote.
type Resolved struct {
	City  theme.City
	Quote Quote
}
