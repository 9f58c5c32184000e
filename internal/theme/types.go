package theme

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnsupportedTheme is returned when a theme identifier is not recognised.
var ErrUnsupportedTheme = errors.New("unsupported theme")

// Theme identifies a travel-interest category.
type Theme string

const (
	Party      Theme = "party"      // social / entertainment
	Adventure  Theme = "adventure"  // active / outdoor
	Culture    Theme = "culture"    // cultural / creative
	Luxury     Theme = "luxury"     // luxury / indulgent
	Relaxation Theme = "relaxation" // nature / relaxation

	// Mixed is a request-level composite that scores a city by its strongest theme.
	// It is not a catalog theme and is rejected by the single-theme queries.
	Mixed Theme = "mixed"
)

// All lists the five catalog themes in display order.
var All = []Theme{Party, Adventure, Culture, Luxury, Relaxation}

var labels = map[Theme]string{
	Party:      "Social & Entertainment",
	Adventure:  "Active & Outdoor",
	Culture:    "Cultural & Creative",
	Luxury:     "Luxury & Indulgent",
	Relaxation: "Nature & Relaxation",
	Mixed:      "Best Overall",
}

// Label returns the human-readable name of t.
func (t Theme) Label() string {
	if l, ok := labels[t]; ok {
		return l
	}
	return string(t)
}

// Valid reports whether t is one of the five catalog themes.
func (t Theme) Valid() bool {
	switch t {
	case Party, Adventure, Culture, Luxury, Relaxation:
		return true
	}
	return false
}

// ParseTheme normalises s and returns the matching theme.
// Mixed is accepted; anything else yields ErrUnsupportedTheme.
func ParseTheme(s string) (Theme, error) {
	t := Theme(strings.ToLower(strings.TrimSpace(s)))
	if t.Valid() || t == Mixed {
		return t, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedTheme, s)
}

// PriceTier is the coarse cost band of a destination.
type PriceTier string

const (
	Budget   PriceTier = "budget"
	MidRange PriceTier = "mid-range"
	Premium  PriceTier = "luxury"
)

// Scores holds a city's 0-100 affinity for each theme.
type Scores struct {
	Party      int `json:"party"`
	Adventure  int `json:"adventure"`
	Culture    int `json:"culture"`
	Luxury     int `json:"luxury"`
	Relaxation int `json:"relaxation"`
}

// For returns the score for t. ok is false for Mixed or unknown themes.
func (s Scores) For(t Theme) (score int, ok bool) {
	switch t {
	case Party:
		return s.Party, true
	case Adventure:
		return s.Adventure, true
	case Culture:
		return s.Culture, true
	case Luxury:
		return s.Luxury, true
	case Relaxation:
		return s.Relaxation, true
	}
	return 0, false
}

// Best returns the strongest theme and its score. Ties resolve in All order.
func (s Scores) Best() (Theme, int) {
	best, bestScore := All[0], -1
	for _, t := range All {
		if v, _ := s.For(t); v > bestScore {
			best, bestScore = t, v
		}
	}
	return best, bestScore
}

// City is an immutable catalog record keyed by its IATA code.
type City struct {
	Code              string    `json:"iataCode"`
	Name              string    `json:"cityName"`
	Country           string    `json:"countryName"`
	CountryCode       string    `json:"countryCode"`
	Scores            Scores    `json:"themeScores"`
	Highlights        []string  `json:"highlights"`
	AverageFlightTime float64   `json:"averageFlightTime"`
	PriceTier         PriceTier `json:"priceTier"`
	BestMonths        []string  `json:"bestMonths"`
}

// Stats is a derived summary of the catalog.
type Stats struct {
	TotalCities int               `json:"totalCities"`
	ByPriceTier map[PriceTier]int `json:"byPriceTier"`
	ByTheme     map[Theme]int     `json:"byTheme"`
}

// Info describes a theme for admin UI pickers.
type Info struct {
	ID    Theme  `json:"id"`
	Label string `json:"label"`
}
