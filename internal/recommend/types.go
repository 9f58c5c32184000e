package recommend

import (
	"errors"
	"time"

	"github.com/neexbeast/wayfarer-admin/internal/pricing"
	"github.com/neexbeast/wayfarer-admin/internal/theme"
)

var (
	// ErrInvalidRequest wraps request validation failures.
	ErrInvalidRequest = errors.New("invalid recommendation request")
	// ErrTierDisabled is returned by a tier that is switched off by configuration.
	ErrTierDisabled = errors.New("tier disabled")
	// ErrAllTiersFailed is returned when no tier produced a response.
	ErrAllTiersFailed = errors.New("all recommendation tiers failed")
)

// PriceRangeAny disables the price-tier filter.
const PriceRangeAny = "any"

// Request is an inbound theme recommendation query.
type Request struct {
	Origin             string   `json:"origin" validate:"required,len=3,alpha"`
	Theme              string   `json:"theme" validate:"required"`
	MaxFlightTimeHours *float64 `json:"maxFlightTimeHours,omitempty" validate:"omitempty,gt=0,lte=24"`
	PriceRange         string   `json:"priceRange,omitempty" validate:"omitempty,oneof=budget mid-range luxury any"`
	Countries          []string `json:"countries,omitempty" validate:"omitempty,dive,len=2,alpha"`
	MaxResults         int      `json:"maxResults,omitempty" validate:"omitempty,min=1"`
}

// FlightRoute summarises the journey to a destination.
type FlightRoute struct {
	Origin        string  `json:"origin"`
	Destination   string  `json:"destination"`
	Duration      string  `json:"duration"`
	DurationHours float64 `json:"durationHours"`
}

// Destination is one ranked recommendation.
type Destination struct {
	theme.City
	FlightRoute FlightRoute   `json:"flightRoute"`
	MatchScore  int           `json:"matchScore"`
	Activities  []string      `json:"activities"`
	Reason      string        `json:"reason"`
	Price       string        `json:"price"`
	Quote       pricing.Quote `json:"quote"`
}

// CountrySummary aggregates the destinations of one country.
type CountrySummary struct {
	CountryCode       string   `json:"countryCode"`
	CountryName       string   `json:"countryName"`
	CityCount         int      `json:"cityCount"`
	AverageMatchScore float64  `json:"averageMatchScore"`
	PriceRange        string   `json:"priceRange"`
	TopCities         []string `json:"topCities"`
}

// SearchMetadata describes how a response was produced.
type SearchMetadata struct {
	Theme            string    `json:"theme"`
	Origin           string    `json:"origin"`
	SearchedAt       time.Time `json:"searchedAt"`
	ProcessingTimeMs int64     `json:"processingTimeMs"`
	FiltersApplied   []string  `json:"filtersApplied"`
}

// Response is returned by every tier in the same shape.
type Response struct {
	Destinations   []Destination    `json:"destinations"`
	TotalResults   int              `json:"totalResults"`
	CountrySummary []CountrySummary `json:"countrySummary"`
	SearchMetadata SearchMetadata   `json:"searchMetadata"`
}
