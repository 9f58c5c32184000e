package recommend

import (
	"context"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/neexbeast/wayfarer-admin/internal/pricing"
	"github.com/neexbeast/wayfarer-admin/internal/theme"
)

// batchResolver is the interface satisfied by pricing.BatchResolver.
type batchResolver interface {
	ResolveAll(ctx context.Context, origin string, candidates []theme.City) []pricing.Resolved
}

// pipeline holds the catalog-driven steps shared by ProviderTier and StaticTier.
type pipeline struct {
	catalog  *theme.Catalog
	minScore int
}

func newPipeline(catalog *theme.Catalog, minScore int) pipeline {
	if minScore <= 0 {
		minScore = theme.DefaultMinScore
	}
	return pipeline{catalog: catalog, minScore: minScore}
}

// candidates selects catalog cities for req and applies its filters.
func (p pipeline) candidates(req Request) (theme.Theme, []theme.City, error) {
	t, err := theme.ParseTheme(req.Theme)
	if err != nil {
		return "", nil, err
	}

	var out []theme.City
	for _, c := range p.catalog.Candidates(t, p.minScore) {
		if matchesFilters(c, req) {
			out = append(out, c)
		}
	}
	return t, out, nil
}

func matchesFilters(c theme.City, req Request) bool {
	if req.MaxFlightTimeHours != nil && c.AverageFlightTime > *req.MaxFlightTimeHours {
		return false
	}
	if req.PriceRange != "" && req.PriceRange != PriceRangeAny && string(c.PriceTier) != req.PriceRange {
		return false
	}
	if len(req.Countries) > 0 && !slices.ContainsFunc(req.Countries, func(code string) bool {
		return strings.EqualFold(code, c.CountryCode)
	}) {
		return false
	}
	return true
}

// finish assembles, truncates and summarises resolved pairs into a Response.
func (p pipeline) finish(resolved []pricing.Resolved, t theme.Theme, req Request) *Response {
	dests := Assemble(resolved, t, req.Origin)
	total := len(dests)
	if req.MaxResults > 0 && len(dests) > req.MaxResults {
		dests = dests[:req.MaxResults]
	}

	return &Response{
		Destinations:   dests,
		TotalResults:   total,
		CountrySummary: SummarizeByCountry(dests),
		SearchMetadata: SearchMetadata{
			Theme:          string(t),
			Origin:         req.Origin,
			FiltersApplied: FiltersApplied(req),
		},
	}
}

// FiltersApplied describes the optional filters present on req.
func FiltersApplied(req Request) []string {
	out := []string{}
	if req.MaxFlightTimeHours != nil {
		out = append(out, "maxFlightTime: "+strconv.FormatFloat(*req.MaxFlightTimeHours, 'f', -1, 64)+"h")
	}
	if req.PriceRange != "" && req.PriceRange != PriceRangeAny {
		out = append(out, "priceRange: "+req.PriceRange)
	}
	if len(req.Countries) > 0 {
		out = append(out, "countries: "+strings.Join(req.Countries, ","))
	}
	if req.MaxResults > 0 {
		out = append(out, fmt.Sprintf("maxResults: %d", req.MaxResults))
	}
	return out
}

// ProviderTier prices candidates through the live provider, degrading per item to estimates.
type ProviderTier struct {
	pipeline
	batch   batchResolver
	enabled bool
}

// NewProviderTier constructs a ProviderTier. When enabled is false every attempt
// returns ErrTierDisabled.
func NewProviderTier(catalog *theme.Catalog, batch batchResolver, minScore int, enabled bool) *ProviderTier {
	return &ProviderTier{pipeline: newPipeline(catalog, minScore), batch: batch, enabled: enabled}
}

func (p *ProviderTier) Name() string { return "provider" }

func (p *ProviderTier) Attempt(ctx context.Context, req Request) (*Response, error) {
	if !p.enabled || p.batch == nil {
		return nil, ErrTierDisabled
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	t, cands, err := p.candidates(req)
	if err != nil {
		return nil, err
	}
	return p.finish(p.batch.ResolveAll(ctx, req.Origin, cands), t, req), nil
}

// StaticTier builds recommendations from the catalog and heuristic prices only.
type StaticTier struct {
	pipeline
	currency string
}

// NewStaticTier constructs a StaticTier quoting estimates in currency.
func NewStaticTier(catalog *theme.Catalog, minScore int, currency string) *StaticTier {
	return &StaticTier{pipeline: newPipeline(catalog, minScore), currency: currency}
}

func (s *StaticTier) Name() string { return "static" }

func (s *StaticTier) Attempt(_ context.Context, req Request) (*Response, error) {
	t, cands, err := s.candidates(req)
	if err != nil {
		return nil, err
	}

	resolved := make([]pricing.Resolved, len(cands))
	for i, c := range cands {
		resolved[i] = pricing.Resolved{
			City:  c,
			Quote: pricing.EstimateQuote(c.Code, c.AverageFlightTime, s.currency),
		}
	}
	return s.finish(resolved, t, req), nil
}
