package recommend_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/neexbeast/wayfarer-admin/internal/pricing"
	"github.com/neexbeast/wayfarer-admin/internal/recommend"
	"github.com/neexbeast/wayfarer-admin/internal/theme"
)

// mockTier is a func-field Tier.
type mockTier struct {
	name      string
	attemptFn func(ctx context.Context, req recommend.Request) (*recommend.Response, error)
	calls     atomic.Int32
}

func (m *mockTier) Name() string { return m.name }

func (m *mockTier) Attempt(ctx context.Context, req recommend.Request) (*recommend.Response, error) {
	m.calls.Add(1)
	return m.attemptFn(ctx, req)
}

func failingTier(name string, err error) *mockTier {
	return &mockTier{name: name, attemptFn: func(context.Context, recommend.Request) (*recommend.Response, error) {
		return nil, err
	}}
}

// failingExplorer always errors, forcing every quote to an estimate.
type failingExplorer struct{}

func (failingExplorer) Explore(context.Context, pricing.ExploreQuery) ([]pricing.Offer, error) {
	return nil, errors.New("provider unavailable")
}

func fixedClock() func() time.Time {
	ts := time.Date(2026, 10, 16, 9, 30, 0, 0, time.UTC)
	return func() time.Time { return ts }
}

func hours(h float64) *float64 { return &h }

func newStaticTier() *recommend.StaticTier {
	return recommend.NewStaticTier(theme.Default(), 0, "GBP")
}

func TestCascade_FirstSuccessfulTierWins(t *testing.T) {
	first := failingTier("remote", errors.New("connection refused"))
	second := &mockTier{name: "provider", attemptFn: func(_ context.Context, req recommend.Request) (*recommend.Response, error) {
		return &recommend.Response{TotalResults: 7}, nil
	}}
	third := failingTier("static", errors.New("should not be reached"))

	c := recommend.NewCascade(zerolog.Nop(), recommend.Options{Now: fixedClock()}, first, second, third)
	resp, err := c.Recommend(context.Background(), recommend.Request{Origin: "lhr", Theme: "culture"})

	require.NoError(t, err)
	assert.Equal(t, 7, resp.TotalResults)
	assert.Equal(t, int32(1), first.calls.Load())
	assert.Equal(t, int32(1), second.calls.Load())
	assert.Equal(t, int32(0), third.calls.Load())

	assert.Equal(t, "culture", resp.SearchMetadata.Theme)
	assert.Equal(t, "LHR", resp.SearchMetadata.Origin)
	assert.Equal(t, fixedClock()(), resp.SearchMetadata.SearchedAt)
	assert.NotNil(t, resp.Destinations)
	assert.NotNil(t, resp.CountrySummary)
	assert.Equal(t, []string{"maxResults: 20"}, resp.SearchMetadata.FiltersApplied)
}

func TestCascade_AllTiersFail(t *testing.T) {
	errRemote := errors.New("remote down")
	errStatic := errors.New("static broken")
	c := recommend.NewCascade(zerolog.Nop(), recommend.Options{},
		failingTier("remote", errRemote),
		failingTier("provider", recommend.ErrTierDisabled),
		failingTier("static", errStatic),
	)

	resp, err := c.Recommend(context.Background(), recommend.Request{Origin: "LHR", Theme: "party"})

	require.Error(t, err)
	assert.Nil(t, resp)
	assert.ErrorIs(t, err, recommend.ErrAllTiersFailed)
	assert.ErrorIs(t, err, errRemote)
	assert.ErrorIs(t, err, recommend.ErrTierDisabled)
	assert.ErrorIs(t, err, errStatic)
}

func TestCascade_ValidationAbortsBeforeTiers(t *testing.T) {
	tier := failingTier("static", errors.New("unreachable"))
	c := recommend.NewCascade(zerolog.Nop(), recommend.Options{}, tier)

	tests := []struct {
		name    string
		req     recommend.Request
		wantErr error
	}{
		{"missing origin", recommend.Request{Theme: "party"}, recommend.ErrInvalidRequest},
		{"origin too long", recommend.Request{Origin: "LOND", Theme: "party"}, recommend.ErrInvalidRequest},
		{"missing theme", recommend.Request{Origin: "LHR"}, recommend.ErrInvalidRequest},
		{"bad price range", recommend.Request{Origin: "LHR", Theme: "party", PriceRange: "cheap"}, recommend.ErrInvalidRequest},
		{"bad country", recommend.Request{Origin: "LHR", Theme: "party", Countries: []string{"ESP"}}, recommend.ErrInvalidRequest},
		{"negative flight time", recommend.Request{Origin: "LHR", Theme: "party", MaxFlightTimeHours: hours(-1)}, recommend.ErrInvalidRequest},
		{"unsupported theme", recommend.Request{Origin: "LHR", Theme: "shopping"}, theme.ErrUnsupportedTheme},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := c.Recommend(context.Background(), tt.req)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
	assert.Equal(t, int32(0), tier.calls.Load())
}

func TestCascade_TierValidationErrorAborts(t *testing.T) {
	first := failingTier("remote", theme.ErrUnsupportedTheme)
	second := failingTier("static", errors.New("unreachable"))
	c := recommend.NewCascade(zerolog.Nop(), recommend.Options{}, first, second)

	_, err := c.Recommend(context.Background(), recommend.Request{Origin: "LHR", Theme: "party"})

	assert.ErrorIs(t, err, theme.ErrUnsupportedTheme)
	assert.NotErrorIs(t, err, recommend.ErrAllTiersFailed)
	assert.Equal(t, int32(0), second.calls.Load())
}

func TestCascade_Normalize(t *testing.T) {
	c := recommend.NewCascade(zerolog.Nop(), recommend.Options{DefaultMaxResults: 10, MaxResults: 30})

	got, err := c.Normalize(recommend.Request{
		Origin:     " lhr ",
		Theme:      "Adventure",
		PriceRange: "Budget",
		Countries:  []string{"es", "Pt"},
	})
	require.NoError(t, err)
	assert.Equal(t, "LHR", got.Origin)
	assert.Equal(t, "adventure", got.Theme)
	assert.Equal(t, "budget", got.PriceRange)
	assert.Equal(t, []string{"ES", "PT"}, got.Countries)
	assert.Equal(t, 10, got.MaxResults)

	got, err = c.Normalize(recommend.Request{Origin: "LHR", Theme: "mixed", MaxResults: 500})
	require.NoError(t, err)
	assert.Equal(t, 30, got.MaxResults)
}

func TestStaticTier_AdventureFromLondonWithinThreeHours(t *testing.T) {
	c := recommend.NewCascade(zerolog.Nop(), recommend.Options{}, newStaticTier())

	resp, err := c.Recommend(context.Background(), recommend.Request{
		Origin:             "LHR",
		Theme:              "adventure",
		MaxFlightTimeHours: hours(3),
	})
	require.NoError(t, err)

	codes := make(map[string]bool)
	for _, d := range resp.Destinations {
		codes[d.Code] = true
		assert.LessOrEqual(t, d.AverageFlightTime, 3.0, d.Code)
		assert.Equal(t, "LHR", d.FlightRoute.Origin)
		assert.Equal(t, pricing.Estimated, d.Quote.Source)
	}
	assert.True(t, codes["KEF"], "Reykjavik at exactly 3.0h is included")
	assert.False(t, codes["BKK"], "Bangkok at 11h is excluded")
	assert.False(t, codes["TOS"], "Tromso at 3.3h is excluded")
	assert.Equal(t, 10, resp.TotalResults)
	assert.Len(t, resp.Destinations, 10)
	assert.Contains(t, resp.SearchMetadata.FiltersApplied, "maxFlightTime: 3h")
}

func TestStaticTier_FiltersAndTruncation(t *testing.T) {
	tier := newStaticTier()

	resp, err := tier.Attempt(context.Background(), recommend.Request{
		Origin: "LHR", Theme: "culture", PriceRange: "budget", Countries: []string{"DE", "CZ", "PT"}, MaxResults: 2,
	})
	require.NoError(t, err)

	// BER, PRG, LIS are budget culture cities in those countries
	assert.Equal(t, 3, resp.TotalResults)
	require.Len(t, resp.Destinations, 2)
	for _, d := range resp.Destinations {
		assert.Equal(t, theme.Budget, d.PriceTier)
		assert.Contains(t, []string{"DE", "CZ", "PT"}, d.CountryCode)
	}
	total := 0
	for _, s := range resp.CountrySummary {
		total += s.CityCount
	}
	assert.Equal(t, 2, total)
	assert.Equal(t, []string{"priceRange: budget", "countries: DE,CZ,PT", "maxResults: 2"}, resp.SearchMetadata.FiltersApplied)
}

func TestStaticTier_PriceRangeAnyDoesNotFilter(t *testing.T) {
	tier := newStaticTier()

	all, err := tier.Attempt(context.Background(), recommend.Request{Origin: "LHR", Theme: "luxury"})
	require.NoError(t, err)
	anyRange, err := tier.Attempt(context.Background(), recommend.Request{Origin: "LHR", Theme: "luxury", PriceRange: "any"})
	require.NoError(t, err)

	assert.Equal(t, all.TotalResults, anyRange.TotalResults)
}

func TestStaticTier_UnsupportedTheme(t *testing.T) {
	_, err := newStaticTier().Attempt(context.Background(), recommend.Request{Origin: "LHR", Theme: "shopping"})
	assert.ErrorIs(t, err, theme.ErrUnsupportedTheme)
}

func TestProviderTier_FailingProviderYieldsEstimates(t *testing.T) {
	resolver := pricing.NewResolver(failingExplorer{}, "GBP", zerolog.Nop())
	batch := pricing.NewBatchResolver(resolver, pricing.BatchConfig{Size: 5, Delay: 0}, zerolog.Nop())
	tier := recommend.NewProviderTier(theme.Default(), batch, 0, true)

	resp, err := tier.Attempt(context.Background(), recommend.Request{Origin: "LHR", Theme: "relaxation", MaxResults: 50})
	require.NoError(t, err)

	cands := theme.Default().CitiesForTheme(theme.Relaxation, theme.DefaultMinScore)
	assert.Equal(t, len(cands), resp.TotalResults)
	require.Len(t, resp.Destinations, len(cands))
	for _, d := range resp.Destinations {
		assert.Equal(t, pricing.Estimated, d.Quote.Source, d.Code)
		want := pricing.EstimateQuote(d.Code, d.AverageFlightTime, "GBP")
		assert.Equal(t, want.Min, d.Quote.Min, d.Code)
		assert.Equal(t, want.Max, d.Quote.Max, d.Code)
	}
}

func TestProviderTier_LivePricesRankFirst(t *testing.T) {
	explorer := &liveExplorer{prices: map[string]float64{"KEF": 40, "INN": 45}}
	resolver := pricing.NewResolver(explorer, "GBP", zerolog.Nop())
	batch := pricing.NewBatchResolver(resolver, pricing.BatchConfig{Size: 3, Delay: 0}, zerolog.Nop())
	tier := recommend.NewProviderTier(theme.Default(), batch, 0, true)

	resp, err := tier.Attempt(context.Background(), recommend.Request{Origin: "LHR", Theme: "adventure", MaxFlightTimeHours: hours(3)})
	require.NoError(t, err)

	require.GreaterOrEqual(t, len(resp.Destinations), 2)
	assert.Equal(t, "KEF", resp.Destinations[0].Code)
	assert.Equal(t, "£40", resp.Destinations[0].Price)
	assert.Equal(t, "INN", resp.Destinations[1].Code)
	assert.Equal(t, pricing.Live, resp.Destinations[1].Quote.Source)
}

func TestProviderTier_Disabled(t *testing.T) {
	tier := recommend.NewProviderTier(theme.Default(), nil, 0, false)

	_, err := tier.Attempt(context.Background(), recommend.Request{Origin: "LHR", Theme: "party"})

	assert.ErrorIs(t, err, recommend.ErrTierDisabled)
}

func TestCascade_Backend500AndProviderDisabledEqualsStatic(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	clock := fixedClock()
	static := newStaticTier()
	c := recommend.NewCascade(zerolog.Nop(), recommend.Options{Now: clock},
		recommend.NewRemoteTier(srv.URL, time.Second, recommend.BreakerSettings{}, zerolog.Nop()),
		recommend.NewProviderTier(theme.Default(), nil, 0, false),
		static,
	)
	req := recommend.Request{Origin: "LHR", Theme: "culture", MaxFlightTimeHours: hours(4)}

	got, err := c.Recommend(context.Background(), req)
	require.NoError(t, err)

	staticOnly := recommend.NewCascade(zerolog.Nop(), recommend.Options{Now: clock}, static)
	want, err := staticOnly.Recommend(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, want, got)
	assert.NotEmpty(t, got.Destinations)
}

// liveExplorer returns fixed live prices for a few destinations.
type liveExplorer struct {
	prices map[string]float64
}

func (l *liveExplorer) Explore(context.Context, pricing.ExploreQuery) ([]pricing.Offer, error) {
	var out []pricing.Offer
	for code, p := range l.prices {
		out = append(out, pricing.Offer{DestinationCode: code, Price: pricing.Price{Currency: "GBP", Total: p}})
	}
	return out, nil
}
