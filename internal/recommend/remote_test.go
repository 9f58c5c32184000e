package recommend_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/rs/zerolog"
	gobreaker "github.com/sony/gobreaker/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/neexbeast/wayfarer-admin/internal/recommend"
)

func TestRemoteTier_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/recommendations/theme", r.URL.Path)

		var req recommend.Request
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "LHR", req.Origin)
		assert.Equal(t, "party", req.Theme)

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"destinations": []map[string]any{
				{"iataCode": "BER", "cityName": "Berlin", "countryCode": "DE", "countryName": "Germany", "matchScore": 98, "price": "£89"},
			},
			"totalResults": 1,
			"searchMetadata": map[string]any{"theme": "party", "origin": "LHR"},
		})
	}))
	defer srv.Close()

	tier := recommend.NewRemoteTier(srv.URL+"/", time.Second, recommend.BreakerSettings{}, zerolog.Nop())
	resp, err := tier.Attempt(context.Background(), recommend.Request{Origin: "LHR", Theme: "party"})

	require.NoError(t, err)
	require.Len(t, resp.Destinations, 1)
	assert.Equal(t, "BER", resp.Destinations[0].Code)
	assert.Equal(t, 98, resp.Destinations[0].MatchScore)
	require.Len(t, resp.CountrySummary, 1)
	assert.Equal(t, "DE", resp.CountrySummary[0].CountryCode)
}

func TestRemoteTier_Non2xxFails(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "bad gateway", http.StatusBadGateway)
	}))
	defer srv.Close()

	tier := recommend.NewRemoteTier(srv.URL, time.Second, recommend.BreakerSettings{}, zerolog.Nop())
	_, err := tier.Attempt(context.Background(), recommend.Request{Origin: "LHR", Theme: "party"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "502")
}

func TestRemoteTier_MalformedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("<html>maintenance</html>"))
	}))
	defer srv.Close()

	tier := recommend.NewRemoteTier(srv.URL, time.Second, recommend.BreakerSettings{}, zerolog.Nop())
	_, err := tier.Attempt(context.Background(), recommend.Request{Origin: "LHR", Theme: "party"})

	require.Error(t, err)
}

func TestRemoteTier_Timeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer srv.Close()

	tier := recommend.NewRemoteTier(srv.URL, 50*time.Millisecond, recommend.BreakerSettings{}, zerolog.Nop())
	_, err := tier.Attempt(context.Background(), recommend.Request{Origin: "LHR", Theme: "party"})

	require.Error(t, err)
}

func TestRemoteTier_Unconfigured(t *testing.T) {
	tier := recommend.NewRemoteTier("", 0, recommend.BreakerSettings{}, zerolog.Nop())

	_, err := tier.Attempt(context.Background(), recommend.Request{Origin: "LHR", Theme: "party"})

	assert.ErrorIs(t, err, recommend.ErrTierDisabled)
}

func TestRemoteTier_BreakerOpensAfterConsecutiveFailures(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		http.Error(w, "down", http.StatusInternalServerError)
	}))
	defer srv.Close()

	tier := recommend.NewRemoteTier(srv.URL, time.Second, recommend.BreakerSettings{TripAfter: 3, OpenTimeout: time.Minute}, zerolog.Nop())
	req := recommend.Request{Origin: "LHR", Theme: "party"}

	for range 3 {
		_, err := tier.Attempt(context.Background(), req)
		require.Error(t, err)
	}
	assert.Equal(t, gobreaker.StateOpen, tier.State())

	_, err := tier.Attempt(context.Background(), req)
	assert.ErrorIs(t, err, gobreaker.ErrOpenState)
	assert.Equal(t, int32(3), hits.Load())
}
