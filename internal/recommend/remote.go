package recommend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"
	gobreaker "github.com/sony/gobreaker/v2"

	"github.com/neexbeast/wayfarer-admin/internal/observability"
)

const (
	remotePath           = "/api/recommendations/theme"
	defaultRemoteTimeout = 5 * time.Second
	breakerName          = "recommendation-backend"
	breakerTripAfter     = 5
)

// RemoteTier delegates to the product recommendation backend behind a circuit breaker.
type RemoteTier struct {
	url     string
	client  *http.Client
	breaker *gobreaker.CircuitBreaker[*Response]
	log     zerolog.Logger
}

// BreakerSettings tunes the RemoteTier circuit breaker.
type BreakerSettings struct {
	// OpenTimeout is how long the breaker stays open before probing again.
	OpenTimeout time.Duration
	// TripAfter is the number of consecutive failures that opens the breaker.
	TripAfter uint32
}

// NewRemoteTier constructs a RemoteTier for baseURL. An empty baseURL disables the tier.
func NewRemoteTier(baseURL string, timeout time.Duration, bs BreakerSettings, log zerolog.Logger) *RemoteTier {
	if timeout <= 0 {
		timeout = defaultRemoteTimeout
	}
	if bs.OpenTimeout <= 0 {
		bs.OpenTimeout = 30 * time.Second
	}
	if bs.TripAfter == 0 {
		bs.TripAfter = breakerTripAfter
	}

	observability.CircuitBreakerState.WithLabelValues(breakerName).Set(0)
	breaker := gobreaker.NewCircuitBreaker[*Response](gobreaker.Settings{
		Name:        breakerName,
		MaxRequests: 1,
		Interval:    time.Minute,
		Timeout:     bs.OpenTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= bs.TripAfter
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			log.Info().Str("breaker", name).Str("from", from.String()).Str("to", to.String()).Msg("circuit breaker state change")
			observability.CircuitBreakerState.WithLabelValues(name).Set(stateValue(to))
		},
	})

	url := ""
	if baseURL != "" {
		url = strings.TrimRight(baseURL, "/") + remotePath
	}
	return &RemoteTier{
		url:     url,
		client:  &http.Client{Timeout: timeout},
		breaker: breaker,
		log:     log,
	}
}

func (r *RemoteTier) Name() string { return "remote" }

// Attempt posts req to the backend. Non-2xx, transport and decode errors fail the tier;
// an open breaker fails it without a network call.
func (r *RemoteTier) Attempt(ctx context.Context, req Request) (*Response, error) {
	if r.url == "" {
		return nil, ErrTierDisabled
	}
	resp, err := r.breaker.Execute(func() (*Response, error) {
		return r.post(ctx, req)
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}

// State reports the current breaker state.
func (r *RemoteTier) State() gobreaker.State {
	return r.breaker.State()
}

func (r *RemoteTier) post(ctx context.Context, req Request) (*Response, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("marshaling request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, r.url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")

	start := time.Now()
	httpResp, err := r.client.Do(httpReq)
	if err != nil {
		observability.ObserveExternal("backend", "recommendations-theme", 0, time.Since(start))
		return nil, fmt.Errorf("POST %s: %w", remotePath, err)
	}
	defer httpResp.Body.Close()
	observability.ObserveExternal("backend", "recommendations-theme", httpResp.StatusCode, time.Since(start))

	if httpResp.StatusCode < 200 || httpResp.StatusCode > 299 {
		b, _ := io.ReadAll(io.LimitReader(httpResp.Body, 1024))
		return nil, fmt.Errorf("POST %s returned status %d: %s", remotePath, httpResp.StatusCode, strings.TrimSpace(string(b)))
	}

	var out Response
	if err := json.NewDecoder(httpResp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("decoding backend response: %w", err)
	}
	if out.Destinations == nil {
		out.Destinations = []Destination{}
	}
	if out.CountrySummary == nil {
		out.CountrySummary = SummarizeByCountry(out.Destinations)
	}
	return &out, nil
}

func stateValue(s gobreaker.State) float64 {
	switch s {
	case gobreaker.StateClosed:
		return 0
	case gobreaker.StateHalfOpen:
		return 1
	case gobreaker.StateOpen:
		return 2
	default:
		return -1
	}
}
