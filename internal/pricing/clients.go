package pricing

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/neexbeast/wayfarer-admin/internal/observability"
)

const (
	httpTimeout = 10 * time.Second

	amadeusDefaultURL     = "https://test.api.amadeus.com"
	amadeusTokenPath      = "/v1/security/oauth2/token"
	amadeusExplorePath    = "/v1/shopping/flight-destinations"
	tokenExpirySlack      = 30 * time.Second
	defaultRequestsPerSec = 5
)

// ErrNotConfigured is returned when the provider has no credentials.
var ErrNotConfigured = errors.New("pricing provider not configured")

// newHTTPClient returns an http.Client with a 10-second timeout.
func newHTTPClient() *http.Client {
	return &http.Client{Timeout: httpTimeout}
}

// AmadeusClient calls the Amadeus flight-destinations API.
// It is safe for concurrent use: the access token is shared behind a mutex and
// outbound calls are rate limited.
type AmadeusClient struct {
	baseURL      string
	clientID     string
	clientSecret string
	client       *http.Client
	limiter      *rate.Limiter

	mu          sync.Mutex
	accessToken string
	tokenExpiry time.Time
}

// NewAmadeusClient constructs a client. An empty baseURL uses the Amadeus test environment.
// rps <= 0 uses 5 requests per second.
func NewAmadeusClient(baseURL, clientID, clientSecret string, rps int) *AmadeusClient {
	if baseURL == "" {
		baseURL = amadeusDefaultURL
	}
	if rps <= 0 {
		rps = defaultRequestsPerSec
	}
	return &AmadeusClient{
		baseURL:      strings.TrimRight(baseURL, "/"),
		clientID:     clientID,
		clientSecret: clientSecret,
		client:       newHTTPClient(),
		limiter:      rate.NewLimiter(rate.Limit(rps), rps),
	}
}

// Configured reports whether credentials are present.
func (c *AmadeusClient) Configured() bool {
	return c.clientID != "" && c.clientSecret != ""
}

type flightDestinationsResponse struct {
	Data []struct {
		Destination string `json:"destination"`
		Price       struct {
			Total    string `json:"total"`
			Currency string `json:"currency"`
		} `json:"price"`
	} `json:"data"`
	Meta struct {
		Currency string `json:"currency"`
	} `json:"meta"`
}

// Explore lists priced destinations reachable from q.Origin.
func (c *AmadeusClient) Explore(ctx context.Context, q ExploreQuery) ([]Offer, error) {
	if !c.Configured() {
		return nil, ErrNotConfigured
	}

	params := url.Values{}
	params.Set("origin", q.Origin)
	if q.MaxFlightTimeHours > 0 {
		params.Set("maxFlightTime", strconv.Itoa(int(math.Ceil(q.MaxFlightTimeHours))))
	}
	if q.DepartureDate != "" {
		params.Set("departureDate", q.DepartureDate)
	}
	if q.SortBy != "" {
		params.Set("sortBy", q.SortBy)
	}

	var raw flightDestinationsResponse
	if err := c.doGet(ctx, amadeusExplorePath+"?"+params.Encode(), &raw); err != nil {
		return nil, fmt.Errorf("amadeus explore from %s: %w", q.Origin, err)
	}

	offers := make([]Offer, 0, len(raw.Data))
	for _, d := range raw.Data {
		total, err := strconv.ParseFloat(d.Price.Total, 64)
		if err != nil || total <= 0 || d.Destination == "" {
			continue
		}
		currency := d.Price.Currency
		if currency == "" {
			currency = raw.Meta.Currency
		}
		offers = append(offers, Offer{
			DestinationCode: strings.ToUpper(d.Destination),
			Price:           Price{Currency: currency, Total: total},
		})
	}

	return offers, nil
}

// doGet performs an authenticated GET and decodes the JSON response into dst.
func (c *AmadeusClient) doGet(ctx context.Context, path string, dst any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limiter: %w", err)
	}

	token, err := c.token(ctx)
	if err != nil {
		return fmt.Errorf("auth failed: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("creating request for %s: %w", path, err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.client.Do(req)
	if err != nil {
		observability.ObserveExternal("amadeus", "flight-destinations", 0, time.Since(start))
		return fmt.Errorf("GET %s: %w", path, err)
	}
	defer resp.Body.Close()
	observability.ObserveExternal("amadeus", "flight-destinations", resp.StatusCode, time.Since(start))

	if resp.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("GET %s returned status %d: %s", path, resp.StatusCode, strings.TrimSpace(string(b)))
	}

	if err := json.NewDecoder(resp.Body).Decode(dst); err != nil {
		return fmt.Errorf("decoding response from %s: %w", path, err)
	}

	return nil
}

// token returns a cached access token, refreshing it when expired.
func (c *AmadeusClient) token(ctx context.Context) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.accessToken != "" && time.Now().Before(c.tokenExpiry) {
		return c.accessToken, nil
	}

	form := url.Values{}
	form.Set("grant_type", "client_credentials")
	form.Set("client_id", c.clientID)
	form.Set("client_secret", c.clientSecret)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+amadeusTokenPath, strings.NewReader(form.Encode()))
	if err != nil {
		return "", fmt.Errorf("creating token request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	start := time.Now()
	resp, err := c.client.Do(req)
	if err != nil {
		observability.ObserveExternal("amadeus", "oauth2-token", 0, time.Since(start))
		return "", fmt.Errorf("token request: %w", err)
	}
	defer resp.Body.Close()
	observability.ObserveExternal("amadeus", "oauth2-token", resp.StatusCode, time.Since(start))

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("token request returned status %d", resp.StatusCode)
	}

	var result struct {
		AccessToken string `json:"access_token"`
		ExpiresIn   int    `json:"expires_in"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", fmt.Errorf("decoding token response: %w", err)
	}
	if result.AccessToken == "" {
		return "", errors.New("token response has no access_token")
	}

	c.accessToken = result.AccessToken
	c.tokenExpiry = time.Now().Add(time.Duration(result.ExpiresIn)*time.Second - tokenExpirySlack)
	return c.accessToken, nil
}
