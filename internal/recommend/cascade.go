package recommend

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/neexbeast/wayfarer-admin/internal/observability"
	"github.com/neexbeast/wayfarer-admin/internal/theme"
)

const (
	DefaultMaxResults = 20
	MaxResultsLimit   = 50
)

// Tier is one data source of the cascade.
type Tier interface {
	Name() string
	Attempt(ctx context.Context, req Request) (*Response, error)
}

// Options tunes a Cascade. Zero values take the package defaults.
type Options struct {
	DefaultMaxResults int
	MaxResults        int
	// Now is the clock used for searchedAt and processing time.
	Now func() time.Time
}

// Cascade tries its tiers in order and returns the first response.
type Cascade struct {
	tiers    []Tier
	opts     Options
	validate *validator.Validate
	log      zerolog.Logger
}

// NewCascade builds a Cascade over tiers, tried in the given order.
func NewCascade(log zerolog.Logger, opts Options, tiers ...Tier) *Cascade {
	if opts.DefaultMaxResults <= 0 {
		opts.DefaultMaxResults = DefaultMaxResults
	}
	if opts.MaxResults <= 0 {
		opts.MaxResults = MaxResultsLimit
	}
	if opts.DefaultMaxResults > opts.MaxResults {
		opts.DefaultMaxResults = opts.MaxResults
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &Cascade{tiers: tiers, opts: opts, validate: validator.New(), log: log}
}

// Normalize validates req and returns it with canonical casing, theme and result limit.
// Errors wrap ErrInvalidRequest or theme.ErrUnsupportedTheme.
func (c *Cascade) Normalize(req Request) (Request, error) {
	req.Origin = strings.ToUpper(strings.TrimSpace(req.Origin))
	req.PriceRange = strings.ToLower(strings.TrimSpace(req.PriceRange))
	if err := c.validate.Struct(req); err != nil {
		return Request{}, fmt.Errorf("%w: %w", ErrInvalidRequest, err)
	}

	t, err := theme.ParseTheme(req.Theme)
	if err != nil {
		return Request{}, err
	}
	req.Theme = string(t)

	if len(req.Countries) > 0 {
		countries := make([]string, len(req.Countries))
		for i, code := range req.Countries {
			countries[i] = strings.ToUpper(code)
		}
		req.Countries = countries
	}

	switch {
	case req.MaxResults == 0:
		req.MaxResults = c.opts.DefaultMaxResults
	case req.MaxResults > c.opts.MaxResults:
		req.MaxResults = c.opts.MaxResults
	}
	return req, nil
}

// Recommend runs req through the tiers. Validation errors abort immediately; otherwise
// each failing tier falls through to the next and ErrAllTiersFailed is returned only
// when every tier failed.
func (c *Cascade) Recommend(ctx context.Context, req Request) (*Response, error) {
	start := c.opts.Now()

	req, err := c.Normalize(req)
	if err != nil {
		return nil, err
	}

	var errs []error
	for _, tier := range c.tiers {
		resp, err := tier.Attempt(ctx, req)
		if err == nil && resp != nil {
			observability.ObserveTier(tier.Name(), "success")
			c.stamp(resp, req, start)
			c.log.Debug().Str("tier", tier.Name()).Str("origin", req.Origin).Str("theme", req.Theme).
				Int("results", resp.TotalResults).Msg("recommendation served")
			return resp, nil
		}
		if err == nil {
			err = errors.New("empty response")
		}
		if errors.Is(err, theme.ErrUnsupportedTheme) || errors.Is(err, ErrInvalidRequest) {
			return nil, err
		}

		outcome := "failure"
		if errors.Is(err, ErrTierDisabled) {
			outcome = "disabled"
		}
		observability.ObserveTier(tier.Name(), outcome)
		c.log.Warn().Err(err).Str("tier", tier.Name()).Str("origin", req.Origin).Msg("recommendation tier unavailable, falling through")
		errs = append(errs, fmt.Errorf("%s tier: %w", tier.Name(), err))
	}

	err = fmt.Errorf("%w: %w", ErrAllTiersFailed, errors.Join(errs...))
	c.log.Error().Err(err).Str("origin", req.Origin).Str("theme", req.Theme).Msg("no recommendation tier succeeded")
	return nil, err
}

// stamp fills the metadata every response carries regardless of tier.
func (c *Cascade) stamp(resp *Response, req Request, start time.Time) {
	if resp.Destinations == nil {
		resp.Destinations = []Destination{}
	}
	if resp.CountrySummary == nil {
		resp.CountrySummary = []CountrySummary{}
	}
	md := &resp.SearchMetadata
	if md.Theme == "" {
		md.Theme = req.Theme
	}
	if md.Origin == "" {
		md.Origin = req.Origin
	}
	if md.FiltersApplied == nil {
		md.FiltersApplied = FiltersApplied(req)
	}
	md.SearchedAt = start.UTC()
	md.ProcessingTimeMs = c.opts.Now().Sub(start).Milliseconds()
}
