package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/neexbeast/wayfarer-admin/internal/recommend"
)

const (
	DefaultListLimit = 50
	MaxListLimit     = 200
)

// Querier abstracts the subset of pgxpool.Pool used by Repository.
// This allows injection of a mock in tests.
type Querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

// Search is one logged recommendation request.
type Search struct {
	ID               uuid.UUID         `json:"id"`
	Origin           string            `json:"origin"`
	Theme            string            `json:"theme"`
	Filters          recommend.Request `json:"filters"`
	TotalResults     int               `json:"totalResults"`
	ProcessingTimeMs int64             `json:"processingTimeMs"`
	SearchedAt       time.Time         `json:"searchedAt"`
}

// ThemeCount is the number of logged searches for one theme.
type ThemeCount struct {
	Theme string `json:"theme"`
	Count int    `json:"count"`
}

// Repository provides database access for the recommendation search log.
type Repository struct {
	q Querier
}

// NewRepository constructs a Repository backed by the given pool.
func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{q: pool}
}

// NewRepositoryWithQuerier constructs a Repository with a custom Querier (for tests).
func NewRepositoryWithQuerier(q Querier) *Repository {
	return &Repository{q: q}
}

// SearchFromResponse builds the log entry for a served recommendation.
func SearchFromResponse(req recommend.Request, resp *recommend.Response) Search {
	return Search{
		Origin:           resp.SearchMetadata.Origin,
		Theme:            resp.SearchMetadata.Theme,
		Filters:          req,
		TotalResults:     resp.TotalResults,
		ProcessingTimeMs: resp.SearchMetadata.ProcessingTimeMs,
		SearchedAt:       resp.SearchMetadata.SearchedAt,
	}
}

// RecordSearch inserts s and returns its ID. A zero ID is generated, a zero
// SearchedAt defaults to now.
func (r *Repository) RecordSearch(ctx context.Context, s Search) (uuid.UUID, error) {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	if s.SearchedAt.IsZero() {
		s.SearchedAt = time.Now().UTC()
	}

	filtersJSON, err := json.Marshal(s.Filters)
	if err != nil {
		return uuid.Nil, fmt.Errorf("marshaling filters for search %s: %w", s.ID, err)
	}

	const q = `
		INSERT INTO recommendation_searches
			(id, origin, theme, filters, total_results, processing_time_ms, searched_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	if _, err := r.q.Exec(ctx, q, s.ID, s.Origin, s.Theme, filtersJSON, s.TotalResults, s.ProcessingTimeMs, s.SearchedAt); err != nil {
		return uuid.Nil, fmt.Errorf("inserting search %s: %w", s.ID, err)
	}

	return s.ID, nil
}

// ListRecentSearches returns up to limit searches, newest first.
// limit <= 0 uses DefaultListLimit; it is capped at MaxListLimit.
func (r *Repository) ListRecentSearches(ctx context.Context, limit int) ([]Search, error) {
	if limit <= 0 {
		limit = DefaultListLimit
	}
	limit = min(limit, MaxListLimit)

	const q = `
		SELECT id, origin, theme, filters, total_results, processing_time_ms, searched_at
		FROM recommendation_searches
		ORDER BY searched_at DESC
		LIMIT $1
	`

	rows, err := r.q.Query(ctx, q, limit)
	if err != nil {
		return nil, fmt.Errorf("querying recent searches: %w", err)
	}
	defer rows.Close()

	results := []Search{}
	for rows.Next() {
		var s Search
		var filtersJSON []byte

		if err := rows.Scan(
			&s.ID,
			&s.Origin,
			&s.Theme,
			&filtersJSON,
			&s.TotalResults,
			&s.ProcessingTimeMs,
			&s.SearchedAt,
		); err != nil {
			return nil, fmt.Errorf("scanning search row: %w", err)
		}

		if err := json.Unmarshal(filtersJSON, &s.Filters); err != nil {
			return nil, fmt.Errorf("unmarshaling filters for search %s: %w", s.ID, err)
		}

		results = append(results, s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating search rows: %w", err)
	}

	return results, nil
}

// CountSearchesByTheme returns search counts per theme, most searched first.
func (r *Repository) CountSearchesByTheme(ctx context.Context) ([]ThemeCount, error) {
	const q = `
		SELECT theme, COUNT(*)
		FROM recommendation_searches
		GROUP BY theme
		ORDER BY COUNT(*) DESC, theme
	`

	rows, err := r.q.Query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("counting searches by theme: %w", err)
	}
	defer rows.Close()

	results := []ThemeCount{}
	for rows.Next() {
		var tc ThemeCount
		if err := rows.Scan(&tc.Theme, &tc.Count); err != nil {
			return nil, fmt.Errorf("scanning theme count row: %w", err)
		}
		results = append(results, tc)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating theme count rows: %w", err)
	}

	return results, nil
}

// Ping checks database connectivity.
func (r *Repository) Ping(ctx context.Context) error {
	if _, err := r.q.Exec(ctx, "SELECT 1"); err != nil {
		return fmt.Errorf("pinging database: %w", err)
	}
	return nil
}
