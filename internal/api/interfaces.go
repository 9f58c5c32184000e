package api

import (
	"context"

	"github.com/google/uuid"

	"github.com/neexbeast/wayfarer-admin/internal/recommend"
	"github.com/neexbeast/wayfarer-admin/internal/storage"
	"github.com/neexbeast/wayfarer-admin/internal/theme"
)

// Recommender runs the recommendation cascade.
type Recommender interface {
	Recommend(ctx context.Context, req recommend.Request) (*recommend.Response, error)
}

// Catalog defines the read-only catalog queries needed by handlers.
type Catalog interface {
	Cities() []theme.City
	Candidates(t theme.Theme, minScore int) []theme.City
	CitiesByMultipleThemes(themes []theme.Theme, minScore int) []theme.City
	CityByCode(code string) (theme.City, bool)
	Statistics() theme.Stats
}

// SearchLog defines the search audit operations needed by handlers.
type SearchLog interface {
	RecordSearch(ctx context.Context, s storage.Search) (uuid.UUID, error)
	ListRecentSearches(ctx context.Context, limit int) ([]storage.Search, error)
	CountSearchesByTheme(ctx context.Context) ([]storage.ThemeCount, error)
}
