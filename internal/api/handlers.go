package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/neexbeast/wayfarer-admin/internal/recommend"
	"github.com/neexbeast/wayfarer-admin/internal/storage"
	"github.com/neexbeast/wayfarer-admin/internal/theme"
)

const (
	maxBodyBytes        = 1 << 20
	searchLogTimeout    = 2 * time.Second
	defaultCatalogLimit = 50
)

// Handlers holds the dependencies for all HTTP handlers.
type Handlers struct {
	recommender Recommender
	catalog     Catalog
	searches    SearchLog
	log         zerolog.Logger
	pending     sync.WaitGroup
}

// NewHandlers constructs Handlers with all required dependencies.
func NewHandlers(recommender Recommender, catalog Catalog, searches SearchLog, log zerolog.Logger) *Handlers {
	return &Handlers{
		recommender: recommender,
		catalog:     catalog,
		searches:    searches,
		log:         log,
	}
}

// writeJSON encodes v as JSON and writes it with the given status code.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// intParam reads an optional integer query parameter.
func intParam(r *http.Request, name string, def int) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < 0 {
		return 0, errors.New(name + " must be a non-negative integer")
	}
	return v, nil
}

// RecommendByTheme handles POST /api/v1/recommendations/theme.
// Validation errors → 400. Every tier failing → 503. Served searches are logged
// after the response is written; a logging failure does not affect the response.
func (h *Handlers) RecommendByTheme(w http.ResponseWriter, r *http.Request) {
	var req recommend.Request
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body: "+err.Error())
		return
	}

	resp, err := h.recommender.Recommend(r.Context(), req)
	switch {
	case errors.Is(err, recommend.ErrInvalidRequest), errors.Is(err, theme.ErrUnsupportedTheme):
		writeError(w, http.StatusBadRequest, err.Error())
		return
	case errors.Is(err, recommend.ErrAllTiersFailed):
		h.log.Error().Err(err).Str("origin", req.Origin).Str("theme", req.Theme).Msg("recommendation unavailable")
		writeError(w, http.StatusServiceUnavailable, "recommendations temporarily unavailable")
		return
	case err != nil:
		h.log.Error().Err(err).Str("origin", req.Origin).Msg("recommendation failed")
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, http.StatusOK, resp)
	h.recordSearch(r.Context(), storage.SearchFromResponse(req, resp))
}

// recordSearch logs s in the background so the database never delays a response.
func (h *Handlers) recordSearch(parent context.Context, s storage.Search) {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(parent), searchLogTimeout)
	h.pending.Add(1)
	go func() {
		defer h.pending.Done()
		defer cancel()
		defer func() {
			if rec := recover(); rec != nil {
				h.log.Error().Interface("recover", rec).Msg("recording search panicked")
			}
		}()
		if _, err := h.searches.RecordSearch(ctx, s); err != nil {
			h.log.Warn().Err(err).Str("origin", s.Origin).Msg("recording search failed")
		}
	}()
}

// Wait blocks until every background search write has finished.
func (h *Handlers) Wait() {
	h.pending.Wait()
}

// ListThemes handles GET /api/v1/themes.
func (h *Handlers) ListThemes(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, theme.Themes())
}

// ThemeCities handles GET /api/v1/themes/{theme}/cities?minScore=&limit=.
func (h *Handlers) ThemeCities(w http.ResponseWriter, r *http.Request) {
	t, err := theme.ParseTheme(chi.URLParam(r, "theme"))
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	minScore, err := intParam(r, "minScore", theme.DefaultMinScore)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	limit, err := intParam(r, "limit", defaultCatalogLimit)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	cities := h.catalog.Candidates(t, minScore)
	if limit > 0 && len(cities) > limit {
		cities = cities[:limit]
	}
	if cities == nil {
		cities = []theme.City{}
	}
	writeJSON(w, http.StatusOK, cities)
}

// ListCities handles GET /api/v1/cities?themes=a,b&minScore=.
// Without themes the whole catalog is returned.
func (h *Handlers) ListCities(w http.ResponseWriter, r *http.Request) {
	raw := r.URL.Query().Get("themes")
	if raw == "" {
		writeJSON(w, http.StatusOK, h.catalog.Cities())
		return
	}

	var themes []theme.Theme
	for _, s := range strings.Split(raw, ",") {
		t, err := theme.ParseTheme(s)
		if err != nil || t == theme.Mixed {
			writeError(w, http.StatusBadRequest, "unsupported theme: "+strings.TrimSpace(s))
			return
		}
		themes = append(themes, t)
	}
	minScore, err := intParam(r, "minScore", theme.DefaultMultiMinScore)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	cities := h.catalog.CitiesByMultipleThemes(themes, minScore)
	if cities == nil {
		cities = []theme.City{}
	}
	writeJSON(w, http.StatusOK, cities)
}

// GetCity handles GET /api/v1/cities/{code}.
func (h *Handlers) GetCity(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "code")
	city, ok := h.catalog.CityByCode(code)
	if !ok {
		writeError(w, http.StatusNotFound, "city not found: "+code)
		return
	}
	writeJSON(w, http.StatusOK, city)
}

// CatalogStats handles GET /api/v1/catalog/stats.
func (h *Handlers) CatalogStats(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, h.catalog.Statistics())
}

// ListSearches handles GET /api/v1/searches?limit=.
func (h *Handlers) ListSearches(w http.ResponseWriter, r *http.Request) {
	limit, err := intParam(r, "limit", storage.DefaultListLimit)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	searches, err := h.searches.ListRecentSearches(r.Context(), limit)
	if err != nil {
		h.log.Error().Err(err).Msg("listing searches failed")
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	writeJSON(w, http.StatusOK, searches)
}

// SearchStats handles GET /api/v1/searches/stats.
func (h *Handlers) SearchStats(w http.ResponseWriter, r *http.Request) {
	counts, err := h.searches.CountSearchesByTheme(r.Context())
	if err != nil {
		h.log.Error().Err(err).Msg("counting searches failed")
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"byTheme": counts})
}

type pinger interface {
	Ping(ctx context.Context) error
}

// HealthHandlerFunc returns an http.HandlerFunc that checks db and redis connectivity.
// 200 if both respond, 503 otherwise.
func HealthHandlerFunc(db, redis pinger, log zerolog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
		defer cancel()

		status := http.StatusOK
		dbStatus := "ok"
		redisStatus := "ok"

		if err := db.Ping(ctx); err != nil {
			log.Error().Err(err).Msg("health check: db ping failed")
			dbStatus = "error"
			status = http.StatusServiceUnavailable
		}

		if err := redis.Ping(ctx); err != nil {
			log.Error().Err(err).Msg("health check: redis ping failed")
			redisStatus = "error"
			status = http.StatusServiceUnavailable
		}

		overall := "ok"
		if status != http.StatusOK {
			overall = "degraded"
		}
		writeJSON(w, status, map[string]string{
			"status": overall,
			"db":     dbStatus,
			"redis":  redisStatus,
		})
	}
}
