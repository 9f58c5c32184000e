package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"github.com/rs/zerolog"
)

// RouterConfig carries the HTTP-layer settings for NewRouter.
type RouterConfig struct {
	Token              string
	CORSOrigins        []string
	RateLimitPerMinute int
	Metrics            http.Handler
}

// NewRouter builds and returns the Chi router with all routes configured.
// Health and metrics are unauthenticated; everything else requires bearer auth.
// Rate limiting is applied globally per IP.
func NewRouter(handlers *Handlers, cfg RouterConfig, db, redisClient pinger, log zerolog.Logger) *chi.Mux {
	r := chi.NewRouter()

	limit := cfg.RateLimitPerMinute
	if limit <= 0 {
		limit = 60
	}

	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.CORSOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Authorization", "Content-Type", "X-Request-Id"},
		ExposedHeaders: []string{"X-Request-Id"},
		MaxAge:         300,
	}))
	r.Use(RequestLogger(log))
	r.Use(httprate.LimitByIP(limit, time.Minute))

	r.Get("/api/v1/health", HealthHandlerFunc(db, redisClient, log))
	if cfg.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", cfg.Metrics)
	}

	r.Group(func(r chi.Router) {
		r.Use(BearerAuth(cfg.Token))
		r.Post("/api/v1/recommendations/theme", handlers.RecommendByTheme)
		r.Get("/api/v1/themes", handlers.ListThemes)
		r.Get("/api/v1/themes/{theme}/cities", handlers.ThemeCities)
		r.Get("/api/v1/cities", handlers.ListCities)
		r.Get("/api/v1/cities/{code}", handlers.GetCity)
		r.Get("/api/v1/catalog/stats", handlers.CatalogStats)
		r.Get("/api/v1/searches", handlers.ListSearches)
		r.Get("/api/v1/searches/stats", handlers.SearchStats)
	})

	return r
}

// Ensure chi.Mux implements http.Handler.
var _ http.Handler = (*chi.Mux)(nil)
