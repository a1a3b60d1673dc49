package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpmiddleware "github.com/outreachai/outreach-ai-platform/internal/http/middleware"
	"github.com/outreachai/outreach-ai-platform/internal/outreach"
	"github.com/outreachai/outreach-ai-platform/pkg/logging"
)

// Config holds router configuration
type Config struct {
	Logger             *logging.Logger
	OutreachHandler    *outreach.Handler
	MetricsHandler     http.Handler
	CORSAllowedOrigins []string
}

// New creates a new Chi router with all routes configured
func New(cfg *Config) http.Handler {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Compress(5))
	if len(cfg.CORSAllowedOrigins) > 0 {
		r.Use(httpmiddleware.CORS(cfg.CORSAllowedOrigins))
	}
	if cfg.Logger != nil {
		r.Use(httpmiddleware.RequestLogger(cfg.Logger))
	}

	// Public endpoints
	r.Group(func(public chi.Router) {
		public.Get("/health", cfg.OutreachHandler.HealthCheck)
		public.Post("/generate/legacy", cfg.OutreachHandler.GenerateLegacy)
		if cfg.MetricsHandler != nil {
			public.Handle("/metrics", cfg.MetricsHandler)
		}
	})

	// Pipeline endpoints: the bearer token is the caller's model credential
	// and is required before any body parsing happens.
	r.Group(func(authed chi.Router) {
		authed.Use(httpmiddleware.RequireBearer())
		authed.Post("/parse_profile", cfg.OutreachHandler.ParseProfile)
		authed.Post("/generate", cfg.OutreachHandler.Generate)
	})

	return r
}
