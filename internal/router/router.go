package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"homeservices/internal/handlers"
	"homeservices/internal/middleware"
)

// Options configures the router.
type Options struct {
	AllowedOrigins []string
	// Registry receives the HTTP metrics and backs /metrics.
	Registry *prometheus.Registry
}

// New builds the HTTP routing table.
func New(h *handlers.Handler, opts Options) http.Handler {
	reg := opts.Registry
	if reg == nil {
		reg = prometheus.NewRegistry()
	}
	metrics := middleware.NewMetrics(reg)

	origins := opts.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}

	r := chi.NewRouter()
	r.Use(chimw.RealIP)
	r.Use(middleware.RequestID)
	r.Use(middleware.RequestLogger)
	r.Use(chimw.Recoverer)
	r.Use(metrics.Handler)
	r.Use(chimw.StripSlashes)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", middleware.RequestIDHeader},
		ExposedHeaders: []string{middleware.RequestIDHeader},
		MaxAge:         300,
	}))

	r.NotFound(handlers.NotFoundHandler)
	r.MethodNotAllowed(handlers.MethodNotAllowedHandler)

	r.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))

	r.Route("/api", func(r chi.Router) {
		r.Get("/ping", h.PingHandler)
		r.Get("/health", h.HealthHandler)

		// catalog
		r.Route("/services", func(r chi.Router) {
			r.Get("/", h.ListServicesHandler)
			r.Post("/", h.CreateServiceHandler)
			r.Get("/stats", h.ServiceStatsHandler)
			r.Get("/{id}", h.GetServiceHandler)
			r.Put("/{id}", h.UpdateServiceHandler)
			r.Patch("/{id}", h.UpdateServiceHandler)
		})
		r.Route("/agencies", func(r chi.Router) {
			r.Get("/", h.ListAgenciesHandler)
			r.Post("/", h.CreateAgencyHandler)
			r.Get("/stats", h.AgencyStatsHandler)
			r.Get("/{id}", h.GetAgencyHandler)
			r.Put("/{id}", h.UpdateAgencyHandler)
			r.Patch("/{id}", h.UpdateAgencyHandler)
		})

		// leads
		r.Route("/quotes", func(r chi.Router) {
			r.Get("/", h.ListQuotesHandler)
			r.Post("/", h.CreateQuoteHandler)
			r.Get("/{id}", h.GetQuoteHandler)
		})
		r.Route("/contact", func(r chi.Router) {
			r.Get("/", h.ListContactsHandler)
			r.Post("/", h.CreateContactHandler)
			r.Get("/{id}", h.GetContactHandler)
		})

		// content
		r.Route("/content", func(r chi.Router) {
			r.Get("/", h.ListContentHandler)
			r.Get("/by_type", h.ContentByTypeHandler)
			r.Get("/{type}", h.ContentTypeHandler)
		})
	})

	return r
}
