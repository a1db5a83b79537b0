// http — REST API feed-service на chi.
package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/petershoe2005/GatherU-sub000/internal/transport/http/handlers"
	"github.com/petershoe2005/GatherU-sub000/internal/transport/http/middleware"
)

// Options — параметры сборки HTTP-роутера.
type Options struct {
	Logger  *slog.Logger
	Timeout time.Duration
	Auth    middleware.AuthOptions
	// AllowedOrigins — источники для CORS; пусто — CORS не подключается.
	AllowedOrigins []string
	// Gatherer — реестр для /metrics; nil — эндпойнт не регистрируется.
	Gatherer prometheus.Gatherer
	// Checks — проверки готовности для /healthz.
	Checks map[string]handlers.ReadinessCheck
}

// NewRouter собирает http.Handler с chi и подключёнными middleware/роутами.
func NewRouter(svc handlers.FeedService, opts Options) http.Handler {
	root := chi.NewRouter()

	// Middleware (внешний -> внутренний).
	root.Use(
		middleware.RequestID(),          // X-Request-Id до логирования
		middleware.Logging(opts.Logger), // request-scoped логгер в контексте
		middleware.Recover(),            // паника -> 500 с тем же логгером
	)

	if len(opts.AllowedOrigins) > 0 {
		root.Use(middleware.CORS(opts.AllowedOrigins))
	}

	// Служебные эндпойнты без авторизации и таймаута.
	root.Get("/livez", handlers.Livez)
	root.Get("/healthz", handlers.Healthz(opts.Checks))
	if opts.Gatherer != nil {
		root.Handle("/metrics", promhttp.HandlerFor(opts.Gatherer, promhttp.HandlerOpts{}))
	}

	h := handlers.New(svc)

	root.Route("/api", func(r chi.Router) {
		r.Use(middleware.ViewerAuth(opts.Auth))
		if opts.Timeout > 0 {
			r.Use(middleware.Timeout(opts.Timeout))
		}

		registerRoutes(r, h)
	})

	return root
}

// registerRoutes — единая точка регистрации всех REST-эндпойнтов.
func registerRoutes(r chi.Router, h *handlers.Handlers) {
	// feed
	r.Get("/feed", h.GetFeed)

	// views
	r.Post("/listings/{id}/views", h.RecordView)

	// viewer
	r.Get("/me/interests", h.GetInterests)
}
