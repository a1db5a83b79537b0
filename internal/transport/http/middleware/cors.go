package middleware

import (
	"net/http"

	"github.com/rs/cors"
)

// CORS разрешает браузерные запросы с перечисленных источников.
// "*" среди origins разрешает любой источник; учётные данные тогда не передаются.
func CORS(origins []string) Middleware {
	allowAll := false
	for _, o := range origins {
		if o == "*" {
			allowAll = true
		}
	}

	c := cors.New(cors.Options{
		AllowedOrigins:   origins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders:   []string{"Authorization", "Content-Type", "X-Request-Id"},
		ExposedHeaders:   []string{"X-Request-Id"},
		AllowCredentials: !allowAll,
		MaxAge:           300,
	})

	return c.Handler
}
