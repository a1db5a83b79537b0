package handlers

import (
	"context"
	"net/http"

	"github.com/petershoe2005/GatherU-sub000/pkg/log"
)

// ReadinessCheck проверяет одну зависимость сервиса.
type ReadinessCheck func(ctx context.Context) error

// Livez — процесс жив.
func Livez(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// Healthz — готовность: все проверки зависимостей проходят.
func Healthz(checks map[string]ReadinessCheck) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		failed := map[string]string{}

		for name, check := range checks {
			if err := check(r.Context()); err != nil {
				log.From(r.Context()).Warn("readiness_check_failed", "check", name, "err", err.Error())
				failed[name] = "unavailable"
			}
		}

		if len(failed) > 0 {
			writeJSON(w, http.StatusServiceUnavailable, map[string]any{"status": "unavailable", "checks": failed})
			return
		}

		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}
}
