// Package httptransport assembles the HTTP surface: public validation,
// admin-guarded audit history, health, and metrics.
package httptransport

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"nicgate/internal/platform/middleware"
	"nicgate/internal/validation/handler"
	"nicgate/pkg/platform/httputil"
)

// HealthChecker reports whether a dependency is reachable.
type HealthChecker interface {
	Health(ctx context.Context) error
}

// RouterDeps carries everything the router mounts. Auth may be nil only in
// tests; Health entries may be empty when running purely in-memory.
type RouterDeps struct {
	Validation *handler.Handler
	Auth       func(http.Handler) http.Handler
	Logger     *slog.Logger
	Health     map[string]HealthChecker
}

// NewRouter wires all endpoints.
func NewRouter(deps RouterDeps) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)

	deps.Validation.Register(r)

	r.Group(func(pr chi.Router) {
		if deps.Auth != nil {
			pr.Use(deps.Auth)
		}
		deps.Validation.RegisterProtected(pr)
	})

	r.Handle("/metrics", promhttp.Handler())
	r.Get("/healthz", healthHandler(deps.Health))

	return r
}

type healthResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks,omitempty"`
}

func healthHandler(checkers map[string]HealthChecker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		resp := healthResponse{Status: "ok", Checks: make(map[string]string, len(checkers))}
		status := http.StatusOK
		for name, checker := range checkers {
			if err := checker.Health(ctx); err != nil {
				resp.Checks[name] = err.Error()
				resp.Status = "degraded"
				status = http.StatusServiceUnavailable
				continue
			}
			resp.Checks[name] = "ok"
		}

		httputil.WriteJSON(w, status, resp)
	}
}
