// Package httptransport assembles the public router. Handlers live with their
// modules; this package only decides the middleware stack and what gets
// mounted where.
package httptransport

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	chathandler "buildstone/internal/chat/handler"
	"buildstone/internal/platform/metrics"
	"buildstone/internal/platform/middleware"
	"buildstone/internal/status"
	submissionhandler "buildstone/internal/submission/handler"
)

// NewRouter wires all public endpoints behind the shared middleware stack.
func NewRouter(
	submissions *submissionhandler.Handler,
	chat *chathandler.Handler,
	statusHandler *status.Handler,
	m *metrics.Metrics,
	corsOrigins []string,
	logger *slog.Logger,
) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Recovery(logger))
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger(logger))
	r.Use(middleware.CORS(corsOrigins))
	r.Use(middleware.Latency(m))

	statusHandler.Register(r)
	submissions.Register(r)
	chat.Register(r)

	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	return r
}
