// Package handler exposes the submission endpoints: one POST per record kind
// plus the bounded recent-records view.
package handler

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"buildstone/internal/platform/middleware"
	"buildstone/internal/submission"
	"buildstone/internal/transport/http/shared"
	dErrors "buildstone/pkg/domain-errors"
)

// Service defines the submission operations the handler needs.
type Service interface {
	Create(ctx context.Context, rec submission.Record) (string, error)
	RecentAll(ctx context.Context) (submission.Snapshot, error)
}

// Handler handles submission endpoints.
type Handler struct {
	logger      *slog.Logger
	submissions Service
}

func New(submissions Service, logger *slog.Logger) *Handler {
	return &Handler{logger: logger, submissions: submissions}
}

// Register mounts the submission routes on the router.
func (h *Handler) Register(r chi.Router) {
	r.Post("/api/inquiries", create[submission.Inquiry](h))
	r.Post("/api/orders", create[submission.Order](h))
	r.Post("/api/meetings", create[submission.Meeting](h))
	r.Get("/api/recent", h.handleRecent)
}

type createResponse struct {
	Status string `json:"status"`
	ID     string `json:"id"`
}

// create decodes one record kind, runs it through the service, and reports the
// assigned identifier. Shared across kinds; only the payload type differs.
func create[R submission.Record](h *Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		var rec R
		if err := json.NewDecoder(r.Body).Decode(&rec); err != nil {
			h.logger.WarnContext(ctx, "undecodable submission payload",
				"request_id", middleware.GetRequestID(ctx),
				"kind", rec.Kind(),
				"error", err.Error(),
			)
			shared.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "invalid request body"))
			return
		}

		id, err := h.submissions.Create(ctx, rec)
		if err != nil {
			if dErrors.Is(err, dErrors.CodeValidation) {
				h.logger.WarnContext(ctx, "submission rejected",
					"request_id", middleware.GetRequestID(ctx),
					"kind", rec.Kind(),
					"error", err.Error(),
				)
			}
			shared.WriteError(w, err)
			return
		}

		shared.WriteJSON(w, http.StatusOK, createResponse{Status: "ok", ID: id})
	}
}

func (h *Handler) handleRecent(w http.ResponseWriter, r *http.Request) {
	snapshot, err := h.submissions.RecentAll(r.Context())
	if err != nil {
		shared.WriteError(w, err)
		return
	}
	shared.WriteJSON(w, http.StatusOK, snapshot)
}
