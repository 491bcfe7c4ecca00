// Package handler exposes the chat endpoint.
package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"buildstone/internal/platform/metrics"
	"buildstone/internal/platform/middleware"
	"buildstone/internal/transport/http/shared"
	dErrors "buildstone/pkg/domain-errors"
)

// Responder is the reply engine contract the handler depends on.
type Responder interface {
	Respond(message string, history []string) string
}

// Handler handles the chat endpoint.
type Handler struct {
	logger  *slog.Logger
	engine  Responder
	metrics *metrics.Metrics
}

func New(engine Responder, logger *slog.Logger, m *metrics.Metrics) *Handler {
	return &Handler{logger: logger, engine: engine, metrics: m}
}

// Register mounts the chat route on the router.
func (h *Handler) Register(r chi.Router) {
	r.Post("/api/chat", h.handleChat)
}

// chatRequest is ephemeral: messages are never persisted. History rides along
// for wire compatibility and defaults to empty.
type chatRequest struct {
	Message string   `json:"message"`
	History []string `json:"history"`
}

type chatResponse struct {
	Reply string `json:"reply"`
}

func (h *Handler) handleChat(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req chatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.WarnContext(ctx, "undecodable chat payload",
			"request_id", middleware.GetRequestID(ctx),
			"error", err.Error(),
		)
		shared.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "invalid request body"))
		return
	}
	if req.Message == "" {
		shared.WriteError(w, dErrors.Validation("message", "is required"))
		return
	}

	reply := h.engine.Respond(req.Message, req.History)
	h.metrics.RecordChatReply()
	shared.WriteJSON(w, http.StatusOK, chatResponse{Reply: reply})
}
