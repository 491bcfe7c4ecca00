// Package status serves the liveness probe and the storage diagnostic. Both
// swallow storage faults and report them in the payload instead of failing the
// request: an operator probing a broken deployment still needs an answer.
package status

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"buildstone/internal/transport/http/shared"
)

// Store is the slice of the storage handle the diagnostic needs.
type Store interface {
	Ping(ctx context.Context) error
	Collections(ctx context.Context) ([]string, error)
}

// maxCollectionsListed bounds the diagnostic payload.
const maxCollectionsListed = 10

// Handler handles the liveness and diagnostic endpoints.
type Handler struct {
	logger       *slog.Logger
	store        Store
	databaseName string
	urlSet       bool
}

func New(store Store, databaseName string, urlSet bool, logger *slog.Logger) *Handler {
	return &Handler{logger: logger, store: store, databaseName: databaseName, urlSet: urlSet}
}

// Register mounts the status routes on the router.
func (h *Handler) Register(r chi.Router) {
	r.Get("/", h.handleRoot)
	r.Get("/test", h.handleDiagnostic)
}

func (h *Handler) handleRoot(w http.ResponseWriter, _ *http.Request) {
	shared.WriteJSON(w, http.StatusOK, map[string]string{
		"message": "Construction & Stone Co Backend Running",
	})
}

// diagnosticResponse reports storage availability without exposing the
// connection string or credentials.
type diagnosticResponse struct {
	Backend          string   `json:"backend"`
	Database         string   `json:"database"`
	DatabaseURLSet   bool     `json:"database_url_set"`
	DatabaseName     string   `json:"database_name"`
	ConnectionStatus string   `json:"connection_status"`
	Collections      []string `json:"collections"`
}

func (h *Handler) handleDiagnostic(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	resp := diagnosticResponse{
		Backend:          "running",
		Database:         "not available",
		DatabaseURLSet:   h.urlSet,
		DatabaseName:     h.databaseName,
		ConnectionStatus: "not connected",
		Collections:      []string{},
	}

	if err := h.store.Ping(ctx); err != nil {
		h.logger.WarnContext(ctx, "storage diagnostic failed", "error", err.Error())
		resp.Database = "error: " + err.Error()
		shared.WriteJSON(w, http.StatusOK, resp)
		return
	}

	resp.Database = "connected"
	resp.ConnectionStatus = "connected"

	if collections, err := h.store.Collections(ctx); err == nil {
		if len(collections) > maxCollectionsListed {
			collections = collections[:maxCollectionsListed]
		}
		resp.Collections = collections
	}

	shared.WriteJSON(w, http.StatusOK, resp)
}
