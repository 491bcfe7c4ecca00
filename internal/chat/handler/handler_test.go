package handler

import (
	"bytes"
	"log/slog"
	"net/http"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"

	"buildstone/internal/chat"
	"buildstone/internal/platform/metrics"
	"buildstone/pkg/testutil"
)

var testMetrics = metrics.New()

func newChatRouter() http.Handler {
	logger := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
	h := New(chat.NewEngine(), logger, testMetrics)
	r := chi.NewRouter()
	h.Register(r)
	return r
}

func TestChatReturnsReply(t *testing.T) {
	router := newChatRouter()

	req := testutil.NewJSONRequest(t, http.MethodPost, "/api/chat", map[string]any{
		"message": "hello",
	})
	rr := testutil.DoRequest(router, req)

	testutil.AssertStatus(t, rr, http.StatusOK)
	resp := testutil.UnmarshalResponse[struct {
		Reply string `json:"reply"`
	}](t, rr)
	assert.Equal(t, "Hello! How can I assist with your project today?", resp.Reply)
}

func TestChatHistoryIsOptional(t *testing.T) {
	router := newChatRouter()

	req := testutil.NewJSONRequest(t, http.MethodPost, "/api/chat", map[string]any{
		"message": "granite",
		"history": []string{"hello", "marble"},
	})
	rr := testutil.DoRequest(router, req)

	testutil.AssertStatus(t, rr, http.StatusOK)
	resp := testutil.UnmarshalResponse[struct {
		Reply string `json:"reply"`
	}](t, rr)
	assert.Contains(t, resp.Reply, "granite")
}

func TestChatRejectsMissingMessage(t *testing.T) {
	router := newChatRouter()

	req := testutil.NewJSONRequest(t, http.MethodPost, "/api/chat", map[string]any{})
	rr := testutil.DoRequest(router, req)

	testutil.AssertStatus(t, rr, http.StatusBadRequest)
	resp := testutil.UnmarshalResponse[struct {
		Error string `json:"error"`
		Field string `json:"field"`
	}](t, rr)
	assert.Equal(t, "validation_error", resp.Error)
	assert.Equal(t, "message", resp.Field)
}

func TestChatRejectsMalformedBody(t *testing.T) {
	router := newChatRouter()

	req := testutil.NewRequestWithBody(t, http.MethodPost, "/api/chat", "{not json")
	rr := testutil.DoRequest(router, req)

	testutil.AssertStatus(t, rr, http.StatusBadRequest)
}
