package handler

import (
	"bytes"
	"log/slog"
	"net/http"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"buildstone/internal/platform/metrics"
	"buildstone/internal/submission"
	"buildstone/pkg/testutil"
)

var testMetrics = metrics.New()

func newSubmissionRouter(t *testing.T) (http.Handler, *submission.Service) {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
	svc, err := submission.NewService(submission.NewInMemoryStore(), logger, testMetrics)
	require.NoError(t, err)

	h := New(svc, logger)
	r := chi.NewRouter()
	h.Register(r)
	return r, svc
}

type createResult struct {
	Status string `json:"status"`
	ID     string `json:"id"`
}

type errorResult struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Field   string `json:"field"`
}

func TestCreateInquiry(t *testing.T) {
	router, _ := newSubmissionRouter(t)

	req := testutil.NewJSONRequest(t, http.MethodPost, "/api/inquiries", map[string]any{
		"name":    "Ada Lovelace",
		"email":   "ada@example.com",
		"subject": "Countertop",
		"message": "Need a quote for Carrara.",
	})
	rr := testutil.DoRequest(router, req)

	testutil.AssertStatus(t, rr, http.StatusOK)
	resp := testutil.UnmarshalResponse[createResult](t, rr)
	assert.Equal(t, "ok", resp.Status)
	assert.NotEmpty(t, resp.ID)
}

func TestCreateOrder(t *testing.T) {
	router, _ := newSubmissionRouter(t)

	req := testutil.NewJSONRequest(t, http.MethodPost, "/api/orders", map[string]any{
		"customer_name": "Grace Hopper",
		"email":         "grace@example.com",
		"product_type":  "granite",
		"product_name":  "Blue Pearl",
		"quantity":      "3 slabs",
	})
	rr := testutil.DoRequest(router, req)

	testutil.AssertStatus(t, rr, http.StatusOK)
	resp := testutil.UnmarshalResponse[createResult](t, rr)
	assert.NotEmpty(t, resp.ID)
}

func TestCreateMeeting(t *testing.T) {
	router, _ := newSubmissionRouter(t)

	req := testutil.NewJSONRequest(t, http.MethodPost, "/api/meetings", map[string]any{
		"name":  "Alan Turing",
		"email": "alan@example.com",
		"date":  "2026-09-15",
		"time":  "14:00",
	})
	rr := testutil.DoRequest(router, req)

	testutil.AssertStatus(t, rr, http.StatusOK)
	resp := testutil.UnmarshalResponse[createResult](t, rr)
	assert.NotEmpty(t, resp.ID)
}

func TestCreateRejectsMalformedEmail(t *testing.T) {
	router, _ := newSubmissionRouter(t)

	req := testutil.NewJSONRequest(t, http.MethodPost, "/api/inquiries", map[string]any{
		"name":    "Ada",
		"email":   "not-an-email",
		"subject": "x",
		"message": "y",
	})
	rr := testutil.DoRequest(router, req)

	testutil.AssertStatus(t, rr, http.StatusBadRequest)
	resp := testutil.UnmarshalResponse[errorResult](t, rr)
	assert.Equal(t, "validation_error", resp.Error)
	assert.Equal(t, "email", resp.Field)

	// Rejected submissions must not be persisted.
	recentReq := testutil.NewJSONRequest(t, http.MethodGet, "/api/recent", nil)
	recentRR := testutil.DoRequest(router, recentReq)
	snapshot := testutil.UnmarshalResponse[submission.Snapshot](t, recentRR)
	assert.Empty(t, snapshot.Inquiries)
}

func TestCreateRejectsMalformedBody(t *testing.T) {
	router, _ := newSubmissionRouter(t)

	req := testutil.NewRequestWithBody(t, http.MethodPost, "/api/orders", "{broken")
	rr := testutil.DoRequest(router, req)

	testutil.AssertStatus(t, rr, http.StatusBadRequest)
	resp := testutil.UnmarshalResponse[errorResult](t, rr)
	assert.Equal(t, "bad_request", resp.Error)
}

func TestRecentCapsAtFivePerCollection(t *testing.T) {
	router, _ := newSubmissionRouter(t)

	for i := 0; i < 7; i++ {
		req := testutil.NewJSONRequest(t, http.MethodPost, "/api/inquiries", map[string]any{
			"name":    "Ada",
			"email":   "ada@example.com",
			"subject": "s",
			"message": "m",
		})
		testutil.AssertStatus(t, testutil.DoRequest(router, req), http.StatusOK)
	}

	rr := testutil.DoRequest(router, testutil.NewJSONRequest(t, http.MethodGet, "/api/recent", nil))
	testutil.AssertStatus(t, rr, http.StatusOK)

	snapshot := testutil.UnmarshalResponse[submission.Snapshot](t, rr)
	assert.Len(t, snapshot.Inquiries, 5)
	assert.Empty(t, snapshot.Orders)
	assert.Empty(t, snapshot.Meetings)
}

func TestRecentIncludesCreatedRecord(t *testing.T) {
	router, _ := newSubmissionRouter(t)

	req := testutil.NewJSONRequest(t, http.MethodPost, "/api/meetings", map[string]any{
		"name":  "Alan",
		"email": "alan@example.com",
		"date":  "2026-09-15",
		"time":  "09:30",
	})
	created := testutil.UnmarshalResponse[createResult](t, testutil.DoRequest(router, req))

	rr := testutil.DoRequest(router, testutil.NewJSONRequest(t, http.MethodGet, "/api/recent", nil))
	snapshot := testutil.UnmarshalResponse[submission.Snapshot](t, rr)

	require.Len(t, snapshot.Meetings, 1)
	assert.Equal(t, created.ID, snapshot.Meetings[0]["id"])
}

func TestStorageFaultSurfacesAsStorageError(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
	svc, err := submission.NewService(submission.NewUnconfiguredStore(), logger, testMetrics)
	require.NoError(t, err)

	h := New(svc, logger)
	r := chi.NewRouter()
	h.Register(r)

	req := testutil.NewJSONRequest(t, http.MethodPost, "/api/inquiries", map[string]any{
		"name":    "Ada",
		"email":   "ada@example.com",
		"subject": "s",
		"message": "m",
	})
	rr := testutil.DoRequest(r, req)

	testutil.AssertStatus(t, rr, http.StatusInternalServerError)
	resp := testutil.UnmarshalResponse[errorResult](t, rr)
	assert.Equal(t, "storage_error", resp.Error)
}
