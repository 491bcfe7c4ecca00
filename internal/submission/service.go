package submission

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"buildstone/internal/platform/metrics"
	dErrors "buildstone/pkg/domain-errors"
)

// RecentLimit caps the per-collection window /api/recent reports.
const RecentLimit = 5

// Service validates submissions and writes them through the injected store.
// It keeps orchestration out of handlers and translates store sentinels into
// coded domain errors.
type Service struct {
	store   Store
	logger  *slog.Logger
	metrics *metrics.Metrics
}

func NewService(store Store, logger *slog.Logger, m *metrics.Metrics) (*Service, error) {
	// The kind→collection table is static; verify it at wiring time so a
	// missing mapping can never reach a request path.
	for _, kind := range Kinds {
		if _, err := CollectionFor(kind); err != nil {
			return nil, err
		}
	}
	return &Service{store: store, logger: logger, metrics: m}, nil
}

// Create validates the record and persists it with a store-assigned id.
// Validation failures reject the write before any persistence attempt; there
// is no deduplication, two identical submissions produce two records.
func (s *Service) Create(ctx context.Context, rec Record) (string, error) {
	if err := rec.Validate(); err != nil {
		return "", err
	}

	collection, err := CollectionFor(rec.Kind())
	if err != nil {
		return "", dErrors.New(dErrors.CodeInternal, err.Error())
	}

	doc := rec.document()
	doc["created_at"] = time.Now().UTC().Format(time.RFC3339Nano)

	id, err := s.store.Insert(ctx, collection, doc)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to persist submission",
			"kind", rec.Kind(),
			"error", err.Error(),
		)
		return "", dErrors.New(dErrors.CodeStorage, fmt.Sprintf("failed to save %s", rec.Kind()))
	}

	s.metrics.RecordSubmission(string(rec.Kind()))
	return id, nil
}

// Recent returns the newest records of one kind, newest first, capped at limit.
func (s *Service) Recent(ctx context.Context, kind Kind, filter map[string]any, limit int) ([]Document, error) {
	collection, err := CollectionFor(kind)
	if err != nil {
		return nil, dErrors.New(dErrors.CodeInternal, err.Error())
	}

	docs, err := s.store.Recent(ctx, collection, filter, limit)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to read recent submissions",
			"kind", kind,
			"error", err.Error(),
		)
		return nil, dErrors.New(dErrors.CodeStorage, fmt.Sprintf("failed to load recent %s records", kind))
	}
	return docs, nil
}

// Snapshot is the /api/recent payload: the latest window per collection.
type Snapshot struct {
	Inquiries []Document `json:"inquiries"`
	Orders    []Document `json:"orders"`
	Meetings  []Document `json:"meetings"`
}

// RecentAll collects the recent window for every kind. A failure on any
// collection fails the whole read; partial admin views would be misleading.
func (s *Service) RecentAll(ctx context.Context) (Snapshot, error) {
	inquiries, err := s.Recent(ctx, KindInquiry, nil, RecentLimit)
	if err != nil {
		return Snapshot{}, err
	}
	orders, err := s.Recent(ctx, KindOrder, nil, RecentLimit)
	if err != nil {
		return Snapshot{}, err
	}
	meetings, err := s.Recent(ctx, KindMeeting, nil, RecentLimit)
	if err != nil {
		return Snapshot{}, err
	}
	return Snapshot{Inquiries: inquiries, Orders: orders, Meetings: meetings}, nil
}
