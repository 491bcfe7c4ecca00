package submission

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"buildstone/internal/platform/metrics"
	dErrors "buildstone/pkg/domain-errors"
)

var testMetrics = metrics.New()

func newTestService(t *testing.T, store Store) *Service {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
	svc, err := NewService(store, logger, testMetrics)
	require.NoError(t, err)
	return svc
}

func TestCreatePersistsAndReturnsID(t *testing.T) {
	store := NewInMemoryStore()
	svc := newTestService(t, store)
	ctx := context.Background()

	id, err := svc.Create(ctx, validInquiry())
	require.NoError(t, err)
	assert.NotEmpty(t, id)

	docs, err := svc.Recent(ctx, KindInquiry, nil, RecentLimit)
	require.NoError(t, err)
	require.Len(t, docs, 1)
	assert.Equal(t, id, docs[0]["id"])
	assert.NotEmpty(t, docs[0]["created_at"], "service stamps creation time")
}

func TestCreateRejectsInvalidBeforePersisting(t *testing.T) {
	store := NewInMemoryStore()
	svc := newTestService(t, store)
	ctx := context.Background()

	inquiry := validInquiry()
	inquiry.Email = "broken"

	_, err := svc.Create(ctx, inquiry)
	require.Error(t, err)
	assert.True(t, dErrors.Is(err, dErrors.CodeValidation))
	assert.Equal(t, "email", dErrors.From(err).Field)

	docs, err := svc.Recent(ctx, KindInquiry, nil, RecentLimit)
	require.NoError(t, err)
	assert.Empty(t, docs, "validation failure must not persist anything")
}

func TestCreateTranslatesStorageFaults(t *testing.T) {
	svc := newTestService(t, NewUnconfiguredStore())

	_, err := svc.Create(context.Background(), validOrder())
	require.Error(t, err)
	assert.True(t, dErrors.Is(err, dErrors.CodeStorage))
}

func TestRecentTranslatesStorageFaults(t *testing.T) {
	svc := newTestService(t, NewUnconfiguredStore())

	_, err := svc.Recent(context.Background(), KindMeeting, nil, RecentLimit)
	require.Error(t, err)
	assert.True(t, dErrors.Is(err, dErrors.CodeStorage))
}

func TestRecentAllCapsEveryCollection(t *testing.T) {
	store := NewInMemoryStore()
	svc := newTestService(t, store)
	ctx := context.Background()

	for i := 0; i < RecentLimit+3; i++ {
		_, err := svc.Create(ctx, validInquiry())
		require.NoError(t, err)
		_, err = svc.Create(ctx, validOrder())
		require.NoError(t, err)
	}
	_, err := svc.Create(ctx, validMeeting())
	require.NoError(t, err)

	snapshot, err := svc.RecentAll(ctx)
	require.NoError(t, err)
	assert.Len(t, snapshot.Inquiries, RecentLimit)
	assert.Len(t, snapshot.Orders, RecentLimit)
	assert.Len(t, snapshot.Meetings, 1)
}

func TestCreateDoesNotDeduplicate(t *testing.T) {
	store := NewInMemoryStore()
	svc := newTestService(t, store)
	ctx := context.Background()

	a, err := svc.Create(ctx, validMeeting())
	require.NoError(t, err)
	b, err := svc.Create(ctx, validMeeting())
	require.NoError(t, err)

	assert.NotEqual(t, a, b)

	docs, err := svc.Recent(ctx, KindMeeting, nil, RecentLimit)
	require.NoError(t, err)
	assert.Len(t, docs, 2)
}
