package submission

import (
	"context"

	"buildstone/pkg/platform/sentinel"
)

// UnconfiguredStore stands in when no DATABASE_URL was provided or the initial
// connection failed. Every operation fails fast with ErrNotConfigured instead
// of attempting a connection, so the service keeps answering liveness and chat
// requests while storage calls surface as storage errors.
type UnconfiguredStore struct{}

func NewUnconfiguredStore() *UnconfiguredStore { return &UnconfiguredStore{} }

func (*UnconfiguredStore) Insert(context.Context, string, map[string]any) (string, error) {
	return "", sentinel.ErrNotConfigured
}

func (*UnconfiguredStore) Recent(context.Context, string, map[string]any, int) ([]Document, error) {
	return nil, sentinel.ErrNotConfigured
}

func (*UnconfiguredStore) Ping(context.Context) error {
	return sentinel.ErrNotConfigured
}

func (*UnconfiguredStore) Collections(context.Context) ([]string, error) {
	return nil, sentinel.ErrNotConfigured
}
