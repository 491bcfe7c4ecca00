package submission

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"
)

// InMemoryStore keeps submissions in process memory. It backs the contract
// tests and is the reference semantics for ordering, limits and filters. It
// intentionally favors clarity over performance.
type InMemoryStore struct {
	mu   sync.RWMutex
	docs map[string][]Document
}

func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{docs: make(map[string][]Document)}
}

func (s *InMemoryStore) Insert(_ context.Context, collection string, doc map[string]any) (string, error) {
	id := collection + ":" + uuid.NewString()

	stored := make(Document, len(doc)+1)
	for k, v := range doc {
		stored[k] = v
	}
	stored["id"] = id

	s.mu.Lock()
	defer s.mu.Unlock()
	s.docs[collection] = append(s.docs[collection], stored)
	return id, nil
}

func (s *InMemoryStore) Recent(_ context.Context, collection string, filter map[string]any, limit int) ([]Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := []Document{}
	records := s.docs[collection]
	for i := len(records) - 1; i >= 0 && len(out) < limit; i-- {
		if matches(records[i], filter) {
			out = append(out, records[i])
		}
	}
	return out, nil
}

func (s *InMemoryStore) Ping(context.Context) error { return nil }

func (s *InMemoryStore) Collections(context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	names := make([]string, 0, len(s.docs))
	for name := range s.docs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

func matches(doc Document, filter map[string]any) bool {
	for k, want := range filter {
		if doc[k] != want {
			return false
		}
	}
	return true
}
