package submission

import "context"

// Document is a stored record as the engine returns it, id included.
type Document map[string]any

// Store is the narrow storage handle injected into the Service. It is
// interface-driven to keep the domain logic testable and to allow swapping the
// in-memory store and the SurrealDB store without rewiring business code.
//
// Insert assigns the identifier; callers never pick ids. Recent returns the
// newest records first, capped at limit, with an equality filter over document
// fields (empty filter means all). A collection that does not exist yet reads
// as empty, not as an error.
type Store interface {
	Insert(ctx context.Context, collection string, doc map[string]any) (string, error)
	Recent(ctx context.Context, collection string, filter map[string]any, limit int) ([]Document, error)
	Ping(ctx context.Context) error
	Collections(ctx context.Context) ([]string, error)
}
