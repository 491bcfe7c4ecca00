package submission

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"sort"
	"strings"

	surrealdb "github.com/surrealdb/surrealdb.go"
	"github.com/surrealdb/surrealdb.go/pkg/marshal"

	"buildstone/pkg/platform/sentinel"
)

// surrealClient is the slice of the SurrealDB driver this store uses, kept as
// an interface so decode paths are testable without a live server.
type surrealClient interface {
	Create(thing string, data map[string]any) (any, error)
	Query(sql string, vars map[string]any) (any, error)
}

// SurrealStore persists submissions in SurrealDB, one table per collection.
// SurrealDB assigns record ids of the form "collection:identifier" and the
// create call is atomic on the server, so id assignment plus insert needs no
// coordination on our side.
type SurrealStore struct {
	db surrealClient
}

// Connect dials SurrealDB, signs in when credentials are present, and selects
// the namespace/database. A failure here is reported to the caller so main can
// fall back to the unconfigured store instead of crashing.
func Connect(url, user, pass, namespace, database string) (*SurrealStore, error) {
	db, err := surrealdb.New(url)
	if err != nil {
		return nil, fmt.Errorf("connect surrealdb: %w", err)
	}
	if user != "" {
		if _, err := db.Signin(map[string]any{"user": user, "pass": pass}); err != nil {
			return nil, fmt.Errorf("signin surrealdb: %w", err)
		}
	}
	if _, err := db.Use(namespace, database); err != nil {
		return nil, fmt.Errorf("use %s/%s: %w", namespace, database, err)
	}
	return &SurrealStore{db: db}, nil
}

// NewSurrealStore wraps an already-connected client. Used by tests.
func NewSurrealStore(db surrealClient) *SurrealStore {
	return &SurrealStore{db: db}
}

func (s *SurrealStore) Insert(_ context.Context, collection string, doc map[string]any) (string, error) {
	created, err := marshal.SmartUnmarshal[Document](s.db.Create(collection, doc))
	if err != nil {
		return "", unavailable(fmt.Sprintf("insert into %s", collection), err)
	}
	if len(created) == 0 {
		return "", unavailable(fmt.Sprintf("insert into %s", collection), errors.New("empty create response"))
	}
	id, ok := created[0]["id"].(string)
	if !ok || id == "" {
		return "", unavailable(fmt.Sprintf("insert into %s", collection), errors.New("create response missing id"))
	}
	return id, nil
}

// fieldPattern limits filter keys to plain identifiers; values always travel
// as bound parameters.
var fieldPattern = regexp.MustCompile(`^[a-zA-Z_][a-zA-Z0-9_]*$`)

func (s *SurrealStore) Recent(_ context.Context, collection string, filter map[string]any, limit int) ([]Document, error) {
	vars := map[string]any{"tb": collection}
	sql := "SELECT * FROM type::table($tb)"

	if len(filter) > 0 {
		keys := make([]string, 0, len(filter))
		for k := range filter {
			if !fieldPattern.MatchString(k) {
				return nil, fmt.Errorf("invalid filter field %q", k)
			}
			keys = append(keys, k)
		}
		sort.Strings(keys)

		conds := make([]string, 0, len(keys))
		for i, k := range keys {
			p := fmt.Sprintf("p%d", i)
			conds = append(conds, fmt.Sprintf("%s = $%s", k, p))
			vars[p] = filter[k]
		}
		sql += " WHERE " + strings.Join(conds, " AND ")
	}
	sql += fmt.Sprintf(" ORDER BY created_at DESC LIMIT %d", limit)

	res, err := s.db.Query(sql, vars)
	if err != nil {
		return nil, unavailable(fmt.Sprintf("query %s", collection), err)
	}

	var raws []marshal.RawQuery[[]Document]
	if err := marshal.UnmarshalRaw(res, &raws); err != nil {
		return nil, unavailable(fmt.Sprintf("decode %s query", collection), err)
	}
	if len(raws) == 0 {
		return []Document{}, nil
	}
	docs := raws[0].Result
	if docs == nil {
		docs = []Document{}
	}
	return docs, nil
}

func (s *SurrealStore) Ping(context.Context) error {
	if _, err := s.db.Query("INFO FOR DB", nil); err != nil {
		return unavailable("ping", err)
	}
	return nil
}

func (s *SurrealStore) Collections(context.Context) ([]string, error) {
	res, err := s.db.Query("INFO FOR DB", nil)
	if err != nil {
		return nil, unavailable("list collections", err)
	}

	var raws []marshal.RawQuery[map[string]any]
	if err := marshal.UnmarshalRaw(res, &raws); err != nil {
		return nil, unavailable("decode db info", err)
	}
	if len(raws) == 0 {
		return []string{}, nil
	}

	// Older server builds report tables under "tb", newer ones under "tables".
	tables, ok := raws[0].Result["tb"].(map[string]any)
	if !ok {
		tables, _ = raws[0].Result["tables"].(map[string]any)
	}

	names := make([]string, 0, len(tables))
	for name := range tables {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

func unavailable(op string, err error) error {
	return fmt.Errorf("%s: %w", op, errors.Join(sentinel.ErrUnavailable, err))
}
