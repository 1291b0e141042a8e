package memory

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

const schema = `
CREATE TABLE IF NOT EXISTS selections (
	provider   TEXT NOT NULL,
	query      TEXT NOT NULL,
	value      TEXT NOT NULL,
	updated_at TIMESTAMP NOT NULL,
	PRIMARY KEY (provider, query)
)`

// Store is the persistent cross-run selection memory, keyed by
// (provider, normalized query). Values are opaque encoded records; an
// empty value records an explicit "skip" decision.
type Store struct {
	db *sql.DB
}

// NewStore creates a store on an open database, creating the schema if
// needed.
func NewStore(db *sql.DB) (*Store, error) {
	if _, err := db.Exec(schema); err != nil {
		return nil, fmt.Errorf("create selections table: %w", err)
	}
	return &Store{db: db}, nil
}

// Selection is one remembered decision.
type Selection struct {
	Provider  string
	Query     string
	Value     []byte
	UpdatedAt time.Time
}

// Get retrieves a remembered selection. Returns nil, false if none.
func (s *Store) Get(ctx context.Context, provider, query string) ([]byte, bool) {
	var value string
	err := s.db.QueryRowContext(ctx,
		"SELECT value FROM selections WHERE provider = ? AND query = ?",
		provider, query,
	).Scan(&value)
	if err != nil {
		return nil, false
	}
	return []byte(value), true
}

// Put stores or replaces a selection.
func (s *Store) Put(ctx context.Context, provider, query string, value []byte) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO selections (provider, query, value, updated_at)
		 VALUES (?, ?, ?, ?)
		 ON CONFLICT(provider, query) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		provider, query, string(value), time.Now(),
	)
	if err != nil {
		return fmt.Errorf("selection put: %w", err)
	}
	return nil
}

// Delete removes a remembered selection.
func (s *Store) Delete(ctx context.Context, provider, query string) error {
	_, err := s.db.ExecContext(ctx,
		"DELETE FROM selections WHERE provider = ? AND query = ?", provider, query)
	if err != nil {
		return fmt.Errorf("selection delete: %w", err)
	}
	return nil
}

// List returns all selections, optionally filtered by provider.
func (s *Store) List(ctx context.Context, provider string) ([]Selection, error) {
	q := "SELECT provider, query, value, updated_at FROM selections ORDER BY provider, query"
	args := []any{}
	if provider != "" {
		q = "SELECT provider, query, value, updated_at FROM selections WHERE provider = ? ORDER BY query"
		args = append(args, provider)
	}

	rows, err := s.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("selection list: %w", err)
	}
	defer rows.Close()

	var out []Selection
	for rows.Next() {
		var sel Selection
		var value string
		if err := rows.Scan(&sel.Provider, &sel.Query, &value, &sel.UpdatedAt); err != nil {
			return nil, fmt.Errorf("selection scan: %w", err)
		}
		sel.Value = []byte(value)
		out = append(out, sel)
	}
	return out, rows.Err()
}

// Prune removes selections not updated within maxAge.
// Returns the number of entries removed.
func (s *Store) Prune(ctx context.Context, maxAge time.Duration) (int64, error) {
	result, err := s.db.ExecContext(ctx,
		"DELETE FROM selections WHERE updated_at < ?", time.Now().Add(-maxAge))
	if err != nil {
		return 0, fmt.Errorf("selection prune: %w", err)
	}
	return result.RowsAffected()
}
