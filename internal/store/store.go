package store

import (
	"database/sql"
	"errors"
	"strings"
	"time"
)

var (
	// ErrNotFound means the referenced row does not exist (or, for updates
	// and deletes, did not exist by the time the write ran).
	ErrNotFound = errors.New("not found")
	// ErrDuplicate means a uniqueness constraint rejected the write.
	ErrDuplicate = errors.New("duplicate")
)

// Store is the storage adapter. All SQL lives here, along with the
// serialize/deserialize boundary for the structured TEXT columns
// (product specs, order line items). Everything above this layer works
// with structured types only.
type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// withTx scopes one unit of work: begin on entry, rollback on any error
// path, commit on success. No transaction escapes the callback.
func (s *Store) withTx(fn func(tx *sql.Tx) error) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	if err := fn(tx); err != nil {
		tx.Rollback()
		return err
	}
	return tx.Commit()
}

// now is the canonical timestamp format for every created_at/updated_at
// column. RFC3339 in UTC sorts the same lexically and chronologically.
func now() string {
	return time.Now().UTC().Format(time.RFC3339)
}

// isUniqueViolation recognizes sqlite's UNIQUE constraint error without
// depending on driver-internal error codes.
func isUniqueViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}
