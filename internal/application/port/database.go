// Package port defines interfaces for infrastructure adapters.
package port

import (
	"context"
	"database/sql"
)

// JournalStore hands out the event journal database. Nothing touches disk
// until Open is first called, so a watcher that never sees an upgrade never
// creates the journal.
type JournalStore interface {
	// Open returns the migrated journal, opening it if needed. After a
	// failure, Open keeps returning that error until the store allows
	// another attempt.
	Open(ctx context.Context) (*sql.DB, error)
	// Opened reports whether the journal is open.
	Opened() bool
	// Path is the journal file location.
	Path() string
	Close() error
}
