package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/bnema/upgradewatch/internal/application/port"
	"github.com/bnema/upgradewatch/internal/logging"
)

// DefaultRetryAfter is how long a failed open is reported before the next
// attempt.
const DefaultRetryAfter = time.Minute

// JournalDB opens the journal on first use. A failed open (read-only home,
// full disk) is not permanent: it is retried once RetryAfter has passed, so
// a long-running watch recovers without flooding the log on every event.
type JournalDB struct {
	path       string
	retryAfter time.Duration
	clock      clockwork.Clock

	mu       sync.Mutex
	db       *sql.DB
	lastErr  error
	failedAt time.Time
}

var _ port.JournalStore = (*JournalDB)(nil)

// JournalOption customizes a JournalDB.
type JournalOption func(*JournalDB)

// WithRetryAfter sets the pause after a failed open.
func WithRetryAfter(d time.Duration) JournalOption {
	return func(j *JournalDB) {
		if d > 0 {
			j.retryAfter = d
		}
	}
}

// WithJournalClock replaces the clock used for retry pacing.
func WithJournalClock(c clockwork.Clock) JournalOption {
	return func(j *JournalDB) {
		j.clock = c
	}
}

// NewJournalDB creates a store for the journal at path without opening it.
func NewJournalDB(path string, opts ...JournalOption) *JournalDB {
	j := &JournalDB{
		path:       path,
		retryAfter: DefaultRetryAfter,
		clock:      clockwork.NewRealClock(),
	}
	for _, opt := range opts {
		opt(j)
	}
	return j
}

// Open implements port.JournalStore. Concurrent callers share one attempt.
func (j *JournalDB) Open(ctx context.Context) (*sql.DB, error) {
	j.mu.Lock()
	defer j.mu.Unlock()

	if j.db != nil {
		return j.db, nil
	}
	if j.lastErr != nil && j.clock.Since(j.failedAt) < j.retryAfter {
		return nil, j.lastErr
	}

	log := logging.FromContext(ctx)
	db, err := NewConnection(ctx, j.path)
	if err != nil {
		j.lastErr = fmt.Errorf("open journal %s: %w", j.path, err)
		j.failedAt = j.clock.Now()
		log.Error().Err(err).Dur("retry_after", j.retryAfter).Msg("event journal unavailable")
		return nil, j.lastErr
	}

	j.db, j.lastErr = db, nil
	return db, nil
}

// Opened implements port.JournalStore.
func (j *JournalDB) Opened() bool {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.db != nil
}

// Path implements port.JournalStore.
func (j *JournalDB) Path() string {
	return j.path
}

// Close implements port.JournalStore. The store can be reopened afterwards.
func (j *JournalDB) Close() error {
	j.mu.Lock()
	defer j.mu.Unlock()

	if j.db == nil {
		return nil
	}
	err := j.db.Close()
	j.db = nil
	return err
}
