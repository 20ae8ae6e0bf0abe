// Package memory is an in-process store used for tests and local runs
// without a database file. Data is lost when the process exits.
package memory

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/msomdec/content-api/internal/domain"
)

var errClosed = errors.New("memory store is closed")

// DB holds all records behind a single lock.
type DB struct {
	mu       sync.RWMutex
	contents map[int64]domain.Content
	users    map[string]domain.User
	nextID   struct{ content, user int64 }
	closed   bool
	now      func() time.Time
}

// New creates an empty in-memory store.
func New() *DB {
	return &DB{
		contents: make(map[int64]domain.Content),
		users:    make(map[string]domain.User),
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// Migrate is a no-op; the maps are ready as soon as New returns.
func (db *DB) Migrate(ctx context.Context) error { return nil }

func (db *DB) Ping(ctx context.Context) error {
	db.mu.RLock()
	defer db.mu.RUnlock()
	if db.closed {
		return errClosed
	}
	return nil
}

// Close makes every later operation fail with a StoreError.
func (db *DB) Close() error {
	db.mu.Lock()
	defer db.mu.Unlock()
	db.closed = true
	return nil
}

func (db *DB) Contents() domain.ContentStore { return &ContentRepository{db: db} }

func (db *DB) Users() domain.UserStore { return &UserRepository{db: db} }

func (db *DB) UserWriter() domain.UserWriter { return &UserRepository{db: db} }
