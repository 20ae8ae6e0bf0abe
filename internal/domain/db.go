package domain

import "context"

// Database defines lifecycle operations for the underlying store.
// Each implementation (SQLite, Postgres, memory) owns its own migration
// files and strategy, so the whole backend can be swapped.
type Database interface {
	Migrate(ctx context.Context) error
	Ping(ctx context.Context) error
	Close() error
	Contents() ContentStore
	Users() UserStore
	UserWriter() UserWriter
}
