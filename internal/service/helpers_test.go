package service_test

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/msomdec/content-api/internal/domain"
	"github.com/msomdec/content-api/internal/repository/sqlite"
)

func newTestDB(t *testing.T) *sqlite.DB {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")
	db, err := sqlite.New(dbPath)
	if err != nil {
		t.Fatalf("New DB: %v", err)
	}
	if err := db.Migrate(context.Background()); err != nil {
		t.Fatalf("Migrate: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

var errConnRefused = errors.New("connection refused")

// failingStore reports a store failure from every operation.
type failingStore struct{}

func (failingStore) Create(ctx context.Context, content domain.Content) (*domain.Content, error) {
	return nil, domain.NewStoreError("insert content", errConnRefused)
}

func (failingStore) Find(ctx context.Context, id int64) (*domain.Content, error) {
	return nil, domain.NewStoreError("query content by id", errConnRefused)
}

func (failingStore) FindByUsername(ctx context.Context, username string) (*domain.User, error) {
	return nil, domain.NewStoreError("query user by username", errConnRefused)
}
