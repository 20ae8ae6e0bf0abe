package memory

import (
	"context"

	"github.com/msomdec/content-api/internal/domain"
)

// ContentRepository implements domain.ContentStore in memory.
type ContentRepository struct {
	db *DB
}

func (r *ContentRepository) Create(ctx context.Context, content domain.Content) (*domain.Content, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	if r.db.closed {
		return nil, domain.NewStoreError("insert content", errClosed)
	}

	r.db.nextID.content++
	now := r.db.now()
	stored := domain.Content{
		ID:        r.db.nextID.content,
		Title:     content.Title,
		Body:      content.Body,
		CreatedAt: now,
		UpdatedAt: now,
	}
	r.db.contents[stored.ID] = stored

	out := stored
	return &out, nil
}

func (r *ContentRepository) Find(ctx context.Context, id int64) (*domain.Content, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	if r.db.closed {
		return nil, domain.NewStoreError("query content by id", errClosed)
	}

	c, ok := r.db.contents[id]
	if !ok {
		return nil, nil
	}
	return &c, nil
}
