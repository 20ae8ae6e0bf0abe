package service

import (
	"context"

	"github.com/msomdec/content-api/internal/domain"
)

// ContentService exposes content operations to the transport layer.
// It adds no policy of its own; it exists so handlers never depend on a
// concrete store.
type ContentService struct {
	contents domain.ContentStore
}

// NewContentService creates a new ContentService.
func NewContentService(contents domain.ContentStore) *ContentService {
	return &ContentService{contents: contents}
}

// Create persists content and returns the stored record.
func (s *ContentService) Create(ctx context.Context, content domain.Content) (*domain.Content, error) {
	return s.contents.Create(ctx, content)
}

// Find returns the record with the given id, or nil if there is none.
func (s *ContentService) Find(ctx context.Context, id int64) (*domain.Content, error) {
	return s.contents.Find(ctx, id)
}
