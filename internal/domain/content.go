package domain

import (
	"context"
	"time"
)

// Content is a titled text record. ID and timestamps are assigned by the
// store on first persistence and are zero until then.
type Content struct {
	ID        int64
	Title     string
	Body      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewContent returns an unsaved Content with the given title and body.
func NewContent(title, body string) Content {
	return Content{Title: title, Body: body}
}

// Persisted reports whether the record has been written to a store.
func (c Content) Persisted() bool {
	return c.ID != 0
}

// ContentStore defines persistence operations for content records.
// Find returns (nil, nil) when no record matches.
type ContentStore interface {
	Create(ctx context.Context, content Content) (*Content, error)
	Find(ctx context.Context, id int64) (*Content, error)
}
