package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/msomdec/content-api/internal/domain"
)

// ContentRepository implements domain.ContentStore using SQLite.
type ContentRepository struct {
	db *sql.DB
}

// NewContentRepository creates a new SQLite-backed ContentRepository.
func NewContentRepository(db *DB) *ContentRepository {
	return &ContentRepository{db: db.SqlDB}
}

// Create inserts the title and body and returns the stored row with its
// assigned id and timestamps.
func (r *ContentRepository) Create(ctx context.Context, content domain.Content) (*domain.Content, error) {
	now := time.Now().UTC()
	var id int64
	err := r.db.QueryRowContext(ctx,
		`INSERT INTO contents (title, body, created_at, updated_at)
		 VALUES (?, ?, ?, ?)
		 RETURNING id`,
		content.Title, content.Body, now, now,
	).Scan(&id)
	if err != nil {
		return nil, domain.NewStoreError("insert content", err)
	}

	return &domain.Content{
		ID:        id,
		Title:     content.Title,
		Body:      content.Body,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

func (r *ContentRepository) Find(ctx context.Context, id int64) (*domain.Content, error) {
	c := &domain.Content{}
	err := r.db.QueryRowContext(ctx,
		`SELECT id, title, body, created_at, updated_at
		 FROM contents WHERE id = ?`, id,
	).Scan(&c.ID, &c.Title, &c.Body, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, domain.NewStoreError("query content by id", err)
	}
	c.CreatedAt = c.CreatedAt.UTC()
	c.UpdatedAt = c.UpdatedAt.UTC()
	return c, nil
}
