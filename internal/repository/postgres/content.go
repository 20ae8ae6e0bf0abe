package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/msomdec/content-api/internal/domain"
)

// ContentRepository implements domain.ContentStore on Postgres.
type ContentRepository struct {
	db DBTX
}

func NewContentRepository(db DBTX) *ContentRepository {
	return &ContentRepository{db: db}
}

// Create inserts the title and body; id and timestamps come from column
// defaults and are read back with RETURNING.
func (r *ContentRepository) Create(ctx context.Context, content domain.Content) (*domain.Content, error) {
	c := &domain.Content{}
	err := r.db.QueryRow(ctx,
		`INSERT INTO contents (title, body) VALUES ($1, $2)
		 RETURNING id, title, body, created_at, updated_at`,
		content.Title, content.Body,
	).Scan(&c.ID, &c.Title, &c.Body, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, domain.NewStoreError("insert content", err)
	}
	c.CreatedAt = c.CreatedAt.UTC()
	c.UpdatedAt = c.UpdatedAt.UTC()
	return c, nil
}

func (r *ContentRepository) Find(ctx context.Context, id int64) (*domain.Content, error) {
	c := &domain.Content{}
	err := r.db.QueryRow(ctx,
		`SELECT id, title, body, created_at, updated_at FROM contents WHERE id = $1`, id,
	).Scan(&c.ID, &c.Title, &c.Body, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, domain.NewStoreError("query content by id", err)
	}
	c.CreatedAt = c.CreatedAt.UTC()
	c.UpdatedAt = c.UpdatedAt.UTC()
	return c, nil
}
