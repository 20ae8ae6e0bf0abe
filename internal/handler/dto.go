package handler

import (
	"time"

	"github.com/msomdec/content-api/internal/domain"
)

// ContentDTO is the JSON representation of a content record. Timestamps are
// null until the record is persisted.
type ContentDTO struct {
	ID        int64      `json:"id"`
	Title     string     `json:"title"`
	Body      string     `json:"body"`
	CreatedAt *time.Time `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at"`
}

func toContentDTO(c *domain.Content) ContentDTO {
	return ContentDTO{
		ID:        c.ID,
		Title:     c.Title,
		Body:      c.Body,
		CreatedAt: optionalTime(c.CreatedAt),
		UpdatedAt: optionalTime(c.UpdatedAt),
	}
}

func optionalTime(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}

// SignInResponse carries the issued token, or null when the credentials
// were not accepted.
type SignInResponse struct {
	Token *string `json:"token"`
}
