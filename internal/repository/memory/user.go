package memory

import (
	"context"

	"github.com/msomdec/content-api/internal/domain"
)

// UserRepository implements domain.UserStore and domain.UserWriter in memory.
type UserRepository struct {
	db *DB
}

func (r *UserRepository) Create(ctx context.Context, user *domain.User) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	if r.db.closed {
		return domain.NewStoreError("insert user", errClosed)
	}
	if _, exists := r.db.users[user.Username]; exists {
		return domain.ErrDuplicateUsername
	}

	r.db.nextID.user++
	user.ID = r.db.nextID.user
	r.db.users[user.Username] = *user
	return nil
}

func (r *UserRepository) FindByUsername(ctx context.Context, username string) (*domain.User, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	if r.db.closed {
		return nil, domain.NewStoreError("query user by username", errClosed)
	}

	u, ok := r.db.users[username]
	if !ok {
		return nil, nil
	}
	return &u, nil
}
