package domain

import "context"

// User is an account that can sign in. Password holds whatever the
// configured password scheme stores: a bcrypt hash by default.
type User struct {
	ID       int64
	Username string
	Password string
}

// UserStore defines the lookup used by sign-in.
// FindByUsername returns (nil, nil) when no user matches.
type UserStore interface {
	FindByUsername(ctx context.Context, username string) (*User, error)
}

// UserWriter creates accounts. It is only used to seed users at startup and
// is not reachable over HTTP.
type UserWriter interface {
	Create(ctx context.Context, user *User) error
}
