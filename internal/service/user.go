package service

import (
	"context"
	"fmt"

	"github.com/msomdec/content-api/internal/domain"
)

// UserService implements sign-in.
type UserService struct {
	users     domain.UserStore
	passwords PasswordScheme
	tokens    TokenIssuer
}

// NewUserService creates a new UserService.
func NewUserService(users domain.UserStore, passwords PasswordScheme, tokens TokenIssuer) *UserService {
	return &UserService{
		users:     users,
		passwords: passwords,
		tokens:    tokens,
	}
}

// SignIn looks up the user and checks the password. It returns a session on
// success and (nil, nil) when the user does not exist or the password does
// not match. Store failures are returned unchanged.
func (s *UserService) SignIn(ctx context.Context, username, password string) (*domain.Session, error) {
	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, nil
	}

	if !s.passwords.Verify(user.Password, password) {
		return nil, nil
	}

	session, err := s.tokens.Issue(user.Username)
	if err != nil {
		return nil, fmt.Errorf("issue token: %w", err)
	}
	return session, nil
}
