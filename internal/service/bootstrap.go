package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/msomdec/content-api/internal/domain"
)

// BootstrapUser creates the given account if no user with that name exists.
// It is idempotent and is the only path that creates users.
func BootstrapUser(ctx context.Context, users domain.UserStore, writer domain.UserWriter, passwords PasswordScheme, username, password string) error {
	if username == "" || password == "" {
		return fmt.Errorf("%w: bootstrap username and password are required", domain.ErrInvalidInput)
	}

	existing, err := users.FindByUsername(ctx, username)
	if err != nil {
		return fmt.Errorf("look up bootstrap user: %w", err)
	}
	if existing != nil {
		slog.Debug("bootstrap user already exists", "username", username)
		return nil
	}

	stored, err := passwords.Hash(password)
	if err != nil {
		return err
	}

	if err := writer.Create(ctx, &domain.User{Username: username, Password: stored}); err != nil {
		// Another instance may have created it between the lookup and the insert.
		if errors.Is(err, domain.ErrDuplicateUsername) {
			return nil
		}
		return fmt.Errorf("create bootstrap user: %w", err)
	}

	slog.Info("bootstrap user created", "username", username)
	return nil
}
