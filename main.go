package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/msomdec/content-api/internal/config"
	"github.com/msomdec/content-api/internal/domain"
	"github.com/msomdec/content-api/internal/handler"
	"github.com/msomdec/content-api/internal/repository/memory"
	"github.com/msomdec/content-api/internal/repository/postgres"
	"github.com/msomdec/content-api/internal/repository/sqlite"
	"github.com/msomdec/content-api/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	slog.SetDefault(newLogger(cfg.Log))

	db, err := openDatabase(context.Background(), cfg.Database)
	if err != nil {
		slog.Error("failed to open database", "driver", cfg.Database.Driver, "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := db.Migrate(context.Background()); err != nil {
		slog.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}
	slog.Info("database migrations applied", "driver", cfg.Database.Driver)

	passwords, err := service.NewPasswordScheme(cfg.Auth.PasswordScheme, cfg.Auth.BcryptCost)
	if err != nil {
		slog.Error("invalid password scheme", "error", err)
		os.Exit(1)
	}
	if cfg.Auth.PasswordScheme == service.PasswordSchemePlaintext {
		slog.Warn("PASSWORD_SCHEME=plaintext: passwords are stored and compared without hashing")
	}

	if cfg.Bootstrap.Username != "" {
		if err := service.BootstrapUser(context.Background(), db.Users(), db.UserWriter(), passwords,
			cfg.Bootstrap.Username, cfg.Bootstrap.Password); err != nil {
			slog.Error("failed to bootstrap user", "error", err)
			os.Exit(1)
		}
	}

	tokens := service.NewJWTIssuer(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL, cfg.Auth.TokenIssuer)
	contentService := service.NewContentService(db.Contents())
	userService := service.NewUserService(db.Users(), passwords, tokens)

	limiter := service.NewSignInLimiter(cfg.Auth.SignInRate, cfg.Auth.SignInBurst)
	defer limiter.Stop()

	mux := http.NewServeMux()
	handler.RegisterRoutes(mux, handler.Services{
		Contents:      contentService,
		Users:         userService,
		Store:         db,
		Tokens:        tokens,
		SignInLimiter: limiter,
		RequireAuth:   cfg.Auth.RequireAuth,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           handler.Wrap(mux),
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       120 * time.Second,
		MaxHeaderBytes:    1 << 20, // 1MB
	}

	// Graceful shutdown on SIGINT/SIGTERM.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		slog.Info("server starting", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	slog.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("server shutdown error", "error", err)
		os.Exit(1)
	}
	slog.Info("server stopped")
}

func newLogger(cfg config.LogConfig) *slog.Logger {
	level, _ := cfg.SlogLevel()
	opts := &slog.HandlerOptions{Level: level}
	if cfg.Format == "json" {
		return slog.New(slog.NewJSONHandler(os.Stdout, opts))
	}
	return slog.New(slog.NewTextHandler(os.Stdout, opts))
}

func openDatabase(ctx context.Context, cfg config.DatabaseConfig) (domain.Database, error) {
	switch cfg.Driver {
	case "sqlite":
		return sqlite.New(cfg.Path)
	case "postgres":
		return postgres.New(ctx, cfg.URL)
	case "memory":
		return memory.New(), nil
	default:
		return nil, fmt.Errorf("unknown database driver %q", cfg.Driver)
	}
}
