// Package config loads process settings from the environment.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config holds runtime settings for the API process.
type Config struct {
	Port string `env:"PORT" env-default:"3000"`

	Database  DatabaseConfig
	Auth      AuthConfig
	Bootstrap BootstrapConfig
	Log       LogConfig
}

type DatabaseConfig struct {
	Driver string `env:"DATABASE_DRIVER" env-default:"sqlite"`
	Path   string `env:"DATABASE_PATH" env-default:"data.db"`
	URL    string `env:"DATABASE_URL"`
}

type AuthConfig struct {
	JWTSecret      string        `env:"JWT_SECRET"`
	TokenTTL       time.Duration `env:"TOKEN_TTL" env-default:"1h"`
	TokenIssuer    string        `env:"TOKEN_ISSUER" env-default:"content-api"`
	PasswordScheme string        `env:"PASSWORD_SCHEME" env-default:"bcrypt"`
	BcryptCost     int           `env:"BCRYPT_COST" env-default:"12"`
	SignInRate     float64       `env:"SIGNIN_RATE" env-default:"1"`
	SignInBurst    int           `env:"SIGNIN_BURST" env-default:"5"`
	RequireAuth    bool          `env:"REQUIRE_AUTH" env-default:"false"`
}

type BootstrapConfig struct {
	Username string `env:"BOOTSTRAP_USERNAME"`
	Password string `env:"BOOTSTRAP_PASSWORD"`
}

type LogConfig struct {
	Level  string `env:"LOG_LEVEL" env-default:"info"`
	Format string `env:"LOG_FORMAT" env-default:"text"`
}

// Load reads the environment into a Config and validates it.
func Load() (Config, error) {
	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return Config{}, fmt.Errorf("read environment: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks values that cannot be expressed as defaults.
func (c Config) Validate() error {
	var errs []error

	switch c.Database.Driver {
	case "sqlite", "memory":
	case "postgres":
		if c.Database.URL == "" {
			errs = append(errs, errors.New("DATABASE_URL is required when DATABASE_DRIVER=postgres"))
		}
	default:
		errs = append(errs, fmt.Errorf("unknown DATABASE_DRIVER %q", c.Database.Driver))
	}

	if c.Auth.JWTSecret == "" {
		errs = append(errs, errors.New("JWT_SECRET environment variable is required"))
	} else if len(c.Auth.JWTSecret) < 32 {
		errs = append(errs, errors.New("JWT_SECRET must be at least 32 characters for HMAC-SHA256 security"))
	}
	if c.Auth.TokenTTL <= 0 {
		errs = append(errs, fmt.Errorf("TOKEN_TTL must be positive, got %s", c.Auth.TokenTTL))
	}

	switch c.Auth.PasswordScheme {
	case "bcrypt":
		if c.Auth.BcryptCost < 4 || c.Auth.BcryptCost > 14 {
			errs = append(errs, fmt.Errorf("BCRYPT_COST must be between 4 and 14, got %d", c.Auth.BcryptCost))
		}
	case "plaintext":
	default:
		errs = append(errs, fmt.Errorf("unknown PASSWORD_SCHEME %q", c.Auth.PasswordScheme))
	}

	if c.Auth.SignInRate < 0 || c.Auth.SignInBurst < 1 {
		errs = append(errs, errors.New("SIGNIN_RATE must be >= 0 and SIGNIN_BURST >= 1"))
	}

	if (c.Bootstrap.Username == "") != (c.Bootstrap.Password == "") {
		errs = append(errs, errors.New("BOOTSTRAP_USERNAME and BOOTSTRAP_PASSWORD must be set together"))
	}

	if _, err := c.Log.SlogLevel(); err != nil {
		errs = append(errs, err)
	}
	if c.Log.Format != "text" && c.Log.Format != "json" {
		errs = append(errs, fmt.Errorf("unknown LOG_FORMAT %q", c.Log.Format))
	}

	return errors.Join(errs...)
}

// SlogLevel maps LOG_LEVEL onto a slog.Level.
func (c LogConfig) SlogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.ToUpper(c.Level))); err != nil {
		return 0, fmt.Errorf("invalid LOG_LEVEL %q", c.Level)
	}
	return level, nil
}
