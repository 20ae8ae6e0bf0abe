package service

import (
	"crypto/subtle"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// Password scheme names accepted by NewPasswordScheme.
const (
	PasswordSchemeBcrypt    = "bcrypt"
	PasswordSchemePlaintext = "plaintext"
)

// PasswordScheme turns passwords into stored credentials and checks them.
type PasswordScheme interface {
	Hash(password string) (string, error)
	Verify(stored, password string) bool
}

// NewPasswordScheme returns the scheme registered under name.
func NewPasswordScheme(name string, bcryptCost int) (PasswordScheme, error) {
	switch name {
	case PasswordSchemeBcrypt:
		return BcryptScheme{Cost: bcryptCost}, nil
	case PasswordSchemePlaintext:
		return PlaintextScheme{}, nil
	default:
		return nil, fmt.Errorf("unknown password scheme %q", name)
	}
}

// BcryptScheme stores salted bcrypt hashes.
type BcryptScheme struct {
	Cost int
}

func (s BcryptScheme) Hash(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.Cost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}

func (s BcryptScheme) Verify(stored, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(stored), []byte(password)) == nil
}

// PlaintextScheme stores passwords as given and compares them exactly.
// It only exists for databases seeded before hashing was introduced.
type PlaintextScheme struct{}

func (PlaintextScheme) Hash(password string) (string, error) {
	return password, nil
}

func (PlaintextScheme) Verify(stored, password string) bool {
	return subtle.ConstantTimeCompare([]byte(stored), []byte(password)) == 1
}
