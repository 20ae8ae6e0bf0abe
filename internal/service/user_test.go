package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/msomdec/content-api/internal/domain"
	"github.com/msomdec/content-api/internal/repository/sqlite"
	"github.com/msomdec/content-api/internal/service"
)

func newTestUserService(t *testing.T, scheme service.PasswordScheme) (*service.UserService, *sqlite.DB, *service.JWTIssuer) {
	t.Helper()
	db := newTestDB(t)
	issuer := service.NewJWTIssuer(testJWTSecret, time.Hour, "content-api")
	return service.NewUserService(db.Users(), scheme, issuer), db, issuer
}

func seedUser(t *testing.T, db *sqlite.DB, scheme service.PasswordScheme, username, password string) {
	t.Helper()
	if err := service.BootstrapUser(context.Background(), db.Users(), db.UserWriter(), scheme, username, password); err != nil {
		t.Fatalf("seed user %s: %v", username, err)
	}
}

func TestUserService_SignIn(t *testing.T) {
	// Use cost 4 for fast tests.
	scheme := service.BcryptScheme{Cost: 4}
	users, db, issuer := newTestUserService(t, scheme)
	seedUser(t, db, scheme, "alice", "secret")
	ctx := context.Background()

	session, err := users.SignIn(ctx, "alice", "secret")
	if err != nil {
		t.Fatalf("SignIn: %v", err)
	}
	if session == nil || session.Token == "" {
		t.Fatal("expected a session with a non-empty token")
	}

	subject, err := issuer.Verify(session.Token)
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if subject != "alice" {
		t.Fatalf("expected token subject alice, got %q", subject)
	}

	session, err = users.SignIn(ctx, "alice", "wrong")
	if err != nil {
		t.Fatalf("SignIn wrong password: %v", err)
	}
	if session != nil {
		t.Fatal("expected no session for a wrong password")
	}

	session, err = users.SignIn(ctx, "bob", "x")
	if err != nil {
		t.Fatalf("SignIn unknown user: %v", err)
	}
	if session != nil {
		t.Fatal("expected no session for an unknown user")
	}
}

func TestUserService_SignIn_PlaintextScheme(t *testing.T) {
	scheme := service.PlaintextScheme{}
	users, db, _ := newTestUserService(t, scheme)
	ctx := context.Background()

	// Rows written before hashing was introduced hold the raw password.
	if err := db.UserWriter().Create(ctx, &domain.User{Username: "alice", Password: "secret"}); err != nil {
		t.Fatalf("Create: %v", err)
	}

	session, err := users.SignIn(ctx, "alice", "secret")
	if err != nil {
		t.Fatalf("SignIn: %v", err)
	}
	if session == nil {
		t.Fatal("expected a session")
	}

	session, err = users.SignIn(ctx, "alice", "wrong")
	if err != nil || session != nil {
		t.Fatalf("expected no session and no error, got %v, %v", session, err)
	}
}

func TestUserService_SignIn_BcryptRejectsPlaintextRows(t *testing.T) {
	users, db, _ := newTestUserService(t, service.BcryptScheme{Cost: 4})
	ctx := context.Background()

	if err := db.UserWriter().Create(ctx, &domain.User{Username: "alice", Password: "secret"}); err != nil {
		t.Fatalf("Create: %v", err)
	}

	session, err := users.SignIn(ctx, "alice", "secret")
	if err != nil {
		t.Fatalf("SignIn: %v", err)
	}
	if session != nil {
		t.Fatal("expected no session when the stored value is not a bcrypt hash")
	}
}

func TestUserService_SignIn_StoreError(t *testing.T) {
	issuer := service.NewJWTIssuer(testJWTSecret, time.Hour, "content-api")
	users := service.NewUserService(failingStore{}, service.BcryptScheme{Cost: 4}, issuer)

	session, err := users.SignIn(context.Background(), "alice", "secret")
	if !errors.Is(err, domain.ErrStore) {
		t.Fatalf("expected StoreError, got %v", err)
	}
	if session != nil {
		t.Fatal("expected no session alongside an error")
	}
}

type failingIssuer struct{}

func (failingIssuer) Issue(subject string) (*domain.Session, error) {
	return nil, errors.New("signing key unavailable")
}

func TestUserService_SignIn_IssuerError(t *testing.T) {
	scheme := service.PlaintextScheme{}
	db := newTestDB(t)
	seedUser(t, db, scheme, "alice", "secret")
	users := service.NewUserService(db.Users(), scheme, failingIssuer{})

	if _, err := users.SignIn(context.Background(), "alice", "secret"); err == nil {
		t.Fatal("expected the issuer error to surface")
	}
}
