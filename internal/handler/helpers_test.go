package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"path/filepath"
	"testing"
	"time"

	"github.com/msomdec/content-api/internal/domain"
	"github.com/msomdec/content-api/internal/handler"
	"github.com/msomdec/content-api/internal/repository/sqlite"
	"github.com/msomdec/content-api/internal/service"
)

const testJWTSecret = "test-secret-for-handler-tests-0123456789"

type testApp struct {
	db       *sqlite.DB
	contents *service.ContentService
	users    *service.UserService
	tokens   *service.JWTIssuer
	scheme   service.PasswordScheme
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")
	db, err := sqlite.New(dbPath)
	if err != nil {
		t.Fatalf("New DB: %v", err)
	}
	if err := db.Migrate(context.Background()); err != nil {
		t.Fatalf("Migrate: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	scheme := service.BcryptScheme{Cost: 4}
	tokens := service.NewJWTIssuer(testJWTSecret, time.Hour, "content-api")
	return &testApp{
		db:       db,
		contents: service.NewContentService(db.Contents()),
		users:    service.NewUserService(db.Users(), scheme, tokens),
		tokens:   tokens,
		scheme:   scheme,
	}
}

func (a *testApp) services() handler.Services {
	return handler.Services{
		Contents: a.contents,
		Users:    a.users,
		Store:    a.db,
		Tokens:   a.tokens,
	}
}

func (a *testApp) seedUser(t *testing.T, username, password string) {
	t.Helper()
	if err := service.BootstrapUser(context.Background(), a.db.Users(), a.db.UserWriter(), a.scheme, username, password); err != nil {
		t.Fatalf("seed user: %v", err)
	}
}

func jsonBody(t *testing.T, v any) *bytes.Reader {
	t.Helper()
	b, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	return bytes.NewReader(b)
}

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	var v T
	if err := json.NewDecoder(resp.Body).Decode(&v); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	return v
}

var errStoreDown = domain.NewStoreError("query", errors.New("connection refused"))

// brokenServices fails every call with a store error.
type brokenServices struct{}

func (brokenServices) Create(ctx context.Context, content domain.Content) (*domain.Content, error) {
	return nil, errStoreDown
}

func (brokenServices) Find(ctx context.Context, id int64) (*domain.Content, error) {
	return nil, errStoreDown
}

func (brokenServices) SignIn(ctx context.Context, username, password string) (*domain.Session, error) {
	return nil, errStoreDown
}

func (brokenServices) Ping(ctx context.Context) error {
	return errStoreDown
}
