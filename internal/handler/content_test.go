package handler_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/msomdec/content-api/internal/handler"
)

func newContentServer(t *testing.T, s handler.Services) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	handler.RegisterRoutes(mux, s)
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func TestContent_CreateThenFind(t *testing.T) {
	app := newTestApp(t)
	srv := newContentServer(t, app.services())

	resp, err := http.Post(srv.URL+"/service/contents/post", "application/json",
		jsonBody(t, map[string]string{"title": "T", "body": "B"}))
	if err != nil {
		t.Fatalf("POST: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	created := decode[handler.ContentDTO](t, resp)
	if created.ID != 1 || created.Title != "T" || created.Body != "B" {
		t.Fatalf("unexpected created record %+v", created)
	}
	if created.CreatedAt == nil || created.UpdatedAt == nil {
		t.Fatal("expected timestamps in the response")
	}

	resp, err = http.Get(srv.URL + "/service/contents/find/1")
	if err != nil {
		t.Fatalf("GET: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	found := decode[handler.ContentDTO](t, resp)
	if found.ID != created.ID || found.Title != created.Title || found.Body != created.Body {
		t.Fatalf("expected %+v, got %+v", created, found)
	}
	if !found.CreatedAt.Equal(*created.CreatedAt) || !found.UpdatedAt.Equal(*created.UpdatedAt) {
		t.Fatalf("expected identical timestamps, got %v/%v", found.CreatedAt, found.UpdatedAt)
	}
}

func TestContent_Find_NotFound(t *testing.T) {
	app := newTestApp(t)
	srv := newContentServer(t, app.services())

	resp, err := http.Get(srv.URL + "/service/contents/find/999")
	if err != nil {
		t.Fatalf("GET: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.StatusCode)
	}
}

func TestContent_Find_InvalidID(t *testing.T) {
	app := newTestApp(t)
	srv := newContentServer(t, app.services())

	resp, err := http.Get(srv.URL + "/service/contents/find/abc")
	if err != nil {
		t.Fatalf("GET: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}
}

func TestContent_Create_BadBody(t *testing.T) {
	app := newTestApp(t)
	srv := newContentServer(t, app.services())

	resp, err := http.Post(srv.URL+"/service/contents/post", "application/json", strings.NewReader("["))
	if err != nil {
		t.Fatalf("POST: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}
}

func TestContent_StoreErrorsMapTo500(t *testing.T) {
	srv := newContentServer(t, handler.Services{
		Contents: brokenServices{},
		Users:    brokenServices{},
		Store:    brokenServices{},
	})

	resp, err := http.Post(srv.URL+"/service/contents/post", "application/json",
		jsonBody(t, map[string]string{"title": "T", "body": "B"}))
	if err != nil {
		t.Fatalf("POST: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusInternalServerError {
		t.Fatalf("create: expected 500, got %d", resp.StatusCode)
	}

	resp, err = http.Get(srv.URL + "/service/contents/find/1")
	if err != nil {
		t.Fatalf("GET: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusInternalServerError {
		t.Fatalf("find: expected 500, got %d", resp.StatusCode)
	}
	if body := decode[map[string]string](t, resp); body["error"] == "" {
		t.Fatal("expected an error message")
	}
}
