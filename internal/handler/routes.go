package handler

import (
	"net/http"
)

// Services bundles what the routes need. Tokens is required only when
// RequireAuth is set; a nil SignInLimiter disables throttling.
type Services struct {
	Contents      ContentService
	Users         UserService
	Store         Pinger
	Tokens        TokenVerifier
	SignInLimiter Limiter
	RequireAuth   bool
}

// RegisterRoutes sets up all HTTP routes on the given mux.
func RegisterRoutes(mux *http.ServeMux, s Services) {
	authHandler := NewAuthHandler(s.Users)
	contentHandler := NewContentHandler(s.Contents)

	var signIn http.Handler = http.HandlerFunc(authHandler.HandleSignIn)
	if s.SignInLimiter != nil {
		signIn = RateLimit(s.SignInLimiter, signIn)
	}

	var create http.Handler = http.HandlerFunc(contentHandler.HandleCreate)
	if s.RequireAuth {
		create = RequireAuth(s.Tokens, create)
	}

	mux.HandleFunc("GET /healthz", HandleHealthz(s.Store))
	mux.Handle("POST /service/auth/signin", signIn)
	mux.Handle("POST /service/contents/post", create)
	mux.HandleFunc("GET /service/contents/find/{id}", contentHandler.HandleFind)
}

// Wrap applies the middleware every route shares.
func Wrap(h http.Handler) http.Handler {
	return SecurityHeaders(RequestID(RequestLogger(h)))
}
