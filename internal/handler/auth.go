package handler

import (
	"context"
	"net/http"

	"github.com/msomdec/content-api/internal/domain"
)

// UserService is the sign-in capability the transport depends on.
type UserService interface {
	SignIn(ctx context.Context, username, password string) (*domain.Session, error)
}

// AuthHandler handles authentication-related HTTP requests.
type AuthHandler struct {
	users UserService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(users UserService) *AuthHandler {
	return &AuthHandler{users: users}
}

// HandleSignIn processes a JSON sign-in request.
// POST /service/auth/signin
// Request:  {"username":"...","password":"..."}
// Response: {"token":"..."} or {"token":null} for rejected credentials
func (h *AuthHandler) HandleSignIn(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := readJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body.")
		return
	}

	session, err := h.users.SignIn(r.Context(), req.Username, req.Password)
	if err != nil {
		writeInternalError(w, r, "sign in", err)
		return
	}

	if session == nil {
		writeJSON(w, http.StatusOK, SignInResponse{})
		return
	}
	writeJSON(w, http.StatusOK, SignInResponse{Token: &session.Token})
}
