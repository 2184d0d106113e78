package handler

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"go-intranet-app/internal/auth"
	"go-intranet-app/internal/data"
	"go-intranet-app/internal/logger"
	"go-intranet-app/internal/middleware"
	"go-intranet-app/internal/session"
)

// UserStore is the slice of the user repository the auth handlers need.
type UserStore interface {
	FindByEmail(ctx context.Context, email string) (*data.User, error)
	Save(ctx context.Context, user *data.User) error
}

// AuthHandler holds the dependencies for the authentication handlers.
type AuthHandler struct {
	users    UserStore
	hasher   *auth.Hasher
	sessions session.Manager
	log      logger.Logger
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(users UserStore, hasher *auth.Hasher, sessions session.Manager, log logger.Logger) *AuthHandler {
	return &AuthHandler{users: users, hasher: hasher, sessions: sessions, log: log}
}

type credentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// registerHandler creates an account. New accounts get the plain user role;
// admins are promoted out of band.
func (h *AuthHandler) registerHandler(w http.ResponseWriter, r *http.Request) *middleware.AppError {
	var req credentialsRequest
	if appErr := decodeJSON(r, &req); appErr != nil {
		return appErr
	}
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if email == "" || len(req.Password) < 8 {
		return &middleware.AppError{Message: "Email and a password of at least 8 characters are required", Code: http.StatusBadRequest}
	}

	existing, err := h.users.FindByEmail(r.Context(), email)
	if err != nil {
		return appError(err, "Failed to check account")
	}
	if existing != nil {
		return &middleware.AppError{Message: "Account already exists", Code: http.StatusConflict}
	}

	hash, err := h.hasher.Hash(req.Password)
	if err != nil {
		return appError(err, "Failed to create account")
	}

	user := &data.User{
		ID:           uuid.NewString(),
		Email:        email,
		PasswordHash: hash,
		IsAdmin:      false,
		CreatedAt:    time.Now(),
	}
	if err := h.users.Save(r.Context(), user); err != nil {
		return appError(err, "Failed to create account")
	}
	return writeJSON(w, http.StatusCreated, map[string]string{"email": email})
}

// loginHandler verifies credentials and establishes a session. The session
// token is renewed on login to prevent fixation.
func (h *AuthHandler) loginHandler(w http.ResponseWriter, r *http.Request) *middleware.AppError {
	var req credentialsRequest
	if appErr := decodeJSON(r, &req); appErr != nil {
		return appErr
	}
	email := strings.ToLower(strings.TrimSpace(req.Email))

	user, err := h.users.FindByEmail(r.Context(), email)
	if err != nil {
		return appError(err, "Login failed")
	}
	if user == nil {
		return &middleware.AppError{Message: "Invalid credentials", Code: http.StatusUnauthorized}
	}

	match, err := h.hasher.Verify(req.Password, user.PasswordHash)
	if err != nil || !match {
		return &middleware.AppError{Err: err, Message: "Invalid credentials", Code: http.StatusUnauthorized}
	}

	if err := h.sessions.RenewToken(r.Context()); err != nil {
		return appError(err, "Login failed")
	}
	role := "user"
	if user.IsAdmin {
		role = "admin"
	}
	h.sessions.Put(r.Context(), "user_subject", user.Email)
	h.sessions.Put(r.Context(), "user_role", role)

	return writeJSON(w, http.StatusOK, map[string]string{"email": user.Email, "role": role})
}

func (h *AuthHandler) logoutHandler(w http.ResponseWriter, r *http.Request) *middleware.AppError {
	if err := h.sessions.Destroy(r.Context()); err != nil {
		return appError(err, "Logout failed")
	}
	w.WriteHeader(http.StatusNoContent)
	return nil
}

// meHandler reports the current session identity.
func (h *AuthHandler) meHandler(w http.ResponseWriter, r *http.Request) *middleware.AppError {
	userInfo := middleware.GetUserInfo(r.Context())
	return writeJSON(w, http.StatusOK, map[string]string{
		"subject": userInfo.Subject,
		"role":    userInfo.Role,
	})
}
