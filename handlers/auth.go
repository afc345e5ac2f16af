package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/umakantv/go-utils/errs"
	"go.uber.org/zap"

	"goaltrack-service/models"
	"goaltrack-service/services"
)

// AuthHandler handles registration, login, logout, and the session
// user endpoint. Sessions are httpOnly cookies backed by the cache.
type AuthHandler struct {
	users    *services.UserService
	sessions *SessionManager
}

func NewAuthHandler(users *services.UserService, sessions *SessionManager) *AuthHandler {
	return &AuthHandler{users: users, sessions: sessions}
}

// Register handles POST /register - creates an account and logs it in.
func (h *AuthHandler) Register(ctx context.Context, w http.ResponseWriter, r *http.Request) {
	var req models.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logRequest(ctx, "error", "Invalid request body", zap.Error(err))
		writeJSON(w, http.StatusBadRequest, errs.NewValidationError("Invalid JSON"))
		return
	}

	logRequest(ctx, "info", "Registering user", zap.String("email", req.Email))

	user, err := h.users.Register(req)
	if err != nil {
		logRequest(ctx, "info", "Registration rejected", zap.String("reason", err.Error()))
		writeServiceError(ctx, w, err)
		return
	}

	h.sessions.Issue(w, user)
	logRequest(ctx, "info", "User registered", zap.Int("user_id", user.ID))

	writeJSON(w, http.StatusCreated, models.MeResponse{
		ID:       user.ID,
		FullName: user.FullName,
		Email:    user.Email,
	})
}

// Login handles POST /login - verifies credentials and sets the
// session cookie. Failures are deliberately generic: the body never
// says whether the email exists.
func (h *AuthHandler) Login(ctx context.Context, w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logRequest(ctx, "error", "Invalid request body", zap.Error(err))
		writeJSON(w, http.StatusBadRequest, errs.NewValidationError("Invalid JSON"))
		return
	}

	user, err := h.users.Authenticate(req.Email, req.Password)
	if err != nil {
		if services.KindOf(err) == services.KindValidation {
			writeJSON(w, http.StatusBadRequest, errs.NewValidationError(err.Error()))
			return
		}
		logRequest(ctx, "info", "Login rejected", zap.String("email", req.Email))
		writeJSON(w, http.StatusUnauthorized, errs.NewValidationError("Invalid email or password"))
		return
	}

	h.sessions.Issue(w, user)
	logRequest(ctx, "info", "Login successful", zap.Int("user_id", user.ID))

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"message": "Login successful",
		"user": models.MeResponse{
			ID:       user.ID,
			FullName: user.FullName,
			Email:    user.Email,
		},
	})
}

// Logout handles POST /logout - invalidates the session.
func (h *AuthHandler) Logout(ctx context.Context, w http.ResponseWriter, r *http.Request) {
	h.sessions.Clear(w, r)
	logRequest(ctx, "info", "Logged out")
	writeMessage(w, http.StatusOK, "Logged out successfully")
}

// Me handles GET /me - returns the session user.
func (h *AuthHandler) Me(ctx context.Context, w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(ctx, w)
	if !ok {
		return
	}

	user, err := h.users.GetByID(userID)
	if err != nil {
		writeServiceError(ctx, w, err)
		return
	}

	writeJSON(w, http.StatusOK, models.MeResponse{
		ID:       user.ID,
		FullName: user.FullName,
		Email:    user.Email,
	})
}
