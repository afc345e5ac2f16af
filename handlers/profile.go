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

// ProfileHandler handles profile updates, password changes, and
// account deletion for the session user.
type ProfileHandler struct {
	users    *services.UserService
	sessions *SessionManager
}

func NewProfileHandler(users *services.UserService, sessions *SessionManager) *ProfileHandler {
	return &ProfileHandler{users: users, sessions: sessions}
}

// UpdateProfile handles PUT /profile - change the display name.
func (h *ProfileHandler) UpdateProfile(ctx context.Context, w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(ctx, w)
	if !ok {
		return
	}

	var req models.UpdateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logRequest(ctx, "error", "Invalid request body", zap.Error(err))
		writeJSON(w, http.StatusBadRequest, errs.NewValidationError("Invalid JSON"))
		return
	}

	if err := h.users.UpdateProfile(userID, req.FullName); err != nil {
		writeServiceError(ctx, w, err)
		return
	}

	logRequest(ctx, "info", "Profile updated", zap.Int("user_id", userID))
	writeMessage(w, http.StatusOK, "Profile updated successfully")
}

// ChangePassword handles PUT /profile/password. The current password
// must verify before the new one is accepted.
func (h *ProfileHandler) ChangePassword(ctx context.Context, w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(ctx, w)
	if !ok {
		return
	}

	var req models.ChangePasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logRequest(ctx, "error", "Invalid request body", zap.Error(err))
		writeJSON(w, http.StatusBadRequest, errs.NewValidationError("Invalid JSON"))
		return
	}

	if err := h.users.ChangePassword(userID, req.CurrentPassword, req.NewPassword, req.ConfirmPassword); err != nil {
		writeServiceError(ctx, w, err)
		return
	}

	logRequest(ctx, "info", "Password changed", zap.Int("user_id", userID))
	writeMessage(w, http.StatusOK, "Password changed successfully")
}

// DeleteAccount handles DELETE /account - removes the user with all
// owned tasks and goals, then drops the session.
func (h *ProfileHandler) DeleteAccount(ctx context.Context, w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(ctx, w)
	if !ok {
		return
	}

	if err := h.users.DeleteAccount(userID); err != nil {
		writeServiceError(ctx, w, err)
		return
	}

	h.sessions.Clear(w, r)
	logRequest(ctx, "info", "Account deleted", zap.Int("user_id", userID))
	writeMessage(w, http.StatusOK, "Account deleted successfully")
}
