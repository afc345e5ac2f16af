package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/umakantv/go-utils/errs"
	"go.uber.org/zap"

	"goaltrack-service/models"
	"goaltrack-service/services"
)

// GoalHandler handles goal CRUD for the session user. List and detail
// responses include the computed progress.
type GoalHandler struct {
	goals *services.GoalService
}

func NewGoalHandler(goals *services.GoalService) *GoalHandler {
	return &GoalHandler{goals: goals}
}

// List handles GET /goals - the user's goals with progress.
func (h *GoalHandler) List(ctx context.Context, w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(ctx, w)
	if !ok {
		return
	}

	goals, err := h.goals.ListByOwner(userID)
	if err != nil {
		writeServiceError(ctx, w, err)
		return
	}

	now := time.Now()
	withProgress := make([]models.GoalWithProgress, 0, len(goals))
	for i := range goals {
		p, err := h.goals.Progress(&goals[i], now)
		if err != nil {
			writeServiceError(ctx, w, err)
			return
		}
		withProgress = append(withProgress, models.GoalWithProgress{Goal: goals[i], Progress: p})
	}

	logRequest(ctx, "info", "Goals listed", zap.Int("user_id", userID), zap.Int("count", len(withProgress)))
	writeJSON(w, http.StatusOK, withProgress)
}

// Create handles POST /goals.
func (h *GoalHandler) Create(ctx context.Context, w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(ctx, w)
	if !ok {
		return
	}

	var req models.GoalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logRequest(ctx, "error", "Invalid request body", zap.Error(err))
		writeJSON(w, http.StatusBadRequest, errs.NewValidationError("Invalid JSON"))
		return
	}

	goal, err := h.goals.Create(userID, req)
	if err != nil {
		writeServiceError(ctx, w, err)
		return
	}

	logRequest(ctx, "info", "Goal created", zap.Int("user_id", userID), zap.Int("goal_id", goal.ID))
	writeJSON(w, http.StatusCreated, goal)
}

// Get handles GET /goals/{id} - the goal with progress and its linked
// tasks. Someone else's goal reads as not found.
func (h *GoalHandler) Get(ctx context.Context, w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(ctx, w)
	if !ok {
		return
	}
	id, err := pathID(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errs.NewValidationError("Invalid goal ID"))
		return
	}

	goal, err := h.goals.Get(id)
	if err != nil {
		writeServiceError(ctx, w, err)
		return
	}
	if goal.UserID != userID {
		writeJSON(w, http.StatusNotFound, errs.NewNotFoundError("Goal not found"))
		return
	}

	progress, err := h.goals.Progress(goal, time.Now())
	if err != nil {
		writeServiceError(ctx, w, err)
		return
	}
	tasks, err := h.goals.LinkedTasks(id)
	if err != nil {
		writeServiceError(ctx, w, err)
		return
	}
	if tasks == nil {
		tasks = []models.Task{}
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"goal":  models.GoalWithProgress{Goal: *goal, Progress: progress},
		"tasks": tasks,
	})
}

// Update handles PUT /goals/{id}.
func (h *GoalHandler) Update(ctx context.Context, w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(ctx, w)
	if !ok {
		return
	}
	id, err := pathID(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errs.NewValidationError("Invalid goal ID"))
		return
	}

	var req models.GoalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logRequest(ctx, "error", "Invalid request body", zap.Error(err))
		writeJSON(w, http.StatusBadRequest, errs.NewValidationError("Invalid JSON"))
		return
	}

	if err := h.goals.Update(id, userID, req); err != nil {
		writeServiceError(ctx, w, err)
		return
	}

	logRequest(ctx, "info", "Goal updated", zap.Int("user_id", userID), zap.Int("goal_id", id))
	writeMessage(w, http.StatusOK, "Goal updated successfully")
}

// Toggle handles POST /goals/{id}/complete - flips completion either
// way, so finished goals can be reopened.
func (h *GoalHandler) Toggle(ctx context.Context, w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(ctx, w)
	if !ok {
		return
	}
	id, err := pathID(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errs.NewValidationError("Invalid goal ID"))
		return
	}

	completed, err := h.goals.Toggle(id, userID)
	if err != nil {
		writeServiceError(ctx, w, err)
		return
	}

	message := "Goal reopened"
	if completed {
		message = "Goal marked as complete"
	}
	logRequest(ctx, "info", "Goal toggled", zap.Int("user_id", userID), zap.Int("goal_id", id), zap.Bool("completed", completed))
	writeJSON(w, http.StatusOK, map[string]interface{}{"message": message, "completed": completed})
}

// Delete handles DELETE /goals/{id} - linked tasks are detached, never
// deleted.
func (h *GoalHandler) Delete(ctx context.Context, w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(ctx, w)
	if !ok {
		return
	}
	id, err := pathID(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errs.NewValidationError("Invalid goal ID"))
		return
	}

	if err := h.goals.Delete(id, userID); err != nil {
		writeServiceError(ctx, w, err)
		return
	}

	logRequest(ctx, "info", "Goal deleted", zap.Int("user_id", userID), zap.Int("goal_id", id))
	writeMessage(w, http.StatusOK, "Goal deleted successfully")
}
