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

// TaskHandler handles task CRUD for the session user.
type TaskHandler struct {
	tasks *services.TaskService
}

func NewTaskHandler(tasks *services.TaskService) *TaskHandler {
	return &TaskHandler{tasks: tasks}
}

// List handles GET /tasks - all tasks owned by the session user.
func (h *TaskHandler) List(ctx context.Context, w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(ctx, w)
	if !ok {
		return
	}

	tasks, err := h.tasks.ListByOwner(userID)
	if err != nil {
		writeServiceError(ctx, w, err)
		return
	}
	if tasks == nil {
		tasks = []models.Task{}
	}

	logRequest(ctx, "info", "Tasks listed", zap.Int("user_id", userID), zap.Int("count", len(tasks)))
	writeJSON(w, http.StatusOK, tasks)
}

// Create handles POST /tasks.
func (h *TaskHandler) Create(ctx context.Context, w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(ctx, w)
	if !ok {
		return
	}

	var req models.TaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logRequest(ctx, "error", "Invalid request body", zap.Error(err))
		writeJSON(w, http.StatusBadRequest, errs.NewValidationError("Invalid JSON"))
		return
	}

	task, err := h.tasks.Create(userID, req)
	if err != nil {
		writeServiceError(ctx, w, err)
		return
	}

	logRequest(ctx, "info", "Task created", zap.Int("user_id", userID), zap.Int("task_id", task.ID))
	writeJSON(w, http.StatusCreated, task)
}

// Get handles GET /tasks/{id}. The fetch itself is unchecked; a task
// owned by someone else reads as not found so ids are not probeable.
func (h *TaskHandler) Get(ctx context.Context, w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(ctx, w)
	if !ok {
		return
	}
	id, err := pathID(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errs.NewValidationError("Invalid task ID"))
		return
	}

	task, err := h.tasks.Get(id)
	if err != nil {
		writeServiceError(ctx, w, err)
		return
	}
	if task.UserID != userID {
		writeJSON(w, http.StatusNotFound, errs.NewNotFoundError("Task not found"))
		return
	}

	writeJSON(w, http.StatusOK, task)
}

// Update handles PUT /tasks/{id}.
func (h *TaskHandler) Update(ctx context.Context, w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(ctx, w)
	if !ok {
		return
	}
	id, err := pathID(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errs.NewValidationError("Invalid task ID"))
		return
	}

	var req models.TaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logRequest(ctx, "error", "Invalid request body", zap.Error(err))
		writeJSON(w, http.StatusBadRequest, errs.NewValidationError("Invalid JSON"))
		return
	}

	if err := h.tasks.Update(id, userID, req); err != nil {
		writeServiceError(ctx, w, err)
		return
	}

	logRequest(ctx, "info", "Task updated", zap.Int("user_id", userID), zap.Int("task_id", id))
	writeMessage(w, http.StatusOK, "Task updated successfully")
}

// Complete handles POST /tasks/{id}/complete - one-way.
func (h *TaskHandler) Complete(ctx context.Context, w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(ctx, w)
	if !ok {
		return
	}
	id, err := pathID(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errs.NewValidationError("Invalid task ID"))
		return
	}

	if err := h.tasks.Complete(id, userID); err != nil {
		writeServiceError(ctx, w, err)
		return
	}

	logRequest(ctx, "info", "Task completed", zap.Int("user_id", userID), zap.Int("task_id", id))
	writeMessage(w, http.StatusOK, "Task marked as complete")
}

// Delete handles DELETE /tasks/{id}.
func (h *TaskHandler) Delete(ctx context.Context, w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(ctx, w)
	if !ok {
		return
	}
	id, err := pathID(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errs.NewValidationError("Invalid task ID"))
		return
	}

	if err := h.tasks.Delete(id, userID); err != nil {
		writeServiceError(ctx, w, err)
		return
	}

	logRequest(ctx, "info", "Task deleted", zap.Int("user_id", userID), zap.Int("task_id", id))
	writeMessage(w, http.StatusOK, "Task deleted successfully")
}
