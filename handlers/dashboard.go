package handlers

import (
	"context"
	"net/http"
	"time"

	"go.uber.org/zap"

	"goaltrack-service/analytics"
	"goaltrack-service/models"
	"goaltrack-service/services"
)

// DashboardHandler aggregates the session user's tasks and goals into
// the summary view.
type DashboardHandler struct {
	tasks *services.TaskService
	goals *services.GoalService
}

func NewDashboardHandler(tasks *services.TaskService, goals *services.GoalService) *DashboardHandler {
	return &DashboardHandler{tasks: tasks, goals: goals}
}

// DashboardResponse is the GET /dashboard payload: the analytics
// summary, tasks in display order, and goals with progress.
type DashboardResponse struct {
	Analytics analytics.Summary         `json:"analytics"`
	Tasks     []models.Task             `json:"tasks"`
	Goals     []models.GoalWithProgress `json:"goals"`
}

// Dashboard handles GET /dashboard.
func (h *DashboardHandler) Dashboard(ctx context.Context, w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(ctx, w)
	if !ok {
		return
	}

	tasks, err := h.tasks.ListByOwner(userID)
	if err != nil {
		writeServiceError(ctx, w, err)
		return
	}
	goals, err := h.goals.ListByOwner(userID)
	if err != nil {
		writeServiceError(ctx, w, err)
		return
	}

	if tasks == nil {
		tasks = []models.Task{}
	}

	summary, goalsWithProgress := analytics.Summarize(tasks, goals, time.Now())

	logRequest(ctx, "info", "Dashboard computed",
		zap.Int("user_id", userID),
		zap.Int("tasks", summary.TotalTasks),
		zap.Int("goals", summary.TotalGoals))

	writeJSON(w, http.StatusOK, DashboardResponse{
		Analytics: summary,
		Tasks:     analytics.SortTasksForDisplay(tasks),
		Goals:     goalsWithProgress,
	})
}
