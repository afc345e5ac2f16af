package analytics

import (
	"math"
	"sort"
	"time"

	"goaltrack-service/models"
)

// Summary is the read-only dashboard aggregate over one user's tasks
// and goals. All rates are rounded integers and every division guards
// its denominator, so empty input produces an all-zero summary rather
// than an error.
type Summary struct {
	TotalTasks     int `json:"total_tasks"`
	CompletedTasks int `json:"completed_tasks"`
	PendingTasks   int `json:"pending_tasks"`
	OverdueTasks   int `json:"overdue_tasks"`
	CompletionRate int `json:"completion_rate"`

	// Pending (not completed) tasks by priority
	HighTasks   int `json:"high_tasks"`
	MediumTasks int `json:"medium_tasks"`
	LowTasks    int `json:"low_tasks"`

	TotalGoals      int `json:"total_goals"`
	AvgGoalProgress int `json:"avg_goal_progress"`
	GoalsOnTrack    int `json:"goals_on_track"`
	GoalsBehind     int `json:"goals_behind"`
}

// Summarize computes the dashboard summary plus per-goal progress.
// Goal progress uses each goal's linked tasks out of the same task set.
func Summarize(tasks []models.Task, goals []models.Goal, today time.Time) (Summary, []models.GoalWithProgress) {
	var s Summary

	s.TotalTasks = len(tasks)
	day := dateOnly(today)
	for _, t := range tasks {
		if t.Completed {
			s.CompletedTasks++
			continue
		}
		if t.DueDate != nil && dateOnly(*t.DueDate).Before(day) {
			s.OverdueTasks++
		}
		switch t.Priority {
		case models.PriorityHigh:
			s.HighTasks++
		case models.PriorityMedium:
			s.MediumTasks++
		case models.PriorityLow:
			s.LowTasks++
		}
	}
	s.PendingTasks = s.TotalTasks - s.CompletedTasks
	if s.TotalTasks > 0 {
		s.CompletionRate = int(math.Round(float64(s.CompletedTasks) / float64(s.TotalTasks) * 100))
	}

	byGoal := make(map[int][]models.Task)
	for _, t := range tasks {
		if t.GoalID != nil {
			byGoal[*t.GoalID] = append(byGoal[*t.GoalID], t)
		}
	}

	s.TotalGoals = len(goals)
	withProgress := make([]models.GoalWithProgress, 0, len(goals))
	progressSum := 0
	for _, g := range goals {
		p := GoalProgress(g, byGoal[g.ID], today)
		progressSum += p
		if p >= 50 {
			s.GoalsOnTrack++
		}
		withProgress = append(withProgress, models.GoalWithProgress{Goal: g, Progress: p})
	}
	s.GoalsBehind = s.TotalGoals - s.GoalsOnTrack
	if s.TotalGoals > 0 {
		s.AvgGoalProgress = int(math.Round(float64(progressSum) / float64(s.TotalGoals)))
	}

	return s, withProgress
}

// SortTasksForDisplay orders tasks for the dashboard: incomplete before
// completed, then ascending due date. A missing due date sorts after
// every dated task in its group.
func SortTasksForDisplay(tasks []models.Task) []models.Task {
	sorted := make([]models.Task, len(tasks))
	copy(sorted, tasks)
	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := sorted[i], sorted[j]
		if a.Completed != b.Completed {
			return !a.Completed
		}
		return dueOrMax(a).Before(dueOrMax(b))
	})
	return sorted
}

// dueOrMax treats a missing due date as the maximum representable date
// so undated tasks land at the end of their group.
func dueOrMax(t models.Task) time.Time {
	if t.DueDate == nil {
		return time.Unix(1<<62, 0)
	}
	return *t.DueDate
}
