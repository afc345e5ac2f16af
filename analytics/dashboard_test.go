package analytics

import (
	"testing"
	"time"

	"goaltrack-service/models"
)

func intPtr(v int) *int { return &v }

func TestSummarizeEmptyInput(t *testing.T) {
	s, goals := Summarize(nil, nil, date(2025, time.June, 1))
	if s != (Summary{}) {
		t.Errorf("empty input should produce zero summary, got %+v", s)
	}
	if len(goals) != 0 {
		t.Errorf("expected no goals, got %d", len(goals))
	}
}

func TestSummarizeTaskCounts(t *testing.T) {
	today := date(2025, time.June, 10)
	yesterday := today.AddDate(0, 0, -1)
	tomorrow := today.AddDate(0, 0, 1)

	tasks := []models.Task{
		{ID: 1, Completed: false, DueDate: &yesterday, Priority: models.PriorityHigh},
		{ID: 2, Completed: true, DueDate: &yesterday, Priority: models.PriorityHigh},
		{ID: 3, Completed: false, DueDate: &tomorrow, Priority: models.PriorityMedium},
		{ID: 4, Completed: false, Priority: models.PriorityLow},
	}

	s, _ := Summarize(tasks, nil, today)

	if s.TotalTasks != 4 || s.CompletedTasks != 1 || s.PendingTasks != 3 {
		t.Errorf("counts: %+v", s)
	}
	// Completed tasks never count as overdue.
	if s.OverdueTasks != 1 {
		t.Errorf("overdue = %d, want 1", s.OverdueTasks)
	}
	if s.CompletionRate != 25 {
		t.Errorf("completion rate = %d, want 25", s.CompletionRate)
	}
	if s.HighTasks != 1 || s.MediumTasks != 1 || s.LowTasks != 1 {
		t.Errorf("priority breakdown counts pending only: %+v", s)
	}
}

func TestSummarizeGoalAnalytics(t *testing.T) {
	today := date(2025, time.June, 10)
	goals := []models.Goal{
		{ID: 1, Title: "linked"},
		{ID: 2, Title: "done", Completed: true},
		{ID: 3, Title: "bare"},
	}
	tasks := []models.Task{
		{ID: 1, GoalID: intPtr(1), Completed: true},
		{ID: 2, GoalID: intPtr(1), Completed: false},
	}

	s, withProgress := Summarize(tasks, goals, today)

	if s.TotalGoals != 3 {
		t.Fatalf("total goals = %d", s.TotalGoals)
	}
	// Progress: 50, 100, 0 -> avg 50, two on track.
	if s.AvgGoalProgress != 50 {
		t.Errorf("avg progress = %d, want 50", s.AvgGoalProgress)
	}
	if s.GoalsOnTrack != 2 || s.GoalsBehind != 1 {
		t.Errorf("on track / behind = %d/%d, want 2/1", s.GoalsOnTrack, s.GoalsBehind)
	}

	want := map[int]int{1: 50, 2: 100, 3: 0}
	for _, g := range withProgress {
		if g.Progress != want[g.ID] {
			t.Errorf("goal %d progress = %d, want %d", g.ID, g.Progress, want[g.ID])
		}
	}
}

func TestSortTasksForDisplay(t *testing.T) {
	d1 := date(2025, time.June, 1)
	d2 := date(2025, time.June, 5)

	tasks := []models.Task{
		{ID: 1, Completed: true, DueDate: &d1},
		{ID: 2, Completed: false},          // no due date: last among incomplete
		{ID: 3, Completed: false, DueDate: &d2},
		{ID: 4, Completed: false, DueDate: &d1},
		{ID: 5, Completed: true},
	}

	sorted := SortTasksForDisplay(tasks)

	wantOrder := []int{4, 3, 2, 1, 5}
	for i, id := range wantOrder {
		if sorted[i].ID != id {
			t.Fatalf("position %d: got task %d, want %d (full order: %v)", i, sorted[i].ID, id, ids(sorted))
		}
	}

	// Input order untouched.
	if tasks[0].ID != 1 {
		t.Error("SortTasksForDisplay mutated its input")
	}
}

func ids(tasks []models.Task) []int {
	out := make([]int, len(tasks))
	for i, t := range tasks {
		out[i] = t.ID
	}
	return out
}
