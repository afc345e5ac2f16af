package analytics

import (
	"math"
	"time"

	"goaltrack-service/models"
)

// progressWindowDays is the time-based fallback window: a goal with a
// target date but no linked tasks is assumed to span the 90 days
// leading up to that date.
const progressWindowDays = 90

// GoalProgress estimates goal completion as an integer 0-100.
//
//   - A completed goal is always 100.
//   - With linked tasks: share of completed tasks, rounded.
//   - With only a target date: time elapsed in the 90-day window before
//     the target, capped at 99 so elapsing time alone never reports a
//     goal as done.
//   - Otherwise 0.
//
// Pure function of its arguments; callers inject today so results are
// deterministic under test.
func GoalProgress(goal models.Goal, tasks []models.Task, today time.Time) int {
	if goal.Completed {
		return 100
	}

	if len(tasks) > 0 {
		completed := 0
		for _, t := range tasks {
			if t.Completed {
				completed++
			}
		}
		return int(math.Round(float64(completed) / float64(len(tasks)) * 100))
	}

	if goal.TargetDate == nil {
		return 0
	}

	day := dateOnly(today)
	target := dateOnly(*goal.TargetDate)

	if !day.Before(target) {
		return 100
	}

	windowStart := target.AddDate(0, 0, -progressWindowDays)
	if !day.After(windowStart) {
		return 0
	}

	elapsed := int(day.Sub(windowStart).Hours() / 24)
	pct := int(math.Round(float64(elapsed) / progressWindowDays * 100))
	if pct > 99 {
		pct = 99
	}
	return pct
}

// dateOnly strips the time-of-day so comparisons are calendar-date
// comparisons regardless of how the timestamp was produced.
func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
