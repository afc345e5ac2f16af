package models

import "time"

// Task priorities. Anything else is rejected at validation.
const (
	PriorityHigh   = "High"
	PriorityMedium = "Medium"
	PriorityLow    = "Low"
)

// Task belongs to exactly one user and optionally one goal.
// GoalID is a loose association, not ownership: deleting the goal
// detaches the task instead of deleting it.
type Task struct {
	ID          int        `json:"id" db:"id"`
	Title       string     `json:"title" db:"title"`
	Description string     `json:"description" db:"description"`
	DueDate     *time.Time `json:"due_date,omitempty" db:"due_date"`
	Priority    string     `json:"priority" db:"priority"`
	Completed   bool       `json:"completed" db:"completed"`
	UserID      int        `json:"user_id" db:"user_id"`
	GoalID      *int       `json:"goal_id,omitempty" db:"goal_id"`
}

// TaskRequest represents the POST /tasks and PUT /tasks/{id} body.
// Dates arrive as YYYY-MM-DD strings and are parsed by the service.
type TaskRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	DueDate     string `json:"due_date,omitempty"`
	Priority    string `json:"priority,omitempty"`
	GoalID      *int   `json:"goal_id,omitempty"`
}
