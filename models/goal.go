package models

import "time"

// Goal belongs to exactly one user. Tasks may point at it via their
// goal_id but keep their own user ownership.
type Goal struct {
	ID          int        `json:"id" db:"id"`
	Title       string     `json:"title" db:"title"`
	Description string     `json:"description" db:"description"`
	TargetDate  *time.Time `json:"target_date,omitempty" db:"target_date"`
	Completed   bool       `json:"completed" db:"completed"`
	UserID      int        `json:"user_id" db:"user_id"`
}

// GoalRequest represents the POST /goals and PUT /goals/{id} body
type GoalRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	TargetDate  string `json:"target_date,omitempty"`
}

// GoalWithProgress decorates a goal with its computed progress (0-100)
// for list/detail/dashboard responses.
type GoalWithProgress struct {
	Goal
	Progress int `json:"progress"`
}
