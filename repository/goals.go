package repository

import (
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"goaltrack-service/models"
)

// GoalRepo persists goals.
type GoalRepo struct {
	db *sqlx.DB
}

func NewGoalRepo(db *sqlx.DB) *GoalRepo {
	return &GoalRepo{db: db}
}

const goalColumns = "id, title, description, target_date, completed, user_id"

func (r *GoalRepo) FindByID(id int) (*models.Goal, error) {
	var goal models.Goal
	err := r.db.Get(&goal, "SELECT "+goalColumns+" FROM goal WHERE id = ?", id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &goal, nil
}

func (r *GoalRepo) FindByOwner(userID int) ([]models.Goal, error) {
	var goals []models.Goal
	err := r.db.Select(&goals, "SELECT "+goalColumns+" FROM goal WHERE user_id = ? ORDER BY id", userID)
	if err != nil {
		return nil, err
	}
	return goals, nil
}

func (r *GoalRepo) Insert(goal *models.Goal) error {
	result, err := r.db.Exec(
		"INSERT INTO goal (title, description, target_date, completed, user_id) VALUES (?, ?, ?, ?, ?)",
		goal.Title, goal.Description, goal.TargetDate, goal.Completed, goal.UserID)
	if err != nil {
		return err
	}
	id, err := result.LastInsertId()
	if err != nil {
		return err
	}
	goal.ID = int(id)
	return nil
}

func (r *GoalRepo) Update(goal *models.Goal) error {
	result, err := r.db.Exec(
		"UPDATE goal SET title = ?, description = ?, target_date = ? WHERE id = ?",
		goal.Title, goal.Description, goal.TargetDate, goal.ID)
	if err != nil {
		return err
	}
	return requireRow(result)
}

// SetCompleted stores the completion flag. Goals toggle both ways.
func (r *GoalRepo) SetCompleted(id int, completed bool) error {
	result, err := r.db.Exec("UPDATE goal SET completed = ? WHERE id = ?", completed, id)
	if err != nil {
		return err
	}
	return requireRow(result)
}

// Delete removes the goal and detaches its linked tasks in one
// transaction. Tasks are never deleted as a side effect of goal
// deletion; their goal_id is nulled instead.
func (r *GoalRepo) Delete(id int) error {
	tx, err := r.db.Beginx()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec("UPDATE task SET goal_id = NULL WHERE goal_id = ?", id); err != nil {
		return err
	}
	result, err := tx.Exec("DELETE FROM goal WHERE id = ?", id)
	if err != nil {
		return err
	}
	if err := requireRow(result); err != nil {
		return err
	}
	return tx.Commit()
}
