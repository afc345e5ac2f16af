package repository

import (
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"goaltrack-service/models"
)

// TaskRepo persists tasks.
type TaskRepo struct {
	db *sqlx.DB
}

func NewTaskRepo(db *sqlx.DB) *TaskRepo {
	return &TaskRepo{db: db}
}

const taskColumns = "id, title, description, due_date, priority, completed, user_id, goal_id"

func (r *TaskRepo) FindByID(id int) (*models.Task, error) {
	var task models.Task
	err := r.db.Get(&task, "SELECT "+taskColumns+" FROM task WHERE id = ?", id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &task, nil
}

func (r *TaskRepo) FindByOwner(userID int) ([]models.Task, error) {
	var tasks []models.Task
	err := r.db.Select(&tasks, "SELECT "+taskColumns+" FROM task WHERE user_id = ? ORDER BY id", userID)
	if err != nil {
		return nil, err
	}
	return tasks, nil
}

// FindByGoal returns the tasks linked to a goal, for progress
// calculation and goal detail views.
func (r *TaskRepo) FindByGoal(goalID int) ([]models.Task, error) {
	var tasks []models.Task
	err := r.db.Select(&tasks, "SELECT "+taskColumns+" FROM task WHERE goal_id = ? ORDER BY id", goalID)
	if err != nil {
		return nil, err
	}
	return tasks, nil
}

func (r *TaskRepo) Insert(task *models.Task) error {
	result, err := r.db.Exec(
		"INSERT INTO task (title, description, due_date, priority, completed, user_id, goal_id) VALUES (?, ?, ?, ?, ?, ?, ?)",
		task.Title, task.Description, task.DueDate, task.Priority, task.Completed, task.UserID, task.GoalID)
	if err != nil {
		return err
	}
	id, err := result.LastInsertId()
	if err != nil {
		return err
	}
	task.ID = int(id)
	return nil
}

func (r *TaskRepo) Update(task *models.Task) error {
	result, err := r.db.Exec(
		"UPDATE task SET title = ?, description = ?, due_date = ?, priority = ?, goal_id = ? WHERE id = ?",
		task.Title, task.Description, task.DueDate, task.Priority, task.GoalID, task.ID)
	if err != nil {
		return err
	}
	return requireRow(result)
}

// SetCompleted marks a task done. Tasks are never reopened.
func (r *TaskRepo) SetCompleted(id int) error {
	result, err := r.db.Exec("UPDATE task SET completed = 1 WHERE id = ?", id)
	if err != nil {
		return err
	}
	return requireRow(result)
}

func (r *TaskRepo) Delete(id int) error {
	result, err := r.db.Exec("DELETE FROM task WHERE id = ?", id)
	if err != nil {
		return err
	}
	return requireRow(result)
}
