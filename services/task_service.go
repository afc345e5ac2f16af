package services

import (
	"errors"
	"strings"

	"goaltrack-service/models"
	"goaltrack-service/repository"
	"goaltrack-service/validation"
)

// TaskService enforces task business rules: titles, date formats, the
// priority enum, and the owner check on every mutation.
type TaskService struct {
	tasks *repository.TaskRepo
}

func NewTaskService(tasks *repository.TaskRepo) *TaskService {
	return &TaskService{tasks: tasks}
}

func (s *TaskService) Create(userID int, req models.TaskRequest) (*models.Task, error) {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return nil, validationErr("Task title is required")
	}
	dueDate, err := validation.ParseDate(req.DueDate)
	if err != nil {
		return nil, validationErr("Invalid date format. Use YYYY-MM-DD")
	}
	priority, ok := normalizePriority(req.Priority)
	if !ok {
		return nil, validationErr("Priority must be High, Medium, or Low")
	}

	task := &models.Task{
		Title:       title,
		Description: strings.TrimSpace(req.Description),
		DueDate:     dueDate,
		Priority:    priority,
		UserID:      userID,
		GoalID:      req.GoalID,
	}
	if err := s.tasks.Insert(task); err != nil {
		return nil, internalErr("Error creating task", err)
	}
	return task, nil
}

func (s *TaskService) ListByOwner(userID int) ([]models.Task, error) {
	tasks, err := s.tasks.FindByOwner(userID)
	if err != nil {
		return nil, internalErr("Error loading tasks", err)
	}
	return tasks, nil
}

// Get fetches by id without an owner check; mutating methods and
// handlers re-check ownership themselves.
func (s *TaskService) Get(taskID int) (*models.Task, error) {
	task, err := s.tasks.FindByID(taskID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, notFoundErr("Task not found")
	}
	if err != nil {
		return nil, internalErr("Error loading task", err)
	}
	return task, nil
}

func (s *TaskService) Update(taskID, userID int, req models.TaskRequest) error {
	task, err := s.ownedTask(taskID, userID, "Not authorized")
	if err != nil {
		return err
	}

	title := strings.TrimSpace(req.Title)
	if title == "" {
		return validationErr("Title is required")
	}
	dueDate, err := validation.ParseDate(req.DueDate)
	if err != nil {
		return validationErr("Invalid date format")
	}
	priority, ok := normalizePriority(req.Priority)
	if !ok {
		return validationErr("Priority must be High, Medium, or Low")
	}

	task.Title = title
	task.Description = strings.TrimSpace(req.Description)
	task.DueDate = dueDate
	task.Priority = priority
	task.GoalID = req.GoalID

	if err := s.tasks.Update(task); err != nil {
		return internalErr("Error updating task", err)
	}
	return nil
}

// Complete marks a task done. One-way: a completed task stays
// completed, unlike goals which toggle.
func (s *TaskService) Complete(taskID, userID int) error {
	if _, err := s.ownedTask(taskID, userID, "Not authorized to complete this task"); err != nil {
		return err
	}
	if err := s.tasks.SetCompleted(taskID); err != nil {
		return internalErr("Error completing task", err)
	}
	return nil
}

func (s *TaskService) Delete(taskID, userID int) error {
	if _, err := s.ownedTask(taskID, userID, "Not authorized to delete this task"); err != nil {
		return err
	}
	if err := s.tasks.Delete(taskID); err != nil {
		return internalErr("Error deleting task", err)
	}
	return nil
}

// ownedTask re-fetches the task and verifies ownership before any
// mutation. Client-supplied ids are never trusted on their own.
func (s *TaskService) ownedTask(taskID, userID int, denyMsg string) (*models.Task, error) {
	task, err := s.tasks.FindByID(taskID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, notFoundErr("Task not found")
	}
	if err != nil {
		return nil, internalErr("Error loading task", err)
	}
	if task.UserID != userID {
		return nil, notAuthorizedErr(denyMsg)
	}
	return task, nil
}

// normalizePriority applies the Medium default and rejects values
// outside the enum.
func normalizePriority(priority string) (string, bool) {
	switch priority {
	case "":
		return models.PriorityMedium, true
	case models.PriorityHigh, models.PriorityMedium, models.PriorityLow:
		return priority, true
	default:
		return "", false
	}
}
