package services

import (
	"errors"
	"strings"
	"time"

	"goaltrack-service/analytics"
	"goaltrack-service/models"
	"goaltrack-service/repository"
	"goaltrack-service/validation"
)

// GoalService enforces goal business rules and computes goal progress
// from linked tasks.
type GoalService struct {
	goals *repository.GoalRepo
	tasks *repository.TaskRepo
}

func NewGoalService(goals *repository.GoalRepo, tasks *repository.TaskRepo) *GoalService {
	return &GoalService{goals: goals, tasks: tasks}
}

func (s *GoalService) Create(userID int, req models.GoalRequest) (*models.Goal, error) {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return nil, validationErr("Goal title is required")
	}
	targetDate, err := validation.ParseDate(req.TargetDate)
	if err != nil {
		return nil, validationErr("Invalid date format. Use YYYY-MM-DD")
	}

	goal := &models.Goal{
		Title:       title,
		Description: strings.TrimSpace(req.Description),
		TargetDate:  targetDate,
		UserID:      userID,
	}
	if err := s.goals.Insert(goal); err != nil {
		return nil, internalErr("Error creating goal", err)
	}
	return goal, nil
}

func (s *GoalService) ListByOwner(userID int) ([]models.Goal, error) {
	goals, err := s.goals.FindByOwner(userID)
	if err != nil {
		return nil, internalErr("Error loading goals", err)
	}
	return goals, nil
}

// Get fetches by id without an owner check; callers that mutate or
// expose the goal verify ownership.
func (s *GoalService) Get(goalID int) (*models.Goal, error) {
	goal, err := s.goals.FindByID(goalID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, notFoundErr("Goal not found")
	}
	if err != nil {
		return nil, internalErr("Error loading goal", err)
	}
	return goal, nil
}

func (s *GoalService) Update(goalID, userID int, req models.GoalRequest) error {
	goal, err := s.ownedGoal(goalID, userID, "Not authorized")
	if err != nil {
		return err
	}

	title := strings.TrimSpace(req.Title)
	if title == "" {
		return validationErr("Title is required")
	}
	targetDate, err := validation.ParseDate(req.TargetDate)
	if err != nil {
		return validationErr("Invalid date format")
	}

	goal.Title = title
	goal.Description = strings.TrimSpace(req.Description)
	goal.TargetDate = targetDate

	if err := s.goals.Update(goal); err != nil {
		return internalErr("Error updating goal", err)
	}
	return nil
}

// Toggle flips completion and reports the new state. Goals can be
// reopened, unlike tasks.
func (s *GoalService) Toggle(goalID, userID int) (bool, error) {
	goal, err := s.ownedGoal(goalID, userID, "Not authorized")
	if err != nil {
		return false, err
	}
	completed := !goal.Completed
	if err := s.goals.SetCompleted(goalID, completed); err != nil {
		return false, internalErr("Error updating goal", err)
	}
	return completed, nil
}

func (s *GoalService) Delete(goalID, userID int) error {
	if _, err := s.ownedGoal(goalID, userID, "Not authorized to delete this goal"); err != nil {
		return err
	}
	// Repo detaches linked tasks and deletes the goal atomically.
	if err := s.goals.Delete(goalID); err != nil {
		return internalErr("Error deleting goal", err)
	}
	return nil
}

// LinkedTasks returns the tasks attached to a goal.
func (s *GoalService) LinkedTasks(goalID int) ([]models.Task, error) {
	tasks, err := s.tasks.FindByGoal(goalID)
	if err != nil {
		return nil, internalErr("Error loading tasks", err)
	}
	return tasks, nil
}

// Progress computes the goal's completion estimate from its linked
// tasks, falling back to the time window when none exist.
func (s *GoalService) Progress(goal *models.Goal, today time.Time) (int, error) {
	tasks, err := s.tasks.FindByGoal(goal.ID)
	if err != nil {
		return 0, internalErr("Error loading tasks", err)
	}
	return analytics.GoalProgress(*goal, tasks, today), nil
}

func (s *GoalService) ownedGoal(goalID, userID int, denyMsg string) (*models.Goal, error) {
	goal, err := s.goals.FindByID(goalID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, notFoundErr("Goal not found")
	}
	if err != nil {
		return nil, internalErr("Error loading goal", err)
	}
	if goal.UserID != userID {
		return nil, notAuthorizedErr(denyMsg)
	}
	return goal, nil
}
