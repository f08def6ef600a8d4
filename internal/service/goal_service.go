package service

import (
	"time"

	"github.com/dafibh/fortuna/fortuna-planner/internal/domain"
	"github.com/dafibh/fortuna/fortuna-planner/internal/engine"
	"github.com/dafibh/fortuna/fortuna-planner/internal/websocket"
	"github.com/shopspring/decimal"
)

// GoalService handles savings goals
type GoalService struct {
	eventEmitter
	goalRepo domain.GoalRepository
}

// NewGoalService creates a new GoalService
func NewGoalService(goalRepo domain.GoalRepository) *GoalService {
	return &GoalService{goalRepo: goalRepo}
}

// CreateGoalInput contains the input for creating a goal
type CreateGoalInput struct {
	Name          string
	TargetAmount  decimal.Decimal
	CurrentAmount decimal.Decimal
	TargetDate    *time.Time
}

// CreateGoal validates and stores a savings goal
func (s *GoalService) CreateGoal(workspaceID int32, input CreateGoalInput) (*domain.Goal, error) {
	name, err := validateName(input.Name)
	if err != nil {
		return nil, err
	}
	if err := requirePositive(input.TargetAmount); err != nil {
		return nil, err
	}
	if err := requireNonNegative(input.CurrentAmount); err != nil {
		return nil, err
	}
	var targetDate *time.Time
	if input.TargetDate != nil {
		date, err := requireDate(*input.TargetDate)
		if err != nil {
			return nil, err
		}
		targetDate = &date
	}

	created, err := s.goalRepo.Create(&domain.Goal{
		WorkspaceID:   workspaceID,
		Name:          name,
		TargetAmount:  input.TargetAmount,
		CurrentAmount: input.CurrentAmount,
		TargetDate:    targetDate,
	})
	if err != nil {
		return nil, err
	}

	s.publishEvent(workspaceID, websocket.EntityCreated(websocket.EntityTypeGoal, created))
	return created, nil
}

// GetGoals retrieves all goals for a workspace
func (s *GoalService) GetGoals(workspaceID int32) ([]*domain.Goal, error) {
	return s.goalRepo.ListByWorkspace(workspaceID)
}

// UpdateCurrentAmount records progress toward a goal. Overshooting the target is allowed.
func (s *GoalService) UpdateCurrentAmount(workspaceID int32, id int32, amount decimal.Decimal) (*domain.Goal, error) {
	if err := requireNonNegative(amount); err != nil {
		return nil, err
	}
	updated, err := s.goalRepo.UpdateCurrentAmount(workspaceID, id, amount)
	if err != nil {
		return nil, err
	}
	s.publishEvent(workspaceID, websocket.EntityUpdated(websocket.EntityTypeGoal, updated))
	return updated, nil
}

// DeleteGoal removes a goal
func (s *GoalService) DeleteGoal(workspaceID int32, id int32) error {
	if err := s.goalRepo.Delete(workspaceID, id); err != nil {
		return err
	}
	s.publishEvent(workspaceID, websocket.EntityDeleted(websocket.EntityTypeGoal, deletedPayload{ID: id}))
	return nil
}

// GetProgress evaluates every goal as of the given date
func (s *GoalService) GetProgress(workspaceID int32, asOf time.Time) ([]domain.GoalProgress, error) {
	goals, err := s.goalRepo.ListByWorkspace(workspaceID)
	if err != nil {
		return nil, err
	}
	return engine.GoalsProgress(goals, asOf), nil
}

// GetGoalProgress evaluates a single goal
func (s *GoalService) GetGoalProgress(workspaceID int32, id int32, asOf time.Time) (*domain.GoalProgress, error) {
	goal, err := s.goalRepo.GetByID(workspaceID, id)
	if err != nil {
		return nil, err
	}
	progress := engine.GoalProgress(goal, asOf)
	return &progress, nil
}
