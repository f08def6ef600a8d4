package service

import (
	"fmt"
	"time"

	"github.com/dafibh/fortuna/fortuna-planner/internal/domain"
	"github.com/dafibh/fortuna/fortuna-planner/internal/engine"
	"github.com/dafibh/fortuna/fortuna-planner/internal/util"
	"github.com/dafibh/fortuna/fortuna-planner/internal/websocket"
	"github.com/shopspring/decimal"
)

// BudgetService handles budgets and spend-vs-budget reporting
type BudgetService struct {
	eventEmitter
	budgetRepo  domain.BudgetRepository
	expenseRepo domain.ExpenseRepository
}

// NewBudgetService creates a new BudgetService
func NewBudgetService(budgetRepo domain.BudgetRepository, expenseRepo domain.ExpenseRepository) *BudgetService {
	return &BudgetService{
		budgetRepo:  budgetRepo,
		expenseRepo: expenseRepo,
	}
}

// CreateBudgetInput contains the input for creating a budget
type CreateBudgetInput struct {
	Category string
	Amount   decimal.Decimal
	Period   domain.BudgetPeriod
}

// ConsumptionReport is budget consumption over one inclusive period
type ConsumptionReport struct {
	PeriodStart time.Time                  `json:"periodStart"`
	PeriodEnd   time.Time                  `json:"periodEnd"`
	Budgets     []domain.BudgetConsumption `json:"budgets"`
}

// CreateBudget validates and stores a budget. Several budgets may share a category.
func (s *BudgetService) CreateBudget(workspaceID int32, input CreateBudgetInput) (*domain.Budget, error) {
	category, err := validateCategory(input.Category)
	if err != nil {
		return nil, err
	}
	if !input.Amount.IsPositive() {
		return nil, fmt.Errorf("%w: amount must be positive", domain.ErrInvalidBudgetAmount)
	}
	period := input.Period
	if period == "" {
		period = domain.BudgetPeriodMonthly
	}
	if !period.IsValid() {
		return nil, domain.ErrInvalidPeriod
	}

	created, err := s.budgetRepo.Create(&domain.Budget{
		WorkspaceID: workspaceID,
		Category:    category,
		Amount:      input.Amount,
		Period:      period,
	})
	if err != nil {
		return nil, err
	}

	s.publishEvent(workspaceID, websocket.EntityCreated(websocket.EntityTypeBudget, created))
	return created, nil
}

// GetBudgets retrieves all budgets for a workspace
func (s *BudgetService) GetBudgets(workspaceID int32) ([]*domain.Budget, error) {
	return s.budgetRepo.ListByWorkspace(workspaceID)
}

// DeleteBudget removes a budget
func (s *BudgetService) DeleteBudget(workspaceID int32, id int32) error {
	if err := s.budgetRepo.Delete(workspaceID, id); err != nil {
		return err
	}
	s.publishEvent(workspaceID, websocket.EntityDeleted(websocket.EntityTypeBudget, deletedPayload{ID: id}))
	return nil
}

// GetConsumption reports spending against every budget inside [start, end]
func (s *BudgetService) GetConsumption(workspaceID int32, start, end time.Time, category *string) (*ConsumptionReport, error) {
	start, end = util.DateOnly(start), util.DateOnly(end)
	if end.Before(start) {
		return nil, fmt.Errorf("%w: end date before start date", domain.ErrInvalidInput)
	}

	expenses, err := s.expenseRepo.List(workspaceID, &domain.ExpenseFilters{
		StartDate: &start,
		EndDate:   &end,
		Category:  category,
	})
	if err != nil {
		return nil, err
	}
	budgets, err := s.budgetRepo.ListByWorkspace(workspaceID)
	if err != nil {
		return nil, err
	}

	items, err := engine.AggregateBudgets(expenses, budgets, start, end, category)
	if err != nil {
		return nil, err
	}
	return &ConsumptionReport{PeriodStart: start, PeriodEnd: end, Budgets: items}, nil
}

// GetPeriodConsumption reports consumption for the calendar period containing asOf
func (s *BudgetService) GetPeriodConsumption(workspaceID int32, period domain.BudgetPeriod, asOf time.Time, category *string) (*ConsumptionReport, error) {
	start, end, err := engine.PeriodBounds(period, asOf)
	if err != nil {
		return nil, err
	}
	return s.GetConsumption(workspaceID, start, end, category)
}
