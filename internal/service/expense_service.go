package service

import (
	"fmt"
	"strings"
	"time"

	"github.com/dafibh/fortuna/fortuna-planner/internal/domain"
	"github.com/dafibh/fortuna/fortuna-planner/internal/websocket"
	"github.com/shopspring/decimal"
)

// ExpenseService handles expense business logic. Expenses are immutable once recorded.
type ExpenseService struct {
	eventEmitter
	expenseRepo domain.ExpenseRepository
}

// NewExpenseService creates a new ExpenseService
func NewExpenseService(expenseRepo domain.ExpenseRepository) *ExpenseService {
	return &ExpenseService{expenseRepo: expenseRepo}
}

// CreateExpenseInput contains the input for recording an expense
type CreateExpenseInput struct {
	Amount      decimal.Decimal
	Category    string
	Date        time.Time
	Description *string
}

// CreateExpense records a one-off expense
func (s *ExpenseService) CreateExpense(workspaceID int32, input CreateExpenseInput) (*domain.Expense, error) {
	if err := requirePositive(input.Amount); err != nil {
		return nil, err
	}
	category, err := validateCategory(input.Category)
	if err != nil {
		return nil, err
	}
	date, err := requireDate(input.Date)
	if err != nil {
		return nil, err
	}

	var description *string
	if input.Description != nil {
		if trimmed := strings.TrimSpace(*input.Description); trimmed != "" {
			description = &trimmed
		}
	}

	created, err := s.expenseRepo.Create(&domain.Expense{
		WorkspaceID: workspaceID,
		Amount:      input.Amount,
		Category:    category,
		Date:        date,
		Description: description,
	})
	if err != nil {
		return nil, err
	}

	s.publishEvent(workspaceID, websocket.ExpenseCreated(created))
	return created, nil
}

// GetExpenses lists expenses, optionally narrowed to a date range and category
func (s *ExpenseService) GetExpenses(workspaceID int32, filters *domain.ExpenseFilters) ([]*domain.Expense, error) {
	if filters != nil && filters.StartDate != nil && filters.EndDate != nil && filters.EndDate.Before(*filters.StartDate) {
		return nil, fmt.Errorf("%w: end date before start date", domain.ErrInvalidInput)
	}
	return s.expenseRepo.List(workspaceID, filters)
}

// GetExpenseByID retrieves one expense
func (s *ExpenseService) GetExpenseByID(workspaceID int32, id int32) (*domain.Expense, error) {
	return s.expenseRepo.GetByID(workspaceID, id)
}

// DeleteExpense removes an expense recorded in error
func (s *ExpenseService) DeleteExpense(workspaceID int32, id int32) error {
	if err := s.expenseRepo.Delete(workspaceID, id); err != nil {
		return err
	}
	s.publishEvent(workspaceID, websocket.EntityDeleted(websocket.EntityTypeExpense, deletedPayload{ID: id}))
	return nil
}
