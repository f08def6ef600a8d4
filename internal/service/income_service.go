package service

import (
	"time"

	"github.com/dafibh/fortuna/fortuna-planner/internal/domain"
	"github.com/dafibh/fortuna/fortuna-planner/internal/engine"
	"github.com/dafibh/fortuna/fortuna-planner/internal/websocket"
	"github.com/shopspring/decimal"
)

// IncomeService handles income source business logic
type IncomeService struct {
	eventEmitter
	incomeRepo domain.IncomeRepository
}

// NewIncomeService creates a new IncomeService
func NewIncomeService(incomeRepo domain.IncomeRepository) *IncomeService {
	return &IncomeService{incomeRepo: incomeRepo}
}

// CreateIncomeInput contains the input for creating an income source
type CreateIncomeInput struct {
	Name      string
	Amount    decimal.Decimal
	Frequency domain.Frequency
	StartDate time.Time
	IsActive  *bool
}

// CreateIncome validates and stores a new income source. Sources are active unless stated otherwise.
func (s *IncomeService) CreateIncome(workspaceID int32, input CreateIncomeInput) (*domain.IncomeSource, error) {
	name, err := validateName(input.Name)
	if err != nil {
		return nil, err
	}
	if err := requirePositive(input.Amount); err != nil {
		return nil, err
	}
	if !input.Frequency.IsValid() {
		return nil, domain.ErrInvalidFrequency
	}
	startDate, err := requireDate(input.StartDate)
	if err != nil {
		return nil, err
	}

	active := true
	if input.IsActive != nil {
		active = *input.IsActive
	}

	created, err := s.incomeRepo.Create(&domain.IncomeSource{
		WorkspaceID: workspaceID,
		Name:        name,
		Amount:      input.Amount,
		Frequency:   input.Frequency,
		IsActive:    active,
		StartDate:   startDate,
	})
	if err != nil {
		return nil, err
	}

	s.publishEvent(workspaceID, websocket.EntityCreated(websocket.EntityTypeIncome, created))
	return created, nil
}

// GetIncomes retrieves all income sources for a workspace
func (s *IncomeService) GetIncomes(workspaceID int32) ([]*domain.IncomeSource, error) {
	return s.incomeRepo.ListByWorkspace(workspaceID)
}

// GetIncomeByID retrieves one income source
func (s *IncomeService) GetIncomeByID(workspaceID int32, id int32) (*domain.IncomeSource, error) {
	return s.incomeRepo.GetByID(workspaceID, id)
}

// SetIncomeActive includes or excludes a source from monthly income
func (s *IncomeService) SetIncomeActive(workspaceID int32, id int32, active bool) (*domain.IncomeSource, error) {
	updated, err := s.incomeRepo.SetActive(workspaceID, id, active)
	if err != nil {
		return nil, err
	}
	s.publishEvent(workspaceID, websocket.EntityUpdated(websocket.EntityTypeIncome, updated))
	return updated, nil
}

// DeleteIncome removes an income source
func (s *IncomeService) DeleteIncome(workspaceID int32, id int32) error {
	if err := s.incomeRepo.Delete(workspaceID, id); err != nil {
		return err
	}
	s.publishEvent(workspaceID, websocket.EntityDeleted(websocket.EntityTypeIncome, deletedPayload{ID: id}))
	return nil
}

// GetMonthlyIncome normalises every active recurring source to a monthly amount
func (s *IncomeService) GetMonthlyIncome(workspaceID int32) (decimal.Decimal, error) {
	incomes, err := s.incomeRepo.ListByWorkspace(workspaceID)
	if err != nil {
		return decimal.Zero, err
	}
	return engine.MonthlyIncome(incomes)
}
