package service

import (
	"time"

	"github.com/dafibh/fortuna/fortuna-planner/internal/domain"
	"github.com/dafibh/fortuna/fortuna-planner/internal/engine"
	"github.com/dafibh/fortuna/fortuna-planner/internal/websocket"
	"github.com/shopspring/decimal"
)

// InvestmentService handles investment positions and portfolio performance.
// Prices are entered manually.
type InvestmentService struct {
	eventEmitter
	investmentRepo domain.InvestmentRepository
}

// NewInvestmentService creates a new InvestmentService
func NewInvestmentService(investmentRepo domain.InvestmentRepository) *InvestmentService {
	return &InvestmentService{investmentRepo: investmentRepo}
}

// CreateInvestmentInput contains the input for adding a position.
// CurrentPrice defaults to PurchasePrice.
type CreateInvestmentInput struct {
	Name          string
	Quantity      decimal.Decimal
	PurchasePrice decimal.Decimal
	CurrentPrice  *decimal.Decimal
	PurchaseDate  time.Time
}

// CreateInvestment validates and stores a position
func (s *InvestmentService) CreateInvestment(workspaceID int32, input CreateInvestmentInput) (*domain.Investment, error) {
	name, err := validateName(input.Name)
	if err != nil {
		return nil, err
	}
	if !input.Quantity.IsPositive() {
		return nil, domain.ErrInvalidQuantity
	}
	if err := requireNonNegative(input.PurchasePrice); err != nil {
		return nil, err
	}
	currentPrice := input.PurchasePrice
	if input.CurrentPrice != nil {
		if err := requireNonNegative(*input.CurrentPrice); err != nil {
			return nil, err
		}
		currentPrice = *input.CurrentPrice
	}
	purchaseDate, err := requireDate(input.PurchaseDate)
	if err != nil {
		return nil, err
	}

	created, err := s.investmentRepo.Create(&domain.Investment{
		WorkspaceID:   workspaceID,
		Name:          name,
		Quantity:      input.Quantity,
		PurchasePrice: input.PurchasePrice,
		CurrentPrice:  currentPrice,
		PurchaseDate:  purchaseDate,
	})
	if err != nil {
		return nil, err
	}

	s.publishEvent(workspaceID, websocket.EntityCreated(websocket.EntityTypeInvestment, created))
	return created, nil
}

// GetInvestments retrieves all positions for a workspace
func (s *InvestmentService) GetInvestments(workspaceID int32) ([]*domain.Investment, error) {
	return s.investmentRepo.ListByWorkspace(workspaceID)
}

// GetInvestmentPerformance evaluates one position
func (s *InvestmentService) GetInvestmentPerformance(workspaceID int32, id int32) (*domain.InvestmentPerformance, error) {
	investment, err := s.investmentRepo.GetByID(workspaceID, id)
	if err != nil {
		return nil, err
	}
	performance := engine.InvestmentPerformance(investment)
	return &performance, nil
}

// UpdatePrice records a new market price for a position
func (s *InvestmentService) UpdatePrice(workspaceID int32, id int32, price decimal.Decimal) (*domain.Investment, error) {
	if err := requireNonNegative(price); err != nil {
		return nil, err
	}
	updated, err := s.investmentRepo.UpdateCurrentPrice(workspaceID, id, price)
	if err != nil {
		return nil, err
	}
	s.publishEvent(workspaceID, websocket.EntityUpdated(websocket.EntityTypeInvestment, updated))
	return updated, nil
}

// DeleteInvestment removes a position
func (s *InvestmentService) DeleteInvestment(workspaceID int32, id int32) error {
	if err := s.investmentRepo.Delete(workspaceID, id); err != nil {
		return err
	}
	s.publishEvent(workspaceID, websocket.EntityDeleted(websocket.EntityTypeInvestment, deletedPayload{ID: id}))
	return nil
}

// GetPortfolio aggregates the performance of every position
func (s *InvestmentService) GetPortfolio(workspaceID int32) (*domain.Portfolio, error) {
	investments, err := s.investmentRepo.ListByWorkspace(workspaceID)
	if err != nil {
		return nil, err
	}
	portfolio := engine.PortfolioPerformance(investments)
	return &portfolio, nil
}
