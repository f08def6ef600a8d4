package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type Investment struct {
	ID            int32           `json:"id"`
	WorkspaceID   int32           `json:"workspaceId"`
	Name          string          `json:"name"`
	Quantity      decimal.Decimal `json:"quantity"`
	PurchasePrice decimal.Decimal `json:"purchasePrice"`
	CurrentPrice  decimal.Decimal `json:"currentPrice"`
	PurchaseDate  time.Time       `json:"purchaseDate"`
	CreatedAt     time.Time       `json:"createdAt"`
	UpdatedAt     time.Time       `json:"updatedAt"`
}

// InvestmentPerformance is cost basis vs market value for one position.
type InvestmentPerformance struct {
	InvestmentID   int32           `json:"investmentId"`
	Name           string          `json:"name"`
	CurrentValue   decimal.Decimal `json:"currentValue"`
	CostBasis      decimal.Decimal `json:"costBasis"`
	Gain           decimal.Decimal `json:"gain"`
	GainPercentage decimal.Decimal `json:"gainPercentage"`
	IsPositive     bool            `json:"isPositive"`
}

// Portfolio aggregates the performance of every position.
type Portfolio struct {
	Holdings            []InvestmentPerformance `json:"holdings"`
	TotalValue          decimal.Decimal         `json:"totalValue"`
	TotalCostBasis      decimal.Decimal         `json:"totalCostBasis"`
	TotalGain           decimal.Decimal         `json:"totalGain"`
	TotalGainPercentage decimal.Decimal         `json:"totalGainPercentage"`
}

type InvestmentRepository interface {
	Create(investment *Investment) (*Investment, error)
	GetByID(workspaceID int32, id int32) (*Investment, error)
	ListByWorkspace(workspaceID int32) ([]*Investment, error)
	UpdateCurrentPrice(workspaceID int32, id int32, price decimal.Decimal) (*Investment, error)
	Delete(workspaceID int32, id int32) error
}
