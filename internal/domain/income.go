package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// IncomeSource is a stream of income at a fixed cadence. Only active sources count toward
// monthly income.
type IncomeSource struct {
	ID          int32           `json:"id"`
	WorkspaceID int32           `json:"workspaceId"`
	Name        string          `json:"name"`
	Amount      decimal.Decimal `json:"amount"`
	Frequency   Frequency       `json:"frequency"`
	IsActive    bool            `json:"isActive"`
	StartDate   time.Time       `json:"startDate"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}

type IncomeRepository interface {
	Create(income *IncomeSource) (*IncomeSource, error)
	GetByID(workspaceID int32, id int32) (*IncomeSource, error)
	ListByWorkspace(workspaceID int32) ([]*IncomeSource, error)
	SetActive(workspaceID int32, id int32, active bool) (*IncomeSource, error)
	Delete(workspaceID int32, id int32) error
}
