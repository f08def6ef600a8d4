package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Expense is an immutable historical spending fact.
type Expense struct {
	ID          int32           `json:"id"`
	WorkspaceID int32           `json:"workspaceId"`
	Amount      decimal.Decimal `json:"amount"`
	Category    string          `json:"category"`
	Date        time.Time       `json:"date"`
	IsRecurring bool            `json:"isRecurring"`
	Description *string         `json:"description,omitempty"`
	CreatedAt   time.Time       `json:"createdAt"`
}

type ExpenseFilters struct {
	StartDate *time.Time
	EndDate   *time.Time
	Category  *string
}

type ExpenseRepository interface {
	Create(expense *Expense) (*Expense, error)
	GetByID(workspaceID int32, id int32) (*Expense, error)
	List(workspaceID int32, filters *ExpenseFilters) ([]*Expense, error)
	Delete(workspaceID int32, id int32) error
}
