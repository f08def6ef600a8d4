package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// BudgetPeriod is the window a budget amount applies to.
type BudgetPeriod string

const (
	BudgetPeriodWeekly    BudgetPeriod = "weekly"
	BudgetPeriodMonthly   BudgetPeriod = "monthly"
	BudgetPeriodQuarterly BudgetPeriod = "quarterly"
	BudgetPeriodAnnually  BudgetPeriod = "annually"
)

// IsValid reports whether p is a known budget period.
func (p BudgetPeriod) IsValid() bool {
	switch p {
	case BudgetPeriodWeekly, BudgetPeriodMonthly, BudgetPeriodQuarterly, BudgetPeriodAnnually:
		return true
	}
	return false
}

type Budget struct {
	ID          int32           `json:"id"`
	WorkspaceID int32           `json:"workspaceId"`
	Category    string          `json:"category"`
	Amount      decimal.Decimal `json:"amount"`
	Period      BudgetPeriod    `json:"period"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}

// BudgetStatus classifies how much of a budget has been consumed.
type BudgetStatus string

const (
	BudgetStatusOnTrack    BudgetStatus = "on_track"
	BudgetStatusNearLimit  BudgetStatus = "near_limit"
	BudgetStatusOverBudget BudgetStatus = "over_budget"
)

// BudgetConsumption is the spend-vs-budget figure for one budget over a period.
// Percentage is clamped to 100 for progress bars; RawPercentage and Remaining are not.
type BudgetConsumption struct {
	BudgetID      int32           `json:"budgetId"`
	Category      string          `json:"category"`
	BudgetAmount  decimal.Decimal `json:"budgetAmount"`
	Spent         decimal.Decimal `json:"spent"`
	Percentage    decimal.Decimal `json:"percentage"`
	RawPercentage decimal.Decimal `json:"rawPercentage"`
	Remaining     decimal.Decimal `json:"remaining"`
	Status        BudgetStatus    `json:"status"`
}

type BudgetRepository interface {
	Create(budget *Budget) (*Budget, error)
	GetByID(workspaceID int32, id int32) (*Budget, error)
	ListByWorkspace(workspaceID int32) ([]*Budget, error)
	Delete(workspaceID int32, id int32) error
}
