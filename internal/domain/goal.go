package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Goal is a savings target. CurrentAmount may exceed TargetAmount.
type Goal struct {
	ID            int32           `json:"id"`
	WorkspaceID   int32           `json:"workspaceId"`
	Name          string          `json:"name"`
	TargetAmount  decimal.Decimal `json:"targetAmount"`
	CurrentAmount decimal.Decimal `json:"currentAmount"`
	TargetDate    *time.Time      `json:"targetDate,omitempty"`
	CreatedAt     time.Time       `json:"createdAt"`
	UpdatedAt     time.Time       `json:"updatedAt"`
}

// GoalProgress describes how far a goal is and what it still needs.
// MonthsRemaining and MonthlyContributionNeeded are nil for goals without a target date.
type GoalProgress struct {
	GoalID                    int32            `json:"goalId"`
	Name                      string           `json:"name"`
	Percentage                decimal.Decimal  `json:"percentage"`
	Remaining                 decimal.Decimal  `json:"remaining"`
	IsComplete                bool             `json:"isComplete"`
	MonthsRemaining           *int             `json:"monthsRemaining,omitempty"`
	MonthlyContributionNeeded *decimal.Decimal `json:"monthlyContributionNeeded,omitempty"`
}

type GoalRepository interface {
	Create(goal *Goal) (*Goal, error)
	GetByID(workspaceID int32, id int32) (*Goal, error)
	ListByWorkspace(workspaceID int32) ([]*Goal, error)
	UpdateCurrentAmount(workspaceID int32, id int32, amount decimal.Decimal) (*Goal, error)
	Delete(workspaceID int32, id int32) error
}
