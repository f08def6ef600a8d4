package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// RecurringPayment is an obligation that falls due on NextDueDate and then every Frequency.
// NextDueDate always points at the next unresolved occurrence.
type RecurringPayment struct {
	ID          int32           `json:"id"`
	WorkspaceID int32           `json:"workspaceId"`
	Name        string          `json:"name"`
	Amount      decimal.Decimal `json:"amount"`
	Frequency   Frequency       `json:"frequency"`
	Category    *string         `json:"category,omitempty"`
	NextDueDate time.Time       `json:"nextDueDate"`
	IsActive    bool            `json:"isActive"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}

// DueStatus is the urgency of an obligation relative to today.
type DueStatus string

const (
	DueStatusOverdue   DueStatus = "overdue"
	DueStatusDueToday  DueStatus = "due_today"
	DueStatusDueSoon   DueStatus = "due_soon"
	DueStatusUpcoming  DueStatus = "upcoming"
	DueStatusScheduled DueStatus = "scheduled"
)

// TransitionAction names the action applied to an obligation.
type TransitionAction string

const (
	TransitionPaid    TransitionAction = "paid"
	TransitionSkipped TransitionAction = "skipped"
)

// PaymentTransition is the result of resolving one occurrence of a recurring payment.
// Expense is nil for skips.
type PaymentTransition struct {
	Action          TransitionAction  `json:"action"`
	PreviousDueDate time.Time         `json:"previousDueDate"`
	Payment         *RecurringPayment `json:"payment"`
	Expense         *Expense          `json:"expense,omitempty"`
}

// Obligation is an active recurring payment annotated with its due urgency.
type Obligation struct {
	Payment      *RecurringPayment `json:"payment"`
	DaysUntilDue int               `json:"daysUntilDue"`
	Status       DueStatus         `json:"status"`
}

type RecurringRepository interface {
	Create(payment *RecurringPayment) (*RecurringPayment, error)
	GetByID(workspaceID int32, id int32) (*RecurringPayment, error)
	ListByWorkspace(workspaceID int32, activeOnly *bool) ([]*RecurringPayment, error)
	SetActive(workspaceID int32, id int32, active bool) (*RecurringPayment, error)
	Delete(workspaceID int32, id int32) error
	// ApplyTransition persists the advanced payment and, when present, the new expense
	// atomically. It fails with ErrPaymentConflict if the stored due date no longer equals
	// transition.PreviousDueDate.
	ApplyTransition(transition *PaymentTransition) (*PaymentTransition, error)
}
