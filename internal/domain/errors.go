package domain

import "errors"

// Domain errors
var (
	ErrNotFound          = errors.New("resource not found")
	ErrInvalidInput      = errors.New("invalid input")
	ErrUnauthorized      = errors.New("unauthorized")
	ErrWorkspaceNotFound = errors.New("workspace not found")
	ErrNameRequired      = errors.New("name is required")
	ErrNameTooLong       = errors.New("name exceeds maximum length")
	ErrCategoryRequired  = errors.New("category is required")
	ErrInvalidAmount     = errors.New("invalid amount")
	ErrInvalidFrequency  = errors.New("invalid frequency")
	ErrInvalidDate       = errors.New("invalid date")
	ErrInvalidQuantity   = errors.New("invalid quantity")
	ErrInvalidPeriod     = errors.New("invalid budget period")

	ErrIncomeNotFound     = errors.New("income source not found")
	ErrExpenseNotFound    = errors.New("expense not found")
	ErrBudgetNotFound     = errors.New("budget not found")
	ErrRecurringNotFound  = errors.New("recurring payment not found")
	ErrInvestmentNotFound = errors.New("investment not found")
	ErrGoalNotFound       = errors.New("goal not found")

	// ErrPaymentConflict is returned when a recurring payment moved on between read and write.
	ErrPaymentConflict = errors.New("recurring payment was modified concurrently")
)

// Engine errors. Wrapped with a detail string via fmt.Errorf("%w: ...").
var (
	ErrUnsupportedFrequency     = errors.New("unsupported frequency")
	ErrInvalidPaymentState      = errors.New("invalid payment state")
	ErrInvalidBudgetAmount      = errors.New("invalid budget amount")
	ErrInvalidProjectionHorizon = errors.New("invalid projection horizon")
)

// Validation constants
const (
	MaxNameLength     = 255
	MaxCategoryLength = 100
	DefaultCategory   = "Other"
)
