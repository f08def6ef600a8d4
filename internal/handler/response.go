package handler

import (
	"errors"
	"net/http"

	"github.com/dafibh/fortuna/fortuna-planner/internal/domain"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

// ProblemDetails represents an RFC 7807 Problem Details response
type ProblemDetails struct {
	Type     string            `json:"type"`
	Title    string            `json:"title"`
	Status   int               `json:"status"`
	Detail   string            `json:"detail,omitempty"`
	Instance string            `json:"instance,omitempty"`
	Errors   []ValidationError `json:"errors,omitempty"`
}

// ValidationError represents a single validation error
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Error types
const (
	ErrorTypeValidation   = "https://fortuna.app/errors/validation"
	ErrorTypeNotFound     = "https://fortuna.app/errors/not-found"
	ErrorTypeUnauthorized = "https://fortuna.app/errors/unauthorized"
	ErrorTypeForbidden    = "https://fortuna.app/errors/forbidden"
	ErrorTypeConflict     = "https://fortuna.app/errors/conflict"
	ErrorTypeInternal     = "https://fortuna.app/errors/internal"
)

// NewValidationError creates a validation error response
func NewValidationError(c echo.Context, detail string, errors []ValidationError) error {
	return c.JSON(http.StatusBadRequest, ProblemDetails{
		Type:     ErrorTypeValidation,
		Title:    "Validation Error",
		Status:   http.StatusBadRequest,
		Detail:   detail,
		Instance: c.Request().URL.Path,
		Errors:   errors,
	})
}

// NewNotFoundError creates a not found error response
func NewNotFoundError(c echo.Context, detail string) error {
	return c.JSON(http.StatusNotFound, ProblemDetails{
		Type:     ErrorTypeNotFound,
		Title:    "Not Found",
		Status:   http.StatusNotFound,
		Detail:   detail,
		Instance: c.Request().URL.Path,
	})
}

// NewUnauthorizedError creates an unauthorized error response
func NewUnauthorizedError(c echo.Context, detail string) error {
	return c.JSON(http.StatusUnauthorized, ProblemDetails{
		Type:     ErrorTypeUnauthorized,
		Title:    "Unauthorized",
		Status:   http.StatusUnauthorized,
		Detail:   detail,
		Instance: c.Request().URL.Path,
	})
}

// NewForbiddenError creates a forbidden error response
func NewForbiddenError(c echo.Context, detail string) error {
	return c.JSON(http.StatusForbidden, ProblemDetails{
		Type:     ErrorTypeForbidden,
		Title:    "Forbidden",
		Status:   http.StatusForbidden,
		Detail:   detail,
		Instance: c.Request().URL.Path,
	})
}

// NewConflictError creates a conflict error response
func NewConflictError(c echo.Context, detail string) error {
	return c.JSON(http.StatusConflict, ProblemDetails{
		Type:     ErrorTypeConflict,
		Title:    "Conflict",
		Status:   http.StatusConflict,
		Detail:   detail,
		Instance: c.Request().URL.Path,
	})
}

// NewInternalError creates an internal error response
func NewInternalError(c echo.Context, detail string) error {
	return c.JSON(http.StatusInternalServerError, ProblemDetails{
		Type:     ErrorTypeInternal,
		Title:    "Internal Server Error",
		Status:   http.StatusInternalServerError,
		Detail:   detail,
		Instance: c.Request().URL.Path,
	})
}

// validationFields maps validation errors onto the request field they concern
var validationFields = []struct {
	err     error
	field   string
	message string
}{
	{domain.ErrNameRequired, "name", "Name is required"},
	{domain.ErrNameTooLong, "name", "Name is too long"},
	{domain.ErrCategoryRequired, "category", "Category is required"},
	{domain.ErrInvalidBudgetAmount, "amount", "Budget amount must be positive"},
	{domain.ErrInvalidAmount, "amount", "Amount is invalid"},
	{domain.ErrUnsupportedFrequency, "frequency", "Frequency is not supported here"},
	{domain.ErrInvalidFrequency, "frequency", "Frequency is invalid"},
	{domain.ErrInvalidDate, "date", "Date is required"},
	{domain.ErrInvalidQuantity, "quantity", "Quantity must be positive"},
	{domain.ErrInvalidPeriod, "period", "Period must be weekly, monthly, quarterly or annually"},
	{domain.ErrInvalidProjectionHorizon, "months", "Months is out of range"},
}

var notFoundErrors = []error{
	domain.ErrNotFound,
	domain.ErrIncomeNotFound,
	domain.ErrExpenseNotFound,
	domain.ErrBudgetNotFound,
	domain.ErrRecurringNotFound,
	domain.ErrInvestmentNotFound,
	domain.ErrGoalNotFound,
}

// handleServiceError maps a service error onto a problem-details response
func handleServiceError(c echo.Context, err error, workspaceID int32, action string) error {
	for _, target := range notFoundErrors {
		if errors.Is(err, target) {
			return NewNotFoundError(c, target.Error())
		}
	}
	if errors.Is(err, domain.ErrPaymentConflict) || errors.Is(err, domain.ErrInvalidPaymentState) {
		return NewConflictError(c, err.Error())
	}
	for _, v := range validationFields {
		if errors.Is(err, v.err) {
			return NewValidationError(c, err.Error(), []ValidationError{{Field: v.field, Message: v.message}})
		}
	}
	if errors.Is(err, domain.ErrInvalidInput) {
		return NewValidationError(c, err.Error(), nil)
	}
	if errors.Is(err, domain.ErrUnauthorized) || errors.Is(err, domain.ErrWorkspaceNotFound) {
		return NewUnauthorizedError(c, "Authentication required")
	}

	log.Error().Err(err).Int32("workspace_id", workspaceID).Msg("Failed to " + action)
	return NewInternalError(c, "Failed to "+action)
}
