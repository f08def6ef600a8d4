package handler

import (
	"net/http"
	"strconv"

	"github.com/dafibh/fortuna/fortuna-planner/internal/domain"
	"github.com/dafibh/fortuna/fortuna-planner/internal/middleware"
	"github.com/dafibh/fortuna/fortuna-planner/internal/service"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

// RecurringHandler handles recurring payment HTTP requests
type RecurringHandler struct {
	recurringService *service.RecurringService
}

// NewRecurringHandler creates a new RecurringHandler
func NewRecurringHandler(recurringService *service.RecurringService) *RecurringHandler {
	return &RecurringHandler{recurringService: recurringService}
}

// CreateRecurringRequest represents the create recurring payment request body
type CreateRecurringRequest struct {
	Name        string  `json:"name"`
	Amount      string  `json:"amount"`
	Frequency   string  `json:"frequency"`
	Category    *string `json:"category,omitempty"`
	NextDueDate string  `json:"nextDueDate"`
}

// RecurringResponse represents a recurring payment in API responses
type RecurringResponse struct {
	ID          int32   `json:"id"`
	Name        string  `json:"name"`
	Amount      string  `json:"amount"`
	Frequency   string  `json:"frequency"`
	Category    *string `json:"category,omitempty"`
	NextDueDate string  `json:"nextDueDate"`
	IsActive    bool    `json:"isActive"`
	CreatedAt   string  `json:"createdAt"`
	UpdatedAt   string  `json:"updatedAt"`
}

// TransitionResponse is the outcome of paying or skipping an occurrence
type TransitionResponse struct {
	Action          string            `json:"action"`
	PreviousDueDate string            `json:"previousDueDate"`
	Payment         RecurringResponse `json:"payment"`
	Expense         *ExpenseResponse  `json:"expense,omitempty"`
}

// ObligationResponse is an active recurring payment with its due urgency
type ObligationResponse struct {
	Payment      RecurringResponse `json:"payment"`
	DaysUntilDue int               `json:"daysUntilDue"`
	Status       string            `json:"status"`
}

// CreateRecurring godoc
// @Summary Create a recurring payment
// @Tags recurring
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateRecurringRequest true "Recurring payment"
// @Success 201 {object} RecurringResponse
// @Failure 400 {object} ProblemDetails
// @Router /recurring [post]
func (h *RecurringHandler) CreateRecurring(c echo.Context) error {
	workspaceID := middleware.GetWorkspaceID(c)
	if workspaceID == 0 {
		return NewUnauthorizedError(c, "Workspace required")
	}

	var req CreateRecurringRequest
	if err := c.Bind(&req); err != nil {
		return NewValidationError(c, "Invalid request body", nil)
	}

	amount, verr := parseDecimal(req.Amount, "amount")
	if verr != nil {
		return fieldError(c, verr)
	}
	nextDueDate, verr := parseDateField(req.NextDueDate, "nextDueDate")
	if verr != nil {
		return fieldError(c, verr)
	}

	payment, err := h.recurringService.CreateRecurring(workspaceID, service.CreateRecurringInput{
		Name:        req.Name,
		Amount:      amount,
		Frequency:   domain.Frequency(req.Frequency),
		Category:    req.Category,
		NextDueDate: nextDueDate,
	})
	if err != nil {
		return handleServiceError(c, err, workspaceID, "create recurring payment")
	}

	log.Info().Int32("workspace_id", workspaceID).Int32("recurring_id", payment.ID).Msg("Recurring payment created")
	return c.JSON(http.StatusCreated, toRecurringResponse(payment))
}

// GetRecurring godoc
// @Summary List recurring payments
// @Tags recurring
// @Produce json
// @Security BearerAuth
// @Param active query bool false "Filter by active state"
// @Success 200 {array} RecurringResponse
// @Router /recurring [get]
func (h *RecurringHandler) GetRecurring(c echo.Context) error {
	workspaceID := middleware.GetWorkspaceID(c)
	if workspaceID == 0 {
		return NewUnauthorizedError(c, "Workspace required")
	}

	var activeOnly *bool
	if value := c.QueryParam("active"); value != "" {
		active, err := strconv.ParseBool(value)
		if err != nil {
			return fieldError(c, &ValidationError{Field: "active", Message: "Must be true or false"})
		}
		activeOnly = &active
	}

	payments, err := h.recurringService.GetRecurring(workspaceID, activeOnly)
	if err != nil {
		return handleServiceError(c, err, workspaceID, "get recurring payments")
	}

	response := make([]RecurringResponse, len(payments))
	for i, payment := range payments {
		response[i] = toRecurringResponse(payment)
	}
	return c.JSON(http.StatusOK, response)
}

// GetRecurringByID handles GET /api/v1/recurring/:id
func (h *RecurringHandler) GetRecurringByID(c echo.Context) error {
	workspaceID := middleware.GetWorkspaceID(c)
	if workspaceID == 0 {
		return NewUnauthorizedError(c, "Workspace required")
	}
	id, ok := parseID(c)
	if !ok {
		return NewValidationError(c, "Invalid recurring payment ID", nil)
	}

	payment, err := h.recurringService.GetRecurringByID(workspaceID, id)
	if err != nil {
		return handleServiceError(c, err, workspaceID, "get recurring payment")
	}
	return c.JSON(http.StatusOK, toRecurringResponse(payment))
}

// SetRecurringActive handles PATCH /api/v1/recurring/:id/active
func (h *RecurringHandler) SetRecurringActive(c echo.Context) error {
	workspaceID := middleware.GetWorkspaceID(c)
	if workspaceID == 0 {
		return NewUnauthorizedError(c, "Workspace required")
	}
	id, ok := parseID(c)
	if !ok {
		return NewValidationError(c, "Invalid recurring payment ID", nil)
	}

	var req SetActiveRequest
	if err := c.Bind(&req); err != nil || req.IsActive == nil {
		return NewValidationError(c, "Validation failed", []ValidationError{{Field: "isActive", Message: "Is required"}})
	}

	payment, err := h.recurringService.SetRecurringActive(workspaceID, id, *req.IsActive)
	if err != nil {
		return handleServiceError(c, err, workspaceID, "update recurring payment")
	}
	return c.JSON(http.StatusOK, toRecurringResponse(payment))
}

// DeleteRecurring handles DELETE /api/v1/recurring/:id
func (h *RecurringHandler) DeleteRecurring(c echo.Context) error {
	workspaceID := middleware.GetWorkspaceID(c)
	if workspaceID == 0 {
		return NewUnauthorizedError(c, "Workspace required")
	}
	id, ok := parseID(c)
	if !ok {
		return NewValidationError(c, "Invalid recurring payment ID", nil)
	}

	if err := h.recurringService.DeleteRecurring(workspaceID, id); err != nil {
		return handleServiceError(c, err, workspaceID, "delete recurring payment")
	}
	return c.NoContent(http.StatusNoContent)
}

// MarkPaid godoc
// @Summary Mark the current occurrence as paid
// @Description Records an expense dated on the due date and advances the payment by one period.
// @Tags recurring
// @Produce json
// @Security BearerAuth
// @Param id path int true "Recurring payment ID"
// @Success 200 {object} TransitionResponse
// @Failure 404 {object} ProblemDetails
// @Failure 409 {object} ProblemDetails
// @Router /recurring/{id}/pay [post]
func (h *RecurringHandler) MarkPaid(c echo.Context) error {
	workspaceID := middleware.GetWorkspaceID(c)
	if workspaceID == 0 {
		return NewUnauthorizedError(c, "Workspace required")
	}
	id, ok := parseID(c)
	if !ok {
		return NewValidationError(c, "Invalid recurring payment ID", nil)
	}

	transition, err := h.recurringService.MarkPaid(workspaceID, id)
	if err != nil {
		return handleServiceError(c, err, workspaceID, "mark recurring payment paid")
	}
	return c.JSON(http.StatusOK, toTransitionResponse(transition))
}

// Skip godoc
// @Summary Skip the current occurrence
// @Tags recurring
// @Produce json
// @Security BearerAuth
// @Param id path int true "Recurring payment ID"
// @Success 200 {object} TransitionResponse
// @Failure 404 {object} ProblemDetails
// @Failure 409 {object} ProblemDetails
// @Router /recurring/{id}/skip [post]
func (h *RecurringHandler) Skip(c echo.Context) error {
	workspaceID := middleware.GetWorkspaceID(c)
	if workspaceID == 0 {
		return NewUnauthorizedError(c, "Workspace required")
	}
	id, ok := parseID(c)
	if !ok {
		return NewValidationError(c, "Invalid recurring payment ID", nil)
	}

	transition, err := h.recurringService.Skip(workspaceID, id)
	if err != nil {
		return handleServiceError(c, err, workspaceID, "skip recurring payment")
	}
	return c.JSON(http.StatusOK, toTransitionResponse(transition))
}

// GetUpcoming godoc
// @Summary Upcoming obligations
// @Description Active recurring payments sorted by due date, each with its urgency.
// @Tags recurring
// @Produce json
// @Security BearerAuth
// @Param asOf query string false "Reference date (YYYY-MM-DD), defaults to today"
// @Param withinDays query int false "Drop obligations due later than this many days"
// @Success 200 {array} ObligationResponse
// @Router /recurring/upcoming [get]
func (h *RecurringHandler) GetUpcoming(c echo.Context) error {
	workspaceID := middleware.GetWorkspaceID(c)
	if workspaceID == 0 {
		return NewUnauthorizedError(c, "Workspace required")
	}

	asOf, verr := asOfDate(c)
	if verr != nil {
		return fieldError(c, verr)
	}
	var withinDays *int
	if value := c.QueryParam("withinDays"); value != "" {
		days, err := strconv.Atoi(value)
		if err != nil || days < 0 {
			return fieldError(c, &ValidationError{Field: "withinDays", Message: "Must be a non-negative integer"})
		}
		withinDays = &days
	}

	obligations, err := h.recurringService.GetUpcoming(workspaceID, asOf, withinDays)
	if err != nil {
		return handleServiceError(c, err, workspaceID, "get upcoming obligations")
	}
	return c.JSON(http.StatusOK, toObligationResponses(obligations))
}

func toRecurringResponse(payment *domain.RecurringPayment) RecurringResponse {
	return RecurringResponse{
		ID:          payment.ID,
		Name:        payment.Name,
		Amount:      formatMoney(payment.Amount),
		Frequency:   string(payment.Frequency),
		Category:    payment.Category,
		NextDueDate: formatDate(payment.NextDueDate),
		IsActive:    payment.IsActive,
		CreatedAt:   formatTimestamp(payment.CreatedAt),
		UpdatedAt:   formatTimestamp(payment.UpdatedAt),
	}
}

func toTransitionResponse(transition *domain.PaymentTransition) TransitionResponse {
	response := TransitionResponse{
		Action:          string(transition.Action),
		PreviousDueDate: formatDate(transition.PreviousDueDate),
		Payment:         toRecurringResponse(transition.Payment),
	}
	if transition.Expense != nil {
		expense := toExpenseResponse(transition.Expense)
		response.Expense = &expense
	}
	return response
}

func toObligationResponses(obligations []domain.Obligation) []ObligationResponse {
	response := make([]ObligationResponse, len(obligations))
	for i, o := range obligations {
		response[i] = ObligationResponse{
			Payment:      toRecurringResponse(o.Payment),
			DaysUntilDue: o.DaysUntilDue,
			Status:       string(o.Status),
		}
	}
	return response
}
