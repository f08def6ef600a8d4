package handler

import (
	"net/http"
	"strings"

	"github.com/dafibh/fortuna/fortuna-planner/internal/domain"
	"github.com/dafibh/fortuna/fortuna-planner/internal/middleware"
	"github.com/dafibh/fortuna/fortuna-planner/internal/service"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

// BudgetHandler handles budget HTTP requests
type BudgetHandler struct {
	budgetService *service.BudgetService
}

// NewBudgetHandler creates a new BudgetHandler
func NewBudgetHandler(budgetService *service.BudgetService) *BudgetHandler {
	return &BudgetHandler{budgetService: budgetService}
}

// CreateBudgetRequest represents the create budget request body
type CreateBudgetRequest struct {
	Category string `json:"category"`
	Amount   string `json:"amount"`
	Period   string `json:"period,omitempty"`
}

// BudgetResponse represents a budget in API responses
type BudgetResponse struct {
	ID        int32  `json:"id"`
	Category  string `json:"category"`
	Amount    string `json:"amount"`
	Period    string `json:"period"`
	CreatedAt string `json:"createdAt"`
}

// BudgetConsumptionResponse is the spend of one budget over the requested period
type BudgetConsumptionResponse struct {
	BudgetID      int32  `json:"budgetId"`
	Category      string `json:"category"`
	BudgetAmount  string `json:"budgetAmount"`
	Spent         string `json:"spent"`
	Percentage    string `json:"percentage"`
	RawPercentage string `json:"rawPercentage"`
	Remaining     string `json:"remaining"`
	Status        string `json:"status"`
}

// ConsumptionResponse wraps budget consumption with the period it covers
type ConsumptionResponse struct {
	PeriodStart string                      `json:"periodStart"`
	PeriodEnd   string                      `json:"periodEnd"`
	Budgets     []BudgetConsumptionResponse `json:"budgets"`
}

// CreateBudget godoc
// @Summary Create a budget
// @Description Several budgets may share one category; each is reported on its own.
// @Tags budgets
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateBudgetRequest true "Budget"
// @Success 201 {object} BudgetResponse
// @Failure 400 {object} ProblemDetails
// @Router /budgets [post]
func (h *BudgetHandler) CreateBudget(c echo.Context) error {
	workspaceID := middleware.GetWorkspaceID(c)
	if workspaceID == 0 {
		return NewUnauthorizedError(c, "Workspace required")
	}

	var req CreateBudgetRequest
	if err := c.Bind(&req); err != nil {
		return NewValidationError(c, "Invalid request body", nil)
	}

	amount, verr := parseDecimal(req.Amount, "amount")
	if verr != nil {
		return fieldError(c, verr)
	}

	budget, err := h.budgetService.CreateBudget(workspaceID, service.CreateBudgetInput{
		Category: req.Category,
		Amount:   amount,
		Period:   domain.BudgetPeriod(req.Period),
	})
	if err != nil {
		return handleServiceError(c, err, workspaceID, "create budget")
	}

	log.Info().Int32("workspace_id", workspaceID).Int32("budget_id", budget.ID).Str("category", budget.Category).Msg("Budget created")
	return c.JSON(http.StatusCreated, toBudgetResponse(budget))
}

// GetBudgets handles GET /api/v1/budgets
func (h *BudgetHandler) GetBudgets(c echo.Context) error {
	workspaceID := middleware.GetWorkspaceID(c)
	if workspaceID == 0 {
		return NewUnauthorizedError(c, "Workspace required")
	}

	budgets, err := h.budgetService.GetBudgets(workspaceID)
	if err != nil {
		return handleServiceError(c, err, workspaceID, "get budgets")
	}

	response := make([]BudgetResponse, len(budgets))
	for i, budget := range budgets {
		response[i] = toBudgetResponse(budget)
	}
	return c.JSON(http.StatusOK, response)
}

// DeleteBudget handles DELETE /api/v1/budgets/:id
func (h *BudgetHandler) DeleteBudget(c echo.Context) error {
	workspaceID := middleware.GetWorkspaceID(c)
	if workspaceID == 0 {
		return NewUnauthorizedError(c, "Workspace required")
	}
	id, ok := parseID(c)
	if !ok {
		return NewValidationError(c, "Invalid budget ID", nil)
	}

	if err := h.budgetService.DeleteBudget(workspaceID, id); err != nil {
		return handleServiceError(c, err, workspaceID, "delete budget")
	}
	return c.NoContent(http.StatusNoContent)
}

// GetConsumption godoc
// @Summary Budget consumption
// @Description Explicit start and end take precedence; otherwise the period containing asOf is used.
// @Tags budgets
// @Produce json
// @Security BearerAuth
// @Param start query string false "Inclusive start date (YYYY-MM-DD)"
// @Param end query string false "Inclusive end date (YYYY-MM-DD)"
// @Param period query string false "weekly, monthly, quarterly or annually" default(monthly)
// @Param asOf query string false "Reference date (YYYY-MM-DD), defaults to today"
// @Param category query string false "Only report this category"
// @Success 200 {object} ConsumptionResponse
// @Failure 400 {object} ProblemDetails
// @Router /budgets/consumption [get]
func (h *BudgetHandler) GetConsumption(c echo.Context) error {
	workspaceID := middleware.GetWorkspaceID(c)
	if workspaceID == 0 {
		return NewUnauthorizedError(c, "Workspace required")
	}

	start, verr := queryDate(c, "start")
	if verr != nil {
		return fieldError(c, verr)
	}
	end, verr := queryDate(c, "end")
	if verr != nil {
		return fieldError(c, verr)
	}
	var category *string
	if value := strings.TrimSpace(c.QueryParam("category")); value != "" {
		category = &value
	}

	var report *service.ConsumptionReport
	var err error
	switch {
	case start != nil && end != nil:
		report, err = h.budgetService.GetConsumption(workspaceID, *start, *end, category)
	case start != nil || end != nil:
		return NewValidationError(c, "Validation failed", []ValidationError{
			{Field: "start", Message: "start and end must be given together"},
		})
	default:
		asOf, verr := asOfDate(c)
		if verr != nil {
			return fieldError(c, verr)
		}
		period := domain.BudgetPeriod(c.QueryParam("period"))
		if period == "" {
			period = domain.BudgetPeriodMonthly
		}
		report, err = h.budgetService.GetPeriodConsumption(workspaceID, period, asOf, category)
	}
	if err != nil {
		return handleServiceError(c, err, workspaceID, "get budget consumption")
	}

	response := ConsumptionResponse{
		PeriodStart: formatDate(report.PeriodStart),
		PeriodEnd:   formatDate(report.PeriodEnd),
		Budgets:     make([]BudgetConsumptionResponse, len(report.Budgets)),
	}
	for i, consumption := range report.Budgets {
		response.Budgets[i] = BudgetConsumptionResponse{
			BudgetID:      consumption.BudgetID,
			Category:      consumption.Category,
			BudgetAmount:  formatMoney(consumption.BudgetAmount),
			Spent:         formatMoney(consumption.Spent),
			Percentage:    consumption.Percentage.String(),
			RawPercentage: consumption.RawPercentage.String(),
			Remaining:     formatMoney(consumption.Remaining),
			Status:        string(consumption.Status),
		}
	}
	return c.JSON(http.StatusOK, response)
}

func toBudgetResponse(budget *domain.Budget) BudgetResponse {
	return BudgetResponse{
		ID:        budget.ID,
		Category:  budget.Category,
		Amount:    formatMoney(budget.Amount),
		Period:    string(budget.Period),
		CreatedAt: formatTimestamp(budget.CreatedAt),
	}
}
