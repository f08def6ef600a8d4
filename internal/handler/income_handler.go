package handler

import (
	"net/http"

	"github.com/dafibh/fortuna/fortuna-planner/internal/domain"
	"github.com/dafibh/fortuna/fortuna-planner/internal/middleware"
	"github.com/dafibh/fortuna/fortuna-planner/internal/service"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

// IncomeHandler handles income source HTTP requests
type IncomeHandler struct {
	incomeService *service.IncomeService
}

// NewIncomeHandler creates a new IncomeHandler
func NewIncomeHandler(incomeService *service.IncomeService) *IncomeHandler {
	return &IncomeHandler{incomeService: incomeService}
}

// CreateIncomeRequest represents the create income request body
type CreateIncomeRequest struct {
	Name      string `json:"name"`
	Amount    string `json:"amount"`
	Frequency string `json:"frequency"`
	StartDate string `json:"startDate"`
	IsActive  *bool  `json:"isActive,omitempty"`
}

// SetActiveRequest toggles whether a record counts toward monthly figures
type SetActiveRequest struct {
	IsActive *bool `json:"isActive"`
}

// IncomeResponse represents an income source in API responses
type IncomeResponse struct {
	ID        int32  `json:"id"`
	Name      string `json:"name"`
	Amount    string `json:"amount"`
	Frequency string `json:"frequency"`
	IsActive  bool   `json:"isActive"`
	StartDate string `json:"startDate"`
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

// MonthlyIncomeResponse is the normalised monthly income of a workspace
type MonthlyIncomeResponse struct {
	MonthlyIncome string `json:"monthlyIncome"`
}

// CreateIncome godoc
// @Summary Create an income source
// @Tags incomes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateIncomeRequest true "Income source"
// @Success 201 {object} IncomeResponse
// @Failure 400 {object} ProblemDetails
// @Router /incomes [post]
func (h *IncomeHandler) CreateIncome(c echo.Context) error {
	workspaceID := middleware.GetWorkspaceID(c)
	if workspaceID == 0 {
		return NewUnauthorizedError(c, "Workspace required")
	}

	var req CreateIncomeRequest
	if err := c.Bind(&req); err != nil {
		return NewValidationError(c, "Invalid request body", nil)
	}

	amount, verr := parseDecimal(req.Amount, "amount")
	if verr != nil {
		return fieldError(c, verr)
	}
	startDate, verr := parseDateField(req.StartDate, "startDate")
	if verr != nil {
		return fieldError(c, verr)
	}

	income, err := h.incomeService.CreateIncome(workspaceID, service.CreateIncomeInput{
		Name:      req.Name,
		Amount:    amount,
		Frequency: domain.Frequency(req.Frequency),
		StartDate: startDate,
		IsActive:  req.IsActive,
	})
	if err != nil {
		return handleServiceError(c, err, workspaceID, "create income source")
	}

	log.Info().Int32("workspace_id", workspaceID).Int32("income_id", income.ID).Msg("Income source created")
	return c.JSON(http.StatusCreated, toIncomeResponse(income))
}

// GetIncomes handles GET /api/v1/incomes
func (h *IncomeHandler) GetIncomes(c echo.Context) error {
	workspaceID := middleware.GetWorkspaceID(c)
	if workspaceID == 0 {
		return NewUnauthorizedError(c, "Workspace required")
	}

	incomes, err := h.incomeService.GetIncomes(workspaceID)
	if err != nil {
		return handleServiceError(c, err, workspaceID, "get income sources")
	}

	response := make([]IncomeResponse, len(incomes))
	for i, income := range incomes {
		response[i] = toIncomeResponse(income)
	}
	return c.JSON(http.StatusOK, response)
}

// GetIncome handles GET /api/v1/incomes/:id
func (h *IncomeHandler) GetIncome(c echo.Context) error {
	workspaceID := middleware.GetWorkspaceID(c)
	if workspaceID == 0 {
		return NewUnauthorizedError(c, "Workspace required")
	}
	id, ok := parseID(c)
	if !ok {
		return NewValidationError(c, "Invalid income ID", nil)
	}

	income, err := h.incomeService.GetIncomeByID(workspaceID, id)
	if err != nil {
		return handleServiceError(c, err, workspaceID, "get income source")
	}
	return c.JSON(http.StatusOK, toIncomeResponse(income))
}

// SetIncomeActive handles PATCH /api/v1/incomes/:id/active
func (h *IncomeHandler) SetIncomeActive(c echo.Context) error {
	workspaceID := middleware.GetWorkspaceID(c)
	if workspaceID == 0 {
		return NewUnauthorizedError(c, "Workspace required")
	}
	id, ok := parseID(c)
	if !ok {
		return NewValidationError(c, "Invalid income ID", nil)
	}

	var req SetActiveRequest
	if err := c.Bind(&req); err != nil || req.IsActive == nil {
		return NewValidationError(c, "Validation failed", []ValidationError{{Field: "isActive", Message: "Is required"}})
	}

	income, err := h.incomeService.SetIncomeActive(workspaceID, id, *req.IsActive)
	if err != nil {
		return handleServiceError(c, err, workspaceID, "update income source")
	}
	return c.JSON(http.StatusOK, toIncomeResponse(income))
}

// DeleteIncome handles DELETE /api/v1/incomes/:id
func (h *IncomeHandler) DeleteIncome(c echo.Context) error {
	workspaceID := middleware.GetWorkspaceID(c)
	if workspaceID == 0 {
		return NewUnauthorizedError(c, "Workspace required")
	}
	id, ok := parseID(c)
	if !ok {
		return NewValidationError(c, "Invalid income ID", nil)
	}

	if err := h.incomeService.DeleteIncome(workspaceID, id); err != nil {
		return handleServiceError(c, err, workspaceID, "delete income source")
	}
	return c.NoContent(http.StatusNoContent)
}

// GetMonthlyIncome godoc
// @Summary Normalised monthly income
// @Description Sum of every active recurring income source converted to a monthly amount
// @Tags incomes
// @Produce json
// @Security BearerAuth
// @Success 200 {object} MonthlyIncomeResponse
// @Router /incomes/monthly [get]
func (h *IncomeHandler) GetMonthlyIncome(c echo.Context) error {
	workspaceID := middleware.GetWorkspaceID(c)
	if workspaceID == 0 {
		return NewUnauthorizedError(c, "Workspace required")
	}

	monthly, err := h.incomeService.GetMonthlyIncome(workspaceID)
	if err != nil {
		return handleServiceError(c, err, workspaceID, "get monthly income")
	}
	return c.JSON(http.StatusOK, MonthlyIncomeResponse{MonthlyIncome: formatMoney(monthly)})
}

func toIncomeResponse(income *domain.IncomeSource) IncomeResponse {
	return IncomeResponse{
		ID:        income.ID,
		Name:      income.Name,
		Amount:    formatMoney(income.Amount),
		Frequency: string(income.Frequency),
		IsActive:  income.IsActive,
		StartDate: formatDate(income.StartDate),
		CreatedAt: formatTimestamp(income.CreatedAt),
		UpdatedAt: formatTimestamp(income.UpdatedAt),
	}
}
