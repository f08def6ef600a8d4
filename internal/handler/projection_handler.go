package handler

import (
	"fmt"
	"net/http"

	"github.com/dafibh/fortuna/fortuna-planner/internal/domain"
	"github.com/dafibh/fortuna/fortuna-planner/internal/middleware"
	"github.com/dafibh/fortuna/fortuna-planner/internal/service"
	"github.com/labstack/echo/v4"
)

// ProjectionHandler runs savings and investment projections
type ProjectionHandler struct {
	projectionService *service.ProjectionService
}

// NewProjectionHandler creates a new ProjectionHandler
func NewProjectionHandler(projectionService *service.ProjectionService) *ProjectionHandler {
	return &ProjectionHandler{projectionService: projectionService}
}

// ProjectionRequest is one scenario. Omitted monthlyNetIncome and startingInvestmentValue
// are filled from the workspace's income sources and portfolio.
type ProjectionRequest struct {
	Name                        string  `json:"name,omitempty"`
	SavingsRatePercent          string  `json:"savingsRatePercent"`
	ExpectedAnnualReturnPercent string  `json:"expectedAnnualReturnPercent"`
	Months                      int     `json:"months"`
	ExtraMonthlySavings         string  `json:"extraMonthlySavings,omitempty"`
	MonthlyNetIncome            *string `json:"monthlyNetIncome,omitempty"`
	StartingInvestmentValue     *string `json:"startingInvestmentValue,omitempty"`
}

// CompareRequest holds the scenarios to run side by side
type CompareRequest struct {
	Scenarios []ProjectionRequest `json:"scenarios"`
}

// ProjectionPointResponse is the projected position at the end of one month
type ProjectionPointResponse struct {
	MonthIndex        int    `json:"monthIndex"`
	CumulativeSavings string `json:"cumulativeSavings"`
	InvestmentValue   string `json:"investmentValue"`
	NetWorth          string `json:"netWorth"`
}

// ProjectionSummaryResponse condenses a projection into its end state
type ProjectionSummaryResponse struct {
	FinalNetWorth    string `json:"finalNetWorth"`
	TotalSaved       string `json:"totalSaved"`
	InvestmentGrowth string `json:"investmentGrowth"`
	MonthlySavings   string `json:"monthlySavings"`
	StartingNetWorth string `json:"startingNetWorth"`
	NetWorthIncrease string `json:"netWorthIncrease"`
}

// ProjectionScenarioResponse echoes the resolved scenario inputs
type ProjectionScenarioResponse struct {
	Name                        string `json:"name,omitempty"`
	SavingsRatePercent          string `json:"savingsRatePercent"`
	ExpectedAnnualReturnPercent string `json:"expectedAnnualReturnPercent"`
	Months                      int    `json:"months"`
	ExtraMonthlySavings         string `json:"extraMonthlySavings"`
	MonthlyNetIncome            string `json:"monthlyNetIncome"`
	StartingInvestmentValue     string `json:"startingInvestmentValue"`
}

// ProjectionResponse is a scenario with its month-by-month projection
type ProjectionResponse struct {
	Scenario ProjectionScenarioResponse `json:"scenario"`
	Points   []ProjectionPointResponse  `json:"points"`
	Summary  ProjectionSummaryResponse  `json:"summary"`
}

// Project godoc
// @Summary Project savings and investments
// @Description Returns months+1 points; point 0 is the starting position.
// @Tags projections
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body ProjectionRequest true "Scenario"
// @Success 200 {object} ProjectionResponse
// @Failure 400 {object} ProblemDetails
// @Router /projections [post]
func (h *ProjectionHandler) Project(c echo.Context) error {
	workspaceID := middleware.GetWorkspaceID(c)
	if workspaceID == 0 {
		return NewUnauthorizedError(c, "Workspace required")
	}

	var req ProjectionRequest
	if err := c.Bind(&req); err != nil {
		return NewValidationError(c, "Invalid request body", nil)
	}
	input, verr := req.toInput("")
	if verr != nil {
		return fieldError(c, verr)
	}

	result, err := h.projectionService.Project(workspaceID, input)
	if err != nil {
		return handleServiceError(c, err, workspaceID, "run projection")
	}
	return c.JSON(http.StatusOK, toProjectionResponse(*result))
}

// Compare godoc
// @Summary Compare projection scenarios
// @Tags projections
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CompareRequest true "Scenarios"
// @Success 200 {array} ProjectionResponse
// @Failure 400 {object} ProblemDetails
// @Router /projections/compare [post]
func (h *ProjectionHandler) Compare(c echo.Context) error {
	workspaceID := middleware.GetWorkspaceID(c)
	if workspaceID == 0 {
		return NewUnauthorizedError(c, "Workspace required")
	}

	var req CompareRequest
	if err := c.Bind(&req); err != nil {
		return NewValidationError(c, "Invalid request body", nil)
	}
	if len(req.Scenarios) == 0 || len(req.Scenarios) > service.MaxCompareScenarios {
		return fieldError(c, &ValidationError{
			Field:   "scenarios",
			Message: fmt.Sprintf("Must contain between 1 and %d scenarios", service.MaxCompareScenarios),
		})
	}

	inputs := make([]service.ProjectionRequest, len(req.Scenarios))
	for i, scenario := range req.Scenarios {
		input, verr := scenario.toInput(fmt.Sprintf("scenarios[%d].", i))
		if verr != nil {
			return fieldError(c, verr)
		}
		inputs[i] = input
	}

	results, err := h.projectionService.Compare(workspaceID, inputs)
	if err != nil {
		return handleServiceError(c, err, workspaceID, "compare projections")
	}

	response := make([]ProjectionResponse, len(results))
	for i, result := range results {
		response[i] = toProjectionResponse(result)
	}
	return c.JSON(http.StatusOK, response)
}

func (r ProjectionRequest) toInput(prefix string) (service.ProjectionRequest, *ValidationError) {
	input := service.ProjectionRequest{Name: r.Name, Months: r.Months}

	var verr *ValidationError
	if input.SavingsRatePercent, verr = parseDecimal(r.SavingsRatePercent, prefix+"savingsRatePercent"); verr != nil {
		return input, verr
	}
	if input.ExpectedAnnualReturnPercent, verr = parseDecimal(r.ExpectedAnnualReturnPercent, prefix+"expectedAnnualReturnPercent"); verr != nil {
		return input, verr
	}
	if input.ExtraMonthlySavings, verr = parseOptionalDecimal(r.ExtraMonthlySavings, prefix+"extraMonthlySavings"); verr != nil {
		return input, verr
	}
	if input.MonthlyNetIncome, verr = parseDecimalPtr(r.MonthlyNetIncome, prefix+"monthlyNetIncome"); verr != nil {
		return input, verr
	}
	if input.StartingInvestmentValue, verr = parseDecimalPtr(r.StartingInvestmentValue, prefix+"startingInvestmentValue"); verr != nil {
		return input, verr
	}
	return input, nil
}

func toProjectionResponse(result domain.ProjectionResult) ProjectionResponse {
	points := make([]ProjectionPointResponse, len(result.Points))
	for i, p := range result.Points {
		points[i] = ProjectionPointResponse{
			MonthIndex:        p.MonthIndex,
			CumulativeSavings: formatMoney(p.CumulativeSavings),
			InvestmentValue:   formatMoney(p.InvestmentValue),
			NetWorth:          formatMoney(p.NetWorth),
		}
	}
	s := result.Scenario
	return ProjectionResponse{
		Scenario: ProjectionScenarioResponse{
			Name:                        s.Name,
			SavingsRatePercent:          s.SavingsRatePercent.String(),
			ExpectedAnnualReturnPercent: s.ExpectedAnnualReturnPercent.String(),
			Months:                      s.Months,
			ExtraMonthlySavings:         formatMoney(s.ExtraMonthlySavings),
			MonthlyNetIncome:            formatMoney(s.MonthlyNetIncome),
			StartingInvestmentValue:     formatMoney(s.StartingInvestmentValue),
		},
		Points: points,
		Summary: ProjectionSummaryResponse{
			FinalNetWorth:    formatMoney(result.Summary.FinalNetWorth),
			TotalSaved:       formatMoney(result.Summary.TotalSaved),
			InvestmentGrowth: formatMoney(result.Summary.InvestmentGrowth),
			MonthlySavings:   formatMoney(result.Summary.MonthlySavings),
			StartingNetWorth: formatMoney(result.Summary.StartingNetWorth),
			NetWorthIncrease: formatMoney(result.Summary.NetWorthIncrease),
		},
	}
}
