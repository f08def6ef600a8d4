package handler

import (
	"net/http"

	"github.com/dafibh/fortuna/fortuna-planner/internal/domain"
	"github.com/dafibh/fortuna/fortuna-planner/internal/middleware"
	"github.com/dafibh/fortuna/fortuna-planner/internal/service"
	"github.com/labstack/echo/v4"
)

// DashboardHandler handles dashboard-related HTTP requests
type DashboardHandler struct {
	dashboardService *service.DashboardService
}

// NewDashboardHandler creates a new DashboardHandler
func NewDashboardHandler(dashboardService *service.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

// FactsResponse are the figures recommendations are derived from
type FactsResponse struct {
	AsOf             string                 `json:"asOf"`
	MonthlyIncome    string                 `json:"monthlyIncome"`
	MonthlyExpenses  string                 `json:"monthlyExpenses"`
	MonthlyNet       string                 `json:"monthlyNet"`
	RecurringMonthly string                 `json:"recurringMonthly"`
	TotalInvestments string                 `json:"totalInvestments"`
	OverdueBills     int                    `json:"overdueBills"`
	Goals            []GoalProgressResponse `json:"goals"`
}

// RecommendationResponse is one piece of advice
type RecommendationResponse struct {
	Category string `json:"category"`
	Severity string `json:"severity"`
	Message  string `json:"message"`
}

// DashboardSummaryResponse is the overview screen payload
type DashboardSummaryResponse struct {
	Facts           FactsResponse            `json:"facts"`
	SavingsRate     string                   `json:"savingsRate"`
	EmergencyMonths string                   `json:"emergencyMonths"`
	Portfolio       PortfolioResponse        `json:"portfolio"`
	Upcoming        []ObligationResponse     `json:"upcoming"`
	Recommendations []RecommendationResponse `json:"recommendations"`
}

// GetSummary godoc
// @Summary Dashboard summary
// @Description Monthly figures, portfolio, upcoming obligations and recommendations as of a date.
// @Tags dashboard
// @Produce json
// @Security BearerAuth
// @Param asOf query string false "Reference date (YYYY-MM-DD), defaults to today"
// @Success 200 {object} DashboardSummaryResponse
// @Failure 400 {object} ProblemDetails
// @Failure 401 {object} ProblemDetails
// @Router /dashboard/summary [get]
func (h *DashboardHandler) GetSummary(c echo.Context) error {
	workspaceID := middleware.GetWorkspaceID(c)
	if workspaceID == 0 {
		return NewUnauthorizedError(c, "Workspace required")
	}

	asOf, verr := asOfDate(c)
	if verr != nil {
		return fieldError(c, verr)
	}

	summary, err := h.dashboardService.GetSummary(workspaceID, asOf)
	if err != nil {
		return handleServiceError(c, err, workspaceID, "get dashboard summary")
	}
	return c.JSON(http.StatusOK, toDashboardSummaryResponse(summary))
}

func toDashboardSummaryResponse(summary *domain.DashboardSummary) DashboardSummaryResponse {
	facts := summary.Facts
	goals := make([]GoalProgressResponse, len(facts.Goals))
	for i, g := range facts.Goals {
		goals[i] = toGoalProgressResponse(g)
	}

	recommendations := make([]RecommendationResponse, len(summary.Recommendations))
	for i, r := range summary.Recommendations {
		recommendations[i] = RecommendationResponse{
			Category: string(r.Category),
			Severity: string(r.Severity),
			Message:  r.Message,
		}
	}

	return DashboardSummaryResponse{
		Facts: FactsResponse{
			AsOf:             formatDate(facts.AsOf),
			MonthlyIncome:    formatMoney(facts.MonthlyIncome),
			MonthlyExpenses:  formatMoney(facts.MonthlyExpenses),
			MonthlyNet:       formatMoney(facts.MonthlyNet),
			RecurringMonthly: formatMoney(facts.RecurringMonthly),
			TotalInvestments: formatMoney(facts.TotalInvestments),
			OverdueBills:     facts.OverdueBills,
			Goals:            goals,
		},
		SavingsRate:     formatMoney(summary.SavingsRate),
		EmergencyMonths: formatMoney(summary.EmergencyMonths),
		Portfolio:       toPortfolioResponse(summary.Portfolio),
		Upcoming:        toObligationResponses(summary.Upcoming),
		Recommendations: recommendations,
	}
}
