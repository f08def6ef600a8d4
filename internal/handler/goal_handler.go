package handler

import (
	"net/http"

	"github.com/dafibh/fortuna/fortuna-planner/internal/domain"
	"github.com/dafibh/fortuna/fortuna-planner/internal/middleware"
	"github.com/dafibh/fortuna/fortuna-planner/internal/service"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

// GoalHandler handles savings goal HTTP requests
type GoalHandler struct {
	goalService *service.GoalService
}

// NewGoalHandler creates a new GoalHandler
func NewGoalHandler(goalService *service.GoalService) *GoalHandler {
	return &GoalHandler{goalService: goalService}
}

// CreateGoalRequest represents the create goal request body
type CreateGoalRequest struct {
	Name          string  `json:"name"`
	TargetAmount  string  `json:"targetAmount"`
	CurrentAmount string  `json:"currentAmount,omitempty"`
	TargetDate    *string `json:"targetDate,omitempty"`
}

// UpdateGoalAmountRequest sets the amount saved so far
type UpdateGoalAmountRequest struct {
	CurrentAmount string `json:"currentAmount"`
}

// GoalResponse represents a goal in API responses
type GoalResponse struct {
	ID            int32   `json:"id"`
	Name          string  `json:"name"`
	TargetAmount  string  `json:"targetAmount"`
	CurrentAmount string  `json:"currentAmount"`
	TargetDate    *string `json:"targetDate,omitempty"`
	CreatedAt     string  `json:"createdAt"`
	UpdatedAt     string  `json:"updatedAt"`
}

// GoalProgressResponse describes how far a goal is and what it still needs
type GoalProgressResponse struct {
	GoalID                    int32   `json:"goalId"`
	Name                      string  `json:"name"`
	Percentage                string  `json:"percentage"`
	Remaining                 string  `json:"remaining"`
	IsComplete                bool    `json:"isComplete"`
	MonthsRemaining           *int    `json:"monthsRemaining,omitempty"`
	MonthlyContributionNeeded *string `json:"monthlyContributionNeeded,omitempty"`
}

// CreateGoal godoc
// @Summary Create a savings goal
// @Tags goals
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateGoalRequest true "Goal"
// @Success 201 {object} GoalResponse
// @Failure 400 {object} ProblemDetails
// @Router /goals [post]
func (h *GoalHandler) CreateGoal(c echo.Context) error {
	workspaceID := middleware.GetWorkspaceID(c)
	if workspaceID == 0 {
		return NewUnauthorizedError(c, "Workspace required")
	}

	var req CreateGoalRequest
	if err := c.Bind(&req); err != nil {
		return NewValidationError(c, "Invalid request body", nil)
	}

	target, verr := parseDecimal(req.TargetAmount, "targetAmount")
	if verr != nil {
		return fieldError(c, verr)
	}
	current, verr := parseOptionalDecimal(req.CurrentAmount, "currentAmount")
	if verr != nil {
		return fieldError(c, verr)
	}
	targetDate, verr := parseDatePtr(req.TargetDate, "targetDate")
	if verr != nil {
		return fieldError(c, verr)
	}

	goal, err := h.goalService.CreateGoal(workspaceID, service.CreateGoalInput{
		Name:          req.Name,
		TargetAmount:  target,
		CurrentAmount: current,
		TargetDate:    targetDate,
	})
	if err != nil {
		return handleServiceError(c, err, workspaceID, "create goal")
	}

	log.Info().Int32("workspace_id", workspaceID).Int32("goal_id", goal.ID).Msg("Goal created")
	return c.JSON(http.StatusCreated, toGoalResponse(goal))
}

// GetGoals handles GET /api/v1/goals
func (h *GoalHandler) GetGoals(c echo.Context) error {
	workspaceID := middleware.GetWorkspaceID(c)
	if workspaceID == 0 {
		return NewUnauthorizedError(c, "Workspace required")
	}

	goals, err := h.goalService.GetGoals(workspaceID)
	if err != nil {
		return handleServiceError(c, err, workspaceID, "get goals")
	}

	response := make([]GoalResponse, len(goals))
	for i, goal := range goals {
		response[i] = toGoalResponse(goal)
	}
	return c.JSON(http.StatusOK, response)
}

// UpdateGoalAmount handles PATCH /api/v1/goals/:id/amount
func (h *GoalHandler) UpdateGoalAmount(c echo.Context) error {
	workspaceID := middleware.GetWorkspaceID(c)
	if workspaceID == 0 {
		return NewUnauthorizedError(c, "Workspace required")
	}
	id, ok := parseID(c)
	if !ok {
		return NewValidationError(c, "Invalid goal ID", nil)
	}

	var req UpdateGoalAmountRequest
	if err := c.Bind(&req); err != nil {
		return NewValidationError(c, "Invalid request body", nil)
	}
	amount, verr := parseDecimal(req.CurrentAmount, "currentAmount")
	if verr != nil {
		return fieldError(c, verr)
	}

	goal, err := h.goalService.UpdateCurrentAmount(workspaceID, id, amount)
	if err != nil {
		return handleServiceError(c, err, workspaceID, "update goal")
	}
	return c.JSON(http.StatusOK, toGoalResponse(goal))
}

// DeleteGoal handles DELETE /api/v1/goals/:id
func (h *GoalHandler) DeleteGoal(c echo.Context) error {
	workspaceID := middleware.GetWorkspaceID(c)
	if workspaceID == 0 {
		return NewUnauthorizedError(c, "Workspace required")
	}
	id, ok := parseID(c)
	if !ok {
		return NewValidationError(c, "Invalid goal ID", nil)
	}

	if err := h.goalService.DeleteGoal(workspaceID, id); err != nil {
		return handleServiceError(c, err, workspaceID, "delete goal")
	}
	return c.NoContent(http.StatusNoContent)
}

// GetProgress godoc
// @Summary Progress of every goal
// @Tags goals
// @Produce json
// @Security BearerAuth
// @Param asOf query string false "Reference date (YYYY-MM-DD), defaults to today"
// @Success 200 {array} GoalProgressResponse
// @Router /goals/progress [get]
func (h *GoalHandler) GetProgress(c echo.Context) error {
	workspaceID := middleware.GetWorkspaceID(c)
	if workspaceID == 0 {
		return NewUnauthorizedError(c, "Workspace required")
	}
	asOf, verr := asOfDate(c)
	if verr != nil {
		return fieldError(c, verr)
	}

	progress, err := h.goalService.GetProgress(workspaceID, asOf)
	if err != nil {
		return handleServiceError(c, err, workspaceID, "get goal progress")
	}

	response := make([]GoalProgressResponse, len(progress))
	for i, p := range progress {
		response[i] = toGoalProgressResponse(p)
	}
	return c.JSON(http.StatusOK, response)
}

// GetGoalProgress handles GET /api/v1/goals/:id/progress
func (h *GoalHandler) GetGoalProgress(c echo.Context) error {
	workspaceID := middleware.GetWorkspaceID(c)
	if workspaceID == 0 {
		return NewUnauthorizedError(c, "Workspace required")
	}
	id, ok := parseID(c)
	if !ok {
		return NewValidationError(c, "Invalid goal ID", nil)
	}
	asOf, verr := asOfDate(c)
	if verr != nil {
		return fieldError(c, verr)
	}

	progress, err := h.goalService.GetGoalProgress(workspaceID, id, asOf)
	if err != nil {
		return handleServiceError(c, err, workspaceID, "get goal progress")
	}
	return c.JSON(http.StatusOK, toGoalProgressResponse(*progress))
}

func toGoalResponse(goal *domain.Goal) GoalResponse {
	return GoalResponse{
		ID:            goal.ID,
		Name:          goal.Name,
		TargetAmount:  formatMoney(goal.TargetAmount),
		CurrentAmount: formatMoney(goal.CurrentAmount),
		TargetDate:    formatOptionalDate(goal.TargetDate),
		CreatedAt:     formatTimestamp(goal.CreatedAt),
		UpdatedAt:     formatTimestamp(goal.UpdatedAt),
	}
}

func toGoalProgressResponse(p domain.GoalProgress) GoalProgressResponse {
	return GoalProgressResponse{
		GoalID:                    p.GoalID,
		Name:                      p.Name,
		Percentage:                formatMoney(p.Percentage),
		Remaining:                 formatMoney(p.Remaining),
		IsComplete:                p.IsComplete,
		MonthsRemaining:           p.MonthsRemaining,
		MonthlyContributionNeeded: formatOptionalMoney(p.MonthlyContributionNeeded),
	}
}
