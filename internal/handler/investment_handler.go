package handler

import (
	"net/http"

	"github.com/dafibh/fortuna/fortuna-planner/internal/domain"
	"github.com/dafibh/fortuna/fortuna-planner/internal/middleware"
	"github.com/dafibh/fortuna/fortuna-planner/internal/service"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

// InvestmentHandler handles investment HTTP requests
type InvestmentHandler struct {
	investmentService *service.InvestmentService
}

// NewInvestmentHandler creates a new InvestmentHandler
func NewInvestmentHandler(investmentService *service.InvestmentService) *InvestmentHandler {
	return &InvestmentHandler{investmentService: investmentService}
}

// CreateInvestmentRequest represents the create investment request body
type CreateInvestmentRequest struct {
	Name          string  `json:"name"`
	Quantity      string  `json:"quantity"`
	PurchasePrice string  `json:"purchasePrice"`
	CurrentPrice  *string `json:"currentPrice,omitempty"`
	PurchaseDate  string  `json:"purchaseDate"`
}

// UpdatePriceRequest carries a manually entered market price
type UpdatePriceRequest struct {
	CurrentPrice string `json:"currentPrice"`
}

// InvestmentResponse represents a position in API responses
type InvestmentResponse struct {
	ID            int32  `json:"id"`
	Name          string `json:"name"`
	Quantity      string `json:"quantity"`
	PurchasePrice string `json:"purchasePrice"`
	CurrentPrice  string `json:"currentPrice"`
	PurchaseDate  string `json:"purchaseDate"`
	UpdatedAt     string `json:"updatedAt"`
}

// PerformanceResponse is cost basis vs market value of one position
type PerformanceResponse struct {
	InvestmentID   int32  `json:"investmentId"`
	Name           string `json:"name"`
	CurrentValue   string `json:"currentValue"`
	CostBasis      string `json:"costBasis"`
	Gain           string `json:"gain"`
	GainPercentage string `json:"gainPercentage"`
	IsPositive     bool   `json:"isPositive"`
}

// PortfolioResponse aggregates every position
type PortfolioResponse struct {
	Holdings            []PerformanceResponse `json:"holdings"`
	TotalValue          string                `json:"totalValue"`
	TotalCostBasis      string                `json:"totalCostBasis"`
	TotalGain           string                `json:"totalGain"`
	TotalGainPercentage string                `json:"totalGainPercentage"`
}

// CreateInvestment godoc
// @Summary Add a position
// @Tags investments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateInvestmentRequest true "Position"
// @Success 201 {object} InvestmentResponse
// @Failure 400 {object} ProblemDetails
// @Router /investments [post]
func (h *InvestmentHandler) CreateInvestment(c echo.Context) error {
	workspaceID := middleware.GetWorkspaceID(c)
	if workspaceID == 0 {
		return NewUnauthorizedError(c, "Workspace required")
	}

	var req CreateInvestmentRequest
	if err := c.Bind(&req); err != nil {
		return NewValidationError(c, "Invalid request body", nil)
	}

	quantity, verr := parseDecimal(req.Quantity, "quantity")
	if verr != nil {
		return fieldError(c, verr)
	}
	purchasePrice, verr := parseDecimal(req.PurchasePrice, "purchasePrice")
	if verr != nil {
		return fieldError(c, verr)
	}
	currentPrice, verr := parseDecimalPtr(req.CurrentPrice, "currentPrice")
	if verr != nil {
		return fieldError(c, verr)
	}
	purchaseDate, verr := parseDateField(req.PurchaseDate, "purchaseDate")
	if verr != nil {
		return fieldError(c, verr)
	}

	investment, err := h.investmentService.CreateInvestment(workspaceID, service.CreateInvestmentInput{
		Name:          req.Name,
		Quantity:      quantity,
		PurchasePrice: purchasePrice,
		CurrentPrice:  currentPrice,
		PurchaseDate:  purchaseDate,
	})
	if err != nil {
		return handleServiceError(c, err, workspaceID, "create investment")
	}

	log.Info().Int32("workspace_id", workspaceID).Int32("investment_id", investment.ID).Msg("Investment created")
	return c.JSON(http.StatusCreated, toInvestmentResponse(investment))
}

// GetInvestments handles GET /api/v1/investments
func (h *InvestmentHandler) GetInvestments(c echo.Context) error {
	workspaceID := middleware.GetWorkspaceID(c)
	if workspaceID == 0 {
		return NewUnauthorizedError(c, "Workspace required")
	}

	investments, err := h.investmentService.GetInvestments(workspaceID)
	if err != nil {
		return handleServiceError(c, err, workspaceID, "get investments")
	}

	response := make([]InvestmentResponse, len(investments))
	for i, investment := range investments {
		response[i] = toInvestmentResponse(investment)
	}
	return c.JSON(http.StatusOK, response)
}

// GetPerformance handles GET /api/v1/investments/:id
func (h *InvestmentHandler) GetPerformance(c echo.Context) error {
	workspaceID := middleware.GetWorkspaceID(c)
	if workspaceID == 0 {
		return NewUnauthorizedError(c, "Workspace required")
	}
	id, ok := parseID(c)
	if !ok {
		return NewValidationError(c, "Invalid investment ID", nil)
	}

	performance, err := h.investmentService.GetInvestmentPerformance(workspaceID, id)
	if err != nil {
		return handleServiceError(c, err, workspaceID, "get investment performance")
	}
	return c.JSON(http.StatusOK, toPerformanceResponse(*performance))
}

// UpdatePrice godoc
// @Summary Update the market price of a position
// @Tags investments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Investment ID"
// @Param request body UpdatePriceRequest true "Price"
// @Success 200 {object} InvestmentResponse
// @Failure 400 {object} ProblemDetails
// @Failure 404 {object} ProblemDetails
// @Router /investments/{id}/price [patch]
func (h *InvestmentHandler) UpdatePrice(c echo.Context) error {
	workspaceID := middleware.GetWorkspaceID(c)
	if workspaceID == 0 {
		return NewUnauthorizedError(c, "Workspace required")
	}
	id, ok := parseID(c)
	if !ok {
		return NewValidationError(c, "Invalid investment ID", nil)
	}

	var req UpdatePriceRequest
	if err := c.Bind(&req); err != nil {
		return NewValidationError(c, "Invalid request body", nil)
	}
	price, verr := parseDecimal(req.CurrentPrice, "currentPrice")
	if verr != nil {
		return fieldError(c, verr)
	}

	investment, err := h.investmentService.UpdatePrice(workspaceID, id, price)
	if err != nil {
		return handleServiceError(c, err, workspaceID, "update investment price")
	}
	return c.JSON(http.StatusOK, toInvestmentResponse(investment))
}

// DeleteInvestment handles DELETE /api/v1/investments/:id
func (h *InvestmentHandler) DeleteInvestment(c echo.Context) error {
	workspaceID := middleware.GetWorkspaceID(c)
	if workspaceID == 0 {
		return NewUnauthorizedError(c, "Workspace required")
	}
	id, ok := parseID(c)
	if !ok {
		return NewValidationError(c, "Invalid investment ID", nil)
	}

	if err := h.investmentService.DeleteInvestment(workspaceID, id); err != nil {
		return handleServiceError(c, err, workspaceID, "delete investment")
	}
	return c.NoContent(http.StatusNoContent)
}

// GetPortfolio godoc
// @Summary Portfolio performance
// @Tags investments
// @Produce json
// @Security BearerAuth
// @Success 200 {object} PortfolioResponse
// @Router /investments/portfolio [get]
func (h *InvestmentHandler) GetPortfolio(c echo.Context) error {
	workspaceID := middleware.GetWorkspaceID(c)
	if workspaceID == 0 {
		return NewUnauthorizedError(c, "Workspace required")
	}

	portfolio, err := h.investmentService.GetPortfolio(workspaceID)
	if err != nil {
		return handleServiceError(c, err, workspaceID, "get portfolio")
	}
	return c.JSON(http.StatusOK, toPortfolioResponse(*portfolio))
}

func toInvestmentResponse(investment *domain.Investment) InvestmentResponse {
	return InvestmentResponse{
		ID:            investment.ID,
		Name:          investment.Name,
		Quantity:      investment.Quantity.String(),
		PurchasePrice: formatMoney(investment.PurchasePrice),
		CurrentPrice:  formatMoney(investment.CurrentPrice),
		PurchaseDate:  formatDate(investment.PurchaseDate),
		UpdatedAt:     formatTimestamp(investment.UpdatedAt),
	}
}

func toPerformanceResponse(p domain.InvestmentPerformance) PerformanceResponse {
	return PerformanceResponse{
		InvestmentID:   p.InvestmentID,
		Name:           p.Name,
		CurrentValue:   formatMoney(p.CurrentValue),
		CostBasis:      formatMoney(p.CostBasis),
		Gain:           formatMoney(p.Gain),
		GainPercentage: formatMoney(p.GainPercentage),
		IsPositive:     p.IsPositive,
	}
}

func toPortfolioResponse(portfolio domain.Portfolio) PortfolioResponse {
	holdings := make([]PerformanceResponse, len(portfolio.Holdings))
	for i, h := range portfolio.Holdings {
		holdings[i] = toPerformanceResponse(h)
	}
	return PortfolioResponse{
		Holdings:            holdings,
		TotalValue:          formatMoney(portfolio.TotalValue),
		TotalCostBasis:      formatMoney(portfolio.TotalCostBasis),
		TotalGain:           formatMoney(portfolio.TotalGain),
		TotalGainPercentage: formatMoney(portfolio.TotalGainPercentage),
	}
}
