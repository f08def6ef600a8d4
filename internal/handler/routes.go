package handler

import (
	"github.com/dafibh/fortuna/fortuna-planner/internal/middleware"
	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"
)

// Handlers groups every HTTP handler mounted by RegisterRoutes
type Handlers struct {
	Auth       *AuthHandler
	Income     *IncomeHandler
	Expense    *ExpenseHandler
	Budget     *BudgetHandler
	Recurring  *RecurringHandler
	Investment *InvestmentHandler
	Goal       *GoalHandler
	Projection *ProjectionHandler
	Dashboard  *DashboardHandler
	WebSocket  *WebSocketHandler
}

// RegisterRoutes sets up all API routes
func RegisterRoutes(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, rateLimiter *middleware.RateLimiter, h Handlers) {
	// Docs
	e.GET("/swagger/*", echoSwagger.WrapHandler)
	e.GET("/openapi.json", ServeOpenAPI3Spec)

	// Live updates authenticate with a query token
	if h.WebSocket != nil {
		e.GET("/ws", h.WebSocket.HandleWS)
	}

	// API version 1, every route is authenticated and rate limited per workspace
	api := e.Group("/api/v1")
	api.Use(authMiddleware.Authenticate())
	api.Use(middleware.RateLimitMiddleware(rateLimiter))

	api.GET("/auth/me", h.Auth.Me)

	incomes := api.Group("/incomes")
	incomes.POST("", h.Income.CreateIncome)
	incomes.GET("", h.Income.GetIncomes)
	incomes.GET("/monthly", h.Income.GetMonthlyIncome)
	incomes.GET("/:id", h.Income.GetIncome)
	incomes.PATCH("/:id/active", h.Income.SetIncomeActive)
	incomes.DELETE("/:id", h.Income.DeleteIncome)

	expenses := api.Group("/expenses")
	expenses.POST("", h.Expense.CreateExpense)
	expenses.GET("", h.Expense.GetExpenses)
	expenses.GET("/:id", h.Expense.GetExpense)
	expenses.DELETE("/:id", h.Expense.DeleteExpense)

	budgets := api.Group("/budgets")
	budgets.POST("", h.Budget.CreateBudget)
	budgets.GET("", h.Budget.GetBudgets)
	budgets.GET("/consumption", h.Budget.GetConsumption)
	budgets.DELETE("/:id", h.Budget.DeleteBudget)

	recurring := api.Group("/recurring")
	recurring.POST("", h.Recurring.CreateRecurring)
	recurring.GET("", h.Recurring.GetRecurring)
	recurring.GET("/upcoming", h.Recurring.GetUpcoming)
	recurring.GET("/:id", h.Recurring.GetRecurringByID)
	recurring.PATCH("/:id/active", h.Recurring.SetRecurringActive)
	recurring.DELETE("/:id", h.Recurring.DeleteRecurring)
	recurring.POST("/:id/pay", h.Recurring.MarkPaid)
	recurring.POST("/:id/skip", h.Recurring.Skip)

	investments := api.Group("/investments")
	investments.POST("", h.Investment.CreateInvestment)
	investments.GET("", h.Investment.GetInvestments)
	investments.GET("/portfolio", h.Investment.GetPortfolio)
	investments.GET("/:id", h.Investment.GetPerformance)
	investments.PATCH("/:id/price", h.Investment.UpdatePrice)
	investments.DELETE("/:id", h.Investment.DeleteInvestment)

	goals := api.Group("/goals")
	goals.POST("", h.Goal.CreateGoal)
	goals.GET("", h.Goal.GetGoals)
	goals.GET("/progress", h.Goal.GetProgress)
	goals.GET("/:id/progress", h.Goal.GetGoalProgress)
	goals.PATCH("/:id/amount", h.Goal.UpdateGoalAmount)
	goals.DELETE("/:id", h.Goal.DeleteGoal)

	projections := api.Group("/projections")
	projections.POST("", h.Projection.Project)
	projections.POST("/compare", h.Projection.Compare)

	api.GET("/dashboard/summary", h.Dashboard.GetSummary)
}
