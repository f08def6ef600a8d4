package handler

import (
	"net/http"
	"testing"

	"github.com/dafibh/fortuna/fortuna-planner/internal/domain"
	"github.com/dafibh/fortuna/fortuna-planner/internal/service"
	"github.com/dafibh/fortuna/fortuna-planner/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupBudgetHandler() (*BudgetHandler, *testutil.MockBudgetRepository, *testutil.MockExpenseRepository) {
	budgetRepo := testutil.NewMockBudgetRepository()
	expenseRepo := testutil.NewMockExpenseRepository()
	return NewBudgetHandler(service.NewBudgetService(budgetRepo, expenseRepo)), budgetRepo, expenseRepo
}

func TestCreateBudget_DefaultsToMonthly(t *testing.T) {
	handler, _, _ := setupBudgetHandler()
	c, rec := newRequest(http.MethodPost, "/api/v1/budgets", `{"category":"Food","amount":"500"}`, testWorkspaceID)

	require.NoError(t, handler.CreateBudget(c))
	assert.Equal(t, http.StatusCreated, rec.Code)

	resp := decodeJSON[BudgetResponse](t, rec)
	assert.Equal(t, "Food", resp.Category)
	assert.Equal(t, "500.00", resp.Amount)
	assert.Equal(t, "monthly", resp.Period)
}

func TestCreateBudget_Rejections(t *testing.T) {
	tests := []struct {
		name  string
		body  string
		field string
	}{
		{"zero amount", `{"category":"Food","amount":"0"}`, "amount"},
		{"negative amount", `{"category":"Food","amount":"-5"}`, "amount"},
		{"unknown period", `{"category":"Food","amount":"5","period":"daily"}`, "period"},
		{"missing category", `{"amount":"5"}`, "category"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler, repo, _ := setupBudgetHandler()
			c, rec := newRequest(http.MethodPost, "/api/v1/budgets", tt.body, testWorkspaceID)

			require.NoError(t, handler.CreateBudget(c))
			assert.Equal(t, http.StatusBadRequest, rec.Code)

			problem := decodeJSON[ProblemDetails](t, rec)
			require.Len(t, problem.Errors, 1)
			assert.Equal(t, tt.field, problem.Errors[0].Field)
			assert.Empty(t, repo.Budgets)
		})
	}
}

func seedConsumption(budgetRepo *testutil.MockBudgetRepository, expenseRepo *testutil.MockExpenseRepository) {
	budgetRepo.AddBudget(&domain.Budget{ID: 1, WorkspaceID: testWorkspaceID, Category: "Food", Amount: dec("500"), Period: domain.BudgetPeriodMonthly})
	budgetRepo.AddBudget(&domain.Budget{ID: 2, WorkspaceID: testWorkspaceID, Category: "Fun", Amount: dec("100"), Period: domain.BudgetPeriodMonthly})
	expenseRepo.AddExpense(&domain.Expense{ID: 1, WorkspaceID: testWorkspaceID, Amount: dec("400"), Category: "Food", Date: day("2026-10-05")})
	expenseRepo.AddExpense(&domain.Expense{ID: 2, WorkspaceID: testWorkspaceID, Amount: dec("150"), Category: "Fun", Date: day("2026-10-10")})
	expenseRepo.AddExpense(&domain.Expense{ID: 3, WorkspaceID: testWorkspaceID, Amount: dec("999"), Category: "Food", Date: day("2026-09-30")})
}

func TestGetConsumption_ExplicitRange(t *testing.T) {
	handler, budgetRepo, expenseRepo := setupBudgetHandler()
	seedConsumption(budgetRepo, expenseRepo)

	c, rec := newRequest(http.MethodGet, "/api/v1/budgets/consumption?start=2026-10-01&end=2026-10-31", "", testWorkspaceID)
	require.NoError(t, handler.GetConsumption(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	resp := decodeJSON[ConsumptionResponse](t, rec)
	assert.Equal(t, "2026-10-01", resp.PeriodStart)
	assert.Equal(t, "2026-10-31", resp.PeriodEnd)
	require.Len(t, resp.Budgets, 2)

	byCategory := map[string]BudgetConsumptionResponse{}
	for _, b := range resp.Budgets {
		byCategory[b.Category] = b
	}
	assert.Equal(t, "400.00", byCategory["Food"].Spent)
	assert.Equal(t, "80", byCategory["Food"].Percentage)
	assert.Equal(t, "near_limit", byCategory["Food"].Status)

	assert.Equal(t, "100", byCategory["Fun"].Percentage)
	assert.Equal(t, "150", byCategory["Fun"].RawPercentage)
	assert.Equal(t, "-50.00", byCategory["Fun"].Remaining)
	assert.Equal(t, "over_budget", byCategory["Fun"].Status)
}

func TestGetConsumption_PeriodAndCategory(t *testing.T) {
	handler, budgetRepo, expenseRepo := setupBudgetHandler()
	seedConsumption(budgetRepo, expenseRepo)

	c, rec := newRequest(http.MethodGet, "/api/v1/budgets/consumption?period=monthly&asOf=2026-10-19&category=Food", "", testWorkspaceID)
	require.NoError(t, handler.GetConsumption(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	resp := decodeJSON[ConsumptionResponse](t, rec)
	assert.Equal(t, "2026-10-01", resp.PeriodStart)
	assert.Equal(t, "2026-10-31", resp.PeriodEnd)
	require.Len(t, resp.Budgets, 1)
	assert.Equal(t, "Food", resp.Budgets[0].Category)
}

func TestGetConsumption_BadQueries(t *testing.T) {
	tests := []struct {
		name   string
		target string
	}{
		{"start without end", "/api/v1/budgets/consumption?start=2026-10-01"},
		{"end before start", "/api/v1/budgets/consumption?start=2026-10-31&end=2026-10-01"},
		{"unknown period", "/api/v1/budgets/consumption?period=daily"},
		{"malformed asOf", "/api/v1/budgets/consumption?asOf=10/19/2026"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler, _, _ := setupBudgetHandler()
			c, rec := newRequest(http.MethodGet, tt.target, "", testWorkspaceID)

			require.NoError(t, handler.GetConsumption(c))
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestDeleteBudget_NotFound(t *testing.T) {
	handler, _, _ := setupBudgetHandler()
	c, rec := newRequest(http.MethodDelete, "/api/v1/budgets/3", "", testWorkspaceID)
	withID(c, "3")

	require.NoError(t, handler.DeleteBudget(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
