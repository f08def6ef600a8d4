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

func setupExpenseHandler() (*ExpenseHandler, *testutil.MockExpenseRepository) {
	repo := testutil.NewMockExpenseRepository()
	return NewExpenseHandler(service.NewExpenseService(repo)), repo
}

func TestCreateExpense_Success(t *testing.T) {
	handler, _ := setupExpenseHandler()
	c, rec := newRequest(http.MethodPost, "/api/v1/expenses",
		`{"amount":"42.5","category":"Food","date":"2026-10-03","description":"groceries"}`, testWorkspaceID)

	require.NoError(t, handler.CreateExpense(c))
	assert.Equal(t, http.StatusCreated, rec.Code)

	resp := decodeJSON[ExpenseResponse](t, rec)
	assert.Equal(t, "42.50", resp.Amount)
	assert.Equal(t, "Food", resp.Category)
	assert.Equal(t, "2026-10-03", resp.Date)
	assert.False(t, resp.IsRecurring)
	require.NotNil(t, resp.Description)
	assert.Equal(t, "groceries", *resp.Description)
}

func TestCreateExpense_MissingCategory(t *testing.T) {
	handler, repo := setupExpenseHandler()
	c, rec := newRequest(http.MethodPost, "/api/v1/expenses", `{"amount":"10","date":"2026-10-03"}`, testWorkspaceID)

	require.NoError(t, handler.CreateExpense(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	problem := decodeJSON[ProblemDetails](t, rec)
	require.Len(t, problem.Errors, 1)
	assert.Equal(t, "category", problem.Errors[0].Field)
	assert.Empty(t, repo.Expenses)
}

func TestGetExpenses_Filters(t *testing.T) {
	handler, repo := setupExpenseHandler()
	repo.AddExpense(&domain.Expense{ID: 1, WorkspaceID: testWorkspaceID, Amount: dec("10"), Category: "Food", Date: day("2026-09-30")})
	repo.AddExpense(&domain.Expense{ID: 2, WorkspaceID: testWorkspaceID, Amount: dec("20"), Category: "Food", Date: day("2026-10-01")})
	repo.AddExpense(&domain.Expense{ID: 3, WorkspaceID: testWorkspaceID, Amount: dec("30"), Category: "Rent", Date: day("2026-10-31")})
	repo.AddExpense(&domain.Expense{ID: 4, WorkspaceID: 2, Amount: dec("40"), Category: "Food", Date: day("2026-10-02")})

	c, rec := newRequest(http.MethodGet, "/api/v1/expenses?start=2026-10-01&end=2026-10-31&category=Food", "", testWorkspaceID)
	require.NoError(t, handler.GetExpenses(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	resp := decodeJSON[[]ExpenseResponse](t, rec)
	require.Len(t, resp, 1)
	assert.Equal(t, int32(2), resp[0].ID)

	require.NotNil(t, repo.LastFilters)
	require.NotNil(t, repo.LastFilters.Category)
	assert.Equal(t, "Food", *repo.LastFilters.Category)
}

func TestGetExpenses_InvalidRange(t *testing.T) {
	handler, _ := setupExpenseHandler()

	c, rec := newRequest(http.MethodGet, "/api/v1/expenses?start=2026-10-31&end=2026-10-01", "", testWorkspaceID)
	require.NoError(t, handler.GetExpenses(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	c, rec = newRequest(http.MethodGet, "/api/v1/expenses?start=yesterday", "", testWorkspaceID)
	require.NoError(t, handler.GetExpenses(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetAndDeleteExpense(t *testing.T) {
	handler, repo := setupExpenseHandler()
	repo.AddExpense(&domain.Expense{ID: 9, WorkspaceID: testWorkspaceID, Amount: dec("10"), Category: "Food", Date: day("2026-10-01")})

	c, rec := newRequest(http.MethodGet, "/api/v1/expenses/9", "", testWorkspaceID)
	withID(c, "9")
	require.NoError(t, handler.GetExpense(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	c, rec = newRequest(http.MethodDelete, "/api/v1/expenses/9", "", testWorkspaceID)
	withID(c, "9")
	require.NoError(t, handler.DeleteExpense(c))
	assert.Equal(t, http.StatusNoContent, rec.Code)

	c, rec = newRequest(http.MethodGet, "/api/v1/expenses/9", "", testWorkspaceID)
	withID(c, "9")
	require.NoError(t, handler.GetExpense(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
