package handler

import (
	"errors"
	"net/http"
	"testing"

	"github.com/dafibh/fortuna/fortuna-planner/internal/domain"
	"github.com/dafibh/fortuna/fortuna-planner/internal/service"
	"github.com/dafibh/fortuna/fortuna-planner/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupIncomeHandler() (*IncomeHandler, *testutil.MockIncomeRepository) {
	repo := testutil.NewMockIncomeRepository()
	return NewIncomeHandler(service.NewIncomeService(repo)), repo
}

func TestCreateIncome_Success(t *testing.T) {
	handler, repo := setupIncomeHandler()
	c, rec := newRequest(http.MethodPost, "/api/v1/incomes",
		`{"name":" Salary ","amount":"4000","frequency":"monthly","startDate":"2026-01-01"}`, testWorkspaceID)

	require.NoError(t, handler.CreateIncome(c))
	assert.Equal(t, http.StatusCreated, rec.Code)

	resp := decodeJSON[IncomeResponse](t, rec)
	assert.Equal(t, "Salary", resp.Name)
	assert.Equal(t, "4000.00", resp.Amount)
	assert.Equal(t, "monthly", resp.Frequency)
	assert.Equal(t, "2026-01-01", resp.StartDate)
	assert.True(t, resp.IsActive)
	assert.Len(t, repo.Incomes, 1)
}

func TestCreateIncome_Validation(t *testing.T) {
	tests := []struct {
		name  string
		body  string
		field string
	}{
		{"missing amount", `{"name":"Salary","frequency":"monthly","startDate":"2026-01-01"}`, "amount"},
		{"bad amount", `{"name":"Salary","amount":"abc","frequency":"monthly","startDate":"2026-01-01"}`, "amount"},
		{"bad date", `{"name":"Salary","amount":"10","frequency":"monthly","startDate":"01/01/2026"}`, "startDate"},
		{"unknown frequency", `{"name":"Salary","amount":"10","frequency":"fortnightly","startDate":"2026-01-01"}`, "frequency"},
		{"blank name", `{"name":"  ","amount":"10","frequency":"monthly","startDate":"2026-01-01"}`, "name"},
		{"zero amount", `{"name":"Salary","amount":"0","frequency":"monthly","startDate":"2026-01-01"}`, "amount"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler, repo := setupIncomeHandler()
			c, rec := newRequest(http.MethodPost, "/api/v1/incomes", tt.body, testWorkspaceID)

			require.NoError(t, handler.CreateIncome(c))
			assert.Equal(t, http.StatusBadRequest, rec.Code)

			problem := decodeJSON[ProblemDetails](t, rec)
			require.Len(t, problem.Errors, 1)
			assert.Equal(t, tt.field, problem.Errors[0].Field)
			assert.Empty(t, repo.Incomes)
		})
	}
}

func TestCreateIncome_NoWorkspace(t *testing.T) {
	handler, _ := setupIncomeHandler()
	c, rec := newRequest(http.MethodPost, "/api/v1/incomes", `{}`, 0)

	require.NoError(t, handler.CreateIncome(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestGetMonthlyIncome(t *testing.T) {
	handler, repo := setupIncomeHandler()
	repo.AddIncome(&domain.IncomeSource{ID: 1, WorkspaceID: testWorkspaceID, Name: "Salary", Amount: dec("3000"), Frequency: domain.FrequencyMonthly, IsActive: true})
	repo.AddIncome(&domain.IncomeSource{ID: 2, WorkspaceID: testWorkspaceID, Name: "Side", Amount: dec("100"), Frequency: domain.FrequencyWeekly, IsActive: true})
	repo.AddIncome(&domain.IncomeSource{ID: 3, WorkspaceID: testWorkspaceID, Name: "Bonus", Amount: dec("999"), Frequency: domain.FrequencyOneTime, IsActive: true})
	repo.AddIncome(&domain.IncomeSource{ID: 4, WorkspaceID: 2, Name: "Other", Amount: dec("500"), Frequency: domain.FrequencyMonthly, IsActive: true})

	c, rec := newRequest(http.MethodGet, "/api/v1/incomes/monthly", "", testWorkspaceID)
	require.NoError(t, handler.GetMonthlyIncome(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	resp := decodeJSON[MonthlyIncomeResponse](t, rec)
	assert.Equal(t, "3433.00", resp.MonthlyIncome)
}

func TestSetIncomeActive(t *testing.T) {
	handler, repo := setupIncomeHandler()
	repo.AddIncome(&domain.IncomeSource{ID: 5, WorkspaceID: testWorkspaceID, Name: "Salary", Amount: dec("10"), Frequency: domain.FrequencyMonthly, IsActive: true})

	c, rec := newRequest(http.MethodPatch, "/api/v1/incomes/5/active", `{"isActive":false}`, testWorkspaceID)
	withID(c, "5")
	require.NoError(t, handler.SetIncomeActive(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.False(t, repo.Incomes[5].IsActive)

	c, rec = newRequest(http.MethodPatch, "/api/v1/incomes/5/active", `{}`, testWorkspaceID)
	withID(c, "5")
	require.NoError(t, handler.SetIncomeActive(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetIncome_NotFoundAcrossWorkspaces(t *testing.T) {
	handler, repo := setupIncomeHandler()
	repo.AddIncome(&domain.IncomeSource{ID: 1, WorkspaceID: 2, Name: "Salary", Amount: dec("10"), Frequency: domain.FrequencyMonthly})

	c, rec := newRequest(http.MethodGet, "/api/v1/incomes/1", "", testWorkspaceID)
	withID(c, "1")
	require.NoError(t, handler.GetIncome(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDeleteIncome(t *testing.T) {
	handler, repo := setupIncomeHandler()
	repo.AddIncome(&domain.IncomeSource{ID: 1, WorkspaceID: testWorkspaceID, Name: "Salary", Amount: dec("10"), Frequency: domain.FrequencyMonthly})

	c, rec := newRequest(http.MethodDelete, "/api/v1/incomes/1", "", testWorkspaceID)
	withID(c, "1")
	require.NoError(t, handler.DeleteIncome(c))
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, repo.Incomes)

	c, rec = newRequest(http.MethodDelete, "/api/v1/incomes/abc", "", testWorkspaceID)
	withID(c, "abc")
	require.NoError(t, handler.DeleteIncome(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetIncomes_RepositoryFailure(t *testing.T) {
	handler, repo := setupIncomeHandler()
	repo.ListErr = errors.New("connection reset")

	c, rec := newRequest(http.MethodGet, "/api/v1/incomes", "", testWorkspaceID)
	require.NoError(t, handler.GetIncomes(c))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	problem := decodeJSON[ProblemDetails](t, rec)
	assert.Equal(t, "Failed to get income sources", problem.Detail)
}
