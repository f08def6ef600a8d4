package service

import (
	"testing"
	"time"

	"github.com/dafibh/fortuna/fortuna-planner/internal/domain"
	"github.com/dafibh/fortuna/fortuna-planner/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupExpenseService() (*ExpenseService, *testutil.MockExpenseRepository, *testutil.MockEventPublisher) {
	expenseRepo := testutil.NewMockExpenseRepository()
	publisher := testutil.NewMockEventPublisher()
	expenseService := NewExpenseService(expenseRepo)
	expenseService.SetEventPublisher(publisher)
	return expenseService, expenseRepo, publisher
}

func TestCreateExpense_Success(t *testing.T) {
	expenseService, _, publisher := setupExpenseService()
	note := "  weekly shop  "

	expense, err := expenseService.CreateExpense(1, CreateExpenseInput{
		Amount:      dec("42.50"),
		Category:    " Groceries ",
		Date:        time.Date(2026, 10, 3, 18, 30, 0, 0, time.UTC),
		Description: &note,
	})
	require.NoError(t, err)

	assert.Equal(t, "Groceries", expense.Category)
	assert.Equal(t, day(2026, 10, 3), expense.Date)
	assert.False(t, expense.IsRecurring)
	require.NotNil(t, expense.Description)
	assert.Equal(t, "weekly shop", *expense.Description)
	assert.Equal(t, []string{"expense.created"}, publisher.Types())
}

func TestCreateExpense_BlankDescriptionDropped(t *testing.T) {
	expenseService, _, _ := setupExpenseService()
	blank := "   "

	expense, err := expenseService.CreateExpense(1, CreateExpenseInput{Amount: dec("1"), Category: "Food", Date: day(2026, 1, 1), Description: &blank})
	require.NoError(t, err)
	assert.Nil(t, expense.Description)
}

func TestCreateExpense_Validation(t *testing.T) {
	expenseService, _, _ := setupExpenseService()

	_, err := expenseService.CreateExpense(1, CreateExpenseInput{Amount: dec("0"), Category: "Food", Date: day(2026, 1, 1)})
	assert.ErrorIs(t, err, domain.ErrInvalidAmount)

	_, err = expenseService.CreateExpense(1, CreateExpenseInput{Amount: dec("1"), Category: "", Date: day(2026, 1, 1)})
	assert.ErrorIs(t, err, domain.ErrCategoryRequired)

	_, err = expenseService.CreateExpense(1, CreateExpenseInput{Amount: dec("1"), Category: "Food"})
	assert.ErrorIs(t, err, domain.ErrInvalidDate)
}

func TestGetExpenses_FiltersByRange(t *testing.T) {
	expenseService, expenseRepo, _ := setupExpenseService()
	expenseRepo.AddExpense(&domain.Expense{ID: 1, WorkspaceID: 1, Amount: dec("10"), Category: "Food", Date: day(2026, 9, 30)})
	expenseRepo.AddExpense(&domain.Expense{ID: 2, WorkspaceID: 1, Amount: dec("20"), Category: "Food", Date: day(2026, 10, 1)})
	expenseRepo.AddExpense(&domain.Expense{ID: 3, WorkspaceID: 1, Amount: dec("30"), Category: "Fuel", Date: day(2026, 10, 31)})

	start, end := day(2026, 10, 1), day(2026, 10, 31)
	expenses, err := expenseService.GetExpenses(1, &domain.ExpenseFilters{StartDate: &start, EndDate: &end})
	require.NoError(t, err)
	require.Len(t, expenses, 2)
	assert.Equal(t, int32(3), expenses[0].ID)
	assert.Equal(t, int32(2), expenses[1].ID)
}

func TestGetExpenses_InvertedRange(t *testing.T) {
	expenseService, expenseRepo, _ := setupExpenseService()
	start, end := day(2026, 10, 31), day(2026, 10, 1)

	_, err := expenseService.GetExpenses(1, &domain.ExpenseFilters{StartDate: &start, EndDate: &end})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Nil(t, expenseRepo.LastFilters)
}

func TestDeleteExpense(t *testing.T) {
	expenseService, expenseRepo, publisher := setupExpenseService()
	expenseRepo.AddExpense(&domain.Expense{ID: 9, WorkspaceID: 1})

	assert.ErrorIs(t, expenseService.DeleteExpense(2, 9), domain.ErrExpenseNotFound)
	require.NoError(t, expenseService.DeleteExpense(1, 9))
	assert.Equal(t, []string{"expense.deleted"}, publisher.Types())
}
