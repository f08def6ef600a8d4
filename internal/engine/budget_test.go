package engine

import (
	"testing"
	"time"

	"github.com/dafibh/fortuna/fortuna-planner/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func expense(category, amount string, day time.Time) *domain.Expense {
	return &domain.Expense{WorkspaceID: 1, Category: category, Amount: d(amount), Date: day}
}

func budget(id int32, category, amount string) *domain.Budget {
	return &domain.Budget{ID: id, WorkspaceID: 1, Category: category, Amount: d(amount), Period: domain.BudgetPeriodMonthly}
}

func TestAggregateBudgets_OverBudget(t *testing.T) {
	start, end := date(2026, time.October, 1), date(2026, time.October, 31)
	expenses := []*domain.Expense{
		expense("Food", "350", date(2026, time.October, 3)),
		expense("Food", "250", date(2026, time.October, 20)),
	}

	result, err := AggregateBudgets(expenses, []*domain.Budget{budget(1, "Food", "500")}, start, end, nil)
	require.NoError(t, err)
	require.Len(t, result, 1)

	c := result[0]
	assert.Equal(t, int32(1), c.BudgetID)
	assertDecimal(t, "600", c.Spent)
	assertDecimal(t, "100", c.Percentage)
	assertDecimal(t, "120", c.RawPercentage)
	assertDecimal(t, "-100", c.Remaining)
	assert.Equal(t, domain.BudgetStatusOverBudget, c.Status)
}

func TestAggregateBudgets_Status(t *testing.T) {
	start, end := date(2026, time.October, 1), date(2026, time.October, 31)
	tests := []struct {
		name       string
		spent      string
		percentage string
		status     domain.BudgetStatus
	}{
		{"nothing spent", "0", "0", domain.BudgetStatusOnTrack},
		{"rounds down below near limit", "397", "79", domain.BudgetStatusOnTrack},
		{"rounds up into near limit", "398", "80", domain.BudgetStatusNearLimit},
		{"exactly near limit", "400", "80", domain.BudgetStatusNearLimit},
		{"just below full", "497", "99", domain.BudgetStatusNearLimit},
		{"rounds up to full", "498", "100", domain.BudgetStatusOverBudget},
		{"exactly full", "500", "100", domain.BudgetStatusOverBudget},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			expenses := []*domain.Expense{expense("Food", tt.spent, date(2026, time.October, 10))}
			result, err := AggregateBudgets(expenses, []*domain.Budget{budget(1, "Food", "500")}, start, end, nil)
			require.NoError(t, err)
			require.Len(t, result, 1)
			assertDecimal(t, tt.percentage, result[0].Percentage)
			assert.Equal(t, tt.status, result[0].Status)
		})
	}
}

func TestAggregateBudgets_InclusiveDateBounds(t *testing.T) {
	start, end := date(2026, time.October, 1), date(2026, time.October, 31)
	expenses := []*domain.Expense{
		expense("Food", "10", date(2026, time.September, 30)),
		expense("Food", "20", date(2026, time.October, 1)),
		expense("Food", "30", time.Date(2026, time.October, 31, 18, 30, 0, 0, time.UTC)),
		expense("Food", "40", date(2026, time.November, 1)),
	}

	result, err := AggregateBudgets(expenses, []*domain.Budget{budget(1, "Food", "500")}, start, end, nil)
	require.NoError(t, err)
	assertDecimal(t, "50", result[0].Spent)
}

func TestAggregateBudgets_CategoryFilter(t *testing.T) {
	start, end := date(2026, time.October, 1), date(2026, time.October, 31)
	expenses := []*domain.Expense{
		expense("Food", "100", date(2026, time.October, 5)),
		expense("Transport", "60", date(2026, time.October, 5)),
	}
	budgets := []*domain.Budget{budget(1, "Food", "500"), budget(2, "Transport", "100")}

	result, err := AggregateBudgets(expenses, budgets, start, end, strPtr("Transport"))
	require.NoError(t, err)
	require.Len(t, result, 1)
	assert.Equal(t, "Transport", result[0].Category)
	assertDecimal(t, "60", result[0].Spent)
	assertDecimal(t, "60", result[0].Percentage)
}

func TestAggregateBudgets_DuplicateCategoriesReportedIndependently(t *testing.T) {
	start, end := date(2026, time.October, 1), date(2026, time.October, 31)
	expenses := []*domain.Expense{expense("Food", "300", date(2026, time.October, 5))}
	budgets := []*domain.Budget{budget(1, "Food", "500"), budget(2, "Food", "250")}

	result, err := AggregateBudgets(expenses, budgets, start, end, nil)
	require.NoError(t, err)
	require.Len(t, result, 2)

	assertDecimal(t, "60", result[0].Percentage)
	assert.Equal(t, domain.BudgetStatusOnTrack, result[0].Status)
	assertDecimal(t, "100", result[1].Percentage)
	assert.Equal(t, domain.BudgetStatusOverBudget, result[1].Status)
}

func TestAggregateBudgets_InvalidBudgetAmount(t *testing.T) {
	start, end := date(2026, time.October, 1), date(2026, time.October, 31)

	for _, amount := range []string{"0", "-10"} {
		_, err := AggregateBudgets(nil, []*domain.Budget{budget(3, "Fun", amount)}, start, end, nil)
		require.ErrorIs(t, err, domain.ErrInvalidBudgetAmount)
		assert.Contains(t, err.Error(), "budget 3")
	}
}

func TestAggregateBudgets_InvertedPeriod(t *testing.T) {
	_, err := AggregateBudgets(nil, nil, date(2026, time.October, 31), date(2026, time.October, 1), nil)
	require.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestAggregateBudgets_Idempotent(t *testing.T) {
	start, end := date(2026, time.October, 1), date(2026, time.October, 31)
	expenses := []*domain.Expense{expense("Food", "123.45", date(2026, time.October, 5))}
	budgets := []*domain.Budget{budget(1, "Food", "500")}

	first, err := AggregateBudgets(expenses, budgets, start, end, nil)
	require.NoError(t, err)
	second, err := AggregateBudgets(expenses, budgets, start, end, nil)
	require.NoError(t, err)

	require.Len(t, second, len(first))
	assert.True(t, first[0].Spent.Equal(second[0].Spent))
	assert.True(t, first[0].RawPercentage.Equal(second[0].RawPercentage))
	assert.Equal(t, first[0].Status, second[0].Status)
}

func TestPeriodBounds(t *testing.T) {
	asOf := date(2026, time.October, 21) // Wednesday
	tests := []struct {
		period domain.BudgetPeriod
		start  time.Time
		end    time.Time
	}{
		{domain.BudgetPeriodWeekly, date(2026, time.October, 19), date(2026, time.October, 25)},
		{domain.BudgetPeriodMonthly, date(2026, time.October, 1), date(2026, time.October, 31)},
		{domain.BudgetPeriodQuarterly, date(2026, time.October, 1), date(2026, time.December, 31)},
		{domain.BudgetPeriodAnnually, date(2026, time.January, 1), date(2026, time.December, 31)},
	}

	for _, tt := range tests {
		t.Run(string(tt.period), func(t *testing.T) {
			start, end, err := PeriodBounds(tt.period, asOf)
			require.NoError(t, err)
			assert.Equal(t, tt.start, start)
			assert.Equal(t, tt.end, end)
		})
	}
}

func TestPeriodBounds_WeekEdges(t *testing.T) {
	start, end, err := PeriodBounds(domain.BudgetPeriodWeekly, date(2026, time.October, 25)) // Sunday
	require.NoError(t, err)
	assert.Equal(t, date(2026, time.October, 19), start)
	assert.Equal(t, date(2026, time.October, 25), end)

	start, _, err = PeriodBounds(domain.BudgetPeriodWeekly, date(2026, time.October, 19)) // Monday
	require.NoError(t, err)
	assert.Equal(t, date(2026, time.October, 19), start)
}

func TestPeriodBounds_FebruaryQuarter(t *testing.T) {
	start, end, err := PeriodBounds(domain.BudgetPeriodQuarterly, date(2028, time.February, 29))
	require.NoError(t, err)
	assert.Equal(t, date(2028, time.January, 1), start)
	assert.Equal(t, date(2028, time.March, 31), end)
}

func TestPeriodBounds_Unknown(t *testing.T) {
	_, _, err := PeriodBounds(domain.BudgetPeriod("daily"), date(2026, time.October, 21))
	require.ErrorIs(t, err, domain.ErrInvalidPeriod)
}
