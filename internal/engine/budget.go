package engine

import (
	"fmt"
	"time"

	"github.com/dafibh/fortuna/fortuna-planner/internal/domain"
	"github.com/dafibh/fortuna/fortuna-planner/internal/util"
	"github.com/shopspring/decimal"
)

var nearLimitPercentage = decimal.NewFromInt(80)

// AggregateBudgets compares spending inside [periodStart, periodEnd] with every budget.
// When category is non-nil only that category's expenses and budgets are considered.
// Each budget is reported on its own, even if several share a category.
func AggregateBudgets(
	expenses []*domain.Expense,
	budgets []*domain.Budget,
	periodStart, periodEnd time.Time,
	category *string,
) ([]domain.BudgetConsumption, error) {
	start := util.DateOnly(periodStart)
	end := util.DateOnly(periodEnd)
	if end.Before(start) {
		return nil, fmt.Errorf("%w: period ends %s before it starts %s",
			domain.ErrInvalidInput, end.Format(util.DateLayout), start.Format(util.DateLayout))
	}

	spentByCategory := make(map[string]decimal.Decimal)
	for _, expense := range expenses {
		if expense == nil {
			continue
		}
		if category != nil && expense.Category != *category {
			continue
		}
		day := util.DateOnly(expense.Date)
		if day.Before(start) || day.After(end) {
			continue
		}
		spentByCategory[expense.Category] = spentByCategory[expense.Category].Add(expense.Amount)
	}

	result := make([]domain.BudgetConsumption, 0, len(budgets))
	for _, budget := range budgets {
		if budget == nil {
			continue
		}
		if category != nil && budget.Category != *category {
			continue
		}
		consumption, err := consume(budget, spentByCategory[budget.Category])
		if err != nil {
			return nil, err
		}
		result = append(result, consumption)
	}
	return result, nil
}

func consume(budget *domain.Budget, spent decimal.Decimal) (domain.BudgetConsumption, error) {
	if !budget.Amount.IsPositive() {
		return domain.BudgetConsumption{}, fmt.Errorf("%w: budget %d for %q has amount %s",
			domain.ErrInvalidBudgetAmount, budget.ID, budget.Category, budget.Amount.String())
	}

	raw := spent.Mul(hundred).Div(budget.Amount)
	percentage := decimal.Min(hundred, raw.Round(0))

	status := domain.BudgetStatusOnTrack
	switch {
	case percentage.GreaterThanOrEqual(hundred):
		status = domain.BudgetStatusOverBudget
	case percentage.GreaterThanOrEqual(nearLimitPercentage):
		status = domain.BudgetStatusNearLimit
	}

	return domain.BudgetConsumption{
		BudgetID:      budget.ID,
		Category:      budget.Category,
		BudgetAmount:  budget.Amount,
		Spent:         spent,
		Percentage:    percentage,
		RawPercentage: raw,
		Remaining:     budget.Amount.Sub(spent),
		Status:        status,
	}, nil
}

// PeriodBounds returns the inclusive calendar window of the given budget period that contains
// asOf. Weeks run Monday to Sunday; quarters start in January, April, July and October.
func PeriodBounds(period domain.BudgetPeriod, asOf time.Time) (time.Time, time.Time, error) {
	day := util.DateOnly(asOf)
	switch period {
	case domain.BudgetPeriodWeekly:
		offset := (int(day.Weekday()) + 6) % 7
		start := day.AddDate(0, 0, -offset)
		return start, start.AddDate(0, 0, 6), nil
	case domain.BudgetPeriodMonthly:
		start, end := util.MonthBounds(day.Year(), day.Month())
		return start, end, nil
	case domain.BudgetPeriodQuarterly:
		firstMonth := time.Month((int(day.Month())-1)/3*3 + 1)
		start := time.Date(day.Year(), firstMonth, 1, 0, 0, 0, 0, time.UTC)
		return start, start.AddDate(0, 3, -1), nil
	case domain.BudgetPeriodAnnually:
		start := time.Date(day.Year(), time.January, 1, 0, 0, 0, 0, time.UTC)
		return start, start.AddDate(1, 0, -1), nil
	default:
		return time.Time{}, time.Time{}, fmt.Errorf("%w: %q", domain.ErrInvalidPeriod, period)
	}
}
