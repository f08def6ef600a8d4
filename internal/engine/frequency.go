package engine

import (
	"fmt"

	"github.com/dafibh/fortuna/fortuna-planner/internal/domain"
	"github.com/shopspring/decimal"
)

// Weeks-per-month approximations (52/12 and 26/12). Every monthly figure in the engine goes
// through MonthlyEquivalent so two call sites never disagree on a user's monthly income.
var (
	weeklyMultiplier   = decimal.RequireFromString("4.33")
	biWeeklyMultiplier = decimal.RequireFromString("2.17")
	three              = decimal.NewFromInt(3)
	twelve             = decimal.NewFromInt(12)
	hundred            = decimal.NewFromInt(100)
)

// MonthlyEquivalent converts an amount at the given cadence into its monthly equivalent.
// One-time amounts have no monthly equivalent and fail with ErrUnsupportedFrequency.
func MonthlyEquivalent(amount decimal.Decimal, frequency domain.Frequency) (decimal.Decimal, error) {
	switch frequency {
	case domain.FrequencyWeekly:
		return amount.Mul(weeklyMultiplier), nil
	case domain.FrequencyBiWeekly:
		return amount.Mul(biWeeklyMultiplier), nil
	case domain.FrequencyMonthly:
		return amount, nil
	case domain.FrequencyQuarterly:
		return amount.Div(three), nil
	case domain.FrequencyAnnually:
		return amount.Div(twelve), nil
	case domain.FrequencyOneTime:
		return decimal.Zero, fmt.Errorf("%w: one-time amounts cannot be normalised to a monthly figure", domain.ErrUnsupportedFrequency)
	default:
		return decimal.Zero, fmt.Errorf("%w: unknown frequency %q", domain.ErrUnsupportedFrequency, frequency)
	}
}

// MonthlyIncome sums the monthly equivalent of every active income source.
// One-time sources are excluded; any other unknown cadence is an error.
func MonthlyIncome(sources []*domain.IncomeSource) (decimal.Decimal, error) {
	total := decimal.Zero
	for _, source := range sources {
		if source == nil || !source.IsActive || source.Frequency == domain.FrequencyOneTime {
			continue
		}
		monthly, err := MonthlyEquivalent(source.Amount, source.Frequency)
		if err != nil {
			return decimal.Zero, fmt.Errorf("income source %d: %w", source.ID, err)
		}
		total = total.Add(monthly)
	}
	return total, nil
}

// MonthlyRecurringTotal sums the monthly equivalent of every active recurring payment.
func MonthlyRecurringTotal(payments []*domain.RecurringPayment) (decimal.Decimal, error) {
	total := decimal.Zero
	for _, payment := range payments {
		if payment == nil || !payment.IsActive {
			continue
		}
		monthly, err := MonthlyEquivalent(payment.Amount, payment.Frequency)
		if err != nil {
			return decimal.Zero, fmt.Errorf("recurring payment %d: %w", payment.ID, err)
		}
		total = total.Add(monthly)
	}
	return total, nil
}
