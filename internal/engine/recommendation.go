package engine

import (
	"fmt"
	"time"

	"github.com/dafibh/fortuna/fortuna-planner/internal/domain"
	"github.com/dafibh/fortuna/fortuna-planner/internal/util"
	"github.com/shopspring/decimal"
)

// Recommendation thresholds. Lower bounds are inclusive.
var (
	savingsRateWarning    = decimal.NewFromInt(10)
	savingsRateSuccess    = decimal.NewFromInt(20)
	emergencyMonthsDanger = decimal.NewFromInt(3)
	emergencyMonthsGood   = decimal.NewFromInt(6)
	goalShareOfNet        = decimal.RequireFromString("0.5")
)

// SavingsRate is monthly net as a percentage of monthly income, 0 without income.
func SavingsRate(facts domain.FinancialFacts) decimal.Decimal {
	return percentOf(facts.MonthlyNet, facts.MonthlyIncome)
}

// EmergencyFundMonths is how many months of expenses the investment total covers.
// It is 0 when there are no expenses to measure against.
func EmergencyFundMonths(facts domain.FinancialFacts) decimal.Decimal {
	if facts.MonthlyExpenses.IsZero() {
		return decimal.Zero
	}
	return facts.TotalInvestments.Div(facts.MonthlyExpenses)
}

// Recommend runs every rule over the facts and returns the resulting advice. It keeps no
// state between calls.
func Recommend(facts domain.FinancialFacts) []domain.Recommendation {
	recommendations := []domain.Recommendation{
		savingsRateRecommendation(facts),
		emergencyFundRecommendation(facts),
	}
	recommendations = append(recommendations, goalRecommendations(facts)...)

	if facts.OverdueBills > 0 {
		recommendations = append(recommendations, domain.Recommendation{
			Category: domain.RecommendationOverdueBills,
			Severity: domain.SeverityDanger,
			Message:  fmt.Sprintf("You have %d overdue bill(s). Pay or skip them to keep your schedule accurate.", facts.OverdueBills),
		})
	}
	return recommendations
}

func savingsRateRecommendation(facts domain.FinancialFacts) domain.Recommendation {
	rate := SavingsRate(facts)
	r := domain.Recommendation{Category: domain.RecommendationSavingsRate}
	switch {
	case rate.LessThan(savingsRateWarning):
		r.Severity = domain.SeverityDanger
		r.Message = fmt.Sprintf("You are saving %s%% of your income. Aim for at least 10%% by trimming discretionary spending.", rate.StringFixed(1))
	case rate.LessThan(savingsRateSuccess):
		r.Severity = domain.SeverityWarning
		r.Message = fmt.Sprintf("You are saving %s%% of your income. Pushing past 20%% builds a stronger cushion.", rate.StringFixed(1))
	default:
		r.Severity = domain.SeveritySuccess
		r.Message = fmt.Sprintf("Great job: you are saving %s%% of your income.", rate.StringFixed(1))
	}
	return r
}

func emergencyFundRecommendation(facts domain.FinancialFacts) domain.Recommendation {
	r := domain.Recommendation{Category: domain.RecommendationEmergencyFund}
	if facts.MonthlyExpenses.IsZero() {
		r.Severity = domain.SeverityWarning
		r.Message = "Not enough expense data this month to size your emergency fund."
		return r
	}

	months := EmergencyFundMonths(facts)
	switch {
	case months.LessThan(emergencyMonthsDanger):
		r.Severity = domain.SeverityDanger
		r.Message = fmt.Sprintf("Your reserves cover %s months of expenses. Build toward at least 3 months.", months.StringFixed(1))
	case months.LessThan(emergencyMonthsGood):
		r.Severity = domain.SeverityWarning
		r.Message = fmt.Sprintf("Your reserves cover %s months of expenses. 6 months is a safer target.", months.StringFixed(1))
	default:
		r.Severity = domain.SeveritySuccess
		r.Message = fmt.Sprintf("Your reserves cover %s months of expenses.", months.StringFixed(1))
	}
	return r
}

func goalRecommendations(facts domain.FinancialFacts) []domain.Recommendation {
	limit := facts.MonthlyNet.Mul(goalShareOfNet)

	var result []domain.Recommendation
	for _, goal := range facts.Goals {
		if goal.MonthlyContributionNeeded == nil || goal.IsComplete {
			continue
		}
		if goal.MonthlyContributionNeeded.GreaterThan(limit) {
			result = append(result, domain.Recommendation{
				Category: domain.RecommendationGoal,
				Severity: domain.SeverityWarning,
				Message: fmt.Sprintf("Goal %q needs %s per month, more than half of your monthly net. Consider extending the deadline.",
					goal.Name, goal.MonthlyContributionNeeded.StringFixed(2)),
			})
		}
	}
	return result
}

// BuildFacts derives the recommendation inputs from a record snapshot. Monthly expenses are
// the expenses dated in the calendar month containing today.
func BuildFacts(snapshot domain.Snapshot, today time.Time) (domain.FinancialFacts, error) {
	day := util.DateOnly(today)

	income, err := MonthlyIncome(snapshot.Incomes)
	if err != nil {
		return domain.FinancialFacts{}, err
	}
	recurring, err := MonthlyRecurringTotal(snapshot.Recurring)
	if err != nil {
		return domain.FinancialFacts{}, err
	}

	monthStart, monthEnd := util.MonthBounds(day.Year(), day.Month())
	expenses := decimal.Zero
	for _, expense := range snapshot.Expenses {
		if expense == nil {
			continue
		}
		date := util.DateOnly(expense.Date)
		if date.Before(monthStart) || date.After(monthEnd) {
			continue
		}
		expenses = expenses.Add(expense.Amount)
	}

	overdue := 0
	for _, obligation := range UpcomingObligations(snapshot.Recurring, day) {
		if obligation.Status == domain.DueStatusOverdue {
			overdue++
		}
	}

	return domain.FinancialFacts{
		AsOf:             day,
		MonthlyIncome:    income,
		MonthlyExpenses:  expenses,
		MonthlyNet:       income.Sub(expenses),
		RecurringMonthly: recurring,
		TotalInvestments: PortfolioPerformance(snapshot.Investments).TotalValue,
		OverdueBills:     overdue,
		Goals:            GoalsProgress(snapshot.Goals, day),
	}, nil
}
