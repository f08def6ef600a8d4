package engine

import (
	"fmt"

	"github.com/dafibh/fortuna/fortuna-planner/internal/domain"
	"github.com/shopspring/decimal"
)

// investmentPrecision bounds the decimal places carried between compounding steps so long
// horizons stay fast and results stay bit-identical across runs.
const investmentPrecision = 10

var monthsPerYearPercent = decimal.NewFromInt(1200)

// Project simulates a scenario month by month. Point 0 is today with no growth applied.
// Savings accumulate as uninvested cash; only the investment bucket compounds.
func Project(scenario domain.ProjectionScenario) ([]domain.ProjectionPoint, error) {
	if scenario.Months <= 0 {
		return nil, fmt.Errorf("%w: months must be positive, got %d", domain.ErrInvalidProjectionHorizon, scenario.Months)
	}

	monthlySavings := MonthlySavings(scenario)
	growth := decimal.NewFromInt(1).Add(scenario.ExpectedAnnualReturnPercent.Div(monthsPerYearPercent))

	points := make([]domain.ProjectionPoint, 0, scenario.Months+1)
	savings := decimal.Zero
	investments := scenario.StartingInvestmentValue
	points = append(points, domain.ProjectionPoint{
		MonthIndex:        0,
		CumulativeSavings: savings,
		InvestmentValue:   investments,
		NetWorth:          savings.Add(investments),
	})

	for i := 1; i <= scenario.Months; i++ {
		savings = savings.Add(monthlySavings)
		investments = investments.Mul(growth).Round(investmentPrecision)
		points = append(points, domain.ProjectionPoint{
			MonthIndex:        i,
			CumulativeSavings: savings,
			InvestmentValue:   investments,
			NetWorth:          savings.Add(investments),
		})
	}
	return points, nil
}

// MonthlySavings is the amount set aside every month under a scenario.
func MonthlySavings(scenario domain.ProjectionScenario) decimal.Decimal {
	return scenario.MonthlyNetIncome.Mul(scenario.SavingsRatePercent).Div(hundred).Add(scenario.ExtraMonthlySavings)
}

// SummarizeProjection reports the end state of a projection relative to its start.
func SummarizeProjection(scenario domain.ProjectionScenario, points []domain.ProjectionPoint) domain.ProjectionSummary {
	summary := domain.ProjectionSummary{
		FinalNetWorth:    decimal.Zero,
		TotalSaved:       decimal.Zero,
		InvestmentGrowth: decimal.Zero,
		MonthlySavings:   MonthlySavings(scenario),
		StartingNetWorth: decimal.Zero,
		NetWorthIncrease: decimal.Zero,
	}
	if len(points) == 0 {
		return summary
	}

	first, last := points[0], points[len(points)-1]
	summary.StartingNetWorth = first.NetWorth
	summary.FinalNetWorth = last.NetWorth
	summary.TotalSaved = last.CumulativeSavings.Sub(first.CumulativeSavings)
	summary.InvestmentGrowth = last.InvestmentValue.Sub(first.InvestmentValue)
	summary.NetWorthIncrease = last.NetWorth.Sub(first.NetWorth)
	return summary
}
