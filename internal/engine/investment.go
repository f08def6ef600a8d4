package engine

import (
	"github.com/dafibh/fortuna/fortuna-planner/internal/domain"
	"github.com/shopspring/decimal"
)

// InvestmentPerformance computes cost basis, market value and gain for one position.
// A zero cost basis yields a gain percentage of 0.
func InvestmentPerformance(investment *domain.Investment) domain.InvestmentPerformance {
	costBasis := investment.Quantity.Mul(investment.PurchasePrice)
	currentValue := investment.Quantity.Mul(investment.CurrentPrice)
	gain := currentValue.Sub(costBasis)

	return domain.InvestmentPerformance{
		InvestmentID:   investment.ID,
		Name:           investment.Name,
		CurrentValue:   currentValue,
		CostBasis:      costBasis,
		Gain:           gain,
		GainPercentage: percentOf(gain, costBasis),
		IsPositive:     !gain.IsNegative(),
	}
}

// PortfolioPerformance aggregates every position. The total gain percentage is measured
// against TotalValue - TotalGain, and is 0 when that is zero.
func PortfolioPerformance(investments []*domain.Investment) domain.Portfolio {
	portfolio := domain.Portfolio{
		Holdings:            make([]domain.InvestmentPerformance, 0, len(investments)),
		TotalValue:          decimal.Zero,
		TotalCostBasis:      decimal.Zero,
		TotalGain:           decimal.Zero,
		TotalGainPercentage: decimal.Zero,
	}

	for _, investment := range investments {
		if investment == nil {
			continue
		}
		performance := InvestmentPerformance(investment)
		portfolio.Holdings = append(portfolio.Holdings, performance)
		portfolio.TotalValue = portfolio.TotalValue.Add(performance.CurrentValue)
		portfolio.TotalCostBasis = portfolio.TotalCostBasis.Add(performance.CostBasis)
		portfolio.TotalGain = portfolio.TotalGain.Add(performance.Gain)
	}

	portfolio.TotalGainPercentage = percentOf(portfolio.TotalGain, portfolio.TotalValue.Sub(portfolio.TotalGain))
	return portfolio
}

// percentOf returns part/whole*100, or 0 when whole is zero.
func percentOf(part, whole decimal.Decimal) decimal.Decimal {
	if whole.IsZero() {
		return decimal.Zero
	}
	return part.Mul(hundred).Div(whole)
}
