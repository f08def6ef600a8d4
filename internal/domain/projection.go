package domain

import "github.com/shopspring/decimal"

// MaxProjectionMonths caps the horizon accepted over the API.
const MaxProjectionMonths = 600

// ProjectionScenario is the input of a savings/investment projection.
type ProjectionScenario struct {
	Name                        string          `json:"name,omitempty"`
	SavingsRatePercent          decimal.Decimal `json:"savingsRatePercent"`
	ExpectedAnnualReturnPercent decimal.Decimal `json:"expectedAnnualReturnPercent"`
	Months                      int             `json:"months"`
	ExtraMonthlySavings         decimal.Decimal `json:"extraMonthlySavings"`
	StartingInvestmentValue     decimal.Decimal `json:"startingInvestmentValue"`
	MonthlyNetIncome            decimal.Decimal `json:"monthlyNetIncome"`
}

// ProjectionPoint is the projected position at the end of month MonthIndex (0 = today).
type ProjectionPoint struct {
	MonthIndex        int             `json:"monthIndex"`
	CumulativeSavings decimal.Decimal `json:"cumulativeSavings"`
	InvestmentValue   decimal.Decimal `json:"investmentValue"`
	NetWorth          decimal.Decimal `json:"netWorth"`
}

// ProjectionSummary condenses a projection into its end state.
type ProjectionSummary struct {
	FinalNetWorth    decimal.Decimal `json:"finalNetWorth"`
	TotalSaved       decimal.Decimal `json:"totalSaved"`
	InvestmentGrowth decimal.Decimal `json:"investmentGrowth"`
	MonthlySavings   decimal.Decimal `json:"monthlySavings"`
	StartingNetWorth decimal.Decimal `json:"startingNetWorth"`
	NetWorthIncrease decimal.Decimal `json:"netWorthIncrease"`
}

// ProjectionResult pairs a scenario with its projected points.
type ProjectionResult struct {
	Scenario ProjectionScenario `json:"scenario"`
	Points   []ProjectionPoint  `json:"points"`
	Summary  ProjectionSummary  `json:"summary"`
}
