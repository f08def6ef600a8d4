package engine

import (
	"testing"

	"github.com/dafibh/fortuna/fortuna-planner/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scenario(months int) domain.ProjectionScenario {
	return domain.ProjectionScenario{
		Name:                        "baseline",
		SavingsRatePercent:          d("20"),
		ExpectedAnnualReturnPercent: d("0"),
		Months:                      months,
		ExtraMonthlySavings:         decimal.Zero,
		StartingInvestmentValue:     decimal.Zero,
		MonthlyNetIncome:            d("1000"),
	}
}

func TestProject_LinearSavings(t *testing.T) {
	points, err := Project(scenario(3))
	require.NoError(t, err)
	require.Len(t, points, 4)

	expected := []string{"0", "200", "400", "600"}
	for i, point := range points {
		assert.Equal(t, i, point.MonthIndex)
		assertDecimal(t, expected[i], point.CumulativeSavings, "month", i)
		assertDecimal(t, "0", point.InvestmentValue, "month", i)
		assertDecimal(t, expected[i], point.NetWorth, "month", i)
	}
}

func TestProject_CompoundsInvestments(t *testing.T) {
	s := scenario(2)
	s.SavingsRatePercent = decimal.Zero
	s.ExpectedAnnualReturnPercent = d("12")
	s.StartingInvestmentValue = d("1000")

	points, err := Project(s)
	require.NoError(t, err)
	require.Len(t, points, 3)

	assertDecimal(t, "1000", points[0].InvestmentValue)
	assertDecimal(t, "1010", points[1].InvestmentValue)
	assertDecimal(t, "1020.1", points[2].InvestmentValue)
	assertDecimal(t, "0", points[2].CumulativeSavings)
}

func TestProject_ExtraSavings(t *testing.T) {
	s := scenario(2)
	s.ExtraMonthlySavings = d("50")

	points, err := Project(s)
	require.NoError(t, err)
	assertDecimal(t, "500", points[2].CumulativeSavings)
}

func TestProject_InvalidHorizon(t *testing.T) {
	for _, months := range []int{0, -1} {
		_, err := Project(scenario(months))
		require.ErrorIs(t, err, domain.ErrInvalidProjectionHorizon)
	}
}

func TestProject_LongHorizonLength(t *testing.T) {
	s := scenario(domain.MaxProjectionMonths)
	s.ExpectedAnnualReturnPercent = d("7")
	s.StartingInvestmentValue = d("25000")

	points, err := Project(s)
	require.NoError(t, err)
	assert.Len(t, points, domain.MaxProjectionMonths+1)
	assert.True(t, points[len(points)-1].InvestmentValue.GreaterThan(points[0].InvestmentValue))
}

func TestProject_Deterministic(t *testing.T) {
	s := scenario(24)
	s.ExpectedAnnualReturnPercent = d("5.5")
	s.StartingInvestmentValue = d("12345.67")

	first, err := Project(s)
	require.NoError(t, err)
	second, err := Project(s)
	require.NoError(t, err)

	require.Len(t, second, len(first))
	for i := range first {
		assert.True(t, first[i].NetWorth.Equal(second[i].NetWorth), "month %d", i)
	}
}

func TestSummarizeProjection(t *testing.T) {
	s := scenario(2)
	s.ExpectedAnnualReturnPercent = d("12")
	s.StartingInvestmentValue = d("1000")

	points, err := Project(s)
	require.NoError(t, err)
	summary := SummarizeProjection(s, points)

	assertDecimal(t, "200", summary.MonthlySavings)
	assertDecimal(t, "400", summary.TotalSaved)
	assertDecimal(t, "20.1", summary.InvestmentGrowth)
	assertDecimal(t, "1000", summary.StartingNetWorth)
	assertDecimal(t, "1420.1", summary.FinalNetWorth)
	assertDecimal(t, "420.1", summary.NetWorthIncrease)
}

func TestSummarizeProjection_NoPoints(t *testing.T) {
	summary := SummarizeProjection(scenario(1), nil)
	assert.True(t, summary.FinalNetWorth.IsZero())
	assertDecimal(t, "200", summary.MonthlySavings)
}
