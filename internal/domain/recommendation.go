package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Severity grades a recommendation.
type Severity string

const (
	SeveritySuccess Severity = "success"
	SeverityWarning Severity = "warning"
	SeverityDanger  Severity = "danger"
)

// RecommendationCategory names the rule that produced a recommendation.
type RecommendationCategory string

const (
	RecommendationSavingsRate   RecommendationCategory = "savings_rate"
	RecommendationEmergencyFund RecommendationCategory = "emergency_fund"
	RecommendationGoal          RecommendationCategory = "goal"
	RecommendationOverdueBills  RecommendationCategory = "overdue_bills"
)

type Recommendation struct {
	Category RecommendationCategory `json:"category"`
	Severity Severity               `json:"severity"`
	Message  string                 `json:"message"`
}

// Snapshot is every record of one workspace, as read from the record store.
type Snapshot struct {
	Incomes     []*IncomeSource
	Expenses    []*Expense
	Budgets     []*Budget
	Recurring   []*RecurringPayment
	Investments []*Investment
	Goals       []*Goal
}

// FinancialFacts are the figures the recommendation rules run over.
type FinancialFacts struct {
	AsOf             time.Time       `json:"asOf"`
	MonthlyIncome    decimal.Decimal `json:"monthlyIncome"`
	MonthlyExpenses  decimal.Decimal `json:"monthlyExpenses"`
	MonthlyNet       decimal.Decimal `json:"monthlyNet"`
	RecurringMonthly decimal.Decimal `json:"recurringMonthly"`
	TotalInvestments decimal.Decimal `json:"totalInvestments"`
	OverdueBills     int             `json:"overdueBills"`
	Goals            []GoalProgress  `json:"goals"`
}

// DashboardSummary is the overview screen payload.
type DashboardSummary struct {
	Facts           FinancialFacts   `json:"facts"`
	SavingsRate     decimal.Decimal  `json:"savingsRate"`
	EmergencyMonths decimal.Decimal  `json:"emergencyMonths"`
	Portfolio       Portfolio        `json:"portfolio"`
	Upcoming        []Obligation     `json:"upcoming"`
	Recommendations []Recommendation `json:"recommendations"`
}
