package engine

import (
	"time"

	"github.com/dafibh/fortuna/fortuna-planner/internal/domain"
	"github.com/dafibh/fortuna/fortuna-planner/internal/util"
	"github.com/shopspring/decimal"
)

// GoalProgress evaluates a goal as of the given date. The percentage is not clamped, so an
// overshot goal reports more than 100 and a negative remaining amount.
func GoalProgress(goal *domain.Goal, asOf time.Time) domain.GoalProgress {
	percentage := decimal.Zero
	if goal.TargetAmount.IsPositive() {
		percentage = goal.CurrentAmount.Mul(hundred).Div(goal.TargetAmount)
	}
	remaining := goal.TargetAmount.Sub(goal.CurrentAmount)

	progress := domain.GoalProgress{
		GoalID:     goal.ID,
		Name:       goal.Name,
		Percentage: percentage,
		Remaining:  remaining,
		IsComplete: percentage.GreaterThanOrEqual(hundred),
	}

	if goal.TargetDate == nil {
		return progress
	}

	months := util.MonthsBetween(asOf, *goal.TargetDate)
	if months < 0 {
		months = 0
	}
	needed := remaining
	if months > 0 {
		needed = remaining.Div(decimal.NewFromInt(int64(months)))
	}
	progress.MonthsRemaining = &months
	progress.MonthlyContributionNeeded = &needed
	return progress
}

// GoalsProgress evaluates every goal in order.
func GoalsProgress(goals []*domain.Goal, asOf time.Time) []domain.GoalProgress {
	result := make([]domain.GoalProgress, 0, len(goals))
	for _, goal := range goals {
		if goal == nil {
			continue
		}
		result = append(result, GoalProgress(goal, asOf))
	}
	return result
}
