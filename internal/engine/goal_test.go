package engine

import (
	"testing"
	"time"

	"github.com/dafibh/fortuna/fortuna-planner/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func goal(target, current string, deadline *time.Time) *domain.Goal {
	return &domain.Goal{
		ID:            5,
		WorkspaceID:   1,
		Name:          "Emergency fund",
		TargetAmount:  d(target),
		CurrentAmount: d(current),
		TargetDate:    deadline,
	}
}

func TestGoalProgress(t *testing.T) {
	deadline := date(2027, time.April, 1)
	progress := GoalProgress(goal("1200", "600", &deadline), date(2026, time.October, 19))

	assertDecimal(t, "50", progress.Percentage)
	assertDecimal(t, "600", progress.Remaining)
	assert.False(t, progress.IsComplete)
	require.NotNil(t, progress.MonthsRemaining)
	assert.Equal(t, 6, *progress.MonthsRemaining)
	require.NotNil(t, progress.MonthlyContributionNeeded)
	assertDecimal(t, "100", *progress.MonthlyContributionNeeded)
}

func TestGoalProgress_NoDeadline(t *testing.T) {
	progress := GoalProgress(goal("1000", "250", nil), date(2026, time.October, 19))

	assertDecimal(t, "25", progress.Percentage)
	assert.Nil(t, progress.MonthsRemaining)
	assert.Nil(t, progress.MonthlyContributionNeeded)
}

func TestGoalProgress_DeadlineThisMonthNeedsEverything(t *testing.T) {
	deadline := date(2026, time.October, 31)
	progress := GoalProgress(goal("1000", "400", &deadline), date(2026, time.October, 19))

	require.NotNil(t, progress.MonthsRemaining)
	assert.Equal(t, 0, *progress.MonthsRemaining)
	assertDecimal(t, "600", *progress.MonthlyContributionNeeded)
}

func TestGoalProgress_PastDeadlineClampsToZero(t *testing.T) {
	deadline := date(2025, time.March, 1)
	progress := GoalProgress(goal("1000", "400", &deadline), date(2026, time.October, 19))

	assert.Equal(t, 0, *progress.MonthsRemaining)
	assertDecimal(t, "600", *progress.MonthlyContributionNeeded)
}

func TestGoalProgress_Overshoot(t *testing.T) {
	progress := GoalProgress(goal("1000", "1500", nil), date(2026, time.October, 19))

	assertDecimal(t, "150", progress.Percentage)
	assertDecimal(t, "-500", progress.Remaining)
	assert.True(t, progress.IsComplete)
}

func TestGoalProgress_ExactlyComplete(t *testing.T) {
	progress := GoalProgress(goal("800", "800", nil), date(2026, time.October, 19))

	assert.True(t, progress.IsComplete)
	assert.True(t, progress.Remaining.IsZero())
}

func TestGoalsProgress_KeepsOrder(t *testing.T) {
	first := goal("100", "10", nil)
	first.ID = 1
	second := goal("100", "90", nil)
	second.ID = 2

	result := GoalsProgress([]*domain.Goal{first, nil, second}, date(2026, time.October, 19))
	require.Len(t, result, 2)
	assert.Equal(t, int32(1), result[0].GoalID)
	assert.Equal(t, int32(2), result[1].GoalID)
}
