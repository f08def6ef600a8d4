package service

import (
	"testing"

	"github.com/dafibh/fortuna/fortuna-planner/internal/domain"
	"github.com/dafibh/fortuna/fortuna-planner/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateGoal(t *testing.T) {
	goalService := NewGoalService(testutil.NewMockGoalRepository())
	publisher := testutil.NewMockEventPublisher()
	goalService.SetEventPublisher(publisher)
	deadline := day(2027, 4, 1)

	goal, err := goalService.CreateGoal(1, CreateGoalInput{
		Name:          "Holiday",
		TargetAmount:  dec("1200"),
		CurrentAmount: dec("600"),
		TargetDate:    &deadline,
	})
	require.NoError(t, err)
	assert.Equal(t, "Holiday", goal.Name)
	require.NotNil(t, goal.TargetDate)
	assert.Equal(t, deadline, *goal.TargetDate)
	assert.Equal(t, []string{"goal.created"}, publisher.Types())
}

func TestCreateGoal_Validation(t *testing.T) {
	goalService := NewGoalService(testutil.NewMockGoalRepository())

	_, err := goalService.CreateGoal(1, CreateGoalInput{Name: "Car", TargetAmount: dec("0")})
	assert.ErrorIs(t, err, domain.ErrInvalidAmount)

	_, err = goalService.CreateGoal(1, CreateGoalInput{Name: "Car", TargetAmount: dec("10"), CurrentAmount: dec("-1")})
	assert.ErrorIs(t, err, domain.ErrInvalidAmount)
}

func TestUpdateCurrentAmount_AllowsOvershoot(t *testing.T) {
	goalRepo := testutil.NewMockGoalRepository()
	goalRepo.AddGoal(&domain.Goal{ID: 1, WorkspaceID: 1, Name: "Bike", TargetAmount: dec("100"), CurrentAmount: dec("0")})
	goalService := NewGoalService(goalRepo)

	_, err := goalService.UpdateCurrentAmount(1, 1, dec("150"))
	require.NoError(t, err)

	progress, err := goalService.GetGoalProgress(1, 1, day(2026, 10, 19))
	require.NoError(t, err)
	assertDecimal(t, "150", progress.Percentage)
	assertDecimal(t, "-50", progress.Remaining)
	assert.True(t, progress.IsComplete)
	assert.Nil(t, progress.MonthsRemaining)
	assert.Nil(t, progress.MonthlyContributionNeeded)
}

func TestGetProgress(t *testing.T) {
	goalRepo := testutil.NewMockGoalRepository()
	deadline := day(2027, 4, 1)
	goalRepo.AddGoal(&domain.Goal{ID: 1, WorkspaceID: 1, Name: "Holiday", TargetAmount: dec("1200"), CurrentAmount: dec("600"), TargetDate: &deadline})
	goalRepo.AddGoal(&domain.Goal{ID: 2, WorkspaceID: 1, Name: "Rainy day", TargetAmount: dec("1000"), CurrentAmount: dec("250")})
	goalService := NewGoalService(goalRepo)

	progress, err := goalService.GetProgress(1, day(2026, 10, 19))
	require.NoError(t, err)
	require.Len(t, progress, 2)

	holiday := progress[0]
	assertDecimal(t, "50", holiday.Percentage)
	require.NotNil(t, holiday.MonthsRemaining)
	assert.Equal(t, 6, *holiday.MonthsRemaining)
	require.NotNil(t, holiday.MonthlyContributionNeeded)
	assertDecimal(t, "100", *holiday.MonthlyContributionNeeded)

	assertDecimal(t, "25", progress[1].Percentage)
	assert.Nil(t, progress[1].MonthsRemaining)
}

func TestDeleteGoal(t *testing.T) {
	goalRepo := testutil.NewMockGoalRepository()
	goalRepo.AddGoal(&domain.Goal{ID: 3, WorkspaceID: 1})
	goalService := NewGoalService(goalRepo)

	assert.ErrorIs(t, goalService.DeleteGoal(2, 3), domain.ErrGoalNotFound)
	require.NoError(t, goalService.DeleteGoal(1, 3))
}
