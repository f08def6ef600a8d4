package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/dafibh/fortuna/fortuna-planner/internal/domain"
	"github.com/dafibh/fortuna/fortuna-planner/internal/testutil"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupReminderWorker(config ReminderWorkerConfig) (*ReminderWorker, *testutil.MockWorkspaceRepository, *testutil.MockRecurringRepository, *testutil.MockEventPublisher) {
	workspaceRepo := testutil.NewMockWorkspaceRepository()
	recurringRepo := testutil.NewMockRecurringRepository()
	publisher := testutil.NewMockEventPublisher()

	worker := NewReminderWorker(NewRecurringService(recurringRepo), workspaceRepo, publisher, zerolog.Nop(), config)
	worker.now = func() time.Time { return time.Date(2026, 10, 19, 7, 0, 0, 0, time.UTC) }
	return worker, workspaceRepo, recurringRepo, publisher
}

func TestReminderWorker_DefaultConfig(t *testing.T) {
	config := DefaultReminderWorkerConfig()

	assert.Equal(t, "0 7 * * *", config.Schedule)
	assert.Equal(t, 3, config.LookaheadDays)
}

func TestReminderWorker_AppliesDefaults(t *testing.T) {
	worker, _, _, _ := setupReminderWorker(ReminderWorkerConfig{LookaheadDays: -1})

	assert.Equal(t, "0 7 * * *", worker.schedule)
	assert.Equal(t, 3, worker.lookaheadDays)
	assert.False(t, worker.IsRunning())
}

func TestReminderWorker_RunOnce(t *testing.T) {
	worker, workspaceRepo, recurringRepo, publisher := setupReminderWorker(ReminderWorkerConfig{LookaheadDays: 3})
	workspaceRepo.AddWorkspace(&domain.Workspace{ID: 1, Auth0ID: "auth0|a"})
	workspaceRepo.AddWorkspace(&domain.Workspace{ID: 2, Auth0ID: "auth0|b"})

	recurringRepo.AddPayment(&domain.RecurringPayment{ID: 1, WorkspaceID: 1, Frequency: domain.FrequencyMonthly, NextDueDate: day(2026, 10, 10), IsActive: true})
	recurringRepo.AddPayment(&domain.RecurringPayment{ID: 2, WorkspaceID: 1, Frequency: domain.FrequencyMonthly, NextDueDate: day(2026, 10, 22), IsActive: true})
	recurringRepo.AddPayment(&domain.RecurringPayment{ID: 3, WorkspaceID: 1, Frequency: domain.FrequencyMonthly, NextDueDate: day(2026, 10, 23), IsActive: true})
	recurringRepo.AddPayment(&domain.RecurringPayment{ID: 4, WorkspaceID: 2, Frequency: domain.FrequencyWeekly, NextDueDate: day(2026, 10, 19), IsActive: true})
	recurringRepo.AddPayment(&domain.RecurringPayment{ID: 5, WorkspaceID: 2, Frequency: domain.FrequencyWeekly, NextDueDate: day(2026, 10, 19), IsActive: false})

	result := worker.RunOnce(context.Background())

	assert.Equal(t, ReminderScanResult{Workspaces: 2, Reminders: 3, Errors: 0}, result)
	assert.Equal(t, []string{"recurring.due", "recurring.due", "recurring.due"}, publisher.Types())

	require.Len(t, publisher.Events, 3)
	assert.Equal(t, int32(1), publisher.Events[0].WorkspaceID)
	first, ok := publisher.Events[0].Event.Payload.(domain.Obligation)
	require.True(t, ok)
	assert.Equal(t, domain.DueStatusOverdue, first.Status)
	assert.Equal(t, int32(2), publisher.Events[2].WorkspaceID)
}

func TestReminderWorker_ListWorkspacesFails(t *testing.T) {
	worker, workspaceRepo, _, publisher := setupReminderWorker(DefaultReminderWorkerConfig())
	workspaceRepo.ListIDsErr = errors.New("db down")

	result := worker.RunOnce(context.Background())
	assert.Equal(t, 1, result.Errors)
	assert.Empty(t, publisher.Events)
}

func TestReminderWorker_WorkspaceErrorDoesNotStopScan(t *testing.T) {
	worker, workspaceRepo, recurringRepo, _ := setupReminderWorker(DefaultReminderWorkerConfig())
	workspaceRepo.AddWorkspace(&domain.Workspace{ID: 1, Auth0ID: "auth0|a"})
	workspaceRepo.AddWorkspace(&domain.Workspace{ID: 2, Auth0ID: "auth0|b"})
	recurringRepo.ListErr = errors.New("recurring unavailable")

	result := worker.RunOnce(context.Background())
	assert.Equal(t, ReminderScanResult{Workspaces: 0, Reminders: 0, Errors: 2}, result)
}

func TestReminderWorker_CancelledContext(t *testing.T) {
	worker, workspaceRepo, _, _ := setupReminderWorker(DefaultReminderWorkerConfig())
	workspaceRepo.AddWorkspace(&domain.Workspace{ID: 1, Auth0ID: "auth0|a"})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	result := worker.RunOnce(ctx)
	assert.Equal(t, 0, result.Workspaces)
}

func TestReminderWorker_StartStop(t *testing.T) {
	worker, _, _, _ := setupReminderWorker(DefaultReminderWorkerConfig())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	require.NoError(t, worker.Start(ctx))
	assert.True(t, worker.IsRunning())

	// Starting twice is a no-op
	require.NoError(t, worker.Start(ctx))

	worker.Stop()
	assert.False(t, worker.IsRunning())
}

func TestReminderWorker_StopWithoutStart(t *testing.T) {
	worker, _, _, _ := setupReminderWorker(DefaultReminderWorkerConfig())

	worker.Stop()
	assert.False(t, worker.IsRunning())
}

func TestReminderWorker_InvalidSchedule(t *testing.T) {
	worker, _, _, _ := setupReminderWorker(ReminderWorkerConfig{Schedule: "every tuesday"})

	err := worker.Start(context.Background())
	assert.Error(t, err)
	assert.False(t, worker.IsRunning())
}
