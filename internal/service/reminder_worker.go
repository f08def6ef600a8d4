package service

import (
	"context"
	"sync"
	"time"

	"github.com/dafibh/fortuna/fortuna-planner/internal/domain"
	"github.com/dafibh/fortuna/fortuna-planner/internal/websocket"
	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"
)

// ReminderWorker periodically scans every workspace for bills falling due and announces them
// as recurring.due events
type ReminderWorker struct {
	recurringService *RecurringService
	workspaceRepo    domain.WorkspaceRepository
	publisher        websocket.EventPublisher
	logger           zerolog.Logger
	schedule         string
	lookaheadDays    int
	now              func() time.Time
	cron             *cron.Cron
	mu               sync.Mutex
	running          bool
}

// ReminderWorkerConfig holds configuration for the reminder worker
type ReminderWorkerConfig struct {
	Schedule      string // Standard 5-field cron expression, evaluated in UTC
	LookaheadDays int    // Bills due within this many days are announced
}

// DefaultReminderWorkerConfig returns sensible defaults
func DefaultReminderWorkerConfig() ReminderWorkerConfig {
	return ReminderWorkerConfig{
		Schedule:      "0 7 * * *", // Every day at 07:00 UTC
		LookaheadDays: 3,
	}
}

// ReminderScanResult summarises one scan
type ReminderScanResult struct {
	Workspaces int
	Reminders  int
	Errors     int
}

// NewReminderWorker creates a new reminder worker
func NewReminderWorker(
	recurringService *RecurringService,
	workspaceRepo domain.WorkspaceRepository,
	publisher websocket.EventPublisher,
	logger zerolog.Logger,
	config ReminderWorkerConfig,
) *ReminderWorker {
	defaults := DefaultReminderWorkerConfig()
	if config.Schedule == "" {
		config.Schedule = defaults.Schedule
	}
	if config.LookaheadDays < 0 {
		config.LookaheadDays = defaults.LookaheadDays
	}

	return &ReminderWorker{
		recurringService: recurringService,
		workspaceRepo:    workspaceRepo,
		publisher:        publisher,
		logger:           logger.With().Str("component", "reminder_worker").Logger(),
		schedule:         config.Schedule,
		lookaheadDays:    config.LookaheadDays,
		now:              time.Now,
	}
}

// Start registers the scan with the cron scheduler. It fails only on an invalid schedule.
func (w *ReminderWorker) Start(ctx context.Context) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.running {
		return nil
	}

	scheduler := cron.New(cron.WithLocation(time.UTC))
	if _, err := scheduler.AddFunc(w.schedule, func() { w.RunOnce(ctx) }); err != nil {
		return err
	}
	scheduler.Start()

	w.cron = scheduler
	w.running = true
	w.logger.Info().
		Str("schedule", w.schedule).
		Int("lookahead_days", w.lookaheadDays).
		Msg("Starting reminder worker")
	return nil
}

// Stop halts the scheduler and waits for a scan in progress to finish
func (w *ReminderWorker) Stop() {
	w.mu.Lock()
	if !w.running {
		w.mu.Unlock()
		return
	}
	scheduler := w.cron
	w.running = false
	w.cron = nil
	w.mu.Unlock()

	w.logger.Info().Msg("Stopping reminder worker")
	<-scheduler.Stop().Done()
	w.logger.Info().Msg("Reminder worker stopped")
}

// IsRunning returns whether the worker is currently scheduled
func (w *ReminderWorker) IsRunning() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.running
}

// RunOnce scans every workspace immediately
func (w *ReminderWorker) RunOnce(ctx context.Context) ReminderScanResult {
	startTime := time.Now()
	today := w.now().UTC()
	result := ReminderScanResult{}

	workspaceIDs, err := w.workspaceRepo.ListIDs()
	if err != nil {
		w.logger.Error().Err(err).Msg("Failed to list workspaces for reminder scan")
		result.Errors++
		return result
	}

	for _, workspaceID := range workspaceIDs {
		if ctx.Err() != nil {
			w.logger.Info().Msg("Context cancelled, stopping reminder scan")
			break
		}

		reminders, err := w.remindWorkspace(workspaceID, today)
		if err != nil {
			w.logger.Error().
				Err(err).
				Int32("workspace_id", workspaceID).
				Msg("Failed to scan workspace for due bills")
			result.Errors++
			continue
		}
		result.Workspaces++
		result.Reminders += reminders
	}

	w.logger.Info().
		Int("workspaces", result.Workspaces).
		Int("reminders", result.Reminders).
		Int("errors", result.Errors).
		Dur("elapsed", time.Since(startTime)).
		Msg("Completed reminder scan")
	return result
}

// remindWorkspace publishes one event per obligation that is overdue or due within the lookahead
func (w *ReminderWorker) remindWorkspace(workspaceID int32, today time.Time) (int, error) {
	obligations, err := w.recurringService.GetUpcoming(workspaceID, today, &w.lookaheadDays)
	if err != nil {
		return 0, err
	}
	if w.publisher == nil {
		return 0, nil
	}

	for _, obligation := range obligations {
		w.publisher.Publish(workspaceID, websocket.RecurringDue(obligation))
	}
	if len(obligations) > 0 {
		w.logger.Debug().
			Int32("workspace_id", workspaceID).
			Int("due", len(obligations)).
			Msg("Published due reminders")
	}
	return len(obligations), nil
}
