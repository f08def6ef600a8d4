package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/dafibh/fortuna/fortuna-planner/internal/domain"
	"github.com/dafibh/fortuna/fortuna-planner/internal/engine"
	"github.com/dafibh/fortuna/fortuna-planner/internal/websocket"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

// RecurringService handles recurring payments and their paid/skipped lifecycle
type RecurringService struct {
	eventEmitter
	recurringRepo domain.RecurringRepository
}

// NewRecurringService creates a new RecurringService
func NewRecurringService(recurringRepo domain.RecurringRepository) *RecurringService {
	return &RecurringService{recurringRepo: recurringRepo}
}

// CreateRecurringInput contains the input for creating a recurring payment
type CreateRecurringInput struct {
	Name        string
	Amount      decimal.Decimal
	Frequency   domain.Frequency
	Category    *string
	NextDueDate time.Time
}

// CreateRecurring validates and stores a recurring payment. One-time cadences are rejected.
func (s *RecurringService) CreateRecurring(workspaceID int32, input CreateRecurringInput) (*domain.RecurringPayment, error) {
	name, err := validateName(input.Name)
	if err != nil {
		return nil, err
	}
	if err := requirePositive(input.Amount); err != nil {
		return nil, err
	}
	if !input.Frequency.IsRecurring() {
		return nil, domain.ErrInvalidFrequency
	}
	category, err := validateOptionalCategory(input.Category)
	if err != nil {
		return nil, err
	}
	nextDue, err := requireDate(input.NextDueDate)
	if err != nil {
		return nil, err
	}

	created, err := s.recurringRepo.Create(&domain.RecurringPayment{
		WorkspaceID: workspaceID,
		Name:        name,
		Amount:      input.Amount,
		Frequency:   input.Frequency,
		Category:    category,
		NextDueDate: nextDue,
		IsActive:    true,
	})
	if err != nil {
		return nil, err
	}

	s.publishEvent(workspaceID, websocket.EntityCreated(websocket.EntityTypeRecurring, created))
	return created, nil
}

// GetRecurring lists recurring payments; activeOnly nil returns all
func (s *RecurringService) GetRecurring(workspaceID int32, activeOnly *bool) ([]*domain.RecurringPayment, error) {
	return s.recurringRepo.ListByWorkspace(workspaceID, activeOnly)
}

// GetRecurringByID retrieves one recurring payment
func (s *RecurringService) GetRecurringByID(workspaceID int32, id int32) (*domain.RecurringPayment, error) {
	return s.recurringRepo.GetByID(workspaceID, id)
}

// SetRecurringActive pauses or resumes a recurring payment
func (s *RecurringService) SetRecurringActive(workspaceID int32, id int32, active bool) (*domain.RecurringPayment, error) {
	updated, err := s.recurringRepo.SetActive(workspaceID, id, active)
	if err != nil {
		return nil, err
	}
	s.publishEvent(workspaceID, websocket.EntityUpdated(websocket.EntityTypeRecurring, updated))
	return updated, nil
}

// DeleteRecurring removes a recurring payment
func (s *RecurringService) DeleteRecurring(workspaceID int32, id int32) error {
	if err := s.recurringRepo.Delete(workspaceID, id); err != nil {
		return err
	}
	s.publishEvent(workspaceID, websocket.EntityDeleted(websocket.EntityTypeRecurring, deletedPayload{ID: id}))
	return nil
}

// MarkPaid records the current occurrence as an expense and advances the due date
func (s *RecurringService) MarkPaid(workspaceID int32, id int32) (*domain.PaymentTransition, error) {
	return s.resolve(workspaceID, id, engine.MarkPaid)
}

// Skip advances the due date without recording an expense
func (s *RecurringService) Skip(workspaceID int32, id int32) (*domain.PaymentTransition, error) {
	return s.resolve(workspaceID, id, engine.Skip)
}

func (s *RecurringService) resolve(
	workspaceID int32,
	id int32,
	transition func(*domain.RecurringPayment) (*domain.PaymentTransition, error),
) (*domain.PaymentTransition, error) {
	payment, err := s.recurringRepo.GetByID(workspaceID, id)
	if err != nil {
		if errors.Is(err, domain.ErrRecurringNotFound) {
			return nil, fmt.Errorf("%w: %w", domain.ErrInvalidPaymentState, err)
		}
		return nil, err
	}

	next, err := transition(payment)
	if err != nil {
		return nil, err
	}

	saved, err := s.recurringRepo.ApplyTransition(next)
	if err != nil {
		return nil, err
	}

	log.Info().
		Int32("workspace_id", workspaceID).
		Int32("recurring_id", id).
		Str("action", string(saved.Action)).
		Str("previous_due_date", saved.PreviousDueDate.Format("2006-01-02")).
		Str("next_due_date", saved.Payment.NextDueDate.Format("2006-01-02")).
		Msg("Recurring payment resolved")

	if saved.Action == domain.TransitionPaid {
		s.publishEvent(workspaceID, websocket.RecurringPaid(saved))
		if saved.Expense != nil {
			s.publishEvent(workspaceID, websocket.ExpenseCreated(saved.Expense))
		}
	} else {
		s.publishEvent(workspaceID, websocket.RecurringSkipped(saved))
	}
	return saved, nil
}

// GetUpcoming lists active obligations by urgency. A non-nil withinDays drops obligations due
// later than that many days from today; overdue ones are always kept.
func (s *RecurringService) GetUpcoming(workspaceID int32, today time.Time, withinDays *int) ([]domain.Obligation, error) {
	active := true
	payments, err := s.recurringRepo.ListByWorkspace(workspaceID, &active)
	if err != nil {
		return nil, err
	}

	obligations := engine.UpcomingObligations(payments, today)
	if withinDays == nil {
		return obligations, nil
	}

	filtered := make([]domain.Obligation, 0, len(obligations))
	for _, o := range obligations {
		if o.DaysUntilDue <= *withinDays {
			filtered = append(filtered, o)
		}
	}
	return filtered, nil
}
