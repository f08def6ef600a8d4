package engine

import (
	"fmt"
	"sort"
	"time"

	"github.com/dafibh/fortuna/fortuna-planner/internal/domain"
	"github.com/dafibh/fortuna/fortuna-planner/internal/util"
)

// Due-urgency thresholds in days.
const (
	dueSoonDays  = 3
	upcomingDays = 7
)

// AdvanceDueDate moves a due date forward by one cadence step. Monthly, quarterly and annual
// steps keep the day of month and clamp to the last day of shorter months.
func AdvanceDueDate(date time.Time, frequency domain.Frequency) (time.Time, error) {
	d := util.DateOnly(date)
	switch frequency {
	case domain.FrequencyWeekly:
		return d.AddDate(0, 0, 7), nil
	case domain.FrequencyBiWeekly:
		return d.AddDate(0, 0, 14), nil
	case domain.FrequencyMonthly:
		return util.AddMonthsClamped(d, 1), nil
	case domain.FrequencyQuarterly:
		return util.AddMonthsClamped(d, 3), nil
	case domain.FrequencyAnnually:
		return util.AddMonthsClamped(d, 12), nil
	default:
		return time.Time{}, fmt.Errorf("%w: %q cannot advance a due date", domain.ErrUnsupportedFrequency, frequency)
	}
}

// MarkPaid resolves the current occurrence as paid. It returns the expense that records the
// payment and a copy of the payment advanced to its next due date.
func MarkPaid(payment *domain.RecurringPayment) (*domain.PaymentTransition, error) {
	transition, err := advance(payment, domain.TransitionPaid)
	if err != nil {
		return nil, err
	}

	category := domain.DefaultCategory
	if payment.Category != nil && *payment.Category != "" {
		category = *payment.Category
	}
	description := payment.Name

	transition.Expense = &domain.Expense{
		WorkspaceID: payment.WorkspaceID,
		Amount:      payment.Amount,
		Category:    category,
		Date:        transition.PreviousDueDate,
		IsRecurring: true,
		Description: &description,
	}
	return transition, nil
}

// Skip resolves the current occurrence without paying it.
func Skip(payment *domain.RecurringPayment) (*domain.PaymentTransition, error) {
	return advance(payment, domain.TransitionSkipped)
}

func advance(payment *domain.RecurringPayment, action domain.TransitionAction) (*domain.PaymentTransition, error) {
	if payment == nil {
		return nil, fmt.Errorf("%w: unknown recurring payment", domain.ErrInvalidPaymentState)
	}
	if !payment.IsActive {
		return nil, fmt.Errorf("%w: recurring payment %d is inactive", domain.ErrInvalidPaymentState, payment.ID)
	}
	if !payment.Frequency.IsRecurring() {
		return nil, fmt.Errorf("%w: %q is not a recurring cadence", domain.ErrUnsupportedFrequency, payment.Frequency)
	}

	previous := util.DateOnly(payment.NextDueDate)
	next, err := AdvanceDueDate(previous, payment.Frequency)
	if err != nil {
		return nil, err
	}

	updated := *payment
	updated.NextDueDate = next

	return &domain.PaymentTransition{
		Action:          action,
		PreviousDueDate: previous,
		Payment:         &updated,
	}, nil
}

// DaysUntilDue returns nextDueDate - today in calendar days. Negative means overdue.
func DaysUntilDue(nextDueDate, today time.Time) int {
	return util.DaysBetween(today, nextDueDate)
}

// ClassifyDue grades how urgent an obligation is.
func ClassifyDue(nextDueDate, today time.Time) domain.DueStatus {
	days := DaysUntilDue(nextDueDate, today)
	switch {
	case days < 0:
		return domain.DueStatusOverdue
	case days == 0:
		return domain.DueStatusDueToday
	case days <= dueSoonDays:
		return domain.DueStatusDueSoon
	case days <= upcomingDays:
		return domain.DueStatusUpcoming
	default:
		return domain.DueStatusScheduled
	}
}

// UpcomingObligations annotates every active payment with its urgency, earliest first.
func UpcomingObligations(payments []*domain.RecurringPayment, today time.Time) []domain.Obligation {
	obligations := make([]domain.Obligation, 0, len(payments))
	for _, payment := range payments {
		if payment == nil || !payment.IsActive {
			continue
		}
		obligations = append(obligations, domain.Obligation{
			Payment:      payment,
			DaysUntilDue: DaysUntilDue(payment.NextDueDate, today),
			Status:       ClassifyDue(payment.NextDueDate, today),
		})
	}

	sort.SliceStable(obligations, func(i, j int) bool {
		a, b := obligations[i].Payment, obligations[j].Payment
		if !a.NextDueDate.Equal(b.NextDueDate) {
			return a.NextDueDate.Before(b.NextDueDate)
		}
		return a.ID < b.ID
	})
	return obligations
}
