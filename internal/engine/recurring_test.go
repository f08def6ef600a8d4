package engine

import (
	"testing"
	"time"

	"github.com/dafibh/fortuna/fortuna-planner/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPayment(frequency domain.Frequency, due time.Time) *domain.RecurringPayment {
	return &domain.RecurringPayment{
		ID:          10,
		WorkspaceID: 1,
		Name:        "Rent",
		Amount:      d("1500"),
		Frequency:   frequency,
		NextDueDate: due,
		IsActive:    true,
	}
}

func TestAdvanceDueDate(t *testing.T) {
	tests := []struct {
		name      string
		start     time.Time
		frequency domain.Frequency
		expected  time.Time
	}{
		{"weekly", date(2026, time.October, 19), domain.FrequencyWeekly, date(2026, time.October, 26)},
		{"weekly across month", date(2026, time.October, 29), domain.FrequencyWeekly, date(2026, time.November, 5)},
		{"bi-weekly", date(2026, time.December, 25), domain.FrequencyBiWeekly, date(2027, time.January, 8)},
		{"monthly", date(2026, time.March, 15), domain.FrequencyMonthly, date(2026, time.April, 15)},
		{"monthly clamps Jan 31", date(2026, time.January, 31), domain.FrequencyMonthly, date(2026, time.February, 28)},
		{"monthly clamps leap year", date(2028, time.January, 31), domain.FrequencyMonthly, date(2028, time.February, 29)},
		{"quarterly", date(2026, time.November, 30), domain.FrequencyQuarterly, date(2027, time.February, 28)},
		{"annually", date(2026, time.June, 1), domain.FrequencyAnnually, date(2027, time.June, 1)},
		{"annually from leap day", date(2028, time.February, 29), domain.FrequencyAnnually, date(2029, time.February, 28)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := AdvanceDueDate(tt.start, tt.frequency)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestAdvanceDueDate_OneTimeRejected(t *testing.T) {
	_, err := AdvanceDueDate(date(2026, time.January, 1), domain.FrequencyOneTime)
	require.ErrorIs(t, err, domain.ErrUnsupportedFrequency)
}

func TestAdvanceDueDate_MonthlyNoDriftOnDay15(t *testing.T) {
	for month := time.January; month <= time.December; month++ {
		current := date(2026, month, 15)
		for i := 0; i < 36; i++ {
			next, err := AdvanceDueDate(current, domain.FrequencyMonthly)
			require.NoError(t, err)
			require.Equal(t, 15, next.Day(), "drifted after %d steps from %s", i+1, month)
			current = next
		}
	}
}

func TestMarkPaid(t *testing.T) {
	payment := newPayment(domain.FrequencyMonthly, date(2026, time.October, 1))
	payment.Category = strPtr("Housing")

	transition, err := MarkPaid(payment)
	require.NoError(t, err)

	assert.Equal(t, domain.TransitionPaid, transition.Action)
	assert.Equal(t, date(2026, time.October, 1), transition.PreviousDueDate)
	assert.Equal(t, date(2026, time.November, 1), transition.Payment.NextDueDate)

	require.NotNil(t, transition.Expense)
	assertDecimal(t, "1500", transition.Expense.Amount)
	assert.Equal(t, "Housing", transition.Expense.Category)
	assert.Equal(t, date(2026, time.October, 1), transition.Expense.Date)
	assert.True(t, transition.Expense.IsRecurring)
	assert.Equal(t, int32(1), transition.Expense.WorkspaceID)
	require.NotNil(t, transition.Expense.Description)
	assert.Equal(t, "Rent", *transition.Expense.Description)
}

func TestMarkPaid_DefaultsCategoryToOther(t *testing.T) {
	payment := newPayment(domain.FrequencyWeekly, date(2026, time.October, 1))

	transition, err := MarkPaid(payment)
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultCategory, transition.Expense.Category)
}

func TestMarkPaid_DoesNotMutateInput(t *testing.T) {
	due := date(2026, time.October, 1)
	payment := newPayment(domain.FrequencyMonthly, due)

	transition, err := MarkPaid(payment)
	require.NoError(t, err)

	assert.Equal(t, due, payment.NextDueDate)
	assert.NotSame(t, payment, transition.Payment)
}

func TestSkip(t *testing.T) {
	payment := newPayment(domain.FrequencyBiWeekly, date(2026, time.October, 1))

	transition, err := Skip(payment)
	require.NoError(t, err)

	assert.Equal(t, domain.TransitionSkipped, transition.Action)
	assert.Nil(t, transition.Expense)
	assert.Equal(t, date(2026, time.October, 15), transition.Payment.NextDueDate)
}

func TestMarkPaidThenSkip_AdvancesTwoSteps(t *testing.T) {
	frequencies := []domain.Frequency{
		domain.FrequencyWeekly,
		domain.FrequencyBiWeekly,
		domain.FrequencyMonthly,
		domain.FrequencyQuarterly,
		domain.FrequencyAnnually,
	}

	for _, frequency := range frequencies {
		t.Run(string(frequency), func(t *testing.T) {
			original := date(2026, time.January, 31)
			paid, err := MarkPaid(newPayment(frequency, original))
			require.NoError(t, err)
			skipped, err := Skip(paid.Payment)
			require.NoError(t, err)

			step1, _ := AdvanceDueDate(original, frequency)
			step2, _ := AdvanceDueDate(step1, frequency)
			assert.Equal(t, step2, skipped.Payment.NextDueDate)
		})
	}
}

func TestTransitions_InvalidPaymentState(t *testing.T) {
	inactive := newPayment(domain.FrequencyMonthly, date(2026, time.October, 1))
	inactive.IsActive = false

	_, err := MarkPaid(inactive)
	assert.ErrorIs(t, err, domain.ErrInvalidPaymentState)
	_, err = Skip(inactive)
	assert.ErrorIs(t, err, domain.ErrInvalidPaymentState)
	_, err = MarkPaid(nil)
	assert.ErrorIs(t, err, domain.ErrInvalidPaymentState)
	_, err = Skip(nil)
	assert.ErrorIs(t, err, domain.ErrInvalidPaymentState)
}

func TestTransitions_OneTimeCadenceRejected(t *testing.T) {
	payment := newPayment(domain.FrequencyOneTime, date(2026, time.October, 1))

	_, err := MarkPaid(payment)
	assert.ErrorIs(t, err, domain.ErrUnsupportedFrequency)
}

func TestClassifyDue(t *testing.T) {
	today := date(2026, time.October, 19)
	tests := []struct {
		due      time.Time
		expected domain.DueStatus
	}{
		{date(2026, time.October, 18), domain.DueStatusOverdue},
		{date(2026, time.September, 1), domain.DueStatusOverdue},
		{date(2026, time.October, 19), domain.DueStatusDueToday},
		{date(2026, time.October, 20), domain.DueStatusDueSoon},
		{date(2026, time.October, 22), domain.DueStatusDueSoon},
		{date(2026, time.October, 23), domain.DueStatusUpcoming},
		{date(2026, time.October, 26), domain.DueStatusUpcoming},
		{date(2026, time.October, 27), domain.DueStatusScheduled},
	}

	for _, tt := range tests {
		t.Run(tt.due.Format("2006-01-02"), func(t *testing.T) {
			assert.Equal(t, tt.expected, ClassifyDue(tt.due, today))
		})
	}
}

func TestClassifyDue_IgnoresTimeOfDay(t *testing.T) {
	today := time.Date(2026, time.October, 19, 23, 59, 0, 0, time.UTC)
	due := time.Date(2026, time.October, 19, 0, 1, 0, 0, time.UTC)
	assert.Equal(t, domain.DueStatusDueToday, ClassifyDue(due, today))
	assert.Equal(t, 0, DaysUntilDue(due, today))
}

func TestUpcomingObligations(t *testing.T) {
	today := date(2026, time.October, 19)
	later := newPayment(domain.FrequencyMonthly, date(2026, time.November, 2))
	later.ID = 1
	overdue := newPayment(domain.FrequencyMonthly, date(2026, time.October, 10))
	overdue.ID = 2
	inactive := newPayment(domain.FrequencyMonthly, date(2026, time.October, 1))
	inactive.ID = 3
	inactive.IsActive = false

	obligations := UpcomingObligations([]*domain.RecurringPayment{later, overdue, inactive}, today)
	require.Len(t, obligations, 2)

	assert.Equal(t, int32(2), obligations[0].Payment.ID)
	assert.Equal(t, domain.DueStatusOverdue, obligations[0].Status)
	assert.Equal(t, -9, obligations[0].DaysUntilDue)

	assert.Equal(t, int32(1), obligations[1].Payment.ID)
	assert.Equal(t, domain.DueStatusScheduled, obligations[1].Status)
	assert.Equal(t, 14, obligations[1].DaysUntilDue)
}
