package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/dafibh/fortuna/fortuna-planner/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog/log"
)

const recurringColumns = `id, workspace_id, name, amount, frequency, category, next_due_date, is_active, created_at, updated_at`

// RecurringRepository implements domain.RecurringRepository using PostgreSQL
type RecurringRepository struct {
	pool *pgxpool.Pool
}

// NewRecurringRepository creates a new RecurringRepository
func NewRecurringRepository(pool *pgxpool.Pool) *RecurringRepository {
	return &RecurringRepository{pool: pool}
}

// Create creates a new recurring payment
func (r *RecurringRepository) Create(payment *domain.RecurringPayment) (*domain.RecurringPayment, error) {
	amount, err := decimalToPgNumeric(payment.Amount)
	if err != nil {
		return nil, err
	}
	row := r.pool.QueryRow(context.Background(), `
		INSERT INTO recurring_payments (workspace_id, name, amount, frequency, category, next_due_date, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING `+recurringColumns,
		payment.WorkspaceID, payment.Name, amount, string(payment.Frequency),
		optionalText(payment.Category), timeToPgDate(payment.NextDueDate), payment.IsActive)
	return scanRecurring(row)
}

// GetByID retrieves a recurring payment by ID
func (r *RecurringRepository) GetByID(workspaceID int32, id int32) (*domain.RecurringPayment, error) {
	row := r.pool.QueryRow(context.Background(),
		`SELECT `+recurringColumns+` FROM recurring_payments WHERE workspace_id = $1 AND id = $2`, workspaceID, id)
	payment, err := scanRecurring(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrRecurringNotFound
		}
		return nil, err
	}
	return payment, nil
}

// ListByWorkspace retrieves recurring payments ordered by due date.
// A nil activeOnly returns every payment.
func (r *RecurringRepository) ListByWorkspace(workspaceID int32, activeOnly *bool) ([]*domain.RecurringPayment, error) {
	var active pgtype.Bool
	if activeOnly != nil {
		active = pgtype.Bool{Bool: *activeOnly, Valid: true}
	}

	rows, err := r.pool.Query(context.Background(), `
		SELECT `+recurringColumns+` FROM recurring_payments
		WHERE workspace_id = $1 AND ($2::boolean IS NULL OR is_active = $2)
		ORDER BY next_due_date, id`,
		workspaceID, active)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := make([]*domain.RecurringPayment, 0)
	for rows.Next() {
		payment, err := scanRecurring(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, payment)
	}
	return result, rows.Err()
}

// SetActive pauses or resumes a recurring payment
func (r *RecurringRepository) SetActive(workspaceID int32, id int32, active bool) (*domain.RecurringPayment, error) {
	row := r.pool.QueryRow(context.Background(), `
		UPDATE recurring_payments SET is_active = $3, updated_at = NOW()
		WHERE workspace_id = $1 AND id = $2
		RETURNING `+recurringColumns,
		workspaceID, id, active)
	payment, err := scanRecurring(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrRecurringNotFound
		}
		return nil, err
	}
	return payment, nil
}

// Delete removes a recurring payment. Expenses it already produced are kept.
func (r *RecurringRepository) Delete(workspaceID int32, id int32) error {
	return deleteRow(r.pool, "recurring_payments", workspaceID, id, domain.ErrRecurringNotFound)
}

// ApplyTransition advances the payment and records its expense in one transaction.
// The update only matches while next_due_date still equals the previous due date, so two
// concurrent resolutions of the same occurrence cannot both succeed.
func (r *RecurringRepository) ApplyTransition(transition *domain.PaymentTransition) (*domain.PaymentTransition, error) {
	ctx := context.Background()
	payment := transition.Payment

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	row := tx.QueryRow(ctx, `
		UPDATE recurring_payments SET next_due_date = $3, updated_at = NOW()
		WHERE workspace_id = $1 AND id = $2 AND next_due_date = $4 AND is_active
		RETURNING `+recurringColumns,
		payment.WorkspaceID, payment.ID, timeToPgDate(payment.NextDueDate), timeToPgDate(transition.PreviousDueDate))
	updated, err := scanRecurring(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: payment %d is no longer due on %s", domain.ErrPaymentConflict,
				payment.ID, transition.PreviousDueDate.Format("2006-01-02"))
		}
		return nil, err
	}

	result := &domain.PaymentTransition{
		Action:          transition.Action,
		PreviousDueDate: transition.PreviousDueDate,
		Payment:         updated,
	}

	if transition.Expense != nil {
		args, err := expenseInsertArgs(transition.Expense)
		if err != nil {
			return nil, err
		}
		expense, err := scanExpense(tx.QueryRow(ctx, insertExpenseSQL, args...))
		if err != nil {
			return nil, fmt.Errorf("failed to record expense: %w", err)
		}
		result.Expense = expense
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	log.Debug().
		Int32("workspace_id", payment.WorkspaceID).
		Int32("recurring_id", payment.ID).
		Str("action", string(transition.Action)).
		Msg("Recurring transition applied")
	return result, nil
}

func scanRecurring(row rowScanner) (*domain.RecurringPayment, error) {
	var (
		payment   domain.RecurringPayment
		amount    pgtype.Numeric
		frequency string
		category  pgtype.Text
		nextDue   pgtype.Date
	)
	err := row.Scan(&payment.ID, &payment.WorkspaceID, &payment.Name, &amount, &frequency,
		&category, &nextDue, &payment.IsActive, &payment.CreatedAt, &payment.UpdatedAt)
	if err != nil {
		return nil, err
	}
	payment.Amount = pgNumericToDecimal(amount)
	payment.Frequency = domain.Frequency(frequency)
	payment.Category = pgTextToOptional(category)
	payment.NextDueDate = pgDateToTime(nextDue)
	return &payment, nil
}
