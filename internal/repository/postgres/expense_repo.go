package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dafibh/fortuna/fortuna-planner/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

const expenseColumns = `id, workspace_id, amount, category, expense_date, is_recurring, description, created_at`

const insertExpenseSQL = `
	INSERT INTO expenses (workspace_id, amount, category, expense_date, is_recurring, description)
	VALUES ($1, $2, $3, $4, $5, $6)
	RETURNING ` + expenseColumns

// ExpenseRepository implements domain.ExpenseRepository using PostgreSQL
type ExpenseRepository struct {
	pool *pgxpool.Pool
}

// NewExpenseRepository creates a new ExpenseRepository
func NewExpenseRepository(pool *pgxpool.Pool) *ExpenseRepository {
	return &ExpenseRepository{pool: pool}
}

// Create records a new expense
func (r *ExpenseRepository) Create(expense *domain.Expense) (*domain.Expense, error) {
	args, err := expenseInsertArgs(expense)
	if err != nil {
		return nil, err
	}
	return scanExpense(r.pool.QueryRow(context.Background(), insertExpenseSQL, args...))
}

// GetByID retrieves an expense by ID
func (r *ExpenseRepository) GetByID(workspaceID int32, id int32) (*domain.Expense, error) {
	row := r.pool.QueryRow(context.Background(),
		`SELECT `+expenseColumns+` FROM expenses WHERE workspace_id = $1 AND id = $2`, workspaceID, id)
	expense, err := scanExpense(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrExpenseNotFound
		}
		return nil, err
	}
	return expense, nil
}

// List retrieves expenses for a workspace, newest first, narrowed by the optional filters
func (r *ExpenseRepository) List(workspaceID int32, filters *domain.ExpenseFilters) ([]*domain.Expense, error) {
	query, args := buildExpenseListQuery(workspaceID, filters)
	rows, err := r.pool.Query(context.Background(), query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := make([]*domain.Expense, 0)
	for rows.Next() {
		expense, err := scanExpense(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, expense)
	}
	return result, rows.Err()
}

// Delete removes an expense
func (r *ExpenseRepository) Delete(workspaceID int32, id int32) error {
	return deleteRow(r.pool, "expenses", workspaceID, id, domain.ErrExpenseNotFound)
}

func buildExpenseListQuery(workspaceID int32, filters *domain.ExpenseFilters) (string, []any) {
	conditions := []string{"workspace_id = $1"}
	args := []any{workspaceID}

	if filters != nil {
		if filters.StartDate != nil {
			args = append(args, timeToPgDate(*filters.StartDate))
			conditions = append(conditions, fmt.Sprintf("expense_date >= $%d", len(args)))
		}
		if filters.EndDate != nil {
			args = append(args, timeToPgDate(*filters.EndDate))
			conditions = append(conditions, fmt.Sprintf("expense_date <= $%d", len(args)))
		}
		if filters.Category != nil {
			args = append(args, *filters.Category)
			conditions = append(conditions, fmt.Sprintf("category = $%d", len(args)))
		}
	}

	query := `SELECT ` + expenseColumns + ` FROM expenses WHERE ` +
		strings.Join(conditions, " AND ") + ` ORDER BY expense_date DESC, id DESC`
	return query, args
}

func expenseInsertArgs(expense *domain.Expense) ([]any, error) {
	amount, err := decimalToPgNumeric(expense.Amount)
	if err != nil {
		return nil, err
	}
	return []any{
		expense.WorkspaceID,
		amount,
		expense.Category,
		timeToPgDate(expense.Date),
		expense.IsRecurring,
		optionalText(expense.Description),
	}, nil
}

func scanExpense(row rowScanner) (*domain.Expense, error) {
	var (
		expense     domain.Expense
		amount      pgtype.Numeric
		date        pgtype.Date
		description pgtype.Text
	)
	err := row.Scan(&expense.ID, &expense.WorkspaceID, &amount, &expense.Category, &date,
		&expense.IsRecurring, &description, &expense.CreatedAt)
	if err != nil {
		return nil, err
	}
	expense.Amount = pgNumericToDecimal(amount)
	expense.Date = pgDateToTime(date)
	expense.Description = pgTextToOptional(description)
	return &expense, nil
}
