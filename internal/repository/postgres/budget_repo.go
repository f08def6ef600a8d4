package postgres

import (
	"context"
	"errors"

	"github.com/dafibh/fortuna/fortuna-planner/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

const budgetColumns = `id, workspace_id, category, amount, period, created_at, updated_at`

// BudgetRepository implements domain.BudgetRepository using PostgreSQL
type BudgetRepository struct {
	pool *pgxpool.Pool
}

// NewBudgetRepository creates a new BudgetRepository
func NewBudgetRepository(pool *pgxpool.Pool) *BudgetRepository {
	return &BudgetRepository{pool: pool}
}

// Create creates a new budget
func (r *BudgetRepository) Create(budget *domain.Budget) (*domain.Budget, error) {
	amount, err := decimalToPgNumeric(budget.Amount)
	if err != nil {
		return nil, err
	}
	row := r.pool.QueryRow(context.Background(), `
		INSERT INTO budgets (workspace_id, category, amount, period)
		VALUES ($1, $2, $3, $4)
		RETURNING `+budgetColumns,
		budget.WorkspaceID, budget.Category, amount, string(budget.Period))
	return scanBudget(row)
}

// GetByID retrieves a budget by ID
func (r *BudgetRepository) GetByID(workspaceID int32, id int32) (*domain.Budget, error) {
	row := r.pool.QueryRow(context.Background(),
		`SELECT `+budgetColumns+` FROM budgets WHERE workspace_id = $1 AND id = $2`, workspaceID, id)
	budget, err := scanBudget(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrBudgetNotFound
		}
		return nil, err
	}
	return budget, nil
}

// ListByWorkspace retrieves all budgets for a workspace
func (r *BudgetRepository) ListByWorkspace(workspaceID int32) ([]*domain.Budget, error) {
	rows, err := r.pool.Query(context.Background(),
		`SELECT `+budgetColumns+` FROM budgets WHERE workspace_id = $1 ORDER BY category, id`, workspaceID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := make([]*domain.Budget, 0)
	for rows.Next() {
		budget, err := scanBudget(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, budget)
	}
	return result, rows.Err()
}

// Delete removes a budget
func (r *BudgetRepository) Delete(workspaceID int32, id int32) error {
	return deleteRow(r.pool, "budgets", workspaceID, id, domain.ErrBudgetNotFound)
}

func scanBudget(row rowScanner) (*domain.Budget, error) {
	var (
		budget domain.Budget
		amount pgtype.Numeric
		period string
	)
	if err := row.Scan(&budget.ID, &budget.WorkspaceID, &budget.Category, &amount, &period,
		&budget.CreatedAt, &budget.UpdatedAt); err != nil {
		return nil, err
	}
	budget.Amount = pgNumericToDecimal(amount)
	budget.Period = domain.BudgetPeriod(period)
	return &budget, nil
}
