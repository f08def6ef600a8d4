package postgres

import (
	"context"
	"errors"

	"github.com/dafibh/fortuna/fortuna-planner/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

const incomeColumns = `id, workspace_id, name, amount, frequency, is_active, start_date, created_at, updated_at`

// IncomeRepository implements domain.IncomeRepository using PostgreSQL
type IncomeRepository struct {
	pool *pgxpool.Pool
}

// NewIncomeRepository creates a new IncomeRepository
func NewIncomeRepository(pool *pgxpool.Pool) *IncomeRepository {
	return &IncomeRepository{pool: pool}
}

// Create creates a new income source
func (r *IncomeRepository) Create(income *domain.IncomeSource) (*domain.IncomeSource, error) {
	amount, err := decimalToPgNumeric(income.Amount)
	if err != nil {
		return nil, err
	}

	row := r.pool.QueryRow(context.Background(), `
		INSERT INTO income_sources (workspace_id, name, amount, frequency, is_active, start_date)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING `+incomeColumns,
		income.WorkspaceID, income.Name, amount, string(income.Frequency), income.IsActive, timeToPgDate(income.StartDate))
	return scanIncome(row)
}

// GetByID retrieves an income source by ID
func (r *IncomeRepository) GetByID(workspaceID int32, id int32) (*domain.IncomeSource, error) {
	row := r.pool.QueryRow(context.Background(),
		`SELECT `+incomeColumns+` FROM income_sources WHERE workspace_id = $1 AND id = $2`, workspaceID, id)
	income, err := scanIncome(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrIncomeNotFound
		}
		return nil, err
	}
	return income, nil
}

// ListByWorkspace retrieves all income sources for a workspace
func (r *IncomeRepository) ListByWorkspace(workspaceID int32) ([]*domain.IncomeSource, error) {
	rows, err := r.pool.Query(context.Background(),
		`SELECT `+incomeColumns+` FROM income_sources WHERE workspace_id = $1 ORDER BY name, id`, workspaceID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := make([]*domain.IncomeSource, 0)
	for rows.Next() {
		income, err := scanIncome(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, income)
	}
	return result, rows.Err()
}

// SetActive toggles whether an income source counts toward monthly income
func (r *IncomeRepository) SetActive(workspaceID int32, id int32, active bool) (*domain.IncomeSource, error) {
	row := r.pool.QueryRow(context.Background(), `
		UPDATE income_sources SET is_active = $3, updated_at = NOW()
		WHERE workspace_id = $1 AND id = $2
		RETURNING `+incomeColumns,
		workspaceID, id, active)
	income, err := scanIncome(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrIncomeNotFound
		}
		return nil, err
	}
	return income, nil
}

// Delete removes an income source
func (r *IncomeRepository) Delete(workspaceID int32, id int32) error {
	return deleteRow(r.pool, "income_sources", workspaceID, id, domain.ErrIncomeNotFound)
}

func scanIncome(row rowScanner) (*domain.IncomeSource, error) {
	var (
		income    domain.IncomeSource
		amount    pgtype.Numeric
		frequency string
		startDate pgtype.Date
	)
	err := row.Scan(&income.ID, &income.WorkspaceID, &income.Name, &amount, &frequency,
		&income.IsActive, &startDate, &income.CreatedAt, &income.UpdatedAt)
	if err != nil {
		return nil, err
	}
	income.Amount = pgNumericToDecimal(amount)
	income.Frequency = domain.Frequency(frequency)
	income.StartDate = pgDateToTime(startDate)
	return &income, nil
}

// deleteRow removes one workspace-scoped row, returning notFound when nothing matched.
// table is always a package constant, never user input.
func deleteRow(pool *pgxpool.Pool, table string, workspaceID, id int32, notFound error) error {
	tag, err := pool.Exec(context.Background(),
		`DELETE FROM `+table+` WHERE workspace_id = $1 AND id = $2`, workspaceID, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return notFound
	}
	return nil
}
