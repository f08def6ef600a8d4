package postgres

import (
	"context"
	"errors"

	"github.com/dafibh/fortuna/fortuna-planner/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

const goalColumns = `id, workspace_id, name, target_amount, current_amount, target_date, created_at, updated_at`

// GoalRepository implements domain.GoalRepository using PostgreSQL
type GoalRepository struct {
	pool *pgxpool.Pool
}

// NewGoalRepository creates a new GoalRepository
func NewGoalRepository(pool *pgxpool.Pool) *GoalRepository {
	return &GoalRepository{pool: pool}
}

// Create creates a new savings goal
func (r *GoalRepository) Create(goal *domain.Goal) (*domain.Goal, error) {
	target, err := decimalToPgNumeric(goal.TargetAmount)
	if err != nil {
		return nil, err
	}
	current, err := decimalToPgNumeric(goal.CurrentAmount)
	if err != nil {
		return nil, err
	}
	row := r.pool.QueryRow(context.Background(), `
		INSERT INTO goals (workspace_id, name, target_amount, current_amount, target_date)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING `+goalColumns,
		goal.WorkspaceID, goal.Name, target, current, optionalTimeToPgDate(goal.TargetDate))
	return scanGoal(row)
}

// GetByID retrieves a goal by ID
func (r *GoalRepository) GetByID(workspaceID int32, id int32) (*domain.Goal, error) {
	row := r.pool.QueryRow(context.Background(),
		`SELECT `+goalColumns+` FROM goals WHERE workspace_id = $1 AND id = $2`, workspaceID, id)
	goal, err := scanGoal(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrGoalNotFound
		}
		return nil, err
	}
	return goal, nil
}

// ListByWorkspace retrieves all goals, nearest deadline first
func (r *GoalRepository) ListByWorkspace(workspaceID int32) ([]*domain.Goal, error) {
	rows, err := r.pool.Query(context.Background(),
		`SELECT `+goalColumns+` FROM goals WHERE workspace_id = $1 ORDER BY target_date NULLS LAST, id`, workspaceID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := make([]*domain.Goal, 0)
	for rows.Next() {
		goal, err := scanGoal(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, goal)
	}
	return result, rows.Err()
}

// UpdateCurrentAmount records how much has been saved toward a goal
func (r *GoalRepository) UpdateCurrentAmount(workspaceID int32, id int32, amount decimal.Decimal) (*domain.Goal, error) {
	pgAmount, err := decimalToPgNumeric(amount)
	if err != nil {
		return nil, err
	}
	row := r.pool.QueryRow(context.Background(), `
		UPDATE goals SET current_amount = $3, updated_at = NOW()
		WHERE workspace_id = $1 AND id = $2
		RETURNING `+goalColumns,
		workspaceID, id, pgAmount)
	goal, err := scanGoal(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrGoalNotFound
		}
		return nil, err
	}
	return goal, nil
}

// Delete removes a goal
func (r *GoalRepository) Delete(workspaceID int32, id int32) error {
	return deleteRow(r.pool, "goals", workspaceID, id, domain.ErrGoalNotFound)
}

func scanGoal(row rowScanner) (*domain.Goal, error) {
	var (
		goal            domain.Goal
		target, current pgtype.Numeric
		targetDate      pgtype.Date
	)
	err := row.Scan(&goal.ID, &goal.WorkspaceID, &goal.Name, &target, &current, &targetDate,
		&goal.CreatedAt, &goal.UpdatedAt)
	if err != nil {
		return nil, err
	}
	goal.TargetAmount = pgNumericToDecimal(target)
	goal.CurrentAmount = pgNumericToDecimal(current)
	goal.TargetDate = pgDateToOptionalTime(targetDate)
	return &goal, nil
}
