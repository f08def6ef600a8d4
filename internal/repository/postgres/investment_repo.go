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

const investmentColumns = `id, workspace_id, name, quantity, purchase_price, current_price, purchase_date, created_at, updated_at`

// InvestmentRepository implements domain.InvestmentRepository using PostgreSQL
type InvestmentRepository struct {
	pool *pgxpool.Pool
}

// NewInvestmentRepository creates a new InvestmentRepository
func NewInvestmentRepository(pool *pgxpool.Pool) *InvestmentRepository {
	return &InvestmentRepository{pool: pool}
}

// Create creates a new investment position
func (r *InvestmentRepository) Create(investment *domain.Investment) (*domain.Investment, error) {
	quantity, err := decimalToPgNumeric(investment.Quantity)
	if err != nil {
		return nil, err
	}
	purchasePrice, err := decimalToPgNumeric(investment.PurchasePrice)
	if err != nil {
		return nil, err
	}
	currentPrice, err := decimalToPgNumeric(investment.CurrentPrice)
	if err != nil {
		return nil, err
	}

	row := r.pool.QueryRow(context.Background(), `
		INSERT INTO investments (workspace_id, name, quantity, purchase_price, current_price, purchase_date)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING `+investmentColumns,
		investment.WorkspaceID, investment.Name, quantity, purchasePrice, currentPrice,
		timeToPgDate(investment.PurchaseDate))
	return scanInvestment(row)
}

// GetByID retrieves an investment by ID
func (r *InvestmentRepository) GetByID(workspaceID int32, id int32) (*domain.Investment, error) {
	row := r.pool.QueryRow(context.Background(),
		`SELECT `+investmentColumns+` FROM investments WHERE workspace_id = $1 AND id = $2`, workspaceID, id)
	investment, err := scanInvestment(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrInvestmentNotFound
		}
		return nil, err
	}
	return investment, nil
}

// ListByWorkspace retrieves all investments for a workspace
func (r *InvestmentRepository) ListByWorkspace(workspaceID int32) ([]*domain.Investment, error) {
	rows, err := r.pool.Query(context.Background(),
		`SELECT `+investmentColumns+` FROM investments WHERE workspace_id = $1 ORDER BY name, id`, workspaceID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := make([]*domain.Investment, 0)
	for rows.Next() {
		investment, err := scanInvestment(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, investment)
	}
	return result, rows.Err()
}

// UpdateCurrentPrice records a manually entered market price
func (r *InvestmentRepository) UpdateCurrentPrice(workspaceID int32, id int32, price decimal.Decimal) (*domain.Investment, error) {
	pgPrice, err := decimalToPgNumeric(price)
	if err != nil {
		return nil, err
	}
	row := r.pool.QueryRow(context.Background(), `
		UPDATE investments SET current_price = $3, updated_at = NOW()
		WHERE workspace_id = $1 AND id = $2
		RETURNING `+investmentColumns,
		workspaceID, id, pgPrice)
	investment, err := scanInvestment(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrInvestmentNotFound
		}
		return nil, err
	}
	return investment, nil
}

// Delete removes an investment
func (r *InvestmentRepository) Delete(workspaceID int32, id int32) error {
	return deleteRow(r.pool, "investments", workspaceID, id, domain.ErrInvestmentNotFound)
}

func scanInvestment(row rowScanner) (*domain.Investment, error) {
	var (
		investment                            domain.Investment
		quantity, purchasePrice, currentPrice pgtype.Numeric
		purchaseDate                          pgtype.Date
	)
	err := row.Scan(&investment.ID, &investment.WorkspaceID, &investment.Name, &quantity,
		&purchasePrice, &currentPrice, &purchaseDate, &investment.CreatedAt, &investment.UpdatedAt)
	if err != nil {
		return nil, err
	}
	investment.Quantity = pgNumericToDecimal(quantity)
	investment.PurchasePrice = pgNumericToDecimal(purchasePrice)
	investment.CurrentPrice = pgNumericToDecimal(currentPrice)
	investment.PurchaseDate = pgDateToTime(purchaseDate)
	return &investment, nil
}
