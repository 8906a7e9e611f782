package postgres

import (
	"context"
	"database/sql"
	"errors"

	"easypark/internal/domain"
	"easypark/internal/repository"
)

// OperationsRepository is a PostgreSQL implementation of repository.OperationsRepository.
type OperationsRepository struct {
	q Querier
}

// NewOperationsRepository creates a new PostgreSQL operations repository.
func NewOperationsRepository(db *sql.DB) *OperationsRepository {
	return &OperationsRepository{q: db}
}

// NewOperationsRepositoryWithTx creates an operations repository using a transaction.
func NewOperationsRepositoryWithTx(tx *sql.Tx) *OperationsRepository {
	return &OperationsRepository{q: tx}
}

const operationsColumns = `id, business_id, date, status, opened_at, closed_at,
	initial_cash, final_cash, notes`

// Create persists a new operations day.
func (r *OperationsRepository) Create(ctx context.Context, day *domain.OperationsDay) error {
	query := `
		INSERT INTO operations_days
			(id, business_id, date, status, opened_at, closed_at, initial_cash, final_cash, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	var closedAt sql.NullTime
	if !day.ClosedAt.IsZero() {
		closedAt = sql.NullTime{Time: day.ClosedAt, Valid: true}
	}

	_, err := r.q.ExecContext(ctx, query,
		day.ID,
		day.BusinessID,
		day.Date,
		day.Status,
		day.OpenedAt,
		closedAt,
		day.InitialCash,
		day.FinalCash,
		day.Notes,
	)

	return err
}

func scanOperationsDay(row interface{ Scan(...any) error }) (*domain.OperationsDay, error) {
	var day domain.OperationsDay
	var closedAt sql.NullTime

	err := row.Scan(
		&day.ID,
		&day.BusinessID,
		&day.Date,
		&day.Status,
		&day.OpenedAt,
		&closedAt,
		&day.InitialCash,
		&day.FinalCash,
		&day.Notes,
	)
	if err != nil {
		return nil, err
	}

	if closedAt.Valid {
		day.ClosedAt = closedAt.Time
	}

	return &day, nil
}

// GetByID retrieves an operations day by ID.
func (r *OperationsRepository) GetByID(ctx context.Context, id string) (*domain.OperationsDay, error) {
	query := `SELECT ` + operationsColumns + ` FROM operations_days WHERE id = $1`

	day, err := scanOperationsDay(r.q.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}

	return day, nil
}

// GetOpenByBusiness retrieves the currently OPEN day for a business.
// Returns nil if no day is open.
func (r *OperationsRepository) GetOpenByBusiness(ctx context.Context, businessID string) (*domain.OperationsDay, error) {
	query := `
		SELECT ` + operationsColumns + `
		FROM operations_days
		WHERE business_id = $1 AND status = $2
		LIMIT 1
	`

	day, err := scanOperationsDay(r.q.QueryRowContext(ctx, query, businessID, domain.OperationsDayOpen))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return day, nil
}

// GetByBusinessAndDate retrieves the day for a business and date.
// Returns nil if none exists.
func (r *OperationsRepository) GetByBusinessAndDate(ctx context.Context, businessID, date string) (*domain.OperationsDay, error) {
	query := `
		SELECT ` + operationsColumns + `
		FROM operations_days
		WHERE business_id = $1 AND date = $2
		LIMIT 1
	`

	day, err := scanOperationsDay(r.q.QueryRowContext(ctx, query, businessID, date))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return day, nil
}

// GetByBusiness retrieves the day history for a business, newest first.
func (r *OperationsRepository) GetByBusiness(ctx context.Context, businessID string) ([]*domain.OperationsDay, error) {
	query := `
		SELECT ` + operationsColumns + `
		FROM operations_days
		WHERE business_id = $1
		ORDER BY date DESC LIMIT 100
	`
	return r.queryDays(ctx, query, businessID)
}

// ListOpen retrieves every OPEN day across all businesses.
func (r *OperationsRepository) ListOpen(ctx context.Context) ([]*domain.OperationsDay, error) {
	query := `
		SELECT ` + operationsColumns + `
		FROM operations_days
		WHERE status = $1
		ORDER BY opened_at ASC
	`
	return r.queryDays(ctx, query, domain.OperationsDayOpen)
}

func (r *OperationsRepository) queryDays(ctx context.Context, query string, args ...any) ([]*domain.OperationsDay, error) {
	rows, err := r.q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var days []*domain.OperationsDay
	for rows.Next() {
		day, err := scanOperationsDay(rows)
		if err != nil {
			return nil, err
		}
		days = append(days, day)
	}

	return days, rows.Err()
}

// Update updates an existing operations day.
func (r *OperationsRepository) Update(ctx context.Context, day *domain.OperationsDay) error {
	query := `
		UPDATE operations_days
		SET status = $1, opened_at = $2, closed_at = $3, initial_cash = $4, final_cash = $5, notes = $6
		WHERE id = $7
	`

	var closedAt sql.NullTime
	if !day.ClosedAt.IsZero() {
		closedAt = sql.NullTime{Time: day.ClosedAt, Valid: true}
	}

	result, err := r.q.ExecContext(ctx, query,
		day.Status,
		day.OpenedAt,
		closedAt,
		day.InitialCash,
		day.FinalCash,
		day.Notes,
		day.ID,
	)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return repository.ErrNotFound
	}

	return nil
}

// Ensure OperationsRepository implements repository.OperationsRepository.
var _ repository.OperationsRepository = (*OperationsRepository)(nil)
