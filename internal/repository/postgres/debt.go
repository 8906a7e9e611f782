package postgres

import (
	"context"
	"database/sql"
	"errors"

	"easypark/internal/domain"
	"easypark/internal/repository"
)

// DebtRepository is a PostgreSQL implementation of repository.DebtRepository.
type DebtRepository struct {
	q Querier
}

// NewDebtRepository creates a new PostgreSQL debt repository.
func NewDebtRepository(db *sql.DB) *DebtRepository {
	return &DebtRepository{q: db}
}

// NewDebtRepositoryWithTx creates a debt repository using a transaction.
func NewDebtRepositoryWithTx(tx *sql.Tx) *DebtRepository {
	return &DebtRepository{q: tx}
}

const debtColumns = `id, business_id, vehicle_id, plate, category, entry_at,
	regular_hours, regular_amount, night_charge, total_debt, paid, updated_at`

// Upsert creates the debt, or replaces the amounts and payment state of
// the vehicle's existing debt row. One row per vehicle: a paid row is
// recycled when the vehicle accrues a new debt.
func (r *DebtRepository) Upsert(ctx context.Context, debt *domain.VehicleDebt) error {
	query := `
		INSERT INTO vehicle_debts
			(id, business_id, vehicle_id, plate, category, entry_at,
			 regular_hours, regular_amount, night_charge, total_debt, paid, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		ON CONFLICT (vehicle_id) DO UPDATE SET
			entry_at = EXCLUDED.entry_at,
			regular_hours = EXCLUDED.regular_hours,
			regular_amount = EXCLUDED.regular_amount,
			night_charge = EXCLUDED.night_charge,
			total_debt = EXCLUDED.total_debt,
			paid = EXCLUDED.paid,
			updated_at = EXCLUDED.updated_at
	`

	_, err := r.q.ExecContext(ctx, query,
		debt.ID,
		debt.BusinessID,
		debt.VehicleID,
		debt.Plate,
		debt.Category,
		debt.EntryAt,
		debt.RegularHours,
		debt.RegularAmount,
		debt.NightCharge,
		debt.TotalDebt,
		debt.Paid,
		debt.UpdatedAt,
	)

	return err
}

func scanDebt(row interface{ Scan(...any) error }) (*domain.VehicleDebt, error) {
	var debt domain.VehicleDebt

	err := row.Scan(
		&debt.ID,
		&debt.BusinessID,
		&debt.VehicleID,
		&debt.Plate,
		&debt.Category,
		&debt.EntryAt,
		&debt.RegularHours,
		&debt.RegularAmount,
		&debt.NightCharge,
		&debt.TotalDebt,
		&debt.Paid,
		&debt.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return &debt, nil
}

// GetByID retrieves a debt by ID.
func (r *DebtRepository) GetByID(ctx context.Context, id string) (*domain.VehicleDebt, error) {
	query := `SELECT ` + debtColumns + ` FROM vehicle_debts WHERE id = $1`

	debt, err := scanDebt(r.q.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}

	return debt, nil
}

// GetUnpaidByVehicle retrieves the unpaid debt for a vehicle.
// Returns nil if the vehicle owes nothing.
func (r *DebtRepository) GetUnpaidByVehicle(ctx context.Context, vehicleID string) (*domain.VehicleDebt, error) {
	query := `
		SELECT ` + debtColumns + `
		FROM vehicle_debts
		WHERE vehicle_id = $1 AND paid = false
		LIMIT 1
	`

	debt, err := scanDebt(r.q.QueryRowContext(ctx, query, vehicleID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return debt, nil
}

// GetByVehicle retrieves the debt record for a vehicle regardless of
// payment state. Returns nil if the vehicle never accrued one.
func (r *DebtRepository) GetByVehicle(ctx context.Context, vehicleID string) (*domain.VehicleDebt, error) {
	query := `
		SELECT ` + debtColumns + `
		FROM vehicle_debts
		WHERE vehicle_id = $1
		LIMIT 1
	`

	debt, err := scanDebt(r.q.QueryRowContext(ctx, query, vehicleID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return debt, nil
}

// GetByBusiness retrieves debts for a business, most recently updated first.
func (r *DebtRepository) GetByBusiness(ctx context.Context, businessID string, unpaidOnly bool) ([]*domain.VehicleDebt, error) {
	query := `
		SELECT ` + debtColumns + `
		FROM vehicle_debts
		WHERE business_id = $1 AND (NOT $2 OR paid = false)
		ORDER BY updated_at DESC
	`

	rows, err := r.q.QueryContext(ctx, query, businessID, unpaidOnly)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var debts []*domain.VehicleDebt
	for rows.Next() {
		debt, err := scanDebt(rows)
		if err != nil {
			return nil, err
		}
		debts = append(debts, debt)
	}

	return debts, rows.Err()
}

// MarkPaid flags a debt as settled.
func (r *DebtRepository) MarkPaid(ctx context.Context, id string) error {
	query := `UPDATE vehicle_debts SET paid = true, updated_at = now() WHERE id = $1`

	result, err := r.q.ExecContext(ctx, query, id)
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

// Ensure DebtRepository implements repository.DebtRepository.
var _ repository.DebtRepository = (*DebtRepository)(nil)
