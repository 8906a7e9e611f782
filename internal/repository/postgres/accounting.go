package postgres

import (
	"context"
	"database/sql"
	"errors"

	"easypark/internal/domain"
	"easypark/internal/repository"
)

// AccountingRepository is a PostgreSQL implementation of repository.AccountingRepository.
type AccountingRepository struct {
	q Querier
}

// NewAccountingRepository creates a new PostgreSQL accounting repository.
func NewAccountingRepository(db *sql.DB) *AccountingRepository {
	return &AccountingRepository{q: db}
}

// NewAccountingRepositoryWithTx creates an accounting repository using a transaction.
func NewAccountingRepositoryWithTx(tx *sql.Tx) *AccountingRepository {
	return &AccountingRepository{q: tx}
}

const accountingColumns = `id, business_id, kind, vehicle_id, plate, category,
	entry_at, exit_at, hours_parked, hours_to_pay, rate_per_hour, amount,
	night_charge, debt_id, currency, description, operation_date, created_at`

// Create persists a new accounting record.
func (r *AccountingRepository) Create(ctx context.Context, record *domain.AccountingRecord) error {
	query := `
		INSERT INTO accounting_records
			(id, business_id, kind, vehicle_id, plate, category, entry_at, exit_at,
			 hours_parked, hours_to_pay, rate_per_hour, amount, night_charge,
			 debt_id, currency, description, operation_date, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)
	`

	var entryAt, exitAt sql.NullTime
	if !record.EntryAt.IsZero() {
		entryAt = sql.NullTime{Time: record.EntryAt, Valid: true}
	}
	if !record.ExitAt.IsZero() {
		exitAt = sql.NullTime{Time: record.ExitAt, Valid: true}
	}

	var vehicleID, debtID sql.NullString
	if record.VehicleID != "" {
		vehicleID = sql.NullString{String: record.VehicleID, Valid: true}
	}
	if record.DebtID != "" {
		debtID = sql.NullString{String: record.DebtID, Valid: true}
	}

	_, err := r.q.ExecContext(ctx, query,
		record.ID,
		record.BusinessID,
		record.Kind,
		vehicleID,
		record.Plate,
		record.Category,
		entryAt,
		exitAt,
		record.HoursParked,
		record.HoursToPay,
		record.RatePerHour,
		record.Amount,
		record.NightCharge,
		debtID,
		record.Currency,
		record.Description,
		record.OperationDate,
		record.CreatedAt,
	)

	return err
}

func scanAccountingRecord(row interface{ Scan(...any) error }) (*domain.AccountingRecord, error) {
	var record domain.AccountingRecord
	var entryAt, exitAt sql.NullTime
	var vehicleID, debtID sql.NullString

	err := row.Scan(
		&record.ID,
		&record.BusinessID,
		&record.Kind,
		&vehicleID,
		&record.Plate,
		&record.Category,
		&entryAt,
		&exitAt,
		&record.HoursParked,
		&record.HoursToPay,
		&record.RatePerHour,
		&record.Amount,
		&record.NightCharge,
		&debtID,
		&record.Currency,
		&record.Description,
		&record.OperationDate,
		&record.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	if entryAt.Valid {
		record.EntryAt = entryAt.Time
	}
	if exitAt.Valid {
		record.ExitAt = exitAt.Time
	}
	record.VehicleID = vehicleID.String
	record.DebtID = debtID.String

	return &record, nil
}

// GetByID retrieves a record by ID.
func (r *AccountingRepository) GetByID(ctx context.Context, id string) (*domain.AccountingRecord, error) {
	query := `SELECT ` + accountingColumns + ` FROM accounting_records WHERE id = $1`

	record, err := scanAccountingRecord(r.q.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}

	return record, nil
}

// GetByBusiness retrieves records for a business, newest first.
func (r *AccountingRepository) GetByBusiness(ctx context.Context, businessID string) ([]*domain.AccountingRecord, error) {
	query := `
		SELECT ` + accountingColumns + `
		FROM accounting_records WHERE business_id = $1
		ORDER BY created_at DESC LIMIT 500
	`
	return r.queryRecords(ctx, query, businessID)
}

// GetByDateRange retrieves records whose operation date falls in [from, to].
func (r *AccountingRepository) GetByDateRange(ctx context.Context, businessID, from, to string) ([]*domain.AccountingRecord, error) {
	query := `
		SELECT ` + accountingColumns + `
		FROM accounting_records
		WHERE business_id = $1 AND operation_date >= $2 AND operation_date <= $3
		ORDER BY created_at DESC
	`
	return r.queryRecords(ctx, query, businessID, from, to)
}

// SearchByPlate retrieves records whose plate contains the fragment.
func (r *AccountingRepository) SearchByPlate(ctx context.Context, businessID, plate string) ([]*domain.AccountingRecord, error) {
	query := `
		SELECT ` + accountingColumns + `
		FROM accounting_records
		WHERE business_id = $1 AND plate ILIKE '%' || $2 || '%'
		ORDER BY created_at DESC
	`
	return r.queryRecords(ctx, query, businessID, plate)
}

func (r *AccountingRepository) queryRecords(ctx context.Context, query string, args ...any) ([]*domain.AccountingRecord, error) {
	rows, err := r.q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []*domain.AccountingRecord
	for rows.Next() {
		record, err := scanAccountingRecord(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}

	return records, rows.Err()
}

// Summarize computes ledger aggregates for a business.
func (r *AccountingRepository) Summarize(ctx context.Context, businessID string) (*domain.AccountingSummary, error) {
	query := `
		SELECT
			COALESCE(SUM(amount), 0),
			COUNT(*),
			COALESCE(SUM(amount) FILTER (WHERE category IN ($2, $3)), 0),
			COALESCE(SUM(amount) FILTER (WHERE category = $4), 0),
			COALESCE(AVG(hours_parked) FILTER (WHERE kind = $5), 0)
		FROM accounting_records
		WHERE business_id = $1
	`

	var summary domain.AccountingSummary
	err := r.q.QueryRowContext(ctx, query,
		businessID,
		domain.CategoryCar,
		domain.CategoryTruck,
		domain.CategoryMotorcycle,
		domain.AccountingSettlement,
	).Scan(
		&summary.TotalRevenue,
		&summary.TotalRecords,
		&summary.CarTruckRevenue,
		&summary.MotorcycleRevenue,
		&summary.AverageStayHours,
	)
	if err != nil {
		return nil, err
	}

	return &summary, nil
}

// RevenueByDay groups revenue by operation date, newest first.
func (r *AccountingRepository) RevenueByDay(ctx context.Context, businessID string) ([]domain.DailyRevenue, error) {
	query := `
		SELECT operation_date, COALESCE(SUM(amount), 0)
		FROM accounting_records
		WHERE business_id = $1
		GROUP BY operation_date
		ORDER BY operation_date DESC
	`

	rows, err := r.q.QueryContext(ctx, query, businessID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var buckets []domain.DailyRevenue
	for rows.Next() {
		var bucket domain.DailyRevenue
		if err := rows.Scan(&bucket.Date, &bucket.Revenue); err != nil {
			return nil, err
		}
		buckets = append(buckets, bucket)
	}

	return buckets, rows.Err()
}

// RevenueForDate sums revenue for a single operation date.
func (r *AccountingRepository) RevenueForDate(ctx context.Context, businessID, date string) (float64, error) {
	query := `
		SELECT COALESCE(SUM(amount), 0)
		FROM accounting_records
		WHERE business_id = $1 AND operation_date = $2
	`

	var total float64
	if err := r.q.QueryRowContext(ctx, query, businessID, date).Scan(&total); err != nil {
		return 0, err
	}

	return total, nil
}

// Ensure AccountingRepository implements repository.AccountingRepository.
var _ repository.AccountingRepository = (*AccountingRepository)(nil)
