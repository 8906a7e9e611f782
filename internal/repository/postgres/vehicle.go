package postgres

import (
	"context"
	"database/sql"
	"errors"

	"easypark/internal/domain"
	"easypark/internal/repository"
)

// VehicleRepository is a PostgreSQL implementation of repository.VehicleRepository.
type VehicleRepository struct {
	q Querier
}

// NewVehicleRepository creates a new PostgreSQL vehicle repository.
func NewVehicleRepository(db *sql.DB) *VehicleRepository {
	return &VehicleRepository{q: db}
}

// NewVehicleRepositoryWithTx creates a vehicle repository using a transaction.
func NewVehicleRepositoryWithTx(tx *sql.Tx) *VehicleRepository {
	return &VehicleRepository{q: tx}
}

const vehicleColumns = `id, business_id, plate, category, status, entry_at, exit_at`

// Create persists a new vehicle entry.
func (r *VehicleRepository) Create(ctx context.Context, vehicle *domain.Vehicle) error {
	query := `
		INSERT INTO vehicles (id, business_id, plate, category, status, entry_at, exit_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	var exitAt sql.NullTime
	if !vehicle.ExitAt.IsZero() {
		exitAt = sql.NullTime{Time: vehicle.ExitAt, Valid: true}
	}

	_, err := r.q.ExecContext(ctx, query,
		vehicle.ID,
		vehicle.BusinessID,
		vehicle.Plate,
		vehicle.Category,
		vehicle.Status,
		vehicle.EntryAt,
		exitAt,
	)

	return err
}

func scanVehicle(row interface{ Scan(...any) error }) (*domain.Vehicle, error) {
	var vehicle domain.Vehicle
	var exitAt sql.NullTime

	err := row.Scan(
		&vehicle.ID,
		&vehicle.BusinessID,
		&vehicle.Plate,
		&vehicle.Category,
		&vehicle.Status,
		&vehicle.EntryAt,
		&exitAt,
	)
	if err != nil {
		return nil, err
	}

	if exitAt.Valid {
		vehicle.ExitAt = exitAt.Time
	}

	return &vehicle, nil
}

// GetByID retrieves a vehicle by ID.
func (r *VehicleRepository) GetByID(ctx context.Context, id string) (*domain.Vehicle, error) {
	query := `SELECT ` + vehicleColumns + ` FROM vehicles WHERE id = $1`

	vehicle, err := scanVehicle(r.q.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}

	return vehicle, nil
}

// GetByBusiness retrieves vehicles for a business, newest entries first.
func (r *VehicleRepository) GetByBusiness(ctx context.Context, businessID string) ([]*domain.Vehicle, error) {
	query := `
		SELECT ` + vehicleColumns + `
		FROM vehicles WHERE business_id = $1
		ORDER BY entry_at DESC LIMIT 500
	`
	return r.queryVehicles(ctx, query, businessID)
}

// GetInsideByBusiness retrieves vehicles currently INSIDE for a business.
func (r *VehicleRepository) GetInsideByBusiness(ctx context.Context, businessID string) ([]*domain.Vehicle, error) {
	query := `
		SELECT ` + vehicleColumns + `
		FROM vehicles WHERE business_id = $1 AND status = $2
		ORDER BY entry_at ASC
	`
	return r.queryVehicles(ctx, query, businessID, domain.VehicleStatusInside)
}

func (r *VehicleRepository) queryVehicles(ctx context.Context, query string, args ...any) ([]*domain.Vehicle, error) {
	rows, err := r.q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var vehicles []*domain.Vehicle
	for rows.Next() {
		vehicle, err := scanVehicle(rows)
		if err != nil {
			return nil, err
		}
		vehicles = append(vehicles, vehicle)
	}

	return vehicles, rows.Err()
}

// GetInsideByPlate retrieves the INSIDE vehicle with the given plate.
// Returns nil if no such vehicle exists.
func (r *VehicleRepository) GetInsideByPlate(ctx context.Context, businessID, plate string) (*domain.Vehicle, error) {
	query := `
		SELECT ` + vehicleColumns + `
		FROM vehicles
		WHERE business_id = $1 AND upper(plate) = upper($2) AND status = $3
		LIMIT 1
	`

	vehicle, err := scanVehicle(r.q.QueryRowContext(ctx, query, businessID, plate, domain.VehicleStatusInside))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return vehicle, nil
}

// CountInside counts vehicles currently INSIDE for a business.
func (r *VehicleRepository) CountInside(ctx context.Context, businessID string) (int, error) {
	query := `SELECT COUNT(*) FROM vehicles WHERE business_id = $1 AND status = $2`

	var count int
	err := r.q.QueryRowContext(ctx, query, businessID, domain.VehicleStatusInside).Scan(&count)
	if err != nil {
		return 0, err
	}

	return count, nil
}

// Update updates an existing vehicle.
func (r *VehicleRepository) Update(ctx context.Context, vehicle *domain.Vehicle) error {
	query := `
		UPDATE vehicles
		SET plate = $1, category = $2, status = $3, entry_at = $4, exit_at = $5
		WHERE id = $6
	`

	var exitAt sql.NullTime
	if !vehicle.ExitAt.IsZero() {
		exitAt = sql.NullTime{Time: vehicle.ExitAt, Valid: true}
	}

	result, err := r.q.ExecContext(ctx, query,
		vehicle.Plate,
		vehicle.Category,
		vehicle.Status,
		vehicle.EntryAt,
		exitAt,
		vehicle.ID,
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

// Ensure VehicleRepository implements repository.VehicleRepository.
var _ repository.VehicleRepository = (*VehicleRepository)(nil)
