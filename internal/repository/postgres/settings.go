package postgres

import (
	"context"
	"database/sql"
	"errors"

	"easypark/internal/domain"
	"easypark/internal/repository"
)

// SettingsRepository is a PostgreSQL implementation of repository.SettingsRepository.
type SettingsRepository struct {
	q Querier
}

// NewSettingsRepository creates a new PostgreSQL settings repository.
func NewSettingsRepository(db *sql.DB) *SettingsRepository {
	return &SettingsRepository{q: db}
}

// NewSettingsRepositoryWithTx creates a settings repository using a transaction.
func NewSettingsRepositoryWithTx(tx *sql.Tx) *SettingsRepository {
	return &SettingsRepository{q: tx}
}

// GetByBusiness retrieves the settings for a business.
func (r *SettingsRepository) GetByBusiness(ctx context.Context, businessID string) (*domain.ParkingSettings, error) {
	query := `
		SELECT business_id, motorcycle_rate, car_truck_rate, night_rate,
		       opening_time, closing_time, max_capacity, currency
		FROM parking_settings WHERE business_id = $1
	`

	var settings domain.ParkingSettings
	err := r.q.QueryRowContext(ctx, query, businessID).Scan(
		&settings.BusinessID,
		&settings.MotorcycleRate,
		&settings.CarTruckRate,
		&settings.NightRate,
		&settings.OpeningTime,
		&settings.ClosingTime,
		&settings.MaxCapacity,
		&settings.Currency,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}

	return &settings, nil
}

// Save creates or replaces the settings for a business.
func (r *SettingsRepository) Save(ctx context.Context, settings *domain.ParkingSettings) error {
	query := `
		INSERT INTO parking_settings
			(business_id, motorcycle_rate, car_truck_rate, night_rate,
			 opening_time, closing_time, max_capacity, currency)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (business_id) DO UPDATE SET
			motorcycle_rate = EXCLUDED.motorcycle_rate,
			car_truck_rate = EXCLUDED.car_truck_rate,
			night_rate = EXCLUDED.night_rate,
			opening_time = EXCLUDED.opening_time,
			closing_time = EXCLUDED.closing_time,
			max_capacity = EXCLUDED.max_capacity,
			currency = EXCLUDED.currency
	`

	_, err := r.q.ExecContext(ctx, query,
		settings.BusinessID,
		settings.MotorcycleRate,
		settings.CarTruckRate,
		settings.NightRate,
		settings.OpeningTime,
		settings.ClosingTime,
		settings.MaxCapacity,
		settings.Currency,
	)

	return err
}

// Ensure SettingsRepository implements repository.SettingsRepository.
var _ repository.SettingsRepository = (*SettingsRepository)(nil)
