package repository

import (
	"context"

	"easypark/internal/domain"
)

// OperationsRepository defines the persistence operations for business
// days.
type OperationsRepository interface {
	// Create persists a new operations day.
	Create(ctx context.Context, day *domain.OperationsDay) error

	// GetByID retrieves an operations day by ID.
	GetByID(ctx context.Context, id string) (*domain.OperationsDay, error)

	// GetOpenByBusiness retrieves the currently OPEN day for a business.
	// Returns nil if no day is open.
	GetOpenByBusiness(ctx context.Context, businessID string) (*domain.OperationsDay, error)

	// GetByBusinessAndDate retrieves the day for a business and a
	// "YYYY-MM-DD" date. Returns nil if none exists.
	GetByBusinessAndDate(ctx context.Context, businessID, date string) (*domain.OperationsDay, error)

	// GetByBusiness retrieves the day history for a business, newest first.
	GetByBusiness(ctx context.Context, businessID string) ([]*domain.OperationsDay, error)

	// ListOpen retrieves every OPEN day across all businesses.
	ListOpen(ctx context.Context) ([]*domain.OperationsDay, error)

	// Update updates an existing operations day.
	Update(ctx context.Context, day *domain.OperationsDay) error
}

// DebtRepository defines the persistence operations for vehicle debts.
type DebtRepository interface {
	// Upsert creates the debt, or replaces the amounts of the existing
	// debt for the same vehicle.
	Upsert(ctx context.Context, debt *domain.VehicleDebt) error

	// GetByID retrieves a debt by ID.
	GetByID(ctx context.Context, id string) (*domain.VehicleDebt, error)

	// GetUnpaidByVehicle retrieves the unpaid debt for a vehicle.
	// Returns nil if the vehicle owes nothing.
	GetUnpaidByVehicle(ctx context.Context, vehicleID string) (*domain.VehicleDebt, error)

	// GetByVehicle retrieves the debt record for a vehicle regardless of
	// payment state. Returns nil if the vehicle never accrued one.
	GetByVehicle(ctx context.Context, vehicleID string) (*domain.VehicleDebt, error)

	// GetByBusiness retrieves debts for a business, optionally only
	// unpaid ones, most recently updated first.
	GetByBusiness(ctx context.Context, businessID string, unpaidOnly bool) ([]*domain.VehicleDebt, error)

	// MarkPaid flags a debt as settled.
	MarkPaid(ctx context.Context, id string) error
}
