package repository

import (
	"context"

	"easypark/internal/domain"
)

// VehicleRepository defines the persistence operations for vehicles.
type VehicleRepository interface {
	// Create persists a new vehicle entry.
	Create(ctx context.Context, vehicle *domain.Vehicle) error

	// GetByID retrieves a vehicle by ID.
	GetByID(ctx context.Context, id string) (*domain.Vehicle, error)

	// GetByBusiness retrieves vehicles for a business, newest entries first.
	GetByBusiness(ctx context.Context, businessID string) ([]*domain.Vehicle, error)

	// GetInsideByBusiness retrieves vehicles currently INSIDE for a business.
	GetInsideByBusiness(ctx context.Context, businessID string) ([]*domain.Vehicle, error)

	// GetInsideByPlate retrieves the INSIDE vehicle with the given plate.
	// Returns nil if no such vehicle exists.
	GetInsideByPlate(ctx context.Context, businessID, plate string) (*domain.Vehicle, error)

	// CountInside counts vehicles currently INSIDE for a business.
	CountInside(ctx context.Context, businessID string) (int, error)

	// Update updates an existing vehicle.
	Update(ctx context.Context, vehicle *domain.Vehicle) error
}
