package repository

import (
	"context"

	"easypark/internal/domain"
)

// SettingsRepository defines the persistence operations for business
// parking settings.
type SettingsRepository interface {
	// GetByBusiness retrieves the settings for a business.
	GetByBusiness(ctx context.Context, businessID string) (*domain.ParkingSettings, error)

	// Save creates or replaces the settings for a business.
	Save(ctx context.Context, settings *domain.ParkingSettings) error
}
