package redis

import (
	"context"
	"time"

	"easypark/internal/domain"
)

// SettingsCache defines the interface for settings caching.
type SettingsCache interface {
	GetSettings(ctx context.Context, businessID string) (*domain.ParkingSettings, error)
	SetSettings(ctx context.Context, settings *domain.ParkingSettings) error
	InvalidateSettings(ctx context.Context, businessID string) error
}

// OverviewCache defines the interface for analytics overview caching.
type OverviewCache interface {
	GetOverview(ctx context.Context, businessID string) (*CachedOverview, error)
	SetOverview(ctx context.Context, businessID string, overview *CachedOverview) error
	InvalidateOverview(ctx context.Context, businessID string) error
}

// LockStoreInterface defines the interface for distributed locking.
type LockStoreInterface interface {
	AcquireDayLock(ctx context.Context, businessID string, ttl time.Duration) (bool, error)
	ReleaseDayLock(ctx context.Context, businessID string) error
}

// Ensure concrete types implement interfaces.
var (
	_ SettingsCache      = (*CacheStore)(nil)
	_ OverviewCache      = (*CacheStore)(nil)
	_ LockStoreInterface = (*LockStore)(nil)
)
