package redis

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"easypark/internal/domain"
)

// CacheStore handles entity caching in Redis.
type CacheStore struct {
	client *redis.Client
}

// NewCacheStore creates a new CacheStore.
func NewCacheStore(client *redis.Client) *CacheStore {
	return &CacheStore{client: client}
}

// Cache TTL constants
const (
	SettingsCacheTTL = 60 * time.Second // Settings change rarely but are read on every exit
	OverviewCacheTTL = 30 * time.Second // Dashboard aggregates tolerate slight staleness
)

// Key prefixes
const (
	settingsCachePrefix = "cache:settings:"
	overviewCachePrefix = "cache:overview:"
)

// GetSettings retrieves a business's parking settings from cache.
// Returns nil on a cache miss.
func (s *CacheStore) GetSettings(ctx context.Context, businessID string) (*domain.ParkingSettings, error) {
	key := settingsCachePrefix + businessID
	data, err := s.client.Get(ctx, key).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil // Cache miss
		}
		return nil, err
	}

	var settings domain.ParkingSettings
	if err := json.Unmarshal(data, &settings); err != nil {
		return nil, err
	}
	return &settings, nil
}

// SetSettings stores a business's parking settings in cache.
func (s *CacheStore) SetSettings(ctx context.Context, settings *domain.ParkingSettings) error {
	key := settingsCachePrefix + settings.BusinessID
	data, err := json.Marshal(settings)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, key, data, SettingsCacheTTL).Err()
}

// InvalidateSettings removes a business's settings from cache.
func (s *CacheStore) InvalidateSettings(ctx context.Context, businessID string) error {
	key := settingsCachePrefix + businessID
	return s.client.Del(ctx, key).Err()
}

// CachedOverview is the cached analytics snapshot for a business.
type CachedOverview struct {
	OccupancyRate    float64 `json:"occupancy_rate"`
	VehiclesInside   int     `json:"vehicles_inside"`
	AvailableSpaces  int     `json:"available_spaces"`
	MaxCapacity      int     `json:"max_capacity"`
	TotalRevenue     float64 `json:"total_revenue"`
	TodayRevenue     float64 `json:"today_revenue"`
	PendingIncidents int     `json:"pending_incidents"`
	UnpaidDebts      int     `json:"unpaid_debts"`
	Currency         string  `json:"currency"`
}

// GetOverview retrieves a cached analytics overview.
// Returns nil on a cache miss.
func (s *CacheStore) GetOverview(ctx context.Context, businessID string) (*CachedOverview, error) {
	key := overviewCachePrefix + businessID
	data, err := s.client.Get(ctx, key).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil // Cache miss
		}
		return nil, err
	}

	var overview CachedOverview
	if err := json.Unmarshal(data, &overview); err != nil {
		return nil, err
	}
	return &overview, nil
}

// SetOverview stores an analytics overview in cache.
func (s *CacheStore) SetOverview(ctx context.Context, businessID string, overview *CachedOverview) error {
	key := overviewCachePrefix + businessID
	data, err := json.Marshal(overview)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, key, data, OverviewCacheTTL).Err()
}

// InvalidateOverview removes a business's overview from cache.
func (s *CacheStore) InvalidateOverview(ctx context.Context, businessID string) error {
	key := overviewCachePrefix + businessID
	return s.client.Del(ctx, key).Err()
}
