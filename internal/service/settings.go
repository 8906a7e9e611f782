package service

import (
	"context"
	"log"
	"regexp"

	"easypark/internal/domain"
	"easypark/internal/redis"
	"easypark/internal/repository"
)

var timeOfDayRe = regexp.MustCompile(`^([01]\d|2[0-3]):[0-5]\d$`)

// DefaultSettings returns the settings a freshly registered business
// starts with.
func DefaultSettings(businessID string) *domain.ParkingSettings {
	return &domain.ParkingSettings{
		BusinessID:     businessID,
		MotorcycleRate: 2.0,
		CarTruckRate:   4.0,
		NightRate:      20.0,
		OpeningTime:    "08:00",
		ClosingTime:    "22:00",
		MaxCapacity:    50,
		Currency:       "PEN",
	}
}

// SettingsService manages per-business parking settings with a Redis
// read-through cache.
type SettingsService struct {
	settingsRepo repository.SettingsRepository
	cache        redis.SettingsCache
}

// NewSettingsService creates a new SettingsService.
func NewSettingsService(settingsRepo repository.SettingsRepository, cache redis.SettingsCache) *SettingsService {
	return &SettingsService{
		settingsRepo: settingsRepo,
		cache:        cache,
	}
}

// Get retrieves the settings for a business, from cache when possible.
func (s *SettingsService) Get(ctx context.Context, businessID string) (*domain.ParkingSettings, error) {
	if s.cache != nil {
		cached, err := s.cache.GetSettings(ctx, businessID)
		if err != nil {
			log.Printf("settings cache read failed for business %s: %v", businessID, err)
		} else if cached != nil {
			return cached, nil
		}
	}

	settings, err := s.settingsRepo.GetByBusiness(ctx, businessID)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.SetSettings(ctx, settings); err != nil {
			log.Printf("settings cache write failed for business %s: %v", businessID, err)
		}
	}

	return settings, nil
}

// Update validates and replaces the settings for a business, then
// drops the cache entry.
func (s *SettingsService) Update(ctx context.Context, settings *domain.ParkingSettings) (*domain.ParkingSettings, error) {
	if err := validateSettings(settings); err != nil {
		return nil, err
	}

	if err := s.settingsRepo.Save(ctx, settings); err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.InvalidateSettings(ctx, settings.BusinessID); err != nil {
			log.Printf("settings cache invalidation failed for business %s: %v", settings.BusinessID, err)
		}
	}

	return settings, nil
}

func validateSettings(settings *domain.ParkingSettings) error {
	if settings.BusinessID == "" {
		return ErrInvalidSettings
	}
	if settings.MotorcycleRate <= 0 || settings.CarTruckRate <= 0 {
		return ErrInvalidSettings
	}
	if settings.NightRate < 0 {
		return ErrInvalidSettings
	}
	if settings.MaxCapacity <= 0 {
		return ErrInvalidSettings
	}
	if !timeOfDayRe.MatchString(settings.OpeningTime) || !timeOfDayRe.MatchString(settings.ClosingTime) {
		return ErrInvalidSettings
	}
	if settings.Currency == "" {
		return ErrInvalidSettings
	}
	return nil
}
