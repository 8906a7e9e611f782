package service

import (
	"context"
	"log"
	"time"

	"easypark/internal/redis"
	"easypark/internal/repository"
)

// AnalyticsService computes the dashboard overview from the registries,
// with a short-lived Redis cache in front.
type AnalyticsService struct {
	vehicleRepo     repository.VehicleRepository
	accountingRepo  repository.AccountingRepository
	incidentRepo    repository.IncidentRepository
	debtRepo        repository.DebtRepository
	settingsService *SettingsService
	cache           redis.OverviewCache
}

// NewAnalyticsService creates a new AnalyticsService.
func NewAnalyticsService(
	vehicleRepo repository.VehicleRepository,
	accountingRepo repository.AccountingRepository,
	incidentRepo repository.IncidentRepository,
	debtRepo repository.DebtRepository,
	settingsService *SettingsService,
	cache redis.OverviewCache,
) *AnalyticsService {
	return &AnalyticsService{
		vehicleRepo:     vehicleRepo,
		accountingRepo:  accountingRepo,
		incidentRepo:    incidentRepo,
		debtRepo:        debtRepo,
		settingsService: settingsService,
		cache:           cache,
	}
}

// Overview computes the business's dashboard snapshot. Cached copies
// may lag by up to the cache TTL.
func (s *AnalyticsService) Overview(ctx context.Context, businessID string) (*redis.CachedOverview, error) {
	if s.cache != nil {
		cached, err := s.cache.GetOverview(ctx, businessID)
		if err != nil {
			log.Printf("overview cache read failed for business %s: %v", businessID, err)
		} else if cached != nil {
			return cached, nil
		}
	}

	settings, err := s.settingsService.Get(ctx, businessID)
	if err != nil {
		return nil, err
	}

	inside, err := s.vehicleRepo.CountInside(ctx, businessID)
	if err != nil {
		return nil, err
	}

	summary, err := s.accountingRepo.Summarize(ctx, businessID)
	if err != nil {
		return nil, err
	}

	today := time.Now().Format("2006-01-02")
	todayRevenue, err := s.accountingRepo.RevenueForDate(ctx, businessID, today)
	if err != nil {
		return nil, err
	}

	pendingIncidents, err := s.incidentRepo.CountPending(ctx, businessID)
	if err != nil {
		return nil, err
	}

	unpaid, err := s.debtRepo.GetByBusiness(ctx, businessID, true)
	if err != nil {
		return nil, err
	}

	available := settings.MaxCapacity - inside
	if available < 0 {
		available = 0
	}

	var rate float64
	if settings.MaxCapacity > 0 {
		rate = float64(inside) / float64(settings.MaxCapacity)
	}

	overview := &redis.CachedOverview{
		OccupancyRate:    rate,
		VehiclesInside:   inside,
		AvailableSpaces:  available,
		MaxCapacity:      settings.MaxCapacity,
		TotalRevenue:     summary.TotalRevenue,
		TodayRevenue:     todayRevenue,
		PendingIncidents: pendingIncidents,
		UnpaidDebts:      len(unpaid),
		Currency:         settings.Currency,
	}

	if s.cache != nil {
		if err := s.cache.SetOverview(ctx, businessID, overview); err != nil {
			log.Printf("overview cache write failed for business %s: %v", businessID, err)
		}
	}

	return overview, nil
}
