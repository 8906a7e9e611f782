package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"easypark/internal/domain"
	"easypark/internal/repository"
)

// VehicleService manages the vehicle registry: entries, lookups and
// the occupancy snapshot. Exits go through SettlementService.
type VehicleService struct {
	vehicleRepo     repository.VehicleRepository
	settingsService *SettingsService
	notifications   *NotificationService
}

// NewVehicleService creates a new VehicleService.
func NewVehicleService(
	vehicleRepo repository.VehicleRepository,
	settingsService *SettingsService,
	notifications *NotificationService,
) *VehicleService {
	return &VehicleService{
		vehicleRepo:     vehicleRepo,
		settingsService: settingsService,
		notifications:   notifications,
	}
}

// RegisterEntryRequest contains the input for registering a vehicle entry.
type RegisterEntryRequest struct {
	BusinessID string
	Plate      string
	Category   domain.VehicleCategory
}

// RegisterEntry admits a vehicle into the lot. Fails when the lot is
// at capacity or the plate is already inside.
func (s *VehicleService) RegisterEntry(ctx context.Context, req *RegisterEntryRequest) (*domain.Vehicle, error) {
	plate := NormalizePlate(req.Plate)
	if plate == "" {
		return nil, ErrInvalidPlate
	}
	if !domain.ValidCategory(req.Category) {
		return nil, ErrUnknownCategory
	}

	settings, err := s.settingsService.Get(ctx, req.BusinessID)
	if err != nil {
		return nil, err
	}

	inside, err := s.vehicleRepo.CountInside(ctx, req.BusinessID)
	if err != nil {
		return nil, err
	}
	if inside >= settings.MaxCapacity {
		return nil, ErrParkingFull
	}

	existing, err := s.vehicleRepo.GetInsideByPlate(ctx, req.BusinessID, plate)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrVehicleAlreadyInside
	}

	vehicle := &domain.Vehicle{
		ID:         uuid.New().String(),
		BusinessID: req.BusinessID,
		Plate:      plate,
		Category:   req.Category,
		Status:     domain.VehicleStatusInside,
		EntryAt:    time.Now(),
	}

	if err := s.vehicleRepo.Create(ctx, vehicle); err != nil {
		return nil, err
	}

	if s.notifications != nil && settings.MaxCapacity > 0 {
		occupied := inside + 1
		if float64(occupied)/float64(settings.MaxCapacity) >= 0.9 {
			_ = s.notifications.NotifyCapacityNearFull(ctx, req.BusinessID, occupied, settings.MaxCapacity)
		}
	}

	return vehicle, nil
}

// GetVehicle retrieves a vehicle owned by the business.
func (s *VehicleService) GetVehicle(ctx context.Context, businessID, vehicleID string) (*domain.Vehicle, error) {
	if vehicleID == "" {
		return nil, ErrInvalidVehicleID
	}

	vehicle, err := s.vehicleRepo.GetByID(ctx, vehicleID)
	if err != nil {
		return nil, err
	}
	if vehicle.BusinessID != businessID {
		return nil, repository.ErrNotFound
	}
	return vehicle, nil
}

// ListVehicles retrieves the business's vehicles, optionally filtered
// by status.
func (s *VehicleService) ListVehicles(ctx context.Context, businessID string, status domain.VehicleStatus) ([]*domain.Vehicle, error) {
	if status == domain.VehicleStatusInside {
		return s.vehicleRepo.GetInsideByBusiness(ctx, businessID)
	}

	vehicles, err := s.vehicleRepo.GetByBusiness(ctx, businessID)
	if err != nil {
		return nil, err
	}
	if status == "" {
		return vehicles, nil
	}

	filtered := make([]*domain.Vehicle, 0, len(vehicles))
	for _, v := range vehicles {
		if v.Status == status {
			filtered = append(filtered, v)
		}
	}
	return filtered, nil
}

// CapacitySnapshot describes current lot occupancy.
type CapacitySnapshot struct {
	VehiclesInside  int
	MaxCapacity     int
	AvailableSpaces int
	OccupancyRate   float64
	Full            bool
}

// Capacity computes the current occupancy snapshot for a business.
func (s *VehicleService) Capacity(ctx context.Context, businessID string) (*CapacitySnapshot, error) {
	settings, err := s.settingsService.Get(ctx, businessID)
	if err != nil {
		return nil, err
	}

	inside, err := s.vehicleRepo.CountInside(ctx, businessID)
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

	return &CapacitySnapshot{
		VehiclesInside:  inside,
		MaxCapacity:     settings.MaxCapacity,
		AvailableSpaces: available,
		OccupancyRate:   rate,
		Full:            inside >= settings.MaxCapacity,
	}, nil
}

// NormalizePlate uppercases a license plate and strips surrounding
// whitespace. Returns "" for blank input.
func NormalizePlate(plate string) string {
	return strings.ToUpper(strings.TrimSpace(plate))
}
