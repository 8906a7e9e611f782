package tests

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"easypark/internal/domain"
	"easypark/internal/service"
)

// ──────────────────────────────────────────────
// 5. VEHICLE ENTRY
// ──────────────────────────────────────────────

func newVehicleFixture() (*service.VehicleService, *MockVehicleRepository, *MockSettingsRepository) {
	vehicleRepo := NewMockVehicleRepository()
	settingsRepo := NewMockSettingsRepository()
	settingsRepo.AddSettings(demoSettings())
	settingsService := service.NewSettingsService(settingsRepo, nil)

	svc := service.NewVehicleService(vehicleRepo, settingsService, nil)
	return svc, vehicleRepo, settingsRepo
}

func TestRegisterEntry_CreatesInsideVehicle(t *testing.T) {
	t.Parallel()

	svc, vehicleRepo, _ := newVehicleFixture()

	vehicle, err := svc.RegisterEntry(context.Background(), &service.RegisterEntryRequest{
		BusinessID: "biz-1",
		Plate:      " abc-123 ",
		Category:   domain.CategoryCar,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if vehicle.Plate != "ABC-123" {
		t.Errorf("expected normalized plate ABC-123, got %q", vehicle.Plate)
	}
	if vehicle.Status != domain.VehicleStatusInside {
		t.Errorf("expected INSIDE status, got %s", vehicle.Status)
	}
	if vehicle.EntryAt.IsZero() {
		t.Error("expected entry timestamp to be set")
	}
	if vehicleRepo.CreateCallCount != 1 {
		t.Errorf("expected 1 create call, got %d", vehicleRepo.CreateCallCount)
	}
}

func TestRegisterEntry_RejectsDuplicateInsidePlate(t *testing.T) {
	t.Parallel()

	svc, vehicleRepo, _ := newVehicleFixture()
	vehicleRepo.AddVehicle(&domain.Vehicle{
		ID: "veh-1", BusinessID: "biz-1", Plate: "ABC-123",
		Category: domain.CategoryCar, Status: domain.VehicleStatusInside,
		EntryAt: time.Now().Add(-time.Hour),
	})

	_, err := svc.RegisterEntry(context.Background(), &service.RegisterEntryRequest{
		BusinessID: "biz-1",
		Plate:      "ABC-123",
		Category:   domain.CategoryCar,
	})
	if !errors.Is(err, service.ErrVehicleAlreadyInside) {
		t.Errorf("expected ErrVehicleAlreadyInside, got %v", err)
	}
}

func TestRegisterEntry_AllowsReentryAfterExit(t *testing.T) {
	t.Parallel()

	svc, vehicleRepo, _ := newVehicleFixture()
	vehicleRepo.AddVehicle(&domain.Vehicle{
		ID: "veh-1", BusinessID: "biz-1", Plate: "ABC-123",
		Category: domain.CategoryCar, Status: domain.VehicleStatusOut,
		EntryAt: time.Now().Add(-5 * time.Hour), ExitAt: time.Now().Add(-time.Hour),
	})

	if _, err := svc.RegisterEntry(context.Background(), &service.RegisterEntryRequest{
		BusinessID: "biz-1",
		Plate:      "ABC-123",
		Category:   domain.CategoryCar,
	}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestRegisterEntry_RejectsWhenFull(t *testing.T) {
	t.Parallel()

	svc, vehicleRepo, settingsRepo := newVehicleFixture()
	settings := demoSettings()
	settings.MaxCapacity = 2
	settingsRepo.AddSettings(settings)

	for i := 0; i < 2; i++ {
		vehicleRepo.AddVehicle(&domain.Vehicle{
			ID: fmt.Sprintf("veh-%d", i), BusinessID: "biz-1",
			Plate: fmt.Sprintf("FULL-%d", i), Category: domain.CategoryCar,
			Status: domain.VehicleStatusInside, EntryAt: time.Now(),
		})
	}

	_, err := svc.RegisterEntry(context.Background(), &service.RegisterEntryRequest{
		BusinessID: "biz-1",
		Plate:      "NEW-001",
		Category:   domain.CategoryCar,
	})
	if !errors.Is(err, service.ErrParkingFull) {
		t.Errorf("expected ErrParkingFull, got %v", err)
	}
}

func TestRegisterEntry_RejectsUnknownCategory(t *testing.T) {
	t.Parallel()

	svc, _, _ := newVehicleFixture()

	_, err := svc.RegisterEntry(context.Background(), &service.RegisterEntryRequest{
		BusinessID: "biz-1",
		Plate:      "ABC-123",
		Category:   "BICYCLE",
	})
	if !errors.Is(err, service.ErrUnknownCategory) {
		t.Errorf("expected ErrUnknownCategory, got %v", err)
	}
}

func TestRegisterEntry_RejectsBlankPlate(t *testing.T) {
	t.Parallel()

	svc, _, _ := newVehicleFixture()

	_, err := svc.RegisterEntry(context.Background(), &service.RegisterEntryRequest{
		BusinessID: "biz-1",
		Plate:      "   ",
		Category:   domain.CategoryCar,
	})
	if !errors.Is(err, service.ErrInvalidPlate) {
		t.Errorf("expected ErrInvalidPlate, got %v", err)
	}
}

func TestCapacity_Snapshot(t *testing.T) {
	t.Parallel()

	svc, vehicleRepo, settingsRepo := newVehicleFixture()
	settings := demoSettings()
	settings.MaxCapacity = 10
	settingsRepo.AddSettings(settings)

	for i := 0; i < 4; i++ {
		vehicleRepo.AddVehicle(&domain.Vehicle{
			ID: fmt.Sprintf("veh-%d", i), BusinessID: "biz-1",
			Plate: fmt.Sprintf("CAP-%d", i), Category: domain.CategoryCar,
			Status: domain.VehicleStatusInside, EntryAt: time.Now(),
		})
	}

	snapshot, err := svc.Capacity(context.Background(), "biz-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if snapshot.VehiclesInside != 4 {
		t.Errorf("expected 4 inside, got %d", snapshot.VehiclesInside)
	}
	if snapshot.AvailableSpaces != 6 {
		t.Errorf("expected 6 available, got %d", snapshot.AvailableSpaces)
	}
	if snapshot.OccupancyRate != 0.4 {
		t.Errorf("expected occupancy 0.4, got %v", snapshot.OccupancyRate)
	}
	if snapshot.Full {
		t.Error("expected lot not to be full")
	}
}
