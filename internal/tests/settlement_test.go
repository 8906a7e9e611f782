package tests

import (
	"errors"
	"testing"
	"time"

	"easypark/internal/domain"
	"easypark/internal/service"
)

// ──────────────────────────────────────────────
// 1. FEE CALCULATION
// ──────────────────────────────────────────────

func demoSettings() *domain.ParkingSettings {
	return &domain.ParkingSettings{
		BusinessID:     "biz-1",
		MotorcycleRate: 2.0,
		CarTruckRate:   4.0,
		NightRate:      20.0,
		OpeningTime:    "08:00",
		ClosingTime:    "22:00",
		MaxCapacity:    50,
		Currency:       "PEN",
	}
}

func insideVehicle(category domain.VehicleCategory, entryAt time.Time) *domain.Vehicle {
	return &domain.Vehicle{
		ID:         "veh-1",
		BusinessID: "biz-1",
		Plate:      "ABC-123",
		Category:   category,
		Status:     domain.VehicleStatusInside,
		EntryAt:    entryAt,
	}
}

func TestSettlement_CarParkedTwoHoursFiveMinutes(t *testing.T) {
	t.Parallel()

	entry := time.Date(2025, 1, 1, 8, 0, 0, 0, time.UTC)
	exit := time.Date(2025, 1, 1, 10, 5, 0, 0, time.UTC)

	result, err := service.CalculateSettlement(insideVehicle(domain.CategoryCar, entry), demoSettings(), exit)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.BillableHours != 3 {
		t.Errorf("expected 3 billable hours, got %d", result.BillableHours)
	}
	if result.Amount != 12.0 {
		t.Errorf("expected amount 12.0, got %v", result.Amount)
	}
	if result.ElapsedLabel != "2h 5min" {
		t.Errorf("expected label %q, got %q", "2h 5min", result.ElapsedLabel)
	}
	if result.CurrencySymbol != "S/" {
		t.Errorf("expected currency symbol S/, got %q", result.CurrencySymbol)
	}
}

func TestSettlement_MotorcycleUnderOneHourChargesMinimum(t *testing.T) {
	t.Parallel()

	entry := time.Date(2025, 1, 1, 8, 0, 0, 0, time.UTC)
	exit := time.Date(2025, 1, 1, 8, 30, 0, 0, time.UTC)

	result, err := service.CalculateSettlement(insideVehicle(domain.CategoryMotorcycle, entry), demoSettings(), exit)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.BillableHours != 1 {
		t.Errorf("expected minimum 1 billable hour, got %d", result.BillableHours)
	}
	if result.Amount != 2.0 {
		t.Errorf("expected amount 2.0, got %v", result.Amount)
	}
	if result.ElapsedLabel != "30min" {
		t.Errorf("expected label %q, got %q", "30min", result.ElapsedLabel)
	}
}

func TestSettlement_PartialHoursRoundUp(t *testing.T) {
	t.Parallel()

	entry := time.Date(2025, 1, 1, 8, 0, 0, 0, time.UTC)
	cases := []struct {
		minutes  int
		billable int
	}{
		{1, 1},
		{59, 1},
		{60, 1},
		{61, 2},
		{120, 2},
		{121, 3},
		{601, 11},
	}

	for _, tc := range cases {
		exit := entry.Add(time.Duration(tc.minutes) * time.Minute)
		result, err := service.CalculateSettlement(insideVehicle(domain.CategoryCar, entry), demoSettings(), exit)
		if err != nil {
			t.Fatalf("unexpected error at %d minutes: %v", tc.minutes, err)
		}
		if result.BillableHours != tc.billable {
			t.Errorf("%d minutes: expected %d billable hours, got %d", tc.minutes, tc.billable, result.BillableHours)
		}
		if result.Amount != float64(tc.billable)*4.0 {
			t.Errorf("%d minutes: expected amount %v, got %v", tc.minutes, float64(tc.billable)*4.0, result.Amount)
		}
	}
}

func TestSettlement_TruckSharesCarRate(t *testing.T) {
	t.Parallel()

	entry := time.Date(2025, 1, 1, 8, 0, 0, 0, time.UTC)
	exit := entry.Add(90 * time.Minute)

	car, err := service.CalculateSettlement(insideVehicle(domain.CategoryCar, entry), demoSettings(), exit)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	truck, err := service.CalculateSettlement(insideVehicle(domain.CategoryTruck, entry), demoSettings(), exit)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if car.Amount != truck.Amount {
		t.Errorf("expected car and truck to share a rate, got %v vs %v", car.Amount, truck.Amount)
	}
	if truck.RatePerHour != 4.0 {
		t.Errorf("expected truck rate 4.0, got %v", truck.RatePerHour)
	}
}

func TestSettlement_ExitedVehicleRejected(t *testing.T) {
	t.Parallel()

	entry := time.Date(2025, 1, 1, 8, 0, 0, 0, time.UTC)
	vehicle := insideVehicle(domain.CategoryCar, entry)
	vehicle.Status = domain.VehicleStatusOut

	_, err := service.CalculateSettlement(vehicle, demoSettings(), entry.Add(time.Hour))
	if !errors.Is(err, service.ErrVehicleNotInside) {
		t.Errorf("expected ErrVehicleNotInside, got %v", err)
	}
}

func TestSettlement_FutureEntryRejected(t *testing.T) {
	t.Parallel()

	entry := time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC)
	now := time.Date(2025, 1, 1, 9, 0, 0, 0, time.UTC)

	_, err := service.CalculateSettlement(insideVehicle(domain.CategoryCar, entry), demoSettings(), now)
	if !errors.Is(err, service.ErrEntryInFuture) {
		t.Errorf("expected ErrEntryInFuture, got %v", err)
	}
}

func TestSettlement_UnknownCategoryRejected(t *testing.T) {
	t.Parallel()

	entry := time.Date(2025, 1, 1, 8, 0, 0, 0, time.UTC)
	vehicle := insideVehicle("BICYCLE", entry)

	_, err := service.CalculateSettlement(vehicle, demoSettings(), entry.Add(time.Hour))
	if !errors.Is(err, service.ErrUnknownCategory) {
		t.Errorf("expected ErrUnknownCategory, got %v", err)
	}
}

func TestFormatElapsed(t *testing.T) {
	t.Parallel()

	cases := []struct {
		hours float64
		want  string
	}{
		{0.75, "45min"},
		{2.0, "2h"},
		{2.25, "2h 15min"},
		{1.5, "1h 30min"},
	}

	for _, tc := range cases {
		if got := service.FormatElapsed(tc.hours); got != tc.want {
			t.Errorf("FormatElapsed(%v) = %q, want %q", tc.hours, got, tc.want)
		}
	}
}

func TestCurrencySymbols(t *testing.T) {
	t.Parallel()

	cases := map[string]string{
		"PEN": "S/",
		"USD": "$",
		"EUR": "€",
		"CLP": "CLP",
	}

	for code, want := range cases {
		if got := domain.CurrencySymbol(code); got != want {
			t.Errorf("CurrencySymbol(%q) = %q, want %q", code, got, want)
		}
	}
}
