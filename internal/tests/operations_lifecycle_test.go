package tests

import (
	"context"
	"errors"
	"testing"
	"time"

	"easypark/internal/domain"
	"easypark/internal/service"
)

// ──────────────────────────────────────────────
// 2. DAY LIFECYCLE
// ──────────────────────────────────────────────

func newOperationsFixture() (*service.OperationsService, *MockOperationsRepository, *MockDebtRepository, *MockVehicleRepository, *MockLockStore) {
	operationsRepo := NewMockOperationsRepository()
	debtRepo := NewMockDebtRepository()
	vehicleRepo := NewMockVehicleRepository()
	lockStore := NewMockLockStore()

	settingsRepo := NewMockSettingsRepository()
	settingsRepo.AddSettings(demoSettings())
	settingsService := service.NewSettingsService(settingsRepo, nil)

	// nil db: tests below stay on paths that never reach a transaction.
	svc := service.NewOperationsService(nil, operationsRepo, debtRepo, vehicleRepo, settingsService, lockStore, nil)
	return svc, operationsRepo, debtRepo, vehicleRepo, lockStore
}

func TestStartDay_CreatesOpenDay(t *testing.T) {
	t.Parallel()

	svc, operationsRepo, _, _, _ := newOperationsFixture()

	day, err := svc.StartDay(context.Background(), "biz-1", 100.0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if day.Status != domain.OperationsDayOpen {
		t.Errorf("expected OPEN status, got %s", day.Status)
	}
	if day.Date != time.Now().Format("2006-01-02") {
		t.Errorf("expected today's date, got %s", day.Date)
	}
	if day.InitialCash != 100.0 {
		t.Errorf("expected initial cash 100.0, got %v", day.InitialCash)
	}
	if operationsRepo.CreateCallCount != 1 {
		t.Errorf("expected 1 create call, got %d", operationsRepo.CreateCallCount)
	}
}

func TestStartDay_FailsWhenAlreadyOpen(t *testing.T) {
	t.Parallel()

	svc, operationsRepo, _, _, _ := newOperationsFixture()
	operationsRepo.AddDay(&domain.OperationsDay{
		ID:         "day-1",
		BusinessID: "biz-1",
		Date:       time.Now().Format("2006-01-02"),
		Status:     domain.OperationsDayOpen,
		OpenedAt:   time.Now(),
	})

	_, err := svc.StartDay(context.Background(), "biz-1", 50.0)
	if !errors.Is(err, service.ErrOperationAlreadyOpen) {
		t.Errorf("expected ErrOperationAlreadyOpen, got %v", err)
	}
}

func TestStartDay_ReopensSameDateInsteadOfDuplicating(t *testing.T) {
	t.Parallel()

	svc, operationsRepo, _, _, _ := newOperationsFixture()
	today := time.Now().Format("2006-01-02")
	operationsRepo.AddDay(&domain.OperationsDay{
		ID:         "day-1",
		BusinessID: "biz-1",
		Date:       today,
		Status:     domain.OperationsDayClosed,
		OpenedAt:   time.Now().Add(-8 * time.Hour),
		ClosedAt:   time.Now().Add(-time.Hour),
	})

	day, err := svc.StartDay(context.Background(), "biz-1", 75.0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if day.ID != "day-1" {
		t.Errorf("expected the existing day to be reopened, got new ID %s", day.ID)
	}
	if day.Status != domain.OperationsDayOpen {
		t.Errorf("expected OPEN status after reopen, got %s", day.Status)
	}
	if !day.ClosedAt.IsZero() {
		t.Error("expected closed timestamp to be cleared on reopen")
	}
	if operationsRepo.CreateCallCount != 0 {
		t.Errorf("expected no create call on reopen, got %d", operationsRepo.CreateCallCount)
	}
}

func TestStartDay_RejectsNegativeCash(t *testing.T) {
	t.Parallel()

	svc, _, _, _, _ := newOperationsFixture()

	_, err := svc.StartDay(context.Background(), "biz-1", -10.0)
	if !errors.Is(err, service.ErrInvalidAmount) {
		t.Errorf("expected ErrInvalidAmount, got %v", err)
	}
}

func TestStartDay_FailsWhenLockHeld(t *testing.T) {
	t.Parallel()

	svc, _, _, _, lockStore := newOperationsFixture()
	lockStore.Hold("biz-1")

	_, err := svc.StartDay(context.Background(), "biz-1", 50.0)
	if !errors.Is(err, service.ErrOperationLocked) {
		t.Errorf("expected ErrOperationLocked, got %v", err)
	}
}

func TestStartDay_ReleasesLockOnSuccess(t *testing.T) {
	t.Parallel()

	svc, _, _, _, lockStore := newOperationsFixture()

	if _, err := svc.StartDay(context.Background(), "biz-1", 50.0); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	acquired, err := lockStore.AcquireDayLock(context.Background(), "biz-1", time.Second)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !acquired {
		t.Error("expected lock to be released after start completed")
	}
}

func TestCloseDay_FailsWhenNotOpen(t *testing.T) {
	t.Parallel()

	svc, _, _, _, _ := newOperationsFixture()

	_, err := svc.CloseDay(context.Background(), "biz-1", 200.0, "")
	if !errors.Is(err, service.ErrOperationNotOpen) {
		t.Errorf("expected ErrOperationNotOpen, got %v", err)
	}
}

func TestCloseDay_FailsWhenLockHeld(t *testing.T) {
	t.Parallel()

	svc, operationsRepo, _, _, lockStore := newOperationsFixture()
	operationsRepo.AddDay(&domain.OperationsDay{
		ID:         "day-1",
		BusinessID: "biz-1",
		Date:       time.Now().Format("2006-01-02"),
		Status:     domain.OperationsDayOpen,
		OpenedAt:   time.Now(),
	})
	lockStore.Hold("biz-1")

	_, err := svc.CloseDay(context.Background(), "biz-1", 200.0, "")
	if !errors.Is(err, service.ErrOperationLocked) {
		t.Errorf("expected ErrOperationLocked, got %v", err)
	}
}
