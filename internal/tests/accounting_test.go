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
// 6. ACCOUNTING LEDGER
// ──────────────────────────────────────────────

func newAccountingFixture() (*service.AccountingService, *MockAccountingRepository) {
	accountingRepo := NewMockAccountingRepository()
	settingsRepo := NewMockSettingsRepository()
	settingsRepo.AddSettings(demoSettings())
	settingsService := service.NewSettingsService(settingsRepo, nil)

	return service.NewAccountingService(accountingRepo, settingsService), accountingRepo
}

func TestManualEntry_ExpenseStoredNegative(t *testing.T) {
	t.Parallel()

	svc, accountingRepo := newAccountingFixture()

	record, err := svc.CreateManualEntry(context.Background(), &service.ManualEntryRequest{
		BusinessID:  "biz-1",
		Kind:        domain.AccountingManualExpense,
		Amount:      50.0,
		Description: "broken barrier repair",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if record.Amount != -50.0 {
		t.Errorf("expected expense stored as -50.0, got %v", record.Amount)
	}
	if record.Currency != "PEN" {
		t.Errorf("expected business currency PEN, got %s", record.Currency)
	}
	if accountingRepo.CountRecords() != 1 {
		t.Errorf("expected 1 record, got %d", accountingRepo.CountRecords())
	}
}

func TestManualEntry_IncomeStoredPositive(t *testing.T) {
	t.Parallel()

	svc, _ := newAccountingFixture()

	record, err := svc.CreateManualEntry(context.Background(), &service.ManualEntryRequest{
		BusinessID: "biz-1",
		Kind:       domain.AccountingManualIncome,
		Amount:     30.0,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if record.Amount != 30.0 {
		t.Errorf("expected 30.0, got %v", record.Amount)
	}
}

func TestManualEntry_RejectsSettlementKind(t *testing.T) {
	t.Parallel()

	svc, _ := newAccountingFixture()

	_, err := svc.CreateManualEntry(context.Background(), &service.ManualEntryRequest{
		BusinessID: "biz-1",
		Kind:       domain.AccountingSettlement,
		Amount:     10.0,
	})
	if !errors.Is(err, service.ErrInvalidRecordKind) {
		t.Errorf("expected ErrInvalidRecordKind, got %v", err)
	}
}

func TestManualEntry_RejectsNonPositiveAmount(t *testing.T) {
	t.Parallel()

	svc, _ := newAccountingFixture()

	_, err := svc.CreateManualEntry(context.Background(), &service.ManualEntryRequest{
		BusinessID: "biz-1",
		Kind:       domain.AccountingManualIncome,
		Amount:     0,
	})
	if !errors.Is(err, service.ErrInvalidAmount) {
		t.Errorf("expected ErrInvalidAmount, got %v", err)
	}
}

func TestListRecords_DateFilters(t *testing.T) {
	t.Parallel()

	svc, accountingRepo := newAccountingFixture()
	for i, date := range []string{"2025-03-01", "2025-03-02", "2025-03-05"} {
		accountingRepo.AddRecord(&domain.AccountingRecord{
			ID:            string(rune('a' + i)),
			BusinessID:    "biz-1",
			Kind:          domain.AccountingManualIncome,
			Amount:        10.0,
			OperationDate: date,
			CreatedAt:     time.Now(),
		})
	}

	single, err := svc.ListRecords(context.Background(), "biz-1", service.ListFilter{Date: "2025-03-02"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(single) != 1 {
		t.Errorf("expected 1 record for the day, got %d", len(single))
	}

	ranged, err := svc.ListRecords(context.Background(), "biz-1", service.ListFilter{From: "2025-03-01", To: "2025-03-02"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(ranged) != 2 {
		t.Errorf("expected 2 records in range, got %d", len(ranged))
	}

	if _, err := svc.ListRecords(context.Background(), "biz-1", service.ListFilter{From: "2025-03-05", To: "2025-03-01"}); !errors.Is(err, service.ErrInvalidDateRange) {
		t.Errorf("expected ErrInvalidDateRange for inverted range, got %v", err)
	}

	if _, err := svc.ListRecords(context.Background(), "biz-1", service.ListFilter{Date: "not-a-date"}); !errors.Is(err, service.ErrInvalidDateRange) {
		t.Errorf("expected ErrInvalidDateRange for malformed date, got %v", err)
	}
}

func TestSummarize_AggregatesByCategory(t *testing.T) {
	t.Parallel()

	svc, accountingRepo := newAccountingFixture()
	accountingRepo.AddRecord(&domain.AccountingRecord{
		ID: "r1", BusinessID: "biz-1", Kind: domain.AccountingSettlement,
		Category: domain.CategoryCar, Amount: 12.0, HoursParked: 3.0,
		OperationDate: "2025-03-01", CreatedAt: time.Now(),
	})
	accountingRepo.AddRecord(&domain.AccountingRecord{
		ID: "r2", BusinessID: "biz-1", Kind: domain.AccountingSettlement,
		Category: domain.CategoryMotorcycle, Amount: 2.0, HoursParked: 1.0,
		OperationDate: "2025-03-01", CreatedAt: time.Now(),
	})

	summary, err := svc.Summarize(context.Background(), "biz-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if summary.TotalRevenue != 14.0 {
		t.Errorf("expected total 14.0, got %v", summary.TotalRevenue)
	}
	if summary.CarTruckRevenue != 12.0 {
		t.Errorf("expected car/truck revenue 12.0, got %v", summary.CarTruckRevenue)
	}
	if summary.MotorcycleRevenue != 2.0 {
		t.Errorf("expected motorcycle revenue 2.0, got %v", summary.MotorcycleRevenue)
	}
	if summary.AverageStayHours != 2.0 {
		t.Errorf("expected average stay 2.0, got %v", summary.AverageStayHours)
	}
	if len(summary.RevenueByDay) != 1 {
		t.Errorf("expected 1 revenue bucket, got %d", len(summary.RevenueByDay))
	}
}
