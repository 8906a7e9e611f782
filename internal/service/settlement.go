package service

import (
	"context"
	"database/sql"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"

	"easypark/internal/domain"
	"easypark/internal/repository"
	"easypark/internal/repository/postgres"
)

// CalculateSettlement computes the amount owed for a vehicle's stay.
// Pure function of its three inputs: the minimum charge is one hour and
// partial hours always round up. The night surcharge is not part of the
// exit path; it accrues only on day close (see OperationsService).
func CalculateSettlement(vehicle *domain.Vehicle, settings *domain.ParkingSettings, now time.Time) (*domain.SettlementResult, error) {
	if vehicle.Status != domain.VehicleStatusInside {
		return nil, ErrVehicleNotInside
	}
	if vehicle.EntryAt.After(now) {
		return nil, ErrEntryInFuture
	}

	rate, ok := settings.RateFor(vehicle.Category)
	if !ok {
		return nil, ErrUnknownCategory
	}

	elapsed := now.Sub(vehicle.EntryAt).Hours()
	billable := int(math.Ceil(elapsed))
	if billable < 1 {
		billable = 1
	}

	return &domain.SettlementResult{
		VehicleID:      vehicle.ID,
		Plate:          vehicle.Plate,
		Category:       vehicle.Category,
		EntryAt:        vehicle.EntryAt,
		ExitAt:         now,
		ElapsedHours:   elapsed,
		ElapsedLabel:   FormatElapsed(elapsed),
		BillableHours:  billable,
		RatePerHour:    rate,
		Amount:         float64(billable) * rate,
		Currency:       settings.Currency,
		CurrencySymbol: domain.CurrencySymbol(settings.Currency),
	}, nil
}

// FormatElapsed renders a fractional hour count as a display string
// such as "2h 15min". Derived from total elapsed minutes, not from
// billable hours.
func FormatElapsed(hours float64) string {
	totalMinutes := int(math.Floor(hours * 60))
	h := totalMinutes / 60
	min := totalMinutes % 60

	switch {
	case h == 0:
		return fmt.Sprintf("%dmin", min)
	case min == 0:
		return fmt.Sprintf("%dh", h)
	default:
		return fmt.Sprintf("%dh %dmin", h, min)
	}
}

// SettlementService handles the vehicle exit flow: previewing the fee
// and confirming the exit.
type SettlementService struct {
	db              *sql.DB
	vehicleRepo     repository.VehicleRepository
	debtRepo        repository.DebtRepository
	accountingRepo  repository.AccountingRepository
	settingsService *SettingsService
	notifications   *NotificationService
}

// NewSettlementService creates a new SettlementService.
func NewSettlementService(
	db *sql.DB,
	vehicleRepo repository.VehicleRepository,
	debtRepo repository.DebtRepository,
	accountingRepo repository.AccountingRepository,
	settingsService *SettingsService,
	notifications *NotificationService,
) *SettlementService {
	return &SettlementService{
		db:              db,
		vehicleRepo:     vehicleRepo,
		debtRepo:        debtRepo,
		accountingRepo:  accountingRepo,
		settingsService: settingsService,
		notifications:   notifications,
	}
}

// PreviewExit computes the settlement for a vehicle without side
// effects. Operators show this to the customer before confirming.
func (s *SettlementService) PreviewExit(ctx context.Context, businessID, vehicleID string) (*domain.SettlementResult, error) {
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

	settings, err := s.settingsService.Get(ctx, businessID)
	if err != nil {
		return nil, err
	}

	return CalculateSettlement(vehicle, settings, time.Now())
}

// ConfirmExitResponse contains the result of confirming an exit.
type ConfirmExitResponse struct {
	Settlement  *domain.SettlementResult
	Record      *domain.AccountingRecord
	SettledDebt *domain.VehicleDebt // Set when an outstanding debt was folded in
}

// ConfirmExit settles a vehicle's stay: marks the vehicle OUT, writes
// the accounting record and, when the vehicle carried a debt from
// earlier day closes, folds the night surcharge in and marks the debt
// paid. Everything runs inside one transaction.
func (s *SettlementService) ConfirmExit(ctx context.Context, businessID, vehicleID string) (*ConfirmExitResponse, error) {
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
	if vehicle.Status != domain.VehicleStatusInside {
		return nil, ErrVehicleNotInside
	}

	settings, err := s.settingsService.Get(ctx, businessID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	settlement, err := CalculateSettlement(vehicle, settings, now)
	if err != nil {
		return nil, err
	}

	debt, err := s.debtRepo.GetUnpaidByVehicle(ctx, vehicle.ID)
	if err != nil {
		return nil, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}

	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	txVehicleRepo := postgres.NewVehicleRepositoryWithTx(tx)
	txDebtRepo := postgres.NewDebtRepositoryWithTx(tx)
	txAccountingRepo := postgres.NewAccountingRepositoryWithTx(tx)

	vehicle.Status = domain.VehicleStatusOut
	vehicle.ExitAt = now
	if err = txVehicleRepo.Update(ctx, vehicle); err != nil {
		return nil, err
	}

	record := &domain.AccountingRecord{
		ID:            uuid.New().String(),
		BusinessID:    businessID,
		Kind:          domain.AccountingSettlement,
		VehicleID:     vehicle.ID,
		Plate:         vehicle.Plate,
		Category:      vehicle.Category,
		EntryAt:       vehicle.EntryAt,
		ExitAt:        now,
		HoursParked:   settlement.ElapsedHours,
		HoursToPay:    settlement.BillableHours,
		RatePerHour:   settlement.RatePerHour,
		Amount:        settlement.Amount,
		Currency:      settings.Currency,
		OperationDate: now.Format("2006-01-02"),
		CreatedAt:     now,
	}

	if debt != nil {
		// The regular portion of the debt is subsumed by the settlement,
		// which is recomputed from the original entry time. Only the
		// accumulated night surcharge is added on top.
		record.NightCharge = debt.NightCharge
		record.Amount += debt.NightCharge
		record.DebtID = debt.ID

		if err = txDebtRepo.MarkPaid(ctx, debt.ID); err != nil {
			return nil, err
		}
	}

	if err = txAccountingRepo.Create(ctx, record); err != nil {
		return nil, err
	}

	if err = tx.Commit(); err != nil {
		return nil, err
	}

	if s.notifications != nil {
		_ = s.notifications.NotifyVehicleExited(ctx, vehicle, record)
	}

	return &ConfirmExitResponse{
		Settlement:  settlement,
		Record:      record,
		SettledDebt: debt,
	}, nil
}
