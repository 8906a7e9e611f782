package service

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"

	"easypark/internal/domain"
	"easypark/internal/repository"
	"easypark/internal/repository/postgres"
)

// DebtService manages carried-over vehicle debts.
type DebtService struct {
	db              *sql.DB
	debtRepo        repository.DebtRepository
	settingsService *SettingsService
	notifications   *NotificationService
}

// NewDebtService creates a new DebtService.
func NewDebtService(
	db *sql.DB,
	debtRepo repository.DebtRepository,
	settingsService *SettingsService,
	notifications *NotificationService,
) *DebtService {
	return &DebtService{
		db:              db,
		debtRepo:        debtRepo,
		settingsService: settingsService,
		notifications:   notifications,
	}
}

// ListDebts retrieves the business's debts, optionally only unpaid ones.
func (s *DebtService) ListDebts(ctx context.Context, businessID string, unpaidOnly bool) ([]*domain.VehicleDebt, error) {
	return s.debtRepo.GetByBusiness(ctx, businessID, unpaidOnly)
}

// PayDebt settles a debt at the desk, without an exit: marks it paid
// and writes the matching accounting record in one transaction.
func (s *DebtService) PayDebt(ctx context.Context, businessID, debtID string) (*domain.AccountingRecord, error) {
	if debtID == "" {
		return nil, ErrInvalidDebtID
	}

	debt, err := s.debtRepo.GetByID(ctx, debtID)
	if err != nil {
		return nil, err
	}
	if debt.BusinessID != businessID {
		return nil, repository.ErrNotFound
	}
	if debt.Paid {
		return nil, ErrDebtAlreadyPaid
	}

	settings, err := s.settingsService.Get(ctx, businessID)
	if err != nil {
		return nil, err
	}

	now := time.Now()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}

	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	txDebtRepo := postgres.NewDebtRepositoryWithTx(tx)
	txAccountingRepo := postgres.NewAccountingRepositoryWithTx(tx)

	if err = txDebtRepo.MarkPaid(ctx, debt.ID); err != nil {
		return nil, err
	}

	rate, _ := settings.RateFor(debt.Category)
	record := &domain.AccountingRecord{
		ID:            uuid.New().String(),
		BusinessID:    businessID,
		Kind:          domain.AccountingSettlement,
		VehicleID:     debt.VehicleID,
		Plate:         debt.Plate,
		Category:      debt.Category,
		EntryAt:       debt.EntryAt,
		ExitAt:        now,
		HoursParked:   now.Sub(debt.EntryAt).Hours(),
		HoursToPay:    debt.RegularHours,
		RatePerHour:   rate,
		Amount:        debt.TotalDebt,
		NightCharge:   debt.NightCharge,
		DebtID:        debt.ID,
		Currency:      settings.Currency,
		OperationDate: now.Format("2006-01-02"),
		CreatedAt:     now,
	}

	if err = txAccountingRepo.Create(ctx, record); err != nil {
		return nil, err
	}

	if err = tx.Commit(); err != nil {
		return nil, err
	}

	if s.notifications != nil {
		_ = s.notifications.NotifyDebtPaid(ctx, debt)
	}

	return record, nil
}
