package service

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"

	"easypark/internal/domain"
	"easypark/internal/redis"
	"easypark/internal/repository"
	"easypark/internal/repository/postgres"
)

// dayLockTTL bounds how long a start/close transition may hold the
// business's day lock before it expires on its own.
const dayLockTTL = 30 * time.Second

// OperationsService manages the daily open/close lifecycle and the
// debts it produces.
type OperationsService struct {
	db              *sql.DB
	operationsRepo  repository.OperationsRepository
	debtRepo        repository.DebtRepository
	vehicleRepo     repository.VehicleRepository
	settingsService *SettingsService
	lockStore       redis.LockStoreInterface
	notifications   *NotificationService
}

// NewOperationsService creates a new OperationsService.
func NewOperationsService(
	db *sql.DB,
	operationsRepo repository.OperationsRepository,
	debtRepo repository.DebtRepository,
	vehicleRepo repository.VehicleRepository,
	settingsService *SettingsService,
	lockStore redis.LockStoreInterface,
	notifications *NotificationService,
) *OperationsService {
	return &OperationsService{
		db:              db,
		operationsRepo:  operationsRepo,
		debtRepo:        debtRepo,
		vehicleRepo:     vehicleRepo,
		settingsService: settingsService,
		lockStore:       lockStore,
		notifications:   notifications,
	}
}

// StartDay opens the business day. Fails if a day is already open.
// If today's day was already closed once, it is reopened rather than
// duplicated, preserving one record per business per date.
func (s *OperationsService) StartDay(ctx context.Context, businessID string, initialCash float64) (*domain.OperationsDay, error) {
	if initialCash < 0 {
		return nil, ErrInvalidAmount
	}

	if s.lockStore != nil {
		acquired, err := s.lockStore.AcquireDayLock(ctx, businessID, dayLockTTL)
		if err != nil {
			return nil, err
		}
		if !acquired {
			return nil, ErrOperationLocked
		}
		defer func() {
			_ = s.lockStore.ReleaseDayLock(ctx, businessID)
		}()
	}

	open, err := s.operationsRepo.GetOpenByBusiness(ctx, businessID)
	if err != nil {
		return nil, err
	}
	if open != nil {
		return nil, ErrOperationAlreadyOpen
	}

	now := time.Now()
	today := now.Format("2006-01-02")

	existing, err := s.operationsRepo.GetByBusinessAndDate(ctx, businessID, today)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		// Same-date reopen keeps one record per date.
		existing.Status = domain.OperationsDayOpen
		existing.OpenedAt = now
		existing.ClosedAt = time.Time{}
		existing.InitialCash = initialCash
		if err := s.operationsRepo.Update(ctx, existing); err != nil {
			return nil, err
		}
		return existing, nil
	}

	day := &domain.OperationsDay{
		ID:          uuid.New().String(),
		BusinessID:  businessID,
		Date:        today,
		Status:      domain.OperationsDayOpen,
		OpenedAt:    now,
		InitialCash: initialCash,
	}

	if err := s.operationsRepo.Create(ctx, day); err != nil {
		return nil, err
	}

	return day, nil
}

// CloseDayResponse contains the closed day and every debt the close
// created or accumulated.
type CloseDayResponse struct {
	Day   *domain.OperationsDay
	Debts []*domain.VehicleDebt
}

// CloseDay closes the open business day. Every vehicle still INSIDE is
// billed up to the close instant and its debt record is upserted: the
// regular portion is recomputed from the entry time, and the flat night
// surcharge accumulates once per close. Vehicles stay INSIDE; they
// settle their accumulated debt on exit or at the debt desk.
func (s *OperationsService) CloseDay(ctx context.Context, businessID string, finalCash float64, notes string) (*CloseDayResponse, error) {
	if finalCash < 0 {
		return nil, ErrInvalidAmount
	}

	if s.lockStore != nil {
		acquired, err := s.lockStore.AcquireDayLock(ctx, businessID, dayLockTTL)
		if err != nil {
			return nil, err
		}
		if !acquired {
			return nil, ErrOperationLocked
		}
		defer func() {
			_ = s.lockStore.ReleaseDayLock(ctx, businessID)
		}()
	}

	day, err := s.operationsRepo.GetOpenByBusiness(ctx, businessID)
	if err != nil {
		return nil, err
	}
	if day == nil {
		return nil, ErrOperationNotOpen
	}

	settings, err := s.settingsService.Get(ctx, businessID)
	if err != nil {
		return nil, err
	}

	inside, err := s.vehicleRepo.GetInsideByBusiness(ctx, businessID)
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

	txOperationsRepo := postgres.NewOperationsRepositoryWithTx(tx)
	txDebtRepo := postgres.NewDebtRepositoryWithTx(tx)

	debts := make([]*domain.VehicleDebt, 0, len(inside))
	for _, vehicle := range inside {
		var settlement *domain.SettlementResult
		settlement, err = CalculateSettlement(vehicle, settings, now)
		if err != nil {
			return nil, err
		}

		var existing *domain.VehicleDebt
		existing, err = txDebtRepo.GetByVehicle(ctx, vehicle.ID)
		if err != nil {
			return nil, err
		}

		debt := &domain.VehicleDebt{
			ID:            uuid.New().String(),
			BusinessID:    businessID,
			VehicleID:     vehicle.ID,
			Plate:         vehicle.Plate,
			Category:      vehicle.Category,
			EntryAt:       vehicle.EntryAt,
			RegularHours:  settlement.BillableHours,
			RegularAmount: settlement.Amount,
			NightCharge:   settings.NightRate,
			UpdatedAt:     now,
		}
		if existing != nil {
			// One debt row per vehicle: reuse its ID whether or not it was
			// paid, so the upsert and the returned debt name the same row.
			debt.ID = existing.ID
			if !existing.Paid {
				// The regular portion is recomputed from entry, so only the
				// surcharge carries forward between closes. A paid row is a
				// fresh start instead.
				debt.NightCharge = existing.NightCharge + settings.NightRate
			}
		}
		debt.TotalDebt = debt.RegularAmount + debt.NightCharge

		if err = txDebtRepo.Upsert(ctx, debt); err != nil {
			return nil, err
		}
		debts = append(debts, debt)
	}

	day.Status = domain.OperationsDayClosed
	day.ClosedAt = now
	day.FinalCash = finalCash
	day.Notes = notes

	if err = txOperationsRepo.Update(ctx, day); err != nil {
		return nil, err
	}

	if err = tx.Commit(); err != nil {
		return nil, err
	}

	if s.notifications != nil {
		_ = s.notifications.NotifyDayClosed(ctx, day, len(debts))
	}

	return &CloseDayResponse{Day: day, Debts: debts}, nil
}

// CurrentDay retrieves the currently open day, or nil when none is open.
func (s *OperationsService) CurrentDay(ctx context.Context, businessID string) (*domain.OperationsDay, error) {
	return s.operationsRepo.GetOpenByBusiness(ctx, businessID)
}

// GetDay retrieves an operations day owned by the business.
func (s *OperationsService) GetDay(ctx context.Context, businessID, dayID string) (*domain.OperationsDay, error) {
	if dayID == "" {
		return nil, ErrInvalidOperationID
	}

	day, err := s.operationsRepo.GetByID(ctx, dayID)
	if err != nil {
		return nil, err
	}
	if day.BusinessID != businessID {
		return nil, repository.ErrNotFound
	}
	return day, nil
}

// History retrieves the business's day history, newest first.
func (s *OperationsService) History(ctx context.Context, businessID string) ([]*domain.OperationsDay, error) {
	return s.operationsRepo.GetByBusiness(ctx, businessID)
}

// ListOpenDays retrieves every open day across businesses. The
// auto-close scheduler uses this to find days past closing time.
func (s *OperationsService) ListOpenDays(ctx context.Context) ([]*domain.OperationsDay, error) {
	return s.operationsRepo.ListOpen(ctx)
}
