package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"easypark/internal/domain"
	"easypark/internal/repository"
)

// AccountingService manages the append-only ledger and its aggregates.
type AccountingService struct {
	accountingRepo  repository.AccountingRepository
	settingsService *SettingsService
}

// NewAccountingService creates a new AccountingService.
func NewAccountingService(accountingRepo repository.AccountingRepository, settingsService *SettingsService) *AccountingService {
	return &AccountingService{
		accountingRepo:  accountingRepo,
		settingsService: settingsService,
	}
}

// ManualEntryRequest contains the input for a manual income or expense
// record.
type ManualEntryRequest struct {
	BusinessID  string
	Kind        domain.AccountingKind
	Amount      float64
	Description string
}

// CreateManualEntry appends a manual income or expense record.
func (s *AccountingService) CreateManualEntry(ctx context.Context, req *ManualEntryRequest) (*domain.AccountingRecord, error) {
	if req.Kind != domain.AccountingManualIncome && req.Kind != domain.AccountingManualExpense {
		return nil, ErrInvalidRecordKind
	}
	if req.Amount <= 0 {
		return nil, ErrInvalidAmount
	}

	settings, err := s.settingsService.Get(ctx, req.BusinessID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	amount := req.Amount
	if req.Kind == domain.AccountingManualExpense {
		amount = -amount
	}

	record := &domain.AccountingRecord{
		ID:            uuid.New().String(),
		BusinessID:    req.BusinessID,
		Kind:          req.Kind,
		Amount:        amount,
		Currency:      settings.Currency,
		Description:   req.Description,
		OperationDate: now.Format("2006-01-02"),
		CreatedAt:     now,
	}

	if err := s.accountingRepo.Create(ctx, record); err != nil {
		return nil, err
	}

	return record, nil
}

// ListFilter narrows a ledger listing. Zero values mean no filter;
// Date and From/To are mutually exclusive, Date winning.
type ListFilter struct {
	Date  string
	From  string
	To    string
	Plate string
}

// ListRecords retrieves ledger records for a business with optional
// filtering.
func (s *AccountingService) ListRecords(ctx context.Context, businessID string, filter ListFilter) ([]*domain.AccountingRecord, error) {
	switch {
	case filter.Plate != "":
		return s.accountingRepo.SearchByPlate(ctx, businessID, NormalizePlate(filter.Plate))
	case filter.Date != "":
		if !validDate(filter.Date) {
			return nil, ErrInvalidDateRange
		}
		return s.accountingRepo.GetByDateRange(ctx, businessID, filter.Date, filter.Date)
	case filter.From != "" || filter.To != "":
		if !validDate(filter.From) || !validDate(filter.To) || filter.From > filter.To {
			return nil, ErrInvalidDateRange
		}
		return s.accountingRepo.GetByDateRange(ctx, businessID, filter.From, filter.To)
	}
	return s.accountingRepo.GetByBusiness(ctx, businessID)
}

// GetRecord retrieves a single ledger record owned by the business.
func (s *AccountingService) GetRecord(ctx context.Context, businessID, recordID string) (*domain.AccountingRecord, error) {
	record, err := s.accountingRepo.GetByID(ctx, recordID)
	if err != nil {
		return nil, err
	}
	if record.BusinessID != businessID {
		return nil, repository.ErrNotFound
	}
	return record, nil
}

// Summary computes ledger aggregates plus the per-day revenue series.
type Summary struct {
	domain.AccountingSummary
	RevenueByDay []domain.DailyRevenue
}

// Summarize computes the business's ledger aggregates.
func (s *AccountingService) Summarize(ctx context.Context, businessID string) (*Summary, error) {
	summary, err := s.accountingRepo.Summarize(ctx, businessID)
	if err != nil {
		return nil, err
	}

	byDay, err := s.accountingRepo.RevenueByDay(ctx, businessID)
	if err != nil {
		return nil, err
	}

	settings, err := s.settingsService.Get(ctx, businessID)
	if err == nil {
		summary.Currency = settings.Currency
	}

	return &Summary{
		AccountingSummary: *summary,
		RevenueByDay:      byDay,
	}, nil
}

func validDate(date string) bool {
	_, err := time.Parse("2006-01-02", date)
	return err == nil
}
