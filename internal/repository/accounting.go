package repository

import (
	"context"

	"easypark/internal/domain"
)

// AccountingRepository defines the persistence operations for the
// accounting ledger. Records are append-only: there is no update.
type AccountingRepository interface {
	// Create persists a new accounting record.
	Create(ctx context.Context, record *domain.AccountingRecord) error

	// GetByID retrieves a record by ID.
	GetByID(ctx context.Context, id string) (*domain.AccountingRecord, error)

	// GetByBusiness retrieves records for a business, newest first.
	GetByBusiness(ctx context.Context, businessID string) ([]*domain.AccountingRecord, error)

	// GetByDateRange retrieves records whose operation date falls in
	// [from, to], both "YYYY-MM-DD", inclusive.
	GetByDateRange(ctx context.Context, businessID, from, to string) ([]*domain.AccountingRecord, error)

	// SearchByPlate retrieves records whose plate contains the given
	// fragment, case-insensitive.
	SearchByPlate(ctx context.Context, businessID, plate string) ([]*domain.AccountingRecord, error)

	// Summarize computes ledger aggregates for a business.
	Summarize(ctx context.Context, businessID string) (*domain.AccountingSummary, error)

	// RevenueByDay groups revenue by operation date, newest first.
	RevenueByDay(ctx context.Context, businessID string) ([]domain.DailyRevenue, error)

	// RevenueForDate sums revenue for a single operation date.
	RevenueForDate(ctx context.Context, businessID, date string) (float64, error)
}
