package domain

import "time"

// AccountingKind distinguishes settlement records from manual entries.
type AccountingKind string

const (
	AccountingSettlement    AccountingKind = "SETTLEMENT"
	AccountingManualIncome  AccountingKind = "MANUAL_INCOME"
	AccountingManualExpense AccountingKind = "MANUAL_EXPENSE"
)

// AccountingRecord is a persisted projection of a settlement (or a
// manual income/expense entry). Records are append-only: created once,
// never updated.
type AccountingRecord struct {
	ID            string
	BusinessID    string
	Kind          AccountingKind
	VehicleID     string
	Plate         string
	Category      VehicleCategory
	EntryAt       time.Time
	ExitAt        time.Time
	HoursParked   float64
	HoursToPay    int
	RatePerHour   float64
	Amount        float64
	NightCharge   float64 // Carried over from a settled debt, if any
	DebtID        string  // Debt settled by this record, if any
	Currency      string
	Description   string // Manual entries only
	OperationDate string // "YYYY-MM-DD" business day the record belongs to
	CreatedAt     time.Time
}

// AccountingSummary aggregates the ledger for reporting.
type AccountingSummary struct {
	TotalRevenue      float64
	TotalRecords      int
	CarTruckRevenue   float64
	MotorcycleRevenue float64
	AverageStayHours  float64
	Currency          string
}

// DailyRevenue is one bucket of revenue grouped by operation date.
type DailyRevenue struct {
	Date    string
	Revenue float64
}
