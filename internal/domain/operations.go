package domain

import "time"

// OperationsDayStatus represents the state of a business day.
type OperationsDayStatus string

const (
	OperationsDayOpen   OperationsDayStatus = "OPEN"
	OperationsDayClosed OperationsDayStatus = "CLOSED"
)

// OperationsDay is a business's single daily open/close session.
// Invariant: at most one OPEN day per business at any time, and at most
// one record per business per calendar date.
type OperationsDay struct {
	ID          string
	BusinessID  string
	Date        string // "YYYY-MM-DD"
	Status      OperationsDayStatus
	OpenedAt    time.Time
	ClosedAt    time.Time // Zero while open
	InitialCash float64
	FinalCash   float64
	Notes       string
}

// VehicleDebt is the amount owed by a vehicle still inside when the
// business day closed. One debt per vehicle; closing further days while
// the vehicle remains inside re-updates the same record.
type VehicleDebt struct {
	ID            string
	BusinessID    string
	VehicleID     string
	Plate         string
	Category      VehicleCategory
	EntryAt       time.Time
	RegularHours  int     // Billable hours accrued from entry to the last close
	RegularAmount float64 // RegularHours * hourly rate
	NightCharge   float64 // Flat night surcharge, accumulated per close
	TotalDebt     float64 // RegularAmount + NightCharge
	Paid          bool
	UpdatedAt     time.Time
}
