package domain

import "time"

// SettlementResult is the outcome of computing the amount owed for a
// vehicle's stay at exit time. Produced once per exit event; immutable.
type SettlementResult struct {
	VehicleID      string
	Plate          string
	Category       VehicleCategory
	EntryAt        time.Time
	ExitAt         time.Time
	ElapsedHours   float64 // Real elapsed duration, fractional
	ElapsedLabel   string  // Display string, e.g. "2h 15min"
	BillableHours  int     // ceil(elapsed), minimum 1
	RatePerHour    float64
	Amount         float64 // BillableHours * RatePerHour
	Currency       string  // ISO code
	CurrencySymbol string
}
