package domain

// ParkingSettings holds the per-business configuration the fee
// calculation reads: hourly rates, night surcharge, opening hours,
// currency and capacity. Owned by the business profile; read-only from
// the settlement path.
type ParkingSettings struct {
	BusinessID     string
	MotorcycleRate float64
	CarTruckRate   float64
	NightRate      float64 // Flat overnight surcharge per day-close
	OpeningTime    string  // "HH:MM"
	ClosingTime    string  // "HH:MM"
	MaxCapacity    int
	Currency       string // ISO code: PEN, USD, EUR, ...
}

// RateFor returns the hourly rate for a vehicle category.
// CAR and TRUCK share a single configured rate.
func (s *ParkingSettings) RateFor(category VehicleCategory) (float64, bool) {
	switch category {
	case CategoryMotorcycle:
		return s.MotorcycleRate, true
	case CategoryCar, CategoryTruck:
		return s.CarTruckRate, true
	}
	return 0, false
}

// CurrencySymbol resolves an ISO currency code to its display symbol.
// Unknown codes are returned unchanged.
func CurrencySymbol(code string) string {
	switch code {
	case "PEN":
		return "S/"
	case "USD":
		return "$"
	case "EUR":
		return "€"
	}
	return code
}
