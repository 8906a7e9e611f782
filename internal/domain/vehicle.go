package domain

import "time"

// VehicleCategory represents the category of a parked vehicle.
type VehicleCategory string

const (
	CategoryMotorcycle VehicleCategory = "MOTORCYCLE"
	CategoryCar        VehicleCategory = "CAR"
	CategoryTruck      VehicleCategory = "TRUCK"
)

// ValidCategory reports whether c is one of the known vehicle categories.
func ValidCategory(c VehicleCategory) bool {
	switch c {
	case CategoryMotorcycle, CategoryCar, CategoryTruck:
		return true
	}
	return false
}

// VehicleStatus represents whether a vehicle is currently parked.
type VehicleStatus string

const (
	VehicleStatusInside VehicleStatus = "INSIDE"
	VehicleStatusOut    VehicleStatus = "OUT"
)

// Vehicle represents a vehicle registered at a parking lot.
// A vehicle record is created on entry, mutated exactly once when it
// exits, and immutable thereafter.
type Vehicle struct {
	ID         string
	BusinessID string
	Plate      string
	Category   VehicleCategory
	Status     VehicleStatus
	EntryAt    time.Time
	ExitAt     time.Time // Zero until the vehicle exits
}
