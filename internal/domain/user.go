package domain

import "time"

// Role controls what a user may do. Admins additionally manage
// business settings.
type Role string

const (
	RoleAdmin    Role = "admin"
	RoleOperator Role = "operator"
)

// User is an operator or administrator of a parking business.
type User struct {
	ID           string
	BusinessID   string
	Username     string
	Email        string
	PasswordHash string
	Name         string
	Role         Role
	Active       bool
	CreatedAt    time.Time
}

// Business is a parking lot operator account. Settings are stored
// separately in ParkingSettings.
type Business struct {
	ID        string
	Name      string
	Address   string
	Phone     string
	Email     string
	TaxID     string
	CreatedAt time.Time
}
