package domain

import "time"

// IncidentStatus represents the resolution state of an incident.
type IncidentStatus string

const (
	IncidentPending  IncidentStatus = "PENDING"
	IncidentResolved IncidentStatus = "RESOLVED"
)

// Incident is an operator-reported event tied to a parked vehicle.
type Incident struct {
	ID          string
	BusinessID  string
	VehicleID   string
	Description string
	ReportedBy  string
	Status      IncidentStatus
	Resolution  string
	ReportedAt  time.Time
	ResolvedAt  time.Time // Zero while pending
}
