package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"easypark/internal/domain"
)

// NotificationType represents the type of notification.
type NotificationType string

const (
	NotificationVehicleEntered    NotificationType = "VEHICLE_ENTERED"
	NotificationVehicleExited     NotificationType = "VEHICLE_EXITED"
	NotificationDayOpened         NotificationType = "DAY_OPENED"
	NotificationDayClosed         NotificationType = "DAY_CLOSED"
	NotificationDebtCarriedOver   NotificationType = "DEBT_CARRIED_OVER"
	NotificationDebtPaid          NotificationType = "DEBT_PAID"
	NotificationIncidentReported  NotificationType = "INCIDENT_REPORTED"
	NotificationCapacityNearFull  NotificationType = "CAPACITY_NEAR_FULL"
	NotificationSubscriberExpired NotificationType = "SUBSCRIBER_EXPIRED"
)

// Notification represents a notification to be sent.
type Notification struct {
	ID         string
	Type       NotificationType
	BusinessID string
	Title      string
	Message    string
	Data       map[string]interface{}
	CreatedAt  time.Time
}

// NotificationService handles notification delivery.
type NotificationService struct {
	// In a real system, this would have:
	// - Push notification client (FCM, APNS)
	// - SMS client (Twilio)
	// - Email client (SendGrid)
	// - WebSocket connections for real-time
}

// NewNotificationService creates a new NotificationService.
func NewNotificationService() *NotificationService {
	return &NotificationService{}
}

// NotifyVehicleExited notifies the business dashboard about a settled exit.
func (s *NotificationService) NotifyVehicleExited(ctx context.Context, vehicle *domain.Vehicle, record *domain.AccountingRecord) error {
	notification := Notification{
		Type:       NotificationVehicleExited,
		BusinessID: vehicle.BusinessID,
		Title:      "Vehicle Exited",
		Message:    fmt.Sprintf("Vehicle %s exited. Charged %.2f %s", vehicle.Plate, record.Amount, record.Currency),
		Data: map[string]interface{}{
			"vehicle_id": vehicle.ID,
			"plate":      vehicle.Plate,
			"amount":     record.Amount,
			"record_id":  record.ID,
		},
		CreatedAt: time.Now(),
	}
	return s.send(ctx, notification)
}

// NotifyDayClosed notifies the business that the operations day was
// closed, listing how many debts were carried over.
func (s *NotificationService) NotifyDayClosed(ctx context.Context, day *domain.OperationsDay, debtCount int) error {
	notification := Notification{
		Type:       NotificationDayClosed,
		BusinessID: day.BusinessID,
		Title:      "Day Closed",
		Message:    fmt.Sprintf("Operations day %s closed. %d vehicle(s) carried over as debt", day.Date, debtCount),
		Data: map[string]interface{}{
			"day_id":     day.ID,
			"date":       day.Date,
			"debt_count": debtCount,
			"final_cash": day.FinalCash,
		},
		CreatedAt: time.Now(),
	}
	return s.send(ctx, notification)
}

// NotifyDebtPaid notifies the business that an outstanding debt was
// settled.
func (s *NotificationService) NotifyDebtPaid(ctx context.Context, debt *domain.VehicleDebt) error {
	notification := Notification{
		Type:       NotificationDebtPaid,
		BusinessID: debt.BusinessID,
		Title:      "Debt Paid",
		Message:    fmt.Sprintf("Debt for vehicle %s settled: %.2f", debt.Plate, debt.TotalDebt),
		Data: map[string]interface{}{
			"debt_id":    debt.ID,
			"vehicle_id": debt.VehicleID,
			"plate":      debt.Plate,
			"total":      debt.TotalDebt,
		},
		CreatedAt: time.Now(),
	}
	return s.send(ctx, notification)
}

// NotifyIncidentReported notifies the business about a new incident.
func (s *NotificationService) NotifyIncidentReported(ctx context.Context, incident *domain.Incident) error {
	notification := Notification{
		Type:       NotificationIncidentReported,
		BusinessID: incident.BusinessID,
		Title:      "Incident Reported",
		Message:    incident.Description,
		Data: map[string]interface{}{
			"incident_id": incident.ID,
			"vehicle_id":  incident.VehicleID,
			"reported_by": incident.ReportedBy,
		},
		CreatedAt: time.Now(),
	}
	return s.send(ctx, notification)
}

// NotifyCapacityNearFull warns the business when occupancy crosses 90%.
func (s *NotificationService) NotifyCapacityNearFull(ctx context.Context, businessID string, inside, capacity int) error {
	notification := Notification{
		Type:       NotificationCapacityNearFull,
		BusinessID: businessID,
		Title:      "Parking Almost Full",
		Message:    fmt.Sprintf("%d of %d spaces occupied", inside, capacity),
		Data: map[string]interface{}{
			"inside":   inside,
			"capacity": capacity,
		},
		CreatedAt: time.Now(),
	}
	return s.send(ctx, notification)
}

func (s *NotificationService) send(ctx context.Context, notification Notification) error {
	// In a real implementation, this would:
	// 1. Store notification in database
	// 2. Send push notification via FCM/APNS
	// 3. Send email if enabled
	// 4. Broadcast via WebSocket for real-time dashboards

	log.Printf("[NOTIFICATION] Type=%s, Business=%s, Title=%s, Message=%s",
		notification.Type, notification.BusinessID, notification.Title, notification.Message)

	return nil
}
