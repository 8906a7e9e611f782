package domain

import "time"

// SubscriberStatus represents the state of a monthly subscription.
type SubscriberStatus string

const (
	SubscriberActive  SubscriberStatus = "ACTIVE"
	SubscriberExpired SubscriberStatus = "EXPIRED"
	SubscriberPending SubscriberStatus = "PENDING"
)

// Subscriber is a monthly client of the parking lot.
type Subscriber struct {
	ID                 string
	BusinessID         string
	Name               string
	Phone              string
	Email              string
	VehiclePlate       string
	SubscriptionMonths int
	Amount             float64
	StartDate          time.Time
	PaymentDate        time.Time
	CreatedAt          time.Time
}

// StatusAt derives the subscription status at the given time from the
// start date and the contracted number of months.
func (s *Subscriber) StatusAt(now time.Time) SubscriberStatus {
	if now.Before(s.StartDate) {
		return SubscriberPending
	}
	if now.Before(s.StartDate.AddDate(0, s.SubscriptionMonths, 0)) {
		return SubscriberActive
	}
	return SubscriberExpired
}
