package repository

import (
	"context"

	"easypark/internal/domain"
)

// SubscriberRepository defines the persistence operations for monthly
// subscribers.
type SubscriberRepository interface {
	Create(ctx context.Context, subscriber *domain.Subscriber) error
	GetByID(ctx context.Context, id string) (*domain.Subscriber, error)
	GetByBusiness(ctx context.Context, businessID string) ([]*domain.Subscriber, error)
	Update(ctx context.Context, subscriber *domain.Subscriber) error
	Delete(ctx context.Context, id string) error
}

// IncidentRepository defines the persistence operations for incidents.
type IncidentRepository interface {
	Create(ctx context.Context, incident *domain.Incident) error
	GetByID(ctx context.Context, id string) (*domain.Incident, error)
	GetByBusiness(ctx context.Context, businessID string) ([]*domain.Incident, error)
	GetPendingByBusiness(ctx context.Context, businessID string) ([]*domain.Incident, error)
	CountPending(ctx context.Context, businessID string) (int, error)
	Update(ctx context.Context, incident *domain.Incident) error
}
