package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"easypark/internal/domain"
	"easypark/internal/repository"
)

// SubscriberService manages monthly clients.
type SubscriberService struct {
	subscriberRepo repository.SubscriberRepository
}

// NewSubscriberService creates a new SubscriberService.
func NewSubscriberService(subscriberRepo repository.SubscriberRepository) *SubscriberService {
	return &SubscriberService{subscriberRepo: subscriberRepo}
}

// SubscriberRequest contains the input for creating or updating a
// subscriber.
type SubscriberRequest struct {
	Name               string
	Phone              string
	Email              string
	VehiclePlate       string
	SubscriptionMonths int
	Amount             float64
	StartDate          time.Time
	PaymentDate        time.Time
}

func (r *SubscriberRequest) validate() error {
	if strings.TrimSpace(r.Name) == "" {
		return ErrInvalidSubscriber
	}
	if NormalizePlate(r.VehiclePlate) == "" {
		return ErrInvalidSubscriber
	}
	if r.SubscriptionMonths <= 0 {
		return ErrInvalidSubscriber
	}
	if r.Amount < 0 {
		return ErrInvalidSubscriber
	}
	if r.StartDate.IsZero() {
		return ErrInvalidSubscriber
	}
	return nil
}

// Create registers a new monthly subscriber.
func (s *SubscriberService) Create(ctx context.Context, businessID string, req *SubscriberRequest) (*domain.Subscriber, error) {
	if err := req.validate(); err != nil {
		return nil, err
	}

	subscriber := &domain.Subscriber{
		ID:                 uuid.New().String(),
		BusinessID:         businessID,
		Name:               strings.TrimSpace(req.Name),
		Phone:              req.Phone,
		Email:              req.Email,
		VehiclePlate:       NormalizePlate(req.VehiclePlate),
		SubscriptionMonths: req.SubscriptionMonths,
		Amount:             req.Amount,
		StartDate:          req.StartDate,
		PaymentDate:        req.PaymentDate,
		CreatedAt:          time.Now(),
	}

	if err := s.subscriberRepo.Create(ctx, subscriber); err != nil {
		return nil, err
	}
	return subscriber, nil
}

// Get retrieves a subscriber owned by the business.
func (s *SubscriberService) Get(ctx context.Context, businessID, id string) (*domain.Subscriber, error) {
	subscriber, err := s.subscriberRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if subscriber.BusinessID != businessID {
		return nil, repository.ErrNotFound
	}
	return subscriber, nil
}

// List retrieves the business's subscribers.
func (s *SubscriberService) List(ctx context.Context, businessID string) ([]*domain.Subscriber, error) {
	return s.subscriberRepo.GetByBusiness(ctx, businessID)
}

// Update replaces a subscriber's editable fields.
func (s *SubscriberService) Update(ctx context.Context, businessID, id string, req *SubscriberRequest) (*domain.Subscriber, error) {
	if err := req.validate(); err != nil {
		return nil, err
	}

	subscriber, err := s.Get(ctx, businessID, id)
	if err != nil {
		return nil, err
	}

	subscriber.Name = strings.TrimSpace(req.Name)
	subscriber.Phone = req.Phone
	subscriber.Email = req.Email
	subscriber.VehiclePlate = NormalizePlate(req.VehiclePlate)
	subscriber.SubscriptionMonths = req.SubscriptionMonths
	subscriber.Amount = req.Amount
	subscriber.StartDate = req.StartDate
	subscriber.PaymentDate = req.PaymentDate

	if err := s.subscriberRepo.Update(ctx, subscriber); err != nil {
		return nil, err
	}
	return subscriber, nil
}

// Delete removes a subscriber.
func (s *SubscriberService) Delete(ctx context.Context, businessID, id string) error {
	if _, err := s.Get(ctx, businessID, id); err != nil {
		return err
	}
	return s.subscriberRepo.Delete(ctx, id)
}
