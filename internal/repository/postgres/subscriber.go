package postgres

import (
	"context"
	"database/sql"
	"errors"

	"easypark/internal/domain"
	"easypark/internal/repository"
)

// SubscriberRepository is a PostgreSQL implementation of repository.SubscriberRepository.
type SubscriberRepository struct {
	q Querier
}

// NewSubscriberRepository creates a new PostgreSQL subscriber repository.
func NewSubscriberRepository(db *sql.DB) *SubscriberRepository {
	return &SubscriberRepository{q: db}
}

const subscriberColumns = `id, business_id, name, phone, email, vehicle_plate,
	subscription_months, amount, start_date, payment_date, created_at`

// Create persists a new subscriber.
func (r *SubscriberRepository) Create(ctx context.Context, subscriber *domain.Subscriber) error {
	query := `
		INSERT INTO subscribers
			(id, business_id, name, phone, email, vehicle_plate,
			 subscription_months, amount, start_date, payment_date, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`

	_, err := r.q.ExecContext(ctx, query,
		subscriber.ID,
		subscriber.BusinessID,
		subscriber.Name,
		subscriber.Phone,
		subscriber.Email,
		subscriber.VehiclePlate,
		subscriber.SubscriptionMonths,
		subscriber.Amount,
		subscriber.StartDate,
		subscriber.PaymentDate,
		subscriber.CreatedAt,
	)

	return err
}

func scanSubscriber(row interface{ Scan(...any) error }) (*domain.Subscriber, error) {
	var subscriber domain.Subscriber

	err := row.Scan(
		&subscriber.ID,
		&subscriber.BusinessID,
		&subscriber.Name,
		&subscriber.Phone,
		&subscriber.Email,
		&subscriber.VehiclePlate,
		&subscriber.SubscriptionMonths,
		&subscriber.Amount,
		&subscriber.StartDate,
		&subscriber.PaymentDate,
		&subscriber.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	return &subscriber, nil
}

// GetByID retrieves a subscriber by ID.
func (r *SubscriberRepository) GetByID(ctx context.Context, id string) (*domain.Subscriber, error) {
	query := `SELECT ` + subscriberColumns + ` FROM subscribers WHERE id = $1`

	subscriber, err := scanSubscriber(r.q.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}

	return subscriber, nil
}

// GetByBusiness retrieves subscribers for a business, newest first.
func (r *SubscriberRepository) GetByBusiness(ctx context.Context, businessID string) ([]*domain.Subscriber, error) {
	query := `
		SELECT ` + subscriberColumns + `
		FROM subscribers WHERE business_id = $1
		ORDER BY created_at DESC
	`

	rows, err := r.q.QueryContext(ctx, query, businessID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var subscribers []*domain.Subscriber
	for rows.Next() {
		subscriber, err := scanSubscriber(rows)
		if err != nil {
			return nil, err
		}
		subscribers = append(subscribers, subscriber)
	}

	return subscribers, rows.Err()
}

// Update updates an existing subscriber.
func (r *SubscriberRepository) Update(ctx context.Context, subscriber *domain.Subscriber) error {
	query := `
		UPDATE subscribers
		SET name = $1, phone = $2, email = $3, vehicle_plate = $4,
		    subscription_months = $5, amount = $6, start_date = $7, payment_date = $8
		WHERE id = $9
	`

	result, err := r.q.ExecContext(ctx, query,
		subscriber.Name,
		subscriber.Phone,
		subscriber.Email,
		subscriber.VehiclePlate,
		subscriber.SubscriptionMonths,
		subscriber.Amount,
		subscriber.StartDate,
		subscriber.PaymentDate,
		subscriber.ID,
	)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return repository.ErrNotFound
	}

	return nil
}

// Delete removes a subscriber.
func (r *SubscriberRepository) Delete(ctx context.Context, id string) error {
	result, err := r.q.ExecContext(ctx, `DELETE FROM subscribers WHERE id = $1`, id)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return repository.ErrNotFound
	}

	return nil
}

// Ensure SubscriberRepository implements repository.SubscriberRepository.
var _ repository.SubscriberRepository = (*SubscriberRepository)(nil)
