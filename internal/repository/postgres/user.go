package postgres

import (
	"context"
	"database/sql"
	"errors"

	"easypark/internal/domain"
	"easypark/internal/repository"
)

// UserRepository is a PostgreSQL implementation of repository.UserRepository.
type UserRepository struct {
	q Querier
}

// NewUserRepository creates a new PostgreSQL user repository.
func NewUserRepository(db *sql.DB) *UserRepository {
	return &UserRepository{q: db}
}

// NewUserRepositoryWithTx creates a user repository using a transaction.
func NewUserRepositoryWithTx(tx *sql.Tx) *UserRepository {
	return &UserRepository{q: tx}
}

const userColumns = `id, business_id, username, email, password_hash, name, role, active, created_at`

// Create persists a new user.
func (r *UserRepository) Create(ctx context.Context, user *domain.User) error {
	query := `
		INSERT INTO users
			(id, business_id, username, email, password_hash, name, role, active, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	_, err := r.q.ExecContext(ctx, query,
		user.ID,
		user.BusinessID,
		user.Username,
		user.Email,
		user.PasswordHash,
		user.Name,
		user.Role,
		user.Active,
		user.CreatedAt,
	)

	return err
}

func scanUser(row interface{ Scan(...any) error }) (*domain.User, error) {
	var user domain.User

	err := row.Scan(
		&user.ID,
		&user.BusinessID,
		&user.Username,
		&user.Email,
		&user.PasswordHash,
		&user.Name,
		&user.Role,
		&user.Active,
		&user.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	return &user, nil
}

// GetByID retrieves a user by ID.
func (r *UserRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`

	user, err := scanUser(r.q.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}

	return user, nil
}

// GetByUsername retrieves a user by username.
func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE username = $1`

	user, err := scanUser(r.q.QueryRowContext(ctx, query, username))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}

	return user, nil
}

// BusinessRepository is a PostgreSQL implementation of repository.BusinessRepository.
type BusinessRepository struct {
	q Querier
}

// NewBusinessRepository creates a new PostgreSQL business repository.
func NewBusinessRepository(db *sql.DB) *BusinessRepository {
	return &BusinessRepository{q: db}
}

// NewBusinessRepositoryWithTx creates a business repository using a transaction.
func NewBusinessRepositoryWithTx(tx *sql.Tx) *BusinessRepository {
	return &BusinessRepository{q: tx}
}

// Create persists a new business.
func (r *BusinessRepository) Create(ctx context.Context, business *domain.Business) error {
	query := `
		INSERT INTO businesses (id, name, address, phone, email, tax_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := r.q.ExecContext(ctx, query,
		business.ID,
		business.Name,
		business.Address,
		business.Phone,
		business.Email,
		business.TaxID,
		business.CreatedAt,
	)

	return err
}

// GetByID retrieves a business by ID.
func (r *BusinessRepository) GetByID(ctx context.Context, id string) (*domain.Business, error) {
	query := `SELECT id, name, address, phone, email, tax_id, created_at FROM businesses WHERE id = $1`

	var business domain.Business
	err := r.q.QueryRowContext(ctx, query, id).Scan(
		&business.ID,
		&business.Name,
		&business.Address,
		&business.Phone,
		&business.Email,
		&business.TaxID,
		&business.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}

	return &business, nil
}

// Ensure interfaces are satisfied.
var (
	_ repository.UserRepository     = (*UserRepository)(nil)
	_ repository.BusinessRepository = (*BusinessRepository)(nil)
)
