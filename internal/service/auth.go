package service

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"easypark/internal/domain"
	"easypark/internal/repository"
	"easypark/internal/repository/postgres"
	"easypark/internal/security"
)

// AuthService handles business registration and user login.
type AuthService struct {
	db           *sql.DB
	userRepo     repository.UserRepository
	businessRepo repository.BusinessRepository
	settingsRepo repository.SettingsRepository
	tokens       security.TokenManager
}

// NewAuthService creates a new AuthService.
func NewAuthService(
	db *sql.DB,
	userRepo repository.UserRepository,
	businessRepo repository.BusinessRepository,
	settingsRepo repository.SettingsRepository,
	tokens security.TokenManager,
) *AuthService {
	return &AuthService{
		db:           db,
		userRepo:     userRepo,
		businessRepo: businessRepo,
		settingsRepo: settingsRepo,
		tokens:       tokens,
	}
}

// RegisterRequest contains the input to register a business with its
// first admin user.
type RegisterRequest struct {
	BusinessName string
	Address      string
	Phone        string
	TaxID        string
	Username     string
	Email        string
	Password     string
	OwnerName    string
}

// RegisterResponse contains the created business and admin user.
type RegisterResponse struct {
	Business *domain.Business
	User     *domain.User
	Token    string
}

// Register creates a business, its admin user and the default parking
// settings in one transaction, then issues an access token.
func (s *AuthService) Register(ctx context.Context, req *RegisterRequest) (*RegisterResponse, error) {
	if strings.TrimSpace(req.BusinessName) == "" ||
		strings.TrimSpace(req.Username) == "" ||
		len(req.Password) < 8 {
		return nil, ErrInvalidRegistration
	}

	username := strings.ToLower(strings.TrimSpace(req.Username))

	existing, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, ErrUsernameTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	business := &domain.Business{
		ID:        uuid.New().String(),
		Name:      strings.TrimSpace(req.BusinessName),
		Address:   req.Address,
		Phone:     req.Phone,
		Email:     req.Email,
		TaxID:     req.TaxID,
		CreatedAt: now,
	}
	user := &domain.User{
		ID:           uuid.New().String(),
		BusinessID:   business.ID,
		Username:     username,
		Email:        req.Email,
		PasswordHash: string(hash),
		Name:         req.OwnerName,
		Role:         domain.RoleAdmin,
		Active:       true,
		CreatedAt:    now,
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}

	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	txBusinessRepo := postgres.NewBusinessRepositoryWithTx(tx)
	txUserRepo := postgres.NewUserRepositoryWithTx(tx)
	txSettingsRepo := postgres.NewSettingsRepositoryWithTx(tx)

	if err = txBusinessRepo.Create(ctx, business); err != nil {
		return nil, err
	}
	if err = txUserRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	if err = txSettingsRepo.Save(ctx, DefaultSettings(business.ID)); err != nil {
		return nil, err
	}

	if err = tx.Commit(); err != nil {
		return nil, err
	}

	token, err := s.tokens.GenerateAccessToken(user)
	if err != nil {
		return nil, err
	}

	return &RegisterResponse{
		Business: business,
		User:     user,
		Token:    token,
	}, nil
}

// LoginResponse contains the authenticated user and access token.
type LoginResponse struct {
	User  *domain.User
	Token string
}

// Login verifies credentials and issues an access token.
func (s *AuthService) Login(ctx context.Context, username, password string) (*LoginResponse, error) {
	username = strings.ToLower(strings.TrimSpace(username))
	if username == "" || password == "" {
		return nil, ErrInvalidCredentials
	}

	user, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if !user.Active {
		return nil, ErrUserInactive
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := s.tokens.GenerateAccessToken(user)
	if err != nil {
		return nil, err
	}

	return &LoginResponse{User: user, Token: token}, nil
}
