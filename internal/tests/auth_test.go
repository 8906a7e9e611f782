package tests

import (
	"context"
	"errors"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"

	"easypark/internal/domain"
	"easypark/internal/security"
	"easypark/internal/service"
)

// ──────────────────────────────────────────────
// 7. AUTH
// ──────────────────────────────────────────────

func newAuthFixture() (*service.AuthService, *MockUserRepository) {
	userRepo := NewMockUserRepository()
	tokens := security.NewTokenManager("test-secret", time.Hour)

	// nil db: login never opens a transaction.
	svc := service.NewAuthService(nil, userRepo, nil, nil, tokens)
	return svc, userRepo
}

func addUser(userRepo *MockUserRepository, username, password string, active bool) {
	hash, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	userRepo.AddUser(&domain.User{
		ID:           "user-1",
		BusinessID:   "biz-1",
		Username:     username,
		PasswordHash: string(hash),
		Role:         domain.RoleAdmin,
		Active:       active,
	})
}

func TestLogin_IssuesValidToken(t *testing.T) {
	t.Parallel()

	svc, userRepo := newAuthFixture()
	addUser(userRepo, "owner", "secret-password", true)

	result, err := svc.Login(context.Background(), "Owner ", "secret-password")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Token == "" {
		t.Fatal("expected a token")
	}

	tokens := security.NewTokenManager("test-secret", time.Hour)
	claims, err := tokens.ValidateToken(result.Token)
	if err != nil {
		t.Fatalf("token failed validation: %v", err)
	}
	if claims.BusinessID != "biz-1" {
		t.Errorf("expected business claim biz-1, got %s", claims.BusinessID)
	}
	if claims.Role != domain.RoleAdmin {
		t.Errorf("expected admin role claim, got %s", claims.Role)
	}
}

func TestLogin_WrongPasswordRejected(t *testing.T) {
	t.Parallel()

	svc, userRepo := newAuthFixture()
	addUser(userRepo, "owner", "secret-password", true)

	_, err := svc.Login(context.Background(), "owner", "wrong-password")
	if !errors.Is(err, service.ErrInvalidCredentials) {
		t.Errorf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestLogin_UnknownUserRejected(t *testing.T) {
	t.Parallel()

	svc, _ := newAuthFixture()

	_, err := svc.Login(context.Background(), "ghost", "whatever")
	if !errors.Is(err, service.ErrInvalidCredentials) {
		t.Errorf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestLogin_InactiveUserRejected(t *testing.T) {
	t.Parallel()

	svc, userRepo := newAuthFixture()
	addUser(userRepo, "owner", "secret-password", false)

	_, err := svc.Login(context.Background(), "owner", "secret-password")
	if !errors.Is(err, service.ErrUserInactive) {
		t.Errorf("expected ErrUserInactive, got %v", err)
	}
}

func TestTokenManager_RejectsWrongSecret(t *testing.T) {
	t.Parallel()

	issuer := security.NewTokenManager("secret-a", time.Hour)
	token, err := issuer.GenerateAccessToken(&domain.User{ID: "user-1", BusinessID: "biz-1", Role: domain.RoleOperator})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	verifier := security.NewTokenManager("secret-b", time.Hour)
	if _, err := verifier.ValidateToken(token); !errors.Is(err, security.ErrInvalidToken) {
		t.Errorf("expected ErrInvalidToken, got %v", err)
	}
}

func TestTokenManager_RejectsExpiredToken(t *testing.T) {
	t.Parallel()

	issuer := security.NewTokenManager("secret-a", -time.Minute)
	token, err := issuer.GenerateAccessToken(&domain.User{ID: "user-1", BusinessID: "biz-1", Role: domain.RoleOperator})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := issuer.ValidateToken(token); !errors.Is(err, security.ErrExpiredToken) {
		t.Errorf("expected ErrExpiredToken, got %v", err)
	}
}
