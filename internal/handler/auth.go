package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"easypark/internal/service"
)

// AuthHandler handles HTTP requests for registration and login.
type AuthHandler struct {
	authService *service.AuthService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// RegisterRequest is the HTTP request body for business signup.
type RegisterRequest struct {
	BusinessName string `json:"business_name" binding:"required"`
	Address      string `json:"address"`
	Phone        string `json:"phone"`
	TaxID        string `json:"tax_id"`
	Username     string `json:"username" binding:"required"`
	Email        string `json:"email"`
	Password     string `json:"password" binding:"required"`
	OwnerName    string `json:"owner_name"`
}

// AuthResponse is the HTTP response for successful auth operations.
type AuthResponse struct {
	Token      string `json:"token"`
	UserID     string `json:"user_id"`
	BusinessID string `json:"business_id"`
	Username   string `json:"username"`
	Role       string `json:"role"`
}

// Register handles POST /v1/auth/register
func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, service.ErrInvalidRegistration)
		return
	}

	result, err := h.authService.Register(c.Request.Context(), &service.RegisterRequest{
		BusinessName: req.BusinessName,
		Address:      req.Address,
		Phone:        req.Phone,
		TaxID:        req.TaxID,
		Username:     req.Username,
		Email:        req.Email,
		Password:     req.Password,
		OwnerName:    req.OwnerName,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusCreated, AuthResponse{
		Token:      result.Token,
		UserID:     result.User.ID,
		BusinessID: result.Business.ID,
		Username:   result.User.Username,
		Role:       string(result.User.Role),
	})
}

// LoginRequest is the HTTP request body for login.
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Login handles POST /v1/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, service.ErrInvalidCredentials)
		return
	}

	result, err := h.authService.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusOK, AuthResponse{
		Token:      result.Token,
		UserID:     result.User.ID,
		BusinessID: result.User.BusinessID,
		Username:   result.User.Username,
		Role:       string(result.User.Role),
	})
}
