package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"easypark/internal/domain"
	"easypark/internal/middleware"
	"easypark/internal/service"
)

// SettingsHandler handles HTTP requests for business parking settings.
type SettingsHandler struct {
	settingsService *service.SettingsService
}

// NewSettingsHandler creates a new SettingsHandler.
func NewSettingsHandler(settingsService *service.SettingsService) *SettingsHandler {
	return &SettingsHandler{settingsService: settingsService}
}

// SettingsResponse is the HTTP representation of parking settings.
type SettingsResponse struct {
	MotorcycleRate float64 `json:"motorcycle_rate"`
	CarTruckRate   float64 `json:"car_truck_rate"`
	NightRate      float64 `json:"night_rate"`
	OpeningTime    string  `json:"opening_time"`
	ClosingTime    string  `json:"closing_time"`
	MaxCapacity    int     `json:"max_capacity"`
	Currency       string  `json:"currency"`
	CurrencySymbol string  `json:"currency_symbol"`
}

func toSettingsResponse(s *domain.ParkingSettings) SettingsResponse {
	return SettingsResponse{
		MotorcycleRate: s.MotorcycleRate,
		CarTruckRate:   s.CarTruckRate,
		NightRate:      s.NightRate,
		OpeningTime:    s.OpeningTime,
		ClosingTime:    s.ClosingTime,
		MaxCapacity:    s.MaxCapacity,
		Currency:       s.Currency,
		CurrencySymbol: domain.CurrencySymbol(s.Currency),
	}
}

// Get handles GET /v1/settings
func (h *SettingsHandler) Get(c *gin.Context) {
	settings, err := h.settingsService.Get(c.Request.Context(), middleware.BusinessID(c))
	if err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusOK, toSettingsResponse(settings))
}

// UpdateSettingsRequest is the HTTP request body for updating settings.
type UpdateSettingsRequest struct {
	MotorcycleRate float64 `json:"motorcycle_rate" binding:"required"`
	CarTruckRate   float64 `json:"car_truck_rate" binding:"required"`
	NightRate      float64 `json:"night_rate"`
	OpeningTime    string  `json:"opening_time" binding:"required"`
	ClosingTime    string  `json:"closing_time" binding:"required"`
	MaxCapacity    int     `json:"max_capacity" binding:"required"`
	Currency       string  `json:"currency" binding:"required"`
}

// Update handles PUT /v1/settings (admin only)
func (h *SettingsHandler) Update(c *gin.Context) {
	var req UpdateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, service.ErrInvalidSettings)
		return
	}

	settings, err := h.settingsService.Update(c.Request.Context(), &domain.ParkingSettings{
		BusinessID:     middleware.BusinessID(c),
		MotorcycleRate: req.MotorcycleRate,
		CarTruckRate:   req.CarTruckRate,
		NightRate:      req.NightRate,
		OpeningTime:    req.OpeningTime,
		ClosingTime:    req.ClosingTime,
		MaxCapacity:    req.MaxCapacity,
		Currency:       req.Currency,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusOK, toSettingsResponse(settings))
}
