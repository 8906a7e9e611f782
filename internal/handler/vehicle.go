package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"easypark/internal/domain"
	"easypark/internal/middleware"
	"easypark/internal/service"
)

// VehicleHandler handles HTTP requests for the vehicle registry and
// the exit flow.
type VehicleHandler struct {
	vehicleService    *service.VehicleService
	settlementService *service.SettlementService
}

// NewVehicleHandler creates a new VehicleHandler.
func NewVehicleHandler(vehicleService *service.VehicleService, settlementService *service.SettlementService) *VehicleHandler {
	return &VehicleHandler{
		vehicleService:    vehicleService,
		settlementService: settlementService,
	}
}

// VehicleResponse is the HTTP representation of a vehicle.
type VehicleResponse struct {
	ID       string `json:"id"`
	Plate    string `json:"plate"`
	Category string `json:"category"`
	Status   string `json:"status"`
	EntryAt  string `json:"entry_at"`
	ExitAt   string `json:"exit_at,omitempty"`
}

func toVehicleResponse(v *domain.Vehicle) VehicleResponse {
	resp := VehicleResponse{
		ID:       v.ID,
		Plate:    v.Plate,
		Category: string(v.Category),
		Status:   string(v.Status),
		EntryAt:  v.EntryAt.Format(time.RFC3339),
	}
	if !v.ExitAt.IsZero() {
		resp.ExitAt = v.ExitAt.Format(time.RFC3339)
	}
	return resp
}

// RegisterEntryRequest is the HTTP request body for a vehicle entry.
type RegisterEntryRequest struct {
	Plate    string `json:"plate" binding:"required"`
	Category string `json:"category" binding:"required"`
}

// RegisterEntry handles POST /v1/vehicles
func (h *VehicleHandler) RegisterEntry(c *gin.Context) {
	var req RegisterEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, service.ErrInvalidPlate)
		return
	}

	vehicle, err := h.vehicleService.RegisterEntry(c.Request.Context(), &service.RegisterEntryRequest{
		BusinessID: middleware.BusinessID(c),
		Plate:      req.Plate,
		Category:   domain.VehicleCategory(req.Category),
	})
	if err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusCreated, toVehicleResponse(vehicle))
}

// ListVehicles handles GET /v1/vehicles
func (h *VehicleHandler) ListVehicles(c *gin.Context) {
	status := domain.VehicleStatus(c.Query("status"))

	vehicles, err := h.vehicleService.ListVehicles(c.Request.Context(), middleware.BusinessID(c), status)
	if err != nil {
		respondError(c, err)
		return
	}

	responses := make([]VehicleResponse, 0, len(vehicles))
	for _, v := range vehicles {
		responses = append(responses, toVehicleResponse(v))
	}
	respondJSON(c, http.StatusOK, responses)
}

// GetVehicle handles GET /v1/vehicles/:id
func (h *VehicleHandler) GetVehicle(c *gin.Context) {
	vehicle, err := h.vehicleService.GetVehicle(c.Request.Context(), middleware.BusinessID(c), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusOK, toVehicleResponse(vehicle))
}

// SettlementResponse is the HTTP representation of a fee calculation.
type SettlementResponse struct {
	VehicleID      string  `json:"vehicle_id"`
	Plate          string  `json:"plate"`
	Category       string  `json:"category"`
	EntryAt        string  `json:"entry_at"`
	ExitAt         string  `json:"exit_at"`
	ElapsedHours   float64 `json:"elapsed_hours"`
	ElapsedLabel   string  `json:"elapsed_label"`
	BillableHours  int     `json:"billable_hours"`
	RatePerHour    float64 `json:"rate_per_hour"`
	Amount         float64 `json:"amount"`
	Currency       string  `json:"currency"`
	CurrencySymbol string  `json:"currency_symbol"`
}

func toSettlementResponse(s *domain.SettlementResult) SettlementResponse {
	return SettlementResponse{
		VehicleID:      s.VehicleID,
		Plate:          s.Plate,
		Category:       string(s.Category),
		EntryAt:        s.EntryAt.Format(time.RFC3339),
		ExitAt:         s.ExitAt.Format(time.RFC3339),
		ElapsedHours:   s.ElapsedHours,
		ElapsedLabel:   s.ElapsedLabel,
		BillableHours:  s.BillableHours,
		RatePerHour:    s.RatePerHour,
		Amount:         s.Amount,
		Currency:       s.Currency,
		CurrencySymbol: s.CurrencySymbol,
	}
}

// PreviewExit handles POST /v1/vehicles/:id/exit/preview
func (h *VehicleHandler) PreviewExit(c *gin.Context) {
	settlement, err := h.settlementService.PreviewExit(c.Request.Context(), middleware.BusinessID(c), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusOK, toSettlementResponse(settlement))
}

// ConfirmExitResponse is the HTTP response for a confirmed exit.
type ConfirmExitResponse struct {
	Settlement   SettlementResponse `json:"settlement"`
	RecordID     string             `json:"record_id"`
	TotalCharged float64            `json:"total_charged"`
	NightCharge  float64            `json:"night_charge,omitempty"`
	DebtID       string             `json:"debt_id,omitempty"`
}

// ConfirmExit handles POST /v1/vehicles/:id/exit
func (h *VehicleHandler) ConfirmExit(c *gin.Context) {
	result, err := h.settlementService.ConfirmExit(c.Request.Context(), middleware.BusinessID(c), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	resp := ConfirmExitResponse{
		Settlement:   toSettlementResponse(result.Settlement),
		RecordID:     result.Record.ID,
		TotalCharged: result.Record.Amount,
		NightCharge:  result.Record.NightCharge,
	}
	if result.SettledDebt != nil {
		resp.DebtID = result.SettledDebt.ID
	}
	respondJSON(c, http.StatusOK, resp)
}

// CapacityResponse is the HTTP representation of lot occupancy.
type CapacityResponse struct {
	VehiclesInside  int     `json:"vehicles_inside"`
	MaxCapacity     int     `json:"max_capacity"`
	AvailableSpaces int     `json:"available_spaces"`
	OccupancyRate   float64 `json:"occupancy_rate"`
	Full            bool    `json:"full"`
}

// Capacity handles GET /v1/capacity
func (h *VehicleHandler) Capacity(c *gin.Context) {
	snapshot, err := h.vehicleService.Capacity(c.Request.Context(), middleware.BusinessID(c))
	if err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusOK, CapacityResponse{
		VehiclesInside:  snapshot.VehiclesInside,
		MaxCapacity:     snapshot.MaxCapacity,
		AvailableSpaces: snapshot.AvailableSpaces,
		OccupancyRate:   snapshot.OccupancyRate,
		Full:            snapshot.Full,
	})
}
