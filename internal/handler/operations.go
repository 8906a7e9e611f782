package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"easypark/internal/domain"
	"easypark/internal/middleware"
	"easypark/internal/service"
)

// OperationsHandler handles HTTP requests for the day lifecycle.
type OperationsHandler struct {
	operationsService *service.OperationsService
}

// NewOperationsHandler creates a new OperationsHandler.
func NewOperationsHandler(operationsService *service.OperationsService) *OperationsHandler {
	return &OperationsHandler{operationsService: operationsService}
}

// OperationsDayResponse is the HTTP representation of a business day.
type OperationsDayResponse struct {
	ID          string  `json:"id"`
	Date        string  `json:"date"`
	Status      string  `json:"status"`
	OpenedAt    string  `json:"opened_at"`
	ClosedAt    string  `json:"closed_at,omitempty"`
	InitialCash float64 `json:"initial_cash"`
	FinalCash   float64 `json:"final_cash"`
	Notes       string  `json:"notes,omitempty"`
}

func toDayResponse(d *domain.OperationsDay) OperationsDayResponse {
	resp := OperationsDayResponse{
		ID:          d.ID,
		Date:        d.Date,
		Status:      string(d.Status),
		OpenedAt:    d.OpenedAt.Format(time.RFC3339),
		InitialCash: d.InitialCash,
		FinalCash:   d.FinalCash,
		Notes:       d.Notes,
	}
	if !d.ClosedAt.IsZero() {
		resp.ClosedAt = d.ClosedAt.Format(time.RFC3339)
	}
	return resp
}

// DebtResponse is the HTTP representation of a vehicle debt.
type DebtResponse struct {
	ID            string  `json:"id"`
	VehicleID     string  `json:"vehicle_id"`
	Plate         string  `json:"plate"`
	Category      string  `json:"category"`
	EntryAt       string  `json:"entry_at"`
	RegularHours  int     `json:"regular_hours"`
	RegularAmount float64 `json:"regular_amount"`
	NightCharge   float64 `json:"night_charge"`
	TotalDebt     float64 `json:"total_debt"`
	Paid          bool    `json:"paid"`
	UpdatedAt     string  `json:"updated_at"`
}

func toDebtResponse(d *domain.VehicleDebt) DebtResponse {
	return DebtResponse{
		ID:            d.ID,
		VehicleID:     d.VehicleID,
		Plate:         d.Plate,
		Category:      string(d.Category),
		EntryAt:       d.EntryAt.Format(time.RFC3339),
		RegularHours:  d.RegularHours,
		RegularAmount: d.RegularAmount,
		NightCharge:   d.NightCharge,
		TotalDebt:     d.TotalDebt,
		Paid:          d.Paid,
		UpdatedAt:     d.UpdatedAt.Format(time.RFC3339),
	}
}

// StartDayRequest is the HTTP request body for opening a day.
type StartDayRequest struct {
	InitialCash float64 `json:"initial_cash"`
}

// StartDay handles POST /v1/operations/start
func (h *OperationsHandler) StartDay(c *gin.Context) {
	var req StartDayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, service.ErrInvalidAmount)
		return
	}

	day, err := h.operationsService.StartDay(c.Request.Context(), middleware.BusinessID(c), req.InitialCash)
	if err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusCreated, toDayResponse(day))
}

// CloseDayRequest is the HTTP request body for closing a day.
type CloseDayRequest struct {
	FinalCash float64 `json:"final_cash"`
	Notes     string  `json:"notes"`
}

// CloseDayResponse is the HTTP response for a closed day.
type CloseDayResponse struct {
	Day   OperationsDayResponse `json:"day"`
	Debts []DebtResponse        `json:"debts"`
}

// CloseDay handles POST /v1/operations/close
func (h *OperationsHandler) CloseDay(c *gin.Context) {
	var req CloseDayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, service.ErrInvalidAmount)
		return
	}

	result, err := h.operationsService.CloseDay(c.Request.Context(), middleware.BusinessID(c), req.FinalCash, req.Notes)
	if err != nil {
		respondError(c, err)
		return
	}

	debts := make([]DebtResponse, 0, len(result.Debts))
	for _, d := range result.Debts {
		debts = append(debts, toDebtResponse(d))
	}
	respondJSON(c, http.StatusOK, CloseDayResponse{
		Day:   toDayResponse(result.Day),
		Debts: debts,
	})
}

// CurrentDay handles GET /v1/operations/current
func (h *OperationsHandler) CurrentDay(c *gin.Context) {
	day, err := h.operationsService.CurrentDay(c.Request.Context(), middleware.BusinessID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	if day == nil {
		respondJSON(c, http.StatusOK, gin.H{"open": false})
		return
	}

	respondJSON(c, http.StatusOK, gin.H{"open": true, "day": toDayResponse(day)})
}

// History handles GET /v1/operations
func (h *OperationsHandler) History(c *gin.Context) {
	days, err := h.operationsService.History(c.Request.Context(), middleware.BusinessID(c))
	if err != nil {
		respondError(c, err)
		return
	}

	responses := make([]OperationsDayResponse, 0, len(days))
	for _, d := range days {
		responses = append(responses, toDayResponse(d))
	}
	respondJSON(c, http.StatusOK, responses)
}

// GetDay handles GET /v1/operations/:id
func (h *OperationsHandler) GetDay(c *gin.Context) {
	day, err := h.operationsService.GetDay(c.Request.Context(), middleware.BusinessID(c), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusOK, toDayResponse(day))
}
