package handler

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"easypark/internal/domain"
	"easypark/internal/middleware"
	"easypark/internal/service"
)

// AccountingHandler handles HTTP requests for the ledger and its
// exports.
type AccountingHandler struct {
	accountingService *service.AccountingService
	reportService     *service.ReportService
}

// NewAccountingHandler creates a new AccountingHandler.
func NewAccountingHandler(accountingService *service.AccountingService, reportService *service.ReportService) *AccountingHandler {
	return &AccountingHandler{
		accountingService: accountingService,
		reportService:     reportService,
	}
}

// AccountingResponse is the HTTP representation of a ledger record.
type AccountingResponse struct {
	ID            string  `json:"id"`
	Kind          string  `json:"kind"`
	VehicleID     string  `json:"vehicle_id,omitempty"`
	Plate         string  `json:"plate,omitempty"`
	Category      string  `json:"category,omitempty"`
	EntryAt       string  `json:"entry_at,omitempty"`
	ExitAt        string  `json:"exit_at,omitempty"`
	HoursParked   float64 `json:"hours_parked,omitempty"`
	HoursToPay    int     `json:"hours_to_pay,omitempty"`
	RatePerHour   float64 `json:"rate_per_hour,omitempty"`
	Amount        float64 `json:"amount"`
	NightCharge   float64 `json:"night_charge,omitempty"`
	DebtID        string  `json:"debt_id,omitempty"`
	Currency      string  `json:"currency"`
	Description   string  `json:"description,omitempty"`
	OperationDate string  `json:"operation_date"`
	CreatedAt     string  `json:"created_at"`
}

func toAccountingResponse(r *domain.AccountingRecord) AccountingResponse {
	resp := AccountingResponse{
		ID:            r.ID,
		Kind:          string(r.Kind),
		VehicleID:     r.VehicleID,
		Plate:         r.Plate,
		Category:      string(r.Category),
		HoursParked:   r.HoursParked,
		HoursToPay:    r.HoursToPay,
		RatePerHour:   r.RatePerHour,
		Amount:        r.Amount,
		NightCharge:   r.NightCharge,
		DebtID:        r.DebtID,
		Currency:      r.Currency,
		Description:   r.Description,
		OperationDate: r.OperationDate,
		CreatedAt:     r.CreatedAt.Format(time.RFC3339),
	}
	if !r.EntryAt.IsZero() {
		resp.EntryAt = r.EntryAt.Format(time.RFC3339)
	}
	if !r.ExitAt.IsZero() {
		resp.ExitAt = r.ExitAt.Format(time.RFC3339)
	}
	return resp
}

// ListRecords handles GET /v1/accounting
func (h *AccountingHandler) ListRecords(c *gin.Context) {
	filter := service.ListFilter{
		Date:  c.Query("date"),
		From:  c.Query("from"),
		To:    c.Query("to"),
		Plate: c.Query("plate"),
	}

	records, err := h.accountingService.ListRecords(c.Request.Context(), middleware.BusinessID(c), filter)
	if err != nil {
		respondError(c, err)
		return
	}

	responses := make([]AccountingResponse, 0, len(records))
	for _, r := range records {
		responses = append(responses, toAccountingResponse(r))
	}
	respondJSON(c, http.StatusOK, responses)
}

// ManualEntryRequest is the HTTP request body for a manual ledger entry.
type ManualEntryRequest struct {
	Kind        string  `json:"kind" binding:"required"`
	Amount      float64 `json:"amount" binding:"required"`
	Description string  `json:"description"`
}

// CreateManualEntry handles POST /v1/accounting
func (h *AccountingHandler) CreateManualEntry(c *gin.Context) {
	var req ManualEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, service.ErrInvalidAmount)
		return
	}

	record, err := h.accountingService.CreateManualEntry(c.Request.Context(), &service.ManualEntryRequest{
		BusinessID:  middleware.BusinessID(c),
		Kind:        domain.AccountingKind(req.Kind),
		Amount:      req.Amount,
		Description: req.Description,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusCreated, toAccountingResponse(record))
}

// SummaryResponse is the HTTP representation of ledger aggregates.
type SummaryResponse struct {
	TotalRevenue      float64             `json:"total_revenue"`
	TotalRecords      int                 `json:"total_records"`
	CarTruckRevenue   float64             `json:"car_truck_revenue"`
	MotorcycleRevenue float64             `json:"motorcycle_revenue"`
	AverageStayHours  float64             `json:"average_stay_hours"`
	Currency          string              `json:"currency"`
	RevenueByDay      []DailyRevenueEntry `json:"revenue_by_day"`
}

// DailyRevenueEntry is one day's revenue bucket.
type DailyRevenueEntry struct {
	Date    string  `json:"date"`
	Revenue float64 `json:"revenue"`
}

// Summary handles GET /v1/accounting/summary
func (h *AccountingHandler) Summary(c *gin.Context) {
	summary, err := h.accountingService.Summarize(c.Request.Context(), middleware.BusinessID(c))
	if err != nil {
		respondError(c, err)
		return
	}

	byDay := make([]DailyRevenueEntry, 0, len(summary.RevenueByDay))
	for _, d := range summary.RevenueByDay {
		byDay = append(byDay, DailyRevenueEntry{Date: d.Date, Revenue: d.Revenue})
	}
	respondJSON(c, http.StatusOK, SummaryResponse{
		TotalRevenue:      summary.TotalRevenue,
		TotalRecords:      summary.TotalRecords,
		CarTruckRevenue:   summary.CarTruckRevenue,
		MotorcycleRevenue: summary.MotorcycleRevenue,
		AverageStayHours:  summary.AverageStayHours,
		Currency:          summary.Currency,
		RevenueByDay:      byDay,
	})
}

// SettlementTicket handles GET /v1/accounting/:id/ticket.pdf
func (h *AccountingHandler) SettlementTicket(c *gin.Context) {
	data, err := h.reportService.SettlementTicketPDF(c.Request.Context(), middleware.BusinessID(c), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=ticket-%s.pdf", c.Param("id")))
	c.Data(http.StatusOK, "application/pdf", data)
}

// AccountingReport handles GET /v1/reports/accounting.xlsx
func (h *AccountingHandler) AccountingReport(c *gin.Context) {
	from := c.Query("from")
	to := c.Query("to")

	data, err := h.reportService.AccountingXLSX(c.Request.Context(), middleware.BusinessID(c), from, to)
	if err != nil {
		respondError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=accounting-%s-%s.xlsx", from, to))
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", data)
}
