package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"easypark/internal/middleware"
	"easypark/internal/service"
)

// DebtHandler handles HTTP requests for vehicle debts.
type DebtHandler struct {
	debtService *service.DebtService
}

// NewDebtHandler creates a new DebtHandler.
func NewDebtHandler(debtService *service.DebtService) *DebtHandler {
	return &DebtHandler{debtService: debtService}
}

// ListDebts handles GET /v1/debts
func (h *DebtHandler) ListDebts(c *gin.Context) {
	unpaidOnly := c.Query("unpaid") == "true"

	debts, err := h.debtService.ListDebts(c.Request.Context(), middleware.BusinessID(c), unpaidOnly)
	if err != nil {
		respondError(c, err)
		return
	}

	responses := make([]DebtResponse, 0, len(debts))
	for _, d := range debts {
		responses = append(responses, toDebtResponse(d))
	}
	respondJSON(c, http.StatusOK, responses)
}

// PayDebt handles POST /v1/debts/:id/pay
func (h *DebtHandler) PayDebt(c *gin.Context) {
	record, err := h.debtService.PayDebt(c.Request.Context(), middleware.BusinessID(c), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusOK, toAccountingResponse(record))
}
