package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"easypark/internal/middleware"
	"easypark/internal/service"
)

// AnalyticsHandler handles HTTP requests for the dashboard overview.
type AnalyticsHandler struct {
	analyticsService *service.AnalyticsService
}

// NewAnalyticsHandler creates a new AnalyticsHandler.
func NewAnalyticsHandler(analyticsService *service.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{analyticsService: analyticsService}
}

// Overview handles GET /v1/analytics/overview
func (h *AnalyticsHandler) Overview(c *gin.Context) {
	overview, err := h.analyticsService.Overview(c.Request.Context(), middleware.BusinessID(c))
	if err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusOK, overview)
}
