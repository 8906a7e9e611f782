package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"easypark/internal/domain"
	"easypark/internal/middleware"
	"easypark/internal/service"
)

// IncidentHandler handles HTTP requests for incidents.
type IncidentHandler struct {
	incidentService *service.IncidentService
}

// NewIncidentHandler creates a new IncidentHandler.
func NewIncidentHandler(incidentService *service.IncidentService) *IncidentHandler {
	return &IncidentHandler{incidentService: incidentService}
}

// IncidentResponse is the HTTP representation of an incident.
type IncidentResponse struct {
	ID          string `json:"id"`
	VehicleID   string `json:"vehicle_id,omitempty"`
	Description string `json:"description"`
	ReportedBy  string `json:"reported_by,omitempty"`
	Status      string `json:"status"`
	Resolution  string `json:"resolution,omitempty"`
	ReportedAt  string `json:"reported_at"`
	ResolvedAt  string `json:"resolved_at,omitempty"`
}

func toIncidentResponse(i *domain.Incident) IncidentResponse {
	resp := IncidentResponse{
		ID:          i.ID,
		VehicleID:   i.VehicleID,
		Description: i.Description,
		ReportedBy:  i.ReportedBy,
		Status:      string(i.Status),
		Resolution:  i.Resolution,
		ReportedAt:  i.ReportedAt.Format(time.RFC3339),
	}
	if !i.ResolvedAt.IsZero() {
		resp.ResolvedAt = i.ResolvedAt.Format(time.RFC3339)
	}
	return resp
}

// ReportIncidentRequest is the HTTP request body for reporting an
// incident.
type ReportIncidentRequest struct {
	VehicleID   string `json:"vehicle_id"`
	Description string `json:"description" binding:"required"`
}

// Report handles POST /v1/incidents
func (h *IncidentHandler) Report(c *gin.Context) {
	var req ReportIncidentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, service.ErrInvalidIncident)
		return
	}

	incident, err := h.incidentService.Report(c.Request.Context(), &service.ReportIncidentRequest{
		BusinessID:  middleware.BusinessID(c),
		VehicleID:   req.VehicleID,
		Description: req.Description,
		ReportedBy:  middleware.UserID(c),
	})
	if err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusCreated, toIncidentResponse(incident))
}

// List handles GET /v1/incidents
func (h *IncidentHandler) List(c *gin.Context) {
	incidents, err := h.incidentService.List(c.Request.Context(), middleware.BusinessID(c))
	if err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusOK, toIncidentResponses(incidents))
}

// ListPending handles GET /v1/incidents/pending
func (h *IncidentHandler) ListPending(c *gin.Context) {
	incidents, err := h.incidentService.ListPending(c.Request.Context(), middleware.BusinessID(c))
	if err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusOK, toIncidentResponses(incidents))
}

// ResolveIncidentRequest is the HTTP request body for resolving an
// incident.
type ResolveIncidentRequest struct {
	Resolution string `json:"resolution"`
}

// Resolve handles PATCH /v1/incidents/:id
func (h *IncidentHandler) Resolve(c *gin.Context) {
	var req ResolveIncidentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, service.ErrInvalidIncident)
		return
	}

	incident, err := h.incidentService.Resolve(c.Request.Context(), middleware.BusinessID(c), c.Param("id"), req.Resolution)
	if err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusOK, toIncidentResponse(incident))
}

func toIncidentResponses(incidents []*domain.Incident) []IncidentResponse {
	responses := make([]IncidentResponse, 0, len(incidents))
	for _, i := range incidents {
		responses = append(responses, toIncidentResponse(i))
	}
	return responses
}
