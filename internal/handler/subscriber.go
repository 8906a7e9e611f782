package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"easypark/internal/domain"
	"easypark/internal/middleware"
	"easypark/internal/service"
)

// SubscriberHandler handles HTTP requests for monthly subscribers.
type SubscriberHandler struct {
	subscriberService *service.SubscriberService
}

// NewSubscriberHandler creates a new SubscriberHandler.
func NewSubscriberHandler(subscriberService *service.SubscriberService) *SubscriberHandler {
	return &SubscriberHandler{subscriberService: subscriberService}
}

// SubscriberRequest is the HTTP request body for creating or updating a
// subscriber.
type SubscriberRequest struct {
	Name               string  `json:"name" binding:"required"`
	Phone              string  `json:"phone"`
	Email              string  `json:"email"`
	VehiclePlate       string  `json:"vehicle_plate" binding:"required"`
	SubscriptionMonths int     `json:"subscription_months" binding:"required"`
	Amount             float64 `json:"amount"`
	StartDate          string  `json:"start_date" binding:"required"`
	PaymentDate        string  `json:"payment_date"`
}

// SubscriberResponse is the HTTP representation of a subscriber.
type SubscriberResponse struct {
	ID                 string  `json:"id"`
	Name               string  `json:"name"`
	Phone              string  `json:"phone,omitempty"`
	Email              string  `json:"email,omitempty"`
	VehiclePlate       string  `json:"vehicle_plate"`
	SubscriptionMonths int     `json:"subscription_months"`
	Amount             float64 `json:"amount"`
	StartDate          string  `json:"start_date"`
	PaymentDate        string  `json:"payment_date,omitempty"`
	Status             string  `json:"status"`
}

func toSubscriberResponse(s *domain.Subscriber) SubscriberResponse {
	resp := SubscriberResponse{
		ID:                 s.ID,
		Name:               s.Name,
		Phone:              s.Phone,
		Email:              s.Email,
		VehiclePlate:       s.VehiclePlate,
		SubscriptionMonths: s.SubscriptionMonths,
		Amount:             s.Amount,
		StartDate:          s.StartDate.Format("2006-01-02"),
		Status:             string(s.StatusAt(time.Now())),
	}
	if !s.PaymentDate.IsZero() {
		resp.PaymentDate = s.PaymentDate.Format("2006-01-02")
	}
	return resp
}

func (r *SubscriberRequest) toService() (*service.SubscriberRequest, error) {
	start, err := time.Parse("2006-01-02", r.StartDate)
	if err != nil {
		return nil, service.ErrInvalidSubscriber
	}
	req := &service.SubscriberRequest{
		Name:               r.Name,
		Phone:              r.Phone,
		Email:              r.Email,
		VehiclePlate:       r.VehiclePlate,
		SubscriptionMonths: r.SubscriptionMonths,
		Amount:             r.Amount,
		StartDate:          start,
	}
	if r.PaymentDate != "" {
		payment, err := time.Parse("2006-01-02", r.PaymentDate)
		if err != nil {
			return nil, service.ErrInvalidSubscriber
		}
		req.PaymentDate = payment
	}
	return req, nil
}

// Create handles POST /v1/subscribers
func (h *SubscriberHandler) Create(c *gin.Context) {
	var req SubscriberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, service.ErrInvalidSubscriber)
		return
	}

	svcReq, err := req.toService()
	if err != nil {
		respondError(c, err)
		return
	}

	subscriber, err := h.subscriberService.Create(c.Request.Context(), middleware.BusinessID(c), svcReq)
	if err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusCreated, toSubscriberResponse(subscriber))
}

// List handles GET /v1/subscribers
func (h *SubscriberHandler) List(c *gin.Context) {
	subscribers, err := h.subscriberService.List(c.Request.Context(), middleware.BusinessID(c))
	if err != nil {
		respondError(c, err)
		return
	}

	responses := make([]SubscriberResponse, 0, len(subscribers))
	for _, s := range subscribers {
		responses = append(responses, toSubscriberResponse(s))
	}
	respondJSON(c, http.StatusOK, responses)
}

// Get handles GET /v1/subscribers/:id
func (h *SubscriberHandler) Get(c *gin.Context) {
	subscriber, err := h.subscriberService.Get(c.Request.Context(), middleware.BusinessID(c), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusOK, toSubscriberResponse(subscriber))
}

// Update handles PATCH /v1/subscribers/:id
func (h *SubscriberHandler) Update(c *gin.Context) {
	var req SubscriberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, service.ErrInvalidSubscriber)
		return
	}

	svcReq, err := req.toService()
	if err != nil {
		respondError(c, err)
		return
	}

	subscriber, err := h.subscriberService.Update(c.Request.Context(), middleware.BusinessID(c), c.Param("id"), svcReq)
	if err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusOK, toSubscriberResponse(subscriber))
}

// Delete handles DELETE /v1/subscribers/:id
func (h *SubscriberHandler) Delete(c *gin.Context) {
	if err := h.subscriberService.Delete(c.Request.Context(), middleware.BusinessID(c), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
