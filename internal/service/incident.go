package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"easypark/internal/domain"
	"easypark/internal/repository"
)

// IncidentService manages operator-reported incidents.
type IncidentService struct {
	incidentRepo  repository.IncidentRepository
	notifications *NotificationService
}

// NewIncidentService creates a new IncidentService.
func NewIncidentService(incidentRepo repository.IncidentRepository, notifications *NotificationService) *IncidentService {
	return &IncidentService{
		incidentRepo:  incidentRepo,
		notifications: notifications,
	}
}

// ReportIncidentRequest contains the input for reporting an incident.
type ReportIncidentRequest struct {
	BusinessID  string
	VehicleID   string
	Description string
	ReportedBy  string
}

// Report records a new incident in PENDING state.
func (s *IncidentService) Report(ctx context.Context, req *ReportIncidentRequest) (*domain.Incident, error) {
	if strings.TrimSpace(req.Description) == "" {
		return nil, ErrInvalidIncident
	}

	incident := &domain.Incident{
		ID:          uuid.New().String(),
		BusinessID:  req.BusinessID,
		VehicleID:   req.VehicleID,
		Description: strings.TrimSpace(req.Description),
		ReportedBy:  req.ReportedBy,
		Status:      domain.IncidentPending,
		ReportedAt:  time.Now(),
	}

	if err := s.incidentRepo.Create(ctx, incident); err != nil {
		return nil, err
	}

	if s.notifications != nil {
		_ = s.notifications.NotifyIncidentReported(ctx, incident)
	}

	return incident, nil
}

// Get retrieves an incident owned by the business.
func (s *IncidentService) Get(ctx context.Context, businessID, id string) (*domain.Incident, error) {
	incident, err := s.incidentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if incident.BusinessID != businessID {
		return nil, repository.ErrNotFound
	}
	return incident, nil
}

// List retrieves the business's incidents, newest first.
func (s *IncidentService) List(ctx context.Context, businessID string) ([]*domain.Incident, error) {
	return s.incidentRepo.GetByBusiness(ctx, businessID)
}

// ListPending retrieves only unresolved incidents.
func (s *IncidentService) ListPending(ctx context.Context, businessID string) ([]*domain.Incident, error) {
	return s.incidentRepo.GetPendingByBusiness(ctx, businessID)
}

// Resolve closes a pending incident with a resolution note.
func (s *IncidentService) Resolve(ctx context.Context, businessID, id, resolution string) (*domain.Incident, error) {
	incident, err := s.Get(ctx, businessID, id)
	if err != nil {
		return nil, err
	}
	if incident.Status == domain.IncidentResolved {
		return nil, ErrIncidentResolved
	}

	incident.Status = domain.IncidentResolved
	incident.Resolution = resolution
	incident.ResolvedAt = time.Now()

	if err := s.incidentRepo.Update(ctx, incident); err != nil {
		return nil, err
	}
	return incident, nil
}
