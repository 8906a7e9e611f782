package tests

import (
	"context"
	"errors"
	"testing"
	"time"

	"easypark/internal/domain"
	"easypark/internal/service"
)

// ──────────────────────────────────────────────
// 8. SUBSCRIBERS AND INCIDENTS
// ──────────────────────────────────────────────

func TestSubscriberStatus_DerivedFromDates(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	cases := []struct {
		name   string
		start  time.Time
		months int
		want   domain.SubscriberStatus
	}{
		{"active mid-term", time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC), 1, domain.SubscriberActive},
		{"expired last month", time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC), 2, domain.SubscriberExpired},
		{"pending future start", time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC), 1, domain.SubscriberPending},
		{"expires exactly at boundary", time.Date(2025, 5, 15, 12, 0, 0, 0, time.UTC), 1, domain.SubscriberExpired},
	}

	for _, tc := range cases {
		s := &domain.Subscriber{StartDate: tc.start, SubscriptionMonths: tc.months}
		if got := s.StatusAt(now); got != tc.want {
			t.Errorf("%s: expected %s, got %s", tc.name, tc.want, got)
		}
	}
}

func TestSubscriber_CreateNormalizesPlate(t *testing.T) {
	t.Parallel()

	svc := service.NewSubscriberService(NewMockSubscriberRepository())

	subscriber, err := svc.Create(context.Background(), "biz-1", &service.SubscriberRequest{
		Name:               "Maria Lopez",
		VehiclePlate:       " xyz-789 ",
		SubscriptionMonths: 3,
		Amount:             120.0,
		StartDate:          time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if subscriber.VehiclePlate != "XYZ-789" {
		t.Errorf("expected normalized plate XYZ-789, got %q", subscriber.VehiclePlate)
	}
}

func TestSubscriber_CreateRejectsMissingFields(t *testing.T) {
	t.Parallel()

	svc := service.NewSubscriberService(NewMockSubscriberRepository())

	_, err := svc.Create(context.Background(), "biz-1", &service.SubscriberRequest{
		Name:               "",
		VehiclePlate:       "XYZ-789",
		SubscriptionMonths: 3,
		StartDate:          time.Now(),
	})
	if !errors.Is(err, service.ErrInvalidSubscriber) {
		t.Errorf("expected ErrInvalidSubscriber, got %v", err)
	}
}

func TestSubscriber_OtherBusinessHidden(t *testing.T) {
	t.Parallel()

	repo := NewMockSubscriberRepository()
	svc := service.NewSubscriberService(repo)

	created, err := svc.Create(context.Background(), "biz-2", &service.SubscriberRequest{
		Name:               "Maria Lopez",
		VehiclePlate:       "XYZ-789",
		SubscriptionMonths: 3,
		StartDate:          time.Now(),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := svc.Get(context.Background(), "biz-1", created.ID); err == nil {
		t.Error("expected error reading another business's subscriber")
	}
}

func TestIncident_ReportAndResolve(t *testing.T) {
	t.Parallel()

	repo := NewMockIncidentRepository()
	svc := service.NewIncidentService(repo, nil)

	incident, err := svc.Report(context.Background(), &service.ReportIncidentRequest{
		BusinessID:  "biz-1",
		VehicleID:   "veh-1",
		Description: "scratched door on row B",
		ReportedBy:  "user-1",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if incident.Status != domain.IncidentPending {
		t.Errorf("expected PENDING status, got %s", incident.Status)
	}

	pending, err := svc.ListPending(context.Background(), "biz-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(pending) != 1 {
		t.Errorf("expected 1 pending incident, got %d", len(pending))
	}

	resolved, err := svc.Resolve(context.Background(), "biz-1", incident.ID, "owner notified, damage covered")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resolved.Status != domain.IncidentResolved {
		t.Errorf("expected RESOLVED status, got %s", resolved.Status)
	}
	if resolved.ResolvedAt.IsZero() {
		t.Error("expected resolution timestamp to be set")
	}

	// Resolving twice is an error, not a no-op.
	if _, err := svc.Resolve(context.Background(), "biz-1", incident.ID, "again"); !errors.Is(err, service.ErrIncidentResolved) {
		t.Errorf("expected ErrIncidentResolved, got %v", err)
	}
}

func TestIncident_ReportRejectsBlankDescription(t *testing.T) {
	t.Parallel()

	svc := service.NewIncidentService(NewMockIncidentRepository(), nil)

	_, err := svc.Report(context.Background(), &service.ReportIncidentRequest{
		BusinessID:  "biz-1",
		Description: "   ",
	})
	if !errors.Is(err, service.ErrInvalidIncident) {
		t.Errorf("expected ErrInvalidIncident, got %v", err)
	}
}
