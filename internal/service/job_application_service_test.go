package service

import (
	"context"
	"testing"

	"github.com/spec-kit/storefront-service/internal/domain"
	"github.com/spec-kit/storefront-service/internal/events"
	apperrors "github.com/spec-kit/storefront-service/pkg/util/errorutil"
)

func TestJobApplicationStatusChange(t *testing.T) {
	apps := &fakeApplications{apps: map[string]*domain.JobApplication{}}
	dispatcher := events.NewInMemoryDispatcher()
	var changes []events.JobApplicationStatusChangedPayload
	dispatcher.Subscribe(events.EventJobApplicationStatusChanged, func(_ context.Context, e events.Event) error {
		changes = append(changes, e.Payload.(events.JobApplicationStatusChangedPayload))
		return nil
	})
	svc := NewJobApplicationService(apps, dispatcher, nil)

	app, err := svc.Submit(context.Background(), JobApplicationInput{FullName: "Grace", Email: "grace@example.com", Position: "Barista"})
	if err != nil {
		t.Fatalf("Submit() error = %v", err)
	}
	if app.Status != domain.JobApplicationStatusPending {
		t.Errorf("Submit() status = %s, want pending", app.Status)
	}

	updated, err := svc.UpdateStatus(context.Background(), app.ID, domain.JobApplicationStatusShortlisted, nil)
	if err != nil {
		t.Fatalf("UpdateStatus() error = %v", err)
	}
	if updated.Status != domain.JobApplicationStatusShortlisted {
		t.Errorf("UpdateStatus() status = %s", updated.Status)
	}

	if _, err := svc.UpdateStatus(context.Background(), app.ID, domain.JobApplicationStatusShortlisted, nil); err != nil {
		t.Fatalf("UpdateStatus() repeat error = %v", err)
	}

	if len(changes) != 1 {
		t.Fatalf("status events = %d, want 1", len(changes))
	}
	if changes[0].OldStatus != domain.JobApplicationStatusPending || changes[0].NewStatus != domain.JobApplicationStatusShortlisted {
		t.Errorf("event payload = %+v", changes[0])
	}
}

func TestJobApplicationValidation(t *testing.T) {
	apps := &fakeApplications{apps: map[string]*domain.JobApplication{}}
	svc := NewJobApplicationService(apps, nil, nil)

	if _, err := svc.UpdateStatus(context.Background(), "app-1", "promoted", nil); apperrors.ToDomainError(err).Code != "VALIDATION_FAILED" {
		t.Errorf("UpdateStatus(invalid) error = %v", err)
	}
	if _, err := svc.UpdateStatus(context.Background(), "missing", domain.JobApplicationStatusHired, nil); apperrors.ToDomainError(err).Code != "NOT_FOUND" {
		t.Errorf("UpdateStatus(missing) error = %v", err)
	}
	bad := domain.JobApplicationStatus("bogus")
	if _, err := svc.List(context.Background(), &bad); apperrors.ToDomainError(err).Code != "VALIDATION_FAILED" {
		t.Errorf("List(invalid) error = %v", err)
	}
}
