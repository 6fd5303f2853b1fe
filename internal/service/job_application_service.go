package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/spec-kit/storefront-service/internal/domain"
	"github.com/spec-kit/storefront-service/internal/events"
	"github.com/spec-kit/storefront-service/internal/repository"
	apperrors "github.com/spec-kit/storefront-service/pkg/util/errorutil"
)

// JobApplicationService manages careers submissions and their review status.
type JobApplicationService struct {
	applications repository.JobApplicationRepository
	dispatcher   events.Dispatcher
	logger       *zap.Logger
}

// JobApplicationInput describes a new submission.
type JobApplicationInput struct {
	FullName    string
	Email       string
	Phone       string
	Position    string
	CoverLetter string
	ResumeURL   string
}

// NewJobApplicationService constructs the service.
func NewJobApplicationService(applications repository.JobApplicationRepository, dispatcher events.Dispatcher, logger *zap.Logger) *JobApplicationService {
	return &JobApplicationService{applications: applications, dispatcher: dispatcher, logger: loggerOrNop(logger)}
}

// Submit stores a pending application.
func (s *JobApplicationService) Submit(ctx context.Context, input JobApplicationInput) (*domain.JobApplication, error) {
	app := &domain.JobApplication{
		FullName:    input.FullName,
		Email:       input.Email,
		Phone:       input.Phone,
		Position:    input.Position,
		CoverLetter: input.CoverLetter,
		ResumeURL:   input.ResumeURL,
		Status:      domain.JobApplicationStatusPending,
	}
	if err := s.applications.Create(ctx, app); err != nil {
		return nil, apperrors.StoreError("job application", err)
	}
	return app, nil
}

// List returns applications, optionally filtered by status.
func (s *JobApplicationService) List(ctx context.Context, status *domain.JobApplicationStatus) ([]domain.JobApplication, error) {
	if status != nil && !status.Valid() {
		return nil, apperrors.NewValidationError("invalid application status", map[string]any{"status": *status})
	}
	apps, err := s.applications.List(ctx, status)
	if err != nil {
		return nil, apperrors.StoreError("job application", err)
	}
	return apps, nil
}

// Get returns one application.
func (s *JobApplicationService) Get(ctx context.Context, id string) (*domain.JobApplication, error) {
	app, err := s.applications.GetByID(ctx, id)
	if err != nil {
		return nil, apperrors.StoreError("job application", err)
	}
	return app, nil
}

// UpdateStatus sets the review status and notifies listeners when it changed.
func (s *JobApplicationService) UpdateStatus(ctx context.Context, id string, status domain.JobApplicationStatus, actorID *string) (*domain.JobApplication, error) {
	if !status.Valid() {
		return nil, apperrors.NewValidationError("invalid application status", map[string]any{"status": status})
	}

	current, err := s.applications.GetByID(ctx, id)
	if err != nil {
		return nil, apperrors.StoreError("job application", err)
	}

	updated, err := s.applications.UpdateStatus(ctx, id, status)
	if err != nil {
		return nil, apperrors.StoreError("job application", err)
	}

	if current.Status != updated.Status {
		publish(ctx, s.dispatcher, s.logger, events.Event{
			Type:     events.EventJobApplicationStatusChanged,
			EntityID: updated.ID,
			ActorID:  actorID,
			Payload: events.JobApplicationStatusChangedPayload{
				FullName:  updated.FullName,
				Email:     updated.Email,
				Position:  updated.Position,
				OldStatus: current.Status,
				NewStatus: updated.Status,
			},
		})
	}
	return updated, nil
}

// Delete removes an application.
func (s *JobApplicationService) Delete(ctx context.Context, id string) error {
	if err := s.applications.Delete(ctx, id); err != nil {
		return apperrors.StoreError("job application", err)
	}
	return nil
}
