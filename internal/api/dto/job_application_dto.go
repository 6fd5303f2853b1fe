package dto

import (
	"time"

	"github.com/spec-kit/storefront-service/internal/domain"
	"github.com/spec-kit/storefront-service/internal/service"
)

// JobApplicationRequest payload from the careers page.
type JobApplicationRequest struct {
	FullName    string `json:"fullName" validate:"required,max=200"`
	Email       string `json:"email" validate:"required,email"`
	Phone       string `json:"phone" validate:"max=40"`
	Position    string `json:"position" validate:"required,max=200"`
	CoverLetter string `json:"coverLetter" validate:"max=10000"`
	ResumeURL   string `json:"resumeUrl" validate:"omitempty,url"`
}

func (r *JobApplicationRequest) Validate() error {
	trim(&r.FullName, &r.Email, &r.Phone, &r.Position, &r.ResumeURL)
	return validate.Struct(r)
}

// Input converts the request for the job application service.
func (r *JobApplicationRequest) Input() service.JobApplicationInput {
	return service.JobApplicationInput{
		FullName:    r.FullName,
		Email:       r.Email,
		Phone:       r.Phone,
		Position:    r.Position,
		CoverLetter: r.CoverLetter,
		ResumeURL:   r.ResumeURL,
	}
}

// JobApplicationStatusRequest payload for PATCH.
type JobApplicationStatusRequest struct {
	Status domain.JobApplicationStatus `json:"status" validate:"required,oneof=pending reviewed shortlisted rejected hired"`
}

func (r *JobApplicationStatusRequest) Validate() error {
	return validate.Struct(r)
}

// JobApplicationResponse shape.
type JobApplicationResponse struct {
	ID          string                      `json:"id"`
	FullName    string                      `json:"fullName"`
	Email       string                      `json:"email"`
	Phone       string                      `json:"phone"`
	Position    string                      `json:"position"`
	CoverLetter string                      `json:"coverLetter"`
	ResumeURL   string                      `json:"resumeUrl"`
	Status      domain.JobApplicationStatus `json:"status"`
	CreatedAt   time.Time                   `json:"createdAt"`
	UpdatedAt   time.Time                   `json:"updatedAt"`
}

func NewJobApplicationResponse(a *domain.JobApplication) JobApplicationResponse {
	return JobApplicationResponse{
		ID:          a.ID,
		FullName:    a.FullName,
		Email:       a.Email,
		Phone:       a.Phone,
		Position:    a.Position,
		CoverLetter: a.CoverLetter,
		ResumeURL:   a.ResumeURL,
		Status:      a.Status,
		CreatedAt:   a.CreatedAt,
		UpdatedAt:   a.UpdatedAt,
	}
}

func NewJobApplicationResponses(apps []domain.JobApplication) []JobApplicationResponse {
	out := make([]JobApplicationResponse, 0, len(apps))
	for i := range apps {
		out = append(out, NewJobApplicationResponse(&apps[i]))
	}
	return out
}
