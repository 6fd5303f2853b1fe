package domain

import "time"

// JobApplicationStatus tracks review progress of an application.
type JobApplicationStatus string

const (
	JobApplicationStatusPending     JobApplicationStatus = "pending"
	JobApplicationStatusReviewed    JobApplicationStatus = "reviewed"
	JobApplicationStatusShortlisted JobApplicationStatus = "shortlisted"
	JobApplicationStatusRejected    JobApplicationStatus = "rejected"
	JobApplicationStatusHired       JobApplicationStatus = "hired"
)

// JobApplication is a candidate submission from the careers page.
type JobApplication struct {
	ID          string
	FullName    string
	Email       string
	Phone       string
	Position    string
	CoverLetter string
	ResumeURL   string
	Status      JobApplicationStatus
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Valid reports whether s is a known application status.
func (s JobApplicationStatus) Valid() bool {
	switch s {
	case JobApplicationStatusPending, JobApplicationStatusReviewed, JobApplicationStatusShortlisted,
		JobApplicationStatusRejected, JobApplicationStatusHired:
		return true
	}
	return false
}
