package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/storefront-service/internal/domain"
)

// JobApplicationRepository encapsulates careers submissions persistence.
type JobApplicationRepository interface {
	Create(ctx context.Context, app *domain.JobApplication) error
	GetByID(ctx context.Context, id string) (*domain.JobApplication, error)
	List(ctx context.Context, status *domain.JobApplicationStatus) ([]domain.JobApplication, error)
	UpdateStatus(ctx context.Context, id string, status domain.JobApplicationStatus) (*domain.JobApplication, error)
	Delete(ctx context.Context, id string) error
}

type jobApplicationRepository struct {
	pool *pgxpool.Pool
}

// NewJobApplicationRepository constructs repository.
func NewJobApplicationRepository(pool *pgxpool.Pool) JobApplicationRepository {
	return &jobApplicationRepository{pool: pool}
}

const jobApplicationColumns = `id, full_name, email, phone, position, cover_letter, resume_url, status, created_at, updated_at`

func (r *jobApplicationRepository) Create(ctx context.Context, app *domain.JobApplication) error {
	const query = `
        INSERT INTO job_applications (full_name, email, phone, position, cover_letter, resume_url, status)
        VALUES ($1,$2,$3,$4,$5,$6,$7)
        RETURNING id, created_at, updated_at`
	return r.pool.QueryRow(ctx, query,
		app.FullName,
		app.Email,
		app.Phone,
		app.Position,
		app.CoverLetter,
		app.ResumeURL,
		app.Status,
	).Scan(&app.ID, &app.CreatedAt, &app.UpdatedAt)
}

func (r *jobApplicationRepository) GetByID(ctx context.Context, id string) (*domain.JobApplication, error) {
	return scanJobApplication(r.pool.QueryRow(ctx, `SELECT `+jobApplicationColumns+` FROM job_applications WHERE id=$1`, id))
}

func (r *jobApplicationRepository) List(ctx context.Context, status *domain.JobApplicationStatus) ([]domain.JobApplication, error) {
	query := `SELECT ` + jobApplicationColumns + ` FROM job_applications`
	args := []any{}
	if status != nil {
		query += ` WHERE status=$1`
		args = append(args, *status)
	}
	query += ` ORDER BY created_at DESC`

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var apps []domain.JobApplication
	for rows.Next() {
		app, err := scanJobApplication(rows)
		if err != nil {
			return nil, err
		}
		apps = append(apps, *app)
	}
	return apps, rows.Err()
}

func (r *jobApplicationRepository) UpdateStatus(ctx context.Context, id string, status domain.JobApplicationStatus) (*domain.JobApplication, error) {
	query := `UPDATE job_applications SET status=$1, updated_at=NOW() WHERE id=$2 RETURNING ` + jobApplicationColumns
	return scanJobApplication(r.pool.QueryRow(ctx, query, status, id))
}

func (r *jobApplicationRepository) Delete(ctx context.Context, id string) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM job_applications WHERE id=$1`, id)
	return err
}

func scanJobApplication(row pgx.Row) (*domain.JobApplication, error) {
	var app domain.JobApplication
	if err := row.Scan(
		&app.ID,
		&app.FullName,
		&app.Email,
		&app.Phone,
		&app.Position,
		&app.CoverLetter,
		&app.ResumeURL,
		&app.Status,
		&app.CreatedAt,
		&app.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &app, nil
}
