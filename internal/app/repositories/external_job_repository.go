package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/sanjith/placementcell/internal/app/models"
	"github.com/sanjith/placementcell/internal/pkg/apperrors"
)

const externalJobColumns = `
	id, title, company, apply_url, salary_range, expires_at, status,
	created_by, created_at, updated_at`

// ExternalJobRepository handles off-campus posting database operations
type ExternalJobRepository struct {
	db *pgxpool.Pool
}

// NewExternalJobRepository creates a new ExternalJobRepository
func NewExternalJobRepository(db *pgxpool.Pool) *ExternalJobRepository {
	return &ExternalJobRepository{db: db}
}

// Create creates a new external posting
func (r *ExternalJobRepository) Create(ctx context.Context, job *models.ExternalJob) error {
	query := `
		INSERT INTO external_jobs (title, company, apply_url, salary_range, expires_at, status, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at, updated_at`

	err := r.db.QueryRow(ctx, query,
		job.Title, job.Company, job.ApplyURL, job.SalaryRange,
		job.ExpiresAt, job.Status, job.CreatedBy,
	).Scan(&job.ID, &job.CreatedAt, &job.UpdatedAt)
	if err != nil {
		return fmt.Errorf("error creating external job: %w", err)
	}
	return nil
}

// GetByID retrieves an external posting by ID
func (r *ExternalJobRepository) GetByID(ctx context.Context, id int64) (*models.ExternalJob, error) {
	query := `SELECT ` + externalJobColumns + ` FROM external_jobs WHERE id = $1`

	var job models.ExternalJob
	err := r.db.QueryRow(ctx, query, id).Scan(
		&job.ID, &job.Title, &job.Company, &job.ApplyURL, &job.SalaryRange,
		&job.ExpiresAt, &job.Status, &job.CreatedBy, &job.CreatedAt, &job.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrJobNotFound
		}
		return nil, fmt.Errorf("error retrieving external job: %w", err)
	}
	return &job, nil
}

// UpdateStatus writes only the status of an external posting
func (r *ExternalJobRepository) UpdateStatus(ctx context.Context, id int64, status models.ExternalJobStatus) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE external_jobs SET status = $1, updated_at = NOW() WHERE id = $2`, status, id)
	if err != nil {
		return fmt.Errorf("error updating external job status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrJobNotFound
	}
	return nil
}

// Delete removes an external posting
func (r *ExternalJobRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM external_jobs WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting external job: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrJobNotFound
	}
	return nil
}

// GetAll retrieves all external postings, newest first
func (r *ExternalJobRepository) GetAll(ctx context.Context) ([]models.ExternalJob, error) {
	query := `SELECT ` + externalJobColumns + ` FROM external_jobs ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error listing external jobs: %w", err)
	}
	defer rows.Close()

	var jobs []models.ExternalJob
	for rows.Next() {
		var job models.ExternalJob
		err := rows.Scan(
			&job.ID, &job.Title, &job.Company, &job.ApplyURL, &job.SalaryRange,
			&job.ExpiresAt, &job.Status, &job.CreatedBy, &job.CreatedAt, &job.UpdatedAt)
		if err != nil {
			return nil, fmt.Errorf("error scanning external job row: %w", err)
		}
		jobs = append(jobs, job)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating external job rows: %w", err)
	}
	return jobs, nil
}
