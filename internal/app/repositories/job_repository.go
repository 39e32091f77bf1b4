package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/sanjith/placementcell/internal/app/models"
	"github.com/sanjith/placementcell/internal/pkg/apperrors"
	"github.com/sanjith/placementcell/internal/pkg/logger"
)

const jobColumns = `
	id, title, company, description, location, job_type, salary_range,
	min_cgpa, application_deadline, status, created_by, created_at, updated_at`

// JobRepository handles on-campus job database operations
type JobRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewJobRepository creates a new JobRepository
func NewJobRepository(db *pgxpool.Pool) *JobRepository {
	return &JobRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// Create creates a new job posting
func (r *JobRepository) Create(ctx context.Context, job *models.Job) error {
	query := `
		INSERT INTO jobs
			(title, company, description, location, job_type, salary_range,
			 min_cgpa, application_deadline, status, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id, created_at, updated_at`

	err := r.db.QueryRow(ctx, query,
		job.Title, job.Company, job.Description, job.Location, job.JobType,
		job.SalaryRange, job.MinCGPA, job.ApplicationDeadline, job.Status, job.CreatedBy,
	).Scan(&job.ID, &job.CreatedAt, &job.UpdatedAt)
	if err != nil {
		logger.Error().Err(err).Str("title", job.Title).Msg("Error executing create job query")
		return fmt.Errorf("error creating job: %w", err)
	}
	return nil
}

// GetByID retrieves a job by ID
func (r *JobRepository) GetByID(ctx context.Context, id int64) (*models.Job, error) {
	query := `SELECT ` + jobColumns + ` FROM jobs WHERE id = $1`

	job, err := scanJob(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrJobNotFound
		}
		return nil, fmt.Errorf("error retrieving job: %w", err)
	}
	return job, nil
}

// Update writes the mutable fields of a job
func (r *JobRepository) Update(ctx context.Context, job *models.Job) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE jobs
		SET title = $1, company = $2, description = $3, location = $4,
		    job_type = $5, salary_range = $6, min_cgpa = $7,
		    application_deadline = $8, status = $9, updated_at = NOW()
		WHERE id = $10`,
		job.Title, job.Company, job.Description, job.Location, job.JobType,
		job.SalaryRange, job.MinCGPA, job.ApplicationDeadline, job.Status, job.ID)
	if err != nil {
		return fmt.Errorf("error updating job: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrJobNotFound
	}
	return nil
}

// UpdateStatus writes only the status of a job
func (r *JobRepository) UpdateStatus(ctx context.Context, id int64, status models.JobStatus) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE jobs SET status = $1, updated_at = NOW() WHERE id = $2`, status, id)
	if err != nil {
		return fmt.Errorf("error updating job status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrJobNotFound
	}
	return nil
}

// Delete removes a job posting
func (r *JobRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM jobs WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting job: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrJobNotFound
	}
	return nil
}

// GetAll retrieves jobs with optional status filter and pagination, newest
// first. Application counts ride along for the listing view.
func (r *JobRepository) GetAll(ctx context.Context, status *models.JobStatus, page, pageSize int) ([]models.Job, map[int64]int, int64, error) {
	builder := r.sb.Select(
		"j.id", "j.title", "j.company", "j.description", "j.location",
		"j.job_type", "j.salary_range", "j.min_cgpa", "j.application_deadline",
		"j.status", "j.created_by", "j.created_at", "j.updated_at",
		"COUNT(a.id) AS application_count",
		"COUNT(*) OVER() AS total_count").
		From("jobs j").
		LeftJoin("job_applications a ON a.job_id = j.id").
		GroupBy("j.id")

	if status != nil {
		builder = builder.Where(squirrel.Eq{"j.status": *status})
	}

	offset := (page - 1) * pageSize
	builder = builder.OrderBy("j.created_at DESC").Limit(uint64(pageSize)).Offset(uint64(offset))

	query, args, err := builder.ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building job listing SQL")
		return nil, nil, 0, fmt.Errorf("failed to build job listing query: %w", err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, 0, fmt.Errorf("error listing jobs: %w", err)
	}
	defer rows.Close()

	var jobs []models.Job
	counts := make(map[int64]int)
	var total int64
	for rows.Next() {
		var job models.Job
		var applicationCount int
		err := rows.Scan(
			&job.ID, &job.Title, &job.Company, &job.Description, &job.Location,
			&job.JobType, &job.SalaryRange, &job.MinCGPA, &job.ApplicationDeadline,
			&job.Status, &job.CreatedBy, &job.CreatedAt, &job.UpdatedAt,
			&applicationCount, &total)
		if err != nil {
			return nil, nil, 0, fmt.Errorf("error scanning job row: %w", err)
		}
		counts[job.ID] = applicationCount
		jobs = append(jobs, job)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, 0, fmt.Errorf("error iterating job rows: %w", err)
	}

	return jobs, counts, total, nil
}

// CountByStatus counts jobs in a given status
func (r *JobRepository) CountByStatus(ctx context.Context, status models.JobStatus) (int, error) {
	var count int
	err := r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM jobs WHERE status = $1`, status).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error counting jobs: %w", err)
	}
	return count, nil
}

func scanJob(row pgx.Row) (*models.Job, error) {
	var job models.Job
	err := row.Scan(
		&job.ID, &job.Title, &job.Company, &job.Description, &job.Location,
		&job.JobType, &job.SalaryRange, &job.MinCGPA, &job.ApplicationDeadline,
		&job.Status, &job.CreatedBy, &job.CreatedAt, &job.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &job, nil
}
