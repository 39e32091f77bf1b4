package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/sanjith/placementcell/internal/app/models"
	"github.com/sanjith/placementcell/internal/pkg/apperrors"
	"github.com/sanjith/placementcell/internal/pkg/dberrors"
	"github.com/sanjith/placementcell/internal/pkg/logger"
)

const applicationColumns = `
	id, student_id, job_id, resume_url, status, applied_at, updated_at`

// ApplicationRepository handles job application database operations
type ApplicationRepository struct {
	db *pgxpool.Pool
}

// NewApplicationRepository creates a new ApplicationRepository
func NewApplicationRepository(db *pgxpool.Pool) *ApplicationRepository {
	return &ApplicationRepository{db: db}
}

// Create inserts an application. The (student, job) unique constraint is the
// only duplicate guard; a violation maps to ErrDuplicateApplication.
func (r *ApplicationRepository) Create(ctx context.Context, app *models.JobApplication) error {
	query := `
		INSERT INTO job_applications (student_id, job_id, resume_url, status)
		VALUES ($1, $2, $3, $4)
		RETURNING id, applied_at, updated_at`

	err := r.db.QueryRow(ctx, query,
		app.StudentID, app.JobID, app.ResumeURL, app.Status,
	).Scan(&app.ID, &app.AppliedAt, &app.UpdatedAt)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "job_applications_student_job_key") {
			logger.Warn().Int64("studentID", app.StudentID).Int64("jobID", app.JobID).Msg("Duplicate application rejected")
			return apperrors.ErrDuplicateApplication
		}
		return fmt.Errorf("error creating application: %w", err)
	}
	return nil
}

// GetByID retrieves an application by ID
func (r *ApplicationRepository) GetByID(ctx context.Context, id int64) (*models.JobApplication, error) {
	query := `SELECT ` + applicationColumns + ` FROM job_applications WHERE id = $1`

	var app models.JobApplication
	err := r.db.QueryRow(ctx, query, id).Scan(
		&app.ID, &app.StudentID, &app.JobID, &app.ResumeURL,
		&app.Status, &app.AppliedAt, &app.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrApplicationNotFound
		}
		return nil, fmt.Errorf("error retrieving application: %w", err)
	}
	return &app, nil
}

// UpdateStatus writes a new review status
func (r *ApplicationRepository) UpdateStatus(ctx context.Context, id int64, status models.ApplicationStatus) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE job_applications SET status = $1, updated_at = NOW() WHERE id = $2`,
		status, id)
	if err != nil {
		return fmt.Errorf("error updating application status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrApplicationNotFound
	}
	return nil
}

// Withdraw removes a student's own application
func (r *ApplicationRepository) Withdraw(ctx context.Context, id, studentID int64) error {
	tag, err := r.db.Exec(ctx,
		`DELETE FROM job_applications WHERE id = $1 AND student_id = $2`, id, studentID)
	if err != nil {
		return fmt.Errorf("error withdrawing application: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrApplicationNotFound
	}
	return nil
}

// GetByJob retrieves the applications for a job with the student relation,
// newest first, paginated.
func (r *ApplicationRepository) GetByJob(ctx context.Context, jobID int64, page, pageSize int) ([]models.JobApplication, int64, error) {
	query := `
		SELECT a.id, a.student_id, a.job_id, a.resume_url, a.status, a.applied_at, a.updated_at,
		       ` + studentColumns + `, ` + userJoinColumns + `,
		       COUNT(*) OVER() AS total_count
		FROM job_applications a
		JOIN students s ON s.id = a.student_id
		JOIN users u ON u.id = s.user_id
		WHERE a.job_id = $1
		ORDER BY a.applied_at DESC
		LIMIT $2 OFFSET $3`

	offset := (page - 1) * pageSize
	rows, err := r.db.Query(ctx, query, jobID, pageSize, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("error listing applications for job: %w", err)
	}
	defer rows.Close()

	var apps []models.JobApplication
	var total int64
	for rows.Next() {
		var app models.JobApplication
		var student models.Student
		var user models.User
		dest := []any{
			&app.ID, &app.StudentID, &app.JobID, &app.ResumeURL,
			&app.Status, &app.AppliedAt, &app.UpdatedAt,
		}
		dest = append(dest, studentScanDest(&student, &user)...)
		dest = append(dest, &total)
		if err := rows.Scan(dest...); err != nil {
			return nil, 0, fmt.Errorf("error scanning application row: %w", err)
		}
		student.User = &user
		app.Student = &student
		apps = append(apps, app)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating application rows: %w", err)
	}
	return apps, total, nil
}

// GetByStudent retrieves a student's applications with the job relation,
// newest first.
func (r *ApplicationRepository) GetByStudent(ctx context.Context, studentID int64) ([]models.JobApplication, error) {
	query := `
		SELECT a.id, a.student_id, a.job_id, a.resume_url, a.status, a.applied_at, a.updated_at,
		       j.id, j.title, j.company, j.description, j.location, j.job_type,
		       j.salary_range, j.min_cgpa, j.application_deadline, j.status,
		       j.created_by, j.created_at, j.updated_at
		FROM job_applications a
		JOIN jobs j ON j.id = a.job_id
		WHERE a.student_id = $1
		ORDER BY a.applied_at DESC`

	rows, err := r.db.Query(ctx, query, studentID)
	if err != nil {
		return nil, fmt.Errorf("error listing student applications: %w", err)
	}
	defer rows.Close()

	var apps []models.JobApplication
	for rows.Next() {
		var app models.JobApplication
		var job models.Job
		err := rows.Scan(
			&app.ID, &app.StudentID, &app.JobID, &app.ResumeURL,
			&app.Status, &app.AppliedAt, &app.UpdatedAt,
			&job.ID, &job.Title, &job.Company, &job.Description, &job.Location,
			&job.JobType, &job.SalaryRange, &job.MinCGPA, &job.ApplicationDeadline,
			&job.Status, &job.CreatedBy, &job.CreatedAt, &job.UpdatedAt)
		if err != nil {
			return nil, fmt.Errorf("error scanning student application row: %w", err)
		}
		app.Job = &job
		apps = append(apps, app)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating student application rows: %w", err)
	}
	return apps, nil
}

// CountAll counts every application in the system
func (r *ApplicationRepository) CountAll(ctx context.Context) (int, error) {
	var count int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM job_applications`).Scan(&count); err != nil {
		return 0, fmt.Errorf("error counting applications: %w", err)
	}
	return count, nil
}
