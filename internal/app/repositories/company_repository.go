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

const companyRequestColumns = `
	id, company_name, website, hr_name, hr_email, hr_phone, job_title,
	salary_range, description, extras, status, form_link_id, reviewed_by,
	created_at, updated_at`

// CompanyRepository handles company intake database operations
type CompanyRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewCompanyRepository creates a new CompanyRepository
func NewCompanyRepository(db *pgxpool.Pool) *CompanyRepository {
	return &CompanyRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// CreateFormLink creates a shareable intake link
func (r *CompanyRepository) CreateFormLink(ctx context.Context, link *models.CompanyFormLink) error {
	query := `
		INSERT INTO company_form_links (token, label, active, created_by)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at`

	err := r.db.QueryRow(ctx, query,
		link.Token, link.Label, link.Active, link.CreatedBy,
	).Scan(&link.ID, &link.CreatedAt)
	if err != nil {
		return fmt.Errorf("error creating form link: %w", err)
	}
	return nil
}

// GetFormLinkByToken retrieves an intake link by its public token
func (r *CompanyRepository) GetFormLinkByToken(ctx context.Context, token string) (*models.CompanyFormLink, error) {
	query := `
		SELECT id, token, label, active, submission_count, created_by, created_at
		FROM company_form_links
		WHERE token = $1`

	var link models.CompanyFormLink
	err := r.db.QueryRow(ctx, query, token).Scan(
		&link.ID, &link.Token, &link.Label, &link.Active,
		&link.SubmissionCount, &link.CreatedBy, &link.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrFormLinkNotFound
		}
		return nil, fmt.Errorf("error retrieving form link: %w", err)
	}
	return &link, nil
}

// GetFormLinks retrieves every intake link, newest first
func (r *CompanyRepository) GetFormLinks(ctx context.Context) ([]models.CompanyFormLink, error) {
	query := `
		SELECT id, token, label, active, submission_count, created_by, created_at
		FROM company_form_links
		ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error listing form links: %w", err)
	}
	defer rows.Close()

	var links []models.CompanyFormLink
	for rows.Next() {
		var link models.CompanyFormLink
		err := rows.Scan(
			&link.ID, &link.Token, &link.Label, &link.Active,
			&link.SubmissionCount, &link.CreatedBy, &link.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("error scanning form link row: %w", err)
		}
		links = append(links, link)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating form link rows: %w", err)
	}
	return links, nil
}

// SetFormLinkActive enables or disables an intake link
func (r *CompanyRepository) SetFormLinkActive(ctx context.Context, id int64, active bool) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE company_form_links SET active = $1 WHERE id = $2`, active, id)
	if err != nil {
		return fmt.Errorf("error updating form link: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrFormLinkNotFound
	}
	return nil
}

// IncrementSubmissionCount bumps the per-link submission counter
func (r *CompanyRepository) IncrementSubmissionCount(ctx context.Context, id int64) error {
	_, err := r.db.Exec(ctx,
		`UPDATE company_form_links SET submission_count = submission_count + 1 WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error incrementing submission count: %w", err)
	}
	return nil
}

// CreateRequest stores a company intake submission
func (r *CompanyRepository) CreateRequest(ctx context.Context, req *models.CompanyRequest) error {
	query := `
		INSERT INTO company_requests
			(company_name, website, hr_name, hr_email, hr_phone, job_title,
			 salary_range, description, extras, status, form_link_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id, created_at, updated_at`

	extras := req.Extras
	if extras == nil {
		extras = map[string]interface{}{}
	}

	err := r.db.QueryRow(ctx, query,
		req.CompanyName, req.Website, req.HRName, req.HREmail, req.HRPhone,
		req.JobTitle, req.SalaryRange, req.Description, extras, req.Status, req.FormLinkID,
	).Scan(&req.ID, &req.CreatedAt, &req.UpdatedAt)
	if err != nil {
		logger.Error().Err(err).Str("companyName", req.CompanyName).Msg("Error executing create company request query")
		return fmt.Errorf("error creating company request: %w", err)
	}
	return nil
}

// GetRequestByID retrieves an intake submission by ID
func (r *CompanyRepository) GetRequestByID(ctx context.Context, id int64) (*models.CompanyRequest, error) {
	query := `SELECT ` + companyRequestColumns + ` FROM company_requests WHERE id = $1`

	req, err := scanCompanyRequest(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrCompanyRequestNotFound
		}
		return nil, fmt.Errorf("error retrieving company request: %w", err)
	}
	return req, nil
}

// GetRequests retrieves intake submissions with an optional status filter,
// newest first, paginated.
func (r *CompanyRepository) GetRequests(ctx context.Context, status *models.CompanyRequestStatus, page, pageSize int) ([]models.CompanyRequest, int64, error) {
	builder := r.sb.Select(
		"id", "company_name", "website", "hr_name", "hr_email", "hr_phone",
		"job_title", "salary_range", "description", "extras", "status",
		"form_link_id", "reviewed_by", "created_at", "updated_at",
		"COUNT(*) OVER() AS total_count").
		From("company_requests")

	if status != nil {
		builder = builder.Where(squirrel.Eq{"status": *status})
	}

	offset := (page - 1) * pageSize
	builder = builder.OrderBy("created_at DESC").Limit(uint64(pageSize)).Offset(uint64(offset))

	query, args, err := builder.ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building company request listing SQL")
		return nil, 0, fmt.Errorf("failed to build company request listing query: %w", err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("error listing company requests: %w", err)
	}
	defer rows.Close()

	var requests []models.CompanyRequest
	var total int64
	for rows.Next() {
		var req models.CompanyRequest
		err := rows.Scan(
			&req.ID, &req.CompanyName, &req.Website, &req.HRName, &req.HREmail,
			&req.HRPhone, &req.JobTitle, &req.SalaryRange, &req.Description,
			&req.Extras, &req.Status, &req.FormLinkID, &req.ReviewedBy,
			&req.CreatedAt, &req.UpdatedAt, &total)
		if err != nil {
			return nil, 0, fmt.Errorf("error scanning company request row: %w", err)
		}
		requests = append(requests, req)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating company request rows: %w", err)
	}
	return requests, total, nil
}

// UpdateRequestStatus records a review decision
func (r *CompanyRepository) UpdateRequestStatus(ctx context.Context, id int64, status models.CompanyRequestStatus, reviewedBy int64) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE company_requests
		SET status = $1, reviewed_by = $2, updated_at = NOW()
		WHERE id = $3`,
		status, reviewedBy, id)
	if err != nil {
		return fmt.Errorf("error updating company request status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrCompanyRequestNotFound
	}
	return nil
}

// CountRequestsByStatus counts intake submissions in a given status
func (r *CompanyRepository) CountRequestsByStatus(ctx context.Context, status models.CompanyRequestStatus) (int, error) {
	var count int
	err := r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM company_requests WHERE status = $1`, status).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error counting company requests: %w", err)
	}
	return count, nil
}

func scanCompanyRequest(row pgx.Row) (*models.CompanyRequest, error) {
	var req models.CompanyRequest
	err := row.Scan(
		&req.ID, &req.CompanyName, &req.Website, &req.HRName, &req.HREmail,
		&req.HRPhone, &req.JobTitle, &req.SalaryRange, &req.Description,
		&req.Extras, &req.Status, &req.FormLinkID, &req.ReviewedBy,
		&req.CreatedAt, &req.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &req, nil
}
