package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/sanjith/placementcell/internal/app/models"
	"github.com/sanjith/placementcell/internal/pkg/apperrors"
	"github.com/sanjith/placementcell/internal/pkg/dberrors"
)

// PlacementRepository handles placement record and batch database operations
type PlacementRepository struct {
	db *pgxpool.Pool
}

// NewPlacementRepository creates a new PlacementRepository
func NewPlacementRepository(db *pgxpool.Pool) *PlacementRepository {
	return &PlacementRepository{db: db}
}

// UpsertDetails writes the placement record for a student, replacing any
// previous record. One record per student.
func (r *PlacementRepository) UpsertDetails(ctx context.Context, details *models.PlacementDetails) error {
	query := `
		INSERT INTO placement_details
			(student_id, company_name, designation, ctc, work_location, joining_date, placed_by, placed_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (student_id)
		DO UPDATE SET company_name = EXCLUDED.company_name,
		              designation = EXCLUDED.designation,
		              ctc = EXCLUDED.ctc,
		              work_location = EXCLUDED.work_location,
		              joining_date = EXCLUDED.joining_date,
		              placed_by = EXCLUDED.placed_by,
		              placed_at = EXCLUDED.placed_at
		RETURNING id`

	err := r.db.QueryRow(ctx, query,
		details.StudentID, details.CompanyName, details.Designation, details.CTC,
		details.WorkLocation, details.JoiningDate, details.PlacedBy, details.PlacedAt,
	).Scan(&details.ID)
	if err != nil {
		return fmt.Errorf("error storing placement record: %w", err)
	}
	return nil
}

// GetDetails retrieves a student's placement record
func (r *PlacementRepository) GetDetails(ctx context.Context, studentID int64) (*models.PlacementDetails, error) {
	query := `
		SELECT id, student_id, company_name, designation, ctc, work_location,
		       joining_date, placed_by, placed_at
		FROM placement_details
		WHERE student_id = $1`

	var details models.PlacementDetails
	err := r.db.QueryRow(ctx, query, studentID).Scan(
		&details.ID, &details.StudentID, &details.CompanyName, &details.Designation,
		&details.CTC, &details.WorkLocation, &details.JoiningDate,
		&details.PlacedBy, &details.PlacedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrResourceNotFound
		}
		return nil, fmt.Errorf("error retrieving placement record: %w", err)
	}
	return &details, nil
}

// DeleteDetails removes a student's placement record. Deleting an absent
// record is not an error, matching the idempotent unplace semantics.
func (r *PlacementRepository) DeleteDetails(ctx context.Context, studentID int64) error {
	_, err := r.db.Exec(ctx,
		`DELETE FROM placement_details WHERE student_id = $1`, studentID)
	if err != nil {
		return fmt.Errorf("error deleting placement record: %w", err)
	}
	return nil
}

// CreateBatch records a bulk placement batch. Returns
// apperrors.ErrBatchAlreadyProcessed when the idempotency key was already used.
func (r *PlacementRepository) CreateBatch(ctx context.Context, key uuid.UUID, createdBy int64) (int64, error) {
	var id int64
	err := r.db.QueryRow(ctx,
		`INSERT INTO placement_batches (idempotency_key, created_by) VALUES ($1, $2) RETURNING id`,
		key, createdBy,
	).Scan(&id)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return 0, apperrors.ErrBatchAlreadyProcessed
		}
		return 0, fmt.Errorf("error recording placement batch: %w", err)
	}
	return id, nil
}

// DeleteBatch removes a batch marker. Called when persisting a batch fails
// partway, so a retry with the same idempotency key is not misreported as
// already processed.
func (r *PlacementRepository) DeleteBatch(ctx context.Context, key uuid.UUID) error {
	_, err := r.db.Exec(ctx,
		`DELETE FROM placement_batches WHERE idempotency_key = $1`, key)
	if err != nil {
		return fmt.Errorf("error deleting placement batch: %w", err)
	}
	return nil
}
