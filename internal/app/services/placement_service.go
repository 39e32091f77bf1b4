package services

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/sanjith/placementcell/internal/app/models"
	"github.com/sanjith/placementcell/internal/app/models/dto"
	"github.com/sanjith/placementcell/internal/app/repositories"
	"github.com/sanjith/placementcell/internal/app/rules"
	"github.com/sanjith/placementcell/internal/pkg/apperrors"
)

// PlacementService handles placement status changes. Placement never checks
// eligibility: officers may place any student regardless of thresholds.
type PlacementService struct {
	studentRepo   *repositories.StudentRepository
	placementRepo *repositories.PlacementRepository
	logger        zerolog.Logger
}

// NewPlacementService creates a new PlacementService
func NewPlacementService(
	studentRepo *repositories.StudentRepository,
	placementRepo *repositories.PlacementRepository,
	logger zerolog.Logger,
) *PlacementService {
	return &PlacementService{
		studentRepo:   studentRepo,
		placementRepo: placementRepo,
		logger:        logger,
	}
}

// MarkPlaced records a placement for one student. Marking an already placed
// student overwrites the previous record.
func (s *PlacementService) MarkPlaced(ctx context.Context, studentID int64, req *dto.PlacementDetailsRequest, placedBy int64) (*dto.StudentResponse, error) {
	student, err := s.studentRepo.GetByID(ctx, studentID)
	if err != nil {
		return nil, err
	}

	details := models.PlacementDetails{
		CompanyName:  req.CompanyName,
		Designation:  req.Designation,
		CTC:          req.CTC,
		WorkLocation: req.WorkLocation,
		JoiningDate:  req.JoiningDate,
	}
	if err := rules.MarkPlaced(student, details, placedBy, time.Now()); err != nil {
		return nil, err
	}

	if err := s.placementRepo.UpsertDetails(ctx, student.Placement); err != nil {
		return nil, err
	}
	if err := s.studentRepo.SetPlaced(ctx, student.ID, true); err != nil {
		return nil, err
	}

	s.logger.Info().Int64("studentID", student.ID).Str("company", req.CompanyName).Msg("Student marked placed")
	resp := toStudentResponse(student)
	return &resp, nil
}

// MarkUnplaced clears a student's placement. Unplacing an already unplaced
// student succeeds without change.
func (s *PlacementService) MarkUnplaced(ctx context.Context, studentID int64) (*dto.StudentResponse, error) {
	student, err := s.studentRepo.GetByID(ctx, studentID)
	if err != nil {
		return nil, err
	}

	rules.MarkUnplaced(student)

	if err := s.placementRepo.DeleteDetails(ctx, student.ID); err != nil {
		return nil, err
	}
	if err := s.studentRepo.SetPlaced(ctx, student.ID, false); err != nil {
		return nil, err
	}

	resp := toStudentResponse(student)
	return &resp, nil
}

// BulkPlace marks many students placed in one call. Each entry succeeds or
// fails on its own; one bad entry never blocks the rest. Replaying the same
// idempotency key reports the batch as already processed instead of placing
// anyone twice.
func (s *PlacementService) BulkPlace(ctx context.Context, req *dto.BulkPlacementRequest, placedBy int64) (*dto.BulkPlacementResponse, error) {
	key, err := uuid.Parse(req.IdempotencyKey)
	if err != nil {
		return nil, apperrors.NewValidationError("idempotencyKey must be a valid UUID")
	}

	if _, err := s.placementRepo.CreateBatch(ctx, key, placedBy); err != nil {
		if errors.Is(err, apperrors.ErrBatchAlreadyProcessed) {
			s.logger.Info().Str("idempotencyKey", req.IdempotencyKey).Msg("Bulk placement batch replayed, skipping")
			return &dto.BulkPlacementResponse{AlreadyProcessed: true}, nil
		}
		return nil, err
	}

	now := time.Now()
	students := make([]*models.Student, 0, len(req.Entries))
	detailsByStudent := make(map[int64]models.PlacementDetails, len(req.Entries))
	results := make([]dto.BulkPlacementItemResult, 0, len(req.Entries))

	for _, entry := range req.Entries {
		student, err := s.studentRepo.GetByID(ctx, entry.StudentID)
		if err != nil {
			if errors.Is(err, apperrors.ErrStudentNotFound) {
				results = append(results, dto.BulkPlacementItemResult{
					StudentID: entry.StudentID,
					Reason:    "student not found",
				})
				continue
			}
			return nil, err
		}
		students = append(students, student)
		if entry.Details != nil {
			detailsByStudent[student.ID] = models.PlacementDetails{
				CompanyName:  entry.Details.CompanyName,
				Designation:  entry.Details.Designation,
				CTC:          entry.Details.CTC,
				WorkLocation: entry.Details.WorkLocation,
				JoiningDate:  entry.Details.JoiningDate,
			}
		}
	}

	for _, outcome := range rules.MarkPlacedBulk(students, detailsByStudent, placedBy, now) {
		results = append(results, dto.BulkPlacementItemResult{
			StudentID: outcome.StudentID,
			Placed:    outcome.Placed,
			Reason:    outcome.Reason,
		})
	}

	placed := 0
	for _, student := range students {
		if !student.IsPlaced || student.Placement == nil {
			continue
		}
		if err := s.placementRepo.UpsertDetails(ctx, student.Placement); err != nil {
			s.rollbackBatch(ctx, key)
			return nil, err
		}
		if err := s.studentRepo.SetPlaced(ctx, student.ID, true); err != nil {
			s.rollbackBatch(ctx, key)
			return nil, err
		}
		placed++
	}

	s.logger.Info().
		Str("idempotencyKey", req.IdempotencyKey).
		Int("requested", len(req.Entries)).
		Int("placed", placed).
		Msg("Bulk placement processed")

	return &dto.BulkPlacementResponse{
		Results:     results,
		PlacedCount: placed,
		FailedCount: len(results) - placed,
	}, nil
}

// rollbackBatch clears the batch marker after a persistence failure so a
// retry with the same key can reprocess instead of being reported as already
// processed.
func (s *PlacementService) rollbackBatch(ctx context.Context, key uuid.UUID) {
	if err := s.placementRepo.DeleteBatch(ctx, key); err != nil {
		s.logger.Error().Err(err).Str("idempotencyKey", key.String()).Msg("Failed to roll back placement batch marker")
	}
}
