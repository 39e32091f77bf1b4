package services

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/sanjith/placementcell/internal/app/models"
	"github.com/sanjith/placementcell/internal/app/models/dto"
	"github.com/sanjith/placementcell/internal/app/repositories"
	"github.com/sanjith/placementcell/internal/app/rules"
	"github.com/sanjith/placementcell/internal/pkg/apperrors"
)

// ApplicationService handles job applications and their review pipeline.
// Duplicate applications are caught by the database constraint rather than a
// pre-check, so concurrent submissions cannot race past each other.
type ApplicationService struct {
	applicationRepo *repositories.ApplicationRepository
	jobRepo         *repositories.JobRepository
	studentRepo     *repositories.StudentRepository
	logger          zerolog.Logger
}

// NewApplicationService creates a new ApplicationService
func NewApplicationService(
	applicationRepo *repositories.ApplicationRepository,
	jobRepo *repositories.JobRepository,
	studentRepo *repositories.StudentRepository,
	logger zerolog.Logger,
) *ApplicationService {
	return &ApplicationService{
		applicationRepo: applicationRepo,
		jobRepo:         jobRepo,
		studentRepo:     studentRepo,
		logger:          logger,
	}
}

// Apply submits an application for the student attached to an account. The
// job's deadline rule runs first, so applying to a lapsed posting fails even
// if nothing else touched it since the deadline passed.
func (s *ApplicationService) Apply(ctx context.Context, userID, jobID int64, req *dto.ApplyToJobRequest) (*dto.ApplicationResponse, error) {
	student, err := s.studentRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	job, err := s.jobRepo.GetByID(ctx, jobID)
	if err != nil {
		return nil, err
	}
	if rules.RefreshJobStatus(job, time.Now()) {
		if err := s.jobRepo.UpdateStatus(ctx, job.ID, job.Status); err != nil {
			s.logger.Warn().Err(err).Int64("jobID", job.ID).Msg("Failed to persist expired job status")
		}
	}
	if job.Status != models.JobStatusActive {
		return nil, apperrors.ErrJobClosed
	}

	app := &models.JobApplication{
		StudentID: student.ID,
		JobID:     job.ID,
		ResumeURL: req.ResumeURL,
		Status:    models.ApplicationApplied,
	}
	if err := s.applicationRepo.Create(ctx, app); err != nil {
		return nil, err
	}

	s.logger.Info().Int64("studentID", student.ID).Int64("jobID", job.ID).Msg("Application submitted")
	resp := toApplicationResponse(app)
	return &resp, nil
}

// UpdateStatus advances an application through the review pipeline. Illegal
// transitions are rejected with the allowed next states in the error details.
func (s *ApplicationService) UpdateStatus(ctx context.Context, id int64, target models.ApplicationStatus) (*dto.ApplicationResponse, error) {
	app, err := s.applicationRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !app.CanMoveTo(target) {
		return nil, &apperrors.CustomError{
			Err:     apperrors.ErrInvalidStatusChange,
			Message: fmt.Sprintf("cannot move application from %s to %s", app.Status, target),
			Details: map[string]interface{}{
				"currentStatus": app.Status,
				"allowedNext":   app.NextStatuses(),
			},
		}
	}

	if err := s.applicationRepo.UpdateStatus(ctx, id, target); err != nil {
		return nil, err
	}
	app.Status = target

	resp := toApplicationResponse(app)
	return &resp, nil
}

// Withdraw removes the student's own application
func (s *ApplicationService) Withdraw(ctx context.Context, userID, applicationID int64) error {
	student, err := s.studentRepo.GetByUserID(ctx, userID)
	if err != nil {
		return err
	}
	return s.applicationRepo.Withdraw(ctx, applicationID, student.ID)
}

// ListByJob returns a page of applications for a job, with student details
func (s *ApplicationService) ListByJob(ctx context.Context, jobID int64, page, pageSize int) ([]dto.ApplicationResponse, int64, error) {
	if _, err := s.jobRepo.GetByID(ctx, jobID); err != nil {
		return nil, 0, err
	}

	apps, total, err := s.applicationRepo.GetByJob(ctx, jobID, page, pageSize)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]dto.ApplicationResponse, 0, len(apps))
	for i := range apps {
		responses = append(responses, toApplicationResponse(&apps[i]))
	}
	return responses, total, nil
}

// ListMine returns the applications of the student attached to an account
func (s *ApplicationService) ListMine(ctx context.Context, userID int64) ([]dto.ApplicationResponse, error) {
	student, err := s.studentRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	apps, err := s.applicationRepo.GetByStudent(ctx, student.ID)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.ApplicationResponse, 0, len(apps))
	for i := range apps {
		responses = append(responses, toApplicationResponse(&apps[i]))
	}
	return responses, nil
}

func toApplicationResponse(app *models.JobApplication) dto.ApplicationResponse {
	resp := dto.ApplicationResponse{
		ID:        app.ID,
		JobID:     app.JobID,
		StudentID: app.StudentID,
		ResumeURL: app.ResumeURL,
		Status:    string(app.Status),
		AppliedAt: app.AppliedAt,
		UpdatedAt: app.UpdatedAt,
	}
	if app.Job != nil {
		job := toJobResponse(app.Job, 0)
		resp.Job = &job
	}
	if app.Student != nil {
		student := toStudentResponse(app.Student)
		resp.Student = &student
	}
	return resp
}
