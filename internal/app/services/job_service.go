package services

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/sanjith/placementcell/internal/app/models"
	"github.com/sanjith/placementcell/internal/app/models/dto"
	"github.com/sanjith/placementcell/internal/app/repositories"
	"github.com/sanjith/placementcell/internal/app/rules"
)

// JobService handles job listings. There is no background expiry sweep:
// deadline transitions happen lazily whenever a listing passes through here.
type JobService struct {
	jobRepo         *repositories.JobRepository
	externalJobRepo *repositories.ExternalJobRepository
	logger          zerolog.Logger
}

// NewJobService creates a new JobService
func NewJobService(
	jobRepo *repositories.JobRepository,
	externalJobRepo *repositories.ExternalJobRepository,
	logger zerolog.Logger,
) *JobService {
	return &JobService{
		jobRepo:         jobRepo,
		externalJobRepo: externalJobRepo,
		logger:          logger,
	}
}

// Create creates a new job posting in ACTIVE state
func (s *JobService) Create(ctx context.Context, req *dto.CreateJobRequest, createdBy int64) (*dto.JobResponse, error) {
	job := &models.Job{
		Title:               req.Title,
		Company:             req.Company,
		Description:         req.Description,
		Location:            req.Location,
		JobType:             req.JobType,
		SalaryRange:         req.SalaryRange,
		MinCGPA:             req.MinCGPA,
		ApplicationDeadline: req.ApplicationDeadline,
		Status:              models.JobStatusActive,
		CreatedBy:           createdBy,
	}
	if err := s.jobRepo.Create(ctx, job); err != nil {
		return nil, err
	}

	resp := toJobResponse(job, 0)
	return &resp, nil
}

// Get retrieves a job, applying the deadline rule first
func (s *JobService) Get(ctx context.Context, id int64) (*dto.JobResponse, error) {
	job, err := s.refreshJob(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := toJobResponse(job, 0)
	return &resp, nil
}

// Update writes the mutable fields of a job. Setting a future deadline on an
// EXPIRED job reactivates it.
func (s *JobService) Update(ctx context.Context, id int64, req *dto.UpdateJobRequest) (*dto.JobResponse, error) {
	job, err := s.refreshJob(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		job.Title = *req.Title
	}
	if req.Company != nil {
		job.Company = *req.Company
	}
	if req.Description != nil {
		job.Description = *req.Description
	}
	if req.Location != nil {
		job.Location = *req.Location
	}
	if req.JobType != nil {
		job.JobType = *req.JobType
	}
	if req.SalaryRange != nil {
		job.SalaryRange = *req.SalaryRange
	}
	if req.MinCGPA != nil {
		job.MinCGPA = req.MinCGPA
	}
	if req.ApplicationDeadline != nil {
		job.ApplicationDeadline = req.ApplicationDeadline
		if job.Status == models.JobStatusExpired && !rules.IsExpired(job.ApplicationDeadline, time.Now()) {
			job.Status = models.JobStatusActive
		}
	}

	if err := s.jobRepo.Update(ctx, job); err != nil {
		return nil, err
	}
	resp := toJobResponse(job, 0)
	return &resp, nil
}

// SetStatus applies a manual status change. Manual states stick: the deadline
// rule will not flip an INACTIVE or FILLED job back to EXPIRED.
func (s *JobService) SetStatus(ctx context.Context, id int64, status models.JobStatus) (*dto.JobResponse, error) {
	job, err := s.jobRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	job.Status = status
	if err := s.jobRepo.UpdateStatus(ctx, id, status); err != nil {
		return nil, err
	}

	s.logger.Info().Int64("jobID", id).Str("status", string(status)).Msg("Job status set manually")
	resp := toJobResponse(job, 0)
	return &resp, nil
}

// Delete removes a job posting
func (s *JobService) Delete(ctx context.Context, id int64) error {
	return s.jobRepo.Delete(ctx, id)
}

// List returns a page of jobs with the deadline rule applied to each
func (s *JobService) List(ctx context.Context, status *models.JobStatus, page, pageSize int) ([]dto.JobResponse, int64, error) {
	jobs, counts, total, err := s.jobRepo.GetAll(ctx, status, page, pageSize)
	if err != nil {
		return nil, 0, err
	}

	now := time.Now()
	responses := make([]dto.JobResponse, 0, len(jobs))
	for i := range jobs {
		job := &jobs[i]
		if rules.RefreshJobStatus(job, now) {
			if err := s.jobRepo.UpdateStatus(ctx, job.ID, job.Status); err != nil {
				s.logger.Warn().Err(err).Int64("jobID", job.ID).Msg("Failed to persist expired job status")
			}
		}
		responses = append(responses, toJobResponse(job, counts[job.ID]))
	}
	return responses, total, nil
}

// CreateExternal creates a new off-campus posting
func (s *JobService) CreateExternal(ctx context.Context, req *dto.CreateExternalJobRequest, createdBy int64) (*dto.ExternalJobResponse, error) {
	job := &models.ExternalJob{
		Title:       req.Title,
		Company:     req.Company,
		ApplyURL:    req.ApplyURL,
		SalaryRange: req.SalaryRange,
		ExpiresAt:   req.ExpiresAt,
		Status:      models.ExternalJobStatusActive,
		CreatedBy:   createdBy,
	}
	if err := s.externalJobRepo.Create(ctx, job); err != nil {
		return nil, err
	}
	resp := toExternalJobResponse(job)
	return &resp, nil
}

// ListExternal returns every off-campus posting with the expiry rule applied
func (s *JobService) ListExternal(ctx context.Context) ([]dto.ExternalJobResponse, error) {
	jobs, err := s.externalJobRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	responses := make([]dto.ExternalJobResponse, 0, len(jobs))
	for i := range jobs {
		job := &jobs[i]
		if rules.RefreshExternalJobStatus(job, now) {
			if err := s.externalJobRepo.UpdateStatus(ctx, job.ID, job.Status); err != nil {
				s.logger.Warn().Err(err).Int64("externalJobID", job.ID).Msg("Failed to persist closed external job status")
			}
		}
		responses = append(responses, toExternalJobResponse(job))
	}
	return responses, nil
}

// DeleteExternal removes an off-campus posting
func (s *JobService) DeleteExternal(ctx context.Context, id int64) error {
	return s.externalJobRepo.Delete(ctx, id)
}

// refreshJob loads a job and persists any deadline transition before
// returning it.
func (s *JobService) refreshJob(ctx context.Context, id int64) (*models.Job, error) {
	job, err := s.jobRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if rules.RefreshJobStatus(job, time.Now()) {
		if err := s.jobRepo.UpdateStatus(ctx, job.ID, job.Status); err != nil {
			s.logger.Warn().Err(err).Int64("jobID", job.ID).Msg("Failed to persist expired job status")
		}
	}
	return job, nil
}

func toJobResponse(job *models.Job, applicationCount int) dto.JobResponse {
	return dto.JobResponse{
		ID:                  job.ID,
		Title:               job.Title,
		Company:             job.Company,
		Description:         job.Description,
		Location:            job.Location,
		JobType:             job.JobType,
		SalaryRange:         job.SalaryRange,
		MinCGPA:             job.MinCGPA,
		ApplicationDeadline: job.ApplicationDeadline,
		Status:              string(job.Status),
		ApplicationCount:    applicationCount,
		CreatedAt:           job.CreatedAt,
	}
}

func toExternalJobResponse(job *models.ExternalJob) dto.ExternalJobResponse {
	return dto.ExternalJobResponse{
		ID:          job.ID,
		Title:       job.Title,
		Company:     job.Company,
		ApplyURL:    job.ApplyURL,
		SalaryRange: job.SalaryRange,
		ExpiresAt:   job.ExpiresAt,
		Status:      string(job.Status),
		CreatedAt:   job.CreatedAt,
	}
}
