package services

import (
	"context"
	"sort"

	"github.com/rs/zerolog"

	"github.com/sanjith/placementcell/internal/app/models"
	"github.com/sanjith/placementcell/internal/app/models/dto"
	"github.com/sanjith/placementcell/internal/app/repositories"
	"github.com/sanjith/placementcell/internal/app/rules"
)

// DashboardService aggregates placement statistics for the officer view.
// Eligibility is evaluated fresh against the current thresholds on each call.
type DashboardService struct {
	studentRepo     *repositories.StudentRepository
	settingsRepo    *repositories.SettingsRepository
	jobRepo         *repositories.JobRepository
	applicationRepo *repositories.ApplicationRepository
	companyRepo     *repositories.CompanyRepository
	logger          zerolog.Logger
}

// NewDashboardService creates a new DashboardService
func NewDashboardService(
	studentRepo *repositories.StudentRepository,
	settingsRepo *repositories.SettingsRepository,
	jobRepo *repositories.JobRepository,
	applicationRepo *repositories.ApplicationRepository,
	companyRepo *repositories.CompanyRepository,
	logger zerolog.Logger,
) *DashboardService {
	return &DashboardService{
		studentRepo:     studentRepo,
		settingsRepo:    settingsRepo,
		jobRepo:         jobRepo,
		applicationRepo: applicationRepo,
		companyRepo:     companyRepo,
		logger:          logger,
	}
}

// Summary builds the dashboard aggregate
func (s *DashboardService) Summary(ctx context.Context) (*dto.DashboardResponse, error) {
	settings, err := s.settingsRepo.GetEligibilitySettings(ctx)
	if err != nil {
		return nil, err
	}
	thresholds := rules.ThresholdsFrom(settings)

	population, err := s.studentRepo.GetPopulation(ctx)
	if err != nil {
		return nil, err
	}

	resp := &dto.DashboardResponse{TotalStudents: len(population)}
	perBranch := make(map[string]*dto.BranchStats)
	for i := range population {
		student := &population[i]
		stats, ok := perBranch[student.Branch]
		if !ok {
			stats = &dto.BranchStats{Branch: student.Branch}
			perBranch[student.Branch] = stats
		}
		stats.Total++

		if student.IsPlaced {
			resp.PlacedStudents++
			stats.Placed++
		}
		if rules.IsEligible(student, thresholds) {
			resp.EligibleStudents++
			stats.Eligible++
		}
	}

	branches := make([]string, 0, len(perBranch))
	for branch := range perBranch {
		branches = append(branches, branch)
	}
	sort.Strings(branches)
	resp.BranchBreakdown = make([]dto.BranchStats, 0, len(branches))
	for _, branch := range branches {
		resp.BranchBreakdown = append(resp.BranchBreakdown, *perBranch[branch])
	}

	if resp.ActiveJobs, err = s.jobRepo.CountByStatus(ctx, models.JobStatusActive); err != nil {
		return nil, err
	}
	if resp.PendingRequests, err = s.companyRepo.CountRequestsByStatus(ctx, models.CompanyRequestPending); err != nil {
		return nil, err
	}
	if resp.TotalApplications, err = s.applicationRepo.CountAll(ctx); err != nil {
		return nil, err
	}

	return resp, nil
}
