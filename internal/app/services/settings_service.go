package services

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/sanjith/placementcell/internal/app/models"
	"github.com/sanjith/placementcell/internal/app/models/dto"
	"github.com/sanjith/placementcell/internal/app/repositories"
)

// SettingsService handles the two fixed-id configuration singletons. Both
// rows are seeded at startup, so reads never need a lazy-create path.
type SettingsService struct {
	settingsRepo *repositories.SettingsRepository
	logger       zerolog.Logger
}

// NewSettingsService creates a new SettingsService
func NewSettingsService(settingsRepo *repositories.SettingsRepository, logger zerolog.Logger) *SettingsService {
	return &SettingsService{
		settingsRepo: settingsRepo,
		logger:       logger,
	}
}

// GetEligibilitySettings returns the current thresholds
func (s *SettingsService) GetEligibilitySettings(ctx context.Context) (*dto.EligibilitySettingsResponse, error) {
	settings, err := s.settingsRepo.GetEligibilitySettings(ctx)
	if err != nil {
		return nil, err
	}
	return toEligibilitySettingsResponse(settings), nil
}

// UpdateEligibilitySettings writes new thresholds. Omitted fields keep their
// current values. Threshold changes take effect on the next evaluation;
// nothing stored is recomputed.
func (s *SettingsService) UpdateEligibilitySettings(ctx context.Context, req *dto.UpdateEligibilitySettingsRequest, updatedBy int64) (*dto.EligibilitySettingsResponse, error) {
	settings, err := s.settingsRepo.GetEligibilitySettings(ctx)
	if err != nil {
		return nil, err
	}

	if req.AttendanceMin != nil {
		settings.AttendanceMin = *req.AttendanceMin
	}
	if req.BacklogMax != nil {
		settings.BacklogMax = *req.BacklogMax
	}
	if req.CGPAMin != nil {
		settings.CGPAMin = *req.CGPAMin
	}
	settings.UpdatedBy = &updatedBy

	if err := s.settingsRepo.UpdateEligibilitySettings(ctx, settings); err != nil {
		return nil, err
	}

	s.logger.Info().
		Float64("attendanceMin", settings.AttendanceMin).
		Int("backlogMax", settings.BacklogMax).
		Float64("cgpaMin", settings.CGPAMin).
		Msg("Eligibility thresholds updated")
	return toEligibilitySettingsResponse(settings), nil
}

// GetCollege returns the college profile
func (s *SettingsService) GetCollege(ctx context.Context) (*dto.CollegeResponse, error) {
	college, err := s.settingsRepo.GetCollege(ctx)
	if err != nil {
		return nil, err
	}
	return toCollegeResponse(college), nil
}

// UpdateCollege writes the college profile. Omitted fields keep their current
// values.
func (s *SettingsService) UpdateCollege(ctx context.Context, req *dto.UpdateCollegeRequest, updatedBy int64) (*dto.CollegeResponse, error) {
	college, err := s.settingsRepo.GetCollege(ctx)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		college.Name = *req.Name
	}
	if req.LogoURL != nil {
		college.LogoURL = *req.LogoURL
	}
	college.UpdatedBy = &updatedBy

	if err := s.settingsRepo.UpdateCollege(ctx, college); err != nil {
		return nil, err
	}
	return toCollegeResponse(college), nil
}

func toEligibilitySettingsResponse(settings *models.EligibilitySettings) *dto.EligibilitySettingsResponse {
	return &dto.EligibilitySettingsResponse{
		AttendanceMin: settings.AttendanceMin,
		BacklogMax:    settings.BacklogMax,
		CGPAMin:       settings.CGPAMin,
		UpdatedAt:     settings.UpdatedAt,
	}
}

func toCollegeResponse(college *models.College) *dto.CollegeResponse {
	return &dto.CollegeResponse{
		Name:      college.Name,
		LogoURL:   college.LogoURL,
		UpdatedAt: college.UpdatedAt,
	}
}
