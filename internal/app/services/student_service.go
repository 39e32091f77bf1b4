package services

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/sanjith/placementcell/internal/app/models"
	"github.com/sanjith/placementcell/internal/app/models/dto"
	"github.com/sanjith/placementcell/internal/app/repositories"
	"github.com/sanjith/placementcell/internal/app/rules"
	"github.com/sanjith/placementcell/internal/pkg/apperrors"
)

// StudentService handles student onboarding, profiles and eligibility reports
type StudentService struct {
	studentRepo   *repositories.StudentRepository
	userRepo      *repositories.UserRepository
	placementRepo *repositories.PlacementRepository
	settingsRepo  *repositories.SettingsRepository
	logger        zerolog.Logger
}

// NewStudentService creates a new StudentService
func NewStudentService(
	studentRepo *repositories.StudentRepository,
	userRepo *repositories.UserRepository,
	placementRepo *repositories.PlacementRepository,
	settingsRepo *repositories.SettingsRepository,
	logger zerolog.Logger,
) *StudentService {
	return &StudentService{
		studentRepo:   studentRepo,
		userRepo:      userRepo,
		placementRepo: placementRepo,
		settingsRepo:  settingsRepo,
		logger:        logger,
	}
}

// GetProfile returns the student attached to an account, with the placement
// record when one exists.
func (s *StudentService) GetProfile(ctx context.Context, userID int64) (*dto.StudentResponse, error) {
	student, err := s.studentRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.buildStudentResponse(ctx, student)
}

// GetByID returns a student by its ID, with the placement record when one
// exists.
func (s *StudentService) GetByID(ctx context.Context, studentID int64) (*dto.StudentResponse, error) {
	student, err := s.studentRepo.GetByID(ctx, studentID)
	if err != nil {
		return nil, err
	}
	return s.buildStudentResponse(ctx, student)
}

// List returns a filtered page of students
func (s *StudentService) List(ctx context.Context, filter dto.StudentFilterRequest, page, pageSize int) ([]dto.StudentResponse, int64, error) {
	students, total, err := s.studentRepo.GetAll(ctx, filter, page, pageSize)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]dto.StudentResponse, 0, len(students))
	for i := range students {
		responses = append(responses, toStudentResponse(&students[i]))
	}
	return responses, total, nil
}

// UpdatePersonalDetails writes the personal onboarding step and advances the
// onboarding pointer. Onboarding never moves backwards.
func (s *StudentService) UpdatePersonalDetails(ctx context.Context, userID int64, req *dto.UpdatePersonalDetailsRequest) (*dto.StudentResponse, error) {
	student, err := s.studentRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if err := s.userRepo.UpdateName(ctx, userID, req.FirstName, req.LastName); err != nil {
		return nil, err
	}

	student.Branch = req.Branch
	student.Section = req.Section
	student.Year = req.Year
	student.Course = req.Course
	if student.OnboardingStep == models.OnboardingPersonal {
		student.OnboardingStep = models.OnboardingAcademic
	}

	if err := s.studentRepo.UpdatePersonal(ctx, student); err != nil {
		return nil, err
	}

	if student.User != nil {
		student.User.FirstName = req.FirstName
		student.User.LastName = req.LastName
	}
	return s.buildStudentResponse(ctx, student)
}

// UpdateAcademicDetails writes the academic onboarding step. Program duration
// and pass-out year are inferred from the program type and admission year
// when not supplied; values already present are never overwritten.
func (s *StudentService) UpdateAcademicDetails(ctx context.Context, userID int64, req *dto.UpdateAcademicDetailsRequest) (*dto.StudentResponse, error) {
	student, err := s.studentRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	student.ProgramType = req.ProgramType
	student.Specialization = req.Specialization
	if req.AdmissionYear != nil {
		student.AdmissionYear = req.AdmissionYear
	}
	if req.ProgramDurationYears != nil {
		student.ProgramDurationYears = req.ProgramDurationYears
	}
	if req.AttendancePercentage != nil {
		student.AttendancePercentage = req.AttendancePercentage
	}
	if req.Backlogs != nil {
		student.Backlogs = req.Backlogs
	}
	if req.CGPA != nil {
		student.CGPA = req.CGPA
	}
	student.AcademicRequirements = req.AcademicRequirements
	student.Skills = req.Skills
	student.Projects = req.Projects

	if rules.InferAcademics(student) {
		s.logger.Debug().Int64("studentID", student.ID).Str("programType", student.ProgramType).Msg("Inferred program duration or pass-out year")
	}

	if student.OnboardingStep != models.OnboardingComplete {
		student.OnboardingStep = models.OnboardingComplete
	}

	if err := s.studentRepo.UpdateAcademic(ctx, student); err != nil {
		return nil, err
	}
	return s.buildStudentResponse(ctx, student)
}

// EligibilityReport evaluates a student against the current thresholds. The
// report is computed fresh on every call; nothing is stored.
func (s *StudentService) EligibilityReport(ctx context.Context, studentID int64) (*dto.EligibilityReportResponse, error) {
	student, err := s.studentRepo.GetByID(ctx, studentID)
	if err != nil {
		return nil, err
	}

	settings, err := s.settingsRepo.GetEligibilitySettings(ctx)
	if err != nil {
		return nil, err
	}

	thresholds := rules.ThresholdsFrom(settings)
	breakdown := rules.Evaluate(student, thresholds)

	report := &dto.EligibilityReportResponse{
		StudentID:    student.ID,
		AttendanceOK: breakdown.AttendanceOK,
		BacklogsOK:   breakdown.BacklogsOK,
		CGPAOK:       breakdown.CGPAOK,
		Eligible:     breakdown.Eligible,
		EvaluatedAt:  time.Now(),
	}
	report.Thresholds.AttendanceMin = thresholds.AttendanceMin
	report.Thresholds.BacklogMax = thresholds.BacklogMax
	report.Thresholds.CGPAMin = thresholds.CGPAMin
	return report, nil
}

func (s *StudentService) buildStudentResponse(ctx context.Context, student *models.Student) (*dto.StudentResponse, error) {
	if student.IsPlaced && student.Placement == nil {
		details, err := s.placementRepo.GetDetails(ctx, student.ID)
		if err != nil && !errors.Is(err, apperrors.ErrResourceNotFound) {
			return nil, err
		}
		student.Placement = details
	}
	resp := toStudentResponse(student)
	return &resp, nil
}

func toStudentResponse(student *models.Student) dto.StudentResponse {
	resp := dto.StudentResponse{
		ID:                   student.ID,
		RollNumber:           student.RollNumber,
		Branch:               student.Branch,
		Section:              student.Section,
		Year:                 student.Year,
		Course:               student.Course,
		Specialization:       student.Specialization,
		ProgramType:          student.ProgramType,
		AdmissionYear:        student.AdmissionYear,
		ProgramDurationYears: student.ProgramDurationYears,
		PassOutYear:          student.PassOutYear,
		AttendancePercentage: student.AttendancePercentage,
		Backlogs:             student.Backlogs,
		CGPA:                 student.CGPA,
		AcademicRequirements: student.AcademicRequirements,
		OnboardingStep:       string(student.OnboardingStep),
		Skills:               student.Skills,
		Projects:             student.Projects,
		IsPlaced:             student.IsPlaced,
	}
	if student.User != nil {
		user := toUserResponse(student.User)
		resp.User = &user
	}
	if student.Placement != nil {
		resp.Placement = &dto.PlacementResponse{
			CompanyName:  student.Placement.CompanyName,
			Designation:  student.Placement.Designation,
			CTC:          student.Placement.CTC,
			WorkLocation: student.Placement.WorkLocation,
			JoiningDate:  student.Placement.JoiningDate,
			PlacedBy:     student.Placement.PlacedBy,
			PlacedAt:     student.Placement.PlacedAt,
		}
	}
	return resp
}
