package models

import (
	"time"
)

// OnboardingStep tracks how far a student has progressed through onboarding
type OnboardingStep string

const (
	OnboardingPersonal OnboardingStep = "PERSONAL"
	OnboardingAcademic OnboardingStep = "ACADEMIC"
	OnboardingComplete OnboardingStep = "COMPLETE"
)

// Student defines the student model based on the 'students' table.
// Numeric academic fields are pointers: a nil value means the record has not
// been filled in yet, which the eligibility evaluator treats conservatively.
type Student struct {
	ID                   int64          `json:"id" db:"id" example:"1"`
	UserID               int64          `json:"userId" db:"user_id" example:"5"`
	RollNumber           string         `json:"rollNumber" db:"roll_number" example:"21CS042"` // Unique roll number
	Branch               string         `json:"branch" db:"branch" example:"CSE"`
	Section              string         `json:"section" db:"section" example:"A"`
	Year                 int            `json:"year" db:"year" example:"3"`
	Course               string         `json:"course" db:"course" example:"B.Tech CSE"`
	Specialization       string         `json:"specialization,omitempty" db:"specialization" example:"AI"`
	ProgramType          string         `json:"programType,omitempty" db:"program_type" example:"B.Tech"`
	AdmissionYear        *int           `json:"admissionYear,omitempty" db:"admission_year" example:"2021"`
	ProgramDurationYears *int           `json:"programDurationYears,omitempty" db:"program_duration_years" example:"3"` // Derived once, never overwritten
	PassOutYear          *string        `json:"passOutYear,omitempty" db:"pass_out_year" example:"2024"`                // Derived once, never overwritten
	AttendancePercentage *float64       `json:"attendancePercentage,omitempty" db:"attendance_percentage" example:"85"`
	Backlogs             *int           `json:"backlogs,omitempty" db:"backlogs" example:"0"`
	CGPA                 *float64       `json:"cgpa,omitempty" db:"cgpa" example:"7.8"`
	AcademicRequirements string         `json:"academicRequirements,omitempty" db:"academic_requirements"`
	OnboardingStep       OnboardingStep `json:"onboardingStep" db:"onboarding_step" example:"ACADEMIC"`
	Skills               string         `json:"skills,omitempty" db:"skills" example:"Go, SQL"`
	Projects             string         `json:"projects,omitempty" db:"projects"`
	IsPlaced             bool           `json:"isPlaced" db:"is_placed" example:"false"`
	CreatedAt            time.Time      `json:"createdAt" db:"created_at"`
	UpdatedAt            time.Time      `json:"updatedAt" db:"updated_at"`

	// Relations (populated when needed)
	User      *User             `json:"user,omitempty"`      // Associated account
	Placement *PlacementDetails `json:"placement,omitempty"` // Present iff IsPlaced is true
}

// IsActive reports whether the student's account is active. Students loaded
// without their user relation are treated as inactive.
func (s *Student) IsActive() bool {
	return s.User != nil && s.User.IsActive
}

// PlacementDetails defines the placement record attached to a placed student,
// based on the 'placement_details' table. One record per student.
type PlacementDetails struct {
	ID           int64     `json:"id" db:"id"`
	StudentID    int64     `json:"studentId" db:"student_id"`
	CompanyName  string    `json:"companyName" db:"company_name" example:"Acme Corp"`
	Designation  string    `json:"designation" db:"designation" example:"Software Engineer"`
	CTC          float64   `json:"ctc" db:"ctc" example:"1200000"` // Annual CTC in rupees
	WorkLocation string    `json:"workLocation" db:"work_location" example:"Bengaluru"`
	JoiningDate  time.Time `json:"joiningDate" db:"joining_date" example:"2025-07-01T00:00:00Z"`
	PlacedBy     int64     `json:"placedBy" db:"placed_by"` // Officer/admin user who recorded the placement
	PlacedAt     time.Time `json:"placedAt" db:"placed_at"`
}
