package dto

import (
	"time"
)

// UpdatePersonalDetailsRequest fills in the personal onboarding step
type UpdatePersonalDetailsRequest struct {
	FirstName string `json:"firstName" binding:"required" example:"Ravi"`
	LastName  string `json:"lastName" example:"Kumar"`
	Branch    string `json:"branch" binding:"required" example:"CSE"`
	Section   string `json:"section" example:"A"`
	Year      int    `json:"year" binding:"required,min=1,max=6" example:"3"`
	Course    string `json:"course" binding:"required" example:"B.Tech CSE"`
}

// UpdateAcademicDetailsRequest fills in the academic onboarding step.
// Program duration and pass-out year are derived server side when absent.
type UpdateAcademicDetailsRequest struct {
	ProgramType          string   `json:"programType" example:"B.Tech"`
	Specialization       string   `json:"specialization" example:"AI"`
	AdmissionYear        *int     `json:"admissionYear" example:"2021"`
	ProgramDurationYears *int     `json:"programDurationYears" example:"4"`
	AttendancePercentage *float64 `json:"attendancePercentage" binding:"omitempty,min=0,max=100" example:"85"`
	Backlogs             *int     `json:"backlogs" binding:"omitempty,min=0" example:"0"`
	CGPA                 *float64 `json:"cgpa" binding:"omitempty,min=0,max=10" example:"7.8"`
	AcademicRequirements string   `json:"academicRequirements"`
	Skills               string   `json:"skills" example:"Go, SQL"`
	Projects             string   `json:"projects"`
}

// StudentResponse is the detailed view of a student
type StudentResponse struct {
	ID                   int64              `json:"id" example:"1"`
	RollNumber           string             `json:"rollNumber" example:"21CS042"`
	Branch               string             `json:"branch" example:"CSE"`
	Section              string             `json:"section" example:"A"`
	Year                 int                `json:"year" example:"3"`
	Course               string             `json:"course" example:"B.Tech CSE"`
	Specialization       string             `json:"specialization,omitempty" example:"AI"`
	ProgramType          string             `json:"programType,omitempty" example:"B.Tech"`
	AdmissionYear        *int               `json:"admissionYear,omitempty" example:"2021"`
	ProgramDurationYears *int               `json:"programDurationYears,omitempty" example:"4"`
	PassOutYear          *string            `json:"passOutYear,omitempty" example:"2025"`
	AttendancePercentage *float64           `json:"attendancePercentage,omitempty" example:"85"`
	Backlogs             *int               `json:"backlogs,omitempty" example:"0"`
	CGPA                 *float64           `json:"cgpa,omitempty" example:"7.8"`
	AcademicRequirements string             `json:"academicRequirements,omitempty"`
	OnboardingStep       string             `json:"onboardingStep" example:"COMPLETE"`
	Skills               string             `json:"skills,omitempty" example:"Go, SQL"`
	Projects             string             `json:"projects,omitempty"`
	IsPlaced             bool               `json:"isPlaced" example:"false"`
	User                 *UserResponse      `json:"user,omitempty"`
	Placement            *PlacementResponse `json:"placement,omitempty"`
}

// StudentListResponse is a page of students
type StudentListResponse struct {
	Students   []StudentResponse `json:"students"`
	Pagination PaginationInfo    `json:"pagination"`
}

// StudentFilterRequest narrows student listings
type StudentFilterRequest struct {
	Branch   string `form:"branch" example:"CSE"`
	Section  string `form:"section" example:"A"`
	Year     *int   `form:"year" example:"3"`
	IsPlaced *bool  `form:"isPlaced"`
	Query    string `form:"q" example:"ravi"` // Matches name, email or roll number
}

// EligibilityReportResponse is the per-criterion eligibility breakdown
type EligibilityReportResponse struct {
	StudentID    int64   `json:"studentId" example:"1"`
	AttendanceOK bool    `json:"attendanceOk" example:"true"`
	BacklogsOK   bool    `json:"backlogsOk" example:"true"`
	CGPAOK       bool    `json:"cgpaOk" example:"false"`
	Eligible     bool    `json:"eligible" example:"false"`
	Thresholds   struct {
		AttendanceMin float64 `json:"attendanceMin" example:"80"`
		BacklogMax    int     `json:"backlogMax" example:"0"`
		CGPAMin       float64 `json:"cgpaMin" example:"6"`
	} `json:"thresholds"`
	EvaluatedAt time.Time `json:"evaluatedAt"`
}
