package dto

import (
	"time"
)

// UpdateEligibilitySettingsRequest changes the institution-wide thresholds.
// Nil fields keep their current values.
type UpdateEligibilitySettingsRequest struct {
	AttendanceMin *float64 `json:"attendanceMin" binding:"omitempty,min=0,max=100" example:"75"`
	BacklogMax    *int     `json:"backlogMax" binding:"omitempty,min=0" example:"1"`
	CGPAMin       *float64 `json:"cgpaMin" binding:"omitempty,min=0,max=10" example:"6.5"`
}

// EligibilitySettingsResponse is the current threshold configuration
type EligibilitySettingsResponse struct {
	AttendanceMin float64   `json:"attendanceMin" example:"80"`
	BacklogMax    int       `json:"backlogMax" example:"0"`
	CGPAMin       float64   `json:"cgpaMin" example:"6"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// UpdateCollegeRequest changes the college profile. Nil fields keep their
// current values.
type UpdateCollegeRequest struct {
	Name    *string `json:"name" example:"Sunrise Institute of Technology"`
	LogoURL *string `json:"logoUrl" binding:"omitempty,url" example:"https://cdn.example/logo.png"`
}

// CollegeResponse is the college profile
type CollegeResponse struct {
	Name      string    `json:"name" example:"Sunrise Institute of Technology"`
	LogoURL   string    `json:"logoUrl,omitempty" example:"https://cdn.example/logo.png"`
	UpdatedAt time.Time `json:"updatedAt"`
}
