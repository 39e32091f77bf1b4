package models

import (
	"time"
)

// SingletonID is the fixed primary key used by both configuration singletons.
// Seeding upserts the row at startup, so the lazy create-on-read path never
// races and "find any document" ambiguity does not arise.
const SingletonID int64 = 1

// Default eligibility thresholds applied when the singleton is first created
const (
	DefaultAttendanceMin = 80.0
	DefaultBacklogMax    = 0
	DefaultCGPAMin       = 6.0
)

// EligibilitySettings is the global eligibility threshold singleton based on
// the 'eligibility_settings' table. Exactly one row exists at all times.
type EligibilitySettings struct {
	ID            int64     `json:"id" db:"id" example:"1"`
	AttendanceMin float64   `json:"attendanceMin" db:"attendance_min" example:"80"`
	BacklogMax    int       `json:"backlogMax" db:"backlog_max" example:"0"`
	CGPAMin       float64   `json:"cgpaMin" db:"cgpa_min" example:"6.0"`
	UpdatedBy     *int64    `json:"updatedBy,omitempty" db:"updated_by"`
	UpdatedAt     time.Time `json:"updatedAt" db:"updated_at"`
}

// College is the global college-identity singleton based on the 'colleges'
// table. Exactly one row exists at all times.
type College struct {
	ID        int64     `json:"id" db:"id" example:"1"`
	Name      string    `json:"name" db:"name" example:"St. Mary's Engineering College"`
	LogoURL   string    `json:"logoUrl,omitempty" db:"logo_url"`
	UpdatedBy *int64    `json:"updatedBy,omitempty" db:"updated_by"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`
}
