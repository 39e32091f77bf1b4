package models

import (
	"time"
)

// JobStatus defines the lifecycle status of an internal job posting.
// EXPIRED is only ever set by the deadline rule; INACTIVE and FILLED are
// manual operator states and are never overridden automatically.
type JobStatus string

const (
	JobStatusActive   JobStatus = "ACTIVE"
	JobStatusExpired  JobStatus = "EXPIRED"
	JobStatusInactive JobStatus = "INACTIVE"
	JobStatusFilled   JobStatus = "FILLED"
)

// Job defines an on-campus job posting based on the 'jobs' table
type Job struct {
	ID                  int64      `json:"id" db:"id" example:"1"`
	Title               string     `json:"title" db:"title" example:"Graduate Software Engineer"`
	Company             string     `json:"company" db:"company" example:"Acme Corp"`
	Description         string     `json:"description" db:"description"`
	Location            string     `json:"location" db:"location" example:"Hyderabad"`
	JobType             string     `json:"jobType" db:"job_type" example:"Full-time"`
	SalaryRange         string     `json:"salaryRange,omitempty" db:"salary_range" example:"10-14 LPA"`
	MinCGPA             *float64   `json:"minCgpa,omitempty" db:"min_cgpa" example:"6.5"`
	ApplicationDeadline *time.Time `json:"applicationDeadline,omitempty" db:"application_deadline"` // nil means the posting never expires
	Status              JobStatus  `json:"status" db:"status" example:"ACTIVE"`
	CreatedBy           int64      `json:"createdBy" db:"created_by"`
	CreatedAt           time.Time  `json:"createdAt" db:"created_at"`
	UpdatedAt           time.Time  `json:"updatedAt" db:"updated_at"`
}

// ExternalJobStatus defines the lifecycle status of an off-campus posting
type ExternalJobStatus string

const (
	ExternalJobStatusActive ExternalJobStatus = "ACTIVE"
	ExternalJobStatusClosed ExternalJobStatus = "CLOSED"
)

// ExternalJob defines an off-campus posting shared with students, based on
// the 'external_jobs' table
type ExternalJob struct {
	ID          int64             `json:"id" db:"id"`
	Title       string            `json:"title" db:"title" example:"Backend Intern"`
	Company     string            `json:"company" db:"company" example:"Globex"`
	ApplyURL    string            `json:"applyUrl" db:"apply_url" example:"https://careers.globex.com/123"`
	SalaryRange string            `json:"salaryRange,omitempty" db:"salary_range"`
	ExpiresAt   *time.Time        `json:"expiresAt,omitempty" db:"expires_at"` // nil means the posting never expires
	Status      ExternalJobStatus `json:"status" db:"status" example:"ACTIVE"`
	CreatedBy   int64             `json:"createdBy" db:"created_by"`
	CreatedAt   time.Time         `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time         `json:"updatedAt" db:"updated_at"`
}
