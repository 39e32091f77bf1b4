package dto

import (
	"time"
)

// CreateJobRequest creates an on-campus job listing
type CreateJobRequest struct {
	Title               string     `json:"title" binding:"required" example:"Graduate Engineer Trainee"`
	Company             string     `json:"company" binding:"required" example:"Acme Corp"`
	Description         string     `json:"description"`
	Location            string     `json:"location" example:"Bengaluru"`
	JobType             string     `json:"jobType" example:"Full-time"`
	SalaryRange         string     `json:"salaryRange" example:"8-12 LPA"`
	MinCGPA             *float64   `json:"minCgpa" binding:"omitempty,min=0,max=10" example:"7"`
	ApplicationDeadline *time.Time `json:"applicationDeadline" example:"2025-10-15T23:59:59Z"`
}

// UpdateJobRequest updates a job listing. Nil fields are left unchanged.
type UpdateJobRequest struct {
	Title               *string    `json:"title" example:"Graduate Engineer Trainee"`
	Company             *string    `json:"company" example:"Acme Corp"`
	Description         *string    `json:"description"`
	Location            *string    `json:"location" example:"Bengaluru"`
	JobType             *string    `json:"jobType" example:"Full-time"`
	SalaryRange         *string    `json:"salaryRange" example:"8-12 LPA"`
	MinCGPA             *float64   `json:"minCgpa" binding:"omitempty,min=0,max=10" example:"7"`
	ApplicationDeadline *time.Time `json:"applicationDeadline"`
}

// UpdateJobStatusRequest sets a manual listing status
type UpdateJobStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=ACTIVE INACTIVE FILLED" example:"FILLED"`
}

// JobResponse is the listing view of a job
type JobResponse struct {
	ID                  int64      `json:"id" example:"3"`
	Title               string     `json:"title" example:"Graduate Engineer Trainee"`
	Company             string     `json:"company" example:"Acme Corp"`
	Description         string     `json:"description,omitempty"`
	Location            string     `json:"location,omitempty" example:"Bengaluru"`
	JobType             string     `json:"jobType,omitempty" example:"Full-time"`
	SalaryRange         string     `json:"salaryRange,omitempty" example:"8-12 LPA"`
	MinCGPA             *float64   `json:"minCgpa,omitempty" example:"7"`
	ApplicationDeadline *time.Time `json:"applicationDeadline,omitempty"`
	Status              string     `json:"status" example:"ACTIVE"`
	ApplicationCount    int        `json:"applicationCount" example:"14"`
	CreatedAt           time.Time  `json:"createdAt"`
}

// JobListResponse is a page of jobs
type JobListResponse struct {
	Jobs       []JobResponse  `json:"jobs"`
	Pagination PaginationInfo `json:"pagination"`
}

// CreateExternalJobRequest creates an off-campus job pointer
type CreateExternalJobRequest struct {
	Title       string     `json:"title" binding:"required" example:"Backend Engineer"`
	Company     string     `json:"company" binding:"required" example:"Globex"`
	ApplyURL    string     `json:"applyUrl" binding:"required,url" example:"https://globex.example/careers/123"`
	SalaryRange string     `json:"salaryRange" example:"10-15 LPA"`
	ExpiresAt   *time.Time `json:"expiresAt" example:"2025-11-01T00:00:00Z"`
}

// ExternalJobResponse is the listing view of an external job
type ExternalJobResponse struct {
	ID          int64      `json:"id" example:"2"`
	Title       string     `json:"title" example:"Backend Engineer"`
	Company     string     `json:"company" example:"Globex"`
	ApplyURL    string     `json:"applyUrl" example:"https://globex.example/careers/123"`
	SalaryRange string     `json:"salaryRange,omitempty" example:"10-15 LPA"`
	ExpiresAt   *time.Time `json:"expiresAt,omitempty"`
	Status      string     `json:"status" example:"ACTIVE"`
	CreatedAt   time.Time  `json:"createdAt"`
}
