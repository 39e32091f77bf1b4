package dto

import (
	"time"
)

// CreateFormLinkRequest creates a shareable company intake link
type CreateFormLinkRequest struct {
	Label string `json:"label" example:"Campus drive 2026 intake"`
}

// FormLinkResponse is the officer-side view of an intake link
type FormLinkResponse struct {
	ID              int64     `json:"id" example:"1"`
	Token           string    `json:"token" example:"9f0a1c2e-3b4d-4e5f-8a6b-7c8d9e0f1a2b"`
	Label           string    `json:"label,omitempty" example:"Campus drive 2026 intake"`
	Active          bool      `json:"active" example:"true"`
	SubmissionCount int       `json:"submissionCount" example:"5"`
	CreatedAt       time.Time `json:"createdAt"`
}

// SubmitCompanyRequestRequest is the public intake submission. Unknown extra
// fields from the form are kept verbatim in extras.
type SubmitCompanyRequestRequest struct {
	CompanyName string                 `json:"companyName" binding:"required" example:"Acme Corp"`
	Website     string                 `json:"website" binding:"omitempty,url" example:"https://acme.example"`
	HRName      string                 `json:"hrName" example:"Priya Shah"`
	HREmail     string                 `json:"hrEmail" binding:"required,email" example:"priya@acme.example"`
	HRPhone     string                 `json:"hrPhone" example:"+91 98x"`
	JobTitle    string                 `json:"jobTitle" example:"Graduate Engineer Trainee"`
	SalaryRange string                 `json:"salaryRange" example:"8-12 LPA"`
	Description string                 `json:"description"`
	Extras      map[string]interface{} `json:"extras"`
}

// ReviewCompanyRequestRequest approves or rejects an intake submission
type ReviewCompanyRequestRequest struct {
	Status string `json:"status" binding:"required,oneof=APPROVED REJECTED" example:"APPROVED"`
}

// CompanyRequestResponse is the officer-side view of an intake submission
type CompanyRequestResponse struct {
	ID          int64                  `json:"id" example:"9"`
	CompanyName string                 `json:"companyName" example:"Acme Corp"`
	Website     string                 `json:"website,omitempty" example:"https://acme.example"`
	HRName      string                 `json:"hrName,omitempty" example:"Priya Shah"`
	HREmail     string                 `json:"hrEmail" example:"priya@acme.example"`
	HRPhone     string                 `json:"hrPhone,omitempty"`
	JobTitle    string                 `json:"jobTitle,omitempty" example:"Graduate Engineer Trainee"`
	SalaryRange string                 `json:"salaryRange,omitempty" example:"8-12 LPA"`
	Description string                 `json:"description,omitempty"`
	Extras      map[string]interface{} `json:"extras,omitempty"`
	Status      string                 `json:"status" example:"PENDING"`
	CreatedAt   time.Time              `json:"createdAt"`
}

// CompanyRequestListResponse is a page of intake submissions
type CompanyRequestListResponse struct {
	Requests   []CompanyRequestResponse `json:"requests"`
	Pagination PaginationInfo           `json:"pagination"`
}
