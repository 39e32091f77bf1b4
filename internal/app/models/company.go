package models

import (
	"time"
)

// CompanyRequestStatus defines the review state of a company hiring request
type CompanyRequestStatus string

const (
	CompanyRequestPending  CompanyRequestStatus = "PENDING"
	CompanyRequestApproved CompanyRequestStatus = "APPROVED"
	CompanyRequestRejected CompanyRequestStatus = "REJECTED"
)

// CompanyRequest defines a company-submitted hiring request based on the
// 'company_requests' table. Known fields are typed; anything unrecognized
// from the public form lands in Extras.
type CompanyRequest struct {
	ID          int64                  `json:"id" db:"id"`
	CompanyName string                 `json:"companyName" db:"company_name" example:"Initech"`
	Website     string                 `json:"website,omitempty" db:"website"`
	HRName      string                 `json:"hrName,omitempty" db:"hr_name"`
	HREmail     string                 `json:"hrEmail" db:"hr_email"`
	HRPhone     string                 `json:"hrPhone,omitempty" db:"hr_phone"`
	JobTitle    string                 `json:"jobTitle,omitempty" db:"job_title"`
	SalaryRange string                 `json:"salaryRange,omitempty" db:"salary_range"`
	Description string                 `json:"description,omitempty" db:"description"`
	Extras      map[string]interface{} `json:"extras,omitempty" db:"extras"` // Residual unrecognized form fields (JSONB)
	Status      CompanyRequestStatus   `json:"status" db:"status" example:"PENDING"`
	FormLinkID  *int64                 `json:"formLinkId,omitempty" db:"form_link_id"` // Set when submitted through a shareable link
	ReviewedBy  *int64                 `json:"reviewedBy,omitempty" db:"reviewed_by"`
	CreatedAt   time.Time              `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time              `json:"updatedAt" db:"updated_at"`
}

// CompanyFormLink defines a shareable public form link based on the
// 'company_form_links' table. SubmissionCount is incremented per submission.
type CompanyFormLink struct {
	ID              int64     `json:"id" db:"id"`
	Token           string    `json:"token" db:"token" example:"9f4cb9a0-6a9b-4a57-9c7d-2f2f6f7f2a11"` // Unguessable UUID used in the public URL
	Label           string    `json:"label" db:"label" example:"2026 batch hiring"`
	Active          bool      `json:"active" db:"active"`
	SubmissionCount int       `json:"submissionCount" db:"submission_count"`
	CreatedBy       int64     `json:"createdBy" db:"created_by"`
	CreatedAt       time.Time `json:"createdAt" db:"created_at"`
}
