package dto

import (
	"time"
)

// ApplyToJobRequest submits an application to an on-campus job
type ApplyToJobRequest struct {
	ResumeURL string `json:"resumeUrl" binding:"omitempty,url" example:"https://files.example/resume/42.pdf"`
}

// UpdateApplicationStatusRequest advances an application through review
type UpdateApplicationStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=REVIEWED SHORTLISTED REJECTED HIRED" example:"SHORTLISTED"`
}

// ApplicationResponse is the detailed view of an application
type ApplicationResponse struct {
	ID        int64            `json:"id" example:"11"`
	JobID     int64            `json:"jobId" example:"3"`
	StudentID int64            `json:"studentId" example:"7"`
	ResumeURL string           `json:"resumeUrl,omitempty" example:"https://files.example/resume/42.pdf"`
	Status    string           `json:"status" example:"APPLIED"`
	AppliedAt time.Time        `json:"appliedAt"`
	UpdatedAt time.Time        `json:"updatedAt"`
	Job       *JobResponse     `json:"job,omitempty"`
	Student   *StudentResponse `json:"student,omitempty"`
}

// ApplicationListResponse is a page of applications
type ApplicationListResponse struct {
	Applications []ApplicationResponse `json:"applications"`
	Pagination   PaginationInfo        `json:"pagination"`
}
