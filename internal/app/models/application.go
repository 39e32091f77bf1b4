package models

import (
	"time"
)

// ApplicationStatus defines the review pipeline of a job application
type ApplicationStatus string

const (
	ApplicationApplied     ApplicationStatus = "APPLIED"
	ApplicationReviewed    ApplicationStatus = "REVIEWED"
	ApplicationShortlisted ApplicationStatus = "SHORTLISTED"
	ApplicationRejected    ApplicationStatus = "REJECTED"
	ApplicationHired       ApplicationStatus = "HIRED"
)

// JobApplication links one student to one job via one resume, based on the
// 'job_applications' table. Uniqueness per (student, job) is enforced by a
// database constraint, not pre-checked by the service.
type JobApplication struct {
	ID        int64             `json:"id" db:"id"`
	StudentID int64             `json:"studentId" db:"student_id"`
	JobID     int64             `json:"jobId" db:"job_id"`
	ResumeURL string            `json:"resumeUrl" db:"resume_url"` // Opaque reference; file handling lives elsewhere
	Status    ApplicationStatus `json:"status" db:"status" example:"APPLIED"`
	AppliedAt time.Time         `json:"appliedAt" db:"applied_at"`
	UpdatedAt time.Time         `json:"updatedAt" db:"updated_at"`

	// Relations (populated when needed)
	Student *Student `json:"student,omitempty"`
	Job     *Job     `json:"job,omitempty"`
}

// NextStatuses returns the statuses an application may move to from its
// current status. REVIEWED fans out to the three terminal-ish outcomes;
// SHORTLISTED may still be hired or rejected.
func (a *JobApplication) NextStatuses() []ApplicationStatus {
	switch a.Status {
	case ApplicationApplied:
		return []ApplicationStatus{ApplicationReviewed, ApplicationRejected}
	case ApplicationReviewed:
		return []ApplicationStatus{ApplicationShortlisted, ApplicationRejected, ApplicationHired}
	case ApplicationShortlisted:
		return []ApplicationStatus{ApplicationHired, ApplicationRejected}
	default:
		return nil
	}
}

// CanMoveTo reports whether a transition to the target status is allowed
func (a *JobApplication) CanMoveTo(target ApplicationStatus) bool {
	for _, s := range a.NextStatuses() {
		if s == target {
			return true
		}
	}
	return false
}
