package rules

import (
	"time"

	"github.com/sanjith/placementcell/internal/app/models"
)

// IsExpired reports whether a listing deadline has passed. Listings without
// a deadline never expire automatically, no matter how old they are.
func IsExpired(deadline *time.Time, now time.Time) bool {
	if deadline == nil {
		return false
	}
	return now.After(*deadline)
}

// RefreshJobStatus transitions an ACTIVE job whose deadline has passed to
// EXPIRED and reports whether it changed anything. Manual states (INACTIVE,
// FILLED) are never overridden. There is no background sweep: this runs on
// every read and write path that touches the job, so a posting nobody loads
// keeps its stale status until next touched.
func RefreshJobStatus(j *models.Job, now time.Time) bool {
	if j.Status != models.JobStatusActive {
		return false
	}
	if !IsExpired(j.ApplicationDeadline, now) {
		return false
	}
	j.Status = models.JobStatusExpired
	return true
}

// RefreshExternalJobStatus is the external-posting counterpart of
// RefreshJobStatus: ACTIVE becomes CLOSED once the expiry passes.
func RefreshExternalJobStatus(e *models.ExternalJob, now time.Time) bool {
	if e.Status != models.ExternalJobStatusActive {
		return false
	}
	if !IsExpired(e.ExpiresAt, now) {
		return false
	}
	e.Status = models.ExternalJobStatusClosed
	return true
}
