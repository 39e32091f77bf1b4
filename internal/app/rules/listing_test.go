package rules

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/sanjith/placementcell/internal/app/models"
)

func timePtr(t time.Time) *time.Time { return &t }

func TestIsExpired(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		deadline *time.Time
		want     bool
	}{
		{"deadline in the past", timePtr(now.Add(-time.Hour)), true},
		{"deadline in the future", timePtr(now.Add(time.Hour)), false},
		{"deadline exactly now is not yet past", timePtr(now), false},
		{"no deadline never expires", nil, false},
		{"no deadline, arbitrarily old listing", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsExpired(tt.deadline, now))
		})
	}
}

func TestRefreshJobStatus(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	past := timePtr(now.Add(-time.Hour))
	future := timePtr(now.Add(time.Hour))

	tests := []struct {
		name        string
		status      models.JobStatus
		deadline    *time.Time
		wantChanged bool
		wantStatus  models.JobStatus
	}{
		{"active past deadline expires", models.JobStatusActive, past, true, models.JobStatusExpired},
		{"active before deadline stays", models.JobStatusActive, future, false, models.JobStatusActive},
		{"active without deadline stays", models.JobStatusActive, nil, false, models.JobStatusActive},
		{"manual filled is never overridden", models.JobStatusFilled, past, false, models.JobStatusFilled},
		{"manual inactive is never overridden", models.JobStatusInactive, past, false, models.JobStatusInactive},
		{"already expired stays expired", models.JobStatusExpired, past, false, models.JobStatusExpired},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			j := &models.Job{Status: tt.status, ApplicationDeadline: tt.deadline}
			changed := RefreshJobStatus(j, now)
			assert.Equal(t, tt.wantChanged, changed)
			assert.Equal(t, tt.wantStatus, j.Status)
		})
	}
}

func TestRefreshExternalJobStatus(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	expired := &models.ExternalJob{Status: models.ExternalJobStatusActive, ExpiresAt: timePtr(now.Add(-time.Minute))}
	assert.True(t, RefreshExternalJobStatus(expired, now))
	assert.Equal(t, models.ExternalJobStatusClosed, expired.Status)

	open := &models.ExternalJob{Status: models.ExternalJobStatusActive, ExpiresAt: nil}
	assert.False(t, RefreshExternalJobStatus(open, now))
	assert.Equal(t, models.ExternalJobStatusActive, open.Status)

	closed := &models.ExternalJob{Status: models.ExternalJobStatusClosed, ExpiresAt: timePtr(now.Add(-time.Minute))}
	assert.False(t, RefreshExternalJobStatus(closed, now))
}
