// Package rules holds the placement rule engine: pure functions over model
// snapshots with no I/O. Services re-evaluate these on every call; nothing
// here caches or mutates persistent state.
package rules

import (
	"github.com/sanjith/placementcell/internal/app/models"
)

// Thresholds are the configurable eligibility cutoffs, sourced from the
// EligibilitySettings singleton.
type Thresholds struct {
	AttendanceMin float64
	BacklogMax    int
	CGPAMin       float64
}

// ThresholdsFrom extracts the cutoffs from the settings singleton
func ThresholdsFrom(s *models.EligibilitySettings) Thresholds {
	return Thresholds{
		AttendanceMin: s.AttendanceMin,
		BacklogMax:    s.BacklogMax,
		CGPAMin:       s.CGPAMin,
	}
}

// Missing numeric fields are coerced to their worst case so incomplete
// records are conservatively ineligible: attendance and CGPA fall to zero,
// backlogs rise to a sentinel no threshold will admit.
const missingBacklogs = 1 << 30

func attendanceOf(s *models.Student) float64 {
	if s.AttendancePercentage == nil {
		return 0
	}
	return *s.AttendancePercentage
}

func backlogsOf(s *models.Student) int {
	if s.Backlogs == nil {
		return missingBacklogs
	}
	return *s.Backlogs
}

func cgpaOf(s *models.Student) float64 {
	if s.CGPA == nil {
		return 0
	}
	return *s.CGPA
}

// IsEligible reports whether the student currently satisfies all three
// thresholds. Values exactly at a threshold satisfy it. Eligibility is
// advisory: it never gates placement.
func IsEligible(s *models.Student, t Thresholds) bool {
	return attendanceOf(s) >= t.AttendanceMin &&
		backlogsOf(s) <= t.BacklogMax &&
		cgpaOf(s) >= t.CGPAMin
}

// EligibilityBreakdown reports which individual thresholds a student meets,
// for per-student reports and dashboard aggregation.
type EligibilityBreakdown struct {
	AttendanceOK bool `json:"attendanceOk"`
	BacklogsOK   bool `json:"backlogsOk"`
	CGPAOK       bool `json:"cgpaOk"`
	Eligible     bool `json:"eligible"`
}

// Evaluate returns the per-threshold breakdown for a student
func Evaluate(s *models.Student, t Thresholds) EligibilityBreakdown {
	b := EligibilityBreakdown{
		AttendanceOK: attendanceOf(s) >= t.AttendanceMin,
		BacklogsOK:   backlogsOf(s) <= t.BacklogMax,
		CGPAOK:       cgpaOf(s) >= t.CGPAMin,
	}
	b.Eligible = b.AttendanceOK && b.BacklogsOK && b.CGPAOK
	return b
}
