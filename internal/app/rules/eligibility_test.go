package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sanjith/placementcell/internal/app/models"
)

func floatPtr(v float64) *float64 { return &v }
func intPtr(v int) *int           { return &v }

var defaultThresholds = Thresholds{AttendanceMin: 80, BacklogMax: 0, CGPAMin: 6.0}

func snapshot(attendance *float64, backlogs *int, cgpa *float64) *models.Student {
	return &models.Student{
		AttendancePercentage: attendance,
		Backlogs:             backlogs,
		CGPA:                 cgpa,
	}
}

func TestIsEligible(t *testing.T) {
	tests := []struct {
		name    string
		student *models.Student
		want    bool
	}{
		{"all thresholds satisfied", snapshot(floatPtr(85), intPtr(0), floatPtr(6.5)), true},
		{"attendance fails despite high cgpa", snapshot(floatPtr(79), intPtr(0), floatPtr(8.0)), false},
		{"backlog fails alone", snapshot(floatPtr(90), intPtr(1), floatPtr(7.0)), false},
		{"cgpa fails alone", snapshot(floatPtr(90), intPtr(0), floatPtr(5.9)), false},
		{"exactly at every threshold", snapshot(floatPtr(80), intPtr(0), floatPtr(6.0)), true},
		{"just under attendance threshold", snapshot(floatPtr(79.99), intPtr(0), floatPtr(6.0)), false},
		{"missing attendance is worst case", snapshot(nil, intPtr(0), floatPtr(9.0)), false},
		{"missing backlogs is worst case", snapshot(floatPtr(95), nil, floatPtr(9.0)), false},
		{"missing cgpa is worst case", snapshot(floatPtr(95), intPtr(0), nil), false},
		{"entirely empty record", snapshot(nil, nil, nil), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsEligible(tt.student, defaultThresholds))
		})
	}
}

// Flipping any single field across its threshold flips the result.
func TestIsEligible_SingleFieldFlips(t *testing.T) {
	base := snapshot(floatPtr(80), intPtr(0), floatPtr(6.0))
	require.True(t, IsEligible(base, defaultThresholds))

	attendance := snapshot(floatPtr(79), intPtr(0), floatPtr(6.0))
	assert.False(t, IsEligible(attendance, defaultThresholds))

	backlogs := snapshot(floatPtr(80), intPtr(1), floatPtr(6.0))
	assert.False(t, IsEligible(backlogs, defaultThresholds))

	cgpa := snapshot(floatPtr(80), intPtr(0), floatPtr(5.99))
	assert.False(t, IsEligible(cgpa, defaultThresholds))
}

func TestIsEligible_RelaxedThresholds(t *testing.T) {
	relaxed := Thresholds{AttendanceMin: 60, BacklogMax: 2, CGPAMin: 5.0}
	st := snapshot(floatPtr(65), intPtr(2), floatPtr(5.0))
	assert.True(t, IsEligible(st, relaxed))
	assert.False(t, IsEligible(st, defaultThresholds))
}

func TestEvaluate_Breakdown(t *testing.T) {
	st := snapshot(floatPtr(79), intPtr(0), floatPtr(8.0))
	b := Evaluate(st, defaultThresholds)

	assert.False(t, b.AttendanceOK)
	assert.True(t, b.BacklogsOK)
	assert.True(t, b.CGPAOK)
	assert.False(t, b.Eligible)
}

func TestThresholdsFrom(t *testing.T) {
	s := &models.EligibilitySettings{AttendanceMin: 75, BacklogMax: 1, CGPAMin: 6.5}
	got := ThresholdsFrom(s)
	assert.Equal(t, Thresholds{AttendanceMin: 75, BacklogMax: 1, CGPAMin: 6.5}, got)
}
