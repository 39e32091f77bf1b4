package rules

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sanjith/placementcell/internal/app/models"
	"github.com/sanjith/placementcell/internal/pkg/apperrors"
)

func validDetails() models.PlacementDetails {
	return models.PlacementDetails{
		CompanyName:  "Acme Corp",
		Designation:  "Software Engineer",
		CTC:          1200000,
		WorkLocation: "Bengaluru",
		JoiningDate:  time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC),
	}
}

func TestMarkPlaced_SetsPlacedStateWithDetails(t *testing.T) {
	now := time.Now()
	st := &models.Student{ID: 7}

	err := MarkPlaced(st, validDetails(), 42, now)
	require.NoError(t, err)

	require.True(t, st.IsPlaced)
	require.NotNil(t, st.Placement)
	assert.Equal(t, int64(7), st.Placement.StudentID)
	assert.Equal(t, int64(42), st.Placement.PlacedBy)
	assert.Equal(t, now, st.Placement.PlacedAt)
}

func TestMarkPlaced_MissingFieldFails(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*models.PlacementDetails)
		field  string
	}{
		{"missing company", func(d *models.PlacementDetails) { d.CompanyName = "" }, "companyName"},
		{"missing designation", func(d *models.PlacementDetails) { d.Designation = "" }, "designation"},
		{"missing ctc", func(d *models.PlacementDetails) { d.CTC = 0 }, "ctc"},
		{"missing location", func(d *models.PlacementDetails) { d.WorkLocation = "" }, "workLocation"},
		{"missing joining date", func(d *models.PlacementDetails) { d.JoiningDate = time.Time{} }, "joiningDate"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st := &models.Student{ID: 1}
			d := validDetails()
			tt.mutate(&d)

			err := MarkPlaced(st, d, 42, time.Now())
			require.Error(t, err)
			assert.True(t, errors.Is(err, apperrors.ErrPlacementDetailsIncomplete))
			assert.Contains(t, err.Error(), tt.field)

			// a failed placement leaves the student untouched
			assert.False(t, st.IsPlaced)
			assert.Nil(t, st.Placement)
		})
	}
}

// Placement is not gated by eligibility: an ineligible student can still be
// placed with full valid details.
func TestMarkPlaced_IgnoresEligibility(t *testing.T) {
	st := snapshot(floatPtr(79), intPtr(0), floatPtr(8.0))
	require.False(t, IsEligible(st, defaultThresholds))

	require.NoError(t, MarkPlaced(st, validDetails(), 42, time.Now()))
	assert.True(t, st.IsPlaced)
}

func TestMarkPlaced_OverwritesPriorRecord(t *testing.T) {
	st := &models.Student{ID: 3}
	require.NoError(t, MarkPlaced(st, validDetails(), 42, time.Now()))

	second := validDetails()
	second.CompanyName = "Globex"
	second.CTC = 1500000
	require.NoError(t, MarkPlaced(st, second, 42, time.Now()))

	assert.Equal(t, "Globex", st.Placement.CompanyName)
	assert.Equal(t, float64(1500000), st.Placement.CTC)
}

func TestMarkUnplaced_RoundTripAndIdempotence(t *testing.T) {
	st := &models.Student{ID: 3}
	require.NoError(t, MarkPlaced(st, validDetails(), 42, time.Now()))

	MarkUnplaced(st)
	assert.False(t, st.IsPlaced)
	assert.Nil(t, st.Placement)

	// already unplaced: still a successful no-op
	MarkUnplaced(st)
	assert.False(t, st.IsPlaced)
	assert.Nil(t, st.Placement)
}

// Batch of 3 where #2 is missing its joining date: two successes, one
// failure with a specific reason, and the failure leaves the others alone.
func TestMarkPlacedBulk_PartialFailure(t *testing.T) {
	s1 := &models.Student{ID: 1}
	s2 := &models.Student{ID: 2}
	s3 := &models.Student{ID: 3}

	broken := validDetails()
	broken.JoiningDate = time.Time{}

	details := map[int64]models.PlacementDetails{
		1: validDetails(),
		2: broken,
		3: validDetails(),
	}

	results := MarkPlacedBulk([]*models.Student{s1, s2, s3}, details, 42, time.Now())
	require.Len(t, results, 3)

	assert.True(t, results[0].Placed)
	assert.False(t, results[1].Placed)
	assert.Contains(t, results[1].Reason, "joiningDate")
	assert.True(t, results[2].Placed)

	assert.True(t, s1.IsPlaced)
	assert.False(t, s2.IsPlaced)
	assert.True(t, s3.IsPlaced)
}

func TestMarkPlacedBulk_MissingDetailsEntry(t *testing.T) {
	s1 := &models.Student{ID: 1}
	results := MarkPlacedBulk([]*models.Student{s1}, map[int64]models.PlacementDetails{}, 42, time.Now())

	require.Len(t, results, 1)
	assert.False(t, results[0].Placed)
	assert.Equal(t, "no placement details provided", results[0].Reason)
}

// Full lifecycle: a fresh record is conservatively ineligible, becomes
// eligible once its academics are filled in (with inference deriving the
// duration and pass-out year), gets placed, and unplacing restores the
// original placement state.
func TestStudentLifecycle_EligibleThenPlaced(t *testing.T) {
	st := &models.Student{
		ID:            9,
		ProgramType:   "B.Tech",
		AdmissionYear: intPtr(2021),
	}
	require.False(t, IsEligible(st, defaultThresholds))

	require.True(t, InferAcademics(st))
	require.NotNil(t, st.ProgramDurationYears)
	require.NotNil(t, st.PassOutYear)

	st.AttendancePercentage = floatPtr(88)
	st.Backlogs = intPtr(0)
	st.CGPA = floatPtr(7.4)
	require.True(t, IsEligible(st, defaultThresholds))

	require.NoError(t, MarkPlaced(st, validDetails(), 42, time.Now()))
	assert.True(t, st.IsPlaced)
	assert.NotNil(t, st.Placement)

	MarkUnplaced(st)
	assert.False(t, st.IsPlaced)
	assert.Nil(t, st.Placement)

	// placement never touched the academic record
	assert.True(t, IsEligible(st, defaultThresholds))
}
