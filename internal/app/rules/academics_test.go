package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sanjith/placementcell/internal/app/models"
)

func TestInferDurationYears(t *testing.T) {
	tests := []struct {
		programType string
		wantYears   int
		wantOK      bool
	}{
		{"B.Tech", 3, true},
		{"BTech", 3, true},
		{"MBA", 2, true},
		{"PhD", 3, true},
		{"Doctorate", 3, true},
		{"M.Sc", 2, true},
		{"MCA", 2, true},
		{"B.Sc", 3, true},
		{"B.Com", 3, true},
		{"BBA", 3, true},
		{"BE", 3, true},
		{"Diploma", 3, true},
		{"Poly technic", 3, true},
		{"mba (finance)", 2, true},
		{"", 0, false},
		{"Bachelor of Fine Arts", 0, false},
		{"unknown program", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.programType, func(t *testing.T) {
			years, ok := InferDurationYears(tt.programType)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantYears, years)
		})
	}
}

func TestComputePassOutYear(t *testing.T) {
	year, ok := ComputePassOutYear(2021, 3)
	require.True(t, ok)
	assert.Equal(t, "2024", year)

	_, ok = ComputePassOutYear(0, 3)
	assert.False(t, ok)

	_, ok = ComputePassOutYear(2021, 0)
	assert.False(t, ok)
}

func TestInferAcademics_FillsUnsetFields(t *testing.T) {
	admission := 2021
	st := &models.Student{ProgramType: "B.Tech", AdmissionYear: &admission}

	changed := InferAcademics(st)
	require.True(t, changed)
	require.NotNil(t, st.ProgramDurationYears)
	assert.Equal(t, 3, *st.ProgramDurationYears)
	require.NotNil(t, st.PassOutYear)
	assert.Equal(t, "2024", *st.PassOutYear)
}

// Explicit values are never overwritten, even when inference disagrees.
func TestInferAcademics_NeverOverwrites(t *testing.T) {
	admission := 2021
	duration := 4
	passOut := "2026"
	st := &models.Student{
		ProgramType:          "B.Tech",
		AdmissionYear:        &admission,
		ProgramDurationYears: &duration,
		PassOutYear:          &passOut,
	}

	changed := InferAcademics(st)
	assert.False(t, changed)
	assert.Equal(t, 4, *st.ProgramDurationYears)
	assert.Equal(t, "2026", *st.PassOutYear)
}

func TestInferAcademics_Idempotent(t *testing.T) {
	admission := 2022
	st := &models.Student{ProgramType: "MBA", AdmissionYear: &admission}

	require.True(t, InferAcademics(st))
	first := *st.PassOutYear

	require.False(t, InferAcademics(st))
	assert.Equal(t, first, *st.PassOutYear)
	assert.Equal(t, "2024", first)
}

func TestInferAcademics_UnrecognizedLeavesUnset(t *testing.T) {
	st := &models.Student{ProgramType: "Culinary Arts"}

	changed := InferAcademics(st)
	assert.False(t, changed)
	assert.Nil(t, st.ProgramDurationYears)
	assert.Nil(t, st.PassOutYear)
}
