package rules

import (
	"strconv"
	"strings"
	"unicode"

	"github.com/sanjith/placementcell/internal/app/models"
)

// programDurations maps normalized program-type tokens to program length in
// years. The match is a best-effort heuristic over free text, never
// authoritative.
var programDurations = map[string]int{
	// doctorate
	"phd":       3,
	"doctorate": 3,
	// postgraduate
	"mba":   2,
	"msc":   2,
	"mtech": 2,
	"ma":    2,
	"mca":   2,
	// undergraduate
	"bsc":   3,
	"bcom":  3,
	"ba":    3,
	"btech": 3,
	"be":    3,
	"bca":   3,
	"bba":   3,
	// diploma
	"diploma": 3,
	"poly":    3,
}

// InferDurationYears derives a program duration from free-text program type
// ("B.Tech" -> 3, "MBA" -> 2). The text is lowercased, dots are dropped and
// it is split into tokens; the first recognized token wins. Unrecognized
// text infers nothing.
func InferDurationYears(programType string) (int, bool) {
	normalized := strings.ToLower(strings.ReplaceAll(programType, ".", ""))
	tokens := strings.FieldsFunc(normalized, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	for _, tok := range tokens {
		if years, ok := programDurations[tok]; ok {
			return years, true
		}
	}
	return 0, false
}

// ComputePassOutYear returns admissionYear + durationYears as a string, or
// false when either input is not a sensible year/duration.
func ComputePassOutYear(admissionYear, durationYears int) (string, bool) {
	if admissionYear <= 0 || durationYears <= 0 {
		return "", false
	}
	return strconv.Itoa(admissionYear + durationYears), true
}

// InferAcademics fills ProgramDurationYears and PassOutYear on a student when
// they are unset and inferable. Explicit values are never overwritten; the
// inference runs once and stays silent when it cannot conclude anything.
// Reports whether it set either field.
func InferAcademics(s *models.Student) bool {
	changed := false

	if s.ProgramDurationYears == nil {
		if years, ok := InferDurationYears(s.ProgramType); ok {
			s.ProgramDurationYears = &years
			changed = true
		}
	}

	if s.PassOutYear == nil && s.ProgramDurationYears != nil && s.AdmissionYear != nil {
		if year, ok := ComputePassOutYear(*s.AdmissionYear, *s.ProgramDurationYears); ok {
			s.PassOutYear = &year
			changed = true
		}
	}

	return changed
}
