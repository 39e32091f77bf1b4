package rules

import (
	"github.com/sanjith/placementcell/internal/app/models"
)

// Target describes who a notification reaches. An empty target (All false,
// no filter values) matches nobody.
type Target struct {
	All             bool     `json:"all"`
	Years           []int    `json:"years,omitempty"`
	Branches        []string `json:"branches,omitempty"`
	Sections        []string `json:"sections,omitempty"`
	Specializations []string `json:"specializations,omitempty"`
}

// IsEmpty reports whether the target carries no filters at all
func (t Target) IsEmpty() bool {
	return !t.All &&
		len(t.Years) == 0 &&
		len(t.Branches) == 0 &&
		len(t.Sections) == 0 &&
		len(t.Specializations) == 0
}

// Matches reports whether an active student falls inside the target.
// Categories combine with OR: a student in a listed year is matched even if
// their branch is not listed. Inactive students never match.
func (t Target) Matches(s *models.Student) bool {
	if !s.IsActive() {
		return false
	}
	if t.All {
		return true
	}
	for _, y := range t.Years {
		if s.Year == y {
			return true
		}
	}
	for _, b := range t.Branches {
		if s.Branch == b {
			return true
		}
	}
	for _, sec := range t.Sections {
		if s.Section == sec {
			return true
		}
	}
	for _, sp := range t.Specializations {
		if s.Specialization == sp {
			return true
		}
	}
	return false
}

// ResolveAudience filters a student population down to the target audience,
// preserving input order.
func ResolveAudience(t Target, population []*models.Student) []*models.Student {
	var audience []*models.Student
	for _, s := range population {
		if t.Matches(s) {
			audience = append(audience, s)
		}
	}
	return audience
}
