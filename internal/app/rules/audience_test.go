package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sanjith/placementcell/internal/app/models"
)

func activeStudent(id int64, year int, branch, section, specialization string) *models.Student {
	return &models.Student{
		ID:             id,
		Year:           year,
		Branch:         branch,
		Section:        section,
		Specialization: specialization,
		User:           &models.User{IsActive: true},
	}
}

func TestTarget_Matches(t *testing.T) {
	st := activeStudent(1, 3, "CSE", "A", "AI")

	tests := []struct {
		name   string
		target Target
		want   bool
	}{
		{"all matches any active student", Target{All: true}, true},
		{"empty target matches nobody", Target{}, false},
		{"matching year", Target{Years: []int{3}}, true},
		{"matching branch", Target{Branches: []string{"CSE"}}, true},
		{"matching section", Target{Sections: []string{"A"}}, true},
		{"matching specialization", Target{Specializations: []string{"AI"}}, true},
		{"union across categories, year wrong but branch right", Target{Years: []int{4}, Branches: []string{"CSE"}}, true},
		{"nothing matches", Target{Years: []int{4}, Branches: []string{"ECE"}, Sections: []string{"B"}}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.target.Matches(st))
		})
	}
}

func TestTarget_InactiveStudentsNeverMatch(t *testing.T) {
	inactive := activeStudent(2, 3, "CSE", "A", "AI")
	inactive.User.IsActive = false

	assert.False(t, Target{All: true}.Matches(inactive))
	assert.False(t, Target{Branches: []string{"CSE"}}.Matches(inactive))

	// a student loaded without their account relation is treated as inactive
	orphan := &models.Student{ID: 3, Branch: "CSE"}
	assert.False(t, Target{All: true}.Matches(orphan))
}

func TestResolveAudience(t *testing.T) {
	population := []*models.Student{
		activeStudent(1, 3, "CSE", "A", ""),
		activeStudent(2, 4, "ECE", "B", ""),
		activeStudent(3, 3, "MECH", "A", ""),
	}

	audience := ResolveAudience(Target{Years: []int{3}}, population)
	require.Len(t, audience, 2)
	assert.Equal(t, int64(1), audience[0].ID)
	assert.Equal(t, int64(3), audience[1].ID)

	all := ResolveAudience(Target{All: true}, population)
	assert.Len(t, all, 3)

	none := ResolveAudience(Target{}, population)
	assert.Empty(t, none)
}

func TestTarget_IsEmpty(t *testing.T) {
	assert.True(t, Target{}.IsEmpty())
	assert.False(t, Target{All: true}.IsEmpty())
	assert.False(t, Target{Sections: []string{"A"}}.IsEmpty())
}
