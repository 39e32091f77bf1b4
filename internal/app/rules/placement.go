package rules

import (
	"fmt"
	"time"

	"github.com/sanjith/placementcell/internal/app/models"
	"github.com/sanjith/placementcell/internal/pkg/apperrors"
)

// MissingPlacementFields returns the names of required placement fields that
// are empty. All five must be present before a placement can be recorded.
func MissingPlacementFields(d models.PlacementDetails) []string {
	var missing []string
	if d.CompanyName == "" {
		missing = append(missing, "companyName")
	}
	if d.Designation == "" {
		missing = append(missing, "designation")
	}
	if d.CTC <= 0 {
		missing = append(missing, "ctc")
	}
	if d.WorkLocation == "" {
		missing = append(missing, "workLocation")
	}
	if d.JoiningDate.IsZero() {
		missing = append(missing, "joiningDate")
	}
	return missing
}

// MarkPlaced attaches a placement record to the student and flips IsPlaced.
// A second call with new details overwrites the previous record. Placement is
// deliberately independent of eligibility; officers may force it.
func MarkPlaced(s *models.Student, d models.PlacementDetails, placedBy int64, now time.Time) error {
	if missing := MissingPlacementFields(d); len(missing) > 0 {
		return &apperrors.CustomError{
			Err:     apperrors.ErrPlacementDetailsIncomplete,
			Message: fmt.Sprintf("missing required placement fields: %v", missing),
			Details: map[string]interface{}{"missingFields": missing},
		}
	}

	d.StudentID = s.ID
	d.PlacedBy = placedBy
	d.PlacedAt = now
	s.Placement = &d
	s.IsPlaced = true
	return nil
}

// MarkUnplaced clears the placement record. Calling it on an already
// unplaced student is a successful no-op.
func MarkUnplaced(s *models.Student) {
	s.Placement = nil
	s.IsPlaced = false
}

// PlacementResult reports the outcome of one student within a bulk placement
type PlacementResult struct {
	StudentID int64  `json:"studentId"`
	Placed    bool   `json:"placed"`
	Reason    string `json:"reason,omitempty"`
}

// MarkPlacedBulk applies MarkPlaced to each student independently. One
// student's failure never rolls back or blocks the others; every item gets
// its own result entry in input order.
func MarkPlacedBulk(students []*models.Student, details map[int64]models.PlacementDetails, placedBy int64, now time.Time) []PlacementResult {
	results := make([]PlacementResult, 0, len(students))
	for _, s := range students {
		d, ok := details[s.ID]
		if !ok {
			results = append(results, PlacementResult{
				StudentID: s.ID,
				Reason:    "no placement details provided",
			})
			continue
		}
		if err := MarkPlaced(s, d, placedBy, now); err != nil {
			results = append(results, PlacementResult{
				StudentID: s.ID,
				Reason:    err.Error(),
			})
			continue
		}
		results = append(results, PlacementResult{StudentID: s.ID, Placed: true})
	}
	return results
}
