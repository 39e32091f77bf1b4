package controllers

import (
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sanjith/placementcell/internal/app/models"
	"github.com/sanjith/placementcell/internal/app/models/dto"
	"github.com/sanjith/placementcell/internal/app/rules"
)

func bindBulkRequest(t *testing.T, body string) (*dto.BulkPlacementRequest, error) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest("POST", "/placements/bulk", strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	var req dto.BulkPlacementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return nil, err
	}
	return &req, nil
}

// A batch where one entry is missing a detail field must bind cleanly so the
// bad entry can fail on its own; three entries with #2 lacking its joining
// date come back as two placements and one per-entry failure.
func TestBulkPlace_PartialEntryBindsAndFailsAlone(t *testing.T) {
	body := `{
		"idempotencyKey": "9f0a1c2e-3b4d-4e5f-8a6b-7c8d9e0f1a2b",
		"entries": [
			{"studentId": 1, "details": {"companyName": "Acme Corp", "designation": "Engineer", "ctc": 1200000, "workLocation": "Bengaluru", "joiningDate": "2025-07-01T00:00:00Z"}},
			{"studentId": 2, "details": {"companyName": "Globex", "designation": "Analyst", "ctc": 900000, "workLocation": "Pune"}},
			{"studentId": 3, "details": {"companyName": "Initech", "designation": "Engineer", "ctc": 1100000, "workLocation": "Chennai", "joiningDate": "2025-08-01T00:00:00Z"}}
		]
	}`

	req, err := bindBulkRequest(t, body)
	require.NoError(t, err)
	require.Len(t, req.Entries, 3)
	require.NotNil(t, req.Entries[1].Details)
	assert.True(t, req.Entries[1].Details.JoiningDate.IsZero())

	students := []*models.Student{{ID: 1}, {ID: 2}, {ID: 3}}
	details := make(map[int64]models.PlacementDetails, len(req.Entries))
	for _, entry := range req.Entries {
		if entry.Details == nil {
			continue
		}
		details[entry.StudentID] = models.PlacementDetails{
			CompanyName:  entry.Details.CompanyName,
			Designation:  entry.Details.Designation,
			CTC:          entry.Details.CTC,
			WorkLocation: entry.Details.WorkLocation,
			JoiningDate:  entry.Details.JoiningDate,
		}
	}

	results := rules.MarkPlacedBulk(students, details, 42, time.Now())
	require.Len(t, results, 3)
	assert.True(t, results[0].Placed)
	assert.False(t, results[1].Placed)
	assert.Contains(t, results[1].Reason, "joiningDate")
	assert.True(t, results[2].Placed)
}

// An entry with no details at all still binds; the rule engine reports it.
func TestBulkPlace_EntryWithoutDetailsBinds(t *testing.T) {
	body := `{
		"idempotencyKey": "9f0a1c2e-3b4d-4e5f-8a6b-7c8d9e0f1a2b",
		"entries": [{"studentId": 4}]
	}`

	req, err := bindBulkRequest(t, body)
	require.NoError(t, err)
	require.Len(t, req.Entries, 1)
	assert.Nil(t, req.Entries[0].Details)
}

// The envelope stays strict: no idempotency key means the whole request is
// rejected at the boundary.
func TestBulkPlace_MissingIdempotencyKeyRejected(t *testing.T) {
	body := `{
		"entries": [{"studentId": 1}]
	}`

	_, err := bindBulkRequest(t, body)
	require.Error(t, err)
}
