package dto

import (
	"time"
)

// PlacementDetailsRequest records a single placement.
// All fields are required for the student to be marked placed.
type PlacementDetailsRequest struct {
	CompanyName  string    `json:"companyName" binding:"required" example:"Acme Corp"`
	Designation  string    `json:"designation" binding:"required" example:"Software Engineer"`
	CTC          float64   `json:"ctc" binding:"required,gt=0" example:"1200000"`
	WorkLocation string    `json:"workLocation" binding:"required" example:"Bengaluru"`
	JoiningDate  time.Time `json:"joiningDate" binding:"required" example:"2025-07-01T00:00:00Z"`
}

// PlacementResponse is the stored placement record
type PlacementResponse struct {
	CompanyName  string    `json:"companyName" example:"Acme Corp"`
	Designation  string    `json:"designation" example:"Software Engineer"`
	CTC          float64   `json:"ctc" example:"1200000"`
	WorkLocation string    `json:"workLocation" example:"Bengaluru"`
	JoiningDate  time.Time `json:"joiningDate" example:"2025-07-01T00:00:00Z"`
	PlacedBy     int64     `json:"placedBy" example:"2"`
	PlacedAt     time.Time `json:"placedAt"`
}

// BulkPlacementDetails carries one student's placement details inside a bulk
// request. Unlike PlacementDetailsRequest, nothing here is validated at the
// boundary: a missing or incomplete field surfaces as that entry's failure in
// the results instead of rejecting the whole batch.
type BulkPlacementDetails struct {
	CompanyName  string    `json:"companyName" example:"Acme Corp"`
	Designation  string    `json:"designation" example:"Software Engineer"`
	CTC          float64   `json:"ctc" example:"1200000"`
	WorkLocation string    `json:"workLocation" example:"Bengaluru"`
	JoiningDate  time.Time `json:"joiningDate" example:"2025-07-01T00:00:00Z"`
}

// BulkPlacementEntry is one student's details inside a bulk request
type BulkPlacementEntry struct {
	StudentID int64                 `json:"studentId" binding:"required" example:"7"`
	Details   *BulkPlacementDetails `json:"details"`
}

// BulkPlacementRequest marks many students placed in one call. Retrying with
// the same idempotency key reports the batch as already processed without
// reapplying anything.
type BulkPlacementRequest struct {
	IdempotencyKey string               `json:"idempotencyKey" binding:"required,uuid" example:"9f0a1c2e-3b4d-4e5f-8a6b-7c8d9e0f1a2b"`
	Entries        []BulkPlacementEntry `json:"entries" binding:"required,min=1,dive"`
}

// BulkPlacementItemResult is the per-student outcome of a bulk placement
type BulkPlacementItemResult struct {
	StudentID int64  `json:"studentId" example:"7"`
	Placed    bool   `json:"placed" example:"true"`
	Reason    string `json:"reason,omitempty" example:"missing required placement fields"`
}

// BulkPlacementResponse reports the outcome of a bulk placement
type BulkPlacementResponse struct {
	AlreadyProcessed bool                      `json:"alreadyProcessed" example:"false"`
	Results          []BulkPlacementItemResult `json:"results"`
	PlacedCount      int                       `json:"placedCount" example:"3"`
	FailedCount      int                       `json:"failedCount" example:"1"`
}
