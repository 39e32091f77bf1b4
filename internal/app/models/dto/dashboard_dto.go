package dto

// BranchStats is the per-branch placement breakdown
type BranchStats struct {
	Branch   string `json:"branch" example:"CSE"`
	Total    int    `json:"total" example:"120"`
	Placed   int    `json:"placed" example:"64"`
	Eligible int    `json:"eligible" example:"98"`
}

// DashboardResponse is the officer dashboard summary
type DashboardResponse struct {
	TotalStudents     int           `json:"totalStudents" example:"480"`
	PlacedStudents    int           `json:"placedStudents" example:"211"`
	EligibleStudents  int           `json:"eligibleStudents" example:"390"`
	ActiveJobs        int           `json:"activeJobs" example:"7"`
	PendingRequests   int           `json:"pendingRequests" example:"3"`
	TotalApplications int           `json:"totalApplications" example:"1570"`
	BranchBreakdown   []BranchStats `json:"branchBreakdown"`
}
