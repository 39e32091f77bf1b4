package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/sanjith/placementcell/internal/app/models"
	"github.com/sanjith/placementcell/internal/app/models/dto"
	"github.com/sanjith/placementcell/internal/app/services"
	"github.com/sanjith/placementcell/internal/middleware"
	"github.com/sanjith/placementcell/internal/pkg/helpers"
)

// JobController handles on and off campus job listing operations
type JobController struct {
	jobService *services.JobService
	logger     zerolog.Logger
}

// NewJobController creates a new JobController
func NewJobController(jobService *services.JobService, logger zerolog.Logger) *JobController {
	return &JobController{
		jobService: jobService,
		logger:     logger,
	}
}

// Create creates a job posting
// @Summary Create a job posting
// @Tags jobs
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateJobRequest true "Job details"
// @Success 201 {object} dto.APIResponse{data=dto.JobResponse}
// @Router /jobs [post]
func (c *JobController) Create(ctx *gin.Context) {
	var req dto.CreateJobRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	resp, err := c.jobService.Create(ctx.Request.Context(), &req, middleware.CurrentUserID(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(resp))
}

// List returns a page of jobs
// @Summary List job postings
// @Description Lists jobs, newest first. Deadline expiry is applied lazily: any ACTIVE job whose deadline has passed is returned (and stored) as EXPIRED.
// @Tags jobs
// @Produce json
// @Security BearerAuth
// @Param status query string false "Filter by status" Enums(ACTIVE, EXPIRED, INACTIVE, FILLED)
// @Param page query int false "Page number (1-based)"
// @Param size query int false "Page size"
// @Success 200 {object} dto.APIResponse{data=dto.JobListResponse}
// @Router /jobs [get]
func (c *JobController) List(ctx *gin.Context) {
	var status *models.JobStatus
	if raw := ctx.Query("status"); raw != "" {
		s := models.JobStatus(raw)
		status = &s
	}
	page, size := helpers.ParsePaginationParams(ctx)

	jobs, total, err := c.jobService.List(ctx.Request.Context(), status, page, size)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.JobListResponse{
		Jobs:       jobs,
		Pagination: helpers.NewPaginationInfo(total, page, size),
	}))
}

// Get returns one job
// @Summary Get a job posting
// @Tags jobs
// @Produce json
// @Security BearerAuth
// @Param id path int true "Job ID"
// @Success 200 {object} dto.APIResponse{data=dto.JobResponse}
// @Failure 404 {object} dto.ErrorResponse "Job not found"
// @Router /jobs/{id} [get]
func (c *JobController) Get(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	resp, err := c.jobService.Get(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(resp))
}

// Update edits a job posting
// @Summary Update a job posting
// @Description Updates the provided fields. Moving the deadline into the future reactivates an EXPIRED job.
// @Tags jobs
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Job ID"
// @Param request body dto.UpdateJobRequest true "Fields to update"
// @Success 200 {object} dto.APIResponse{data=dto.JobResponse}
// @Router /jobs/{id} [put]
func (c *JobController) Update(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateJobRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	resp, err := c.jobService.Update(ctx.Request.Context(), id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(resp))
}

// SetStatus applies a manual status change
// @Summary Set a job's status manually
// @Description Sets ACTIVE, INACTIVE or FILLED. Manual states stick; the deadline rule never overrides them.
// @Tags jobs
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Job ID"
// @Param request body dto.UpdateJobStatusRequest true "Target status"
// @Success 200 {object} dto.APIResponse{data=dto.JobResponse}
// @Router /jobs/{id}/status [patch]
func (c *JobController) SetStatus(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateJobStatusRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	resp, err := c.jobService.SetStatus(ctx.Request.Context(), id, models.JobStatus(req.Status))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(resp))
}

// Delete removes a job posting
// @Summary Delete a job posting
// @Tags jobs
// @Produce json
// @Security BearerAuth
// @Param id path int true "Job ID"
// @Success 200 {object} dto.APIResponse
// @Router /jobs/{id} [delete]
func (c *JobController) Delete(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.jobService.Delete(ctx.Request.Context(), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewMessageResponse("Job deleted"))
}

// CreateExternal creates an off-campus posting
// @Summary Share an off-campus job
// @Tags external-jobs
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateExternalJobRequest true "External job details"
// @Success 201 {object} dto.APIResponse{data=dto.ExternalJobResponse}
// @Router /external-jobs [post]
func (c *JobController) CreateExternal(ctx *gin.Context) {
	var req dto.CreateExternalJobRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	resp, err := c.jobService.CreateExternal(ctx.Request.Context(), &req, middleware.CurrentUserID(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(resp))
}

// ListExternal returns every off-campus posting
// @Summary List off-campus jobs
// @Tags external-jobs
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]dto.ExternalJobResponse}
// @Router /external-jobs [get]
func (c *JobController) ListExternal(ctx *gin.Context) {
	resp, err := c.jobService.ListExternal(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(resp))
}

// DeleteExternal removes an off-campus posting
// @Summary Delete an off-campus job
// @Tags external-jobs
// @Produce json
// @Security BearerAuth
// @Param id path int true "External job ID"
// @Success 200 {object} dto.APIResponse
// @Router /external-jobs/{id} [delete]
func (c *JobController) DeleteExternal(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.jobService.DeleteExternal(ctx.Request.Context(), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewMessageResponse("External job deleted"))
}
