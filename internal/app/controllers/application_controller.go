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

// ApplicationController handles job application operations
type ApplicationController struct {
	applicationService *services.ApplicationService
	logger             zerolog.Logger
}

// NewApplicationController creates a new ApplicationController
func NewApplicationController(applicationService *services.ApplicationService, logger zerolog.Logger) *ApplicationController {
	return &ApplicationController{
		applicationService: applicationService,
		logger:             logger,
	}
}

// Apply submits an application to a job
// @Summary Apply to a job
// @Description Submits an application for the calling student. Applying twice to the same job conflicts, and closed or lapsed postings are rejected.
// @Tags applications
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Job ID"
// @Param request body dto.ApplyToJobRequest true "Application payload"
// @Success 201 {object} dto.APIResponse{data=dto.ApplicationResponse}
// @Failure 400 {object} dto.ErrorResponse "Job is not accepting applications"
// @Failure 409 {object} dto.ErrorResponse "Already applied"
// @Router /jobs/{id}/applications [post]
func (c *ApplicationController) Apply(ctx *gin.Context) {
	jobID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.ApplyToJobRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	resp, err := c.applicationService.Apply(ctx.Request.Context(), middleware.CurrentUserID(ctx), jobID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(resp))
}

// ListByJob returns a page of applications for a job
// @Summary List applications for a job
// @Tags applications
// @Produce json
// @Security BearerAuth
// @Param id path int true "Job ID"
// @Param page query int false "Page number (1-based)"
// @Param size query int false "Page size"
// @Success 200 {object} dto.APIResponse{data=dto.ApplicationListResponse}
// @Router /jobs/{id}/applications [get]
func (c *ApplicationController) ListByJob(ctx *gin.Context) {
	jobID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}
	page, size := helpers.ParsePaginationParams(ctx)

	apps, total, err := c.applicationService.ListByJob(ctx.Request.Context(), jobID, page, size)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.ApplicationListResponse{
		Applications: apps,
		Pagination:   helpers.NewPaginationInfo(total, page, size),
	}))
}

// ListMine returns the calling student's applications
// @Summary List my applications
// @Tags applications
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]dto.ApplicationResponse}
// @Router /applications/me [get]
func (c *ApplicationController) ListMine(ctx *gin.Context) {
	resp, err := c.applicationService.ListMine(ctx.Request.Context(), middleware.CurrentUserID(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(resp))
}

// UpdateStatus advances an application through review
// @Summary Update an application's status
// @Description Moves an application along the review pipeline. Transitions outside the pipeline are rejected with the allowed next states.
// @Tags applications
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Application ID"
// @Param request body dto.UpdateApplicationStatusRequest true "Target status"
// @Success 200 {object} dto.APIResponse{data=dto.ApplicationResponse}
// @Failure 400 {object} dto.ErrorResponse "Transition not allowed"
// @Router /applications/{id}/status [patch]
func (c *ApplicationController) UpdateStatus(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateApplicationStatusRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	resp, err := c.applicationService.UpdateStatus(ctx.Request.Context(), id, models.ApplicationStatus(req.Status))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(resp))
}

// Withdraw removes the calling student's application
// @Summary Withdraw my application
// @Tags applications
// @Produce json
// @Security BearerAuth
// @Param id path int true "Application ID"
// @Success 200 {object} dto.APIResponse
// @Router /applications/{id} [delete]
func (c *ApplicationController) Withdraw(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.applicationService.Withdraw(ctx.Request.Context(), middleware.CurrentUserID(ctx), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewMessageResponse("Application withdrawn"))
}
