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

// CompanyController handles the company intake flow
type CompanyController struct {
	companyService *services.CompanyService
	logger         zerolog.Logger
}

// NewCompanyController creates a new CompanyController
func NewCompanyController(companyService *services.CompanyService, logger zerolog.Logger) *CompanyController {
	return &CompanyController{
		companyService: companyService,
		logger:         logger,
	}
}

// CreateFormLink mints a shareable intake link
// @Summary Create a company form link
// @Tags companies
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateFormLinkRequest true "Link label"
// @Success 201 {object} dto.APIResponse{data=dto.FormLinkResponse}
// @Router /companies/form-links [post]
func (c *CompanyController) CreateFormLink(ctx *gin.Context) {
	var req dto.CreateFormLinkRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	resp, err := c.companyService.CreateFormLink(ctx.Request.Context(), &req, middleware.CurrentUserID(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(resp))
}

// ListFormLinks returns every intake link
// @Summary List company form links
// @Tags companies
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]dto.FormLinkResponse}
// @Router /companies/form-links [get]
func (c *CompanyController) ListFormLinks(ctx *gin.Context) {
	resp, err := c.companyService.ListFormLinks(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(resp))
}

// DisableFormLink disables an intake link
// @Summary Disable a company form link
// @Tags companies
// @Produce json
// @Security BearerAuth
// @Param id path int true "Form link ID"
// @Success 200 {object} dto.APIResponse
// @Router /companies/form-links/{id} [delete]
func (c *CompanyController) DisableFormLink(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.companyService.SetFormLinkActive(ctx.Request.Context(), id, false); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewMessageResponse("Form link disabled"))
}

// GetPublicForm resolves a public intake token. No authentication.
// @Summary Resolve a public company form
// @Tags public
// @Produce json
// @Param token path string true "Form link token"
// @Success 200 {object} dto.APIResponse{data=dto.FormLinkResponse}
// @Failure 404 {object} dto.ErrorResponse "Unknown token"
// @Router /public/company-form/{token} [get]
func (c *CompanyController) GetPublicForm(ctx *gin.Context) {
	resp, err := c.companyService.GetPublicForm(ctx.Request.Context(), ctx.Param("token"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(resp))
}

// SubmitRequest records a public company submission. No authentication.
// @Summary Submit a company hiring request
// @Description Accepts a company's hiring request through a shareable link. Unrecognized form fields are preserved in extras.
// @Tags public
// @Accept json
// @Produce json
// @Param token path string true "Form link token"
// @Param request body dto.SubmitCompanyRequestRequest true "Company details"
// @Success 201 {object} dto.APIResponse{data=dto.CompanyRequestResponse}
// @Failure 400 {object} dto.ErrorResponse "Link disabled"
// @Failure 404 {object} dto.ErrorResponse "Unknown token"
// @Router /public/company-form/{token} [post]
func (c *CompanyController) SubmitRequest(ctx *gin.Context) {
	var req dto.SubmitCompanyRequestRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	resp, err := c.companyService.SubmitRequest(ctx.Request.Context(), ctx.Param("token"), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(resp))
}

// ListRequests returns a page of intake submissions
// @Summary List company hiring requests
// @Tags companies
// @Produce json
// @Security BearerAuth
// @Param status query string false "Filter by status" Enums(PENDING, APPROVED, REJECTED)
// @Param page query int false "Page number (1-based)"
// @Param size query int false "Page size"
// @Success 200 {object} dto.APIResponse{data=dto.CompanyRequestListResponse}
// @Router /companies/requests [get]
func (c *CompanyController) ListRequests(ctx *gin.Context) {
	var status *models.CompanyRequestStatus
	if raw := ctx.Query("status"); raw != "" {
		s := models.CompanyRequestStatus(raw)
		status = &s
	}
	page, size := helpers.ParsePaginationParams(ctx)

	requests, total, err := c.companyService.ListRequests(ctx.Request.Context(), status, page, size)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.CompanyRequestListResponse{
		Requests:   requests,
		Pagination: helpers.NewPaginationInfo(total, page, size),
	}))
}

// Review approves or rejects a submission
// @Summary Review a company hiring request
// @Description Approves or rejects a pending submission. A request can only be reviewed once.
// @Tags companies
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Request ID"
// @Param request body dto.ReviewCompanyRequestRequest true "Review decision"
// @Success 200 {object} dto.APIResponse{data=dto.CompanyRequestResponse}
// @Failure 409 {object} dto.ErrorResponse "Already reviewed"
// @Router /companies/requests/{id}/review [post]
func (c *CompanyController) Review(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.ReviewCompanyRequestRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	resp, err := c.companyService.Review(ctx.Request.Context(), id, models.CompanyRequestStatus(req.Status), middleware.CurrentUserID(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(resp))
}
