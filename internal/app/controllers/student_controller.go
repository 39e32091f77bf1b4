package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/sanjith/placementcell/internal/app/models/dto"
	"github.com/sanjith/placementcell/internal/app/services"
	"github.com/sanjith/placementcell/internal/middleware"
	"github.com/sanjith/placementcell/internal/pkg/helpers"
)

// StudentController handles student profile and listing operations
type StudentController struct {
	studentService *services.StudentService
	logger         zerolog.Logger
}

// NewStudentController creates a new StudentController
func NewStudentController(studentService *services.StudentService, logger zerolog.Logger) *StudentController {
	return &StudentController{
		studentService: studentService,
		logger:         logger,
	}
}

// GetMe returns the calling student's own profile
// @Summary Get my student profile
// @Tags students
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.StudentResponse}
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Router /students/me [get]
func (c *StudentController) GetMe(ctx *gin.Context) {
	resp, err := c.studentService.GetProfile(ctx.Request.Context(), middleware.CurrentUserID(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(resp))
}

// UpdatePersonalDetails writes the personal onboarding step
// @Summary Update my personal details
// @Tags students
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.UpdatePersonalDetailsRequest true "Personal details"
// @Success 200 {object} dto.APIResponse{data=dto.StudentResponse}
// @Router /students/me/personal [put]
func (c *StudentController) UpdatePersonalDetails(ctx *gin.Context) {
	var req dto.UpdatePersonalDetailsRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	resp, err := c.studentService.UpdatePersonalDetails(ctx.Request.Context(), middleware.CurrentUserID(ctx), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(resp))
}

// UpdateAcademicDetails writes the academic onboarding step
// @Summary Update my academic details
// @Description Stores academic details and derives program duration and pass-out year when they can be inferred. Derived values are never overwritten on later updates.
// @Tags students
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.UpdateAcademicDetailsRequest true "Academic details"
// @Success 200 {object} dto.APIResponse{data=dto.StudentResponse}
// @Router /students/me/academic [put]
func (c *StudentController) UpdateAcademicDetails(ctx *gin.Context) {
	var req dto.UpdateAcademicDetailsRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	resp, err := c.studentService.UpdateAcademicDetails(ctx.Request.Context(), middleware.CurrentUserID(ctx), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(resp))
}

// List returns a filtered page of students
// @Summary List students
// @Tags students
// @Produce json
// @Security BearerAuth
// @Param branch query string false "Filter by branch"
// @Param section query string false "Filter by section"
// @Param year query int false "Filter by year"
// @Param isPlaced query bool false "Filter by placement status"
// @Param q query string false "Search name, email or roll number"
// @Param page query int false "Page number (1-based)"
// @Param size query int false "Page size"
// @Success 200 {object} dto.APIResponse{data=dto.StudentListResponse}
// @Router /students [get]
func (c *StudentController) List(ctx *gin.Context) {
	var filter dto.StudentFilterRequest
	if err := ctx.ShouldBindQuery(&filter); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}
	page, size := helpers.ParsePaginationParams(ctx)

	students, total, err := c.studentService.List(ctx.Request.Context(), filter, page, size)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.StudentListResponse{
		Students:   students,
		Pagination: helpers.NewPaginationInfo(total, page, size),
	}))
}

// GetByID returns one student
// @Summary Get a student by ID
// @Tags students
// @Produce json
// @Security BearerAuth
// @Param id path int true "Student ID"
// @Success 200 {object} dto.APIResponse{data=dto.StudentResponse}
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Router /students/{id} [get]
func (c *StudentController) GetByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	resp, err := c.studentService.GetByID(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(resp))
}

// EligibilityReport returns a student's per-criterion eligibility breakdown
// @Summary Get a student's eligibility report
// @Description Evaluates the student against the current thresholds. Missing academic fields count against the student, so incomplete records are ineligible.
// @Tags students
// @Produce json
// @Security BearerAuth
// @Param id path int true "Student ID"
// @Success 200 {object} dto.APIResponse{data=dto.EligibilityReportResponse}
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Router /students/{id}/eligibility [get]
func (c *StudentController) EligibilityReport(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	resp, err := c.studentService.EligibilityReport(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(resp))
}

// parseIDParam reads a numeric path parameter, responding 400 on garbage
func parseIDParam(ctx *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(ctx.Param(name), 10, 64)
	if err != nil || id <= 0 {
		detail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid "+name+" parameter").WithField(name)
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(detail))
		return 0, false
	}
	return id, true
}
