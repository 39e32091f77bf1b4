package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/sanjith/placementcell/internal/app/models/dto"
	"github.com/sanjith/placementcell/internal/app/services"
	"github.com/sanjith/placementcell/internal/middleware"
)

// PlacementController handles placement status operations
type PlacementController struct {
	placementService *services.PlacementService
	logger           zerolog.Logger
}

// NewPlacementController creates a new PlacementController
func NewPlacementController(placementService *services.PlacementService, logger zerolog.Logger) *PlacementController {
	return &PlacementController{
		placementService: placementService,
		logger:           logger,
	}
}

// MarkPlaced records a placement for one student
// @Summary Mark a student as placed
// @Description Records the placement details and flips the student's placement flag. All five detail fields are required; marking an already placed student overwrites the record. Eligibility is not checked.
// @Tags placements
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Student ID"
// @Param request body dto.PlacementDetailsRequest true "Placement details"
// @Success 200 {object} dto.APIResponse{data=dto.StudentResponse}
// @Failure 400 {object} dto.ErrorResponse "Placement details incomplete"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Router /students/{id}/placement [put]
func (c *PlacementController) MarkPlaced(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.PlacementDetailsRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	resp, err := c.placementService.MarkPlaced(ctx.Request.Context(), id, &req, middleware.CurrentUserID(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(resp))
}

// MarkUnplaced clears a student's placement
// @Summary Mark a student as not placed
// @Description Removes the placement record. Unplacing an already unplaced student succeeds without change.
// @Tags placements
// @Produce json
// @Security BearerAuth
// @Param id path int true "Student ID"
// @Success 200 {object} dto.APIResponse{data=dto.StudentResponse}
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Router /students/{id}/placement [delete]
func (c *PlacementController) MarkUnplaced(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	resp, err := c.placementService.MarkUnplaced(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(resp))
}

// BulkPlace marks many students placed in one call
// @Summary Bulk placement
// @Description Applies placements per student; one failing entry never blocks the others. The idempotency key makes retries safe: a replayed key reports the batch as already processed.
// @Tags placements
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.BulkPlacementRequest true "Entries and idempotency key"
// @Success 200 {object} dto.APIResponse{data=dto.BulkPlacementResponse}
// @Router /placements/bulk [post]
func (c *PlacementController) BulkPlace(ctx *gin.Context) {
	var req dto.BulkPlacementRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	resp, err := c.placementService.BulkPlace(ctx.Request.Context(), &req, middleware.CurrentUserID(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(resp))
}
