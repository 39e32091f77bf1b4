package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/sanjith/placementcell/internal/app/models/dto"
	"github.com/sanjith/placementcell/internal/app/services"
	"github.com/sanjith/placementcell/internal/middleware"
)

// SettingsController handles the configuration singletons
type SettingsController struct {
	settingsService *services.SettingsService
	logger          zerolog.Logger
}

// NewSettingsController creates a new SettingsController
func NewSettingsController(settingsService *services.SettingsService, logger zerolog.Logger) *SettingsController {
	return &SettingsController{
		settingsService: settingsService,
		logger:          logger,
	}
}

// GetEligibilitySettings returns the current thresholds
// @Summary Get eligibility thresholds
// @Tags settings
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.EligibilitySettingsResponse}
// @Router /settings/eligibility [get]
func (c *SettingsController) GetEligibilitySettings(ctx *gin.Context) {
	resp, err := c.settingsService.GetEligibilitySettings(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(resp))
}

// UpdateEligibilitySettings writes new thresholds
// @Summary Update eligibility thresholds
// @Description Changes take effect on the next evaluation; nothing stored is recomputed.
// @Tags settings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.UpdateEligibilitySettingsRequest true "Thresholds to change"
// @Success 200 {object} dto.APIResponse{data=dto.EligibilitySettingsResponse}
// @Router /settings/eligibility [put]
func (c *SettingsController) UpdateEligibilitySettings(ctx *gin.Context) {
	var req dto.UpdateEligibilitySettingsRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	resp, err := c.settingsService.UpdateEligibilitySettings(ctx.Request.Context(), &req, middleware.CurrentUserID(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(resp))
}

// GetCollege returns the college profile
// @Summary Get college profile
// @Tags settings
// @Produce json
// @Success 200 {object} dto.APIResponse{data=dto.CollegeResponse}
// @Router /settings/college [get]
func (c *SettingsController) GetCollege(ctx *gin.Context) {
	resp, err := c.settingsService.GetCollege(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(resp))
}

// UpdateCollege writes the college profile
// @Summary Update college profile
// @Tags settings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.UpdateCollegeRequest true "Profile fields to change"
// @Success 200 {object} dto.APIResponse{data=dto.CollegeResponse}
// @Router /settings/college [put]
func (c *SettingsController) UpdateCollege(ctx *gin.Context) {
	var req dto.UpdateCollegeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	resp, err := c.settingsService.UpdateCollege(ctx.Request.Context(), &req, middleware.CurrentUserID(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(resp))
}
