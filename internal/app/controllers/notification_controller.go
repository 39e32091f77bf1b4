package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/sanjith/placementcell/internal/app/models/dto"
	"github.com/sanjith/placementcell/internal/app/services"
	"github.com/sanjith/placementcell/internal/middleware"
	"github.com/sanjith/placementcell/internal/pkg/helpers"
)

// NotificationController handles notification operations
type NotificationController struct {
	notificationService *services.NotificationService
	logger              zerolog.Logger
}

// NewNotificationController creates a new NotificationController
func NewNotificationController(notificationService *services.NotificationService, logger zerolog.Logger) *NotificationController {
	return &NotificationController{
		notificationService: notificationService,
		logger:              logger,
	}
}

// Create fans a notification out to its audience
// @Summary Send a targeted notification
// @Description Resolves the audience (categories combine with OR; targetAll reaches every active student) and creates one delivery per recipient. Targets matching nobody are rejected. An optional batch key makes retries safe.
// @Tags notifications
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateNotificationRequest true "Notification and target"
// @Success 201 {object} dto.APIResponse{data=dto.NotificationResponse}
// @Failure 400 {object} dto.ErrorResponse "Target matches no students"
// @Failure 409 {object} dto.ErrorResponse "Batch key already used"
// @Router /notifications [post]
func (c *NotificationController) Create(ctx *gin.Context) {
	var req dto.CreateNotificationRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	resp, err := c.notificationService.Create(ctx.Request.Context(), &req, middleware.CurrentUserID(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(resp))
}

// List returns a page of sent notifications
// @Summary List sent notifications
// @Tags notifications
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number (1-based)"
// @Param size query int false "Page size"
// @Success 200 {object} dto.APIResponse{data=dto.NotificationListResponse}
// @Router /notifications [get]
func (c *NotificationController) List(ctx *gin.Context) {
	page, size := helpers.ParsePaginationParams(ctx)

	notifications, total, err := c.notificationService.List(ctx.Request.Context(), page, size)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.NotificationListResponse{
		Notifications: notifications,
		Pagination:    helpers.NewPaginationInfo(total, page, size),
	}))
}

// Inbox returns the calling student's deliveries
// @Summary Get my notification inbox
// @Tags notifications
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number (1-based)"
// @Param size query int false "Page size"
// @Success 200 {object} dto.APIResponse{data=[]dto.StudentNotificationResponse}
// @Router /notifications/me [get]
func (c *NotificationController) Inbox(ctx *gin.Context) {
	page, size := helpers.ParsePaginationParams(ctx)

	deliveries, total, err := c.notificationService.Inbox(ctx.Request.Context(), middleware.CurrentUserID(ctx), page, size)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.PaginatedResponse{
		Items:      deliveries,
		Pagination: helpers.NewPaginationInfo(total, page, size),
	}))
}

// MarkRead marks one delivery as read
// @Summary Mark a notification as read
// @Description Marking an already read delivery keeps the original read time.
// @Tags notifications
// @Produce json
// @Security BearerAuth
// @Param id path int true "Delivery ID"
// @Success 200 {object} dto.APIResponse
// @Failure 404 {object} dto.ErrorResponse "Delivery not found"
// @Router /notifications/me/{id}/read [post]
func (c *NotificationController) MarkRead(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.notificationService.MarkRead(ctx.Request.Context(), middleware.CurrentUserID(ctx), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewMessageResponse("Notification marked read"))
}

// UnreadCount returns the calling student's unread count
// @Summary Get my unread notification count
// @Tags notifications
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.UnreadCountResponse}
// @Router /notifications/me/unread-count [get]
func (c *NotificationController) UnreadCount(ctx *gin.Context) {
	resp, err := c.notificationService.UnreadCount(ctx.Request.Context(), middleware.CurrentUserID(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(resp))
}
