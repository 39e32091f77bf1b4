package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/sanjith/placementcell/internal/app/controllers"
	"github.com/sanjith/placementcell/internal/app/models"
	"github.com/sanjith/placementcell/internal/app/models/dto"
	"github.com/sanjith/placementcell/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	studentController *controllers.StudentController,
	placementController *controllers.PlacementController,
	jobController *controllers.JobController,
	applicationController *controllers.ApplicationController,
	notificationController *controllers.NotificationController,
	companyController *controllers.CompanyController,
	settingsController *controllers.SettingsController,
	dashboardController *controllers.DashboardController,
	authMiddleware *middleware.AuthMiddleware,
) {
	// API version group
	v1 := router.Group("/api/v1")

	// --- Public Auth routes ---
	auth := v1.Group("/auth")
	{
		auth.POST("/register", authController.Register)
		auth.POST("/login", authController.Login)
		auth.POST("/verify-otp", authController.VerifyOTP)
		auth.POST("/forgot-password", authController.ForgotPassword)
		auth.POST("/reset-password", authController.ResetPassword)
	}

	// --- Public company intake routes ---
	// Companies reach these through a shared link, without an account.
	publicCompany := v1.Group("/public/company-form")
	{
		publicCompany.GET("/:token", companyController.GetPublicForm)
		publicCompany.POST("/:token", companyController.SubmitRequest)
	}

	// College profile is readable without authentication
	v1.GET("/settings/college", settingsController.GetCollege)

	// --- Authenticated Routes Group ---
	authenticated := v1.Group("")
	authenticated.Use(authMiddleware.JWTAuth())
	{
		// Routes shared by every authenticated user
		jobs := authenticated.Group("/jobs")
		{
			jobs.GET("", jobController.List)
			jobs.GET("/:id", jobController.Get)
		}
		authenticated.GET("/external-jobs", jobController.ListExternal)

		// --- Student routes ---
		students := authenticated.Group("")
		students.Use(authMiddleware.RequireRoles(models.RoleStudent))
		{
			students.GET("/students/me", studentController.GetMe)
			students.PUT("/students/me/personal", studentController.UpdatePersonalDetails)
			students.PUT("/students/me/academic", studentController.UpdateAcademicDetails)

			students.POST("/jobs/:id/applications", applicationController.Apply)
			students.GET("/applications/me", applicationController.ListMine)
			students.DELETE("/applications/:id", applicationController.Withdraw)

			students.GET("/notifications/me", notificationController.Inbox)
			students.GET("/notifications/me/unread-count", notificationController.UnreadCount)
			students.POST("/notifications/me/:id/read", notificationController.MarkRead)
		}

		// --- Placement office routes ---
		officers := authenticated.Group("")
		officers.Use(authMiddleware.RequireRoles(models.RoleAdmin, models.RoleOfficer))
		{
			officers.GET("/students", studentController.List)
			officers.GET("/students/:id", studentController.GetByID)
			officers.GET("/students/:id/eligibility", studentController.EligibilityReport)

			officers.PUT("/students/:id/placement", placementController.MarkPlaced)
			officers.DELETE("/students/:id/placement", placementController.MarkUnplaced)
			officers.POST("/placements/bulk", placementController.BulkPlace)

			officers.POST("/jobs", jobController.Create)
			officers.PUT("/jobs/:id", jobController.Update)
			officers.PATCH("/jobs/:id/status", jobController.SetStatus)
			officers.DELETE("/jobs/:id", jobController.Delete)
			officers.POST("/external-jobs", jobController.CreateExternal)
			officers.DELETE("/external-jobs/:id", jobController.DeleteExternal)

			officers.GET("/jobs/:id/applications", applicationController.ListByJob)
			officers.PATCH("/applications/:id/status", applicationController.UpdateStatus)

			officers.POST("/notifications", notificationController.Create)
			officers.GET("/notifications", notificationController.List)

			officers.POST("/companies/form-links", companyController.CreateFormLink)
			officers.GET("/companies/form-links", companyController.ListFormLinks)
			officers.DELETE("/companies/form-links/:id", companyController.DisableFormLink)
			officers.GET("/companies/requests", companyController.ListRequests)
			officers.POST("/companies/requests/:id/review", companyController.Review)

			officers.GET("/settings/eligibility", settingsController.GetEligibilitySettings)
			officers.PUT("/settings/eligibility", settingsController.UpdateEligibilitySettings)
			officers.PUT("/settings/college", settingsController.UpdateCollege)

			officers.GET("/dashboard", dashboardController.Summary)
		}
	}

	// Health check endpoint (public)
	v1.GET("/health", func(c *gin.Context) {
		c.JSON(200, dto.NewSuccessResponse(gin.H{"status": "ok"}))
	})
}
