package bootstrap

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/sanjith/placementcell/docs" // Import generated swagger docs
	appControllers "github.com/sanjith/placementcell/internal/app/controllers"
	appMigrations "github.com/sanjith/placementcell/internal/app/migrations"
	appRepos "github.com/sanjith/placementcell/internal/app/repositories"
	appRoutes "github.com/sanjith/placementcell/internal/app/routes"
	appServices "github.com/sanjith/placementcell/internal/app/services"
	"github.com/sanjith/placementcell/internal/config"
	"github.com/sanjith/placementcell/internal/db"
	appMiddleware "github.com/sanjith/placementcell/internal/middleware"
	pkgAuth "github.com/sanjith/placementcell/internal/pkg/auth"
	"github.com/sanjith/placementcell/internal/pkg/email"
	"github.com/sanjith/placementcell/internal/pkg/helpers"
	"github.com/sanjith/placementcell/internal/pkg/logger"
	"github.com/sanjith/placementcell/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	AuthService            *appServices.AuthService
	StudentService         *appServices.StudentService
	PlacementService       *appServices.PlacementService
	JobService             *appServices.JobService
	ApplicationService     *appServices.ApplicationService
	NotificationService    *appServices.NotificationService
	CompanyService         *appServices.CompanyService
	SettingsService        *appServices.SettingsService
	DashboardService       *appServices.DashboardService
	AuthController         *appControllers.AuthController
	StudentController      *appControllers.StudentController
	PlacementController    *appControllers.PlacementController
	JobController          *appControllers.JobController
	ApplicationController  *appControllers.ApplicationController
	NotificationController *appControllers.NotificationController
	CompanyController      *appControllers.CompanyController
	SettingsController     *appControllers.SettingsController
	DashboardController    *appControllers.DashboardController
	AuthMiddleware         *appMiddleware.AuthMiddleware
	Repos                  *appRepos.Repositories
	JWTService             *pkgAuth.JWTService
	EmailService           email.EmailService
	Logger                 zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	configPath := filepath.Join("configs", "config.yaml")
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logLevel := logger.LogLevel(strings.ToLower(cfg.Logging.Level))
	prettyLog := strings.ToLower(cfg.Logging.Format) == "text"

	logger.Configure(logger.Config{
		Level:  logLevel,
		Pretty: prettyLog,
	})

	lgr := log.Logger
	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupDatabase establishes the database connection and runs migrations.
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) (*pgxpool.Pool, error) {
	lgr.Info().Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}
	dbPool := database.Pool

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := dbPool.Ping(ctx); err != nil {
		lgr.Error().Err(err).Msg("Failed to ping database")
		dbPool.Close()
		return nil, err
	}
	lgr.Info().Msg("Database connection successfully established.")

	lgr.Info().Msg("Running database migrations...")
	migrator := appMigrations.NewMigrator(dbPool)

	migrationsDir := "migrations"
	if _, err := os.Stat(migrationsDir); os.IsNotExist(err) {
		lgr.Error().Str("path", migrationsDir).Msg("Migrations directory not found")
		return nil, fmt.Errorf("migrations directory not found at %s: %w", migrationsDir, err)
	}

	if err := migrator.MigrateFromDirectory(migrationsDir); err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}

	lgr.Info().Msg("Database migrations successfully applied.")

	// Create default data (after migrations)
	if err := seed.CreateDefaultData(context.Background(), dbPool, lgr); err != nil {
		// Log the error but don't fail the startup
		lgr.Error().Err(err).Msg("Failed to create default data, proceeding anyway...")
	}

	return dbPool, nil
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, dbPool *pgxpool.Pool, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(dbPool)

	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:       cfg.JWT.Secret,
		AccessTokenExp:  helpers.ParseDuration(cfg.JWT.AccessTokenExpiration, 1*time.Hour),
		RefreshTokenExp: helpers.ParseDuration(cfg.JWT.RefreshTokenExpiration, 720*time.Hour),
		TokenIssuer:     cfg.JWT.Issuer,
	})

	deps.EmailService = email.NewEmailService(email.SMTPConfig{
		Host:      cfg.SMTP.Host,
		Port:      cfg.SMTP.Port,
		Username:  cfg.SMTP.Username,
		Password:  cfg.SMTP.Password,
		FromName:  cfg.SMTP.FromName,
		FromEmail: cfg.SMTP.FromEmail,
		UseTLS:    cfg.SMTP.UseTLS,
	}, lgr)

	// Initialize services
	deps.AuthService = appServices.NewAuthService(
		deps.Repos.UserRepository,
		deps.Repos.StudentRepository,
		deps.JWTService,
		deps.EmailService,
		lgr,
	)
	deps.StudentService = appServices.NewStudentService(
		deps.Repos.StudentRepository,
		deps.Repos.UserRepository,
		deps.Repos.PlacementRepository,
		deps.Repos.SettingsRepository,
		lgr,
	)
	deps.PlacementService = appServices.NewPlacementService(
		deps.Repos.StudentRepository,
		deps.Repos.PlacementRepository,
		lgr,
	)
	deps.JobService = appServices.NewJobService(
		deps.Repos.JobRepository,
		deps.Repos.ExternalJobRepository,
		lgr,
	)
	deps.ApplicationService = appServices.NewApplicationService(
		deps.Repos.ApplicationRepository,
		deps.Repos.JobRepository,
		deps.Repos.StudentRepository,
		lgr,
	)
	deps.NotificationService = appServices.NewNotificationService(
		deps.Repos.NotificationRepository,
		deps.Repos.StudentRepository,
		deps.EmailService,
		lgr,
	)
	deps.CompanyService = appServices.NewCompanyService(deps.Repos.CompanyRepository, lgr)
	deps.SettingsService = appServices.NewSettingsService(deps.Repos.SettingsRepository, lgr)
	deps.DashboardService = appServices.NewDashboardService(
		deps.Repos.StudentRepository,
		deps.Repos.SettingsRepository,
		deps.Repos.JobRepository,
		deps.Repos.ApplicationRepository,
		deps.Repos.CompanyRepository,
		lgr,
	)

	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.JWTService)

	// Initialize controllers
	deps.AuthController = appControllers.NewAuthController(deps.AuthService, lgr)
	deps.StudentController = appControllers.NewStudentController(deps.StudentService, lgr)
	deps.PlacementController = appControllers.NewPlacementController(deps.PlacementService, lgr)
	deps.JobController = appControllers.NewJobController(deps.JobService, lgr)
	deps.ApplicationController = appControllers.NewApplicationController(deps.ApplicationService, lgr)
	deps.NotificationController = appControllers.NewNotificationController(deps.NotificationService, lgr)
	deps.CompanyController = appControllers.NewCompanyController(deps.CompanyService, lgr)
	deps.SettingsController = appControllers.NewSettingsController(deps.SettingsService, lgr)
	deps.DashboardController = appControllers.NewDashboardController(deps.DashboardService, lgr)

	return deps, nil
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if strings.ToLower(cfg.Server.Mode) == "production" {
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	} else {
		gin.SetMode(gin.DebugMode)
		lgr.Info().Msg("Setting Gin mode to debug")
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(appMiddleware.RequestLogger())
	router.Use(appMiddleware.CORS())

	// Setup Swagger
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json"), ginSwagger.DefaultModelsExpandDepth(1)))

	// Setup API routes using the dependencies
	appRoutes.SetupRouter(router,
		deps.AuthController,
		deps.StudentController,
		deps.PlacementController,
		deps.JobController,
		deps.ApplicationController,
		deps.NotificationController,
		deps.CompanyController,
		deps.SettingsController,
		deps.DashboardController,
		deps.AuthMiddleware,
	)

	return router
}
