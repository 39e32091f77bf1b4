package seed

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	appModels "github.com/sanjith/placementcell/internal/app/models"
	appRepos "github.com/sanjith/placementcell/internal/app/repositories"
	"github.com/sanjith/placementcell/internal/pkg/apperrors"
	"github.com/sanjith/placementcell/internal/pkg/auth"
)

const (
	defaultAdminEmail    = "admin@placementcell.edu"
	defaultAdminPassword = "Admin123!"
)

// CreateDefaultData seeds the configuration singletons and the default admin
// account. Every step is idempotent, so running it on each startup is safe.
func CreateDefaultData(ctx context.Context, dbPool *pgxpool.Pool, lgr zerolog.Logger) error {
	settingsRepo := appRepos.NewSettingsRepository(dbPool)
	userRepo := appRepos.NewUserRepository(dbPool)

	lgr.Info().Msg("Checking/Creating default data (settings, college, admin)...")
	var finalErr error

	if err := settingsRepo.SeedEligibilitySettings(ctx); err != nil {
		lgr.Error().Err(err).Msg("Error seeding eligibility settings")
		finalErr = errors.Join(finalErr, err)
	}

	if err := settingsRepo.SeedCollege(ctx); err != nil {
		lgr.Error().Err(err).Msg("Error seeding college profile")
		finalErr = errors.Join(finalErr, err)
	}

	// --- Create Default Admin User --- //
	if _, err := userRepo.GetUserByEmail(ctx, defaultAdminEmail); err == nil {
		lgr.Info().Msg("Admin user already exists, skipping creation")
	} else if !errors.Is(err, apperrors.ErrUserNotFound) {
		lgr.Error().Err(err).Msg("Error checking if admin user exists")
		finalErr = errors.Join(finalErr, err)
	} else {
		lgr.Info().Msg("Creating default admin user...")

		hashedPassword, err := auth.HashPassword(defaultAdminPassword)
		if err != nil {
			lgr.Error().Err(err).Msg("Error hashing admin password")
			return errors.Join(finalErr, err)
		}

		admin := &appModels.User{
			Email:     defaultAdminEmail,
			Password:  hashedPassword,
			FirstName: "System",
			LastName:  "Administrator",
			Role:      appModels.RoleAdmin,
			IsActive:  true,
		}

		adminID, err := userRepo.CreateUser(ctx, admin)
		if err != nil && !errors.Is(err, apperrors.ErrEmailAlreadyExists) {
			lgr.Error().Err(err).Msg("Error creating admin user")
			finalErr = errors.Join(finalErr, err)
		} else if err == nil {
			lgr.Info().Int64("adminID", adminID).Msg("Default admin user created successfully")
		}
	}

	lgr.Info().Msg("Default data check/creation finished.")
	return finalErr
}
