package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/sanjith/placementcell/internal/app/models"
)

// SettingsRepository handles the fixed-id singleton rows for eligibility
// thresholds and the college profile.
type SettingsRepository struct {
	db *pgxpool.Pool
}

// NewSettingsRepository creates a new SettingsRepository
func NewSettingsRepository(db *pgxpool.Pool) *SettingsRepository {
	return &SettingsRepository{db: db}
}

// GetEligibilitySettings reads the threshold singleton. The row is seeded at
// startup, so a missing row is a real error.
func (r *SettingsRepository) GetEligibilitySettings(ctx context.Context) (*models.EligibilitySettings, error) {
	query := `
		SELECT id, attendance_min, backlog_max, cgpa_min, updated_by, updated_at
		FROM eligibility_settings
		WHERE id = $1`

	var settings models.EligibilitySettings
	err := r.db.QueryRow(ctx, query, models.SingletonID).Scan(
		&settings.ID, &settings.AttendanceMin, &settings.BacklogMax,
		&settings.CGPAMin, &settings.UpdatedBy, &settings.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("error retrieving eligibility settings: %w", err)
	}
	return &settings, nil
}

// UpdateEligibilitySettings writes the threshold singleton
func (r *SettingsRepository) UpdateEligibilitySettings(ctx context.Context, settings *models.EligibilitySettings) error {
	_, err := r.db.Exec(ctx, `
		UPDATE eligibility_settings
		SET attendance_min = $1, backlog_max = $2, cgpa_min = $3,
		    updated_by = $4, updated_at = NOW()
		WHERE id = $5`,
		settings.AttendanceMin, settings.BacklogMax, settings.CGPAMin,
		settings.UpdatedBy, models.SingletonID)
	if err != nil {
		return fmt.Errorf("error updating eligibility settings: %w", err)
	}
	return nil
}

// SeedEligibilitySettings inserts the threshold singleton with defaults if it
// does not exist yet. Safe to call on every startup.
func (r *SettingsRepository) SeedEligibilitySettings(ctx context.Context) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO eligibility_settings (id, attendance_min, backlog_max, cgpa_min)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (id) DO NOTHING`,
		models.SingletonID, models.DefaultAttendanceMin, models.DefaultBacklogMax, models.DefaultCGPAMin)
	if err != nil {
		return fmt.Errorf("error seeding eligibility settings: %w", err)
	}
	return nil
}

// GetCollege reads the college profile singleton
func (r *SettingsRepository) GetCollege(ctx context.Context) (*models.College, error) {
	query := `
		SELECT id, name, logo_url, updated_by, updated_at
		FROM colleges
		WHERE id = $1`

	var college models.College
	err := r.db.QueryRow(ctx, query, models.SingletonID).Scan(
		&college.ID, &college.Name, &college.LogoURL, &college.UpdatedBy, &college.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("error retrieving college profile: %w", err)
	}
	return &college, nil
}

// UpdateCollege writes the college profile singleton
func (r *SettingsRepository) UpdateCollege(ctx context.Context, college *models.College) error {
	_, err := r.db.Exec(ctx, `
		UPDATE colleges
		SET name = $1, logo_url = $2, updated_by = $3, updated_at = NOW()
		WHERE id = $4`,
		college.Name, college.LogoURL, college.UpdatedBy, models.SingletonID)
	if err != nil {
		return fmt.Errorf("error updating college profile: %w", err)
	}
	return nil
}

// SeedCollege inserts the college profile singleton if it does not exist yet
func (r *SettingsRepository) SeedCollege(ctx context.Context) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO colleges (id, name, logo_url)
		VALUES ($1, '', '')
		ON CONFLICT (id) DO NOTHING`,
		models.SingletonID)
	if err != nil {
		return fmt.Errorf("error seeding college profile: %w", err)
	}
	return nil
}
