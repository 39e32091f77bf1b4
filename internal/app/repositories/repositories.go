package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repositories holds all the repository instances
type Repositories struct {
	UserRepository         *UserRepository
	StudentRepository      *StudentRepository
	PlacementRepository    *PlacementRepository
	SettingsRepository     *SettingsRepository
	JobRepository          *JobRepository
	ExternalJobRepository  *ExternalJobRepository
	ApplicationRepository  *ApplicationRepository
	NotificationRepository *NotificationRepository
	CompanyRepository      *CompanyRepository
}

// NewRepositories initializes all repositories
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		UserRepository:         NewUserRepository(db),
		StudentRepository:      NewStudentRepository(db),
		PlacementRepository:    NewPlacementRepository(db),
		SettingsRepository:     NewSettingsRepository(db),
		JobRepository:          NewJobRepository(db),
		ExternalJobRepository:  NewExternalJobRepository(db),
		ApplicationRepository:  NewApplicationRepository(db),
		NotificationRepository: NewNotificationRepository(db),
		CompanyRepository:      NewCompanyRepository(db),
	}
}
