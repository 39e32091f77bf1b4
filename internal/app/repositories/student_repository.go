package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/sanjith/placementcell/internal/app/models"
	"github.com/sanjith/placementcell/internal/app/models/dto"
	"github.com/sanjith/placementcell/internal/pkg/apperrors"
	"github.com/sanjith/placementcell/internal/pkg/dberrors"
	"github.com/sanjith/placementcell/internal/pkg/logger"
)

const studentColumns = `
	s.id, s.user_id, s.roll_number, s.branch, s.section, s.year, s.course,
	s.specialization, s.program_type, s.admission_year, s.program_duration_years,
	s.pass_out_year, s.attendance_percentage, s.backlogs, s.cgpa,
	s.academic_requirements, s.onboarding_step, s.skills, s.projects,
	s.is_placed, s.created_at, s.updated_at`

const userJoinColumns = `
	u.id, u.email, u.first_name, u.last_name, u.role, u.is_active`

// StudentRepository handles student database operations
type StudentRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewStudentRepository creates a new StudentRepository
func NewStudentRepository(db *pgxpool.Pool) *StudentRepository {
	return &StudentRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// CreateStudent creates a new student record
func (r *StudentRepository) CreateStudent(ctx context.Context, student *models.Student) error {
	query := `
		INSERT INTO students (user_id, roll_number, onboarding_step)
		VALUES ($1, $2, $3)
		RETURNING id, created_at, updated_at`

	err := r.db.QueryRow(ctx, query,
		student.UserID, student.RollNumber, student.OnboardingStep,
	).Scan(&student.ID, &student.CreatedAt, &student.UpdatedAt)

	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "students_roll_number_key") {
			logger.Warn().Str("rollNumber", student.RollNumber).Msg("Attempted to create student with duplicate roll number")
			return apperrors.ErrRollNumberAlreadyExists
		}
		logger.Error().Err(err).Int64("userID", student.UserID).Msg("Error executing create student query")
		return fmt.Errorf("error creating student: %w", err)
	}
	return nil
}

// GetByID retrieves a student with its user relation
func (r *StudentRepository) GetByID(ctx context.Context, id int64) (*models.Student, error) {
	query := `
		SELECT ` + studentColumns + `, ` + userJoinColumns + `
		FROM students s
		JOIN users u ON u.id = s.user_id
		WHERE s.id = $1`

	student, err := r.scanStudentWithUser(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrStudentNotFound
		}
		return nil, fmt.Errorf("error retrieving student: %w", err)
	}
	return student, nil
}

// GetByUserID retrieves the student attached to an account
func (r *StudentRepository) GetByUserID(ctx context.Context, userID int64) (*models.Student, error) {
	query := `
		SELECT ` + studentColumns + `, ` + userJoinColumns + `
		FROM students s
		JOIN users u ON u.id = s.user_id
		WHERE s.user_id = $1`

	student, err := r.scanStudentWithUser(r.db.QueryRow(ctx, query, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrStudentNotFound
		}
		return nil, fmt.Errorf("error retrieving student by user: %w", err)
	}
	return student, nil
}

// UpdatePersonal writes the personal onboarding fields
func (r *StudentRepository) UpdatePersonal(ctx context.Context, student *models.Student) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE students
		SET branch = $1, section = $2, year = $3, course = $4,
		    onboarding_step = $5, updated_at = NOW()
		WHERE id = $6`,
		student.Branch, student.Section, student.Year, student.Course,
		student.OnboardingStep, student.ID)
	if err != nil {
		return fmt.Errorf("error updating personal details: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrStudentNotFound
	}
	return nil
}

// UpdateAcademic writes the academic onboarding fields, including the derived
// program duration and pass-out year.
func (r *StudentRepository) UpdateAcademic(ctx context.Context, student *models.Student) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE students
		SET program_type = $1, specialization = $2, admission_year = $3,
		    program_duration_years = $4, pass_out_year = $5,
		    attendance_percentage = $6, backlogs = $7, cgpa = $8,
		    academic_requirements = $9, skills = $10, projects = $11,
		    onboarding_step = $12, updated_at = NOW()
		WHERE id = $13`,
		student.ProgramType, student.Specialization, student.AdmissionYear,
		student.ProgramDurationYears, student.PassOutYear,
		student.AttendancePercentage, student.Backlogs, student.CGPA,
		student.AcademicRequirements, student.Skills, student.Projects,
		student.OnboardingStep, student.ID)
	if err != nil {
		return fmt.Errorf("error updating academic details: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrStudentNotFound
	}
	return nil
}

// SetPlaced flips the placement flag
func (r *StudentRepository) SetPlaced(ctx context.Context, studentID int64, placed bool) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE students SET is_placed = $1, updated_at = NOW() WHERE id = $2`,
		placed, studentID)
	if err != nil {
		return fmt.Errorf("error updating placement flag: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrStudentNotFound
	}
	return nil
}

// GetAll retrieves students with filtering and pagination
func (r *StudentRepository) GetAll(ctx context.Context, filter dto.StudentFilterRequest, page, pageSize int) ([]models.Student, int64, error) {
	builder := r.sb.Select(studentColumns+", "+userJoinColumns+", COUNT(*) OVER() AS total_count").
		From("students s").
		Join("users u ON u.id = s.user_id")

	if filter.Branch != "" {
		builder = builder.Where(squirrel.Eq{"s.branch": filter.Branch})
	}
	if filter.Section != "" {
		builder = builder.Where(squirrel.Eq{"s.section": filter.Section})
	}
	if filter.Year != nil {
		builder = builder.Where(squirrel.Eq{"s.year": *filter.Year})
	}
	if filter.IsPlaced != nil {
		builder = builder.Where(squirrel.Eq{"s.is_placed": *filter.IsPlaced})
	}
	if filter.Query != "" {
		pattern := "%" + filter.Query + "%"
		builder = builder.Where(squirrel.Or{
			squirrel.ILike{"s.roll_number": pattern},
			squirrel.ILike{"u.first_name": pattern},
			squirrel.ILike{"u.last_name": pattern},
			squirrel.ILike{"u.email": pattern},
		})
	}

	offset := (page - 1) * pageSize
	builder = builder.OrderBy("s.roll_number").Limit(uint64(pageSize)).Offset(uint64(offset))

	query, args, err := builder.ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building student listing SQL")
		return nil, 0, fmt.Errorf("failed to build student listing query: %w", err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("error listing students: %w", err)
	}
	defer rows.Close()

	var students []models.Student
	var total int64
	for rows.Next() {
		student, count, err := scanStudentRowWithCount(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("error scanning student row: %w", err)
		}
		total = count
		students = append(students, *student)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating student rows: %w", err)
	}

	return students, total, nil
}

// GetPopulation retrieves every student with its user relation, for audience
// resolution and dashboard aggregation.
func (r *StudentRepository) GetPopulation(ctx context.Context) ([]models.Student, error) {
	query := `
		SELECT ` + studentColumns + `, ` + userJoinColumns + `
		FROM students s
		JOIN users u ON u.id = s.user_id
		ORDER BY s.id`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error loading student population: %w", err)
	}
	defer rows.Close()

	var students []models.Student
	for rows.Next() {
		student, err := scanStudentRow(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning student row: %w", err)
		}
		students = append(students, *student)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating student rows: %w", err)
	}
	return students, nil
}

func (r *StudentRepository) scanStudentWithUser(row pgx.Row) (*models.Student, error) {
	return scanStudentFields(row.Scan)
}

func scanStudentRow(rows pgx.Rows) (*models.Student, error) {
	return scanStudentFields(rows.Scan)
}

func scanStudentRowWithCount(rows pgx.Rows) (*models.Student, int64, error) {
	var student models.Student
	var user models.User
	var total int64
	dest := studentScanDest(&student, &user)
	dest = append(dest, &total)
	if err := rows.Scan(dest...); err != nil {
		return nil, 0, err
	}
	student.User = &user
	return &student, total, nil
}

func scanStudentFields(scan func(dest ...any) error) (*models.Student, error) {
	var student models.Student
	var user models.User
	if err := scan(studentScanDest(&student, &user)...); err != nil {
		return nil, err
	}
	student.User = &user
	return &student, nil
}

func studentScanDest(student *models.Student, user *models.User) []any {
	return []any{
		&student.ID, &student.UserID, &student.RollNumber, &student.Branch,
		&student.Section, &student.Year, &student.Course, &student.Specialization,
		&student.ProgramType, &student.AdmissionYear, &student.ProgramDurationYears,
		&student.PassOutYear, &student.AttendancePercentage, &student.Backlogs,
		&student.CGPA, &student.AcademicRequirements, &student.OnboardingStep,
		&student.Skills, &student.Projects, &student.IsPlaced,
		&student.CreatedAt, &student.UpdatedAt,
		&user.ID, &user.Email, &user.FirstName, &user.LastName, &user.Role, &user.IsActive,
	}
}
