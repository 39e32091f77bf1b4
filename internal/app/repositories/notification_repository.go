package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/sanjith/placementcell/internal/app/models"
	"github.com/sanjith/placementcell/internal/pkg/apperrors"
	"github.com/sanjith/placementcell/internal/pkg/dberrors"
	"github.com/sanjith/placementcell/internal/pkg/logger"
)

// NotificationRepository handles notification and delivery database operations
type NotificationRepository struct {
	db *pgxpool.Pool
}

// NewNotificationRepository creates a new NotificationRepository
func NewNotificationRepository(db *pgxpool.Pool) *NotificationRepository {
	return &NotificationRepository{db: db}
}

// Create inserts a notification. A reused batch key maps to
// ErrBatchAlreadyProcessed so retried fan-outs are not duplicated.
func (r *NotificationRepository) Create(ctx context.Context, n *models.Notification) error {
	var batchKey *string
	if n.BatchKey != "" {
		batchKey = &n.BatchKey
	}

	query := `
		INSERT INTO notifications
			(title, message, target_all, target_years, target_branches,
			 target_sections, target_specializations, recipient_count, batch_key, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id, created_at`

	err := r.db.QueryRow(ctx, query,
		n.Title, n.Message, n.TargetAll, n.TargetYears, n.TargetBranches,
		n.TargetSections, n.TargetSpecializations, n.RecipientCount, batchKey, n.CreatedBy,
	).Scan(&n.ID, &n.CreatedAt)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "notifications_batch_key_key") {
			logger.Warn().Str("batchKey", n.BatchKey).Msg("Notification batch key already used")
			return apperrors.ErrBatchAlreadyProcessed
		}
		return fmt.Errorf("error creating notification: %w", err)
	}
	return nil
}

// GetByID retrieves a notification by ID
func (r *NotificationRepository) GetByID(ctx context.Context, id int64) (*models.Notification, error) {
	query := `
		SELECT id, title, message, target_all, target_years, target_branches,
		       target_sections, target_specializations, recipient_count, batch_key,
		       created_by, created_at
		FROM notifications
		WHERE id = $1`

	n, err := scanNotification(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotificationNotFound
		}
		return nil, fmt.Errorf("error retrieving notification: %w", err)
	}
	return n, nil
}

// GetAll retrieves notifications, newest first, paginated
func (r *NotificationRepository) GetAll(ctx context.Context, page, pageSize int) ([]models.Notification, int64, error) {
	query := `
		SELECT id, title, message, target_all, target_years, target_branches,
		       target_sections, target_specializations, recipient_count, batch_key,
		       created_by, created_at, COUNT(*) OVER() AS total_count
		FROM notifications
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2`

	offset := (page - 1) * pageSize
	rows, err := r.db.Query(ctx, query, pageSize, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("error listing notifications: %w", err)
	}
	defer rows.Close()

	var notifications []models.Notification
	var total int64
	for rows.Next() {
		var n models.Notification
		var batchKey *string
		err := rows.Scan(
			&n.ID, &n.Title, &n.Message, &n.TargetAll, &n.TargetYears,
			&n.TargetBranches, &n.TargetSections, &n.TargetSpecializations,
			&n.RecipientCount, &batchKey, &n.CreatedBy, &n.CreatedAt, &total)
		if err != nil {
			return nil, 0, fmt.Errorf("error scanning notification row: %w", err)
		}
		if batchKey != nil {
			n.BatchKey = *batchKey
		}
		notifications = append(notifications, n)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating notification rows: %w", err)
	}
	return notifications, total, nil
}

// CreateDeliveries fans one notification out to the resolved recipients in a
// single batch. Conflicting rows are skipped, keeping one delivery per
// (notification, student).
func (r *NotificationRepository) CreateDeliveries(ctx context.Context, notificationID int64, studentIDs []int64) (int64, error) {
	if len(studentIDs) == 0 {
		return 0, nil
	}

	query := `
		INSERT INTO notification_deliveries (notification_id, student_id)
		SELECT $1, unnest($2::bigint[])
		ON CONFLICT ON CONSTRAINT notification_deliveries_notification_student_key DO NOTHING`

	tag, err := r.db.Exec(ctx, query, notificationID, studentIDs)
	if err != nil {
		return 0, fmt.Errorf("error creating deliveries: %w", err)
	}
	return tag.RowsAffected(), nil
}

// GetDeliveriesForStudent retrieves a student's inbox, newest first, paginated
func (r *NotificationRepository) GetDeliveriesForStudent(ctx context.Context, studentID int64, page, pageSize int) ([]models.NotificationDelivery, int64, error) {
	query := `
		SELECT d.id, d.notification_id, d.student_id, d.status, d.delivered_at, d.read_at,
		       n.id, n.title, n.message, n.target_all, n.target_years, n.target_branches,
		       n.target_sections, n.target_specializations, n.recipient_count, n.batch_key,
		       n.created_by, n.created_at,
		       COUNT(*) OVER() AS total_count
		FROM notification_deliveries d
		JOIN notifications n ON n.id = d.notification_id
		WHERE d.student_id = $1
		ORDER BY d.delivered_at DESC
		LIMIT $2 OFFSET $3`

	offset := (page - 1) * pageSize
	rows, err := r.db.Query(ctx, query, studentID, pageSize, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("error listing deliveries: %w", err)
	}
	defer rows.Close()

	var deliveries []models.NotificationDelivery
	var total int64
	for rows.Next() {
		var d models.NotificationDelivery
		var n models.Notification
		var batchKey *string
		err := rows.Scan(
			&d.ID, &d.NotificationID, &d.StudentID, &d.Status, &d.DeliveredAt, &d.ReadAt,
			&n.ID, &n.Title, &n.Message, &n.TargetAll, &n.TargetYears,
			&n.TargetBranches, &n.TargetSections, &n.TargetSpecializations,
			&n.RecipientCount, &batchKey, &n.CreatedBy, &n.CreatedAt, &total)
		if err != nil {
			return nil, 0, fmt.Errorf("error scanning delivery row: %w", err)
		}
		if batchKey != nil {
			n.BatchKey = *batchKey
		}
		d.Notification = &n
		deliveries = append(deliveries, d)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating delivery rows: %w", err)
	}
	return deliveries, total, nil
}

// MarkRead marks one of the student's deliveries as read. Marking an already
// read delivery keeps its original read time.
func (r *NotificationRepository) MarkRead(ctx context.Context, deliveryID, studentID int64) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE notification_deliveries
		SET status = $1, read_at = COALESCE(read_at, NOW())
		WHERE id = $2 AND student_id = $3`,
		models.DeliveryRead, deliveryID, studentID)
	if err != nil {
		return fmt.Errorf("error marking delivery read: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrDeliveryNotFound
	}
	return nil
}

// CountUnread counts a student's unread deliveries
func (r *NotificationRepository) CountUnread(ctx context.Context, studentID int64) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx, `
		SELECT COUNT(*) FROM notification_deliveries
		WHERE student_id = $1 AND status = $2`,
		studentID, models.DeliveryDelivered).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error counting unread deliveries: %w", err)
	}
	return count, nil
}

func scanNotification(row pgx.Row) (*models.Notification, error) {
	var n models.Notification
	var batchKey *string
	err := row.Scan(
		&n.ID, &n.Title, &n.Message, &n.TargetAll, &n.TargetYears,
		&n.TargetBranches, &n.TargetSections, &n.TargetSpecializations,
		&n.RecipientCount, &batchKey, &n.CreatedBy, &n.CreatedAt)
	if err != nil {
		return nil, err
	}
	if batchKey != nil {
		n.BatchKey = *batchKey
	}
	return &n, nil
}
