package services

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/sanjith/placementcell/internal/app/models"
	"github.com/sanjith/placementcell/internal/app/models/dto"
	"github.com/sanjith/placementcell/internal/app/repositories"
	"github.com/sanjith/placementcell/internal/app/rules"
	"github.com/sanjith/placementcell/internal/pkg/apperrors"
	"github.com/sanjith/placementcell/internal/pkg/email"
)

// NotificationService resolves audiences and fans notifications out to
// per-student deliveries. The recipient count stored on a notification is a
// snapshot of the audience at send time.
type NotificationService struct {
	notificationRepo *repositories.NotificationRepository
	studentRepo      *repositories.StudentRepository
	emailSvc         email.EmailService
	logger           zerolog.Logger
}

// NewNotificationService creates a new NotificationService
func NewNotificationService(
	notificationRepo *repositories.NotificationRepository,
	studentRepo *repositories.StudentRepository,
	emailSvc email.EmailService,
	logger zerolog.Logger,
) *NotificationService {
	return &NotificationService{
		notificationRepo: notificationRepo,
		studentRepo:      studentRepo,
		emailSvc:         emailSvc,
		logger:           logger,
	}
}

// Create resolves the audience and fans the notification out. A target that
// matches nobody is rejected before anything is stored. When a batch key is
// supplied, replaying it reports the batch as already processed.
func (s *NotificationService) Create(ctx context.Context, req *dto.CreateNotificationRequest, createdBy int64) (*dto.NotificationResponse, error) {
	target := rules.Target{
		All:             req.TargetAll,
		Years:           req.TargetYears,
		Branches:        req.TargetBranches,
		Sections:        req.TargetSections,
		Specializations: req.TargetSpecializations,
	}
	if target.IsEmpty() {
		return nil, apperrors.ErrEmptyAudience
	}

	population, err := s.studentRepo.GetPopulation(ctx)
	if err != nil {
		return nil, err
	}
	pointers := make([]*models.Student, 0, len(population))
	for i := range population {
		pointers = append(pointers, &population[i])
	}

	audience := rules.ResolveAudience(target, pointers)
	if len(audience) == 0 {
		return nil, apperrors.ErrEmptyAudience
	}

	notification := &models.Notification{
		Title:                 req.Title,
		Message:               req.Message,
		TargetAll:             req.TargetAll,
		TargetYears:           req.TargetYears,
		TargetBranches:        req.TargetBranches,
		TargetSections:        req.TargetSections,
		TargetSpecializations: req.TargetSpecializations,
		RecipientCount:        len(audience),
		BatchKey:              req.BatchKey,
		CreatedBy:             createdBy,
	}
	if err := s.notificationRepo.Create(ctx, notification); err != nil {
		return nil, err
	}

	recipientIDs := make([]int64, 0, len(audience))
	for _, student := range audience {
		recipientIDs = append(recipientIDs, student.ID)
	}
	delivered, err := s.notificationRepo.CreateDeliveries(ctx, notification.ID, recipientIDs)
	if err != nil {
		return nil, err
	}

	s.logger.Info().
		Int64("notificationID", notification.ID).
		Int("audience", len(audience)).
		Int64("delivered", delivered).
		Msg("Notification fanned out")

	if req.SendEmail {
		s.sendEmails(notification, audience)
	}

	resp := toNotificationResponse(notification)
	return &resp, nil
}

// List returns a page of sent notifications, newest first
func (s *NotificationService) List(ctx context.Context, page, pageSize int) ([]dto.NotificationResponse, int64, error) {
	notifications, total, err := s.notificationRepo.GetAll(ctx, page, pageSize)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]dto.NotificationResponse, 0, len(notifications))
	for i := range notifications {
		responses = append(responses, toNotificationResponse(&notifications[i]))
	}
	return responses, total, nil
}

// Inbox returns a page of the student's deliveries, newest first
func (s *NotificationService) Inbox(ctx context.Context, userID int64, page, pageSize int) ([]dto.StudentNotificationResponse, int64, error) {
	student, err := s.studentRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, 0, err
	}

	deliveries, total, err := s.notificationRepo.GetDeliveriesForStudent(ctx, student.ID, page, pageSize)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]dto.StudentNotificationResponse, 0, len(deliveries))
	for _, d := range deliveries {
		item := dto.StudentNotificationResponse{
			DeliveryID: d.ID,
			Status:     string(d.Status),
			ReadAt:     d.ReadAt,
			CreatedAt:  d.DeliveredAt,
		}
		if d.Notification != nil {
			item.Title = d.Notification.Title
			item.Message = d.Notification.Message
		}
		responses = append(responses, item)
	}
	return responses, total, nil
}

// MarkRead marks one of the student's deliveries as read. Re-reading keeps
// the original read time.
func (s *NotificationService) MarkRead(ctx context.Context, userID, deliveryID int64) error {
	student, err := s.studentRepo.GetByUserID(ctx, userID)
	if err != nil {
		return err
	}
	return s.notificationRepo.MarkRead(ctx, deliveryID, student.ID)
}

// UnreadCount returns the student's unread delivery count
func (s *NotificationService) UnreadCount(ctx context.Context, userID int64) (*dto.UnreadCountResponse, error) {
	student, err := s.studentRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	count, err := s.notificationRepo.CountUnread(ctx, student.ID)
	if err != nil {
		return nil, err
	}
	return &dto.UnreadCountResponse{Unread: count}, nil
}

// sendEmails delivers the notification by email on a best-effort basis. A
// failed email never fails the fan-out; the in-app delivery already exists.
func (s *NotificationService) sendEmails(n *models.Notification, audience []*models.Student) {
	sent := 0
	for _, student := range audience {
		if student.User == nil {
			continue
		}
		if err := s.emailSvc.SendNotificationEmail(student.User.Email, student.User.FirstName, n.Title, n.Message); err != nil {
			s.logger.Warn().Err(err).Int64("studentID", student.ID).Msg("Failed to send notification email")
			continue
		}
		sent++
	}
	s.logger.Info().Int64("notificationID", n.ID).Int("sent", sent).Msg("Notification emails sent")
}

func toNotificationResponse(n *models.Notification) dto.NotificationResponse {
	return dto.NotificationResponse{
		ID:                    n.ID,
		Title:                 n.Title,
		Message:               n.Message,
		TargetAll:             n.TargetAll,
		TargetYears:           n.TargetYears,
		TargetBranches:        n.TargetBranches,
		TargetSections:        n.TargetSections,
		TargetSpecializations: n.TargetSpecializations,
		RecipientCount:        n.RecipientCount,
		CreatedAt:             n.CreatedAt,
	}
}
