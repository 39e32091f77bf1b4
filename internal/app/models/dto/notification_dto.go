package dto

import (
	"time"
)

// CreateNotificationRequest fans a notification out to a targeted audience.
// Setting targetAll overrides the category filters; otherwise a student
// matches when it falls in ANY provided category. A request that targets
// nobody is rejected.
type CreateNotificationRequest struct {
	Title                 string   `json:"title" binding:"required" example:"Acme Corp drive on Friday"`
	Message               string   `json:"message" binding:"required"`
	TargetAll             bool     `json:"targetAll" example:"false"`
	TargetYears           []int    `json:"targetYears" example:"3,4"`
	TargetBranches        []string `json:"targetBranches" example:"CSE,ECE"`
	TargetSections        []string `json:"targetSections" example:"A"`
	TargetSpecializations []string `json:"targetSpecializations" example:"AI"`
	SendEmail             bool     `json:"sendEmail" example:"true"`
	BatchKey              string   `json:"batchKey" binding:"omitempty,uuid" example:"9f0a1c2e-3b4d-4e5f-8a6b-7c8d9e0f1a2b"`
}

// NotificationResponse is the officer-side view of a notification
type NotificationResponse struct {
	ID                    int64     `json:"id" example:"4"`
	Title                 string    `json:"title" example:"Acme Corp drive on Friday"`
	Message               string    `json:"message"`
	TargetAll             bool      `json:"targetAll" example:"false"`
	TargetYears           []int     `json:"targetYears,omitempty" example:"3,4"`
	TargetBranches        []string  `json:"targetBranches,omitempty" example:"CSE,ECE"`
	TargetSections        []string  `json:"targetSections,omitempty"`
	TargetSpecializations []string  `json:"targetSpecializations,omitempty"`
	RecipientCount        int       `json:"recipientCount" example:"112"` // Audience size at send time
	CreatedAt             time.Time `json:"createdAt"`
}

// StudentNotificationResponse is the student-side view of a delivery
type StudentNotificationResponse struct {
	DeliveryID int64      `json:"deliveryId" example:"310"`
	Title      string     `json:"title" example:"Acme Corp drive on Friday"`
	Message    string     `json:"message"`
	Status     string     `json:"status" example:"DELIVERED"`
	ReadAt     *time.Time `json:"readAt,omitempty"`
	CreatedAt  time.Time  `json:"createdAt"`
}

// NotificationListResponse is a page of notifications
type NotificationListResponse struct {
	Notifications []NotificationResponse `json:"notifications"`
	Pagination    PaginationInfo         `json:"pagination"`
}

// UnreadCountResponse reports a student's unread delivery count
type UnreadCountResponse struct {
	Unread int64 `json:"unread" example:"3"`
}
