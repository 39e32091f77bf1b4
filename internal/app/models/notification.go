package models

import (
	"time"
)

// Notification defines a broadcast message based on the 'notifications' table.
// RecipientCount is a denormalized snapshot taken at fan-out time; it is not
// kept in sync with later audience changes.
type Notification struct {
	ID                    int64     `json:"id" db:"id"`
	Title                 string    `json:"title" db:"title" example:"Acme drive on Friday"`
	Message               string    `json:"message" db:"message"`
	TargetAll             bool      `json:"targetAll" db:"target_all"`
	TargetYears           []int     `json:"targetYears,omitempty" db:"target_years"`
	TargetBranches        []string  `json:"targetBranches,omitempty" db:"target_branches"`
	TargetSections        []string  `json:"targetSections,omitempty" db:"target_sections"`
	TargetSpecializations []string  `json:"targetSpecializations,omitempty" db:"target_specializations"`
	RecipientCount        int       `json:"recipientCount" db:"recipient_count"`
	BatchKey              string    `json:"batchKey,omitempty" db:"batch_key"` // Caller idempotency key, unique when set
	CreatedBy             int64     `json:"createdBy" db:"created_by"`
	CreatedAt             time.Time `json:"createdAt" db:"created_at"`
}

// DeliveryStatus defines the per-recipient state of a notification
type DeliveryStatus string

const (
	DeliveryDelivered DeliveryStatus = "DELIVERED"
	DeliveryRead      DeliveryStatus = "READ"
)

// NotificationDelivery defines one per-student delivery record based on the
// 'notification_deliveries' table, unique per (notification, student).
type NotificationDelivery struct {
	ID             int64          `json:"id" db:"id"`
	NotificationID int64          `json:"notificationId" db:"notification_id"`
	StudentID      int64          `json:"studentId" db:"student_id"`
	Status         DeliveryStatus `json:"status" db:"status" example:"DELIVERED"`
	DeliveredAt    time.Time      `json:"deliveredAt" db:"delivered_at"`
	ReadAt         *time.Time     `json:"readAt,omitempty" db:"read_at"`

	// Relation (populated when listing a student's inbox)
	Notification *Notification `json:"notification,omitempty"`
}
