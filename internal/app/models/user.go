package models

import (
	"time"
)

// RoleType defines the user role type
type RoleType string

const (
	RoleAdmin   RoleType = "ADMIN"
	RoleOfficer RoleType = "OFFICER"
	RoleStudent RoleType = "STUDENT"
)

// User defines the account model based on the 'users' table
type User struct {
	ID          int64      `json:"id" db:"id" example:"1"`                                                  // Unique identifier for the user
	Email       string     `json:"email" db:"email" example:"officer@college.edu"`                          // User's email address (unique)
	Password    string     `json:"-" db:"password"`                                                         // User's hashed password (excluded from JSON)
	FirstName   string     `json:"firstName" db:"first_name" example:"Anita"`                               // User's first name
	LastName    string     `json:"lastName" db:"last_name" example:"Rao"`                                   // User's last name
	Role        RoleType   `json:"role" db:"role" example:"STUDENT"`                                        // User's role (ADMIN, OFFICER or STUDENT)
	IsActive    bool       `json:"isActive" db:"is_active" example:"true"`                                  // Whether the user account is active
	LastLoginAt *time.Time `json:"lastLoginAt,omitempty" db:"last_login_at" example:"2025-04-20T18:00:00Z"` // Timestamp of the last login (nullable)
	CreatedAt   time.Time  `json:"createdAt" db:"created_at" example:"2025-01-01T10:00:00Z"`                // Timestamp when the user was created
	UpdatedAt   time.Time  `json:"updatedAt" db:"updated_at" example:"2025-01-02T15:30:00Z"`                // Timestamp when the user was last updated
}

// OTPPurpose distinguishes login codes from password-reset codes
type OTPPurpose string

const (
	OTPPurposeLogin         OTPPurpose = "LOGIN"
	OTPPurposePasswordReset OTPPurpose = "PASSWORD_RESET"
)

// OTPCode defines a stored one-time code based on the 'otp_codes' table.
// At most one live code exists per (user, purpose); issuing a new code
// replaces the previous one, and successful verification deletes it.
type OTPCode struct {
	ID        int64      `json:"id" db:"id"`
	UserID    int64      `json:"userId" db:"user_id"`
	Purpose   OTPPurpose `json:"purpose" db:"purpose"`
	Code      string     `json:"-" db:"code"`
	ExpiresAt time.Time  `json:"expiresAt" db:"expires_at"`
	CreatedAt time.Time  `json:"createdAt" db:"created_at"`
}
