package dto

// LoginRequest starts the two-step login flow
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email" example:"student@college.edu"`
	Password string `json:"password" binding:"required" example:"s3cret!pass"`
}

// LoginResponse acknowledges that a one-time code was issued
type LoginResponse struct {
	Message   string `json:"message" example:"A verification code has been sent to your email"`
	ExpiresIn int    `json:"expiresIn" example:"600"` // Seconds until the code expires
}

// VerifyOTPRequest completes the login flow
type VerifyOTPRequest struct {
	Email string `json:"email" binding:"required,email" example:"student@college.edu"`
	Code  string `json:"code" binding:"required,len=6" example:"491203"`
}

// TokenResponse carries the issued token pair
type TokenResponse struct {
	AccessToken  string       `json:"accessToken" example:"eyJhbGciOiJIUzI1NiIs..."`
	RefreshToken string       `json:"refreshToken" example:"c2a9e1f0-..."`
	ExpiresIn    int          `json:"expiresIn" example:"3600"`
	User         UserResponse `json:"user"`
}

// RegisterStudentRequest creates a student account
type RegisterStudentRequest struct {
	Email      string `json:"email" binding:"required,email" example:"student@college.edu"`
	Password   string `json:"password" binding:"required,min=8" example:"s3cret!pass"`
	FirstName  string `json:"firstName" binding:"required" example:"Ravi"`
	LastName   string `json:"lastName" example:"Kumar"`
	RollNumber string `json:"rollNumber" binding:"required" example:"21CS042"`
}

// ForgotPasswordRequest starts the password reset flow
type ForgotPasswordRequest struct {
	Email string `json:"email" binding:"required,email" example:"student@college.edu"`
}

// ResetPasswordRequest completes the password reset flow
type ResetPasswordRequest struct {
	Email       string `json:"email" binding:"required,email" example:"student@college.edu"`
	Code        string `json:"code" binding:"required,len=6" example:"491203"`
	NewPassword string `json:"newPassword" binding:"required,min=8" example:"n3w!passw0rd"`
}

// UserResponse is the public view of an account
type UserResponse struct {
	ID        int64  `json:"id" example:"1"`
	Email     string `json:"email" example:"student@college.edu"`
	FirstName string `json:"firstName" example:"Ravi"`
	LastName  string `json:"lastName" example:"Kumar"`
	Role      string `json:"role" example:"STUDENT"`
	IsActive  bool   `json:"isActive" example:"true"`
}
