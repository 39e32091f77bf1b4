package services

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/sanjith/placementcell/internal/app/models"
	"github.com/sanjith/placementcell/internal/app/models/dto"
	"github.com/sanjith/placementcell/internal/app/repositories"
	"github.com/sanjith/placementcell/internal/pkg/apperrors"
	"github.com/sanjith/placementcell/internal/pkg/auth"
	"github.com/sanjith/placementcell/internal/pkg/email"
)

// AuthService handles authentication operations. Login is a two-step flow:
// password check first, then a one-time code sent by email. Code verification
// failures are deliberately uniform so callers cannot distinguish a wrong
// code from an expired one.
type AuthService struct {
	userRepo    *repositories.UserRepository
	studentRepo *repositories.StudentRepository
	jwtService  *auth.JWTService
	emailSvc    email.EmailService
	logger      zerolog.Logger
}

// NewAuthService creates a new AuthService
func NewAuthService(
	userRepo *repositories.UserRepository,
	studentRepo *repositories.StudentRepository,
	jwtService *auth.JWTService,
	emailSvc email.EmailService,
	logger zerolog.Logger,
) *AuthService {
	return &AuthService{
		userRepo:    userRepo,
		studentRepo: studentRepo,
		jwtService:  jwtService,
		emailSvc:    emailSvc,
		logger:      logger,
	}
}

// RegisterStudent creates a student account with its empty student record
func (s *AuthService) RegisterStudent(ctx context.Context, req *dto.RegisterStudentRequest) (*dto.UserResponse, error) {
	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Email:     req.Email,
		Password:  hash,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Role:      models.RoleStudent,
		IsActive:  true,
	}
	if _, err := s.userRepo.CreateUser(ctx, user); err != nil {
		return nil, err
	}

	student := &models.Student{
		UserID:         user.ID,
		RollNumber:     req.RollNumber,
		OnboardingStep: models.OnboardingPersonal,
	}
	if err := s.studentRepo.CreateStudent(ctx, student); err != nil {
		// The account exists but the student record failed; disable the
		// account so a half-registered login cannot proceed.
		if deactivateErr := s.userRepo.SetActive(ctx, user.ID, false); deactivateErr != nil {
			s.logger.Error().Err(deactivateErr).Int64("userID", user.ID).Msg("Failed to deactivate user after student creation failure")
		}
		return nil, err
	}

	s.logger.Info().Int64("userID", user.ID).Str("rollNumber", req.RollNumber).Msg("Student registered")
	resp := toUserResponse(user)
	return &resp, nil
}

// Login checks credentials and, when they hold, issues a login code by email.
// Wrong email and wrong password are indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := s.userRepo.GetUserByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, err
	}
	if !user.IsActive {
		return nil, apperrors.ErrAccountDisabled
	}
	if !auth.CheckPassword(user.Password, req.Password) {
		return nil, apperrors.ErrInvalidCredentials
	}

	if err := s.issueOTP(ctx, user, models.OTPPurposeLogin); err != nil {
		return nil, err
	}

	return &dto.LoginResponse{
		Message:   "A verification code has been sent to your email",
		ExpiresIn: int(auth.OTPTTL.Seconds()),
	}, nil
}

// VerifyOTP completes the login flow and issues a token pair. The stored code
// is single use: it is deleted only after a successful match.
func (s *AuthService) VerifyOTP(ctx context.Context, req *dto.VerifyOTPRequest) (*dto.TokenResponse, error) {
	user, err := s.userRepo.GetUserByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, err
	}
	if !user.IsActive {
		return nil, apperrors.ErrAccountDisabled
	}

	if err := s.consumeOTP(ctx, user.ID, models.OTPPurposeLogin, req.Code); err != nil {
		return nil, err
	}

	if err := s.userRepo.UpdateLastLogin(ctx, user.ID); err != nil {
		s.logger.Warn().Err(err).Int64("userID", user.ID).Msg("Failed to record last login")
	}

	accessToken, refreshToken, expiresIn, err := s.jwtService.GenerateTokenPair(user.ID, user.Email, string(user.Role))
	if err != nil {
		return nil, err
	}

	return &dto.TokenResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresIn:    expiresIn,
		User:         toUserResponse(user),
	}, nil
}

// ForgotPassword issues a reset code when the account exists. It reports
// success either way so the endpoint does not leak which emails are
// registered.
func (s *AuthService) ForgotPassword(ctx context.Context, req *dto.ForgotPasswordRequest) error {
	user, err := s.userRepo.GetUserByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			s.logger.Debug().Str("email", req.Email).Msg("Password reset requested for unknown email")
			return nil
		}
		return err
	}
	if !user.IsActive {
		return nil
	}
	return s.issueOTP(ctx, user, models.OTPPurposePasswordReset)
}

// ResetPassword completes the reset flow
func (s *AuthService) ResetPassword(ctx context.Context, req *dto.ResetPasswordRequest) error {
	user, err := s.userRepo.GetUserByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return apperrors.ErrInvalidCredentials
		}
		return err
	}

	if err := s.consumeOTP(ctx, user.ID, models.OTPPurposePasswordReset, req.Code); err != nil {
		return err
	}

	hash, err := auth.HashPassword(req.NewPassword)
	if err != nil {
		return err
	}
	if err := s.userRepo.UpdatePassword(ctx, user.ID, hash); err != nil {
		return err
	}

	s.logger.Info().Int64("userID", user.ID).Msg("Password reset completed")
	return nil
}

// issueOTP generates, stores and emails a one-time code. Issuing replaces any
// live code for the same purpose.
func (s *AuthService) issueOTP(ctx context.Context, user *models.User, purpose models.OTPPurpose) error {
	code, err := auth.GenerateOTP()
	if err != nil {
		return err
	}

	now := time.Now()
	// Opportunistic cleanup: stale codes accumulate only as fast as codes are
	// issued, so sweeping here keeps the table bounded without a scheduler.
	if n, err := s.userRepo.DeleteExpiredOTPs(ctx, now); err != nil {
		s.logger.Warn().Err(err).Msg("Failed to clear expired one-time codes")
	} else if n > 0 {
		s.logger.Debug().Int64("count", n).Msg("Cleared expired one-time codes")
	}

	otp := &models.OTPCode{
		UserID:    user.ID,
		Purpose:   purpose,
		Code:      code,
		ExpiresAt: auth.OTPExpiry(now),
	}
	if err := s.userRepo.UpsertOTP(ctx, otp); err != nil {
		return err
	}

	switch purpose {
	case models.OTPPurposePasswordReset:
		err = s.emailSvc.SendPasswordResetOTP(user.Email, user.FirstName, code)
	default:
		err = s.emailSvc.SendLoginOTP(user.Email, user.FirstName, code)
	}
	if err != nil {
		s.logger.Error().Err(err).Int64("userID", user.ID).Str("purpose", string(purpose)).Msg("Failed to send one-time code email")
		return err
	}
	return nil
}

// consumeOTP verifies a submitted code and deletes it on success. Every
// failure path returns the same error.
func (s *AuthService) consumeOTP(ctx context.Context, userID int64, purpose models.OTPPurpose, submitted string) error {
	stored, err := s.userRepo.GetOTP(ctx, userID, purpose)
	if err != nil {
		if errors.Is(err, apperrors.ErrResourceNotFound) {
			return apperrors.ErrInvalidCredentials
		}
		return err
	}

	if !auth.VerifyOTP(submitted, stored.Code, stored.ExpiresAt, time.Now()) {
		return apperrors.ErrInvalidCredentials
	}

	return s.userRepo.DeleteOTP(ctx, userID, purpose)
}

func toUserResponse(user *models.User) dto.UserResponse {
	return dto.UserResponse{
		ID:        user.ID,
		Email:     user.Email,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Role:      string(user.Role),
		IsActive:  user.IsActive,
	}
}
