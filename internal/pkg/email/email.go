package email

import (
	"crypto/tls"
	"fmt"
	"net/smtp"
	"strconv"

	"github.com/rs/zerolog"
)

// EmailService defines the interface for email operations. The rule engine
// only computes audiences and codes; this collaborator owns transport.
type EmailService interface {
	SendLoginOTP(toEmail, toName, code string) error
	SendPasswordResetOTP(toEmail, toName, code string) error
	SendNotificationEmail(toEmail, toName, title, message string) error
}

// SMTPConfig holds configuration for the SMTP server
type SMTPConfig struct {
	Host      string
	Port      int
	Username  string
	Password  string
	FromName  string
	FromEmail string
	UseTLS    bool
}

// EmailServiceImpl implements EmailService over net/smtp
type EmailServiceImpl struct {
	config SMTPConfig
	logger zerolog.Logger
}

// NewEmailService creates a new EmailService
func NewEmailService(config SMTPConfig, logger zerolog.Logger) EmailService {
	return &EmailServiceImpl{
		config: config,
		logger: logger,
	}
}

// devFallback logs the message instead of sending when SMTP credentials are
// not configured, so the flows stay testable in development.
func (s *EmailServiceImpl) devFallback(toEmail, subject, detail string) bool {
	if s.config.Username != "" && s.config.Password != "" {
		return false
	}
	s.logger.Warn().
		Str("toEmail", toEmail).
		Str("subject", subject).
		Str("detail", detail).
		Msg("SMTP credentials not configured - email not sent. Use the detail above for testing.")
	return true
}

// SendLoginOTP emails a login one-time code
func (s *EmailServiceImpl) SendLoginOTP(toEmail, toName, code string) error {
	subject := "Your Placement Cell Login Code"
	if s.devFallback(toEmail, subject, "code: "+code) {
		return nil
	}

	body := fmt.Sprintf(`
		<html>
		<body>
			<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
				<h2 style="color: #333;">Placement Cell Login</h2>
				<p>Hello %s,</p>
				<p>Your one-time login code is:</p>
				<p style="font-size: 28px; letter-spacing: 6px; font-weight: bold;">%s</p>
				<p>This code expires in 10 minutes. If you did not try to log in, you can ignore this email.</p>
				<p>Best regards,<br>The Placement Cell Team</p>
			</div>
		</body>
		</html>
	`, toName, code)

	return s.sendHTMLEmail(toEmail, subject, body)
}

// SendPasswordResetOTP emails a password reset one-time code
func (s *EmailServiceImpl) SendPasswordResetOTP(toEmail, toName, code string) error {
	subject := "Reset Your Placement Cell Password"
	if s.devFallback(toEmail, subject, "code: "+code) {
		return nil
	}

	body := fmt.Sprintf(`
		<html>
		<body>
			<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
				<h2 style="color: #333;">Password Reset</h2>
				<p>Hello %s,</p>
				<p>We received a request to reset your password. Use this code to continue:</p>
				<p style="font-size: 28px; letter-spacing: 6px; font-weight: bold;">%s</p>
				<p>This code expires in 10 minutes. If you did not request a reset, please ignore this email.</p>
				<p>Best regards,<br>The Placement Cell Team</p>
			</div>
		</body>
		</html>
	`, toName, code)

	return s.sendHTMLEmail(toEmail, subject, body)
}

// SendNotificationEmail emails a broadcast notification to one recipient
func (s *EmailServiceImpl) SendNotificationEmail(toEmail, toName, title, message string) error {
	subject := title + " - Placement Cell"
	if s.devFallback(toEmail, subject, "notification: "+title) {
		return nil
	}

	body := fmt.Sprintf(`
		<html>
		<body>
			<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
				<h2 style="color: #333;">%s</h2>
				<p>Hello %s,</p>
				<p>%s</p>
				<p>Best regards,<br>The Placement Cell Team</p>
			</div>
		</body>
		</html>
	`, title, toName, message)

	return s.sendHTMLEmail(toEmail, subject, body)
}

// sendHTMLEmail sends an HTML email
func (s *EmailServiceImpl) sendHTMLEmail(toEmail, subject, htmlBody string) error {
	auth := smtp.PlainAuth(
		"",
		s.config.Username,
		s.config.Password,
		s.config.Host,
	)

	headers := make(map[string]string)
	headers["From"] = fmt.Sprintf("%s <%s>", s.config.FromName, s.config.FromEmail)
	headers["To"] = toEmail
	headers["Subject"] = subject
	headers["MIME-Version"] = "1.0"
	headers["Content-Type"] = "text/html; charset=UTF-8"

	message := ""
	for key, value := range headers {
		message += fmt.Sprintf("%s: %s\r\n", key, value)
	}
	message += "\r\n" + htmlBody

	serverAddress := s.config.Host + ":" + strconv.Itoa(s.config.Port)

	if s.config.UseTLS {
		return s.sendWithTLS(serverAddress, auth, toEmail, []byte(message))
	}

	if err := smtp.SendMail(serverAddress, auth, s.config.FromEmail, []string{toEmail}, []byte(message)); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}

// sendWithTLS sends a message over an explicit TLS connection
func (s *EmailServiceImpl) sendWithTLS(serverAddress string, auth smtp.Auth, toEmail string, message []byte) error {
	tlsConfig := &tls.Config{
		ServerName: s.config.Host,
	}

	conn, err := tls.Dial("tcp", serverAddress, tlsConfig)
	if err != nil {
		return fmt.Errorf("failed to establish TLS connection: %w", err)
	}
	defer conn.Close()

	client, err := smtp.NewClient(conn, s.config.Host)
	if err != nil {
		return fmt.Errorf("failed to create SMTP client: %w", err)
	}
	defer client.Quit()

	if err := client.Auth(auth); err != nil {
		return fmt.Errorf("SMTP authentication failed: %w", err)
	}
	if err := client.Mail(s.config.FromEmail); err != nil {
		return fmt.Errorf("failed to set sender: %w", err)
	}
	if err := client.Rcpt(toEmail); err != nil {
		return fmt.Errorf("failed to set recipient: %w", err)
	}

	writer, err := client.Data()
	if err != nil {
		return fmt.Errorf("failed to open message writer: %w", err)
	}
	if _, err := writer.Write(message); err != nil {
		return fmt.Errorf("failed to write message: %w", err)
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("failed to finalize message: %w", err)
	}

	return nil
}
