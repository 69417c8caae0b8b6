package email

import (
	"bytes"
	"context"
	"fmt"
	"html/template"

	"github.com/resend/resend-go/v3"

	"lokalpro/internal/config"
)

type Service interface {
	SendEmailVerification(ctx context.Context, toEmail, fullName, verificationToken string) error
	SendPasswordResetEmail(ctx context.Context, toEmail, fullName, resetToken string) error
}

type service struct {
	client *resend.Client
	config *config.Config
}

func NewService(cfg *config.Config) Service {
	return &service{
		client: resend.NewClient(cfg.ResendAPIKey),
		config: cfg,
	}
}

var mailTemplate = template.Must(template.New("mail").Parse(`
<!DOCTYPE html>
<html>
<body style="font-family: sans-serif; color: #1f2937;">
	<h2>{{.Title}}</h2>
	<p>Hi {{.Name}},</p>
	<p>{{.Body}}</p>
	<p><a href="{{.Link}}" style="color: #2563eb;">{{.LinkText}}</a></p>
	<p style="color: #6b7280; font-size: 12px;">If you did not request this, you can ignore this email.</p>
</body>
</html>`))

type mailData struct {
	Title    string
	Name     string
	Body     string
	Link     string
	LinkText string
}

func (s *service) sendEmail(toEmail, subject string, data mailData) error {
	var body bytes.Buffer
	if err := mailTemplate.Execute(&body, data); err != nil {
		return fmt.Errorf("failed to render email template: %w", err)
	}

	params := &resend.SendEmailRequest{
		From:    fmt.Sprintf("LokalPro <%s>", s.config.FromEmail),
		To:      []string{toEmail},
		Html:    body.String(),
		Subject: subject,
	}

	_, err := s.client.Emails.Send(params)
	return err
}

func (s *service) SendEmailVerification(ctx context.Context, toEmail, fullName, verificationToken string) error {
	return s.sendEmail(toEmail, "Verify your email - LokalPro", mailData{
		Title:    "Verify your email",
		Name:     fullName,
		Body:     "Welcome to LokalPro! Please confirm your email address to activate your account.",
		Link:     fmt.Sprintf("https://%s/verify-email?token=%s", s.config.Domain, verificationToken),
		LinkText: "Verify email",
	})
}

func (s *service) SendPasswordResetEmail(ctx context.Context, toEmail, fullName, resetToken string) error {
	return s.sendEmail(toEmail, "Reset your password - LokalPro", mailData{
		Title:    "Reset your password",
		Name:     fullName,
		Body:     "We received a request to reset your password. The link below is valid for one hour.",
		Link:     fmt.Sprintf("https://%s/reset-password?token=%s", s.config.Domain, resetToken),
		LinkText: "Reset password",
	})
}
