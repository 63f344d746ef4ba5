package email

import (
	"bytes"
	"context"
	"fmt"
	"html/template"

	"github.com/resend/resend-go/v3"

	"kabataan-backend/internal/config"
)

type Service interface {
	SendWelcomeEmail(ctx context.Context, toEmail, fullName string) error
	SendPasswordResetEmail(ctx context.Context, toEmail, fullName, resetToken string) error
	SendAccountActivatedEmail(ctx context.Context, toEmail, fullName string) error
	SendReviewOutcomeEmail(ctx context.Context, toEmail, fullName, entityLabel, outcome string, note *string) error
	SendImportSummaryEmail(ctx context.Context, toEmail, fullName string, total, created, duplicates, errors int64) error
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

func (s *service) sendEmail(toEmail, subject string, tmpl *template.Template, data interface{}) error {
	var body bytes.Buffer
	if err := tmpl.Execute(&body, data); err != nil {
		return fmt.Errorf("failed to execute email template: %w", err)
	}

	params := &resend.SendEmailRequest{
		From:    fmt.Sprintf("Kabataan Records <%s>", s.config.FromEmail),
		To:      []string{toEmail},
		Html:    body.String(),
		Subject: subject,
	}

	_, err := s.client.Emails.Send(params)
	return err
}

func (s *service) SendWelcomeEmail(ctx context.Context, toEmail, fullName string) error {
	data := struct {
		Name string
		Link string
	}{
		Name: fullName,
		Link: fmt.Sprintf("https://%s/login", s.config.Domain),
	}
	return s.sendEmail(toEmail, "Welcome to Kabataan Records", welcomeTmpl, data)
}

func (s *service) SendPasswordResetEmail(ctx context.Context, toEmail, fullName, resetToken string) error {
	data := struct {
		Name string
		Link string
	}{
		Name: fullName,
		Link: fmt.Sprintf("https://%s/reset-password?token=%s", s.config.Domain, resetToken),
	}
	return s.sendEmail(toEmail, "Password Reset Request - Kabataan Records", resetTmpl, data)
}

func (s *service) SendAccountActivatedEmail(ctx context.Context, toEmail, fullName string) error {
	data := struct {
		Name string
		Link string
	}{
		Name: fullName,
		Link: fmt.Sprintf("https://%s/login", s.config.Domain),
	}
	return s.sendEmail(toEmail, "Your Account Has Been Activated - Kabataan Records", activatedTmpl, data)
}

func (s *service) SendReviewOutcomeEmail(ctx context.Context, toEmail, fullName, entityLabel, outcome string, note *string) error {
	color := "#10b981"
	if outcome == "rejected" {
		color = "#ef4444"
	}

	noteText := ""
	if note != nil {
		noteText = *note
	}

	data := struct {
		Name        string
		EntityLabel string
		Outcome     string
		Note        string
		Color       string
	}{
		Name:        fullName,
		EntityLabel: entityLabel,
		Outcome:     outcome,
		Note:        noteText,
		Color:       color,
	}
	subject := fmt.Sprintf("Your %s has been %s - Kabataan Records", entityLabel, outcome)
	return s.sendEmail(toEmail, subject, reviewTmpl, data)
}

func (s *service) SendImportSummaryEmail(ctx context.Context, toEmail, fullName string, total, created, duplicates, errors int64) error {
	data := struct {
		Name       string
		Total      int64
		Created    int64
		Duplicates int64
		Errors     int64
	}{
		Name:       fullName,
		Total:      total,
		Created:    created,
		Duplicates: duplicates,
		Errors:     errors,
	}
	return s.sendEmail(toEmail, "Youth Profile Import Completed - Kabataan Records", importTmpl, data)
}
