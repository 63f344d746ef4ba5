package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

type EmailService struct {
	mock.Mock
}

func (m *EmailService) SendWelcomeEmail(ctx context.Context, toEmail, fullName string) error {
	args := m.Called(ctx, toEmail, fullName)
	return args.Error(0)
}

func (m *EmailService) SendPasswordResetEmail(ctx context.Context, toEmail, fullName, resetToken string) error {
	args := m.Called(ctx, toEmail, fullName, resetToken)
	return args.Error(0)
}

func (m *EmailService) SendAccountActivatedEmail(ctx context.Context, toEmail, fullName string) error {
	args := m.Called(ctx, toEmail, fullName)
	return args.Error(0)
}

func (m *EmailService) SendReviewOutcomeEmail(ctx context.Context, toEmail, fullName, entityLabel, outcome string, note *string) error {
	args := m.Called(ctx, toEmail, fullName, entityLabel, outcome, note)
	return args.Error(0)
}

func (m *EmailService) SendImportSummaryEmail(ctx context.Context, toEmail, fullName string, total, created, duplicates, errors int64) error {
	args := m.Called(ctx, toEmail, fullName, total, created, duplicates, errors)
	return args.Error(0)
}
