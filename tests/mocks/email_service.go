package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

type EmailService struct {
	mock.Mock
}

func (m *EmailService) SendEmailVerification(ctx context.Context, toEmail, fullName, verificationToken string) error {
	args := m.Called(ctx, toEmail, fullName, verificationToken)
	return args.Error(0)
}

func (m *EmailService) SendPasswordResetEmail(ctx context.Context, toEmail, fullName, resetToken string) error {
	args := m.Called(ctx, toEmail, fullName, resetToken)
	return args.Error(0)
}
