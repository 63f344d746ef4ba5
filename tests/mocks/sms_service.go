package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

type SMSService struct {
	mock.Mock
}

func (m *SMSService) Send(ctx context.Context, phone, message string) error {
	args := m.Called(ctx, phone, message)
	return args.Error(0)
}
