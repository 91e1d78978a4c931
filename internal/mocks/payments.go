package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// PaymentProvider is a testify mock of service.PaymentProvider.
type PaymentProvider struct {
	mock.Mock
}

func (m *PaymentProvider) CreatePaymentIntent(ctx context.Context, amount int64, customerID string) (string, error) {
	args := m.Called(ctx, amount, customerID)
	return args.String(0), args.Error(1)
}
