// Package mocks provides testify mocks for the service interfaces.
package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/wil-ckaew/contas-api/internal/models"
	"github.com/wil-ckaew/contas-api/internal/repository"
	"github.com/wil-ckaew/contas-api/internal/service"
)

// MockAccounts is a testify mock of service.Accounts.
type MockAccounts struct {
	mock.Mock
}

var _ service.Accounts = (*MockAccounts)(nil)

// NewMockAccounts creates a mock that fails the test on unexpected
// calls and asserts expectations on cleanup.
func NewMockAccounts(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockAccounts {
	m := &MockAccounts{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockAccounts) Create(ctx context.Context, input service.CreateAccountInput) (*models.Account, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Account), args.Error(1)
}

func (m *MockAccounts) List(ctx context.Context, input service.ListAccountsInput) ([]models.Account, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Account), args.Error(1)
}

func (m *MockAccounts) Get(ctx context.Context, id uuid.UUID) (*models.Account, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Account), args.Error(1)
}

func (m *MockAccounts) Update(ctx context.Context, id uuid.UUID, patch repository.UpdateAccountParams) (*models.Account, error) {
	args := m.Called(ctx, id, patch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Account), args.Error(1)
}

func (m *MockAccounts) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockAccounts) PredictPayment(ctx context.Context, id uuid.UUID) (*service.PaymentPrediction, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.PaymentPrediction), args.Error(1)
}

func (m *MockAccounts) PendingReminders(ctx context.Context) ([]models.Account, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Account), args.Error(1)
}
