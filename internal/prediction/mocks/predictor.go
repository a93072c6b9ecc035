// Package mocks provides a testify mock for the prediction client.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
	"github.com/wil-ckaew/contas-api/internal/prediction"
)

// MockPredictor is a testify mock of prediction.Predictor.
type MockPredictor struct {
	mock.Mock
}

var _ prediction.Predictor = (*MockPredictor)(nil)

// NewMockPredictor creates a mock that fails the test on unexpected
// calls and asserts expectations on cleanup.
func NewMockPredictor(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockPredictor {
	m := &MockPredictor{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockPredictor) Predict(ctx context.Context, value float64, dueDate string) (string, error) {
	args := m.Called(ctx, value, dueDate)
	return args.String(0), args.Error(1)
}
