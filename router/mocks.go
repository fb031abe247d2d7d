package router

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockResponder is a mock implementation of chat.Responder
type MockResponder struct {
	mock.Mock
}

func (m *MockResponder) Respond(ctx context.Context, input, mode, task string) (string, error) {
	args := m.Called(ctx, input, mode, task)
	return args.String(0), args.Error(1)
}
