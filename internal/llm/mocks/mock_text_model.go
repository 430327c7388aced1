package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

type MockTextModel struct {
	mock.Mock
}

func (m *MockTextModel) Generate(ctx context.Context, prompt string) (string, error) {
	args := m.Called(ctx, prompt)
	return args.String(0), args.Error(1)
}
