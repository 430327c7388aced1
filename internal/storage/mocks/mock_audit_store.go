package mocks

import (
	"context"
	"io"

	"github.com/stretchr/testify/mock"
)

type MockAuditStore struct {
	mock.Mock
}

func (m *MockAuditStore) Save(ctx context.Context, originalName string, r io.Reader) (string, error) {
	args := m.Called(ctx, originalName, r)
	return args.String(0), args.Error(1)
}

func (m *MockAuditStore) Clear(ctx context.Context, path string) error {
	args := m.Called(ctx, path)
	return args.Error(0)
}
