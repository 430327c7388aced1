package mocks

import (
	"context"

	"sopclassify/internal/model"

	"github.com/stretchr/testify/mock"
)

type MockSopRepository struct {
	mock.Mock
}

func (m *MockSopRepository) Store(ctx context.Context, name string, content []byte) (*model.SopDocument, error) {
	args := m.Called(ctx, name, content)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.SopDocument), args.Error(1)
}

func (m *MockSopRepository) List(ctx context.Context) ([]model.SopFile, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.SopFile), args.Error(1)
}

func (m *MockSopRepository) ResolveLatest(ctx context.Context) (*model.SopDocument, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.SopDocument), args.Error(1)
}
