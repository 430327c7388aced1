package mocks

import (
	"context"
	"io"

	"sopclassify/internal/model"

	"github.com/stretchr/testify/mock"
)

type MockClassificationService struct {
	mock.Mock
}

func (m *MockClassificationService) ClassifyText(ctx context.Context, featureText string) (*model.ClassificationResult, error) {
	args := m.Called(ctx, featureText)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ClassificationResult), args.Error(1)
}

func (m *MockClassificationService) ClassifyFile(ctx context.Context, r io.Reader, filename, contentType string) (*model.ClassificationResult, error) {
	args := m.Called(ctx, r, filename, contentType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ClassificationResult), args.Error(1)
}
