package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime"
	"os"
	"strings"
	"unicode/utf8"

	"sopclassify/internal/classify"
	"sopclassify/internal/llm"
	"sopclassify/internal/model"
	"sopclassify/internal/repository"
	"sopclassify/internal/storage"
)

var (
	// ErrUnsupportedMediaType is returned when a file classification
	// declares anything other than plain text.
	ErrUnsupportedMediaType = errors.New("invalid file type, only TXT files are allowed")

	// ErrNotUTF8 is returned when uploaded file bytes do not decode as
	// UTF-8 text.
	ErrNotUTF8 = errors.New("file content is not valid UTF-8 text")
)

// ClassificationService runs the SOP-grounded classification pipeline:
// latest SOP -> prompt -> model call -> JSON recovery. Each call is
// independent and stateless apart from reading the repository; identical
// concurrent requests produce independent model calls.
type ClassificationService interface {
	// ClassifyText classifies a pasted feature description.
	ClassifyText(ctx context.Context, featureText string) (*model.ClassificationResult, error)

	// ClassifyFile classifies an uploaded text file. The raw bytes are
	// kept in the audit store while the request runs and cleared (not
	// removed) after a successful result.
	ClassifyFile(ctx context.Context, r io.Reader, filename, contentType string) (*model.ClassificationResult, error)
}

type classificationService struct {
	repo      repository.SopRepository
	modelAPI  llm.TextModel
	extractor classify.ResponseExtractor
	audit     storage.AuditStore
}

// NewClassificationService constructs the pipeline. A nil extractor
// defaults to the greedy brace-matching one.
func NewClassificationService(repo repository.SopRepository, modelAPI llm.TextModel, extractor classify.ResponseExtractor, audit storage.AuditStore) ClassificationService {
	if extractor == nil {
		extractor = classify.GreedyExtractor{}
	}
	return &classificationService{
		repo:      repo,
		modelAPI:  modelAPI,
		extractor: extractor,
		audit:     audit,
	}
}

func (s *classificationService) ClassifyText(ctx context.Context, featureText string) (*model.ClassificationResult, error) {
	sop, err := s.repo.ResolveLatest(ctx)
	if err != nil {
		return nil, err
	}

	prompt := classify.BuildPrompt(sop.Content, featureText)

	raw, err := s.modelAPI.Generate(ctx, prompt)
	if err != nil {
		return nil, err
	}

	return s.extractor.Extract(raw)
}

func (s *classificationService) ClassifyFile(ctx context.Context, r io.Reader, filename, contentType string) (*model.ClassificationResult, error) {
	if !isPlainText(contentType) {
		return nil, ErrUnsupportedMediaType
	}

	// Keep the raw upload on disk for audit/debug while the request runs.
	path, err := s.audit.Save(ctx, filename, r)
	if err != nil {
		return nil, fmt.Errorf("save upload: %w", err)
	}

	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read upload: %w", err)
	}
	if !utf8.Valid(b) {
		return nil, ErrNotUTF8
	}

	result, err := s.ClassifyText(ctx, string(b))
	if err != nil {
		return nil, err
	}

	// Clear the audit copy after success. The file entry stays behind;
	// only its contents go.
	if err := s.audit.Clear(ctx, path); err != nil {
		return nil, fmt.Errorf("clear upload: %w", err)
	}
	return result, nil
}

// isPlainText accepts text/plain with optional parameters (charset etc.).
func isPlainText(contentType string) bool {
	mt, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return false
	}
	return strings.EqualFold(mt, "text/plain")
}
