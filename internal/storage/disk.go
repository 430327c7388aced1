package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// diskStore implements AuditStore on a local temp directory.
// File names are UUIDs so concurrent uploads never collide.
type diskStore struct {
	dir string
}

// NewDiskStore creates an AuditStore rooted at dir, creating the
// directory if missing.
func NewDiskStore(dir string) (AuditStore, error) {
	if dir == "" {
		return nil, fmt.Errorf("temp directory is required")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create temp directory: %w", err)
	}
	return &diskStore{dir: dir}, nil
}

func (s *diskStore) Save(ctx context.Context, originalName string, r io.Reader) (string, error) {
	if r == nil {
		return "", fmt.Errorf("reader is nil")
	}
	name := uuid.New().String() + filepath.Ext(originalName)
	path := filepath.Join(s.dir, name)

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create audit file: %w", err)
	}
	if _, err := io.Copy(f, r); err != nil {
		f.Close()
		return "", fmt.Errorf("write audit file: %w", err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("close audit file: %w", err)
	}
	return path, nil
}

func (s *diskStore) Clear(ctx context.Context, path string) error {
	if err := os.Truncate(path, 0); err != nil {
		return fmt.Errorf("clear audit file: %w", err)
	}
	return nil
}
