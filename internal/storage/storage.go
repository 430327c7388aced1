package storage

import (
	"context"
	"io"
)

// Package storage holds the audit store for in-flight classification
// uploads: raw uploaded bytes are kept on disk for audit/debug while a
// classification runs, and cleared once the request succeeds.

// AuditStore persists uploaded classification inputs to a temporary
// location.
type AuditStore interface {
	// Save writes the reader's bytes to a fresh file whose name keeps the
	// extension of originalName, and returns the file's path.
	Save(ctx context.Context, originalName string, r io.Reader) (string, error)

	// Clear truncates the file at path to zero bytes. The file entry
	// itself is kept so the upload remains traceable.
	Clear(ctx context.Context, path string) error
}
