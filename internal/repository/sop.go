package repository

// Package repository contains data access layer abstractions.
// Implementations live in subpackages (e.g., fs) inside this directory.

import (
	"context"
	"errors"

	"sopclassify/internal/model"
)

var (
	// ErrInvalidFileType is returned when a document name does not carry
	// the recognized .txt extension.
	ErrInvalidFileType = errors.New("only .txt files are supported")

	// ErrNoSop is returned by ResolveLatest when the repository holds
	// zero SOP documents.
	ErrNoSop = errors.New("no SOP .txt file found")
)

// SopRepository manages the store of uploaded SOP text documents.
// No business logic here — strictly document persistence and lookup.
type SopRepository interface {
	// Store saves content under the given name, overwriting silently if
	// the name already exists. Names without a .txt extension are
	// rejected with ErrInvalidFileType before anything is written.
	Store(ctx context.Context, name string, content []byte) (*model.SopDocument, error)

	// List returns all stored SOP documents sorted by upload time,
	// newest first. An empty repository yields an empty slice, not an error.
	List(ctx context.Context) ([]model.SopFile, error)

	// ResolveLatest returns the most recently modified SOP document with
	// its full content, or ErrNoSop when the repository is empty.
	// Documents with identical modification times are tie-broken
	// arbitrarily (first encountered wins); callers must not rely on the
	// ordering of same-instant uploads.
	ResolveLatest(ctx context.Context) (*model.SopDocument, error)
}
