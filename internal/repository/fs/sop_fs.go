package fs

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"sopclassify/internal/model"
	"sopclassify/internal/repository"
)

const sopExt = ".txt"

// sopFS implements SopRepository on a local directory of .txt files.
// The directory is the backing store; modification time is the upload time.
// It holds no in-process state and is safe for concurrent use, with the
// caveat that writes are made visible atomically via rename.
type sopFS struct {
	dir string
}

// NewSopFS creates a filesystem-backed SOP repository rooted at dir.
// The directory is created on first use.
func NewSopFS(dir string) (repository.SopRepository, error) {
	if dir == "" {
		return nil, fmt.Errorf("sop directory is required")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create sop directory: %w", err)
	}
	return &sopFS{dir: dir}, nil
}

func (r *sopFS) Store(ctx context.Context, name string, content []byte) (*model.SopDocument, error) {
	if !strings.HasSuffix(strings.ToLower(name), sopExt) {
		return nil, repository.ErrInvalidFileType
	}
	// Strip any path components from the client-supplied name.
	name = filepath.Base(name)

	// Write to a temp file and rename so a concurrent ResolveLatest never
	// observes a partially-written document.
	tmp, err := os.CreateTemp(r.dir, ".upload-*")
	if err != nil {
		return nil, fmt.Errorf("create temp file: %w", err)
	}
	if _, err := tmp.Write(content); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return nil, fmt.Errorf("write sop content: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return nil, fmt.Errorf("close temp file: %w", err)
	}

	dst := filepath.Join(r.dir, name)
	if err := os.Rename(tmp.Name(), dst); err != nil {
		os.Remove(tmp.Name())
		return nil, fmt.Errorf("store sop: %w", err)
	}

	info, err := os.Stat(dst)
	if err != nil {
		return nil, fmt.Errorf("stat stored sop: %w", err)
	}
	return &model.SopDocument{
		Name:       name,
		Content:    string(content),
		UploadedAt: info.ModTime().UTC(),
	}, nil
}

func (r *sopFS) List(ctx context.Context) ([]model.SopFile, error) {
	names, err := r.sopNames()
	if err != nil {
		return nil, err
	}

	files := make([]model.SopFile, 0, len(names))
	for _, name := range names {
		info, err := os.Stat(filepath.Join(r.dir, name))
		if err != nil {
			// Removed between readdir and stat; skip.
			continue
		}
		files = append(files, model.SopFile{
			Name:       name,
			UploadedAt: info.ModTime().UTC(),
		})
	}

	// Newest first.
	sort.Slice(files, func(i, j int) bool {
		return files[i].UploadedAt.After(files[j].UploadedAt)
	})
	return files, nil
}

func (r *sopFS) ResolveLatest(ctx context.Context) (*model.SopDocument, error) {
	names, err := r.sopNames()
	if err != nil {
		return nil, err
	}
	if len(names) == 0 {
		return nil, repository.ErrNoSop
	}

	latest := ""
	var latestInfo os.FileInfo
	for _, name := range names {
		info, err := os.Stat(filepath.Join(r.dir, name))
		if err != nil {
			continue
		}
		if latestInfo == nil || info.ModTime().After(latestInfo.ModTime()) {
			latest = name
			latestInfo = info
		}
	}
	if latestInfo == nil {
		return nil, repository.ErrNoSop
	}

	content, err := os.ReadFile(filepath.Join(r.dir, latest))
	if err != nil {
		return nil, fmt.Errorf("read sop %q: %w", latest, err)
	}
	return &model.SopDocument{
		Name:       latest,
		Content:    string(content),
		UploadedAt: latestInfo.ModTime().UTC(),
	}, nil
}

// sopNames lists the .txt entries in the repository directory. A missing
// directory counts as an empty repository, not an error.
func (r *sopFS) sopNames() ([]string, error) {
	entries, err := os.ReadDir(r.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read sop directory: %w", err)
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if strings.HasSuffix(strings.ToLower(e.Name()), sopExt) {
			names = append(names, e.Name())
		}
	}
	return names, nil
}
