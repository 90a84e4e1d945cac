// Package storage provides media store implementations for uploaded files.
package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/bhslighting/backend/internal/application/media"
)

// Ensure LocalStorage implements media.Storage
var _ media.Storage = (*LocalStorage)(nil)

// LocalStorage stores uploaded files on the local filesystem. Stored
// filenames never contain path separators, so a stored name can be
// joined to the base directory safely.
type LocalStorage struct {
	dir     string
	baseURL string
}

// NewLocalStorage creates a LocalStorage rooted at dir, creating the
// directory if needed. baseURL prefixes stored names in public URLs.
func NewLocalStorage(dir, baseURL string) (*LocalStorage, error) {
	if dir == "" {
		return nil, errors.New("storage directory is required")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create storage directory: %w", err)
	}
	return &LocalStorage{
		dir:     dir,
		baseURL: strings.TrimRight(baseURL, "/"),
	}, nil
}

// Save writes the upload under a freshly derived filename
func (s *LocalStorage) Save(ctx context.Context, originalName string, content io.Reader) (string, error) {
	storedName := media.StoredName(originalName)

	f, err := os.OpenFile(filepath.Join(s.dir, storedName), os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return "", fmt.Errorf("failed to create file: %w", err)
	}

	if _, err := io.Copy(f, content); err != nil {
		f.Close()
		os.Remove(f.Name())
		return "", fmt.Errorf("failed to write file: %w", err)
	}

	if err := f.Close(); err != nil {
		return "", fmt.Errorf("failed to close file: %w", err)
	}

	return storedName, nil
}

// Delete removes a stored file. A file already gone is not an error.
func (s *LocalStorage) Delete(ctx context.Context, storedName string) error {
	if storedName == "" {
		return nil
	}
	if err := os.Remove(filepath.Join(s.dir, filepath.Base(storedName))); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete file: %w", err)
	}
	return nil
}

// Exists checks whether a stored file is present
func (s *LocalStorage) Exists(ctx context.Context, storedName string) (bool, error) {
	_, err := os.Stat(filepath.Join(s.dir, filepath.Base(storedName)))
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// URL resolves a stored filename to its public URL
func (s *LocalStorage) URL(storedName string) string {
	if storedName == "" {
		return ""
	}
	return s.baseURL + "/" + storedName
}

// Dir returns the directory uploads live in, for static file serving
func (s *LocalStorage) Dir() string {
	return s.dir
}
