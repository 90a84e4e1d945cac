// Package media defines the storage port for uploaded image files.
// Entities reference files by stored filename only; resolving a
// filename to a public URL is the storage backend's job.
package media

import (
	"context"
	"io"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// Storage is implemented by the infrastructure layer (local
// filesystem, S3)
type Storage interface {
	// Save persists an uploaded file and returns the stored filename
	Save(ctx context.Context, originalName string, content io.Reader) (string, error)

	// Delete removes a stored file. A file already gone is not an error.
	Delete(ctx context.Context, storedName string) error

	// Exists checks whether a stored file is present
	Exists(ctx context.Context, storedName string) (bool, error)

	// URL resolves a stored filename to its public URL
	URL(storedName string) string
}

// File is an uploaded file handed from the HTTP boundary to a service
type File struct {
	OriginalName string
	Size         int64
	Content      io.Reader
}

// StoredName derives a collision-free filename for an upload, keeping
// the original extension so the media store stays browsable
func StoredName(originalName string) string {
	ext := strings.ToLower(filepath.Ext(originalName))
	return uuid.New().String() + ext
}
