package storage

import (
	"context"
	"io"
)

// FileStorage abstracts the blob store backing document and receipt uploads.
// The HR system only persists metadata; bytes live behind this interface.
type FileStorage interface {
	// Upload stores a file and returns the file path/key
	Upload(ctx context.Context, file io.Reader, path string, contentType string) (string, error)

	// Download retrieves a file
	Download(ctx context.Context, path string) (io.ReadCloser, error)

	// Delete removes a file
	Delete(ctx context.Context, path string) error

	// URL returns the public URL for a stored path
	URL(path string) string

	// Exists checks if file exists
	Exists(ctx context.Context, path string) (bool, error)
}
