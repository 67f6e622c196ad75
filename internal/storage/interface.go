package storage

import (
	"context"
	"io"
)

// Storage is the object-storage contract for payment screenshots.
// Upload stores the file under key and returns its public URL; PublicURL
// builds the URL for an existing key without touching the backend.
type Storage interface {
	Upload(ctx context.Context, key string, reader io.Reader) (string, error)
	PublicURL(key string) string

	// Open reads a stored file back (used by the HTTP file-serving route).
	Open(key string) (io.ReadCloser, error)

	// Delete removes a file from storage.
	Delete(ctx context.Context, key string) error
}
