package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// LocalStorage implements Storage on the local filesystem. Files land under
// a configured directory and are served back by the HTTP file route, so a
// single server deployment needs no cloud bucket.
type LocalStorage struct {
	baseURL   string // Server URL (e.g., "http://localhost:8080")
	uploadDir string // Local directory for uploads (e.g., "./uploads")
}

// NewLocalStorage creates the upload directory if needed.
func NewLocalStorage(baseURL, uploadDir string) (*LocalStorage, error) {
	if err := os.MkdirAll(uploadDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory: %w", err)
	}
	return &LocalStorage{
		baseURL:   strings.TrimRight(baseURL, "/"),
		uploadDir: uploadDir,
	}, nil
}

func (s *LocalStorage) Upload(ctx context.Context, key string, reader io.Reader) (string, error) {
	fullPath := filepath.Join(s.uploadDir, filepath.FromSlash(key))

	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return "", fmt.Errorf("failed to create directories: %w", err)
	}

	file, err := os.Create(fullPath)
	if err != nil {
		return "", fmt.Errorf("failed to create file: %w", err)
	}
	defer file.Close()

	if _, err := io.Copy(file, reader); err != nil {
		return "", fmt.Errorf("failed to write file: %w", err)
	}

	return s.PublicURL(key), nil
}

func (s *LocalStorage) PublicURL(key string) string {
	return fmt.Sprintf("%s/files/%s", s.baseURL, key)
}

func (s *LocalStorage) Open(key string) (io.ReadCloser, error) {
	fullPath := filepath.Join(s.uploadDir, filepath.FromSlash(key))

	file, err := os.Open(fullPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	return file, nil
}

func (s *LocalStorage) Delete(ctx context.Context, key string) error {
	fullPath := filepath.Join(s.uploadDir, filepath.FromSlash(key))

	err := os.Remove(fullPath)
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete file: %w", err)
	}
	return nil
}
