package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"voicebrief/internal/app/util/files"
)

// LocalStore writes uploads into a directory on local disk.
type LocalStore struct {
	dir      string
	maxBytes int64
}

// NewLocalStore creates the upload directory if absent.
func NewLocalStore(dir string, maxBytes int64) (*LocalStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory: %w", err)
	}
	return &LocalStore{dir: dir, maxBytes: maxBytes}, nil
}

// Save sanitizes the filename, prefixes it with a uuid and writes the
// content. Files larger than the configured limit are rejected.
func (s *LocalStore) Save(ctx context.Context, r io.Reader, filename string, username string) (*SavedFile, error) {
	name := files.SanitizeFilename(filename)
	storedName := fmt.Sprintf("%s_%s", uuid.New().String(), name)
	path := filepath.Join(s.dir, storedName)

	dst, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("failed to create upload file: %w", err)
	}
	defer dst.Close()

	written, err := io.Copy(dst, io.LimitReader(r, s.maxBytes+1))
	if err != nil {
		os.Remove(path)
		return nil, fmt.Errorf("failed to write upload: %w", err)
	}
	if written > s.maxBytes {
		os.Remove(path)
		return nil, fmt.Errorf("%w of %d bytes", ErrTooLarge, s.maxBytes)
	}

	return &SavedFile{
		Name:       name,
		StoredName: storedName,
		Path:       path,
		Size:       written,
		UploadedAt: time.Now(),
	}, nil
}
