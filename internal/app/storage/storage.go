// Package storage persists uploaded files, either on local disk or in
// MinIO object storage.
package storage

import (
	"context"
	"errors"
	"io"
	"time"
)

// ErrTooLarge is returned when an upload exceeds the configured size
// limit.
var ErrTooLarge = errors.New("upload exceeds size limit")

// SavedFile describes a persisted upload.
type SavedFile struct {
	// Name is the sanitized original filename, kept for display.
	Name string
	// StoredName is the uuid-prefixed name actually written, so two
	// uploads of the same filename never clobber each other.
	StoredName string
	// Path is a local filesystem path to the stored content. For
	// object storage backends this is a temporary staging copy the
	// transcriber can read.
	Path string
	Size int64

	UploadedAt time.Time
}

// UploadStore saves uploaded files.
type UploadStore interface {
	Save(ctx context.Context, r io.Reader, filename string, username string) (*SavedFile, error)
}
