// Package storage is the filesystem abstraction behind banner image
// uploads. Two drivers ship out of the box:
//   - "local": local filesystem (default)
//   - "s3": S3-compatible object storage (AWS S3, MinIO, R2, Spaces)
//
// Boot once in internal/server, then use the default-disk helpers:
//
//	storage.Connect()
//	storage.PutStream("banners/abc.jpg", file)
//	url := storage.URL("banners/abc.jpg")
package storage

import (
	"io"
	"time"
)

// Disk is the filesystem driver interface.
type Disk interface {
	// Put writes content to path, creating parent directories as needed.
	Put(path string, content []byte) error

	// PutStream writes from r to path.
	PutStream(path string, r io.Reader) error

	// Get returns the full content of the file at path.
	Get(path string) ([]byte, error)

	// GetStream returns a reader for the file at path.
	GetStream(path string) (io.ReadCloser, error)

	// Exists reports whether path exists.
	Exists(path string) bool

	// Size returns the file size in bytes.
	Size(path string) (int64, error)

	// LastModified returns the file's last-modified time.
	LastModified(path string) (time.Time, error)

	// URL returns the public URL for path.
	URL(path string) string

	// Delete removes path. Deleting a missing file is not an error.
	Delete(path string) error
}
