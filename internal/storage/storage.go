// Package storage defines the interface for object storage operations.
// Swap implementations by changing the concrete type injected at startup.
// The MinIO implementation works with any S3-compatible provider (MinIO, AWS S3, GCS interop).
package storage

import (
	"context"
	"io"
	"time"
)

// Object describes a stored object as reported by the backend.
type Object struct {
	Key         string
	Size        int64
	ContentType string
	Created     time.Time
	Updated     time.Time
}

// Storage is the interface for uploading, listing and sharing objects.
type Storage interface {
	// Upload streams data to the store under the given key.
	Upload(ctx context.Context, key string, reader io.Reader, size int64, contentType string) error
	// List returns every object whose key starts with prefix.
	List(ctx context.Context, prefix string) ([]Object, error)
	// SignedURL returns a time-limited URL granting read access to key.
	SignedURL(ctx context.Context, key string, expiry time.Duration) (string, error)
}
