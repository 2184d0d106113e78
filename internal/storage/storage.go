package storage

import (
	"context"
	"io"
	"time"
)

// ObjectStore is the contract against the object storage backend. Documents
// that own an uploaded object reference it by its storage path; everything
// a consumer is shown is either a public URL or a time-bounded signed URL.
type ObjectStore interface {
	// Upload writes an object, overwriting any existing object at the path.
	Upload(ctx context.Context, path string, r io.Reader, size int64, contentType string) error
	// Remove deletes the objects at the given paths.
	Remove(ctx context.Context, paths ...string) error
	// SignedURL returns a URL granting temporary read access to an object.
	SignedURL(ctx context.Context, path string, ttl time.Duration) (string, error)
	// PublicURL returns the stable, unauthenticated URL of an object.
	PublicURL(path string) string
}
