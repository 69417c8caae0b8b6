// Package storage abstracts the object store holding uploaded media.
// The MinIO implementation works with any S3-compatible provider.
package storage

import (
	"context"
	"errors"
	"io"
)

// ErrObjectExists is returned by Put when overwrite is false and an object
// already occupies the key.
var ErrObjectExists = errors.New("object already exists at this path")

// Storage is the gateway to the media object store.
type Storage interface {
	// Put streams data to the store under key and returns its public URL.
	// With overwrite false the call fails with ErrObjectExists if the key
	// is taken; with overwrite true an existing object is replaced.
	Put(ctx context.Context, key string, reader io.Reader, size int64, contentType string, overwrite bool) (string, error)
	// Delete removes the object at key.
	Delete(ctx context.Context, key string) error
	// PublicURL constructs the browser-accessible URL for a key.
	PublicURL(key string) string
	// KeyFromURL recovers the storage key from a public URL previously
	// produced by PublicURL. It fails if the URL does not address this
	// store's bucket.
	KeyFromURL(rawURL string) (string, error)
}
