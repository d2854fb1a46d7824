// Package snapshot persists the whole application dataset as one JSON
// document under one key in an opaque blob store. There is no partial write
// and no versioning: save overwrites unconditionally, last writer wins.
package snapshot

import (
	"context"
	"errors"
)

// ErrNotFound is returned by Load when no snapshot has been written yet.
var ErrNotFound = errors.New("snapshot not found")

// Blob is the minimal key-value contract a snapshot backend must provide.
type Blob interface {
	Load(ctx context.Context) ([]byte, error)
	Save(ctx context.Context, data []byte) error
}
