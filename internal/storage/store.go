package storage

import (
	"context"
	"errors"
)

// ErrNotFound is returned by Get when no value has been written for a key.
var ErrNotFound = errors.New("key not found")

// Store is an opaque key-value blob store. It preserves exactly what was
// written; interpretation of the bytes belongs to the caller.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
}
