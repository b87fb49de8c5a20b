// Package store implements snapshot persistence for inkwell collections:
// durable whole-document storage behind a pluggable Backend, fronted by a
// read-through cache with a bounded freshness window and a per-collection
// single-writer lock.
package store

import (
	"context"
	"errors"
	"fmt"

	"inkwell/internal/common"
)

// ErrNoSnapshot is returned by Backend.Read when no document has been
// written for the key yet. Collection turns it into a default snapshot.
var ErrNoSnapshot = errors.New("no snapshot")

// Backend is durable whole-document storage. Write replaces the document for
// key; Read returns the last written document or ErrNoSnapshot.
type Backend interface {
	Read(ctx context.Context, key string) ([]byte, error)
	Write(ctx context.Context, key string, data []byte) error
}

func storageError(op, key string, err error) error {
	return errors.Join(common.ErrStorage, fmt.Errorf("%s %q: %w", op, key, err))
}
