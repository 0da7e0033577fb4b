package storage

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

var ErrNotFound = errors.New("key not found")

// Store is the narrow blob-store surface the stitching pipeline needs.
type Store interface {
	// List returns every key under the given prefix.
	List(ctx context.Context, prefix string) ([]string, error)
	// Get reads the full object at key.
	Get(ctx context.Context, key string) ([]byte, error)
	// Put writes the full object at key, replacing any existing one.
	Put(ctx context.Context, key string, data []byte) error
}

// Error reports a failed store operation.
type Error struct {
	Op  string // "list", "get" or "put"
	Key string
	Err error
}

func (e *Error) Error() string {
	return fmt.Sprintf("storage %s %q failed; %v", e.Op, e.Key, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// SplitLocation splits "<container>/<path>" on the first separator.
// The path part is empty when no separator is present.
func SplitLocation(location string) (container, path string) {
	parts := strings.SplitN(location, "/", 2)
	if len(parts) < 2 {
		return parts[0], ""
	}
	return parts[0], parts[1]
}
