package storage

import (
	"context"

	"github.com/pkg/errors"
)

// ErrNotFound is returned by Get for keys that were never written.
var ErrNotFound = errors.New("key not found")

// KVStore is the persistence collaborator: an opaque string key to string
// value store. Implementations distinguish a missing key (ErrNotFound) from
// a store fault.
type KVStore interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
}
