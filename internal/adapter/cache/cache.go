// Package cache provides the response-cache backends and the best-effort
// wrapper that adapts them to the domain port.
//
// Backends implement KV and are allowed to fail; BestEffort absorbs those
// failures at the boundary so the rest of the pipeline can treat the cache
// as infallible-but-optional.
package cache

import (
	"context"
	"errors"
	"time"
)

// Sentinel errors returned by KV backends.
var (
	// ErrNotFound indicates the key is absent or expired.
	ErrNotFound = errors.New("cache: key not found")

	// ErrReadOnly indicates the backend has no write capability and the
	// write was skipped.
	ErrReadOnly = errors.New("cache: backend is read-only")
)

// KV is a fallible key-value client with per-entry TTL.
// Wrap a KV in BestEffort before handing it to the search pipeline.
type KV interface {
	// Get returns the value for key, or ErrNotFound.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores value under key for the given TTL, overwriting any
	// previous entry. Returns ErrReadOnly when writes are not permitted.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// Close releases backend resources.
	Close() error
}

// Noop is a KV that stores nothing. Used when caching is disabled:
// every read misses and every write is skipped.
type Noop struct{}

// Get implements KV.
func (Noop) Get(context.Context, string) ([]byte, error) { return nil, ErrNotFound }

// Set implements KV.
func (Noop) Set(context.Context, string, []byte, time.Duration) error { return nil }

// Close implements KV.
func (Noop) Close() error { return nil }

var _ KV = Noop{}
