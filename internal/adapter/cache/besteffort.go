package cache

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/charter-ops/airport-lookup-service/internal/domain"
)

// BestEffort adapts a fallible KV to the domain.ResponseCache port.
// Every backend failure is logged and swallowed: a broken or absent cache
// changes response latency, never response correctness.
type BestEffort struct {
	kv  KV
	log zerolog.Logger
}

// NewBestEffort wraps the given KV.
func NewBestEffort(kv KV, log zerolog.Logger) *BestEffort {
	return &BestEffort{kv: kv, log: log}
}

// TryGet implements domain.ResponseCache.
func (b *BestEffort) TryGet(ctx context.Context, key string) ([]byte, bool) {
	payload, err := b.kv.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			b.log.Warn().Err(err).Str("cache_key", key).Msg("Cache read failed")
		}
		return nil, false
	}
	return payload, true
}

// TrySet implements domain.ResponseCache.
func (b *BestEffort) TrySet(ctx context.Context, key string, payload []byte, ttl time.Duration) {
	err := b.kv.Set(ctx, key, payload, ttl)
	switch {
	case err == nil:
	case errors.Is(err, ErrReadOnly):
		b.log.Debug().Str("cache_key", key).Msg("Cache write skipped: read-only backend")
	default:
		b.log.Warn().Err(err).Str("cache_key", key).Msg("Cache write failed")
	}
}

// Ensure BestEffort implements domain.ResponseCache at compile time.
var _ domain.ResponseCache = (*BestEffort)(nil)
