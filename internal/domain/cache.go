package domain

import (
	"context"
	"time"
)

//go:generate mockgen -source=cache.go -destination=mock_cache.go -package=domain

// ResponseCache is the outbound port for the response cache.
//
// Both operations are best-effort by contract: implementations must absorb
// every backend failure (timeout, misconfiguration, missing write credential)
// and report it only through their own logging. Cache absence never changes
// the correctness of a response, only its latency.
type ResponseCache interface {
	// TryGet returns the cached payload for key, or ok=false on a miss or
	// any backend failure.
	TryGet(ctx context.Context, key string) (payload []byte, ok bool)

	// TrySet stores the payload under key with the given TTL. Failures are
	// swallowed; a backend without write capability skips the write entirely.
	TrySet(ctx context.Context, key string, payload []byte, ttl time.Duration)
}
