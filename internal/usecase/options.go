// Package usecase contains the business logic for airport lookup.
// It orchestrates the search pipeline: normalize, cache lookup, overfetch,
// score, rank, truncate, cache store.
package usecase

import (
	"time"

	"github.com/charter-ops/airport-lookup-service/internal/domain"
)

// Default pipeline settings.
const (
	// DefaultOverfetchLimit is the candidate cap requested from the store.
	// The store always returns at most this many rows, never the caller's
	// limit, because ranking happens after retrieval.
	DefaultOverfetchLimit = 100

	// DefaultCacheTTL is how long a cached response stays valid. Airport
	// reference data changes rarely enough that a week of staleness is an
	// acceptable trade against backend load.
	DefaultCacheTTL = 7 * 24 * time.Hour

	// DefaultHomeCountry is the operator's home market; airports in it sort
	// before all others regardless of text relevance.
	DefaultHomeCountry = "US"
)

// Config contains the ranking policy and pipeline settings for the use case.
type Config struct {
	// HomeCountry is the home-market country code used as the primary sort key
	HomeCountry string

	// FacilityWeights is the injectable facility-size weight table
	FacilityWeights domain.FacilityWeights

	// OverfetchLimit caps the candidate set fetched from the store
	OverfetchLimit int

	// CacheTTL is the time-to-live for cached response payloads
	CacheTTL time.Duration
}

// DefaultConfig returns the default pipeline configuration.
func DefaultConfig() Config {
	return Config{
		HomeCountry:     DefaultHomeCountry,
		FacilityWeights: domain.DefaultFacilityWeights(),
		OverfetchLimit:  DefaultOverfetchLimit,
		CacheTTL:        DefaultCacheTTL,
	}
}
