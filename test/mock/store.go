// Package mock provides test doubles for the airport lookup system.
// These mocks are designed for integration testing where we need
// configurable behavior (errors, delays, specific candidate sets).
package mock

import (
	"context"
	"sync"
	"time"

	"github.com/charter-ops/airport-lookup-service/internal/domain"
)

// Store is a configurable mock implementation of domain.AirportStore.
// It supports configurable records, errors, and delays, and records every
// call so tests can assert how often (and with what) the store was hit.
type Store struct {
	records []domain.AirportRecord
	err     error
	delay   time.Duration

	mu         sync.Mutex
	callCount  int
	lastFilter domain.AirportFilter
	lastLimit  int
}

// NewStore creates a new mock store.
// The store is configured using the builder pattern methods.
func NewStore() *Store {
	return &Store{}
}

// WithRecords configures the store to return the given candidate set.
func (s *Store) WithRecords(records []domain.AirportRecord) *Store {
	s.records = records
	return s
}

// WithError configures the store to return the given error.
func (s *Store) WithError(err error) *Store {
	s.err = err
	return s
}

// WithDelay configures the store to wait the given duration before responding.
func (s *Store) WithDelay(d time.Duration) *Store {
	s.delay = d
	return s
}

// Search implements domain.AirportStore.Search.
// It respects context cancellation, applies the configured delay, and
// returns the configured records or error. The limit truncates the
// configured set the way a real store's LIMIT clause would.
func (s *Store) Search(ctx context.Context, filter domain.AirportFilter, limit int) ([]domain.AirportRecord, error) {
	s.mu.Lock()
	s.callCount++
	s.lastFilter = filter
	s.lastLimit = limit
	s.mu.Unlock()

	if s.delay > 0 {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(s.delay):
		}
	}

	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	if s.err != nil {
		return nil, s.err
	}

	if limit > 0 && len(s.records) > limit {
		return s.records[:limit], nil
	}
	return s.records, nil
}

// CallCount returns the number of times Search was called.
func (s *Store) CallCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.callCount
}

// LastFilter returns the filter of the most recent Search call.
func (s *Store) LastFilter() domain.AirportFilter {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastFilter
}

// LastLimit returns the limit of the most recent Search call.
func (s *Store) LastLimit() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastLimit
}

// Reset resets the call count to zero.
func (s *Store) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.callCount = 0
}

// Ensure Store implements domain.AirportStore at compile time.
var _ domain.AirportStore = (*Store)(nil)
