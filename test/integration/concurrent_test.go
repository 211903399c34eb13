package integration

import (
	"fmt"
	"net/http"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/charter-ops/airport-lookup-service/test/mock"
	"github.com/charter-ops/airport-lookup-service/test/testutil"
)

// TestConcurrent_IdenticalQueries fires the same search from many goroutines.
// Requests are not coalesced, so the store may be hit more than once, but
// every caller must get the same well-formed response.
func TestConcurrent_IdenticalQueries(t *testing.T) {
	store := mock.NewStore().WithRecords(testutil.SampleAirports())
	tc := NewTestCache()
	ts := NewTestServer(CreateUseCase(store, tc.Cache))

	const goroutines = 20

	bodies := make([]string, goroutines)
	var wg sync.WaitGroup
	wg.Add(goroutines)

	for i := 0; i < goroutines; i++ {
		go func(i int) {
			defer wg.Done()
			resp := ts.SearchRequest("teb", "5")
			assert.Equal(t, http.StatusOK, resp.Code)
			bodies[i] = string(resp.Body)
		}(i)
	}
	wg.Wait()

	for i := 1; i < goroutines; i++ {
		assert.Equal(t, bodies[0], bodies[i], "goroutine %d got a different response", i)
	}
	assert.GreaterOrEqual(t, store.CallCount(), 1)
}

// TestConcurrent_DistinctQueries verifies that concurrent different queries
// do not bleed into each other's responses or cache entries.
func TestConcurrent_DistinctQueries(t *testing.T) {
	store := mock.NewStore().WithRecords(testutil.SampleAirports())
	tc := NewTestCache()
	ts := NewTestServer(CreateUseCase(store, tc.Cache))

	queries := []string{"teb", "tbs", "newark", "london", "georgia"}

	var wg sync.WaitGroup
	results := make([]Response, len(queries)*4)

	for round := 0; round < 4; round++ {
		for qi, q := range queries {
			wg.Add(1)
			go func(slot int, q string) {
				defer wg.Done()
				results[slot] = ts.SearchRequest(q, "")
			}(round*len(queries)+qi, q)
		}
	}
	wg.Wait()

	for i, resp := range results {
		require.Equal(t, http.StatusOK, resp.Code, "request %d", i)
		result, err := resp.ParseSearchResult()
		require.NoError(t, err, "request %d", i)
		assert.Empty(t, result.Error, "request %d", i)
	}
}

// TestConcurrent_WarmCacheReads hammers pre-warmed cache entries from many
// goroutines to exercise the memory backend's read path under contention.
func TestConcurrent_WarmCacheReads(t *testing.T) {
	store := mock.NewStore().WithRecords(testutil.SampleAirports())
	tc := NewTestCache()
	ts := NewTestServer(CreateUseCase(store, tc.Cache))

	// Warm distinct entries.
	for i := 0; i < 5; i++ {
		resp := ts.SearchRequest(fmt.Sprintf("teb%d", i), "")
		require.Equal(t, http.StatusOK, resp.Code)
	}

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			resp := ts.SearchRequest(fmt.Sprintf("teb%d", i%5), "")
			assert.Equal(t, http.StatusOK, resp.Code)
		}(i)
	}
	wg.Wait()
}
