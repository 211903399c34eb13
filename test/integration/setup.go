// Package integration provides helpers and integration tests for the airport
// lookup service. Integration tests verify that components work together
// correctly: HTTP handlers, the search use case, the response cache, and the
// mock store.
package integration

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/charter-ops/airport-lookup-service/internal/adapter/cache"
	httpAdapter "github.com/charter-ops/airport-lookup-service/internal/adapter/http"
	"github.com/charter-ops/airport-lookup-service/internal/domain"
	"github.com/charter-ops/airport-lookup-service/internal/infrastructure/timeutil"
	"github.com/charter-ops/airport-lookup-service/internal/usecase"
)

// TestServer wraps an Echo instance and provides helper methods for
// integration testing.
type TestServer struct {
	Echo    *echo.Echo
	Handler *httpAdapter.AirportHandler
}

// NewTestServer creates a new test server with the given use case.
func NewTestServer(uc usecase.AirportSearchUseCase) *TestServer {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	handler := httpAdapter.NewAirportHandler(uc)
	httpAdapter.RegisterRoutes(e, handler)

	return &TestServer{
		Echo:    e,
		Handler: handler,
	}
}

// Response represents a test HTTP response.
type Response struct {
	Code    int
	Body    []byte
	Headers http.Header
}

// Get executes a GET request against the given path and returns the response.
func (ts *TestServer) Get(path string) Response {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	ts.Echo.ServeHTTP(rec, req)

	return Response{
		Code:    rec.Code,
		Body:    rec.Body.Bytes(),
		Headers: rec.Header(),
	}
}

// SearchRequest makes a search request with the given query and limit.
// An empty limit omits the parameter.
func (ts *TestServer) SearchRequest(query, limit string) Response {
	params := url.Values{}
	params.Set("q", query)
	if limit != "" {
		params.Set("limit", limit)
	}
	return ts.Get("/api/v1/airports/search?" + params.Encode())
}

// HealthRequest makes a health check request.
func (ts *TestServer) HealthRequest() Response {
	return ts.Get("/health")
}

// ParseSearchResult parses the response body as a SearchResult.
func (r *Response) ParseSearchResult() (*domain.SearchResult, error) {
	var result domain.SearchResult
	if err := json.Unmarshal(r.Body, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// TestCache bundles a memory-backed response cache with the mock clock that
// drives its expiry, so tests can advance time past the TTL.
type TestCache struct {
	Cache *cache.BestEffort
	KV    *cache.MemoryCache
	Clock *timeutil.MockClock
}

// NewTestCache creates a memory cache pinned to a fixed starting time.
func NewTestCache() *TestCache {
	clock := timeutil.NewMockClock(time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC))
	kv := cache.NewMemoryCache(clock)
	return &TestCache{
		Cache: cache.NewBestEffort(kv, zerolog.Nop()),
		KV:    kv,
		Clock: clock,
	}
}

// NoopCache returns a response cache that stores nothing.
func NoopCache() *cache.BestEffort {
	return cache.NewBestEffort(cache.Noop{}, zerolog.Nop())
}

// CreateUseCase creates a use case with default configuration.
func CreateUseCase(store domain.AirportStore, responseCache domain.ResponseCache) usecase.AirportSearchUseCase {
	return usecase.NewAirportSearchUseCase(store, responseCache, nil, zerolog.Nop())
}

// CreateUseCaseWithConfig creates a use case with custom configuration.
func CreateUseCaseWithConfig(store domain.AirportStore, responseCache domain.ResponseCache, config *usecase.Config) usecase.AirportSearchUseCase {
	return usecase.NewAirportSearchUseCase(store, responseCache, config, zerolog.Nop())
}
