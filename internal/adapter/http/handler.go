// Package http provides the HTTP handler layer for the airport lookup API.
// It handles query-parameter parsing, response formatting, and the
// availability-over-correctness error policy of the search endpoint.
package http

import (
	"github.com/labstack/echo/v4"

	"github.com/charter-ops/airport-lookup-service/internal/adapter/http/response"
	"github.com/charter-ops/airport-lookup-service/internal/domain"
	"github.com/charter-ops/airport-lookup-service/internal/usecase"
)

// AirportHandler handles HTTP requests for airport lookup endpoints.
type AirportHandler struct {
	useCase usecase.AirportSearchUseCase
}

// NewAirportHandler creates a new AirportHandler with the given use case.
func NewAirportHandler(uc usecase.AirportSearchUseCase) *AirportHandler {
	return &AirportHandler{useCase: uc}
}

// SearchAirports handles GET /api/v1/airports/search
//
// The endpoint backs a live-typing picker and therefore never returns a
// non-200 status: short queries resolve to an empty list, and upstream
// failures degrade to an empty list with an error message.
//
// @Summary Search airports
// @Description Incremental airport search by code, name, municipality, or country
// @Tags airports
// @Produce json
// @Param q query string false "Free-text query; fewer than 2 effective characters yields an empty result"
// @Param limit query int false "Maximum items to return, clamped to [1,30]" default(15)
// @Success 200 {object} domain.SearchResult
// @Router /api/v1/airports/search [get]
func (h *AirportHandler) SearchAirports(c echo.Context) error {
	raw := c.QueryParam("q")
	limit := parseLimit(c.QueryParam("limit"))

	result, err := h.useCase.Search(c.Request().Context(), raw, limit)
	if err != nil {
		// The use case degrades store failures itself; anything that still
		// surfaces here gets the same empty-list treatment.
		return response.SearchResults(c, domain.FailedResult(err.Error()))
	}

	return response.SearchResults(c, result)
}

// Health handles GET /health
// Simple health check endpoint for load balancers.
func (h *AirportHandler) Health(c echo.Context) error {
	return response.Health(c)
}
