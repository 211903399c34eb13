package http

import "github.com/labstack/echo/v4"

// RegisterRoutes configures the HTTP routes for the airport lookup API.
func RegisterRoutes(e *echo.Echo, h *AirportHandler) {
	// Health check at root level for load balancers.
	e.GET("/health", h.Health)

	api := e.Group("/api/v1")
	api.GET("/airports/search", h.SearchAirports)
}
