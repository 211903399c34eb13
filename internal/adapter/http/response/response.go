// Package response provides standardized HTTP response builders for the
// airport lookup API. It centralizes response formatting so every endpoint
// stays consistent.
package response

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// ErrorDetail contains structured error information for non-search endpoints.
// The search endpoint itself never uses it: its failures are carried inside
// the 200 result document.
type ErrorDetail struct {
	// Code is a machine-readable error code
	Code string `json:"code"`

	// Message is a human-readable error message
	Message string `json:"message"`
}

// Error codes used in API responses.
const (
	CodeInvalidRequest = "invalid_request"
	CodeInternalError  = "internal_error"
)

// Error messages used in API responses.
const (
	MsgInternalError = "An unexpected error occurred"
)

// HealthResponse represents the health check response.
type HealthResponse struct {
	Status string `json:"status"`
}

// Health writes a health check response.
func Health(c echo.Context) error {
	return c.JSON(http.StatusOK, &HealthResponse{Status: "ok"})
}

// SearchResults writes a 200 OK response with the search result document.
// Cache hits and misses both pass through here, so an identical result
// always serializes to an identical body.
func SearchResults(c echo.Context, result interface{}) error {
	return c.JSON(http.StatusOK, result)
}

// OK writes a 200 OK response with the given data.
func OK(c echo.Context, data interface{}) error {
	return c.JSON(http.StatusOK, data)
}

// BadRequest writes a 400 Bad Request response with the given message.
func BadRequest(c echo.Context, message string) error {
	return c.JSON(http.StatusBadRequest, &ErrorDetail{
		Code:    CodeInvalidRequest,
		Message: message,
	})
}

// InternalServerError writes a 500 Internal Server Error response.
// Used by the recovery middleware; handlers on the search path never 500.
func InternalServerError(c echo.Context) error {
	return c.JSON(http.StatusInternalServerError, &ErrorDetail{
		Code:    CodeInternalError,
		Message: MsgInternalError,
	})
}
