package middleware

import (
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

// Setup registers all middleware on the Echo instance in the correct order:
//
//  1. RequestID - first, so the ID is available to all subsequent logging
//  2. RequestLogger - logs every request with the request ID
//  3. Recover - catches panics inside the handler chain
func Setup(e *echo.Echo, log zerolog.Logger) {
	e.Use(RequestID())
	e.Use(RequestLogger(log))
	e.Use(Recover(log))
}
