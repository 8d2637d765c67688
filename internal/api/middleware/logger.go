// Package middleware provides the middleware for the Echo instance
package middleware

import (
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// SetupLoggerMiddleware installs the request log and the recover
// boundary. Recover catches handler panics so a single bad request
// cannot take the portal down.
func SetupLoggerMiddleware(e *echo.Echo) {
	e.Use(middleware.LoggerWithConfig(middleware.LoggerConfig{
		Format: "${time_rfc3339}: ip=${remote_ip}, req=${method}, uri=${uri}, status=${status}, bytes_out=${bytes_out}, error=${error}, latency=${latency_human}\n",
		Skipper: func(c echo.Context) bool {
			// health probes hit the index route constantly
			return c.Request().RequestURI == "/api/"
		},
	}))
	e.Use(middleware.Recover())
}
