package middleware

import (
	"strings"

	"github.com/labstack/echo/v4"

	"resume-tailor/internal/config"
)

// CORSHeaders sets the configured CORS headers on every response, errors and
// preflights included. Preflight requests still reach the handler.
func CORSHeaders(cfg *config.Config) echo.MiddlewareFunc {
	origin := cfg.CORS.AllowOrigin
	if origin == "" {
		origin = "*"
	}
	methods := strings.Join(cfg.CORS.AllowMethods, ", ")
	headers := strings.Join(cfg.CORS.AllowHeaders, ", ")

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			h := c.Response().Header()
			h.Set(echo.HeaderAccessControlAllowOrigin, origin)
			if methods != "" {
				h.Set(echo.HeaderAccessControlAllowMethods, methods)
			}
			if headers != "" {
				h.Set(echo.HeaderAccessControlAllowHeaders, headers)
			}
			return next(c)
		}
	}
}
