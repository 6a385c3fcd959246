package middleware

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"resume-tailor/internal/config"
	"resume-tailor/pkg/utils"
)

const requestIDKey = "request_id"

// RequestContext tags each request with an ID and enforces the body limit
func RequestContext(cfg *config.Config) echo.MiddlewareFunc {
	limit := cfg.Server.BodyLimit

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			requestID := c.Request().Header.Get(echo.HeaderXRequestID)
			if requestID == "" {
				requestID = utils.GenerateRequestID()
			}
			c.Set(requestIDKey, requestID)
			c.Response().Header().Set(echo.HeaderXRequestID, requestID)

			if limit > 0 && c.Request().Body != nil {
				if c.Request().ContentLength > limit {
					return utils.NewRequestTooLargeError(fmt.Sprintf("Request body too large (limit %d bytes)", limit))
				}
				// chunked bodies carry no Content-Length
				c.Request().Body = http.MaxBytesReader(c.Response(), c.Request().Body, limit)
			}

			return next(c)
		}
	}
}

// GetRequestID returns the ID assigned by RequestContext
func GetRequestID(c echo.Context) string {
	if id, ok := c.Get(requestIDKey).(string); ok {
		return id
	}
	return ""
}
