package middleware

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"resume-tailor/internal/logging"
	"resume-tailor/pkg/models"
	"resume-tailor/pkg/utils"
)

// HTTPErrorHandler renders every error as models.ErrorResponse. Errors that
// carry no status become 500 InternalError.
func HTTPErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	code := http.StatusInternalServerError
	message := err.Error()
	kind := "InternalError"

	var customErr *utils.CustomError
	var httpErr *echo.HTTPError
	switch {
	case errors.As(err, &customErr):
		code = customErr.Code
		message = customErr.Error()
		kind = customErr.Type
	case errors.As(err, &httpErr):
		code = httpErr.Code
		message = fmt.Sprint(httpErr.Message)
		kind = ""
		if httpErr.Internal != nil && code >= http.StatusInternalServerError {
			message = httpErr.Internal.Error()
			kind = "InternalError"
		}
	}

	fields := map[string]interface{}{
		"request_id": GetRequestID(c),
		"status":     code,
		"error":      message,
	}
	if kind != "" {
		fields["type"] = kind
	}
	logger := logging.GetGlobalLogger()
	if code >= http.StatusInternalServerError {
		logger.Error("Request failed", fields)
	} else {
		logger.Warn("Request rejected", fields)
	}

	if c.Request().Method == http.MethodHead {
		err = c.NoContent(code)
	} else {
		err = c.JSON(code, models.NewErrorResponse(message, kind))
	}
	if err != nil {
		logger.Error("Failed to write error response", map[string]interface{}{"error": err.Error()})
	}
}
