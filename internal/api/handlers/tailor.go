package handlers

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"resume-tailor/internal/api/middleware"
	"resume-tailor/internal/api/validation"
	"resume-tailor/internal/config"
	"resume-tailor/internal/logging"
	"resume-tailor/internal/tailor"
	"resume-tailor/pkg/models"
	"resume-tailor/pkg/utils"
)

const (
	msgMethodNotAllowed = "Method not allowed. Use POST."
	msgInvalidBody      = "Invalid request body"
	msgMissingFields    = "Missing required fields: resumeText and jobDescription"
	msgUnauthorized     = "Unauthorized - Invalid API key"
)

// TailorHandler serves the tailor endpoint. It is registered for every method
// so that preflight and method errors follow the endpoint's own contract.
func TailorHandler(cfg *config.Config, tailorService *tailor.Service) echo.HandlerFunc {
	serviceKey := cfg.Auth.ServiceAPIKey

	return func(c echo.Context) error {
		switch c.Request().Method {
		case http.MethodOptions:
			return c.NoContent(http.StatusOK)
		case http.MethodPost:
		default:
			return utils.NewMethodNotAllowedError(msgMethodNotAllowed)
		}

		requestID := middleware.GetRequestID(c)
		logger := logging.LogWithRequestID(requestID)

		var req models.TailorRequest
		if err := c.Bind(&req); err != nil {
			// bodies without a Content-Length hit the limit while decoding
			var tooLarge *http.MaxBytesError
			if errors.As(err, &tooLarge) {
				return utils.NewRequestTooLargeError(fmt.Sprintf("Request body too large (limit %d bytes)", tooLarge.Limit))
			}
			logger.Warn("Failed to parse request body", map[string]interface{}{"error": err.Error()})
			return utils.NewBadRequestError(msgInvalidBody)
		}

		if err := c.Validate(&req); err != nil {
			logger.Warn("Request validation failed", map[string]interface{}{
				"missing_fields": validation.MissingFields(err),
			})
			return utils.NewBadRequestError(msgMissingFields)
		}

		if !authorized(req.APIKey, serviceKey) {
			return utils.NewUnauthorizedError(msgUnauthorized)
		}

		logger.Info("Processing resume tailoring request", map[string]interface{}{
			"resume_length":          len(req.ResumeText),
			"job_description_length": len(req.JobDescription),
		})

		// a client disconnect does not abort the provider call; llm.timeout bounds it
		result, err := tailorService.Tailor(context.WithoutCancel(c.Request().Context()), req)
		if err != nil {
			return utils.NewInternalServerError(err.Error(), tailor.KindOf(err))
		}

		logger.Info("Request successful", map[string]interface{}{
			"cost":          result.Usage.FormattedCost,
			"input_tokens":  result.Usage.InputTokens,
			"output_tokens": result.Usage.OutputTokens,
			"model":         result.Model,
		})

		return c.JSON(http.StatusOK, models.TailorResponse{
			Success: true,
			Content: result.Content,
			Usage:   result.Usage,
		})
	}
}

// authorized compares the caller's key with the configured secret. An
// unconfigured secret authorizes nobody.
func authorized(apiKey, serviceKey string) bool {
	if serviceKey == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(apiKey), []byte(serviceKey)) == 1
}
