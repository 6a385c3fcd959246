package handlers

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"resume-tailor/internal/config"
	"resume-tailor/internal/llm"
	"resume-tailor/pkg/models"
	"resume-tailor/pkg/utils"
)

// Version is reported by the health and root endpoints
const Version = "1.0.0"

var startTime = time.Now()

func healthResponse(status string, checks map[string]string) models.HealthResponse {
	return models.HealthResponse{
		Status:    status,
		Timestamp: time.Now(),
		Version:   Version,
		Uptime:    utils.FormatDuration(time.Since(startTime)),
		Checks:    checks,
	}
}

// LivenessHandler handles liveness probe requests
func LivenessHandler(c echo.Context) error {
	return c.JSON(http.StatusOK, healthResponse("alive", nil))
}

// HealthHandler handles health check requests
func HealthHandler(c echo.Context) error {
	return c.JSON(http.StatusOK, healthResponse("healthy", map[string]string{"api": "ok"}))
}

// ReadinessHandler reports whether both credentials are configured. It never
// calls the provider.
func ReadinessHandler(cfg *config.Config, provider llm.Provider) echo.HandlerFunc {
	return func(c echo.Context) error {
		checks := map[string]string{
			"api":          "ok",
			"provider":     provider.GetProviderName(),
			"provider_key": "ok",
			"service_key":  "ok",
		}
		status, code := "ready", http.StatusOK

		if cfg.LLM.APIKey == "" {
			checks["provider_key"] = "missing"
			status, code = "not_ready", http.StatusServiceUnavailable
		}
		if cfg.Auth.ServiceAPIKey == "" {
			checks["service_key"] = "missing"
			status, code = "not_ready", http.StatusServiceUnavailable
		}

		return c.JSON(code, healthResponse(status, checks))
	}
}
