package routes

import (
	"net/http"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"

	"resume-tailor/internal/api/handlers"
	"resume-tailor/internal/api/middleware"
	"resume-tailor/internal/api/validation"
	"resume-tailor/internal/config"
	"resume-tailor/internal/llm"
	"resume-tailor/internal/tailor"
)

// TailorPath is where the tailor endpoint is mounted
const TailorPath = "/api/tailor"

// SetupRoutes configures all API routes
func SetupRoutes(e *echo.Echo, cfg *config.Config, provider llm.Provider, tailorService *tailor.Service) {
	e.HideBanner = true
	e.HTTPErrorHandler = middleware.HTTPErrorHandler
	e.Validator = &validation.EchoValidator{Validator: validation.New()}

	// Global middleware
	e.Use(middleware.CORSHeaders(cfg))
	e.Use(middleware.RequestContext(cfg))
	e.Use(middleware.AccessLog())
	e.Use(echomiddleware.Recover())

	health := e.Group("/health")
	{
		health.GET("", handlers.HealthHandler)
		health.GET("/live", handlers.LivenessHandler)
		health.GET("/ready", handlers.ReadinessHandler(cfg, provider))
	}

	e.Any(TailorPath, handlers.TailorHandler(cfg, tailorService))

	e.GET("/", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{
			"service": "Resume Tailor",
			"version": handlers.Version,
			"status":  "running",
		})
	})
}
