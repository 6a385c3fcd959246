package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"resume-tailor/internal/api/routes"
	"resume-tailor/internal/config"
	"resume-tailor/internal/llm"
	"resume-tailor/internal/logging"
	"resume-tailor/internal/tailor"

	"github.com/labstack/echo/v4"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig("configs/config.yaml")
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if err := logging.InitializeLogging(cfg); err != nil {
		log.Fatalf("Failed to initialize logging: %v", err)
	}
	logger := logging.GetGlobalLogger()

	if err := cfg.Validate(); err != nil {
		logger.Fatal("Invalid configuration", map[string]interface{}{"error": err.Error()})
	}

	logger.Info("Starting Resume Tailor", map[string]interface{}{
		"provider":     cfg.LLM.Provider,
		"model":        cfg.LLM.Model,
		"prompt_style": cfg.Tailor.PromptStyle,
	})

	provider, err := llm.NewProvider(cfg)
	if err != nil {
		logger.Fatal("Failed to create LLM provider", map[string]interface{}{"error": err.Error()})
	}
	tailorService := tailor.NewService(provider, tailor.OptionsFromConfig(cfg))

	// Initialize Echo
	e := echo.New()
	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout
	e.Server.IdleTimeout = cfg.Server.IdleTimeout

	// Setup routes
	routes.SetupRoutes(e, cfg, provider, tailorService)

	// Graceful shutdown
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		logger.Info("Shutting down server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := e.Shutdown(shutdownCtx); err != nil {
			logger.Error("Error shutting down server", map[string]interface{}{"error": err.Error()})
		}

		logger.Info("Server shutdown complete")
	}()

	// Start server
	address := cfg.Address()
	logger.Info("Server starting", map[string]interface{}{"address": address})

	if err := e.Start(address); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Fatal("Server failed to start", map[string]interface{}{"error": err.Error()})
	}

	if err := logging.CloseLogging(); err != nil {
		log.Printf("Failed to close logging: %v", err)
	}
}
