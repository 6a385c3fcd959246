package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resume-tailor/internal/api/handlers"
	"resume-tailor/internal/api/routes"
	"resume-tailor/internal/config"
	"resume-tailor/internal/llm/llmtest"
	"resume-tailor/internal/tailor"
	"resume-tailor/pkg/models"
)

func get(e *echo.Echo, path string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

func TestHealthEndpoints(t *testing.T) {
	stub := &llmtest.StubProvider{}
	e := newTestServer(t, stub)

	for path, status := range map[string]string{
		"/health":       "healthy",
		"/health/live":  "alive",
		"/health/ready": "ready",
	} {
		rec := get(e, path)
		require.Equal(t, http.StatusOK, rec.Code, path)

		var resp models.HealthResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, status, resp.Status, path)
		assert.Equal(t, handlers.Version, resp.Version)
	}
	assert.Equal(t, 0, stub.Calls())
}

func TestReadinessHandler_MissingKeys(t *testing.T) {
	stub := &llmtest.StubProvider{}
	cfg := config.Default()
	e := echo.New()
	routes.SetupRoutes(e, cfg, stub, tailor.NewService(stub, tailor.DefaultOptions()))

	rec := get(e, "/health/ready")
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)

	var resp models.HealthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "not_ready", resp.Status)
	assert.Equal(t, "missing", resp.Checks["provider_key"])
	assert.Equal(t, "missing", resp.Checks["service_key"])
	assert.Equal(t, "stub", resp.Checks["provider"])
}

func TestRootBanner(t *testing.T) {
	rec := get(newTestServer(t, &llmtest.StubProvider{}), "/")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"service":"Resume Tailor"`)
}

func TestUnknownRouteUsesErrorEnvelope(t *testing.T) {
	rec := get(newTestServer(t, &llmtest.StubProvider{}), "/nope")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	var resp models.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	assert.Equal(t, "Not Found", resp.Error)
}
