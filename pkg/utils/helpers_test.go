package utils

import (
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestGenerateRequestID(t *testing.T) {
	a, b := GenerateRequestID(), GenerateRequestID()
	assert.NotEqual(t, a, b)
	_, err := uuid.Parse(a)
	assert.NoError(t, err)
}

func TestFormatDuration(t *testing.T) {
	assert.Equal(t, "500ms", FormatDuration(500*time.Millisecond))
	assert.Equal(t, "1.50s", FormatDuration(1500*time.Millisecond))
	assert.Equal(t, "2.0m", FormatDuration(2*time.Minute))
	assert.Equal(t, "1.5h", FormatDuration(90*time.Minute))
}

func TestCustomError(t *testing.T) {
	err := NewUnauthorizedError("Unauthorized - Invalid API key")
	assert.Equal(t, http.StatusUnauthorized, err.Code)
	assert.Equal(t, "Unauthorized - Invalid API key", err.Error())

	err.Detail = "extra"
	assert.Equal(t, "Unauthorized - Invalid API key: extra", err.Error())
}

func TestNewInternalServerError(t *testing.T) {
	err := NewInternalServerError("failed to call Claude API", "ProviderError")
	assert.Equal(t, http.StatusInternalServerError, err.Code)
	assert.Equal(t, "ProviderError", err.Type)
}
