package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resume-tailor/internal/config"
)

func TestNewProvider(t *testing.T) {
	cfg := config.Default()
	cfg.LLM.APIKey = "key"

	provider, err := NewProvider(cfg)
	require.NoError(t, err)
	assert.Equal(t, "claude", provider.GetProviderName())

	cfg.LLM.Provider = "openai"
	_, err = NewProvider(cfg)
	assert.EqualError(t, err, "unsupported LLM provider: openai (supported: claude)")
	assert.Equal(t, []string{"claude"}, SupportedProviders())
}
