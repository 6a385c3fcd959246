package llm

import (
	"fmt"
	"strings"

	"resume-tailor/internal/config"
	"resume-tailor/internal/llm/providers"
)

// NewProvider creates the LLM provider named by the configuration
func NewProvider(cfg *config.Config) (Provider, error) {
	switch cfg.LLM.Provider {
	case "claude", "anthropic":
		return providers.NewClaudeProvider(cfg), nil
	default:
		return nil, fmt.Errorf("unsupported LLM provider: %s (supported: %s)",
			cfg.LLM.Provider, strings.Join(SupportedProviders(), ", "))
	}
}

// SupportedProviders returns the provider names NewProvider accepts
func SupportedProviders() []string {
	return []string{"claude"}
}
