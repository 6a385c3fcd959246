package providers

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"resume-tailor/internal/config"
	"resume-tailor/internal/llm/types"
	"resume-tailor/internal/logging"
)

// ErrNoTextContent is returned when the reply carries no text block
var ErrNoTextContent = errors.New("no text content in Claude response")

// ClaudeProvider implements the LLM provider interface using Anthropic's Claude
type ClaudeProvider struct {
	client anthropic.Client
	config *config.Config
	logger logging.Logger
}

// NewClaudeProvider creates a new Claude provider instance
func NewClaudeProvider(cfg *config.Config) *ClaudeProvider {
	opts := []option.RequestOption{
		option.WithAPIKey(cfg.LLM.APIKey),
		// a failed call is reported to the caller, never replayed
		option.WithMaxRetries(0),
	}
	if cfg.LLM.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.LLM.BaseURL))
	}
	if cfg.LLM.Timeout > 0 {
		opts = append(opts, option.WithRequestTimeout(cfg.LLM.Timeout))
	}

	return &ClaudeProvider{
		client: anthropic.NewClient(opts...),
		config: cfg,
		logger: logging.GetGlobalLogger(),
	}
}

// Complete sends one user message to Claude and returns the first text block
func (cp *ClaudeProvider) Complete(ctx context.Context, req types.CompletionRequest) (*types.Completion, error) {
	startTime := time.Now()

	cp.logger.Debug("Sending completion request to Claude", map[string]interface{}{
		"model":         req.Model,
		"max_tokens":    req.MaxTokens,
		"temperature":   req.Temperature,
		"prompt_length": len(req.Prompt),
		"provider":      "claude",
	})

	response, err := cp.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:       anthropic.Model(req.Model),
		MaxTokens:   int64(req.MaxTokens),
		Temperature: anthropic.Float(req.Temperature),
		Messages: []anthropic.MessageParam{{
			Content: []anthropic.ContentBlockParamUnion{{
				OfText: &anthropic.TextBlockParam{Text: req.Prompt},
			}},
			Role: anthropic.MessageParamRoleUser,
		}},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to call Claude API: %w", err)
	}

	text, err := firstText(response)
	if err != nil {
		return nil, err
	}

	cp.logger.Debug("Claude response received", map[string]interface{}{
		"model":           string(response.Model),
		"stop_reason":     string(response.StopReason),
		"input_tokens":    response.Usage.InputTokens,
		"output_tokens":   response.Usage.OutputTokens,
		"processing_time": time.Since(startTime).String(),
		"provider":        "claude",
	})

	return &types.Completion{
		Text:         text,
		InputTokens:  response.Usage.InputTokens,
		OutputTokens: response.Usage.OutputTokens,
		Model:        string(response.Model),
		StopReason:   string(response.StopReason),
	}, nil
}

func firstText(response *anthropic.Message) (string, error) {
	for _, block := range response.Content {
		if block.Type == "text" {
			return block.AsText().Text, nil
		}
	}
	return "", ErrNoTextContent
}

// GetProviderName returns the name of the LLM provider
func (cp *ClaudeProvider) GetProviderName() string {
	return "claude"
}
