package types

import "context"

// Provider is a text-completion backend answering one prompt per call
type Provider interface {
	// Complete submits a single-turn prompt and blocks until the reply arrives
	Complete(ctx context.Context, req CompletionRequest) (*Completion, error)

	// GetProviderName returns the name of the LLM provider
	GetProviderName() string
}

// CompletionRequest carries the prompt and sampling parameters of one call
type CompletionRequest struct {
	Prompt      string
	Model       string
	MaxTokens   int
	Temperature float64
}

// Completion is the provider reply reduced to what callers consume
type Completion struct {
	// Text is the first text segment of the reply, untrimmed
	Text         string
	InputTokens  int64
	OutputTokens int64
	Model        string
	StopReason   string
}
