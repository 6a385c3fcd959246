package tailor

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"resume-tailor/internal/config"
	"resume-tailor/internal/llm"
	"resume-tailor/internal/logging"
	"resume-tailor/pkg/models"
)

// Options fixes the prompt and sampling parameters of every tailoring call
type Options struct {
	Model        string
	MaxTokens    int
	Temperature  float64
	PromptStyle  string
	StrictSchema bool
	Pricing      Pricing
}

// DefaultOptions returns the built-in model, budget and pricing
func DefaultOptions() Options {
	return Options{
		Model:       DefaultModel,
		MaxTokens:   DefaultMaxTokens,
		Temperature: DefaultTemperature,
		PromptStyle: PromptStyleDetailed,
		Pricing:     DefaultPricing(),
	}
}

// OptionsFromConfig maps the llm, pricing and tailor config sections
func OptionsFromConfig(cfg *config.Config) Options {
	return Options{
		Model:        cfg.LLM.Model,
		MaxTokens:    cfg.LLM.MaxTokens,
		Temperature:  cfg.LLM.Temperature,
		PromptStyle:  cfg.Tailor.PromptStyle,
		StrictSchema: cfg.Tailor.StrictSchema,
		Pricing: Pricing{
			InputPerMillion:  cfg.Pricing.InputPerMillion,
			OutputPerMillion: cfg.Pricing.OutputPerMillion,
		},
	}
}

// Result is a successfully tailored resume and what it cost
type Result struct {
	// Content is the provider's reply, passed through as parsed
	Content json.RawMessage
	// Resume is Content decoded into the expected shape; nil when it does not fit
	Resume *models.TailoredResume
	Usage  models.Usage
	Model  string
}

// Service turns a resume and job description into tailored resume content
// with exactly one provider call. It holds no per-request state.
type Service struct {
	provider llm.Provider
	opts     Options
	logger   logging.Logger
}

// NewService creates a tailoring service on top of provider
func NewService(provider llm.Provider, opts Options) *Service {
	return &Service{
		provider: provider,
		opts:     opts,
		logger:   logging.GetGlobalLogger(),
	}
}

// Tailor builds the prompt, calls the provider once and parses its reply.
// Every failure is a *Error; nothing is retried or repaired.
func (s *Service) Tailor(ctx context.Context, req models.TailorRequest) (*Result, error) {
	startTime := time.Now()

	prompt, err := BuildPrompt(s.opts.PromptStyle, req.ResumeText, req.JobDescription)
	if err != nil {
		return nil, &Error{Kind: KindPrompt, Err: err}
	}

	completion, err := s.provider.Complete(ctx, llm.CompletionRequest{
		Prompt:      prompt,
		Model:       s.opts.Model,
		MaxTokens:   s.opts.MaxTokens,
		Temperature: s.opts.Temperature,
	})
	if err != nil {
		return nil, &Error{Kind: KindProvider, Err: err}
	}

	text := StripCodeFences(completion.Text)

	var content json.RawMessage
	if err := json.Unmarshal([]byte(text), &content); err != nil {
		return nil, &Error{Kind: KindParse, Err: fmt.Errorf("failed to parse JSON response from %s: %w", s.provider.GetProviderName(), err)}
	}

	if s.opts.StrictSchema {
		if err := ValidateShape(content); err != nil {
			return nil, &Error{Kind: KindSchema, Err: err}
		}
	}

	result := &Result{
		Content: content,
		Usage:   s.opts.Pricing.Usage(completion.InputTokens, completion.OutputTokens),
		Model:   completion.Model,
	}

	var resume models.TailoredResume
	if err := json.Unmarshal(content, &resume); err == nil {
		result.Resume = &resume
	}

	fields := map[string]interface{}{
		"provider":        s.provider.GetProviderName(),
		"model":           completion.Model,
		"stop_reason":     completion.StopReason,
		"input_tokens":    completion.InputTokens,
		"output_tokens":   completion.OutputTokens,
		"processing_time": time.Since(startTime).String(),
	}
	if result.Resume != nil {
		fields["professional_title"] = result.Resume.ProfessionalTitle
		fields["experience_count"] = len(result.Resume.Experience)
		fields["bullet_count"] = result.Resume.BulletCount()
	}
	s.logger.Debug("Provider reply parsed", fields)

	return result, nil
}
