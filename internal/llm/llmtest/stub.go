// Package llmtest provides a scripted llm.Provider for tests.
package llmtest

import (
	"context"
	"sync"

	"resume-tailor/internal/llm"
)

// StubProvider returns a fixed reply (or error) and records every request
type StubProvider struct {
	Text         string
	InputTokens  int64
	OutputTokens int64
	Err          error

	mu       sync.Mutex
	requests []llm.CompletionRequest
	lastCtx  context.Context
}

// Complete records req and returns the scripted reply
func (s *StubProvider) Complete(ctx context.Context, req llm.CompletionRequest) (*llm.Completion, error) {
	s.mu.Lock()
	s.requests = append(s.requests, req)
	s.lastCtx = ctx
	s.mu.Unlock()

	if s.Err != nil {
		return nil, s.Err
	}
	return &llm.Completion{
		Text:         s.Text,
		InputTokens:  s.InputTokens,
		OutputTokens: s.OutputTokens,
		Model:        req.Model,
		StopReason:   "end_turn",
	}, nil
}

// GetProviderName returns "stub"
func (s *StubProvider) GetProviderName() string {
	return "stub"
}

// Calls returns how many completions were requested
func (s *StubProvider) Calls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.requests)
}

// LastContext returns the context passed to the most recent call
func (s *StubProvider) LastContext() context.Context {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastCtx
}

// LastRequest returns the most recent request, if any
func (s *StubProvider) LastRequest() (llm.CompletionRequest, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.requests) == 0 {
		return llm.CompletionRequest{}, false
	}
	return s.requests[len(s.requests)-1], true
}
