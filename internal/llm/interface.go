package llm

// Re-export provider types so callers only import this package
import "resume-tailor/internal/llm/types"

type Provider = types.Provider
type CompletionRequest = types.CompletionRequest
type Completion = types.Completion
