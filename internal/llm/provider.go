package llm

import "context"

// Provider is the interface every chat backend implements. The engine
// holds one Provider for the lifetime of the process, usually wrapped by
// RateLimitedProvider and BreakerProvider.
type Provider interface {
	// Complete sends a completion request and returns the response.
	Complete(ctx context.Context, req CompletionRequest) (*CompletionResponse, error)
	// Name identifies the provider in reply metadata ("azure", "openai",
	// "ollama").
	Name() string
}
