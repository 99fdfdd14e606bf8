package llmgateway

import (
	"context"
)

// Provider defines the interface that all LLM backends must implement.
// This abstraction normalizes the vendor request/response shapes (OpenAI,
// Anthropic, ...) into one call signature. Adding a provider means writing
// one implementation and one registry entry.
//
// Types used by this interface:
//   - GenerateRequest, Message: defined in request.go
//   - GenerateResponse: defined in response.go
type Provider interface {
	// Generate performs one blocking round-trip against the backend and
	// returns the extracted completion text. No retries, no partial results:
	// a transport or API failure surfaces as a *ProviderError, a response
	// missing the completion field as an *ExtractionError.
	Generate(ctx context.Context, req *GenerateRequest) (*GenerateResponse, error)

	// Name returns the provider identifier (e.g., "anthropic", "openai", "lorem")
	Name() ProviderID

	// DefaultModel returns the model used when the caller does not specify one.
	DefaultModel() string
}
