// Package lorem is a mock LLM provider that generates lorem ipsum text.
// Used for testing and development without requiring real API keys.
package lorem

import (
	"context"
	"strings"

	loremgen "github.com/bozaro/golorem"

	llmgateway "github.com/bchan/llmgateway-go"
)

// DefaultModel is the model reported when the caller omits one.
const DefaultModel = "lorem-fast"

// Provider generates placeholder text locally. It never touches the network
// and accepts any model name.
type Provider struct {
	generator *loremgen.Lorem
}

// NewProvider creates a new lorem ipsum provider.
func NewProvider() *Provider {
	return &Provider{
		generator: loremgen.New(),
	}
}

// Name returns the provider identifier.
func (p *Provider) Name() llmgateway.ProviderID {
	return llmgateway.ProviderLorem
}

// DefaultModel returns the model used when the caller omits one.
func (p *Provider) DefaultModel() string {
	return DefaultModel
}

// Generate produces a short lorem ipsum completion. The context is honored
// so cancelled calls behave like the real backends.
func (p *Provider) Generate(ctx context.Context, req *llmgateway.GenerateRequest) (*llmgateway.GenerateResponse, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	// Scale output very roughly with the requested ceiling.
	// Estimate: 1 token per word, 5-15 words per sentence.
	maxTokens := req.Params.GetMaxTokens(64)
	sentences := maxTokens / 10
	if sentences < 1 {
		sentences = 1
	}
	if sentences > 8 {
		sentences = 8
	}

	var b strings.Builder
	for i := 0; i < sentences; i++ {
		if i > 0 {
			b.WriteString(" ")
		}
		b.WriteString(p.generator.Sentence(5, 15))
	}

	return &llmgateway.GenerateResponse{Text: b.String()}, nil
}
