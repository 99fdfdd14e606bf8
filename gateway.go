package llmgateway

import (
	"context"
	"fmt"
)

// Gateway dispatches generation requests to a registered provider backend.
// Dispatch resolves the provider name and validates the request before any
// network call is attempted; an unrecognized name or a missing credential
// never reaches the network layer.
//
// A Gateway is safe for concurrent use: it holds no mutable state and each
// call constructs its own request.
type Gateway struct {
	registry *Registry
}

// New creates a Gateway over an already-populated registry. The registry is
// built once at process start from an explicit Config (see internal/cli for
// the standard wiring); providers whose credentials are absent are simply not
// registered, which is how the gateway tells "missing API key" apart from
// "unknown provider".
func New(registry *Registry) *Gateway {
	return &Gateway{registry: registry}
}

// Complete sends a single-turn prompt to the named provider and returns the
// completion text.
func (g *Gateway) Complete(ctx context.Context, provider string, prompt string, params *RequestParams) (string, error) {
	return g.Chat(ctx, provider, []Message{{Role: RoleUser, Content: prompt}}, params)
}

// Chat sends an ordered role/content message sequence to the named provider
// and returns the completion text. Message order is preserved; backends
// without a native system role fold system messages internally.
func (g *Gateway) Chat(ctx context.Context, provider string, messages []Message, params *RequestParams) (string, error) {
	backend, err := g.resolve(provider)
	if err != nil {
		return "", err
	}

	req := &GenerateRequest{
		Messages: messages,
		Model:    "",
		Params:   effectiveParams(params),
	}
	if err := req.Validate(); err != nil {
		return "", err
	}

	// Default model selection: the caller's explicit model wins verbatim,
	// otherwise the provider's documented default is used.
	req.Model = backend.DefaultModel()
	if params != nil && params.Model != nil && *params.Model != "" {
		req.Model = *params.Model
	}

	resp, err := backend.Generate(ctx, req)
	if err != nil {
		return "", err
	}
	return resp.Text, nil
}

// resolve maps a case-insensitive provider name to a registered backend, or
// fails fast with a ConfigError. No network call is ever attempted for an
// unresolvable name.
func (g *Gateway) resolve(name string) (Provider, error) {
	id := ParseProviderID(name)

	if p, ok := g.registry.Get(id); ok {
		return p, nil
	}

	if id.IsValid() {
		// Known vendor, but never registered: its credential was absent or
		// still a placeholder at startup.
		return nil, &ConfigError{
			Provider: name,
			Reason:   fmt.Sprintf("no API key configured for '%s'", id),
			Err:      ErrMissingAPIKey,
		}
	}

	return nil, &ConfigError{
		Provider: name,
		Reason:   "unrecognized provider (supported: openai, anthropic)",
		Err:      ErrUnknownProvider,
	}
}

// effectiveParams copies the caller's params and fills in the gateway-level
// temperature default. The caller's struct is never mutated.
func effectiveParams(params *RequestParams) *RequestParams {
	out := &RequestParams{}
	if params != nil {
		*out = *params
	}
	if out.Temperature == nil {
		out.Temperature = FloatPtr(DefaultTemperature)
	}
	return out
}
