package anthropic

import (
	"context"
	"errors"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	llmgateway "github.com/bchan/llmgateway-go"
)

// DefaultModel is used when the caller does not specify a model.
const DefaultModel = "claude-3-opus-20240229"

// Provider implements the llmgateway.Provider interface for Anthropic
// (Claude) models through the official SDK.
type Provider struct {
	client *anthropic.Client
}

// NewProvider creates a new Anthropic provider with the given API key.
func NewProvider(apiKey string) (*Provider, error) {
	if apiKey == "" {
		return nil, &llmgateway.ConfigError{
			Provider: llmgateway.ProviderAnthropic.String(),
			Reason:   "API key must not be empty",
			Err:      llmgateway.ErrMissingAPIKey,
		}
	}

	client := anthropic.NewClient(option.WithAPIKey(apiKey))

	return &Provider{
		client: &client,
	}, nil
}

// Name returns the provider identifier.
func (p *Provider) Name() llmgateway.ProviderID {
	return llmgateway.ProviderAnthropic
}

// DefaultModel returns the model used when the caller omits one.
func (p *Provider) DefaultModel() string {
	return DefaultModel
}

// Generate performs one blocking Messages API round-trip.
func (p *Provider) Generate(ctx context.Context, req *llmgateway.GenerateRequest) (*llmgateway.GenerateResponse, error) {
	apiParams, err := buildMessageParams(req)
	if err != nil {
		return nil, err
	}

	message, err := p.client.Messages.New(ctx, apiParams)
	if err != nil {
		providerErr := &llmgateway.ProviderError{
			Provider: p.Name().String(),
			Message:  err.Error(),
			Err:      err,
		}
		var apierr *anthropic.Error
		if errors.As(err, &apierr) {
			providerErr.StatusCode = apierr.StatusCode
		}
		return nil, providerErr
	}

	text, err := extractCompletionText(message)
	if err != nil {
		return nil, err
	}

	return &llmgateway.GenerateResponse{Text: text}, nil
}
