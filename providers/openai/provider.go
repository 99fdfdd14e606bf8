package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	llmgateway "github.com/bchan/llmgateway-go"
)

const (
	// DefaultModel is used when the caller does not specify a model.
	DefaultModel = "gpt-4o"

	defaultBaseURL = "https://api.openai.com/v1"
)

// Provider implements the llmgateway.Provider interface against OpenAI's
// chat completions API. Requests go over plain HTTP with JSON bodies; there
// is no retry or rate-limit handling at this layer.
type Provider struct {
	apiKey     string
	httpClient *http.Client
	baseURL    string
}

// Option customizes a Provider.
type Option func(*Provider)

// WithBaseURL overrides the API base URL. Used for tests and proxies.
func WithBaseURL(baseURL string) Option {
	return func(p *Provider) {
		p.baseURL = baseURL
	}
}

// WithHTTPClient overrides the HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(p *Provider) {
		p.httpClient = client
	}
}

// NewProvider creates a new OpenAI provider with the given API key.
func NewProvider(apiKey string, opts ...Option) (*Provider, error) {
	if apiKey == "" {
		return nil, &llmgateway.ConfigError{
			Provider: llmgateway.ProviderOpenAI.String(),
			Reason:   "API key must not be empty",
			Err:      llmgateway.ErrMissingAPIKey,
		}
	}

	p := &Provider{
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: 120 * time.Second},
		baseURL:    defaultBaseURL,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p, nil
}

// Name returns the provider identifier.
func (p *Provider) Name() llmgateway.ProviderID {
	return llmgateway.ProviderOpenAI
}

// DefaultModel returns the model used when the caller omits one.
func (p *Provider) DefaultModel() string {
	return DefaultModel
}

// Generate performs one blocking chat completion round-trip.
func (p *Provider) Generate(ctx context.Context, req *llmgateway.GenerateRequest) (*llmgateway.GenerateResponse, error) {
	openaiReq := buildChatCompletionRequest(req)

	httpReq, err := p.buildHTTPRequest(ctx, openaiReq)
	if err != nil {
		return nil, err
	}

	resp, err := p.httpClient.Do(httpReq)
	if err != nil {
		return nil, &llmgateway.ProviderError{
			Provider: p.Name().String(),
			Message:  err.Error(),
			Err:      err,
		}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, p.handleErrorResponse(resp)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &llmgateway.ProviderError{
			Provider: p.Name().String(),
			Message:  "failed to read response body: " + err.Error(),
			Err:      err,
		}
	}

	var chatResp ChatCompletionResponse
	if err := json.Unmarshal(body, &chatResp); err != nil {
		return nil, &llmgateway.ProviderError{
			Provider: p.Name().String(),
			Message:  "failed to parse response: " + err.Error(),
			Err:      err,
		}
	}

	text, err := extractCompletionText(&chatResp)
	if err != nil {
		return nil, err
	}

	return &llmgateway.GenerateResponse{Text: text}, nil
}

// buildHTTPRequest creates an HTTP request for the chat completions endpoint.
func (p *Provider) buildHTTPRequest(ctx context.Context, req *ChatCompletionRequest) (*http.Request, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, &llmgateway.ProviderError{
			Provider: p.Name().String(),
			Message:  "failed to marshal request: " + err.Error(),
			Err:      err,
		}
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, p.baseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return nil, &llmgateway.ProviderError{
			Provider: p.Name().String(),
			Message:  "failed to build request: " + err.Error(),
			Err:      err,
		}
	}

	httpReq.Header.Set("Authorization", "Bearer "+p.apiKey)
	httpReq.Header.Set("Content-Type", "application/json")

	return httpReq, nil
}

// handleErrorResponse parses non-200 responses from OpenAI.
func (p *Provider) handleErrorResponse(resp *http.Response) error {
	body, _ := io.ReadAll(resp.Body)

	// Try to parse the structured error envelope
	var errResp struct {
		Error struct {
			Message string `json:"message"`
			Type    string `json:"type"`
			Code    string `json:"code"`
		} `json:"error"`
	}

	message := string(body)
	if err := json.Unmarshal(body, &errResp); err == nil && errResp.Error.Message != "" {
		message = errResp.Error.Message
	}

	return &llmgateway.ProviderError{
		Provider:   p.Name().String(),
		StatusCode: resp.StatusCode,
		Message:    message,
	}
}
