package llmgateway

import (
	"fmt"
)

// DefaultTemperature is applied by the gateway when the caller leaves
// Temperature unset.
const DefaultTemperature = 0.7

// RequestParams represents the generation parameters shared across providers.
// All fields are optional pointers to distinguish "not set" from "set to zero
// value". Provider adapters extract what they support.
//
// Max tokens handling is intentionally asymmetric and mirrors the vendor
// APIs: when MaxTokens is unset the OpenAI adapter omits the field (the
// provider picks its own ceiling), while the Anthropic adapter sends a fixed
// 4096 ceiling because its API requires the field.
type RequestParams struct {
	// Model overrides the provider's default model when set and non-empty.
	Model *string `json:"model,omitempty" yaml:"model,omitempty"`

	// Temperature controls randomness (0.0-1.0).
	// 0.0 = deterministic, 1.0 = maximum randomness. Defaults to 0.7.
	Temperature *float64 `json:"temperature,omitempty" yaml:"temperature,omitempty"`

	// MaxTokens sets the maximum number of tokens to generate.
	MaxTokens *int `json:"max_tokens,omitempty" yaml:"max_tokens,omitempty"`
}

// ValidateRequestParams validates request parameters.
func ValidateRequestParams(params *RequestParams) error {
	if params == nil {
		return nil // nil params is valid
	}

	if params.Temperature != nil {
		if *params.Temperature < 0.0 || *params.Temperature > 1.0 {
			return &ValidationError{
				Field:  "temperature",
				Value:  *params.Temperature,
				Reason: "must be between 0.0 and 1.0",
				Err:    ErrInvalidRequest,
			}
		}
	}

	if params.MaxTokens != nil {
		if *params.MaxTokens < 1 {
			return &ValidationError{
				Field:  "max_tokens",
				Value:  *params.MaxTokens,
				Reason: fmt.Sprintf("must be positive, got %d", *params.MaxTokens),
				Err:    ErrInvalidRequest,
			}
		}
	}

	return nil
}

// GetTemperature returns temperature with default fallback.
func (rp *RequestParams) GetTemperature(defaultValue float64) float64 {
	if rp != nil && rp.Temperature != nil {
		return *rp.Temperature
	}
	return defaultValue
}

// GetMaxTokens returns max_tokens with default fallback.
func (rp *RequestParams) GetMaxTokens(defaultValue int) int {
	if rp != nil && rp.MaxTokens != nil {
		return *rp.MaxTokens
	}
	return defaultValue
}

// HasMaxTokens reports whether the caller set an explicit token ceiling.
func (rp *RequestParams) HasMaxTokens() bool {
	return rp != nil && rp.MaxTokens != nil
}

// StrPtr returns a pointer to the given string.
// Useful for creating optional parameters.
func StrPtr(s string) *string {
	return &s
}

// FloatPtr returns a pointer to the given float64.
// Useful for creating optional parameters.
func FloatPtr(f float64) *float64 {
	return &f
}

// IntPtr returns a pointer to the given int.
// Useful for creating optional parameters.
func IntPtr(i int) *int {
	return &i
}
