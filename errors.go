package llmgateway

import (
	"errors"
	"fmt"
)

// Sentinel errors for common failure modes.
// These can be checked with errors.Is().
var (
	// ErrUnknownProvider indicates the requested provider name is not registered.
	ErrUnknownProvider = errors.New("llmgateway: unknown provider")

	// ErrMissingAPIKey indicates the credential for the chosen provider is
	// absent or still set to a placeholder value.
	ErrMissingAPIKey = errors.New("llmgateway: missing API key")

	// ErrInvalidRequest indicates the request parameters are invalid.
	ErrInvalidRequest = errors.New("llmgateway: invalid request")

	// ErrNoCompletion indicates the provider response lacked the expected
	// completion text field.
	ErrNoCompletion = errors.New("llmgateway: response contains no completion")
)

// ConfigError represents a configuration failure: an unrecognized provider
// name or a missing credential. It is always raised before any network call.
type ConfigError struct {
	Provider string // The provider name as given by the caller
	Reason   string // Human-readable explanation
	Err      error  // Wrapped sentinel (ErrUnknownProvider or ErrMissingAPIKey)
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("provider '%s': %s", e.Provider, e.Reason)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// ValidationError represents an error in request validation.
type ValidationError struct {
	Field  string // The field that failed validation
	Value  any    // The invalid value, if meaningful
	Reason string // Human-readable explanation
	Err    error  // Wrapped error (usually ErrInvalidRequest)
}

func (e *ValidationError) Error() string {
	if e.Value != nil {
		return fmt.Sprintf("validation failed for '%s' (value: %v): %s", e.Field, e.Value, e.Reason)
	}
	return fmt.Sprintf("validation failed for '%s': %s", e.Field, e.Reason)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// ProviderError represents a transport or API failure from the underlying
// provider. The gateway never retries these; they carry enough context
// (provider name, status, cause) to display to an end user.
type ProviderError struct {
	Provider   string // The provider name
	StatusCode int    // HTTP status code (if applicable)
	Message    string // Error message from the provider
	Err        error  // Underlying cause
}

func (e *ProviderError) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("provider '%s' call failed (status %d): %s", e.Provider, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("provider '%s' call failed: %s", e.Provider, e.Message)
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}

// ExtractionError indicates the provider responded successfully at the
// transport level but the response shape lacked the expected completion
// field. Kept distinct from ProviderError so callers can tell a wire failure
// from a schema surprise.
type ExtractionError struct {
	Provider string // The provider name
	Reason   string // What was missing
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("provider '%s': %s", e.Provider, e.Reason)
}

func (e *ExtractionError) Unwrap() error {
	return ErrNoCompletion
}

// IsConfigError checks if an error is a configuration failure (unknown
// provider or missing credential).
func IsConfigError(err error) bool {
	if err == nil {
		return false
	}

	var configErr *ConfigError
	if errors.As(err, &configErr) {
		return true
	}

	return errors.Is(err, ErrUnknownProvider) || errors.Is(err, ErrMissingAPIKey)
}

// IsValidationError checks if an error indicates an invalid request.
func IsValidationError(err error) bool {
	if err == nil {
		return false
	}

	var validationErr *ValidationError
	if errors.As(err, &validationErr) {
		return true
	}

	return errors.Is(err, ErrInvalidRequest)
}

// IsTransportError checks if an error came from the provider's network or
// API layer.
func IsTransportError(err error) bool {
	if err == nil {
		return false
	}

	var providerErr *ProviderError
	return errors.As(err, &providerErr)
}

// IsExtractionError checks if an error indicates a response without the
// expected completion field.
func IsExtractionError(err error) bool {
	if err == nil {
		return false
	}

	var extractionErr *ExtractionError
	if errors.As(err, &extractionErr) {
		return true
	}

	return errors.Is(err, ErrNoCompletion)
}
