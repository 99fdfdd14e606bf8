package llmgateway

import "fmt"

// Message roles recognized by the gateway. Roles need not be unique within a
// conversation and their order is meaningful and preserved.
const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// GenerateRequest contains the parameters for an LLM generation request.
type GenerateRequest struct {
	// Messages contains the ordered conversation history.
	// Each message has a Role (system/user/assistant) and text Content.
	Messages []Message

	// Model is the model identifier (e.g., "gpt-4o", "claude-3-opus-20240229").
	// Empty means the provider's default model.
	Model string

	// Params contains the generation parameters (temperature, max_tokens).
	// Provider adapters extract what they support from this unified struct.
	Params *RequestParams
}

// Message represents a single message in the conversation.
type Message struct {
	// Role is "system", "user" or "assistant"
	Role string

	// Content is the text content of the message
	Content string
}

// Validate checks that the request can be dispatched at all. An empty message
// sequence is rejected here, before any network attempt.
func (r *GenerateRequest) Validate() error {
	if len(r.Messages) == 0 {
		return &ValidationError{
			Field:  "messages",
			Reason: "message sequence must not be empty",
			Err:    ErrInvalidRequest,
		}
	}
	for i, msg := range r.Messages {
		switch msg.Role {
		case RoleSystem, RoleUser, RoleAssistant:
		default:
			return &ValidationError{
				Field:  "messages",
				Value:  msg.Role,
				Reason: fmt.Sprintf("unknown role at index %d", i),
				Err:    ErrInvalidRequest,
			}
		}
	}
	return ValidateRequestParams(r.Params)
}
