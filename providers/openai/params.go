package openai

// Wire types for OpenAI's chat completions endpoint. Only the fields the
// gateway actually sends and reads are modeled.

// ChatCompletionRequest represents an OpenAI chat completion request.
type ChatCompletionRequest struct {
	Model       string    `json:"model"`
	Messages    []Message `json:"messages"`
	Temperature *float64  `json:"temperature,omitempty"`
	// MaxTokens is omitted entirely when the caller sets no ceiling; OpenAI
	// then applies its own per-model default.
	MaxTokens *int `json:"max_tokens,omitempty"`
}

// Message represents a message in the conversation.
// OpenAI supports the system role natively, so sequences pass through
// unchanged and in order.
type Message struct {
	Role    string `json:"role"` // "system", "user", "assistant"
	Content string `json:"content"`
}

// ChatCompletionResponse represents an OpenAI chat completion response.
type ChatCompletionResponse struct {
	ID      string   `json:"id"`
	Object  string   `json:"object"` // "chat.completion"
	Created int64    `json:"created"`
	Model   string   `json:"model"`
	Choices []Choice `json:"choices"`
}

// Choice represents a completion choice in the response.
type Choice struct {
	Index        int           `json:"index"`
	Message      ChoiceMessage `json:"message"`
	FinishReason *string       `json:"finish_reason"`
}

// ChoiceMessage is the assistant message inside a choice. Content is a
// pointer because the API returns null for tool-call-only responses.
type ChoiceMessage struct {
	Role    string  `json:"role"`
	Content *string `json:"content"`
}
