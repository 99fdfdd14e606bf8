package openai

import (
	llmgateway "github.com/bchan/llmgateway-go"
)

// buildChatCompletionRequest translates a gateway request into OpenAI's wire
// format. The message sequence passes through unchanged: OpenAI understands
// the system role, so no folding is needed.
func buildChatCompletionRequest(req *llmgateway.GenerateRequest) *ChatCompletionRequest {
	messages := make([]Message, 0, len(req.Messages))
	for _, msg := range req.Messages {
		messages = append(messages, Message{
			Role:    msg.Role,
			Content: msg.Content,
		})
	}

	out := &ChatCompletionRequest{
		Model:    req.Model,
		Messages: messages,
	}

	if req.Params != nil {
		if req.Params.Temperature != nil {
			out.Temperature = req.Params.Temperature
		}
		if req.Params.MaxTokens != nil {
			out.MaxTokens = req.Params.MaxTokens
		}
	}

	return out
}

// extractCompletionText returns the first choice's message content.
// A response without it is an extraction failure, not a transport failure.
func extractCompletionText(resp *ChatCompletionResponse) (string, error) {
	if len(resp.Choices) == 0 {
		return "", &llmgateway.ExtractionError{
			Provider: llmgateway.ProviderOpenAI.String(),
			Reason:   "response contains no choices",
		}
	}

	content := resp.Choices[0].Message.Content
	if content == nil {
		return "", &llmgateway.ExtractionError{
			Provider: llmgateway.ProviderOpenAI.String(),
			Reason:   "first choice has no message content",
		}
	}

	return *content, nil
}
