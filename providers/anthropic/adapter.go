package anthropic

import (
	"fmt"

	"github.com/anthropics/anthropic-sdk-go"

	llmgateway "github.com/bchan/llmgateway-go"
)

// foldSystemMessages reshapes a role-tagged sequence for the Messages API,
// which accepts only user and assistant roles. Every system message is
// folded into the first user message collected so far: the system content is
// prepended, followed by "\n\n", followed by the existing user content, and
// the system message is dropped from the outgoing sequence. Order of the
// remaining messages is preserved.
//
// When a system message arrives before any user message, a user turn is
// synthesized from its content at that position instead of silently dropping
// it; later system messages then fold into that synthesized turn.
func foldSystemMessages(messages []llmgateway.Message) []llmgateway.Message {
	out := make([]llmgateway.Message, 0, len(messages))
	firstUser := -1

	for _, msg := range messages {
		if msg.Role != llmgateway.RoleSystem {
			out = append(out, msg)
			if firstUser == -1 && msg.Role == llmgateway.RoleUser {
				firstUser = len(out) - 1
			}
			continue
		}

		if firstUser >= 0 {
			out[firstUser].Content = msg.Content + "\n\n" + out[firstUser].Content
			continue
		}

		out = append(out, llmgateway.Message{
			Role:    llmgateway.RoleUser,
			Content: msg.Content,
		})
		firstUser = len(out) - 1
	}

	return out
}

// convertToAnthropicMessages converts gateway messages to Anthropic SDK
// format, folding system messages first.
func convertToAnthropicMessages(messages []llmgateway.Message) ([]anthropic.MessageParam, error) {
	folded := foldSystemMessages(messages)

	result := make([]anthropic.MessageParam, 0, len(folded))
	for i, msg := range folded {
		block := anthropic.NewTextBlock(msg.Content)

		switch msg.Role {
		case llmgateway.RoleUser:
			result = append(result, anthropic.NewUserMessage(block))
		case llmgateway.RoleAssistant:
			result = append(result, anthropic.NewAssistantMessage(block))
		default:
			return nil, fmt.Errorf("message %d: unsupported role '%s' after folding", i, msg.Role)
		}
	}

	return result, nil
}

// extractCompletionText returns the first content block's text. A response
// without it is an extraction failure, not a transport failure.
func extractCompletionText(msg *anthropic.Message) (string, error) {
	if len(msg.Content) == 0 {
		return "", &llmgateway.ExtractionError{
			Provider: llmgateway.ProviderAnthropic.String(),
			Reason:   "response contains no content blocks",
		}
	}

	first := msg.Content[0]
	if first.Type != "text" {
		return "", &llmgateway.ExtractionError{
			Provider: llmgateway.ProviderAnthropic.String(),
			Reason:   fmt.Sprintf("first content block has type '%s', not text", first.Type),
		}
	}

	return first.Text, nil
}
