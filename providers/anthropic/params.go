package anthropic

import (
	"fmt"

	"github.com/anthropics/anthropic-sdk-go"

	llmgateway "github.com/bchan/llmgateway-go"
)

// defaultMaxTokens is sent whenever the caller sets no ceiling. The Messages
// API requires max_tokens on every request, unlike OpenAI where the field
// can simply be omitted.
const defaultMaxTokens = 4096

// buildMessageParams constructs Anthropic API parameters from a gateway
// request.
func buildMessageParams(req *llmgateway.GenerateRequest) (anthropic.MessageNewParams, error) {
	messages, err := convertToAnthropicMessages(req.Messages)
	if err != nil {
		return anthropic.MessageNewParams{}, fmt.Errorf("failed to convert messages: %w", err)
	}

	apiParams := anthropic.MessageNewParams{
		Model:     anthropic.Model(req.Model),
		Messages:  messages,
		MaxTokens: int64(req.Params.GetMaxTokens(defaultMaxTokens)),
	}

	if req.Params != nil && req.Params.Temperature != nil {
		apiParams.Temperature = anthropic.Float(*req.Params.Temperature)
	}

	return apiParams, nil
}
