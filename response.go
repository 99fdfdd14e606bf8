package llmgateway

// GenerateResponse contains the LLM provider's response.
//
// Only the extracted completion text is surfaced. Usage counters, stop
// reasons and other vendor metadata are deliberately not modeled.
type GenerateResponse struct {
	// Text is the first completion unit's text, verbatim
	Text string
}
