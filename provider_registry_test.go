package llmgateway

import (
	"testing"
)

func TestParseProviderID(t *testing.T) {
	tests := []struct {
		input    string
		expected ProviderID
	}{
		{"openai", ProviderOpenAI},
		{"OpenAI", ProviderOpenAI},
		{"ANTHROPIC", ProviderAnthropic},
		{" anthropic ", ProviderAnthropic},
		{"Lorem", ProviderLorem},
		{"gemini", ProviderID("gemini")},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := ParseProviderID(tt.input); got != tt.expected {
				t.Errorf("ParseProviderID(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestProviderID_IsValid(t *testing.T) {
	tests := []struct {
		id       ProviderID
		expected bool
	}{
		{ProviderOpenAI, true},
		{ProviderAnthropic, true},
		// The lorem mock is only reachable through explicit registration.
		{ProviderLorem, false},
		{ProviderID("gemini"), false},
		{ProviderID(""), false},
	}

	for _, tt := range tests {
		if got := tt.id.IsValid(); got != tt.expected {
			t.Errorf("IsValid(%q) = %v, want %v", tt.id, got, tt.expected)
		}
	}
}

func TestRegistry(t *testing.T) {
	registry := NewRegistry()

	if _, ok := registry.Get(ProviderOpenAI); ok {
		t.Error("empty registry returned a provider")
	}

	openaiStub := &stubProvider{id: ProviderOpenAI}
	anthropicStub := &stubProvider{id: ProviderAnthropic}
	registry.Register(anthropicStub)
	registry.Register(openaiStub)

	p, ok := registry.Get(ProviderOpenAI)
	if !ok || p != Provider(openaiStub) {
		t.Error("Get(openai) did not return the registered provider")
	}

	ids := registry.IDs()
	if len(ids) != 2 || ids[0] != ProviderAnthropic || ids[1] != ProviderOpenAI {
		t.Errorf("IDs() = %v, want sorted [anthropic openai]", ids)
	}

	// Re-registering replaces
	replacement := &stubProvider{id: ProviderOpenAI, reply: "new"}
	registry.Register(replacement)
	p, _ = registry.Get(ProviderOpenAI)
	if p != Provider(replacement) {
		t.Error("re-registering did not replace the entry")
	}
}
