package llmgateway

import (
	"sort"
	"strings"
)

// ProviderID represents a unique provider identifier.
// Using a typed constant prevents typos and provides compile-time safety.
type ProviderID string

// Known provider identifiers
const (
	// ProviderOpenAI is OpenAI's chat completions API
	ProviderOpenAI ProviderID = "openai"

	// ProviderAnthropic is Anthropic's Claude API
	ProviderAnthropic ProviderID = "anthropic"

	// ProviderLorem is the mock Lorem provider for testing and offline use.
	// It is never resolved implicitly; callers register it explicitly.
	ProviderLorem ProviderID = "lorem"
)

// String returns the string representation of the provider ID
func (p ProviderID) String() string {
	return string(p)
}

// IsValid returns true if the provider ID names a hosted vendor backend the
// gateway knows how to configure. The lorem mock is excluded on purpose: it
// is only reachable through an explicit registry entry.
func (p ProviderID) IsValid() bool {
	switch p {
	case ProviderOpenAI, ProviderAnthropic:
		return true
	default:
		return false
	}
}

// ParseProviderID normalizes a caller-supplied provider name. Matching is
// case-insensitive and ignores surrounding whitespace.
func ParseProviderID(name string) ProviderID {
	return ProviderID(strings.ToLower(strings.TrimSpace(name)))
}

// Registry maps provider identifiers to backend implementations. It is
// populated once at startup and read-only afterwards, so lookups need no
// locking; concurrent calls through the gateway share it safely.
type Registry struct {
	providers map[ProviderID]Provider
}

// NewRegistry creates an empty provider registry.
func NewRegistry() *Registry {
	return &Registry{
		providers: make(map[ProviderID]Provider),
	}
}

// Register adds a provider under its own Name(). Registering the same ID
// twice replaces the earlier entry.
func (r *Registry) Register(p Provider) {
	r.providers[p.Name()] = p
}

// Get returns the provider registered under id.
func (r *Registry) Get(id ProviderID) (Provider, bool) {
	p, ok := r.providers[id]
	return p, ok
}

// IDs returns the registered provider identifiers in sorted order.
func (r *Registry) IDs() []ProviderID {
	ids := make([]ProviderID, 0, len(r.providers))
	for id := range r.providers {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}
