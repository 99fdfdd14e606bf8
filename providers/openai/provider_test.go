package openai

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	llmgateway "github.com/bchan/llmgateway-go"
)

const completionOK = `{
	"id": "chatcmpl-123",
	"object": "chat.completion",
	"created": 1700000000,
	"model": "gpt-4o",
	"choices": [
		{"index": 0, "message": {"role": "assistant", "content": "T"}, "finish_reason": "stop"}
	]
}`

// recordingServer captures the last request body and counts calls.
type recordingServer struct {
	*httptest.Server
	calls    int
	lastBody map[string]interface{}
	lastAuth string
}

func newRecordingServer(t *testing.T, status int, response string) *recordingServer {
	t.Helper()
	rs := &recordingServer{}
	rs.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rs.calls++
		rs.lastAuth = r.Header.Get("Authorization")
		body, _ := io.ReadAll(r.Body)
		rs.lastBody = nil
		_ = json.Unmarshal(body, &rs.lastBody)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(response))
	}))
	t.Cleanup(rs.Close)
	return rs
}

func newTestProvider(t *testing.T, srv *recordingServer) *Provider {
	t.Helper()
	p, err := NewProvider("sk-test", WithBaseURL(srv.URL))
	if err != nil {
		t.Fatalf("NewProvider error = %v", err)
	}
	return p
}

func TestNewProvider_EmptyKey(t *testing.T) {
	_, err := NewProvider("")
	if !errors.Is(err, llmgateway.ErrMissingAPIKey) {
		t.Errorf("error = %v, want ErrMissingAPIKey", err)
	}
}

func TestGenerate_SingleTurn(t *testing.T) {
	srv := newRecordingServer(t, http.StatusOK, completionOK)
	p := newTestProvider(t, srv)

	req := &llmgateway.GenerateRequest{
		Messages: []llmgateway.Message{{Role: llmgateway.RoleUser, Content: "hello"}},
		Model:    "gpt-4o",
		Params:   &llmgateway.RequestParams{Temperature: llmgateway.FloatPtr(0.7)},
	}

	resp, err := p.Generate(context.Background(), req)
	if err != nil {
		t.Fatalf("Generate error = %v", err)
	}
	if resp.Text != "T" {
		t.Errorf("Text = %q, want %q", resp.Text, "T")
	}

	if srv.calls != 1 {
		t.Errorf("calls = %d, want 1", srv.calls)
	}
	if srv.lastAuth != "Bearer sk-test" {
		t.Errorf("Authorization = %q", srv.lastAuth)
	}
	if srv.lastBody["model"] != "gpt-4o" {
		t.Errorf("model = %v", srv.lastBody["model"])
	}
	if srv.lastBody["temperature"] != 0.7 {
		t.Errorf("temperature = %v", srv.lastBody["temperature"])
	}
	// No ceiling set: the field must be omitted so OpenAI applies its own
	// default.
	if _, present := srv.lastBody["max_tokens"]; present {
		t.Error("max_tokens sent despite being unset")
	}
}

func TestGenerate_MaxTokensSentWhenSet(t *testing.T) {
	srv := newRecordingServer(t, http.StatusOK, completionOK)
	p := newTestProvider(t, srv)

	req := &llmgateway.GenerateRequest{
		Messages: []llmgateway.Message{{Role: llmgateway.RoleUser, Content: "hello"}},
		Model:    "gpt-4o",
		Params:   &llmgateway.RequestParams{MaxTokens: llmgateway.IntPtr(256)},
	}

	if _, err := p.Generate(context.Background(), req); err != nil {
		t.Fatalf("Generate error = %v", err)
	}
	if got := srv.lastBody["max_tokens"]; got != float64(256) {
		t.Errorf("max_tokens = %v, want 256", got)
	}
}

func TestGenerate_MultiTurnPassThrough(t *testing.T) {
	srv := newRecordingServer(t, http.StatusOK, completionOK)
	p := newTestProvider(t, srv)

	messages := []llmgateway.Message{
		{Role: llmgateway.RoleSystem, Content: "be brief"},
		{Role: llmgateway.RoleUser, Content: "hello"},
		{Role: llmgateway.RoleAssistant, Content: "hi"},
		{Role: llmgateway.RoleUser, Content: "bye"},
	}
	req := &llmgateway.GenerateRequest{Messages: messages, Model: "gpt-4o"}

	if _, err := p.Generate(context.Background(), req); err != nil {
		t.Fatalf("Generate error = %v", err)
	}

	sent, ok := srv.lastBody["messages"].([]interface{})
	if !ok || len(sent) != len(messages) {
		t.Fatalf("messages sent = %v, want %d entries", srv.lastBody["messages"], len(messages))
	}
	// The system role passes through natively, order preserved.
	for i, msg := range messages {
		entry := sent[i].(map[string]interface{})
		if entry["role"] != msg.Role || entry["content"] != msg.Content {
			t.Errorf("message %d = %v, want %+v", i, entry, msg)
		}
	}
}

func TestGenerate_APIError(t *testing.T) {
	srv := newRecordingServer(t, http.StatusUnauthorized,
		`{"error": {"message": "Incorrect API key provided", "type": "invalid_request_error"}}`)
	p := newTestProvider(t, srv)

	req := &llmgateway.GenerateRequest{
		Messages: []llmgateway.Message{{Role: llmgateway.RoleUser, Content: "hello"}},
		Model:    "gpt-4o",
	}

	_, err := p.Generate(context.Background(), req)
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if srv.calls != 1 {
		t.Errorf("calls = %d, want 1 (no retry)", srv.calls)
	}

	var providerErr *llmgateway.ProviderError
	if !errors.As(err, &providerErr) {
		t.Fatalf("error is %T, want *ProviderError", err)
	}
	if providerErr.StatusCode != http.StatusUnauthorized {
		t.Errorf("StatusCode = %d, want 401", providerErr.StatusCode)
	}
	if providerErr.Provider != "openai" {
		t.Errorf("Provider = %q, want openai", providerErr.Provider)
	}
	if !strings.Contains(providerErr.Message, "Incorrect API key provided") {
		t.Errorf("Message = %q, want vendor message", providerErr.Message)
	}
}

func TestGenerate_TransportError(t *testing.T) {
	srv := newRecordingServer(t, http.StatusOK, completionOK)
	p := newTestProvider(t, srv)
	srv.Close() // force a connection failure

	req := &llmgateway.GenerateRequest{
		Messages: []llmgateway.Message{{Role: llmgateway.RoleUser, Content: "hello"}},
		Model:    "gpt-4o",
	}

	_, err := p.Generate(context.Background(), req)
	if !llmgateway.IsTransportError(err) {
		t.Errorf("error = %v, want transport error", err)
	}
	if err != nil && !strings.Contains(err.Error(), "openai") {
		t.Errorf("provider name missing from %q", err.Error())
	}
}

func TestGenerate_ExtractionErrors(t *testing.T) {
	tests := []struct {
		name     string
		response string
	}{
		{"no choices", `{"id": "x", "object": "chat.completion", "choices": []}`},
		{"null content", `{"id": "x", "object": "chat.completion", "choices": [{"index": 0, "message": {"role": "assistant", "content": null}}]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := newRecordingServer(t, http.StatusOK, tt.response)
			p := newTestProvider(t, srv)

			req := &llmgateway.GenerateRequest{
				Messages: []llmgateway.Message{{Role: llmgateway.RoleUser, Content: "hello"}},
				Model:    "gpt-4o",
			}

			_, err := p.Generate(context.Background(), req)
			if !llmgateway.IsExtractionError(err) {
				t.Errorf("error = %v, want extraction error", err)
			}
			// Extraction failures are distinct from transport failures.
			if llmgateway.IsTransportError(err) {
				t.Error("extraction error classified as transport error")
			}
		})
	}
}

func TestProviderIdentity(t *testing.T) {
	srv := newRecordingServer(t, http.StatusOK, completionOK)
	p := newTestProvider(t, srv)

	if p.Name() != llmgateway.ProviderOpenAI {
		t.Errorf("Name = %q", p.Name())
	}
	if p.DefaultModel() != "gpt-4o" {
		t.Errorf("DefaultModel = %q, want gpt-4o", p.DefaultModel())
	}
}
