package llmgateway

import (
	"testing"
)

func TestValidateRequestParams(t *testing.T) {
	tests := []struct {
		name    string
		params  *RequestParams
		wantErr bool
	}{
		{"nil params", nil, false},
		{"empty params", &RequestParams{}, false},
		{"valid temperature", &RequestParams{Temperature: FloatPtr(0.7)}, false},
		{"temperature zero", &RequestParams{Temperature: FloatPtr(0.0)}, false},
		{"temperature one", &RequestParams{Temperature: FloatPtr(1.0)}, false},
		{"temperature too high", &RequestParams{Temperature: FloatPtr(1.1)}, true},
		{"temperature negative", &RequestParams{Temperature: FloatPtr(-0.5)}, true},
		{"valid max tokens", &RequestParams{MaxTokens: IntPtr(1024)}, false},
		{"max tokens zero", &RequestParams{MaxTokens: IntPtr(0)}, true},
		{"max tokens negative", &RequestParams{MaxTokens: IntPtr(-5)}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateRequestParams(tt.params)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateRequestParams() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !IsValidationError(err) {
				t.Errorf("error %v is not a validation error", err)
			}
		})
	}
}

func TestRequestParams_Getters(t *testing.T) {
	var nilParams *RequestParams
	if got := nilParams.GetTemperature(0.7); got != 0.7 {
		t.Errorf("nil GetTemperature = %v, want 0.7", got)
	}
	if got := nilParams.GetMaxTokens(4096); got != 4096 {
		t.Errorf("nil GetMaxTokens = %v, want 4096", got)
	}
	if nilParams.HasMaxTokens() {
		t.Error("nil HasMaxTokens = true")
	}

	params := &RequestParams{
		Temperature: FloatPtr(0.2),
		MaxTokens:   IntPtr(100),
	}
	if got := params.GetTemperature(0.7); got != 0.2 {
		t.Errorf("GetTemperature = %v, want 0.2", got)
	}
	if got := params.GetMaxTokens(4096); got != 100 {
		t.Errorf("GetMaxTokens = %v, want 100", got)
	}
	if !params.HasMaxTokens() {
		t.Error("HasMaxTokens = false")
	}
}

func TestGenerateRequest_Validate(t *testing.T) {
	tests := []struct {
		name    string
		req     *GenerateRequest
		wantErr bool
	}{
		{"empty messages", &GenerateRequest{}, true},
		{"single user", &GenerateRequest{Messages: []Message{{Role: RoleUser, Content: "hi"}}}, false},
		{"all roles", &GenerateRequest{Messages: []Message{
			{Role: RoleSystem, Content: "s"},
			{Role: RoleUser, Content: "u"},
			{Role: RoleAssistant, Content: "a"},
		}}, false},
		{"unknown role", &GenerateRequest{Messages: []Message{{Role: "tool", Content: "x"}}}, true},
		{"bad params", &GenerateRequest{
			Messages: []Message{{Role: RoleUser, Content: "hi"}},
			Params:   &RequestParams{Temperature: FloatPtr(2.0)},
		}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
