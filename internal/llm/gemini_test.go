package llm

import (
	"errors"
	"net/http"
	"testing"

	"google.golang.org/genai"
)

func TestGeminiModelMapping(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"gemini-flash", "gemini-2.5-flash"},
		{"gemini-lite", "gemini-2.5-flash-lite"},
		{"gemini-pro", "gemini-2.5-pro"},
		{"gemini-2.0-flash", "gemini-2.0-flash"},
	}
	for _, tt := range tests {
		if got := resolveModel(tt.input, geminiModels); got != tt.expected {
			t.Errorf("resolveModel(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}

func TestBuildGeminiSchema(t *testing.T) {
	def := map[string]any{
		"type": "object",
		"properties": map[string]any{
			"topic": map[string]any{"type": "string"},
			"count": map[string]any{"type": "integer"},
			"level": map[string]any{"type": "string", "enum": []any{"easy", "medium", "hard"}},
			"options": map[string]any{
				"type":     "array",
				"items":    map[string]any{"type": "string"},
				"minItems": 2,
			},
		},
		"required": []any{"topic", "options"},
	}

	schema := buildGeminiSchema(def)

	if schema.Type != "OBJECT" {
		t.Fatalf("expected OBJECT type, got %s", schema.Type)
	}
	if len(schema.Properties) != 4 {
		t.Fatalf("expected 4 properties, got %d", len(schema.Properties))
	}
	if schema.Properties["count"].Type != "INTEGER" {
		t.Fatalf("expected INTEGER for count, got %s", schema.Properties["count"].Type)
	}
	if len(schema.Properties["level"].Enum) != 3 {
		t.Fatalf("expected 3 enum values, got %d", len(schema.Properties["level"].Enum))
	}
	opts := schema.Properties["options"]
	if opts.Type != "ARRAY" || opts.Items.Type != "STRING" {
		t.Fatalf("unexpected options schema: %+v", opts)
	}
	if opts.MinItems == nil || *opts.MinItems != 2 {
		t.Fatalf("expected minItems 2, got %v", opts.MinItems)
	}
	if len(schema.Required) != 2 {
		t.Fatalf("expected 2 required fields, got %d", len(schema.Required))
	}
}

func TestGeminiProvider_RequiresKey(t *testing.T) {
	if _, err := NewGeminiProvider(t.Context(), GeminiConfig{Model: "gemini-flash"}); err == nil {
		t.Fatal("expected error for empty API key")
	}
}

func TestGeminiConfig(t *testing.T) {
	cfg := geminiConfig(Request{
		System:      "be brief",
		MaxTokens:   256,
		Temperature: 0.4,
		Schema:      &Schema{Name: "t", Definition: map[string]any{"type": "object"}},
	})

	if cfg.MaxOutputTokens != 256 {
		t.Errorf("MaxOutputTokens = %d, want 256", cfg.MaxOutputTokens)
	}
	if cfg.Temperature == nil || *cfg.Temperature != float32(0.4) {
		t.Errorf("Temperature = %v, want 0.4", cfg.Temperature)
	}
	if cfg.SystemInstruction == nil || cfg.SystemInstruction.Parts[0].Text != "be brief" {
		t.Errorf("SystemInstruction = %+v", cfg.SystemInstruction)
	}
	if cfg.ResponseMIMEType != "application/json" || cfg.ResponseSchema == nil {
		t.Errorf("expected JSON response schema, got %q %v", cfg.ResponseMIMEType, cfg.ResponseSchema)
	}

	plain := geminiConfig(Request{MaxTokens: 10})
	if plain.Temperature != nil || plain.SystemInstruction != nil || plain.ResponseSchema != nil {
		t.Errorf("plain config carries extras: %+v", plain)
	}
}

func TestGeminiContentsRoles(t *testing.T) {
	got := geminiContents([]Message{
		{Role: RoleUser, Content: "hi"},
		{Role: RoleAssistant, Content: "hello"},
	})
	if len(got) != 2 {
		t.Fatalf("got %d contents, want 2", len(got))
	}
	if got[0].Role != genai.RoleUser || got[1].Role != genai.RoleModel {
		t.Errorf("roles = %q, %q", got[0].Role, got[1].Role)
	}
	if got[1].Parts[0].Text != "hello" {
		t.Errorf("text = %q, want hello", got[1].Parts[0].Text)
	}
}

func TestGeminiToResponse(t *testing.T) {
	p := &GeminiProvider{model: "gemini-2.5-flash"}
	result := &genai.GenerateContentResponse{
		ModelVersion: "gemini-2.5-flash-001",
		Candidates: []*genai.Candidate{{
			Content:      genai.NewContentFromText("1. Q?", genai.RoleModel),
			FinishReason: genai.FinishReasonMaxTokens,
		}},
		UsageMetadata: &genai.GenerateContentResponseUsageMetadata{
			PromptTokenCount:     12,
			CandidatesTokenCount: 30,
			TotalTokenCount:      42,
		},
	}

	resp := p.toResponse(result)
	if resp.Text() != "1. Q?" {
		t.Errorf("content = %q", resp.Content)
	}
	if resp.Model != "gemini-2.5-flash-001" {
		t.Errorf("model = %q", resp.Model)
	}
	if resp.StopReason != "max_tokens" {
		t.Errorf("stop = %q, want max_tokens", resp.StopReason)
	}
	if resp.Usage.InputTokens != 12 || resp.Usage.OutputTokens != 30 || resp.Usage.TotalTokens != 42 {
		t.Errorf("usage = %+v", resp.Usage)
	}

	bare := p.toResponse(&genai.GenerateContentResponse{})
	if bare.Model != "gemini-2.5-flash" || bare.StopReason != "end" {
		t.Errorf("bare response = %+v", bare)
	}
}

func TestMapGeminiError(t *testing.T) {
	var rl *ErrRateLimit
	if err := mapGeminiError(genai.APIError{Code: http.StatusTooManyRequests}); !errors.As(err, &rl) {
		t.Errorf("429 by value: got %T", err)
	}
	if err := mapGeminiError(&genai.APIError{Code: http.StatusTooManyRequests}); !errors.As(err, &rl) {
		t.Errorf("429 by pointer: got %T", err)
	}

	var rejected *ErrRejected
	if err := mapGeminiError(genai.APIError{Code: http.StatusForbidden}); !errors.As(err, &rejected) {
		t.Errorf("403: got %T", err)
	}

	var unavail *ErrProviderUnavailable
	if err := mapGeminiError(errors.New("dial tcp: refused")); !errors.As(err, &unavail) {
		t.Errorf("transport: got %T", err)
	}
}
