package llm

import (
	"encoding/json"
	"errors"
	"testing"
)

var testSchema = &Schema{
	Name:        "test-answer",
	Description: "A test answer payload",
	Definition: map[string]any{
		"type":     "object",
		"required": []any{"answer", "score"},
		"properties": map[string]any{
			"answer": map[string]any{"type": "string"},
			"score":  map[string]any{"type": "number"},
		},
	},
}

func TestValidateResponseAccepts(t *testing.T) {
	raw := json.RawMessage(`{"answer":"42","score":0.9}`)
	if err := validateResponse(testSchema, raw); err != nil {
		t.Fatalf("expected valid, got %v", err)
	}
}

func TestValidateResponseRejects(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"missing required field", `{"answer":"42"}`},
		{"wrong type", `{"answer":42,"score":0.9}`},
		{"not JSON", `not json at all`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateResponse(testSchema, json.RawMessage(tt.raw))
			if err == nil {
				t.Fatal("expected validation error")
			}
			var invalid *ErrInvalidResponse
			if !errors.As(err, &invalid) {
				t.Errorf("expected ErrInvalidResponse, got %T", err)
			}
		})
	}
}

func TestValidateResponseNilSchema(t *testing.T) {
	if err := validateResponse(nil, json.RawMessage(`anything`)); err != nil {
		t.Fatalf("nil schema should skip validation, got %v", err)
	}
}

func TestSchemaCacheReuse(t *testing.T) {
	raw := json.RawMessage(`{"answer":"a","score":1}`)
	if err := validateResponse(testSchema, raw); err != nil {
		t.Fatalf("first validation failed: %v", err)
	}
	schemaMu.Lock()
	_, cached := schemaCache[testSchema.Name]
	schemaMu.Unlock()
	if !cached {
		t.Error("compiled schema was not cached")
	}
	if err := validateResponse(testSchema, raw); err != nil {
		t.Fatalf("second validation failed: %v", err)
	}
}
