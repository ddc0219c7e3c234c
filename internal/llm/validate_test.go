package llm

import (
	"encoding/json"
	"errors"
	"testing"
)

func explanationSchema() *Schema {
	step := map[string]any{"type": "string", "minLength": 1}
	return &Schema{
		Name:        "test-explanation",
		Description: "Four step explanation",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"given":       step,
				"formula":     step,
				"calculation": step,
				"result":      step,
			},
			"required":             []any{"given", "formula", "calculation", "result"},
			"additionalProperties": false,
		},
	}
}

func TestValidateResponse(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		wantErr bool
	}{
		{"valid", `{"given":"a","formula":"b","calculation":"c","result":"d"}`, false},
		{"missing required", `{"given":"a","formula":"b","calculation":"c"}`, true},
		{"wrong type", `{"given":"a","formula":"b","calculation":"c","result":4}`, true},
		{"empty step", `{"given":"","formula":"b","calculation":"c","result":"d"}`, true},
		{"extra field", `{"given":"a","formula":"b","calculation":"c","result":"d","joke":"e"}`, true},
		{"malformed JSON", `{not json}`, true},
		{"empty", ``, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateResponse(explanationSchema(), json.RawMessage(tt.raw))
			if (err != nil) != tt.wantErr {
				t.Fatalf("validateResponse() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil {
				var inv *ErrInvalidResponse
				if !errors.As(err, &inv) {
					t.Fatalf("expected ErrInvalidResponse, got: %T", err)
				}
			}
		})
	}
}

func TestValidateResponse_NilSchema(t *testing.T) {
	if err := validateResponse(nil, json.RawMessage(`"anything goes"`)); err != nil {
		t.Fatalf("expected no error with nil schema, got: %v", err)
	}
}

func TestValidateResponse_NumericBounds(t *testing.T) {
	schema := &Schema{
		Name: "test-bounds",
		Definition: map[string]any{
			"type":       "object",
			"properties": map[string]any{"amps": map[string]any{"type": "number", "minimum": 0}},
			"required":   []any{"amps"},
		},
	}
	if err := validateResponse(schema, json.RawMessage(`{"amps":0.25}`)); err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if err := validateResponse(schema, json.RawMessage(`{"amps":-1}`)); err == nil {
		t.Fatal("expected error for negative current")
	}
}
