package httputil

import (
	"encoding/json"
	"testing"
)

func TestOptionalStringUnmarshal(t *testing.T) {
	type payload struct {
		Name OptionalString `json:"name"`
	}

	tests := []struct {
		name        string
		body        string
		wantPresent bool
		wantNil     bool
		wantValue   string
	}{
		{
			name:        "field absent",
			body:        `{}`,
			wantPresent: false,
		},
		{
			name:        "field null",
			body:        `{"name": null}`,
			wantPresent: true,
			wantNil:     true,
		},
		{
			name:        "field empty string",
			body:        `{"name": ""}`,
			wantPresent: true,
			wantValue:   "",
		},
		{
			name:        "field with value",
			body:        `{"name": "hello"}`,
			wantPresent: true,
			wantValue:   "hello",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var p payload
			if err := json.Unmarshal([]byte(tt.body), &p); err != nil {
				t.Fatalf("unmarshal failed: %v", err)
			}

			if p.Name.Present != tt.wantPresent {
				t.Errorf("Present = %v, want %v", p.Name.Present, tt.wantPresent)
			}
			if tt.wantNil {
				if p.Name.Value != nil {
					t.Errorf("Value = %q, want nil", *p.Name.Value)
				}
				return
			}
			if tt.wantPresent {
				if p.Name.Value == nil {
					t.Fatal("Value = nil, want set")
				}
				if *p.Name.Value != tt.wantValue {
					t.Errorf("Value = %q, want %q", *p.Name.Value, tt.wantValue)
				}
			}
		})
	}
}

func TestOptionalStringRejectsNonString(t *testing.T) {
	var o OptionalString
	if err := json.Unmarshal([]byte(`42`), &o); err == nil {
		t.Error("unmarshal of a number should fail")
	}
}
