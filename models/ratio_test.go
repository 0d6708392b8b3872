package models

import (
	"encoding/json"
	"testing"
)

func TestRatioUnmarshal(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    float64
		wantErr bool
	}{
		{name: "json number", input: `{"praise_ratio": 8}`, want: 8},
		{name: "json float", input: `{"praise_ratio": 7.5}`, want: 7.5},
		{name: "numeric string", input: `{"praise_ratio": "8"}`, want: 8},
		{name: "numeric string with spaces", input: `{"praise_ratio": " 2.5 "}`, want: 2.5},
		{name: "absent defaults to zero", input: `{}`, want: 0},
		{name: "null defaults to zero", input: `{"praise_ratio": null}`, want: 0},
		{name: "empty string defaults to zero", input: `{"praise_ratio": ""}`, want: 0},
		{name: "non-numeric string", input: `{"praise_ratio": "abc"}`, wantErr: true},
		{name: "boolean", input: `{"praise_ratio": true}`, wantErr: true},
		{name: "object", input: `{"praise_ratio": {}}`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var req SubmitFeedbackRequest
			err := json.Unmarshal([]byte(tt.input), &req)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("Expected decode error, got praise_ratio=%v", req.PraiseRatio)
				}
				return
			}
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if float64(req.PraiseRatio) != tt.want {
				t.Errorf("Expected %v, got %v", tt.want, float64(req.PraiseRatio))
			}
		})
	}
}

func TestNormalizeKey(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "mixed case with trailing space", input: "Team@X.com ", want: "team@x.com"},
		{name: "already normalized", input: "team@x.com", want: "team@x.com"},
		{name: "surrounding whitespace", input: "  B1\t", want: "b1"},
		{name: "empty", input: "", want: ""},
		{name: "only whitespace", input: "   ", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeKey(tt.input)
			if got != tt.want {
				t.Errorf("NormalizeKey(%q) = %q, want %q", tt.input, got, tt.want)
			}
			// Normalization must be idempotent
			if again := NormalizeKey(got); again != got {
				t.Errorf("NormalizeKey not idempotent: %q -> %q", got, again)
			}
		})
	}
}
