package errors

import (
	"strings"
	"testing"
)

func TestValidateLayoutName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"simple name", "mainfield", false},
		{"with dashes", "triangular-12", false},
		{"with underscore", "random_a", false},
		{"empty", "", true},
		{"path traversal", "../secrets", true},
		{"path separator", "a/b", true},
		{"backslash", "a\\b", true},
		{"control character", "bad\x01name", true},
		{"too long", strings.Repeat("a", 129), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateLayoutName(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateLayoutName(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidName) {
				t.Errorf("error code = %v, want %v", GetCode(err), ErrCodeInvalidName)
			}
		})
	}
}

func TestValidateQubitPrefix(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"default prefix", "q", false},
		{"word prefix", "atom", false},
		{"with separator", "q_", false},
		{"empty", "", true},
		{"ends with digit", "q1", true},
		{"contains space", "q ", true},
		{"control character", "q\x01x", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateQubitPrefix(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateQubitPrefix(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}
