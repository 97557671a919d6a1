package errors

import (
	"strings"
	"testing"
)

func TestValidateBaseName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"default", "list", false},
		{"with dash", "my-list", false},
		{"with dot", "list.v2", false},
		{"unicode", "liste-über", false},

		{"empty", "", true},
		{"too long", strings.Repeat("a", 201), true},
		{"slash", "out/list", true},
		{"backslash", "out\\list", true},
		{"parent", "..", true},
		{"current", ".", true},
		{"hidden", ".list", true},
		{"null byte", "list\x00", true},
		{"newline", "li\nst", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateBaseName(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateBaseName(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidPath) {
				t.Errorf("ValidateBaseName(%q) code = %v, want %v", tt.input, GetCode(err), ErrCodeInvalidPath)
			}
		})
	}
}

func TestValidatePath(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"relative", "fixtures/cycle.json", false},
		{"absolute", "/tmp/list.yaml", false},
		{"parent", "../list.toml", false},

		{"empty", "", true},
		{"too long", strings.Repeat("a", 5000), true},
		{"null byte", "list\x00.json", true},
		{"control char", "list\x01.json", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePath(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidatePath(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestValidateFormat(t *testing.T) {
	allowed := []string{"png", "svg", "jpg"}

	for _, f := range allowed {
		if err := ValidateFormat(f, allowed); err != nil {
			t.Errorf("ValidateFormat(%q) = %v", f, err)
		}
	}

	err := ValidateFormat("gif", allowed)
	if !Is(err, ErrCodeInvalidFormat) {
		t.Fatalf("ValidateFormat(gif) = %v, want %v", err, ErrCodeInvalidFormat)
	}
	if !strings.Contains(err.Error(), "png, svg, jpg") {
		t.Errorf("error should list allowed formats: %v", err)
	}
}
