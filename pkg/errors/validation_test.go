package errors

import "testing"

func TestValidateVariantName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"simple", "default", false},
		{"upper case language", "EN", false},
		{"dashes and underscores", "bw_sparse-2", false},

		{"empty", "", true},
		{"too long", string(make([]byte, 65)), true},
		{"path traversal", "../etc", true},
		{"slash", "a/b", true},
		{"leading dash", "-x", true},
		{"space", "my style", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateVariantName("style", tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateVariantName(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidTheme) {
				t.Errorf("ValidateVariantName(%q) returned wrong error code: %v", tt.input, err)
			}
		})
	}
}

func TestValidateOutputPath(t *testing.T) {
	formats := map[string]bool{"pdf": true, "svg": true, "png": true}
	tests := []struct {
		name     string
		input    string
		wantCode Code
	}{
		{"pdf", "calendar.pdf", ""},
		{"upper case extension", "out/CAL.PNG", ""},
		{"absolute", "/tmp/cal.svg", ""},
		{"empty", "", ErrCodeInvalidPath},
		{"no extension", "calendar", ErrCodeInvalidFormat},
		{"unknown extension", "calendar.docx", ErrCodeInvalidFormat},
		{"control char", "cal\x01.pdf", ErrCodeInvalidPath},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateOutputPath(tt.input, formats)
			if tt.wantCode == "" {
				if err != nil {
					t.Errorf("ValidateOutputPath(%q) unexpected error: %v", tt.input, err)
				}
				return
			}
			if !Is(err, tt.wantCode) {
				t.Errorf("ValidateOutputPath(%q) = %v, want code %s", tt.input, err, tt.wantCode)
			}
		})
	}
}
