package errors

import (
	"path/filepath"
	"regexp"
	"strings"
	"unicode"
)

// variantNameRegex matches names of theme variants (styles, geometries, languages).
var variantNameRegex = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9_-]*$`)

// ValidateVariantName validates the name of a style, geometry or language variant.
// Variant names double as file names in the theme search paths, so the rules
// reject anything that could escape those directories:
//   - No empty names
//   - Maximum length of 64 characters
//   - Letters, digits, '-' and '_' only, starting with a letter or digit
func ValidateVariantName(kind, name string) error {
	if name == "" {
		return New(ErrCodeInvalidTheme, "%s name cannot be empty", kind)
	}
	if len(name) > 64 {
		return New(ErrCodeInvalidTheme, "%s name too long (max 64 characters)", kind)
	}
	if !variantNameRegex.MatchString(name) {
		return New(ErrCodeInvalidTheme, "invalid %s name: %q", kind, name)
	}
	return nil
}

// ValidateOutputPath validates a path the renderer is asked to write to.
// The extension selects the output format and must be one of formats.
func ValidateOutputPath(path string, formats map[string]bool) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "output path cannot be empty")
	}
	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "output path contains invalid characters")
		}
	}
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	if ext == "" {
		return New(ErrCodeInvalidFormat, "output path %q has no extension", path)
	}
	if !formats[ext] {
		return New(ErrCodeInvalidFormat, "unsupported output format %q", ext)
	}
	return nil
}
