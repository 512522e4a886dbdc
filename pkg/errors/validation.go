package errors

import (
	"strings"
	"unicode"
)

// ValidateLayoutName validates a layout name used in manifests and output
// file names. It rejects names that could be used for path traversal.
//
// The validation rules are intentionally conservative:
//   - No empty names
//   - No control characters
//   - No path separators or traversal sequences
//   - Maximum length of 128 characters
func ValidateLayoutName(name string) error {
	if name == "" {
		return New(ErrCodeInvalidName, "layout name cannot be empty")
	}

	if len(name) > 128 {
		return New(ErrCodeInvalidName, "layout name too long (max 128 characters)")
	}

	for _, r := range name {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidName, "layout name contains invalid control characters")
		}
	}

	dangerousPatterns := []string{
		"..",   // Parent directory
		"/",    // Path separator
		"\\",   // Backslash (Windows path)
		"\x00", // Null byte
	}

	for _, pattern := range dangerousPatterns {
		if strings.Contains(name, pattern) {
			return New(ErrCodeInvalidName, "layout name contains invalid characters: %q", pattern)
		}
	}

	return nil
}

// ValidateQubitPrefix validates the prefix used to build qubit identifiers.
// Qubit IDs are "{prefix}{index}", so the prefix must not itself end with a
// digit (that would make IDs ambiguous) and must be printable.
func ValidateQubitPrefix(prefix string) error {
	if prefix == "" {
		return New(ErrCodeInvalidInput, "qubit prefix cannot be empty")
	}

	for _, r := range prefix {
		if unicode.IsControl(r) || unicode.IsSpace(r) {
			return New(ErrCodeInvalidInput, "qubit prefix contains invalid characters")
		}
	}

	runes := []rune(prefix)
	if unicode.IsDigit(runes[len(runes)-1]) {
		return New(ErrCodeInvalidInput, "qubit prefix cannot end with a digit")
	}

	return nil
}
