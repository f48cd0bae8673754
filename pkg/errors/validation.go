package errors

import (
	"regexp"
	"strings"
	"unicode"
)

// templateKeyRegex matches catalog keys: lowercase slug, digits, dashes.
var templateKeyRegex = regexp.MustCompile(`^[a-z0-9][a-z0-9-]*$`)

// ValidateTemplateKey validates a template catalog key.
// Keys are lowercase slugs so they stay stable across shells and TOML files.
func ValidateTemplateKey(key string) error {
	if key == "" {
		return New(ErrCodeInvalidTemplate, "template key cannot be empty")
	}
	if len(key) > 64 {
		return New(ErrCodeInvalidTemplate, "template key too long (max 64 characters)")
	}
	if !templateKeyRegex.MatchString(key) {
		return New(ErrCodeInvalidTemplate, "invalid template key %q (use lowercase letters, digits, dashes)", key)
	}
	return nil
}

// ValidatePrefix validates a code prefix. QR payloads tolerate almost
// anything, so the rules are minimal: printable characters, bounded length.
func ValidatePrefix(prefix string) error {
	if len(prefix) > 32 {
		return New(ErrCodeInvalidCode, "prefix too long (max 32 characters)")
	}
	for _, r := range prefix {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidCode, "prefix contains invalid control characters")
		}
	}
	return nil
}

// ValidateOutputPath validates the PDF output path.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 500 characters
//   - No null bytes or control characters
func ValidateOutputPath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "output path cannot be empty")
	}

	const maxPathLength = 500
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidPath, "output path too long (max %d characters)", maxPathLength)
	}

	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "output path contains invalid characters")
		}
	}

	if strings.TrimSpace(path) == "" {
		return New(ErrCodeInvalidPath, "output path cannot be blank")
	}

	return nil
}
