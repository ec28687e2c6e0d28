package errors

import (
	"math"
	"regexp"
	"strings"
	"unicode"
)

// idRegex matches XML names usable as an element id and as the target of
// an xlink:href fragment.
var idRegex = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_.-]*$`)

// ValidateID validates an element id. An empty id is valid and means
// "no id".
func ValidateID(id string) error {
	if id == "" {
		return nil
	}
	if len(id) > 256 {
		return New(ErrCodeInvalidStyle, "id too long (max 256 characters)")
	}
	if !idRegex.MatchString(id) {
		return New(ErrCodeInvalidStyle, "invalid id: %q", id)
	}
	return nil
}

// classRegex matches a single CSS class name.
var classRegex = regexp.MustCompile(`^-?[A-Za-z_][A-Za-z0-9_-]*$`)

// ValidateClasses validates a space-separated list of CSS class names.
func ValidateClasses(classes string) error {
	for _, c := range strings.Fields(classes) {
		if !classRegex.MatchString(c) {
			return New(ErrCodeInvalidStyle, "invalid class name: %q", c)
		}
	}
	return nil
}

// ValidateUnitInterval validates an opacity-like value in [0, 1].
func ValidateUnitInterval(name string, v float64) error {
	if math.IsNaN(v) || v < 0 || v > 1 {
		return New(ErrCodeInvalidStyle, "%s must be between 0 and 1, got %v", name, v)
	}
	return nil
}

// ValidateNonNegative validates a width, radius or margin.
func ValidateNonNegative(name string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return New(ErrCodeInvalidStyle, "%s must be a finite non-negative number, got %v", name, v)
	}
	return nil
}

// ValidatePath validates a relative file path received from an untrusted
// caller, such as a style profile name in an HTTP request.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 500 characters
//   - No null bytes or control characters
//   - No absolute paths (must be relative)
//   - No path traversal sequences (..)
//   - No backslashes (Windows-style paths)
func ValidatePath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "path cannot be empty")
	}

	const maxPathLength = 500
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidPath, "path too long (max %d characters)", maxPathLength)
	}

	for _, r := range path {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "path contains invalid characters")
		}
	}
	if strings.HasPrefix(path, "/") {
		return New(ErrCodeInvalidPath, "path must be relative (cannot start with /)")
	}
	if strings.Contains(path, "..") {
		return New(ErrCodeInvalidPath, "path cannot contain path traversal sequences (..)")
	}
	if strings.Contains(path, "\\") {
		return New(ErrCodeInvalidPath, "path cannot contain backslashes")
	}
	return nil
}

// ValidateCacheURL validates a shared cache address. Only Redis URLs are
// accepted.
func ValidateCacheURL(rawURL string) error {
	if rawURL == "" {
		return New(ErrCodeInvalidInput, "cache URL cannot be empty")
	}
	if !strings.HasPrefix(rawURL, "redis://") && !strings.HasPrefix(rawURL, "rediss://") {
		return New(ErrCodeInvalidInput, "cache URL must use the redis or rediss scheme")
	}
	return nil
}
