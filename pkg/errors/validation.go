package errors

import (
	"strings"
	"unicode"
)

// ValidateAge validates a normalized age or max-age value.
// Ages are growth progress in [0,1]; anything else is rejected at the
// boundary rather than producing degenerate geometry.
func ValidateAge(age float64) error {
	// NaN fails both comparisons, so check it via self-inequality.
	if age != age {
		return New(ErrCodeInvalidAge, "age must be a number in [0,1]")
	}
	if age < 0 || age > 1 {
		return New(ErrCodeInvalidAge, "age %v outside [0,1]", age)
	}
	return nil
}

// ValidateDimensions validates a canvas size in pixels.
func ValidateDimensions(width, height int) error {
	if width <= 0 || height <= 0 {
		return New(ErrCodeInvalidDimensions, "canvas size %dx%d must be positive", width, height)
	}
	return nil
}

// ValidateOutputPath validates a file path an artifact will be written to.
// The rules are intentionally conservative:
//   - no empty paths
//   - no control characters or null bytes
//   - maximum length of 500 characters
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
	return nil
}

// ValidateFileName validates a bare file name requested from the gallery
// server. It must be a simple basename without path components, so a
// request cannot escape the plants directory.
func ValidateFileName(name string) error {
	if name == "" {
		return New(ErrCodeInvalidPath, "file name cannot be empty")
	}
	if strings.ContainsAny(name, "/\\") {
		return New(ErrCodeInvalidPath, "file name cannot contain path separators")
	}
	if strings.Contains(name, "..") {
		return New(ErrCodeInvalidPath, "file name cannot contain path traversal sequences (..)")
	}
	for _, r := range name {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "file name contains invalid characters")
		}
	}
	return nil
}
