package errors

import (
	"strings"
	"unicode"
)

// maxOutputNameLength bounds the output_name field of a configuration row.
const maxOutputNameLength = 200

// ValidateOutputName checks the output_name field of a configuration row.
// The name becomes "<name>.svg" inside the output directory, so it must be a
// plain base name:
//   - not empty
//   - no control characters or null bytes
//   - no path separators
//   - not "." or ".." and no ".." sequence
func ValidateOutputName(name string) error {
	if name == "" {
		return New(ErrCodeMalformedInput, "output name cannot be empty")
	}

	if len(name) > maxOutputNameLength {
		return New(ErrCodeMalformedInput, "output name too long (max %d characters)", maxOutputNameLength)
	}

	for _, r := range name {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeMalformedInput, "output name %q contains control characters", name)
		}
	}

	if strings.ContainsAny(name, "/\\") {
		return New(ErrCodeMalformedInput, "output name %q cannot contain path separators", name)
	}

	if name == "." || name == ".." {
		return New(ErrCodeMalformedInput, "output name %q cannot be a relative directory reference", name)
	}

	return nil
}
