package errors

import (
	"math"
	"strings"
	"unicode"
)

// maxFeatureNameLength bounds column names read from untrusted files.
const maxFeatureNameLength = 256

// ValidateFeatureName validates a feature (column) name.
//
// Names are used as graph node identifiers and ranking keys, so the rules
// are conservative:
//   - No empty or whitespace-only names
//   - No control characters
//   - Maximum length of 256 characters
func ValidateFeatureName(name string) error {
	if strings.TrimSpace(name) == "" {
		return New(ErrCodeInvalidInput, "feature name cannot be empty")
	}

	if len(name) > maxFeatureNameLength {
		return New(ErrCodeInvalidInput, "feature name too long (max %d characters)", maxFeatureNameLength)
	}

	for _, r := range name {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidInput, "feature name %q contains control characters", name)
		}
	}

	return nil
}

// ValidateThreshold checks that a correlation threshold lies strictly
// between 0 and 1.
func ValidateThreshold(threshold float64) error {
	if math.IsNaN(threshold) || threshold <= 0 || threshold >= 1 {
		return New(ErrCodeInvalidArgument, "invalid threshold %v (must be in (0, 1))", threshold)
	}
	return nil
}

// ValidateNSelect checks that the number of representatives kept per group
// is positive.
func ValidateNSelect(n int) error {
	if n < 1 {
		return New(ErrCodeInvalidArgument, "invalid n_select %d (must be >= 1)", n)
	}
	return nil
}
