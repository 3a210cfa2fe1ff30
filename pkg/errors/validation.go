package errors

import (
	"math"
	"strings"
	"unicode"
)

// maxIDLength bounds container and item identifiers read from board files.
const maxIDLength = 128

// ValidateSpacing checks a gutter or padding value. Spacing must be a finite,
// non-negative number; name is used in the error message (e.g. "gutter_x").
func ValidateSpacing(name string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return New(ErrCodeInvalidConfig, "%s must be a finite number, got %v", name, v)
	}
	if v < 0 {
		return New(ErrCodeInvalidConfig, "%s cannot be negative, got %v", name, v)
	}
	return nil
}

// ValidateDimension checks an optional dimension such as item_width.
// Zero means "unset"; otherwise the value must be finite and positive.
func ValidateDimension(name string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return New(ErrCodeInvalidConfig, "%s must be a finite number, got %v", name, v)
	}
	if v < 0 {
		return New(ErrCodeInvalidConfig, "%s cannot be negative, got %v", name, v)
	}
	return nil
}

// ValidateID validates a container or item identifier.
//
// Validation rules:
//   - ID cannot be empty or whitespace
//   - Maximum length of 128 characters
//   - No control characters
//   - No commas (IDs are listed comma-separated on the command line)
func ValidateID(kind, id string) error {
	if strings.TrimSpace(id) == "" {
		return New(ErrCodeInvalidBoard, "%s id cannot be empty", kind)
	}
	if len(id) > maxIDLength {
		return New(ErrCodeInvalidBoard, "%s id too long (max %d characters)", kind, maxIDLength)
	}
	for _, r := range id {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidBoard, "%s id contains invalid control characters", kind)
		}
	}
	if strings.Contains(id, ",") {
		return New(ErrCodeInvalidBoard, "%s id cannot contain commas: %q", kind, id)
	}
	return nil
}
