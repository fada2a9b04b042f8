package errors

import (
	"math"
	"strings"
	"unicode"
)

// Phases recognized in structured training logs.
var Phases = []string{"train", "validate", "test"}

// ValidateFraction checks that v is a finite figure fraction in [0, 1].
func ValidateFraction(key string, v float64) error {
	if math.IsNaN(v) || v < 0 || v > 1 {
		return New(ErrCodeConfiguration, "%s must be a fraction in [0, 1], got %v", key, v)
	}
	return nil
}

// ValidatePositive checks that v is a finite, strictly positive size.
func ValidatePositive(key string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
		return New(ErrCodeConfiguration, "%s must be positive, got %v", key, v)
	}
	return nil
}

// ValidateOpacity checks that v is an alpha value in [0, 1].
func ValidateOpacity(key string, v float64) error {
	if math.IsNaN(v) || v < 0 || v > 1 {
		return New(ErrCodeConfiguration, "%s must be an opacity in [0, 1], got %v", key, v)
	}
	return nil
}

// ValidateMargins checks the four margin fractions and their ordering.
// Margins are positions of the panel box edges, so bottom must lie below
// top and left must lie left of right.
func ValidateMargins(top, bottom, left, right float64) error {
	for _, m := range []struct {
		key string
		v   float64
	}{{"top", top}, {"bottom", bottom}, {"left", left}, {"right", right}} {
		if err := ValidateFraction(m.key, m.v); err != nil {
			return err
		}
	}
	if bottom >= top {
		return New(ErrCodeConfiguration, "bottom (%v) must be below top (%v)", bottom, top)
	}
	if left >= right {
		return New(ErrCodeConfiguration, "left (%v) must be left of right (%v)", left, right)
	}
	return nil
}

// ValidatePhase checks that phase names one of the logged phases.
func ValidatePhase(phase string) error {
	for _, p := range Phases {
		if phase == p {
			return nil
		}
	}
	return New(ErrCodeInvalidPhase, "invalid phase %q (must be one of %s)", phase, strings.Join(Phases, ", "))
}

// ValidateColumnName rejects names that cannot be rendered as a label.
//
// Validation rules:
//   - Name cannot be empty or whitespace only
//   - No control characters
//   - Maximum length of 256 characters
func ValidateColumnName(name string) error {
	if strings.TrimSpace(name) == "" {
		return New(ErrCodeInvalidInput, "column name cannot be empty")
	}
	if len(name) > 256 {
		return New(ErrCodeInvalidInput, "column name too long (max 256 characters)")
	}
	for _, r := range name {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidInput, "column name %q contains control characters", name)
		}
	}
	return nil
}

// ValidatePath validates an input or output file path.
// It rejects empty paths and paths containing null bytes.
func ValidatePath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "path cannot be empty")
	}
	if strings.ContainsRune(path, '\x00') {
		return New(ErrCodeInvalidPath, "path contains invalid characters")
	}
	return nil
}
