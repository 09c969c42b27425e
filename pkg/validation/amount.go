package validation

import (
	"fmt"
	"math"
)

// ValidateAmount checks that a raw monetary input is finite and not negative.
func ValidateAmount(field string, value float64) error {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return fmt.Errorf("%s must be a finite number, got %v", field, value)
	}
	if value < 0 {
		return fmt.Errorf("%s must not be negative, got %.2f", field, value)
	}
	return nil
}

// ValidateProfileName checks that a profile name is present and not repeated.
// seen is updated with the name on success.
func ValidateProfileName(name string, seen map[string]struct{}) error {
	if name == "" {
		return fmt.Errorf("profile name must not be empty")
	}
	if _, dup := seen[name]; dup {
		return fmt.Errorf("duplicate profile name %q", name)
	}
	seen[name] = struct{}{}
	return nil
}
