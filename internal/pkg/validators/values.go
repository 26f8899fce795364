// Package validators provides parameter checks shared by the cipher engines
// and the CLI.
package validators

import (
	"slices"

	"cipher_toolkit/internal/domain/ciphers"
)

// ValueInRange validates that value lies within [minValue, maxValue].
func ValueInRange(name string, value, minValue, maxValue int) error {
	if value < minValue || value > maxValue {
		return &ciphers.ValueNotInRangeError{Name: name, Value: value, Min: minValue, Max: maxValue}
	}
	return nil
}

// ValueInList validates that value is one of the allowed choices.
func ValueInList(name, value string, allowed []string) error {
	if !slices.Contains(allowed, value) {
		return &ciphers.ValueNotInListError{Name: name, Value: value, Allowed: allowed}
	}
	return nil
}
