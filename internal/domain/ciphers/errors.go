package ciphers

import (
	"errors"
	"fmt"
	"strings"
)

// ErrEmptyKey is reported when a cipher that requires key material receives
// a zero-length key.
var ErrEmptyKey = errors.New("key must be not empty")

// ByteNotAllowedError is reported when an input codepoint cannot be
// represented as a single byte.
type ByteNotAllowedError struct {
	Char rune
}

func (e *ByteNotAllowedError) Error() string {
	return fmt.Sprintf("char %q is not allowed", e.Char)
}

// HexNotValidError is reported when a 2-character ciphertext window is not
// valid hexadecimal.
type HexNotValidError struct {
	Hex string
}

func (e *HexNotValidError) Error() string {
	return fmt.Sprintf("hex %q is not valid", e.Hex)
}

// InputLengthError is reported when a decrypt-time chunk is shorter than the
// cipher's block or chunk length.
type InputLengthError struct {
	Length int
}

func (e *InputLengthError) Error() string {
	return fmt.Sprintf("input's length must be a multiple of %d", e.Length)
}

// ValueNotInRangeError is reported when a configured parameter violates its
// declared bounds.
type ValueNotInRangeError struct {
	Name  string
	Value int
	Min   int
	Max   int
}

func (e *ValueNotInRangeError) Error() string {
	return fmt.Sprintf("%s value (%d) is not in range (%d - %d)", e.Name, e.Value, e.Min, e.Max)
}

// ValueNotInListError is reported when a configuration choice is outside an
// enumerated allow-list.
type ValueNotInListError struct {
	Name    string
	Value   string
	Allowed []string
}

func (e *ValueNotInListError) Error() string {
	return fmt.Sprintf("%s value (%s) is not allowed, allowed values: %s",
		e.Name, e.Value, strings.Join(e.Allowed, ", "))
}

// MaskNotValidError is reported for structural problems in a grille mask.
type MaskNotValidError struct {
	Message string
}

func (e *MaskNotValidError) Error() string {
	return e.Message
}

// SquareNotValidError is reported for structural problems in a char square.
type SquareNotValidError struct {
	Message string
}

func (e *SquareNotValidError) Error() string {
	return e.Message
}
