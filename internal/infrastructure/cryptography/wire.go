package cryptography

import (
	"fmt"
	"strconv"

	"cipher_toolkit/internal/domain/ciphers"
)

// hexLength is the number of hex digits representing one byte on the wire.
const hexLength = 2

// byteToHex renders a byte as exactly two uppercase hex digits.
func byteToHex(b byte) string {
	return fmt.Sprintf("%02X", b)
}

// hexToByte parses a hex window read from the wire. Windows are normally two
// digits; a shorter trailing window still parses so that the chunk length
// check can report it instead of a spurious format error.
func hexToByte(window string) (byte, error) {
	value, err := strconv.ParseUint(window, 16, 8)
	if err != nil {
		return 0, &ciphers.HexNotValidError{Hex: window}
	}
	return byte(value), nil
}

// byteAllowed rejects codepoints that do not fit into a single byte.
func byteAllowed(char rune) error {
	if char < 0 || char > 255 {
		return &ciphers.ByteNotAllowedError{Char: char}
	}
	return nil
}
