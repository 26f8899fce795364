package cryptography

import (
	"bufio"
	"io"
	"os"
	"strings"

	"cipher_toolkit/internal/domain/ciphers"
	"cipher_toolkit/internal/pkg/logger"
)

const (
	// cardanFlips is how many times the grille mask is rotated per chunk; a
	// quarter turn each time brings it back to its start.
	cardanFlips = 4

	// cardanEmptyCell marks a hole in the mask.
	cardanEmptyCell = 'x'

	cardanPad = '\x01'
)

// LoadMask reads a grille mask from a file, one grid row per line.
func LoadMask(filename string) ([][]rune, error) {
	content, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}

	var mask [][]rune
	for _, line := range strings.Split(string(content), "\n") {
		line = strings.TrimRight(line, " \r")
		if line != "" {
			mask = append(mask, []rune(line))
		}
	}
	return mask, nil
}

// Cardan is the Cardan grille cipher: plaintext chars are written through
// the mask's holes into a grid, rotating the mask a quarter turn until the
// grid is full; the ciphertext is the grid read row by row.
type Cardan struct {
	logger logger.Logger
}

// NewCardan creates the Cardan grille cipher.
func NewCardan(log logger.Logger) *Cardan {
	return &Cardan{logger: log}
}

func validateMask(mask [][]rune) error {
	if len(mask) == 0 {
		return &ciphers.MaskNotValidError{Message: "mask must be not empty"}
	}
	for _, row := range mask {
		if len(row) != len(mask) {
			return &ciphers.MaskNotValidError{Message: "mask's shape must be square"}
		}
	}
	return nil
}

// rotateClockwise returns the mask turned a quarter turn; the input buffer
// is left untouched.
func rotateClockwise(mask [][]rune) [][]rune {
	side := len(mask)
	rotated := make([][]rune, side)
	for i := range rotated {
		rotated[i] = make([]rune, side)
	}
	for i := 0; i < side; i++ {
		for j := 0; j < side; j++ {
			rotated[j][side-1-i] = mask[i][j]
		}
	}
	return rotated
}

func (c *Cardan) encryptChunk(mask [][]rune, chunk []rune) (string, error) {
	side := len(mask)
	size := side * side

	for len(chunk) < size {
		chunk = append(chunk, cardanPad)
	}

	grille := make([][]rune, side)
	for i := range grille {
		grille[i] = make([]rune, side)
	}

	pos := 0
	for flip := 0; flip < cardanFlips; flip++ {
		for i := 0; i < side; i++ {
			for j := 0; j < side; j++ {
				if mask[i][j] != cardanEmptyCell {
					continue
				}
				if pos >= len(chunk) {
					return "", &ciphers.MaskNotValidError{Message: "too much empty cells in the mask"}
				}
				grille[i][j] = chunk[pos]
				pos++
			}
		}
		mask = rotateClockwise(mask)
	}

	var sb strings.Builder
	for _, row := range grille {
		for _, char := range row {
			// A NUL plaintext byte is indistinguishable from an unfilled
			// cell, so it is rejected as a mask problem.
			if char == 0 {
				return "", &ciphers.MaskNotValidError{Message: "not enough empty cells in the mask"}
			}
			sb.WriteRune(char)
		}
	}
	return sb.String(), nil
}

func (c *Cardan) decryptChunk(mask [][]rune, chunk []rune) (string, error) {
	side := len(mask)
	size := side * side

	if len(chunk) < size {
		return "", &ciphers.InputLengthError{Length: size}
	}

	var sb strings.Builder
	for flip := 0; flip < cardanFlips; flip++ {
		for i := 0; i < side; i++ {
			for j := 0; j < side; j++ {
				if mask[i][j] == cardanEmptyCell {
					sb.WriteRune(chunk[i*side+j])
				}
			}
		}
		mask = rotateClockwise(mask)
	}

	return strings.TrimRight(sb.String(), string(cardanPad)), nil
}

// Encrypt fills one grille per mask-area chunk of text, padding the final
// chunk.
func (c *Cardan) Encrypt(text io.Reader, mask [][]rune, cipher io.Writer) error {
	if err := validateMask(mask); err != nil {
		return err
	}

	size := len(mask) * len(mask)
	reader := bufio.NewReader(text)
	for {
		chunk, err := readSquareChunk(reader, size)
		if err != nil {
			return err
		}
		if len(chunk) == 0 {
			break
		}

		out, err := c.encryptChunk(mask, chunk)
		if err != nil {
			return err
		}
		if _, err := io.WriteString(cipher, out); err != nil {
			return err
		}
	}

	c.logger.Info("Cardan encryption succeeded")
	return nil
}

// Decrypt reads the grid back through the rotating mask's holes.
func (c *Cardan) Decrypt(cipher io.Reader, mask [][]rune, text io.Writer) error {
	if err := validateMask(mask); err != nil {
		return err
	}

	size := len(mask) * len(mask)
	reader := bufio.NewReader(cipher)
	for {
		chunk, err := readSquareChunk(reader, size)
		if err != nil {
			return err
		}
		if len(chunk) == 0 {
			break
		}

		out, err := c.decryptChunk(mask, chunk)
		if err != nil {
			return err
		}
		if _, err := io.WriteString(text, out); err != nil {
			return err
		}
	}

	c.logger.Info("Cardan decryption succeeded")
	return nil
}
