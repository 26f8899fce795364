package cryptography

import (
	"bufio"
	"io"
	"math/rand"
	"os"
	"strings"

	"cipher_toolkit/internal/domain/ciphers"
	"cipher_toolkit/internal/pkg/logger"
)

// twoSquareChunkBytes is the digraph size the cipher substitutes at a time.
const twoSquareChunkBytes = 2

const twoSquarePad = '\x01'

// squareChars lists every char a square may contain: letters, digits and the
// allowed marks, including the control chars used for padding. 100 chars in
// total, filling a 10x10 grid exactly.
var squareChars = []rune(
	"abcdefghijklmnopqrstuvwxyz" +
		"ABCDEFGHIJKLMNOPQRSTUVWXYZ" +
		"0123456789" +
		"!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~ " +
		"\x01\x18\x19\x1a\x1b")

// Square is one char grid of the two-square cipher. The buffer is owned by
// the cipher call that uses it and never shared across callers.
type Square struct {
	data [][]rune
}

// NewSquare wraps an existing grid.
func NewSquare(data [][]rune) *Square {
	return &Square{data: data}
}

// NewRandomSquare deals the full char set into a random square grid.
func NewRandomSquare(random *rand.Rand) *Square {
	shuffled := append([]rune(nil), squareChars...)
	random.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	side := nearestSqrt(len(shuffled))
	data := make([][]rune, side)
	for i := range data {
		row := make([]rune, side)
		for j := range row {
			// Wrap around like a resize would, in case the char set is ever
			// not a perfect square.
			row[j] = shuffled[(i*side+j)%len(shuffled)]
		}
		data[i] = row
	}
	return &Square{data: data}
}

// nearestSqrt finds the smallest integer whose square is at least num.
func nearestSqrt(num int) int {
	answer := 0
	for answer*answer < num {
		answer++
	}
	return answer
}

func (s *Square) validate() error {
	if len(s.data) == 0 {
		return &ciphers.SquareNotValidError{Message: "square must be not empty"}
	}
	for _, row := range s.data {
		if len(row) != len(s.data) {
			return &ciphers.SquareNotValidError{Message: "square's shape must be square"}
		}
	}
	return nil
}

// findChar locates a char's coordinates, failing when the char is not part
// of the square's alphabet.
func (s *Square) findChar(char rune) (int, int, error) {
	for i, row := range s.data {
		for j, c := range row {
			if c == char {
				return i, j, nil
			}
		}
	}
	return 0, 0, &ciphers.ByteNotAllowedError{Char: char}
}

// shiftVertical moves a coordinate one row down (increasing) or up, wrapping
// at the edges.
func (s *Square) shiftVertical(row, col int, increasing bool) (int, int) {
	side := len(s.data)
	if increasing {
		return (row + 1) % side, col
	}
	if row == 0 {
		row = side
	}
	return row - 1, col
}

// shiftHorizontal moves a coordinate one column right (increasing) or left,
// wrapping at the edges.
func (s *Square) shiftHorizontal(row, col int, increasing bool) (int, int) {
	side := len(s.data)
	if increasing {
		return row, (col + 1) % side
	}
	if col == 0 {
		col = side
	}
	return row, col - 1
}

// SaveSquares writes two squares to a file as stacked line grids.
func SaveSquares(filename string, squares [2]*Square) error {
	var sb strings.Builder
	for _, square := range squares {
		for _, row := range square.data {
			sb.WriteString(string(row))
			sb.WriteByte('\n')
		}
	}
	return os.WriteFile(filename, []byte(sb.String()), 0600)
}

// LoadSquares reads two stacked square grids from a file: the first
// side-length lines belong to the first square.
func LoadSquares(filename string) ([2]*Square, error) {
	var squares [2]*Square

	content, err := os.ReadFile(filename)
	if err != nil {
		return squares, err
	}

	var rows [][]rune
	for _, line := range strings.Split(string(content), "\n") {
		if line != "" {
			rows = append(rows, []rune(line))
		}
	}
	if len(rows) == 0 {
		return squares, &ciphers.SquareNotValidError{Message: "squares must be not empty"}
	}

	side := len(rows[0])
	if side > len(rows) {
		return squares, &ciphers.SquareNotValidError{Message: "square's shape must be square"}
	}
	squares[0] = NewSquare(rows[:side])
	squares[1] = NewSquare(rows[side:])
	return squares, nil
}

// TwoSquare is the two-square substitution cipher: digraphs are replaced by
// looking the two chars up in two grids and exchanging the rectangle's
// opposite corners, with row/column shifts for aligned pairs.
type TwoSquare struct {
	logger logger.Logger
}

// NewTwoSquare creates the two-square cipher.
func NewTwoSquare(log logger.Logger) *TwoSquare {
	return &TwoSquare{logger: log}
}

func validateSquares(squares [2]*Square) error {
	for _, square := range squares {
		if err := square.validate(); err != nil {
			return err
		}
	}
	return nil
}

// processChunk substitutes one digraph; decryption shifts in the opposite
// direction, and the rectangle case is its own inverse.
func processChunk(squares [2]*Square, chunk []rune, encrypting bool) (string, error) {
	row1, col1, err := squares[0].findChar(chunk[0])
	if err != nil {
		return "", err
	}
	row2, col2, err := squares[1].findChar(chunk[1])
	if err != nil {
		return "", err
	}

	var newRow1, newCol1, newRow2, newCol2 int
	switch {
	case row1 == row2:
		newRow1, newCol1 = squares[0].shiftHorizontal(row1, col1, encrypting)
		newRow2, newCol2 = squares[1].shiftHorizontal(row2, col2, encrypting)
	case col1 == col2:
		newRow1, newCol1 = squares[0].shiftVertical(row1, col1, encrypting)
		newRow2, newCol2 = squares[1].shiftVertical(row2, col2, encrypting)
	default:
		newRow1, newCol1 = row2, col1
		newRow2, newCol2 = row1, col2
	}

	return string(squares[0].data[newRow1][newCol1]) + string(squares[1].data[newRow2][newCol2]), nil
}

func readSquareChunk(reader *bufio.Reader, limit int) ([]rune, error) {
	chunk := make([]rune, 0, limit)
	for len(chunk) < limit {
		char, _, err := reader.ReadRune()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		chunk = append(chunk, char)
	}
	return chunk, nil
}

// Encrypt substitutes text digraph by digraph, padding a short final chunk.
func (t *TwoSquare) Encrypt(text io.Reader, squares [2]*Square, cipher io.Writer) error {
	if err := validateSquares(squares); err != nil {
		return err
	}

	reader := bufio.NewReader(text)
	for {
		chunk, err := readSquareChunk(reader, twoSquareChunkBytes)
		if err != nil {
			return err
		}
		if len(chunk) == 0 {
			break
		}
		for len(chunk) < twoSquareChunkBytes {
			chunk = append(chunk, twoSquarePad)
		}

		out, err := processChunk(squares, chunk, true)
		if err != nil {
			return err
		}
		if _, err := io.WriteString(cipher, out); err != nil {
			return err
		}
	}

	t.logger.Info("Two-square encryption succeeded")
	return nil
}

// Decrypt reverses the substitution, stripping the padding char from the
// tail of each recovered digraph.
func (t *TwoSquare) Decrypt(cipher io.Reader, squares [2]*Square, text io.Writer) error {
	if err := validateSquares(squares); err != nil {
		return err
	}

	reader := bufio.NewReader(cipher)
	for {
		chunk, err := readSquareChunk(reader, twoSquareChunkBytes)
		if err != nil {
			return err
		}
		if len(chunk) == 0 {
			break
		}
		if len(chunk) < twoSquareChunkBytes {
			return &ciphers.InputLengthError{Length: twoSquareChunkBytes}
		}

		out, err := processChunk(squares, chunk, false)
		if err != nil {
			return err
		}
		out = strings.TrimRight(out, string(twoSquarePad))
		if _, err := io.WriteString(text, out); err != nil {
			return err
		}
	}

	t.logger.Info("Two-square decryption succeeded")
	return nil
}
