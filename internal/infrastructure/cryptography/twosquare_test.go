//go:build unit
// +build unit

package cryptography

import (
	"errors"
	"math/rand"
	"path/filepath"
	"strings"
	"testing"

	"cipher_toolkit/internal/domain/ciphers"
	pkgTesting "cipher_toolkit/internal/pkg/testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testSquares builds a fixed 2x2 pair small enough to trace by hand.
func testSquares() [2]*Square {
	return [2]*Square{
		NewSquare([][]rune{{'a', 'b'}, {'c', twoSquarePad}}),
		NewSquare([][]rune{{'b', 'a'}, {twoSquarePad, 'c'}}),
	}
}

func TestTwoSquareDigraphRules(t *testing.T) {
	log := pkgTesting.SetupTestLogger(t)
	cipher := NewTwoSquare(log)

	encrypt := func(t *testing.T, text string) string {
		t.Helper()
		var out strings.Builder
		require.NoError(t, cipher.Encrypt(strings.NewReader(text), testSquares(), &out))
		return out.String()
	}

	t.Run("SameRowShiftsRight", func(t *testing.T) {
		assert.Equal(t, "ba", encrypt(t, "ab"))
	})

	t.Run("SameColumnShiftsDown", func(t *testing.T) {
		// 'a' sits at (0,0) in the first square, '\x01' at (1,0) in the second.
		assert.Equal(t, "cb", encrypt(t, "a\x01"))
	})

	t.Run("RectangleSwapsCorners", func(t *testing.T) {
		assert.Equal(t, "ca", encrypt(t, "ac"))
	})
}

func TestTwoSquareRoundTrip(t *testing.T) {
	log := pkgTesting.SetupTestLogger(t)
	cipher := NewTwoSquare(log)

	roundTrip := func(t *testing.T, squares [2]*Square, text string) {
		t.Helper()
		var encrypted strings.Builder
		require.NoError(t, cipher.Encrypt(strings.NewReader(text), squares, &encrypted))

		var decrypted strings.Builder
		require.NoError(t, cipher.Decrypt(strings.NewReader(encrypted.String()), squares, &decrypted))
		assert.Equal(t, text, decrypted.String())
	}

	t.Run("EvenLength", func(t *testing.T) {
		roundTrip(t, testSquares(), "abca")
	})

	t.Run("OddLengthIsPadded", func(t *testing.T) {
		roundTrip(t, testSquares(), "abc")
	})

	t.Run("RandomSquares", func(t *testing.T) {
		random := rand.New(rand.NewSource(1))
		squares := [2]*Square{NewRandomSquare(random), NewRandomSquare(random)}
		roundTrip(t, squares, "Mixed CASE, digits 123 and marks!?")
	})
}

func TestTwoSquareValidation(t *testing.T) {
	log := pkgTesting.SetupTestLogger(t)
	cipher := NewTwoSquare(log)

	t.Run("CharOutsideSquares", func(t *testing.T) {
		var out strings.Builder
		err := cipher.Encrypt(strings.NewReader("az"), testSquares(), &out)

		var byteErr *ciphers.ByteNotAllowedError
		require.True(t, errors.As(err, &byteErr))
		assert.Equal(t, 'z', byteErr.Char)
	})

	t.Run("NonSquareGrid", func(t *testing.T) {
		squares := [2]*Square{NewSquare([][]rune{{'a', 'b'}}), testSquares()[1]}

		var out strings.Builder
		err := cipher.Encrypt(strings.NewReader("ab"), squares, &out)

		var squareErr *ciphers.SquareNotValidError
		assert.True(t, errors.As(err, &squareErr))
	})

	t.Run("OddCiphertextLength", func(t *testing.T) {
		var out strings.Builder
		err := cipher.Decrypt(strings.NewReader("a"), testSquares(), &out)

		var lengthErr *ciphers.InputLengthError
		require.True(t, errors.As(err, &lengthErr))
		assert.Equal(t, twoSquareChunkBytes, lengthErr.Length)
	})
}

func TestRandomSquare(t *testing.T) {
	square := NewRandomSquare(rand.New(rand.NewSource(42)))

	require.Len(t, square.data, 10)
	seen := make(map[rune]bool)
	for _, row := range square.data {
		require.Len(t, row, 10)
		for _, char := range row {
			seen[char] = true
		}
	}
	for _, char := range squareChars {
		assert.True(t, seen[char], "missing %q", char)
	}
}

func TestSquarePersistence(t *testing.T) {
	t.Run("SaveLoadRoundTrip", func(t *testing.T) {
		random := rand.New(rand.NewSource(7))
		squares := [2]*Square{NewRandomSquare(random), NewRandomSquare(random)}

		filename := filepath.Join(t.TempDir(), "squares.txt")
		require.NoError(t, SaveSquares(filename, squares))

		loaded, err := LoadSquares(filename)
		require.NoError(t, err)
		assert.Equal(t, squares[0].data, loaded[0].data)
		assert.Equal(t, squares[1].data, loaded[1].data)
	})

	t.Run("MissingFile", func(t *testing.T) {
		_, err := LoadSquares(filepath.Join(t.TempDir(), "nope.txt"))
		assert.Error(t, err)
	})

	t.Run("TruncatedGrids", func(t *testing.T) {
		filename := filepath.Join(t.TempDir(), "short.txt")
		require.NoError(t, SaveSquares(filename, [2]*Square{
			NewSquare([][]rune{{'a', 'b', 'c'}}),
			NewSquare([][]rune{{'d', 'e', 'f'}}),
		}))

		_, err := LoadSquares(filename)
		var squareErr *ciphers.SquareNotValidError
		assert.True(t, errors.As(err, &squareErr))
	})
}
