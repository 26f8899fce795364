//go:build unit
// +build unit

package cryptography

import (
	"strings"
	"testing"

	pkgTesting "cipher_toolkit/internal/pkg/testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFeistelRoundTrip(t *testing.T) {
	log := pkgTesting.SetupTestLogger(t)

	cipher, err := NewFeistel(log)
	require.NoError(t, err)

	t.Run("AlignedInput", func(t *testing.T) {
		assertRoundTrip(t, cipher, "key!", "sixteen chars ok")
	})

	t.Run("PaddedFinalBlock", func(t *testing.T) {
		assertRoundTrip(t, cipher, "key!", "not a block multiple")
	})

	t.Run("ShortKeyCycles", func(t *testing.T) {
		assertRoundTrip(t, cipher, "k", "short keys repeat over the window")
	})

	t.Run("CiphertextIsUppercaseHex", func(t *testing.T) {
		encrypted := assertRoundTrip(t, cipher, "key!", "ABCDEFGH")
		assert.Len(t, encrypted, feistelBlockBytes*hexLength)
		for _, char := range encrypted {
			assert.Contains(t, "0123456789ABCDEF", string(char))
		}
	})
}

func TestFeistelSubkeySchedule(t *testing.T) {
	t.Run("ZeroKeyYieldsZeroSubkeys", func(t *testing.T) {
		engine := &feistelEngine{}
		require.NoError(t, engine.setKey(make([]byte, feistelKeyBytes), true))

		for round := 1; round <= feistelRounds; round++ {
			assert.Equal(t, make([]byte, feistelKeyBytes), engine.subkey(round))
		}
	})

	t.Run("BitShiftSlidesWithinByte", func(t *testing.T) {
		engine := &feistelEngine{}
		require.NoError(t, engine.setKey([]byte{0x80, 0x00, 0x00, 0x00}, true))

		// Round 1 shifts one bit: the top bit moves out of the window and
		// reappears from the repeated key material.
		assert.Equal(t, []byte{0x00, 0x00, 0x00, 0x01}, engine.subkey(1))
	})

	t.Run("ByteShiftSlidesAcrossKey", func(t *testing.T) {
		engine := &feistelEngine{}
		require.NoError(t, engine.setKey([]byte{0x11, 0x22, 0x33, 0x44}, true))

		// Round 8 starts one whole byte in, with no bit offset.
		assert.Equal(t, []byte{0x22, 0x33, 0x44, 0x11}, engine.subkey(8))
	})
}

func TestFeistelZeroKeyReference(t *testing.T) {
	// With an all-zero key every subkey vanishes, leaving bare XOR-and-swap
	// rounds that can be replayed independently.
	engine := &feistelEngine{}
	require.NoError(t, engine.setKey(make([]byte, feistelKeyBytes), true))

	block := []byte("ABCDEFGH")
	got := engine.encryptBlock(block)

	left := append([]byte(nil), block[:4]...)
	right := append([]byte(nil), block[4:]...)
	for round := 1; round <= feistelRounds; round++ {
		for i := range left {
			left[i] ^= right[i]
		}
		if round != feistelRounds {
			left, right = right, left
		}
	}
	assert.Equal(t, append(left, right...), got)
}

func TestFeistelKeySensitivity(t *testing.T) {
	log := pkgTesting.SetupTestLogger(t)

	cipher, err := NewFeistel(log)
	require.NoError(t, err)

	encrypt := func(key string) string {
		var out strings.Builder
		require.NoError(t, cipher.Encrypt(strings.NewReader("ABCDEFGH"), key, &out))
		return out.String()
	}

	assert.NotEqual(t, encrypt("aaaa"), encrypt("aaab"))
}
