//go:build unit
// +build unit

package cryptography

import (
	"strings"
	"testing"

	"cipher_toolkit/internal/domain/ciphers"
	pkgTesting "cipher_toolkit/internal/pkg/testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIDEARoundTrip(t *testing.T) {
	log := pkgTesting.SetupTestLogger(t)

	cipher, err := NewIDEA(log)
	require.NoError(t, err)

	t.Run("FullKey", func(t *testing.T) {
		assertRoundTrip(t, cipher, "0123456789abcdef", "an IDEA round trip")
	})

	t.Run("ShortKeyIsLeftPadded", func(t *testing.T) {
		assertRoundTrip(t, cipher, "k", "short key material")
	})

	t.Run("OverlongKeyIsTruncated", func(t *testing.T) {
		var first, second strings.Builder
		require.NoError(t, cipher.Encrypt(strings.NewReader("ABCDEFGH"), "0123456789abcdef", &first))
		require.NoError(t, cipher.Encrypt(strings.NewReader("ABCDEFGH"), "0123456789abcdefEXTRA", &second))
		assert.Equal(t, first.String(), second.String())
	})
}

func TestIDEAGroupArithmetic(t *testing.T) {
	t.Run("MulTreatsZeroAsModulus", func(t *testing.T) {
		// 0 stands in for 2^16, which is its own multiplicative inverse.
		assert.Equal(t, uint64(1), ideaMul(0, 0))
		assert.Equal(t, uint64(0), ideaMulInverse(0))
	})

	t.Run("ProductLandingOnTheModulusWrapsToZero", func(t *testing.T) {
		// 2^16 * 1 = 2^16: the result must come back as the 0 representative,
		// not as a 17-bit value.
		assert.Equal(t, uint64(0), ideaMul(0, 1))
		assert.Equal(t, uint64(0), ideaMul(1, 0))
	})

	t.Run("MulInverseCancels", func(t *testing.T) {
		for _, x := range []uint64{1, 2, 255, 4097, 65535} {
			assert.Equal(t, uint64(1), ideaMul(x, ideaMulInverse(x)), "x=%d", x)
		}
	})

	t.Run("AddInverseCancels", func(t *testing.T) {
		for _, x := range []uint64{0, 1, 32768, 65535} {
			assert.Equal(t, uint64(0), ideaAdd(x, ideaAddInverse(x)), "x=%d", x)
		}
	})
}

func TestIDEASubkeySchedule(t *testing.T) {
	key := []byte("0123456789abcdef")

	t.Run("NineGroupsOfExpectedSize", func(t *testing.T) {
		groups := generateSubkeys(key)
		require.Len(t, groups, ideaRounds+1)
		for i := 0; i < ideaRounds; i++ {
			assert.Len(t, groups[i], 6)
		}
		assert.Len(t, groups[ideaRounds], 4)
	})

	t.Run("FirstGroupComesStraightFromTheKey", func(t *testing.T) {
		groups := generateSubkeys(key)
		assert.Equal(t, uint64('0')<<8|uint64('1'), groups[0][0])
		assert.Equal(t, uint64('2')<<8|uint64('3'), groups[0][1])
	})

	t.Run("InvertedScheduleMirrorsShape", func(t *testing.T) {
		inverted := invertSubkeys(generateSubkeys(key))
		require.Len(t, inverted, ideaRounds+1)
		assert.Len(t, inverted[0], 6)
		assert.Len(t, inverted[ideaRounds], 4)
	})

	t.Run("OutputGroupInvertsIntoFirstGroup", func(t *testing.T) {
		groups := generateSubkeys(key)
		inverted := invertSubkeys(groups)
		last := groups[ideaRounds]

		assert.Equal(t, ideaMulInverse(last[0]), inverted[0][0])
		assert.Equal(t, ideaAddInverse(last[1]), inverted[0][1])
		assert.Equal(t, ideaAddInverse(last[2]), inverted[0][2])
		assert.Equal(t, ideaMulInverse(last[3]), inverted[0][3])
		assert.Equal(t, groups[ideaRounds-1][4], inverted[0][4])
		assert.Equal(t, groups[ideaRounds-1][5], inverted[0][5])
	})
}

func TestIDEAEngineRoundTripAtGroupModulus(t *testing.T) {
	// With this key the first multiplication is 2^16 * 1, landing exactly on
	// the group modulus; the round trip must survive it.
	key := []byte{0, 1, 0, 2, 0, 3, 0, 4, 0, 5, 0, 6, 0, 7, 0, 8}
	block := []byte{0, 0, 0, 1, 0, 2, 0, 3}

	encrypter := &ideaEngine{}
	require.NoError(t, encrypter.setKey(key, true))
	ciphertext := encrypter.encryptBlock(block)
	require.Len(t, ciphertext, ideaBlockBytes)

	decrypter := &ideaEngine{}
	require.NoError(t, decrypter.setKey(key, false))
	assert.Equal(t, block, decrypter.decryptBlock(ciphertext))
}

func TestIDEADecryptFailures(t *testing.T) {
	log := pkgTesting.SetupTestLogger(t)

	cipher, err := NewIDEA(log)
	require.NoError(t, err)

	var out strings.Builder
	err = cipher.Decrypt(strings.NewReader("ABCD"), "key", &out)

	var lengthErr *ciphers.InputLengthError
	require.ErrorAs(t, err, &lengthErr)
	assert.Equal(t, ideaBlockBytes, lengthErr.Length)
}
