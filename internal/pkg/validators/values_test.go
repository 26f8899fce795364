//go:build unit
// +build unit

package validators

import (
	"errors"
	"testing"

	"cipher_toolkit/internal/domain/ciphers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValueInRange(t *testing.T) {
	t.Run("WithinBounds", func(t *testing.T) {
		assert.NoError(t, ValueInRange("Key bytes", 16, 0, 255))
		assert.NoError(t, ValueInRange("Key bytes", 0, 0, 255))
		assert.NoError(t, ValueInRange("Key bytes", 255, 0, 255))
	})

	t.Run("OutsideBounds", func(t *testing.T) {
		err := ValueInRange("Key bytes", 300, 0, 255)
		require.Error(t, err)

		var rangeErr *ciphers.ValueNotInRangeError
		require.True(t, errors.As(err, &rangeErr))
		assert.Equal(t, 300, rangeErr.Value)
		assert.Equal(t, 255, rangeErr.Max)
	})
}

func TestValueInList(t *testing.T) {
	allowed := []string{"feistel", "idea", "rc6"}

	t.Run("Allowed", func(t *testing.T) {
		assert.NoError(t, ValueInList("Cipher", "idea", allowed))
	})

	t.Run("NotAllowed", func(t *testing.T) {
		err := ValueInList("Cipher", "rot13", allowed)
		require.Error(t, err)

		var listErr *ciphers.ValueNotInListError
		require.True(t, errors.As(err, &listErr))
		assert.Equal(t, allowed, listErr.Allowed)
	})
}
