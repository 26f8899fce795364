package cryptography

import (
	"cipher_toolkit/internal/domain/ciphers"
	"cipher_toolkit/internal/pkg/bits"
	"cipher_toolkit/internal/pkg/logger"
)

const (
	feistelKeyBytes   = 4
	feistelBlockBytes = 8
	feistelRounds     = 20
)

// feistelEngine is a 20-round XOR Feistel network over 64-bit blocks with a
// 32-bit key. It exists as a hand-traceable demonstration cipher.
type feistelEngine struct {
	key []byte
}

// NewFeistel creates the Feistel demonstration cipher.
func NewFeistel(log logger.Logger) (ciphers.KeyCipher, error) {
	return &blockProcessor{
		name:       "Feistel",
		engine:     &feistelEngine{},
		blockBytes: feistelBlockBytes,
		keys:       keyConfig{minKeyBytes: 1, maxKeyBytes: feistelKeyBytes},
		logger:     log,
	}, nil
}

func (e *feistelEngine) setKey(key []byte, _ bool) error {
	e.key = key
	return nil
}

// subkey reads a sliding 32-bit window over the infinitely repeated key:
// round r starts at byte r/8, shifted r%8 bits. One extra byte is read so
// the bit shift always has material to slice from.
func (e *feistelEngine) subkey(round int) []byte {
	bytesCut := round / 8
	bitsCut := uint(round % 8)

	window := make([]uint64, feistelKeyBytes+1)
	for i := range window {
		window[i] = uint64(e.key[(bytesCut+i)%len(e.key)])
	}

	windowWidth := uint(len(window)) * 8
	keyBits := uint(feistelKeyBytes) * 8

	joined := bits.JoinBits(window, 8)
	value := bits.SliceBits(joined, bitsCut, keyBits+bitsCut, windowWidth)

	subkey := make([]byte, feistelKeyBytes)
	for i, word := range bits.SplitBits(value, keyBits, 8) {
		subkey[i] = byte(word)
	}
	return subkey
}

// processBlock runs the network in either direction: decryption is the same
// transform with the round order reversed, so the final round of whichever
// sequence executes is the one that skips the half swap.
func (e *feistelEngine) processBlock(block []byte, encrypting bool) []byte {
	middle := len(block) / 2
	left := append([]byte(nil), block[:middle]...)
	right := append([]byte(nil), block[middle:]...)

	rounds := make([]int, feistelRounds)
	for i := range rounds {
		if encrypting {
			rounds[i] = i + 1
		} else {
			rounds[i] = feistelRounds - i
		}
	}

	for n, round := range rounds {
		subkey := e.subkey(round)
		for i := range left {
			left[i] ^= right[i] ^ subkey[i]
		}
		if n != len(rounds)-1 {
			left, right = right, left
		}
	}

	return append(left, right...)
}

func (e *feistelEngine) encryptBlock(block []byte) []byte {
	return e.processBlock(block, true)
}

func (e *feistelEngine) decryptBlock(block []byte) []byte {
	return e.processBlock(block, false)
}
