package cryptography

import (
	"cipher_toolkit/internal/domain/ciphers"
	"cipher_toolkit/internal/pkg/logger"
	"cipher_toolkit/internal/pkg/validators"
)

const (
	// arc4PermSize is 2^16: this is the wide-word ARC4 variant with a
	// 16-bit permutation rather than the usual byte-sized one.
	arc4PermSize = 1 << 16

	arc4MinKeyBytes = 5
	arc4MaxKeyBytes = 256
)

// arc4Engine holds the evolving keystream state: the permutation plus the
// two cursors. It must advance exactly once per processed byte, in strict
// input order.
type arc4Engine struct {
	perm []uint32
	i, j int
}

// NewARC4 creates the ARC4 stream cipher accepting keys up to keyBytes long.
func NewARC4(log logger.Logger, keyBytes int) (ciphers.KeyCipher, error) {
	if err := validators.ValueInRange("Key bytes", keyBytes, arc4MinKeyBytes, arc4MaxKeyBytes); err != nil {
		return nil, err
	}
	return &streamProcessor{
		name:   "ARC4",
		engine: &arc4Engine{},
		keys:   keyConfig{minKeyBytes: arc4MinKeyBytes, maxKeyBytes: keyBytes},
		logger: log,
	}, nil
}

// setKey runs the key-scheduling algorithm, seeding the permutation from the
// key bytes cycled over the whole table.
func (e *arc4Engine) setKey(key []byte) error {
	e.perm = make([]uint32, arc4PermSize)
	for i := range e.perm {
		e.perm[i] = uint32(i)
	}

	j := 0
	for i := 0; i < arc4PermSize; i++ {
		j = (j + int(e.perm[i]) + int(key[i%len(key)])) % arc4PermSize
		e.perm[i], e.perm[j] = e.perm[j], e.perm[i]
	}

	e.i, e.j = 0, 0
	return nil
}

// process advances the pseudo-random generation algorithm one step and XORs
// the next keystream word into the input, reduced to a byte.
func (e *arc4Engine) process(b byte) byte {
	e.i = (e.i + 1) % arc4PermSize
	e.j = (e.j + int(e.perm[e.i])) % arc4PermSize
	e.perm[e.i], e.perm[e.j] = e.perm[e.j], e.perm[e.i]

	k := e.perm[(int(e.perm[e.i])+int(e.perm[e.j]))%arc4PermSize]
	return byte(uint32(b) ^ k)
}
