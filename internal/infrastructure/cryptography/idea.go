package cryptography

import (
	"cipher_toolkit/internal/domain/ciphers"
	"cipher_toolkit/internal/pkg/bits"
	"cipher_toolkit/internal/pkg/logger"
)

const (
	ideaKeyBytes    = 16
	ideaBlockBytes  = 8
	ideaRounds      = 8
	ideaSubkeyCount = 52
	ideaKeyRotation = 25

	// ideaMod is the order of the additive group; the multiplicative group
	// works mod ideaMod+1 with 0 standing in for 2^16.
	ideaMod uint64 = 1 << 16
)

// ideaEngine is the IDEA block cipher: 8 rounds plus an output transform
// over four 16-bit words, mixing the additive group mod 2^16 with the
// multiplicative group mod 2^16+1.
type ideaEngine struct {
	// subkeys holds 9 groups: 6 subkeys per full round, 4 for the output
	// transform. Derived once per direction; decryption derives a fresh
	// inverted schedule instead of reusing the encryption one.
	subkeys [][]uint64
}

// NewIDEA creates the IDEA cipher.
func NewIDEA(log logger.Logger) (ciphers.KeyCipher, error) {
	return &blockProcessor{
		name:       "IDEA",
		engine:     &ideaEngine{},
		blockBytes: ideaBlockBytes,
		keys:       keyConfig{minKeyBytes: 1, maxKeyBytes: ideaKeyBytes},
		logger:     log,
	}, nil
}

func ideaAdd(x1, x2 uint64) uint64 {
	return (x1 + x2) % ideaMod
}

func ideaAddInverse(x uint64) uint64 {
	return (ideaMod - x) % ideaMod
}

func ideaMul(x1, x2 uint64) uint64 {
	if x1 == 0 {
		x1 = ideaMod
	}
	if x2 == 0 {
		x2 = ideaMod
	}
	// The product can land on 2^16 itself; reduce it to 0, its 16-bit
	// representative, so words never exceed 16 bits.
	return x1 * x2 % (ideaMod + 1) % ideaMod
}

// ideaMulInverse inverts in the multiplicative group. ModInverse returns 0
// for the input 0, which is exactly the self-inverse representation of 2^16.
func ideaMulInverse(x uint64) uint64 {
	return bits.ModInverse(x, ideaMod+1)
}

// ideaKey is the 128-bit key material as two 64-bit halves.
type ideaKey struct {
	hi, lo uint64
}

func newIDEAKey(key []byte) ideaKey {
	padded := make([]byte, ideaKeyBytes)
	copy(padded[ideaKeyBytes-len(key):], key)

	words := make([]uint64, ideaKeyBytes)
	for i, b := range padded {
		words[i] = uint64(b)
	}
	return ideaKey{
		hi: bits.JoinBits(words[:8], 8),
		lo: bits.JoinBits(words[8:], 8),
	}
}

// rotateLeft25 rotates the 128-bit key material left by the schedule step.
func (k ideaKey) rotateLeft25() ideaKey {
	return ideaKey{
		hi: k.hi<<ideaKeyRotation | k.lo>>(64-ideaKeyRotation),
		lo: k.lo<<ideaKeyRotation | k.hi>>(64-ideaKeyRotation),
	}
}

func (k ideaKey) words() []uint64 {
	return append(bits.SplitBits(k.hi, 64, 16), bits.SplitBits(k.lo, 64, 16)...)
}

// generateSubkeys produces the 52-subkey encryption schedule: repeated
// 16-bit splits of the key, rotating it 25 bits between splits, grouped into
// 6 per round with 4 left for the output transform.
func generateSubkeys(key []byte) [][]uint64 {
	material := newIDEAKey(key)

	flat := make([]uint64, 0, ideaSubkeyCount+ideaBlockBytes)
	for len(flat) < ideaSubkeyCount {
		flat = append(flat, material.words()...)
		material = material.rotateLeft25()
	}
	flat = flat[:ideaSubkeyCount]

	step := ideaSubkeyCount / ideaRounds
	groups := make([][]uint64, 0, ideaRounds+1)
	for i := 0; i < len(flat); i += step {
		end := i + step
		if end > len(flat) {
			end = len(flat)
		}
		groups = append(groups, flat[i:end])
	}
	return groups
}

// invertSubkeys derives the decryption schedule: groups in reverse order,
// k1/k4 inverted multiplicatively and k2/k3 additively. The inverted k2/k3
// swap places for interior groups only, because the MA layer's middle-output
// swap has to be undone in the opposite temporal direction; the output
// transform group keeps its order.
func invertSubkeys(groups [][]uint64) [][]uint64 {
	inverted := make([][]uint64, 0, len(groups))
	for i := range groups {
		j := len(groups) - 1 - i
		k1, k2, k3, k4 := groups[j][0], groups[j][1], groups[j][2], groups[j][3]
		if i != 0 && i != len(groups)-1 {
			k2, k3 = k3, k2
		}

		current := []uint64{
			ideaMulInverse(k1),
			ideaAddInverse(k2),
			ideaAddInverse(k3),
			ideaMulInverse(k4),
		}
		if j != 0 {
			current = append(current, groups[j-1][4], groups[j-1][5])
		}
		inverted = append(inverted, current)
	}
	return inverted
}

func (e *ideaEngine) setKey(key []byte, encrypting bool) error {
	groups := generateSubkeys(key)
	if !encrypting {
		groups = invertSubkeys(groups)
	}
	e.subkeys = groups
	return nil
}

// kaLayer is the key-addition half of a round.
func kaLayer(x1, x2, x3, x4 uint64, subkeys []uint64) (uint64, uint64, uint64, uint64) {
	return ideaMul(x1, subkeys[0]),
		ideaAdd(x2, subkeys[1]),
		ideaAdd(x3, subkeys[2]),
		ideaMul(x4, subkeys[3])
}

// maLayer is the multiply-add half of a round; it swaps its middle outputs
// before the next round.
func maLayer(y1, y2, y3, y4, k5, k6 uint64) (uint64, uint64, uint64, uint64) {
	a := ideaMul(y1^y3, k5)
	b := ideaMul(k6, ideaAdd(y2^y4, a))
	c := ideaAdd(b, a)

	return y1 ^ b, y3 ^ b, y2 ^ c, y4 ^ c
}

// processBlock runs both directions: the schedule set by setKey already
// encodes the direction.
func (e *ideaEngine) processBlock(block []byte) []byte {
	words := make([]uint64, len(block))
	for i, b := range block {
		words[i] = uint64(b)
	}
	split := bits.SplitBits(bits.JoinBits(words, 8), 64, 16)
	x1, x2, x3, x4 := split[0], split[1], split[2], split[3]

	for i := 0; i < ideaRounds; i++ {
		group := e.subkeys[i]
		y1, y2, y3, y4 := kaLayer(x1, x2, x3, x4, group[:4])
		x1, x2, x3, x4 = maLayer(y1, y2, y3, y4, group[4], group[5])
	}

	// The output transform undoes the last MA swap by taking x2/x3 exchanged.
	y1, y2, y3, y4 := kaLayer(x1, x3, x2, x4, e.subkeys[ideaRounds])

	out := make([]byte, 0, ideaBlockBytes)
	joined := bits.JoinBits([]uint64{y1, y2, y3, y4}, 16)
	for _, word := range bits.SplitBits(joined, 64, 8) {
		out = append(out, byte(word))
	}
	return out
}

func (e *ideaEngine) encryptBlock(block []byte) []byte {
	return e.processBlock(block)
}

func (e *ideaEngine) decryptBlock(block []byte) []byte {
	return e.processBlock(block)
}
