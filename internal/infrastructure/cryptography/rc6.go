package cryptography

import (
	"math"

	"cipher_toolkit/internal/domain/ciphers"
	"cipher_toolkit/internal/pkg/bits"
	"cipher_toolkit/internal/pkg/logger"
	"cipher_toolkit/internal/pkg/validators"
)

const (
	rc6WordBits   = 32
	rc6WordBytes  = rc6WordBits / 8
	rc6LgWordBits = 5
	rc6Rounds     = 20
	rc6BlockBytes = 16

	rc6MinKeyBytes = 0
	rc6MaxKeyBytes = 255

	rc6Mod  uint64 = 1 << rc6WordBits
	rc6Mask uint64 = rc6Mod - 1

	// rc6ScheduleLen is 2R+4 round subkey words.
	rc6ScheduleLen = 2*rc6Rounds + 4
)

// Magic constants: Euler's number and the golden ratio scaled to the word
// width and rounded to the nearest odd integer.
var (
	rc6P = nearestOdd((math.E - 2) * float64(rc6Mod))
	rc6Q = nearestOdd((math.Phi - 1) * float64(rc6Mod))
)

func nearestOdd(x float64) uint64 {
	n := uint64(math.Floor(x))
	if n%2 == 0 {
		n++
	}
	return n
}

// rc6Engine is RC6-32/20: four 32-bit registers mixed with data-dependent
// rotations whose amounts come from a quadratic function of the data itself.
type rc6Engine struct {
	schedule []uint64
}

// NewRC6 creates the RC6 cipher accepting keys up to keyBytes long. A
// zero-length key is legal and yields a schedule that depends only on the
// magic constants.
func NewRC6(log logger.Logger, keyBytes int) (ciphers.KeyCipher, error) {
	if err := validators.ValueInRange("Key bytes", keyBytes, rc6MinKeyBytes, rc6MaxKeyBytes); err != nil {
		return nil, err
	}
	return &blockProcessor{
		name:       "RC6",
		engine:     &rc6Engine{},
		blockBytes: rc6BlockBytes,
		keys:       keyConfig{minKeyBytes: rc6MinKeyBytes, maxKeyBytes: keyBytes, allowEmptyKey: true},
		logger:     log,
	}, nil
}

func (e *rc6Engine) setKey(key []byte, _ bool) error {
	e.schedule = rc6KeyExpansion(key)
	return nil
}

// rc6KeyExpansion packs the key little-endian into 32-bit words (an empty
// key still yields one zero word), seeds the 2R+4 schedule from the magic
// constants and mixes key words and schedule together with data-dependent
// rotations.
func rc6KeyExpansion(key []byte) []uint64 {
	wordCount := (len(key) + rc6WordBytes - 1) / rc6WordBytes
	if wordCount == 0 {
		wordCount = 1
	}
	words := make([]uint64, wordCount)
	for i := len(key) - 1; i >= 0; i-- {
		words[i/rc6WordBytes] = (words[i/rc6WordBytes]<<8 + uint64(key[i])) & rc6Mask
	}

	schedule := make([]uint64, rc6ScheduleLen)
	schedule[0] = rc6P
	for i := 1; i < rc6ScheduleLen; i++ {
		schedule[i] = (schedule[i-1] + rc6Q) % rc6Mod
	}

	var a, b uint64
	i, j := 0, 0
	for k := 0; k < 3*max(wordCount, rc6ScheduleLen); k++ {
		a = bits.RotateLeft((schedule[i]+a+b)%rc6Mod, 3, rc6WordBits)
		schedule[i] = a
		b = bits.RotateLeft((words[j]+a+b)%rc6Mod, uint(a+b), rc6WordBits)
		words[j] = b
		i = (i + 1) % rc6ScheduleLen
		j = (j + 1) % wordCount
	}

	return schedule
}

// rc6Mix is the quadratic mixing function f(x) = rotl(x(2x+1), lg w); its
// output drives the data-dependent rotations.
func rc6Mix(x uint64) uint64 {
	return bits.RotateLeft((x*(2*x+1))&rc6Mask, rc6LgWordBits, rc6WordBits)
}

func rc6Registers(block []byte) (uint64, uint64, uint64, uint64) {
	regs := make([]uint64, 0, 4)
	for i := 0; i < len(block); i += rc6WordBytes {
		words := make([]uint64, rc6WordBytes)
		for j := range words {
			words[j] = uint64(block[i+j])
		}
		regs = append(regs, bits.JoinBits(words, 8))
	}
	return regs[0], regs[1], regs[2], regs[3]
}

func rc6Bytes(a, b, c, d uint64) []byte {
	out := make([]byte, 0, rc6BlockBytes)
	for _, reg := range []uint64{a, b, c, d} {
		for _, word := range bits.SplitBits(reg, rc6WordBits, 8) {
			out = append(out, byte(word))
		}
	}
	return out
}

func (e *rc6Engine) encryptBlock(block []byte) []byte {
	s := e.schedule
	a, b, c, d := rc6Registers(block)

	b = (b + s[0]) % rc6Mod
	d = (d + s[1]) % rc6Mod
	for i := 1; i <= rc6Rounds; i++ {
		t := rc6Mix(b)
		u := rc6Mix(d)
		a = (bits.RotateLeft(a^t, uint(u), rc6WordBits) + s[2*i]) % rc6Mod
		c = (bits.RotateLeft(c^u, uint(t), rc6WordBits) + s[2*i+1]) % rc6Mod
		a, b, c, d = b, c, d, a
	}
	a = (a + s[2*rc6Rounds+2]) % rc6Mod
	c = (c + s[2*rc6Rounds+3]) % rc6Mod

	return rc6Bytes(a, b, c, d)
}

func (e *rc6Engine) decryptBlock(block []byte) []byte {
	s := e.schedule
	a, b, c, d := rc6Registers(block)

	c = (c - s[2*rc6Rounds+3] + rc6Mod) % rc6Mod
	a = (a - s[2*rc6Rounds+2] + rc6Mod) % rc6Mod
	for i := rc6Rounds; i >= 1; i-- {
		a, b, c, d = d, a, b, c
		u := rc6Mix(d)
		t := rc6Mix(b)
		c = bits.RotateRight((c-s[2*i+1]+rc6Mod)%rc6Mod, uint(t), rc6WordBits) ^ u
		a = bits.RotateRight((a-s[2*i]+rc6Mod)%rc6Mod, uint(u), rc6WordBits) ^ t
	}
	d = (d - s[1] + rc6Mod) % rc6Mod
	b = (b - s[0] + rc6Mod) % rc6Mod

	return rc6Bytes(a, b, c, d)
}
