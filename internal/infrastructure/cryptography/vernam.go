package cryptography

import (
	"bufio"
	"crypto/rand"
	"io"

	"cipher_toolkit/internal/pkg/logger"
)

// Vernam is the one-time pad: every input byte is XORed with a freshly drawn
// random key byte. The key stream is written next to the ciphertext on
// encryption and consumed alongside it on decryption, so the two streams
// must stay aligned byte for byte.
type Vernam struct {
	random io.Reader
	logger logger.Logger
}

// NewVernam creates the Vernam cipher. A nil random source falls back to
// crypto/rand; tests inject a deterministic one.
func NewVernam(log logger.Logger, random io.Reader) *Vernam {
	if random == nil {
		random = rand.Reader
	}
	return &Vernam{random: random, logger: log}
}

// Encrypt reads plaintext runes from text, writes the generated key as hex
// pairs to keySink and the ciphertext as hex pairs to cipher.
func (v *Vernam) Encrypt(text io.Reader, keySink io.Writer, cipher io.Writer) error {
	reader := bufio.NewReader(text)
	keyByte := make([]byte, 1)

	for {
		chunk, err := readChunkRunes(reader, 1)
		if err != nil {
			return err
		}
		if len(chunk) == 0 {
			break
		}

		if _, err := io.ReadFull(v.random, keyByte); err != nil {
			return err
		}
		if err := writeHex(keySink, keyByte); err != nil {
			return err
		}
		if err := writeHex(cipher, []byte{chunk[0] ^ keyByte[0]}); err != nil {
			return err
		}
	}

	v.logger.Info("Vernam encryption succeeded")
	return nil
}

// Decrypt reads cipher and key hex pairs in lockstep, stopping at whichever
// stream ends first.
func (v *Vernam) Decrypt(cipher io.Reader, keySource io.Reader, text io.Writer) error {
	cipherReader := bufio.NewReader(cipher)
	keyReader := bufio.NewReader(keySource)

	for {
		cipherChunk, err := readChunkHex(cipherReader, 1)
		if err != nil {
			return err
		}
		keyChunk, err := readChunkHex(keyReader, 1)
		if err != nil {
			return err
		}
		if len(cipherChunk) == 0 || len(keyChunk) == 0 {
			break
		}

		if err := writeRunes(text, []byte{cipherChunk[0] ^ keyChunk[0]}); err != nil {
			return err
		}
	}

	v.logger.Info("Vernam decryption succeeded")
	return nil
}
