package ciphers

import "io"

// KeyCipher processes a text stream under a caller-supplied key. A cipher
// instance derives its key state anew on every call: encrypt and decrypt
// never share schedules, and a call owns its state until it returns.
type KeyCipher interface {
	// Encrypt reads plaintext runes from text and writes the ciphertext as
	// uppercase hex pairs to cipher. Output is flushed chunk by chunk; on
	// error the already written chunks remain in the sink.
	Encrypt(text io.Reader, key string, cipher io.Writer) error

	// Decrypt reads hex pairs from cipher and writes the recovered plaintext
	// to text. It fails with an input-length error when the final chunk is
	// shorter than the cipher requires.
	Decrypt(cipher io.Reader, key string, text io.Writer) error

	// KeyBytes reports the maximum number of key bytes the cipher consumes;
	// longer keys are truncated before validation.
	KeyBytes() int
}
