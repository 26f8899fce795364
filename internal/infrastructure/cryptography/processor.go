package cryptography

import (
	"bufio"
	"io"

	"cipher_toolkit/internal/domain/ciphers"
	"cipher_toolkit/internal/pkg/logger"
)

// keyConfig bounds the key material a cipher accepts. Keys are truncated to
// maxKeyBytes before validation; RC6 is the only cipher allowing zero length.
type keyConfig struct {
	minKeyBytes   int
	maxKeyBytes   int
	allowEmptyKey bool
}

// preprocessKey truncates, validates and converts the key into byte values.
func preprocessKey(key string, cfg keyConfig) ([]byte, error) {
	chars := []rune(key)
	if len(chars) > cfg.maxKeyBytes {
		chars = chars[:cfg.maxKeyBytes]
	}

	if len(chars) == 0 {
		if cfg.allowEmptyKey {
			return []byte{}, nil
		}
		return nil, ciphers.ErrEmptyKey
	}
	if len(chars) < cfg.minKeyBytes {
		return nil, &ciphers.ValueNotInRangeError{
			Name:  "Key length",
			Value: len(chars),
			Min:   cfg.minKeyBytes,
			Max:   cfg.maxKeyBytes,
		}
	}

	keyBytes := make([]byte, len(chars))
	for i, char := range chars {
		if err := byteAllowed(char); err != nil {
			return nil, err
		}
		keyBytes[i] = byte(char)
	}
	return keyBytes, nil
}

// addPadding pads a short chunk to exactly blockBytes: a 0x01 sentinel
// followed by 0x00 fill.
func addPadding(chunk []byte, blockBytes int) []byte {
	if len(chunk) >= blockBytes {
		return chunk
	}
	padded := make([]byte, blockBytes)
	copy(padded, chunk)
	padded[len(chunk)] = 0x01
	return padded
}

// removePadding strips trailing 0x00/0x01 bytes. The scheme is lossy for
// plaintext that genuinely ends in those byte values.
func removePadding(block []byte) []byte {
	end := len(block)
	for end > 0 && (block[end-1] == 0x00 || block[end-1] == 0x01) {
		end--
	}
	return block[:end]
}

// readChunkRunes reads up to limit runes, validating that each fits a byte.
// A shorter result means the input ended.
func readChunkRunes(reader *bufio.Reader, limit int) ([]byte, error) {
	chunk := make([]byte, 0, limit)
	for len(chunk) < limit {
		char, _, err := reader.ReadRune()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		if err := byteAllowed(char); err != nil {
			return nil, err
		}
		chunk = append(chunk, byte(char))
	}
	return chunk, nil
}

// readChunkHex reads up to limit hex windows and parses them into byte
// values. A trailing 1-digit window is parsed too; the caller decides whether
// a short chunk is an error.
func readChunkHex(reader *bufio.Reader, limit int) ([]byte, error) {
	raw := make([]byte, 0, limit*hexLength)
	for len(raw) < limit*hexLength {
		b, err := reader.ReadByte()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		raw = append(raw, b)
	}

	chunk := make([]byte, 0, limit)
	for i := 0; i < len(raw); i += hexLength {
		end := i + hexLength
		if end > len(raw) {
			end = len(raw)
		}
		value, err := hexToByte(string(raw[i:end]))
		if err != nil {
			return nil, err
		}
		chunk = append(chunk, value)
	}
	return chunk, nil
}

// writeRunes writes byte values back out as text codepoints.
func writeRunes(text io.Writer, chunk []byte) error {
	out := make([]rune, len(chunk))
	for i, b := range chunk {
		out[i] = rune(b)
	}
	_, err := io.WriteString(text, string(out))
	return err
}

// writeHex writes byte values as uppercase hex pairs.
func writeHex(cipher io.Writer, chunk []byte) error {
	for _, b := range chunk {
		if _, err := io.WriteString(cipher, byteToHex(b)); err != nil {
			return err
		}
	}
	return nil
}

// blockEngine is the cipher-specific core of a block cipher: it derives key
// state once per direction and transforms full blocks.
type blockEngine interface {
	setKey(key []byte, encrypting bool) error
	encryptBlock(block []byte) []byte
	decryptBlock(block []byte) []byte
}

// blockProcessor streams text through a blockEngine chunk by chunk. Output is
// written incrementally, so a mid-stream validation failure leaves the prior
// chunks flushed.
type blockProcessor struct {
	name       string
	engine     blockEngine
	blockBytes int
	keys       keyConfig
	logger     logger.Logger
}

// KeyBytes reports the maximum number of key bytes the cipher consumes.
func (p *blockProcessor) KeyBytes() int {
	return p.keys.maxKeyBytes
}

// Encrypt implements ciphers.KeyCipher.
func (p *blockProcessor) Encrypt(text io.Reader, key string, cipher io.Writer) error {
	keyBytes, err := preprocessKey(key, p.keys)
	if err != nil {
		return err
	}
	if err := p.engine.setKey(keyBytes, true); err != nil {
		return err
	}

	reader := bufio.NewReader(text)
	for {
		chunk, err := readChunkRunes(reader, p.blockBytes)
		if err != nil {
			return err
		}
		if len(chunk) == 0 {
			break
		}

		block := p.engine.encryptBlock(addPadding(chunk, p.blockBytes))
		if err := writeHex(cipher, block); err != nil {
			return err
		}
	}

	p.logger.Info(p.name, " encryption succeeded")
	return nil
}

// Decrypt implements ciphers.KeyCipher.
func (p *blockProcessor) Decrypt(cipher io.Reader, key string, text io.Writer) error {
	keyBytes, err := preprocessKey(key, p.keys)
	if err != nil {
		return err
	}
	if err := p.engine.setKey(keyBytes, false); err != nil {
		return err
	}

	reader := bufio.NewReader(cipher)
	for {
		chunk, err := readChunkHex(reader, p.blockBytes)
		if err != nil {
			return err
		}
		if len(chunk) == 0 {
			break
		}
		if len(chunk) < p.blockBytes {
			return &ciphers.InputLengthError{Length: p.blockBytes}
		}

		block := removePadding(p.engine.decryptBlock(chunk))
		if err := writeRunes(text, block); err != nil {
			return err
		}
	}

	p.logger.Info(p.name, " decryption succeeded")
	return nil
}

// streamEngine is the cipher-specific core of a stream cipher: an evolving
// keystream applied one byte at a time. The same transform serves both
// directions, so the keystream must advance exactly once per processed byte.
type streamEngine interface {
	setKey(key []byte) error
	process(b byte) byte
}

// streamProcessor streams text through a streamEngine one unit at a time.
type streamProcessor struct {
	name   string
	engine streamEngine
	keys   keyConfig
	logger logger.Logger
}

// KeyBytes reports the maximum number of key bytes the cipher consumes.
func (p *streamProcessor) KeyBytes() int {
	return p.keys.maxKeyBytes
}

func (p *streamProcessor) setKey(key string) error {
	keyBytes, err := preprocessKey(key, p.keys)
	if err != nil {
		return err
	}
	return p.engine.setKey(keyBytes)
}

// Encrypt implements ciphers.KeyCipher.
func (p *streamProcessor) Encrypt(text io.Reader, key string, cipher io.Writer) error {
	if err := p.setKey(key); err != nil {
		return err
	}

	reader := bufio.NewReader(text)
	for {
		chunk, err := readChunkRunes(reader, 1)
		if err != nil {
			return err
		}
		if len(chunk) == 0 {
			break
		}

		if err := writeHex(cipher, []byte{p.engine.process(chunk[0])}); err != nil {
			return err
		}
	}

	p.logger.Info(p.name, " encryption succeeded")
	return nil
}

// Decrypt implements ciphers.KeyCipher.
func (p *streamProcessor) Decrypt(cipher io.Reader, key string, text io.Writer) error {
	if err := p.setKey(key); err != nil {
		return err
	}

	reader := bufio.NewReader(cipher)
	for {
		chunk, err := readChunkHex(reader, 1)
		if err != nil {
			return err
		}
		if len(chunk) == 0 {
			break
		}

		if err := writeRunes(text, []byte{p.engine.process(chunk[0])}); err != nil {
			return err
		}
	}

	p.logger.Info(p.name, " decryption succeeded")
	return nil
}
