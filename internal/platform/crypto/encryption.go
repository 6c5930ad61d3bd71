package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"encoding/hex"
	"io"

	"github.com/pkg/errors"
)

const keySize = 32

var ErrShortCiphertext = errors.New("ciphertext too short")

// Cipher seals sensitive employee columns (national id, bank account) with
// AES-256-GCM. Without a key it stores plaintext bytes.
type Cipher struct {
	aead cipher.AEAD
}

func New(key string) (*Cipher, error) {
	if key == "" {
		return &Cipher{}, nil
	}
	decoded := decodeKey(key)
	if len(decoded) != keySize {
		return nil, errors.Errorf("DATA_ENCRYPTION_KEY must decode to %d bytes, got %d", keySize, len(decoded))
	}
	block, err := aes.NewCipher(decoded)
	if err != nil {
		return nil, errors.Wrap(err, "aes cipher")
	}
	aead, err := cipher.NewGCM(block)
	if err != nil {
		return nil, errors.Wrap(err, "gcm")
	}
	return &Cipher{aead: aead}, nil
}

func (c *Cipher) Configured() bool {
	return c != nil && c.aead != nil
}

func (c *Cipher) EncryptString(value string) ([]byte, error) {
	if value == "" {
		return nil, nil
	}
	if !c.Configured() {
		return []byte(value), nil
	}
	nonce := make([]byte, c.aead.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return nil, errors.Wrap(err, "read nonce")
	}
	return c.aead.Seal(nonce, nonce, []byte(value), nil), nil
}

func (c *Cipher) DecryptString(sealed []byte) (string, error) {
	if len(sealed) == 0 {
		return "", nil
	}
	if !c.Configured() {
		return string(sealed), nil
	}
	size := c.aead.NonceSize()
	if len(sealed) < size {
		return "", ErrShortCiphertext
	}
	plain, err := c.aead.Open(nil, sealed[:size], sealed[size:], nil)
	if err != nil {
		return "", errors.Wrap(err, "open")
	}
	return string(plain), nil
}

// decodeKey accepts hex, padded or raw base64, or the literal key bytes.
func decodeKey(raw string) []byte {
	if len(raw) == hex.EncodedLen(keySize) {
		if decoded, err := hex.DecodeString(raw); err == nil {
			return decoded
		}
	}
	if decoded, err := base64.StdEncoding.DecodeString(raw); err == nil {
		return decoded
	}
	if decoded, err := base64.RawStdEncoding.DecodeString(raw); err == nil {
		return decoded
	}
	return []byte(raw)
}
