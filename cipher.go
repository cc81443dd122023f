package securecrypto

import (
	"crypto/aes"
	"crypto/cipher"
	"fmt"
	"unicode/utf8"

	"github.com/awnumar/memguard"
)

// newGCM validates the key and initializes an AES-256-GCM AEAD.
func newGCM(key []byte) (cipher.AEAD, error) {
	if len(key) != KeySize {
		return nil, fmt.Errorf("%w: key must be %d bytes for AES-GCM, got %d", ErrInvalidArgument, KeySize, len(key))
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("%w: cipher init failed: %v", ErrInvalidArgument, err)
	}

	return cipher.NewGCM(block)
}

// EncryptBytes encrypts plaintext with AES-256-GCM under a 32-byte key and
// returns the framed ciphertext: a self-describing header followed by the
// raw ciphertext with its 16-byte tag. Every call draws a fresh 96-bit IV
// from the system CSPRNG, so the same key may be used concurrently.
//
// Empty plaintext is permitted and frames to exactly 40 bytes.
func EncryptBytes(key, plaintext []byte) ([]byte, error) {
	aead, err := newGCM(key)
	if err != nil {
		return nil, err
	}

	g, err := NewGenerator()
	if err != nil {
		return nil, err
	}

	iv, err := g.Bytes(gcmIVSize)
	if err != nil {
		return nil, err
	}

	// Frame: header, then ciphertext-with-tag sealed directly after it.
	h := newGCMHeader(iv)
	out := make([]byte, 0, h.len()+len(plaintext)+aead.Overhead())
	out = append(out, h.encode()...)

	return aead.Seal(out, iv, plaintext, nil), nil
}

// DecryptBytes authenticates and decrypts a framed ciphertext produced by
// EncryptBytes. The key length and then the header are validated before any
// decryption is attempted, so a malformed header reports ErrInvalidHeader; a
// failed tag check — body tampering, a corrupted IV, or a wrong key —
// reports ErrAuthFailure.
func DecryptBytes(key, framed []byte) ([]byte, error) {
	aead, err := newGCM(key)
	if err != nil {
		return nil, err
	}

	h, err := parseHeader(framed)
	if err != nil {
		return nil, err
	}

	iv, err := h.gcmParams()
	if err != nil {
		return nil, err
	}

	plaintext, err := aead.Open(nil, iv, framed[h.len():], nil)
	if err != nil {
		return nil, fmt.Errorf("%w: GCM tag mismatch", ErrAuthFailure)
	}

	return plaintext, nil
}

// EncryptString encrypts s and returns the framed ciphertext as standard
// padded Base64 with no line breaks.
func EncryptString(key []byte, s string) (string, error) {
	plaintext := []byte(s)
	defer memguard.WipeBytes(plaintext)

	framed, err := EncryptBytes(key, plaintext)
	if err != nil {
		return "", err
	}

	enc, _ := Base64Default.encoding()

	return enc.EncodeToString(framed), nil
}

// DecryptString reverses EncryptString: it decodes the Base64 input,
// decrypts the frame, and interprets the plaintext as UTF-8. Malformed
// Base64 or non-UTF-8 plaintext reports ErrEncoding.
func DecryptString(key []byte, s string) (string, error) {
	framed, err := decodeBase64Std(s)
	if err != nil {
		return "", err
	}

	plaintext, err := DecryptBytes(key, framed)
	if err != nil {
		return "", err
	}
	defer memguard.WipeBytes(plaintext)

	if !utf8.Valid(plaintext) {
		return "", fmt.Errorf("%w: plaintext is not valid UTF-8", ErrEncoding)
	}

	return string(plaintext), nil
}
