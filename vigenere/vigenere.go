// Package vigenere implements the classic Vigenère cipher over the 26
// lowercase Latin letters. Each letter of the message is shifted by the
// alphabet position of the corresponding key letter; the key repeats
// cyclically and only advances on letters, so spaces, digits and
// punctuation pass through untouched. Both message and key are folded to
// lowercase before the transform runs, so output is always lowercase.
package vigenere

import (
	"strings"
)

// Alphabet is the fixed domain for all letter-position arithmetic.
const Alphabet = "abcdefghijklmnopqrstuvwxyz"

// Direction selects whether the key offset is added to or subtracted
// from a letter's position.
type Direction int

const (
	// DirEncrypt shifts letters forward by the key offset.
	DirEncrypt Direction = 1
	// DirDecrypt shifts letters backward by the key offset.
	DirDecrypt Direction = -1
)

// InvalidKeyError is the only error the cipher can produce. It is
// returned before any character is transformed.
type InvalidKeyError struct {
	Reason string
}

func (e *InvalidKeyError) Error() string {
	return "invalid key: " + e.Reason
}

// ValidateKey checks that key is non-empty and contains only letters
// (case-insensitive). It has no side effects.
func ValidateKey(key string) error {
	if len(key) == 0 {
		return &InvalidKeyError{Reason: "empty key"}
	}
	for i := 0; i < len(key); i++ {
		if !isLetter(key[i]) {
			return &InvalidKeyError{Reason: "non-alphabetic key"}
		}
	}
	return nil
}

type Cipher struct {
	key string
}

// New validates key and returns a Cipher ready to transform messages.
func New(key string) (*Cipher, error) {
	if err := ValidateKey(key); err != nil {
		return nil, err
	}
	return &Cipher{key: strings.ToLower(key)}, nil
}

// Transform encrypts or decrypts message depending on dir. It is a pure
// single pass: the result has the same length as the lowercased message,
// with every non-letter at its original position.
func (c *Cipher) Transform(message string, dir Direction) string {
	message = strings.ToLower(message)
	result := make([]byte, len(message))
	keyIndex := 0

	for i := 0; i < len(message); i++ {
		ch := message[i]
		index := strings.IndexByte(Alphabet, ch)
		if index < 0 {
			// Non-letters pass through and do not consume a key position.
			result[i] = ch
			continue
		}

		offset := strings.IndexByte(Alphabet, c.key[keyIndex%len(c.key)])
		keyIndex++

		newIndex := (index + offset*int(dir)) % len(Alphabet)
		if newIndex < 0 {
			newIndex += len(Alphabet)
		}
		result[i] = Alphabet[newIndex]
	}

	return string(result)
}

func (c *Cipher) Encrypt(message string) string {
	return c.Transform(message, DirEncrypt)
}

func (c *Cipher) Decrypt(message string) string {
	return c.Transform(message, DirDecrypt)
}

// Transform is the one-shot form: it validates key, then applies the
// cipher in the given direction.
func Transform(message, key string, dir Direction) (string, error) {
	c, err := New(key)
	if err != nil {
		return "", err
	}
	return c.Transform(message, dir), nil
}

// Encrypt is Transform with DirEncrypt.
func Encrypt(message, key string) (string, error) {
	return Transform(message, key, DirEncrypt)
}

// Decrypt is Transform with DirDecrypt.
func Decrypt(message, key string) (string, error) {
	return Transform(message, key, DirDecrypt)
}

func isLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}
