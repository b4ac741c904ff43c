// Package caesar implements a fixed-shift substitution cipher: every
// letter moves by the same offset. It shares the Vigenère package's
// normalization rules (lowercase output, non-letters pass through) but
// needs no key, so it has no error path.
package caesar

import "strings"

const alphabet = "abcdefghijklmnopqrstuvwxyz"

// Shift moves every letter of message by offset positions, wrapping
// around the alphabet. Any integer offset is accepted; negative offsets
// shift backward.
func Shift(message string, offset int) string {
	message = strings.ToLower(message)
	result := make([]byte, len(message))

	for i := 0; i < len(message); i++ {
		ch := message[i]
		index := strings.IndexByte(alphabet, ch)
		if index < 0 {
			result[i] = ch
			continue
		}
		newIndex := (index + offset) % len(alphabet)
		if newIndex < 0 {
			newIndex += len(alphabet)
		}
		result[i] = alphabet[newIndex]
	}

	return string(result)
}

// Encrypt shifts message forward by offset.
func Encrypt(message string, offset int) string {
	return Shift(message, offset)
}

// Decrypt reverses Encrypt for the same offset.
func Decrypt(message string, offset int) string {
	return Shift(message, -offset)
}
