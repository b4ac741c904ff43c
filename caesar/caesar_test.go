package caesar

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"
)

func TestShift(t *testing.T) {
	tests := []struct {
		name    string
		message string
		offset  int
		want    string
	}{
		{name: "basic", message: "abc", offset: 3, want: "def"},
		{name: "wrap around", message: "xyz", offset: 3, want: "abc"},
		{name: "negative offset", message: "abc", offset: -1, want: "zab"},
		{name: "offset beyond alphabet", message: "abc", offset: 29, want: "def"},
		{name: "uppercase folded", message: "ABC", offset: 1, want: "bcd"},
		{name: "non-letters untouched", message: "a1 b!", offset: 1, want: "b1 c!"},
		{name: "empty", message: "", offset: 5, want: ""},
		{name: "zero offset", message: "hello", offset: 0, want: "hello"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Shift(tt.message, tt.offset))
		})
	}
}

func TestEncryptDecryptRoundTrip(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		offset := rapid.IntRange(-100, 100).Draw(t, "offset")
		message := rapid.StringOf(
			rapid.RuneFrom([]rune("abcdefghijklmnopqrstuvwxyzABC 0123.,!")),
		).Draw(t, "message")

		got := Decrypt(Encrypt(message, offset), offset)
		if want := strings.ToLower(message); got != want {
			t.Fatalf("round trip mismatch: got %q, want %q", got, want)
		}
	})
}
