// Command cipher-demo decrypts a known sample ciphertext, re-encrypts
// the result with the same key and verifies that the original comes
// back. It is the round-trip acceptance check for the cipher packages.
package main

import (
	"fmt"
	"os"
	"strings"

	"cipher-backend/caesar"
	"cipher-backend/vigenere"

	"github.com/gookit/color"
)

// Sample encrypted text and decryption key
const (
	encryptedText = "mrttaqrhknsw ih puggrur"
	decryptionKey = "happycoding"
)

func main() {
	color.Cyan.Println(strings.Repeat("=", 50))
	color.Cyan.Println("VIGENÈRE CIPHER - DECRYPTION DEMO")
	color.Cyan.Println(strings.Repeat("=", 50))

	fmt.Printf("\nEncrypted text: %s\n", encryptedText)
	fmt.Printf("Decryption key: %s\n", decryptionKey)

	decrypted, err := vigenere.Decrypt(encryptedText, decryptionKey)
	if err != nil {
		color.Red.Printf("Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Decrypted text: %s\n", decrypted)

	fmt.Println()
	color.Cyan.Println(strings.Repeat("-", 50))
	color.Cyan.Println("VERIFICATION - RE-ENCRYPTING THE DECRYPTED TEXT")
	color.Cyan.Println(strings.Repeat("-", 50))

	reEncrypted, err := vigenere.Encrypt(decrypted, decryptionKey)
	if err != nil {
		color.Red.Printf("Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Re-encrypted:   %s\n", reEncrypted)
	fmt.Printf("Original:       %s\n", encryptedText)

	if reEncrypted != encryptedText {
		color.Red.Println("Match: false")
		os.Exit(1)
	}
	color.Green.Println("Match: true")

	fmt.Println()
	color.Cyan.Println(strings.Repeat("-", 50))
	color.Cyan.Println("BONUS - FIXED-SHIFT (CAESAR) EXAMPLE")
	color.Cyan.Println(strings.Repeat("-", 50))

	plain := "freecodecamp"
	shifted := caesar.Encrypt(plain, 3)
	fmt.Printf("Plaintext:  %s\n", plain)
	fmt.Printf("Shift +3:   %s\n", shifted)
	fmt.Printf("Shift back: %s\n", caesar.Decrypt(shifted, 3))

	fmt.Println()
	color.Cyan.Println(strings.Repeat("=", 50))
}
