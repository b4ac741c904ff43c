// Package models contain needed models
package models

// CipherRequest represents a request to encrypt or decrypt a message
// with a Vigenère key. The message may be empty; the key is validated
// by the cipher itself so that a bad key always yields the same error.
type CipherRequest struct {
	Message string `json:"message"`
	Key     string `json:"key"`
}

// TransformRequest carries an explicit direction instead of baking it
// into the route.
type TransformRequest struct {
	Message   string `json:"message"`
	Key       string `json:"key"`
	Direction string `json:"direction" binding:"required,oneof=encrypt decrypt"`
}

// CaesarRequest represents a fixed-shift request; any integer offset is
// accepted and wraps around the alphabet.
type CaesarRequest struct {
	Message string `json:"message"`
	Offset  int    `json:"offset"`
}

// CipherResponse represents the outcome of any cipher endpoint.
type CipherResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Result  string `json:"result,omitempty"`
}
