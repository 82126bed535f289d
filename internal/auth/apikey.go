// Package auth generates and verifies sponsor credentials.
package auth

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
)

// APIKeyBytes is the entropy of a generated key. Keys render as twice this
// many lowercase hex characters.
const APIKeyBytes = 16

// NewAPIKey mints a random bearer key from the OS entropy source.
func NewAPIKey() (string, error) {
	buf := make([]byte, APIKeyBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("generate api key: %w", err)
	}
	return hex.EncodeToString(buf), nil
}
