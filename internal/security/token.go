package security

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
)

// sessionTokenBytes is the entropy of a session token before hex encoding.
const sessionTokenBytes = 64

// NewSessionToken returns a cryptographically random opaque bearer token,
// hex encoded to 128 characters.
func NewSessionToken() (string, error) {
	raw := make([]byte, sessionTokenBytes)
	if _, err := rand.Read(raw); err != nil {
		return "", fmt.Errorf("security: generate token: %w", err)
	}
	return hex.EncodeToString(raw), nil
}
