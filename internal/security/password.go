package security

import (
	"crypto/rand"
	"crypto/sha512"
	"crypto/subtle"
	"encoding/hex"
	"fmt"
	"strings"

	"golang.org/x/crypto/pbkdf2"
)

// PBKDF2 parameters. These must not change: stored digests in existing
// databases were produced with exactly these values.
const (
	hashIterations = 100000
	hashKeyLength  = 64
	saltLength     = 16
)

// HashPassword derives a salted PBKDF2-SHA512 digest for a plaintext password.
// The result is stored as "salt_hex:digest_hex".
func HashPassword(password string) (string, error) {
	salt := make([]byte, saltLength)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("security: generate salt: %w", err)
	}
	digest := deriveDigest(password, salt)
	return hex.EncodeToString(salt) + ":" + hex.EncodeToString(digest), nil
}

// CheckPassword reports whether a plaintext password matches a stored
// "salt_hex:digest_hex" composite.
func CheckPassword(stored, password string) bool {
	saltHex, digestHex, ok := strings.Cut(stored, ":")
	if !ok {
		return false
	}
	salt, errSalt := hex.DecodeString(saltHex)
	if errSalt != nil {
		return false
	}
	expected, errDigest := hex.DecodeString(digestHex)
	if errDigest != nil {
		return false
	}
	digest := deriveDigest(password, salt)
	return subtle.ConstantTimeCompare(digest, expected) == 1
}

func deriveDigest(password string, salt []byte) []byte {
	return pbkdf2.Key([]byte(password), salt, hashIterations, hashKeyLength, sha512.New)
}
