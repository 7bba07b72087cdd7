package security

import (
	"encoding/hex"
	"testing"
)

func TestNewSessionTokenShape(t *testing.T) {
	t.Parallel()

	token, errToken := NewSessionToken()
	if errToken != nil {
		t.Fatalf("token: %v", errToken)
	}
	if len(token) != sessionTokenBytes*2 {
		t.Fatalf("token is %d chars, want %d", len(token), sessionTokenBytes*2)
	}
	if _, err := hex.DecodeString(token); err != nil {
		t.Fatalf("token is not hex: %v", err)
	}
}

func TestNewSessionTokenIsUnique(t *testing.T) {
	t.Parallel()

	seen := make(map[string]struct{}, 32)
	for i := 0; i < 32; i++ {
		token, errToken := NewSessionToken()
		if errToken != nil {
			t.Fatalf("token: %v", errToken)
		}
		if _, dup := seen[token]; dup {
			t.Fatalf("duplicate token generated")
		}
		seen[token] = struct{}{}
	}
}
