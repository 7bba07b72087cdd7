package auth

import "errors"

// Expected, user-facing failures. Anything else returned by this package is a
// storage failure and maps to a generic server error.
var (
	// ErrInvalidCredentials covers both unknown usernames and wrong
	// passwords so callers cannot enumerate accounts.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrInvalidToken covers missing, malformed, unknown, and expired
	// bearer tokens.
	ErrInvalidToken = errors.New("invalid or expired token")

	// ErrPasswordTooShort rejects new passwords below the minimum length.
	ErrPasswordTooShort = errors.New("new password must be at least 6 characters")
)
