package service

import "errors"

var (
	// ErrEmailTaken means another account already uses the email.
	ErrEmailTaken = errors.New("email already registered")
	// ErrInvalidCredentials covers both unknown email and wrong password.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrInvalidAdminKey means an admin registration carried the wrong key.
	ErrInvalidAdminKey = errors.New("invalid admin key")
	// ErrInvalidToken covers missing, malformed, expired and orphaned tokens.
	ErrInvalidToken = errors.New("invalid token")
)

// ValidationError carries every collected rule violation for a request.
// Callers report only the first message.
type ValidationError struct {
	Violations []string
}

func (e *ValidationError) Error() string {
	if len(e.Violations) == 0 {
		return "validation failed"
	}
	return e.Violations[0]
}
