package service

import (
	"errors"
	"fmt"
)

var (
	// ErrProofMismatch is returned by the challenge when the server rejects
	// the client proof or the server proof does not verify.
	ErrProofMismatch = errors.New("srp proof mismatch")

	// ErrMissingKeyAttributes is returned when no key attributes could be
	// resolved after a successful challenge.
	ErrMissingKeyAttributes = errors.New("key attributes unavailable")

	// ErrKDFParamsMismatch is an internal assertion: the KDF parameters of
	// the chosen source disagree with the key attributes they must unlock.
	ErrKDFParamsMismatch = errors.New("kdf parameters do not match key attributes")

	// ErrInvalidKeyAttributes is returned when the wrapped key or its nonce
	// is not valid base64.
	ErrInvalidKeyAttributes = errors.New("invalid key attributes")

	// ErrMalformedChallenge is returned when a challenge value from the
	// server cannot be decoded.
	ErrMalformedChallenge = errors.New("malformed srp challenge")

	// ErrMissingSessionToken is returned when the challenge succeeded without
	// a second factor yet the server issued no session token.
	ErrMissingSessionToken = errors.New("server issued no session token")

	// ErrEmptyCredentials is returned for an empty identifier or password.
	ErrEmptyCredentials = errors.New("identifier and password are required")
)

// FailureKind is the closed set of login failure classes. Only
// FailureWeakDevice and FailureIncorrectPassword are shown to the user as
// distinct messages.
type FailureKind int

const (
	FailureUnknown FailureKind = iota
	FailureWeakDevice
	FailureIncorrectPassword
	FailureMissingKeyAttributes
)

// String returns a short, non-sensitive label.
func (k FailureKind) String() string {
	switch k {
	case FailureWeakDevice:
		return "weak_device"
	case FailureIncorrectPassword:
		return "incorrect_password"
	case FailureMissingKeyAttributes:
		return "missing_key_attributes"
	default:
		return "unknown"
	}
}

// User-facing message codes.
const (
	MsgWeakDevice          = "WEAK_DEVICE"
	MsgIncorrectPassphrase = "INCORRECT_PASSPHRASE"
	MsgUnknownError        = "UNKNOWN_ERROR"
)

// AuthError is the single error type returned by a failed login attempt.
// Err keeps the original cause for logs; it is never shown to the user.
type AuthError struct {
	Kind      FailureKind
	AttemptID string
	Err       error
}

func (e *AuthError) Error() string {
	return fmt.Sprintf("login failed (%s): %v", e.Kind, e.Err)
}

func (e *AuthError) Unwrap() error {
	return e.Err
}

// UserMessage returns the text safe to display. Unknown and missing key
// attributes share the generic code and carry only the kind and attempt id.
func (e *AuthError) UserMessage() string {
	switch e.Kind {
	case FailureWeakDevice:
		return MsgWeakDevice
	case FailureIncorrectPassword:
		return MsgIncorrectPassphrase
	default:
		if e.AttemptID == "" {
			return fmt.Sprintf("%s (%s)", MsgUnknownError, e.Kind)
		}
		return fmt.Sprintf("%s (%s, attempt %s)", MsgUnknownError, e.Kind, e.AttemptID)
	}
}

// KindOf returns the failure kind carried by err, FailureUnknown if err holds
// no [AuthError].
func KindOf(err error) FailureKind {
	var authErr *AuthError
	if errors.As(err, &authErr) {
		return authErr.Kind
	}
	return FailureUnknown
}

// UserMessage returns the display text for any login error.
func UserMessage(err error) string {
	var authErr *AuthError
	if errors.As(err, &authErr) {
		return authErr.UserMessage()
	}
	return MsgUnknownError
}
