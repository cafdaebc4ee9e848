// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"

	"github.com/MKhiriev/go-pass-unlock/internal/crypto"
)

// classify maps a fault from any layer onto the closed failure taxonomy.
// Anything not listed is FailureUnknown.
func classify(err error) FailureKind {
	switch {
	case errors.Is(err, crypto.ErrWeakDevice):
		return FailureWeakDevice
	case errors.Is(err, crypto.ErrDecryptionFailed),
		errors.Is(err, ErrProofMismatch):
		return FailureIncorrectPassword
	case errors.Is(err, ErrMissingKeyAttributes):
		return FailureMissingKeyAttributes
	default:
		return FailureUnknown
	}
}

// newAuthError wraps err as an [AuthError]. An error that already is one keeps
// its kind.
func newAuthError(attemptID string, err error) *AuthError {
	var authErr *AuthError
	if errors.As(err, &authErr) {
		if authErr.AttemptID == "" {
			authErr.AttemptID = attemptID
		}
		return authErr
	}
	return &AuthError{Kind: classify(err), AttemptID: attemptID, Err: err}
}
