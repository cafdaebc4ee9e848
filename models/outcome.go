// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// LoginRequest is the input of a single login attempt.
type LoginRequest struct {
	// Identifier is the account email.
	Identifier string

	// Password is the plaintext password. It never leaves the process.
	Password string

	// KeyAttributes are optional key attributes the caller already holds
	// (for example from a previous session). When nil they are fetched after
	// the challenge succeeds.
	KeyAttributes *KeyAttributes
}

// SecondFactorMethod names the external flow that must finish the login.
type SecondFactorMethod string

const (
	SecondFactorTOTP    SecondFactorMethod = "totp"
	SecondFactorPasskey SecondFactorMethod = "passkey"
	SecondFactorEmail   SecondFactorMethod = "email"
)

// SecondFactor tells the caller which second-factor flow to start.
type SecondFactor struct {
	Method    SecondFactorMethod
	SessionID string
}

// SessionProof is what a successful challenge yields: the authenticated
// account id and the session token issued by the server. KeyAttributes is set
// when the server returned them together with the proof.
type SessionProof struct {
	UserID        int64
	Token         string
	KeyAttributes *KeyAttributes
}

// ChallengeResult is the terminal state of the SRP exchange. Exactly one of
// Proof and SecondFactor is meaningful: SecondFactor non-nil means the
// password was accepted but the server withholds the session.
type ChallengeResult struct {
	Proof        SessionProof
	SecondFactor *SecondFactor
}

// AuthStatus enumerates the non-error terminal states of a login attempt.
type AuthStatus int

const (
	// AuthStatusSuccess means the master key was recovered.
	AuthStatusSuccess AuthStatus = iota + 1
	// AuthStatusSecondFactorRequired means the caller must hand over to the
	// second-factor flow. It is not a failure.
	AuthStatusSecondFactorRequired
	// AuthStatusVerificationPending means the account has no SRP registration
	// and a one-time token was emailed instead.
	AuthStatusVerificationPending
)

// String returns a short label for logs.
func (s AuthStatus) String() string {
	switch s {
	case AuthStatusSuccess:
		return "success"
	case AuthStatusSecondFactorRequired:
		return "second_factor_required"
	case AuthStatusVerificationPending:
		return "verification_pending"
	default:
		return "unknown"
	}
}

// AuthOutcome is the result of a login attempt that did not fail.
//
// On AuthStatusSuccess MasterKey and KEK are owned by the caller, who must
// hand them to session-key management and wipe them when done. On every other
// status both are nil.
type AuthOutcome struct {
	Status        AuthStatus
	MasterKey     []byte
	KEK           []byte
	KeyAttributes *KeyAttributes
	Proof         SessionProof
	SecondFactor  *SecondFactor
}
