// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package crypto holds the client-side primitives of the zero-knowledge login:
// password-based KEK derivation, master-key unwrapping and the opaque SRP
// session. Nothing here talks to the network or keeps state between calls.
package crypto

import "github.com/MKhiriev/go-pass-unlock/models"

//go:generate mockgen -source=interfaces.go -destination=../mock/keychain_service_mock.go -package=mock

// KeyChainService derives and uses secrets that exist only in client memory.
//
// Flow:
//
//	KEK       = DeriveKEK(password, kdfParams)        (Argon2id)
//	MasterKey = UnwrapKey(encryptedKey, nonce, KEK)   (XSalsa20-Poly1305)
type KeyChainService interface {
	// DeriveKEK derives a 32-byte key-encryption key from password with
	// Argon2id using params. The call is deliberately slow and is never
	// cached. Returns an error wrapping [ErrWeakDevice] when the cost
	// parameters cannot be satisfied on this device, or [ErrInvalidKDFParams]
	// when the salt or password is malformed.
	DeriveKEK(password string, params models.KDFParams) ([]byte, error)

	// UnwrapKey authenticates and decrypts encryptedKey with kek. A wrong KEK
	// always surfaces as [ErrDecryptionFailed], never as garbage output.
	UnwrapKey(encryptedKey, nonce, kek []byte) ([]byte, error)

	// WrapKey encrypts key under kek with a fresh random nonce. It is the
	// inverse of UnwrapKey.
	WrapKey(key, kek []byte) (encryptedKey, nonce []byte, err error)
}

// SRPSession is one client side of an SRP-6a exchange. The password-derived
// private value lives inside the session and is erased by Close.
type SRPSession interface {
	// PublicEphemeral returns A, sent to the server in the first round.
	PublicEphemeral() []byte

	// ComputeProof takes the server's B and returns the client proof M1.
	ComputeProof(serverB []byte) ([]byte, error)

	// VerifyServerProof checks the server proof M2 against the shared key.
	VerifyServerProof(m2 []byte) bool

	// Close erases the session secrets.
	Close()
}

// SRPFactory opens SRP sessions for an account.
type SRPFactory interface {
	NewSession(attrs models.SRPAttributes, password string) (SRPSession, error)
}
