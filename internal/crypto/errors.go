// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import "errors"

var (
	// ErrWeakDevice is returned when the KDF cost parameters cannot be met on
	// this device (memory budget, parameter range).
	ErrWeakDevice = errors.New("kdf parameters unsupported on this device")

	// ErrInvalidKDFParams is returned for malformed KDF input: bad salt
	// encoding or length, empty password, unknown parameter source.
	ErrInvalidKDFParams = errors.New("invalid kdf parameters")

	// ErrDecryptionFailed is returned when the authentication tag does not
	// verify, which in practice means the KEK is wrong.
	ErrDecryptionFailed = errors.New("decryption failed")

	// ErrInvalidEnvelope is returned when the key, nonce or ciphertext has
	// the wrong size for the cipher.
	ErrInvalidEnvelope = errors.New("invalid encrypted key envelope")

	// ErrInvalidSRPParams is returned when SRP attributes cannot be used to
	// start a session.
	ErrInvalidSRPParams = errors.New("invalid srp parameters")

	// ErrInvalidServerEphemeral is returned when the server's B is rejected
	// by the SRP safety checks.
	ErrInvalidServerEphemeral = errors.New("invalid server ephemeral")
)
