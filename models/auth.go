// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// SRPAttributes is the per-account authentication parameter set issued by the
// server for accounts that have completed SRP registration. All byte values
// are transported as standard base64 strings.
//
// The KDF fields (KEKSalt, OpsLimit, MemLimit) describe how the client derives
// the key-encryption key; they are the only parameters the SRP path may use
// for derivation.
type SRPAttributes struct {
	// SRPUserID is the opaque identity used inside the SRP exchange. It is
	// distinct from the account email so the email never enters the proof.
	SRPUserID string `json:"srpUserID"`

	// SRPSalt is the salt used to compute the SRP private value.
	SRPSalt string `json:"srpSalt"`

	// KEKSalt is the Argon2id salt for deriving the KEK.
	KEKSalt string `json:"kekSalt"`

	// OpsLimit is the Argon2id iteration count.
	OpsLimit uint32 `json:"opsLimit"`

	// MemLimit is the Argon2id memory cost in bytes.
	MemLimit uint64 `json:"memLimit"`

	// IsEmailMFAEnabled reports whether the server will additionally ask for
	// an emailed code after the challenge succeeds.
	IsEmailMFAEnabled bool `json:"isEmailMFAEnabled"`
}

// SRPAttributesResponse is the envelope returned by GET /users/srp/attributes.
type SRPAttributesResponse struct {
	Attributes SRPAttributes `json:"attributes"`
}

// KeyAttributes describes the account's wrapped master key together with the
// KDF parameters that produce the KEK able to unwrap it. The record is
// immutable once issued by the server.
type KeyAttributes struct {
	KEKSalt            string `json:"kekSalt"`
	OpsLimit           uint32 `json:"opsLimit"`
	MemLimit           uint64 `json:"memLimit"`
	EncryptedKey       string `json:"encryptedKey"`
	KeyDecryptionNonce string `json:"keyDecryptionNonce"`

	PublicKey                string `json:"publicKey,omitempty"`
	EncryptedSecretKey       string `json:"encryptedSecretKey,omitempty"`
	SecretKeyDecryptionNonce string `json:"secretKeyDecryptionNonce,omitempty"`
}

// CreateSRPSessionRequest is the first round of the SRP exchange: the client
// announces its identity and public ephemeral value A.
type CreateSRPSessionRequest struct {
	SRPUserID string `json:"srpUserID"`
	SRPA      string `json:"srpA"`
}

// CreateSRPSessionResponse carries the server's public ephemeral value B and
// the id of the server-side session that holds b.
type CreateSRPSessionResponse struct {
	SessionID string `json:"sessionID"`
	SRPB      string `json:"srpB"`
}

// VerifySRPSessionRequest is the second round: the client's proof M1.
type VerifySRPSessionRequest struct {
	SessionID string `json:"sessionID"`
	SRPUserID string `json:"srpUserID"`
	SRPM1     string `json:"srpM1"`
}

// VerifySRPSessionResponse is returned once the server accepted M1. Token is
// not part of the JSON body; the adapter lifts it from the Authorization
// response header.
type VerifySRPSessionResponse struct {
	SRPM2              string         `json:"srpM2"`
	ID                 int64          `json:"id"`
	KeyAttributes      *KeyAttributes `json:"keyAttributes,omitempty"`
	TwoFactorSessionID string         `json:"twoFactorSessionID,omitempty"`
	PasskeySessionID   string         `json:"passkeySessionID,omitempty"`
	Token              string         `json:"-"`
}

// SendOTTRequest asks the server to email a one-time token.
type SendOTTRequest struct {
	Email   string `json:"email"`
	Purpose string `json:"purpose"`
}

// OTTPurposeLogin is the purpose value used by the legacy login path.
const OTTPurposeLogin = "login"
