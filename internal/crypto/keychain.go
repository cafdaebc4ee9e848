// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"io"
	"math"

	"github.com/MKhiriev/go-pass-unlock/internal/config"
	"github.com/MKhiriev/go-pass-unlock/models"
	"golang.org/x/crypto/argon2"
	"golang.org/x/crypto/nacl/secretbox"
)

const (
	// KeySize is the length of KEKs and master keys (256 bits).
	KeySize = 32
	// SaltSize is the Argon2id salt length expected from the server.
	SaltSize = 16
	// NonceSize is the secretbox nonce length.
	NonceSize = 24

	// MinMemLimit and MinOpsLimit are the smallest Argon2id costs accepted.
	MinMemLimit = 8 * 1024
	MinOpsLimit = 1

	// DefaultMaxMemLimit is the device memory budget used when none is configured.
	DefaultMaxMemLimit = 1 << 30
	// DefaultMaxOpsLimit caps iterations when none is configured.
	DefaultMaxOpsLimit = 64

	argonThreads = 1
)

// keyChainService is the private implementation of [KeyChainService].
type keyChainService struct {
	// maxMemLimit is the largest Argon2id memory cost (bytes) this device
	// will attempt. Anything above is reported as a weak device.
	maxMemLimit uint64
	maxOpsLimit uint32
}

// NewKeyChainService constructs a [KeyChainService] bounded by the device
// budget in cfg. Zero values fall back to [DefaultMaxMemLimit] and
// [DefaultMaxOpsLimit].
func NewKeyChainService(cfg config.ClientCrypto) KeyChainService {
	k := &keyChainService{
		maxMemLimit: cfg.MaxMemLimit,
		maxOpsLimit: cfg.MaxOpsLimit,
	}
	if k.maxMemLimit == 0 {
		k.maxMemLimit = DefaultMaxMemLimit
	}
	if k.maxOpsLimit == 0 {
		k.maxOpsLimit = DefaultMaxOpsLimit
	}
	return k
}

// DeriveKEK implements [KeyChainService]. Argon2id runs with one lane,
// time = OpsLimit and memory = MemLimit/1024 KiB, which matches libsodium's
// crypto_pwhash so server-issued parameters derive the same key.
func (k *keyChainService) DeriveKEK(password string, params models.KDFParams) ([]byte, error) {
	if password == "" {
		return nil, fmt.Errorf("%w: empty password", ErrInvalidKDFParams)
	}
	if params.Source != models.KDFSourceSRP && params.Source != models.KDFSourceKeyAttributes {
		return nil, fmt.Errorf("%w: unknown source", ErrInvalidKDFParams)
	}

	salt, err := base64.StdEncoding.DecodeString(params.Salt)
	if err != nil {
		return nil, fmt.Errorf("%w: decode salt: %v", ErrInvalidKDFParams, err)
	}
	if len(salt) != SaltSize {
		return nil, fmt.Errorf("%w: salt length %d", ErrInvalidKDFParams, len(salt))
	}

	if err = k.checkCost(params.OpsLimit, params.MemLimit); err != nil {
		return nil, err
	}

	return argon2.IDKey(
		[]byte(password),
		salt,
		params.OpsLimit,
		uint32(params.MemLimit/1024),
		argonThreads,
		KeySize,
	), nil
}

func (k *keyChainService) checkCost(opsLimit uint32, memLimit uint64) error {
	switch {
	case opsLimit < MinOpsLimit || opsLimit > k.maxOpsLimit:
		return fmt.Errorf("%w: opsLimit %d outside [%d, %d]", ErrWeakDevice, opsLimit, MinOpsLimit, k.maxOpsLimit)
	case memLimit < MinMemLimit:
		return fmt.Errorf("%w: memLimit %d below %d", ErrWeakDevice, memLimit, MinMemLimit)
	case memLimit > k.maxMemLimit:
		return fmt.Errorf("%w: memLimit %d above device budget %d", ErrWeakDevice, memLimit, k.maxMemLimit)
	case memLimit/1024 > math.MaxUint32:
		return fmt.Errorf("%w: memLimit %d not addressable", ErrWeakDevice, memLimit)
	}
	return nil
}

// UnwrapKey implements [KeyChainService]. Secretbox authenticates before it
// decrypts, so a wrong kek yields [ErrDecryptionFailed] and no plaintext.
func (k *keyChainService) UnwrapKey(encryptedKey, nonce, kek []byte) ([]byte, error) {
	if len(kek) != KeySize {
		return nil, fmt.Errorf("%w: kek length %d", ErrInvalidEnvelope, len(kek))
	}
	if len(nonce) != NonceSize {
		return nil, fmt.Errorf("%w: nonce length %d", ErrInvalidEnvelope, len(nonce))
	}
	if len(encryptedKey) < secretbox.Overhead {
		return nil, fmt.Errorf("%w: ciphertext too short", ErrInvalidEnvelope)
	}

	var key [KeySize]byte
	var n [NonceSize]byte
	copy(key[:], kek)
	copy(n[:], nonce)
	defer Wipe(key[:])

	plain, ok := secretbox.Open(nil, encryptedKey, &n, &key)
	if !ok {
		return nil, ErrDecryptionFailed
	}
	return plain, nil
}

// WrapKey implements [KeyChainService].
func (k *keyChainService) WrapKey(plain, kek []byte) ([]byte, []byte, error) {
	if len(kek) != KeySize {
		return nil, nil, fmt.Errorf("%w: kek length %d", ErrInvalidEnvelope, len(kek))
	}

	var n [NonceSize]byte
	if _, err := io.ReadFull(rand.Reader, n[:]); err != nil {
		return nil, nil, fmt.Errorf("generate nonce: %w", err)
	}

	var key [KeySize]byte
	copy(key[:], kek)
	defer Wipe(key[:])

	return secretbox.Seal(nil, plain, &n, &key), n[:], nil
}

// Wipe overwrites b with zeros. Safe on nil.
func Wipe(b []byte) {
	clear(b)
}
