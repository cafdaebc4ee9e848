// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"fmt"
	"math/big"

	"github.com/1Password/srp"
	"github.com/MKhiriev/go-pass-unlock/models"
)

type srpFactory struct {
	group int
}

// NewSRPFactory returns an [SRPFactory] using the RFC 5054 4096-bit group.
func NewSRPFactory() SRPFactory {
	return &srpFactory{group: srp.RFC5054Group4096}
}

// NewSession implements [SRPFactory]. The private value x is derived from
// the SRP salt, the SRP user id and the password; the password itself is not
// kept.
func (f *srpFactory) NewSession(attrs models.SRPAttributes, password string) (SRPSession, error) {
	if attrs.SRPUserID == "" {
		return nil, fmt.Errorf("%w: empty srp user id", ErrInvalidSRPParams)
	}
	salt, err := base64.StdEncoding.DecodeString(attrs.SRPSalt)
	if err != nil || len(salt) == 0 {
		return nil, fmt.Errorf("%w: bad srp salt", ErrInvalidSRPParams)
	}

	group, ok := srp.KnownGroups[f.group]
	if !ok {
		return nil, fmt.Errorf("%w: unknown group", ErrInvalidSRPParams)
	}

	x := srp.KDFRFC5054(salt, attrs.SRPUserID, password)
	client := srp.NewSRPClient(group, x, nil)
	if client == nil {
		x.SetInt64(0)
		return nil, fmt.Errorf("%w: client init", ErrInvalidSRPParams)
	}

	return &srpSession{
		client: client,
		x:      x,
		salt:   salt,
		userID: attrs.SRPUserID,
	}, nil
}

type srpSession struct {
	client *srp.SRP
	x      *big.Int
	salt   []byte
	userID string

	// set by ComputeProof
	key []byte
	m1  []byte
}

// PublicEphemeral implements [SRPSession].
func (s *srpSession) PublicEphemeral() []byte {
	return s.client.EphemeralPublic().Bytes()
}

// ComputeProof implements [SRPSession].
func (s *srpSession) ComputeProof(serverB []byte) ([]byte, error) {
	B := new(big.Int).SetBytes(serverB)
	if err := s.client.SetOthersPublic(B); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidServerEphemeral, err)
	}
	key, err := s.client.Key()
	if err != nil {
		return nil, fmt.Errorf("compute shared key: %w", err)
	}

	m1, err := s.client.M(s.salt, s.userID)
	if err != nil {
		return nil, fmt.Errorf("compute client proof: %w", err)
	}

	s.key = key
	s.m1 = m1
	return m1, nil
}

// VerifyServerProof implements [SRPSession]. It is false until ComputeProof
// has succeeded.
func (s *srpSession) VerifyServerProof(m2 []byte) bool {
	if s.client == nil || s.key == nil || s.m1 == nil {
		return false
	}
	expected := ServerProof(s.client.EphemeralPublic().Bytes(), s.m1, s.key)
	return subtle.ConstantTimeCompare(expected, m2) == 1
}

// Close implements [SRPSession].
func (s *srpSession) Close() {
	if s.x != nil {
		s.x.SetInt64(0)
	}
	Wipe(s.key)
	s.client = nil
	s.key = nil
	s.m1 = nil
}

// ServerProof computes M2 = H(A | M1 | K), the value a server returns to
// prove it derived the same session key K.
func ServerProof(clientA, m1, key []byte) []byte {
	h := sha256.New()
	h.Write(clientA)
	h.Write(m1)
	h.Write(key)
	return h.Sum(nil)
}
