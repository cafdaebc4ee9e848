// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-pass-unlock/internal/adapter"
	"github.com/MKhiriev/go-pass-unlock/internal/crypto"
	"github.com/MKhiriev/go-pass-unlock/internal/logger"
	"github.com/MKhiriev/go-pass-unlock/models"
)

type clientChallengeService struct {
	adapter adapter.ServerAdapter
	srp     crypto.SRPFactory
	logger  *logger.Logger
}

func NewClientChallengeService(serverAdapter adapter.ServerAdapter, srpFactory crypto.SRPFactory, log *logger.Logger) ClientChallengeService {
	return &clientChallengeService{adapter: serverAdapter, srp: srpFactory, logger: log}
}

func (c *clientChallengeService) Authenticate(ctx context.Context, attrs models.SRPAttributes, password string) (models.ChallengeResult, error) {
	log := logger.FromContextOr(ctx, c.logger)

	session, err := c.srp.NewSession(attrs, password)
	if err != nil {
		return models.ChallengeResult{}, fmt.Errorf("start srp session: %w", err)
	}
	defer session.Close()

	// round 1: A -> B
	created, err := c.adapter.CreateSRPSession(ctx, models.CreateSRPSessionRequest{
		SRPUserID: attrs.SRPUserID,
		SRPA:      base64.StdEncoding.EncodeToString(session.PublicEphemeral()),
	})
	if err != nil {
		return models.ChallengeResult{}, fmt.Errorf("create srp session: %w", err)
	}

	serverB, err := base64.StdEncoding.DecodeString(created.SRPB)
	if err != nil {
		return models.ChallengeResult{}, fmt.Errorf("%w: srpB: %v", ErrMalformedChallenge, err)
	}

	m1, err := session.ComputeProof(serverB)
	if err != nil {
		return models.ChallengeResult{}, fmt.Errorf("compute srp proof: %w", err)
	}

	// round 2: M1 -> M2
	verified, err := c.adapter.VerifySRPSession(ctx, models.VerifySRPSessionRequest{
		SessionID: created.SessionID,
		SRPUserID: attrs.SRPUserID,
		SRPM1:     base64.StdEncoding.EncodeToString(m1),
	})
	if errors.Is(err, adapter.ErrUnauthorized) {
		return models.ChallengeResult{}, fmt.Errorf("%w: %v", ErrProofMismatch, err)
	}
	if err != nil {
		return models.ChallengeResult{}, fmt.Errorf("verify srp session: %w", err)
	}

	m2, err := base64.StdEncoding.DecodeString(verified.SRPM2)
	if err != nil || !session.VerifyServerProof(m2) {
		log.Warn().Msg("server proof did not verify")
		return models.ChallengeResult{}, fmt.Errorf("%w: server proof", ErrProofMismatch)
	}

	if secondFactor := secondFactorOf(attrs, verified); secondFactor != nil {
		log.Info().Str("method", string(secondFactor.Method)).Msg("second factor required")
		return models.ChallengeResult{SecondFactor: secondFactor}, nil
	}

	if verified.Token == "" {
		return models.ChallengeResult{}, ErrMissingSessionToken
	}

	return models.ChallengeResult{
		Proof: models.SessionProof{
			UserID:        verified.ID,
			Token:         verified.Token,
			KeyAttributes: verified.KeyAttributes,
		},
	}, nil
}

// secondFactorOf reports the second factor the server asked for, if any.
// Passkeys take precedence over TOTP when both are offered.
func secondFactorOf(attrs models.SRPAttributes, resp models.VerifySRPSessionResponse) *models.SecondFactor {
	switch {
	case resp.PasskeySessionID != "":
		return &models.SecondFactor{Method: models.SecondFactorPasskey, SessionID: resp.PasskeySessionID}
	case resp.TwoFactorSessionID != "":
		return &models.SecondFactor{Method: models.SecondFactorTOTP, SessionID: resp.TwoFactorSessionID}
	case attrs.IsEmailMFAEnabled && resp.Token == "":
		return &models.SecondFactor{Method: models.SecondFactorEmail}
	}
	return nil
}
