// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transport layer between the unlock client and
// the account API.
//
// The primary abstraction is [ServerAdapter], which decouples the service
// layer from the wire protocol. The package ships an HTTP/REST
// implementation ([NewHTTPServerAdapter]) built on resty.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling (e.g. [ErrUnauthorized] for 401). A missing record is not an
// error for the lookup calls: they return a nil value instead.
package adapter

import (
	"context"

	"github.com/MKhiriev/go-pass-unlock/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines transport-agnostic communication with the account
// API. Implementations are responsible for serialisation, authentication
// header management, and mapping transport-level errors to the sentinel
// values defined in this package. Implementations are safe for concurrent
// use.
type ServerAdapter interface {
	// GetSRPAttributes fetches the SRP attributes of email. It returns
	// (nil, nil) when the account has not completed SRP registration.
	GetSRPAttributes(ctx context.Context, email string) (*models.SRPAttributes, error)

	// CreateSRPSession sends the client's public ephemeral value and returns
	// the server's value together with the server session id.
	CreateSRPSession(ctx context.Context, req models.CreateSRPSessionRequest) (models.CreateSRPSessionResponse, error)

	// VerifySRPSession sends the client proof. A rejected proof surfaces as
	// [ErrUnauthorized]. On success the session token, when the server
	// issued one, is returned in the Token field.
	VerifySRPSession(ctx context.Context, req models.VerifySRPSessionRequest) (models.VerifySRPSessionResponse, error)

	// GetKeyAttributes fetches the key attributes of the account
	// authenticated by proof.Token; an empty token is [ErrUnauthorized]. It returns (nil, nil) when the server has none.
	GetKeyAttributes(ctx context.Context, proof models.SessionProof) (*models.KeyAttributes, error)

	// SendOTT asks the server to email a login one-time token to email.
	SendOTT(ctx context.Context, email string) error
}
