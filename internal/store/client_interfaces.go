// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package store keeps the non-secret login state of the unlock client in a
// local SQLite database: the last session token, cached key attributes and
// whether the account still waits for SRP setup.
package store

import (
	"context"

	"github.com/MKhiriev/go-pass-unlock/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_store_mock.go -package=mock

// SessionRepository is the local session store, keyed by account email.
type SessionRepository interface {
	// GetSession returns the stored session of email or [ErrSessionNotFound].
	GetSession(ctx context.Context, email string) (models.Session, error)

	// GetLatestSession returns the most recently updated session or
	// [ErrSessionNotFound] when the store is empty.
	GetLatestSession(ctx context.Context) (models.Session, error)

	// SaveSession inserts or replaces the session of session.Email.
	SaveSession(ctx context.Context, session models.Session) error

	// SetSRPSetupPending records whether email still logs in with an emailed
	// one-time token. Setting the flag creates the session row if missing;
	// clearing it only touches an existing row.
	SetSRPSetupPending(ctx context.Context, email string, pending bool) error

	// ClearKeyAttributes drops the cached key attributes of email. It is a
	// no-op when no session exists.
	ClearKeyAttributes(ctx context.Context, email string) error
}
