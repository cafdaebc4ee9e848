// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Session is the non-secret login state kept on the device between runs.
// It never holds the password, the KEK or the master key.
type Session struct {
	// Email is the account identifier and the primary key of the record.
	Email string `db:"email"`

	// UserID is the server-assigned account id, zero until a login succeeds.
	UserID int64 `db:"user_id"`

	// Token is the server session token from the last successful challenge.
	Token string `db:"token"`

	// KeyAttributes are cached so the next login can supply them up front.
	KeyAttributes *KeyAttributes `db:"key_attributes"`

	// SRPSetupPending is set when the account still uses the emailed
	// one-time-token login.
	SRPSetupPending bool `db:"srp_setup_pending"`

	UpdatedAt time.Time `db:"updated_at"`
}

// TableName returns the name of the database table associated with Session.
func (s Session) TableName() string {
	return "sessions"
}
