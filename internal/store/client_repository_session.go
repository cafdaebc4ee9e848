// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-pass-unlock/internal/logger"
	"github.com/MKhiriev/go-pass-unlock/internal/utils"
	"github.com/MKhiriev/go-pass-unlock/models"
)

// sessionRepository is the SQLite-backed implementation of
// [SessionRepository]. Key attributes are stored as a JSON column.
type sessionRepository struct {
	*DB
	logger *logger.Logger
	now    func() time.Time
}

// NewSessionRepository constructs a [SessionRepository] on db.
func NewSessionRepository(db *DB, logger *logger.Logger) SessionRepository {
	return &sessionRepository{
		DB:     db,
		logger: logger,
		now:    func() time.Time { return time.Now().UTC() },
	}
}

// GetSession implements [SessionRepository].
func (r *sessionRepository) GetSession(ctx context.Context, email string) (models.Session, error) {
	email = normalizeEmail(email)

	query, args, err := selectSessionQuery(email)
	if err != nil {
		return models.Session{}, fmt.Errorf("%w: %v", ErrBuildingSQLQuery, err)
	}

	return r.queryOne(ctx, "sessionRepository.GetSession", email, query, args)
}

// GetLatestSession implements [SessionRepository].
func (r *sessionRepository) GetLatestSession(ctx context.Context) (models.Session, error) {
	query, args, err := selectLatestSessionQuery()
	if err != nil {
		return models.Session{}, fmt.Errorf("%w: %v", ErrBuildingSQLQuery, err)
	}

	return r.queryOne(ctx, "sessionRepository.GetLatestSession", "", query, args)
}

func (r *sessionRepository) queryOne(ctx context.Context, funcName, email, query string, args []any) (models.Session, error) {
	var (
		session       models.Session
		keyAttributes sql.NullString
	)
	err := r.DB.QueryRowContext(ctx, query, args...).Scan(
		&session.Email,
		&session.UserID,
		&session.Token,
		&keyAttributes,
		&session.SRPSetupPending,
		&session.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Session{}, ErrSessionNotFound
	}
	if err != nil {
		logger.FromContextOr(ctx, r.logger).Err(err).
			Str("func", funcName).
			Str("account", utils.Fingerprint(email)).
			Msg("failed to read session")
		return models.Session{}, fmt.Errorf("%w: %v", ErrScanningRow, err)
	}

	if keyAttributes.Valid && keyAttributes.String != "" {
		var attrs models.KeyAttributes
		if err = json.Unmarshal([]byte(keyAttributes.String), &attrs); err != nil {
			return models.Session{}, fmt.Errorf("%w: decode key attributes: %v", ErrScanningRow, err)
		}
		session.KeyAttributes = &attrs
	}

	return session, nil
}

// SaveSession implements [SessionRepository].
func (r *sessionRepository) SaveSession(ctx context.Context, session models.Session) error {
	log := logger.FromContextOr(ctx, r.logger)

	email := normalizeEmail(session.Email)
	if email == "" {
		return fmt.Errorf("%w: empty email", ErrInvalidSession)
	}

	var keyAttributes any
	if session.KeyAttributes != nil {
		encoded, err := json.Marshal(session.KeyAttributes)
		if err != nil {
			return fmt.Errorf("%w: encode key attributes: %v", ErrInvalidSession, err)
		}
		keyAttributes = string(encoded)
	}

	updatedAt := session.UpdatedAt
	if updatedAt.IsZero() {
		updatedAt = r.now()
	}

	query, args, err := upsertSessionQuery(
		email,
		session.UserID,
		session.Token,
		keyAttributes,
		session.SRPSetupPending,
		updatedAt,
	)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrBuildingSQLQuery, err)
	}

	if _, err = r.DB.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "sessionRepository.SaveSession").
			Str("account", utils.Fingerprint(email)).
			Msg("failed to upsert session")
		return fmt.Errorf("%w: %v", ErrExecutingStatement, err)
	}

	return nil
}

// SetSRPSetupPending implements [SessionRepository].
func (r *sessionRepository) SetSRPSetupPending(ctx context.Context, email string, pending bool) error {
	email = normalizeEmail(email)
	if email == "" {
		return fmt.Errorf("%w: empty email", ErrInvalidSession)
	}

	query, args, err := upsertSRPSetupPendingQuery(email, pending, r.now())
	if !pending {
		query, args, err = clearSRPSetupPendingQuery(email)
	}
	if err != nil {
		return fmt.Errorf("%w: %v", ErrBuildingSQLQuery, err)
	}

	return r.exec(ctx, "sessionRepository.SetSRPSetupPending", email, query, args)
}

// ClearKeyAttributes implements [SessionRepository].
func (r *sessionRepository) ClearKeyAttributes(ctx context.Context, email string) error {
	email = normalizeEmail(email)

	query, args, err := clearKeyAttributesQuery(email, r.now())
	if err != nil {
		return fmt.Errorf("%w: %v", ErrBuildingSQLQuery, err)
	}

	return r.exec(ctx, "sessionRepository.ClearKeyAttributes", email, query, args)
}

func (r *sessionRepository) exec(ctx context.Context, funcName, email, query string, args []any) error {
	if _, err := r.DB.ExecContext(ctx, query, args...); err != nil {
		logger.FromContextOr(ctx, r.logger).Err(err).
			Str("func", funcName).
			Str("account", utils.Fingerprint(email)).
			Msg("failed to execute statement")
		return fmt.Errorf("%w: %v", ErrExecutingStatement, err)
	}
	return nil
}

// normalizeEmail makes the primary key case-insensitive.
func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
