// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	sq "github.com/Masterminds/squirrel"
)

const sessionsTable = "sessions"

var sessionColumns = []string{
	"email",
	"user_id",
	"token",
	"key_attributes",
	"srp_setup_pending",
	"updated_at",
}

// sqlite uses "?" placeholders, which is squirrel's default format.
var sqlBuilder = sq.StatementBuilder.PlaceholderFormat(sq.Question)

func selectSessionQuery(email string) (string, []any, error) {
	return sqlBuilder.
		Select(sessionColumns...).
		From(sessionsTable).
		Where(sq.Eq{"email": email}).
		ToSql()
}

func selectLatestSessionQuery() (string, []any, error) {
	return sqlBuilder.
		Select(sessionColumns...).
		From(sessionsTable).
		OrderBy("updated_at DESC").
		Limit(1).
		ToSql()
}

func upsertSessionQuery(values ...any) (string, []any, error) {
	return sqlBuilder.
		Insert(sessionsTable).
		Columns(sessionColumns...).
		Values(values...).
		Suffix(`ON CONFLICT(email) DO UPDATE SET
			user_id           = excluded.user_id,
			token             = excluded.token,
			key_attributes    = excluded.key_attributes,
			srp_setup_pending = excluded.srp_setup_pending,
			updated_at        = excluded.updated_at`).
		ToSql()
}

func upsertSRPSetupPendingQuery(email string, pending bool, now any) (string, []any, error) {
	return sqlBuilder.
		Insert(sessionsTable).
		Columns("email", "srp_setup_pending", "updated_at").
		Values(email, pending, now).
		Suffix(`ON CONFLICT(email) DO UPDATE SET
			srp_setup_pending = excluded.srp_setup_pending,
			updated_at        = excluded.updated_at`).
		ToSql()
}

// clearSRPSetupPendingQuery never inserts and leaves updated_at alone, so
// clearing the flag of an unknown account leaves no trace.
func clearSRPSetupPendingQuery(email string) (string, []any, error) {
	return sqlBuilder.
		Update(sessionsTable).
		Set("srp_setup_pending", false).
		Where(sq.Eq{"email": email}).
		ToSql()
}

func clearKeyAttributesQuery(email string, now any) (string, []any, error) {
	return sqlBuilder.
		Update(sessionsTable).
		Set("key_attributes", nil).
		Set("updated_at", now).
		Where(sq.Eq{"email": email}).
		ToSql()
}
