// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/MKhiriev/go-pass-unlock/internal/config"
	"github.com/MKhiriev/go-pass-unlock/internal/logger"
	"github.com/MKhiriev/go-pass-unlock/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewClientStorages_SQLiteRoundTrip(t *testing.T) {
	ctx := context.Background()
	dsn := filepath.Join(t.TempDir(), "nested", "unlock.db")

	storages, err := NewClientStorages(ctx, config.ClientStorage{DB: config.ClientDB{DSN: dsn}}, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = storages.Close() })

	repo := storages.SessionRepository

	_, err = repo.GetSession(ctx, "u@example.com")
	require.ErrorIs(t, err, ErrSessionNotFound)

	attrs := &models.KeyAttributes{KEKSalt: "salt", OpsLimit: 2, MemLimit: 67108864, EncryptedKey: "ek", KeyDecryptionNonce: "n"}
	require.NoError(t, repo.SaveSession(ctx, models.Session{Email: "u@example.com", UserID: 7, Token: "tok", KeyAttributes: attrs}))

	got, err := repo.GetSession(ctx, "U@example.com")
	require.NoError(t, err)
	assert.Equal(t, int64(7), got.UserID)
	assert.Equal(t, attrs, got.KeyAttributes)
	assert.False(t, got.SRPSetupPending)

	require.NoError(t, repo.ClearKeyAttributes(ctx, "u@example.com"))
	got, err = repo.GetSession(ctx, "u@example.com")
	require.NoError(t, err)
	assert.Nil(t, got.KeyAttributes)
	assert.Equal(t, "tok", got.Token)

	require.NoError(t, repo.SetSRPSetupPending(ctx, "legacy@example.com", true))
	legacy, err := repo.GetSession(ctx, "legacy@example.com")
	require.NoError(t, err)
	assert.True(t, legacy.SRPSetupPending)
	assert.Nil(t, legacy.KeyAttributes)

	require.NoError(t, repo.SetSRPSetupPending(ctx, "LEGACY@example.com", false))
	legacy, err = repo.GetSession(ctx, "legacy@example.com")
	require.NoError(t, err)
	assert.False(t, legacy.SRPSetupPending)
}

func TestNewClientStorages_InMemory(t *testing.T) {
	storages, err := NewClientStorages(context.Background(), config.ClientStorage{DB: config.ClientDB{DSN: ":memory:"}}, logger.Nop())
	require.NoError(t, err)
	defer storages.Close()

	require.NoError(t, storages.SessionRepository.SetSRPSetupPending(context.Background(), "a@example.com", false))
	_, err = storages.SessionRepository.GetSession(context.Background(), "a@example.com")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestNewClientStorages_LatestSession(t *testing.T) {
	ctx := context.Background()
	storages, err := NewClientStorages(ctx, config.ClientStorage{DB: config.ClientDB{DSN: ":memory:"}}, logger.Nop())
	require.NoError(t, err)
	defer storages.Close()

	repo := storages.SessionRepository
	_, err = repo.GetLatestSession(ctx)
	require.ErrorIs(t, err, ErrSessionNotFound)

	older := time.Date(2026, 10, 1, 9, 0, 0, 0, time.UTC)
	newer := older.Add(time.Hour)
	require.NoError(t, repo.SaveSession(ctx, models.Session{Email: "new@example.com", UserID: 2, UpdatedAt: newer}))
	require.NoError(t, repo.SaveSession(ctx, models.Session{Email: "old@example.com", UserID: 1, UpdatedAt: older}))

	got, err := repo.GetLatestSession(ctx)
	require.NoError(t, err)
	assert.Equal(t, "new@example.com", got.Email)
}

func TestClientStorages_CloseNil(t *testing.T) {
	var s *ClientStorages
	assert.NoError(t, s.Close())
}
