package tui

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/go-pass-unlock/internal/logger"
	"github.com/MKhiriev/go-pass-unlock/internal/mock"
	"github.com/MKhiriev/go-pass-unlock/internal/store"
	"github.com/MKhiriev/go-pass-unlock/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestAuthenticator(ctrl *gomock.Controller) (Authenticator, *mock.MockClientAuthService, *mock.MockSessionRepository) {
	auth := mock.NewMockClientAuthService(ctrl)
	sessions := mock.NewMockSessionRepository(ctrl)
	return Authenticator{Auth: auth, Sessions: sessions, Logger: logger.Nop()}, auth, sessions
}

func TestAuthenticator_PrefilledAccountSkipsLookup(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	runner, auth, sessions := newTestAuthenticator(ctrl)
	cached := &models.KeyAttributes{KEKSalt: "salt"}

	sessions.EXPECT().GetSession(gomock.Any(), gomock.Any()).Times(0)
	auth.EXPECT().Login(gomock.Any(), models.LoginRequest{Identifier: "U@example.com", Password: "pw", KeyAttributes: cached}).
		Return(models.AuthOutcome{Status: models.AuthStatusSuccess}, nil)

	got := runner.Attempt(context.Background(), Prefill{Email: "u@example.com", KeyAttributes: cached}, "U@example.com", "pw")

	require.NoError(t, got.Err)
	assert.Equal(t, "U@example.com", got.Email)
	assert.Equal(t, models.AuthStatusSuccess, got.Outcome.Status)
}

func TestAuthenticator_TypedAccountUsesItsOwnSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	runner, auth, sessions := newTestAuthenticator(ctrl)
	other := &models.KeyAttributes{KEKSalt: "other"}

	sessions.EXPECT().GetSession(gomock.Any(), "b@example.com").
		Return(models.Session{Email: "b@example.com", KeyAttributes: other}, nil)
	auth.EXPECT().Login(gomock.Any(), models.LoginRequest{Identifier: "b@example.com", Password: "pw", KeyAttributes: other}).
		Return(models.AuthOutcome{}, nil)

	got := runner.Attempt(context.Background(), Prefill{Email: "a@example.com", KeyAttributes: &models.KeyAttributes{}}, "b@example.com", "pw")

	assert.NoError(t, got.Err)
}

func TestAuthenticator_UnknownAccountLogsInWithoutCache(t *testing.T) {
	for name, lookupErr := range map[string]error{
		"not found": store.ErrSessionNotFound,
		"db error":  errors.New("database is locked"),
	} {
		t.Run(name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			runner, auth, sessions := newTestAuthenticator(ctrl)
			sessions.EXPECT().GetSession(gomock.Any(), "new@example.com").Return(models.Session{}, lookupErr)
			auth.EXPECT().Login(gomock.Any(), models.LoginRequest{Identifier: "new@example.com", Password: "pw"}).
				Return(models.AuthOutcome{}, nil)

			got := runner.Attempt(context.Background(), Prefill{}, "new@example.com", "pw")

			assert.NoError(t, got.Err)
		})
	}
}

func TestAuthenticator_VerifiedLegacyAccountUnlocksLocally(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	runner, auth, sessions := newTestAuthenticator(ctrl)
	keyAttrs := models.KeyAttributes{KEKSalt: "salt", EncryptedKey: "ek", KeyDecryptionNonce: "n"}

	sessions.EXPECT().GetSession(gomock.Any(), "old@example.com").
		Return(models.Session{Email: "old@example.com", KeyAttributes: &keyAttrs, SRPSetupPending: true}, nil)
	auth.EXPECT().Login(gomock.Any(), gomock.Any()).Times(0)
	auth.EXPECT().UnlockWithKeyAttributes(gomock.Any(), "old@example.com", "pw", keyAttrs).
		Return(models.AuthOutcome{Status: models.AuthStatusSuccess, MasterKey: []byte{1}}, nil)

	got := runner.Attempt(context.Background(), Prefill{}, "old@example.com", "pw")

	require.NoError(t, got.Err)
	assert.Equal(t, []byte{1}, got.Outcome.MasterKey)
}

func TestAuthenticator_PendingWithoutKeyAttributesLogsIn(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	auth := mock.NewMockClientAuthService(ctrl)
	runner := Authenticator{Auth: auth}

	auth.EXPECT().UnlockWithKeyAttributes(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
	auth.EXPECT().Login(gomock.Any(), models.LoginRequest{Identifier: "old@example.com", Password: "pw"}).
		Return(models.AuthOutcome{Status: models.AuthStatusVerificationPending}, nil)

	got := runner.Attempt(context.Background(), Prefill{Email: "old@example.com", SRPSetupPending: true}, "old@example.com", "pw")

	require.NoError(t, got.Err)
	assert.Equal(t, models.AuthStatusVerificationPending, got.Outcome.Status)
}

func TestPrefillFromSession(t *testing.T) {
	attrs := &models.KeyAttributes{KEKSalt: "salt"}
	got := PrefillFromSession(models.Session{Email: "u@example.com", Token: "secret-ish", KeyAttributes: attrs, SRPSetupPending: true})

	assert.Equal(t, Prefill{Email: "u@example.com", KeyAttributes: attrs, SRPSetupPending: true}, got)
}
