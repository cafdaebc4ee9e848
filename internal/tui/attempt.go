package tui

import (
	"context"
	"errors"
	"strings"

	"github.com/MKhiriev/go-pass-unlock/internal/logger"
	"github.com/MKhiriev/go-pass-unlock/internal/service"
	"github.com/MKhiriev/go-pass-unlock/internal/store"
	"github.com/MKhiriev/go-pass-unlock/internal/utils"
	"github.com/MKhiriev/go-pass-unlock/models"
)

// Prefill carries what the device remembers about an account.
type Prefill struct {
	Email           string
	KeyAttributes   *models.KeyAttributes
	SRPSetupPending bool
}

// PrefillFromSession keeps the non-secret parts of session a login needs.
func PrefillFromSession(session models.Session) Prefill {
	return Prefill{
		Email:           session.Email,
		KeyAttributes:   session.KeyAttributes,
		SRPSetupPending: session.SRPSetupPending,
	}
}

// Authenticator runs login attempts for a UI. Sessions may be nil.
type Authenticator struct {
	Auth     service.ClientAuthService
	Sessions store.SessionRepository
	Logger   *logger.Logger
}

// Attempt runs one login for email. An account that finished email
// verification and has key attributes on file is unlocked with them; any
// other account logs in with the server, offering cached key attributes.
func (a Authenticator) Attempt(ctx context.Context, prefill Prefill, email, password string) LoginResult {
	known := a.remembered(ctx, prefill, email)

	var (
		outcome models.AuthOutcome
		err     error
	)
	if known.SRPSetupPending && known.KeyAttributes != nil {
		outcome, err = a.Auth.UnlockWithKeyAttributes(ctx, email, password, *known.KeyAttributes)
	} else {
		outcome, err = a.Auth.Login(ctx, models.LoginRequest{
			Identifier:    email,
			Password:      password,
			KeyAttributes: known.KeyAttributes,
		})
	}

	return LoginResult{Email: email, Outcome: outcome, Err: err}
}

// remembered returns what the device knows about email: the prefill when it
// is the same account, otherwise the stored session.
func (a Authenticator) remembered(ctx context.Context, prefill Prefill, email string) Prefill {
	if prefill.Email != "" && strings.EqualFold(email, prefill.Email) {
		return prefill
	}
	if a.Sessions == nil {
		return Prefill{}
	}

	session, err := a.Sessions.GetSession(ctx, email)
	if err != nil {
		if !errors.Is(err, store.ErrSessionNotFound) {
			logger.FromContextOr(ctx, a.Logger).Warn().Err(err).
				Str("account", utils.Fingerprint(email)).
				Msg("could not load session")
		}
		return Prefill{}
	}
	return PrefillFromSession(session)
}
