// Package service holds the login core of the unlock client: the SRP
// challenge client and the authentication orchestrator that turns an email
// and password into the account's master key.
package service

import (
	"context"

	"github.com/MKhiriev/go-pass-unlock/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_service_mock.go -package=mock

// ClientChallengeService runs the two-round SRP exchange that proves
// knowledge of the password without sending it.
type ClientChallengeService interface {
	// Authenticate performs both rounds against attrs. A rejected proof
	// returns an error matching [ErrProofMismatch]. A server that demands a
	// second factor yields a result with SecondFactor set and no error.
	Authenticate(ctx context.Context, attrs models.SRPAttributes, password string) (models.ChallengeResult, error)
}

// ClientAuthService is the authentication orchestrator.
//
// Failures are returned as *[AuthError]; use [KindOf] to branch on them.
// Second factor and pending email verification are outcomes, not errors.
type ClientAuthService interface {
	// Login runs one attempt: SRP attributes lookup, challenge or legacy
	// one-time token, key attributes resolution, KEK derivation and master
	// key unwrap. On success the caller owns MasterKey and KEK and must wipe
	// them.
	Login(ctx context.Context, req models.LoginRequest) (models.AuthOutcome, error)

	// UnlockWithKeyAttributes recovers the master key of an account that has
	// no SRP registration, deriving the KEK from the key attributes' own
	// parameters. Used once the emailed token was verified.
	UnlockWithKeyAttributes(ctx context.Context, email, password string, keyAttributes models.KeyAttributes) (models.AuthOutcome, error)
}
