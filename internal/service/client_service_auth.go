package service

import (
	"context"
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-pass-unlock/internal/adapter"
	"github.com/MKhiriev/go-pass-unlock/internal/crypto"
	"github.com/MKhiriev/go-pass-unlock/internal/logger"
	"github.com/MKhiriev/go-pass-unlock/internal/store"
	"github.com/MKhiriev/go-pass-unlock/internal/utils"
	"github.com/MKhiriev/go-pass-unlock/models"
)

// attemptIDGenerator issues one id per login attempt.
type attemptIDGenerator interface {
	Generate() string
}

// clientAuthService holds collaborators only. Every secret of an attempt
// lives in the attempt's own stack frame.
type clientAuthService struct {
	sessions  store.SessionRepository
	adapter   adapter.ServerAdapter
	challenge ClientChallengeService
	crypto    crypto.KeyChainService
	ids       attemptIDGenerator
	wipe      func([]byte)
	logger    *logger.Logger
}

func NewClientAuthService(
	sessions store.SessionRepository,
	serverAdapter adapter.ServerAdapter,
	challenge ClientChallengeService,
	keyChain crypto.KeyChainService,
	log *logger.Logger,
) ClientAuthService {
	return &clientAuthService{
		sessions:  sessions,
		adapter:   serverAdapter,
		challenge: challenge,
		crypto:    keyChain,
		ids:       utils.NewUUIDGenerator(),
		wipe:      crypto.Wipe,
		logger:    log,
	}
}

func (a *clientAuthService) Login(ctx context.Context, req models.LoginRequest) (models.AuthOutcome, error) {
	ctx, log, attemptID := a.startAttempt(ctx, req.Identifier)
	log.Info().Msg("login attempt started")

	email := strings.TrimSpace(req.Identifier)
	if email == "" || req.Password == "" {
		return a.fail(log, attemptID, ErrEmptyCredentials)
	}

	// step 1: does the account have SRP set up?
	srpAttrs, err := a.adapter.GetSRPAttributes(ctx, email)
	if err != nil {
		return a.fail(log, attemptID, fmt.Errorf("fetch srp attributes: %w", err))
	}
	if srpAttrs == nil {
		return a.legacyLogin(ctx, log, attemptID, email)
	}
	a.clearSRPSetupPending(ctx, log, email)

	// step 2: challenge
	result, err := a.challenge.Authenticate(ctx, *srpAttrs, req.Password)
	if err != nil {
		return a.fail(log, attemptID, err)
	}
	if result.SecondFactor != nil {
		req.KeyAttributes = nil
		a.discardCachedKeyAttributes(ctx, log, email)
		log.Info().Str("method", string(result.SecondFactor.Method)).Msg("login handed over to second factor")
		return models.AuthOutcome{
			Status:       models.AuthStatusSecondFactorRequired,
			SecondFactor: result.SecondFactor,
		}, nil
	}

	// steps 3-4: key attributes, only after the challenge succeeded
	keyAttrs, err := a.resolveKeyAttributes(ctx, req.KeyAttributes, result.Proof)
	if err != nil {
		return a.fail(log, attemptID, err)
	}

	// steps 5-7
	params := models.KDFParamsFromSRP(*srpAttrs)
	if err = checkKDFParams(params, *keyAttrs); err != nil {
		return a.fail(log, attemptID, err)
	}

	outcome, err := a.unlock(ctx, req.Password, params, keyAttrs)
	if err != nil {
		return a.fail(log, attemptID, err)
	}
	outcome.Proof = result.Proof

	a.saveSession(ctx, log, models.Session{
		Email:         email,
		UserID:        result.Proof.UserID,
		Token:         result.Proof.Token,
		KeyAttributes: keyAttrs,
	})

	log.Info().Int64("user_id", result.Proof.UserID).Msg("login succeeded")
	return outcome, nil
}

func (a *clientAuthService) UnlockWithKeyAttributes(ctx context.Context, email, password string, keyAttributes models.KeyAttributes) (models.AuthOutcome, error) {
	ctx, log, attemptID := a.startAttempt(ctx, email)
	log.Info().Msg("unlock with key attributes started")

	if password == "" {
		return a.fail(log, attemptID, ErrEmptyCredentials)
	}

	params := models.KDFParamsFromKeyAttributes(keyAttributes)
	outcome, err := a.unlock(ctx, password, params, &keyAttributes)
	if err != nil {
		return a.fail(log, attemptID, err)
	}

	log.Info().Msg("unlock succeeded")
	return outcome, nil
}

// legacyLogin is taken for accounts without SRP attributes: a one-time token
// is emailed and the caller continues with email verification.
func (a *clientAuthService) legacyLogin(ctx context.Context, log *logger.Logger, attemptID, email string) (models.AuthOutcome, error) {
	if err := a.adapter.SendOTT(ctx, email); err != nil {
		return a.fail(log, attemptID, fmt.Errorf("send one-time token: %w", err))
	}

	if a.sessions != nil {
		if err := a.sessions.SetSRPSetupPending(ctx, email, true); err != nil {
			log.Warn().Err(err).Msg("could not mark srp setup pending")
		}
	}

	log.Info().Msg("no srp attributes, one-time token sent")
	return models.AuthOutcome{Status: models.AuthStatusVerificationPending}, nil
}

// resolveKeyAttributes prefers the attributes the caller supplied, then those
// returned with the proof, then fetches them with the proof.
func (a *clientAuthService) resolveKeyAttributes(ctx context.Context, supplied *models.KeyAttributes, proof models.SessionProof) (*models.KeyAttributes, error) {
	if supplied != nil {
		return supplied, nil
	}
	if proof.KeyAttributes != nil {
		return proof.KeyAttributes, nil
	}

	fetched, err := a.adapter.GetKeyAttributes(ctx, proof)
	if err != nil {
		return nil, fmt.Errorf("fetch key attributes: %w", err)
	}
	if fetched == nil {
		return nil, ErrMissingKeyAttributes
	}
	return fetched, nil
}

// checkKDFParams asserts that params can unlock keyAttrs. Key attributes that
// carry no KDF fields are accepted as is.
func checkKDFParams(params models.KDFParams, keyAttrs models.KeyAttributes) error {
	if keyAttrs.KEKSalt == "" && keyAttrs.OpsLimit == 0 && keyAttrs.MemLimit == 0 {
		return nil
	}
	if !params.SameCost(models.KDFParamsFromKeyAttributes(keyAttrs)) {
		return fmt.Errorf("%w: source %s", ErrKDFParamsMismatch, params.Source)
	}
	return nil
}

// unlock derives the KEK once and unwraps the master key with it. On any
// failure both secrets are wiped before returning.
func (a *clientAuthService) unlock(ctx context.Context, password string, params models.KDFParams, keyAttrs *models.KeyAttributes) (models.AuthOutcome, error) {
	encryptedKey, err := base64.StdEncoding.DecodeString(keyAttrs.EncryptedKey)
	if err != nil {
		return models.AuthOutcome{}, fmt.Errorf("%w: encrypted key: %v", ErrInvalidKeyAttributes, err)
	}
	nonce, err := base64.StdEncoding.DecodeString(keyAttrs.KeyDecryptionNonce)
	if err != nil {
		return models.AuthOutcome{}, fmt.Errorf("%w: key nonce: %v", ErrInvalidKeyAttributes, err)
	}

	kek, err := a.deriveKEK(ctx, password, params)
	if err != nil {
		return models.AuthOutcome{}, fmt.Errorf("derive kek: %w", err)
	}

	masterKey, err := a.crypto.UnwrapKey(encryptedKey, nonce, kek)
	if err != nil {
		a.wipe(kek)
		return models.AuthOutcome{}, fmt.Errorf("unwrap master key: %w", err)
	}

	if err = ctx.Err(); err != nil {
		a.wipe(kek)
		a.wipe(masterKey)
		return models.AuthOutcome{}, err
	}

	return models.AuthOutcome{
		Status:        models.AuthStatusSuccess,
		MasterKey:     masterKey,
		KEK:           kek,
		KeyAttributes: keyAttrs,
	}, nil
}

type derivation struct {
	kek []byte
	err error
}

// deriveKEK runs the KDF off the caller's goroutine so the attempt can be
// abandoned. An abandoned KEK is wiped as soon as the KDF returns it.
func (a *clientAuthService) deriveKEK(ctx context.Context, password string, params models.KDFParams) ([]byte, error) {
	done := make(chan derivation, 1)
	go func() {
		kek, err := a.crypto.DeriveKEK(password, params)
		done <- derivation{kek: kek, err: err}
	}()

	select {
	case d := <-done:
		return d.kek, d.err
	case <-ctx.Done():
		go func() {
			d := <-done
			a.wipe(d.kek)
		}()
		return nil, ctx.Err()
	}
}

// clearSRPSetupPending drops a pending flag left by an earlier emailed-token
// login once the account has SRP attributes.
func (a *clientAuthService) clearSRPSetupPending(ctx context.Context, log *logger.Logger, email string) {
	if a.sessions == nil {
		return
	}
	if err := a.sessions.SetSRPSetupPending(ctx, email, false); err != nil {
		log.Warn().Err(err).Msg("could not clear srp setup pending")
	}
}

func (a *clientAuthService) discardCachedKeyAttributes(ctx context.Context, log *logger.Logger, email string) {
	if a.sessions == nil {
		return
	}
	if err := a.sessions.ClearKeyAttributes(ctx, email); err != nil {
		log.Warn().Err(err).Msg("could not discard cached key attributes")
	}
}

func (a *clientAuthService) saveSession(ctx context.Context, log *logger.Logger, session models.Session) {
	if a.sessions == nil {
		return
	}
	if err := a.sessions.SaveSession(ctx, session); err != nil {
		log.Warn().Err(err).Msg("could not persist session")
	}
}

func (a *clientAuthService) startAttempt(ctx context.Context, email string) (context.Context, *logger.Logger, string) {
	attemptID := a.ids.Generate()
	ctx = utils.WithAttemptID(ctx, attemptID)
	ctx, log := a.logger.WithAttempt(ctx, attemptID)

	log = &logger.Logger{Logger: log.With().Str("account", utils.Fingerprint(email)).Logger()}
	return log.WithContext(ctx), log, attemptID
}

func (a *clientAuthService) fail(log *logger.Logger, attemptID string, err error) (models.AuthOutcome, error) {
	authErr := newAuthError(attemptID, err)
	log.Error().Err(authErr.Err).Str("kind", authErr.Kind.String()).Msg("login failed")
	return models.AuthOutcome{}, authErr
}
