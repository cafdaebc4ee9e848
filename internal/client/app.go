package client

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/MKhiriev/go-pass-unlock/internal/crypto"
	"github.com/MKhiriev/go-pass-unlock/internal/logger"
	"github.com/MKhiriev/go-pass-unlock/internal/service"
	"github.com/MKhiriev/go-pass-unlock/internal/store"
	"github.com/MKhiriev/go-pass-unlock/internal/tui"
	"github.com/MKhiriev/go-pass-unlock/internal/utils"
	"github.com/MKhiriev/go-pass-unlock/models"
	"golang.org/x/term"
)

// ErrNilDependency is returned by [NewApp] when a required collaborator is
// missing.
var ErrNilDependency = errors.New("client: nil dependency")

// LoginUI runs an interactive login and reports how it ended.
type LoginUI interface {
	LoginFlow(ctx context.Context, prefill tui.Prefill) (tui.LoginResult, error)
}

// KeyHandoff receives the unlocked keys. The keys are wiped after it returns,
// so an implementation must copy what it keeps.
type KeyHandoff func(ctx context.Context, email string, outcome models.AuthOutcome) error

// App drives a single login from prompt to handoff.
type App struct {
	runner   tui.Authenticator
	sessions store.SessionRepository
	ui       LoginUI
	handoff  KeyHandoff

	in  io.Reader
	out io.Writer

	stdinFD    int
	isTerminal func(fd int) bool
	readSecret func(fd int) ([]byte, error)

	logger *logger.Logger
}

// NewApp wires an [App]. sessions may be nil, in which case nothing is
// remembered between runs. A nil handoff only reports the outcome.
func NewApp(services *service.ClientServices, sessions store.SessionRepository, ui LoginUI, handoff KeyHandoff, log *logger.Logger) (*App, error) {
	if services == nil || services.AuthService == nil {
		return nil, fmt.Errorf("%w: services", ErrNilDependency)
	}
	if log == nil {
		log = logger.Nop()
	}

	return &App{
		runner:     tui.Authenticator{Auth: services.AuthService, Sessions: sessions, Logger: log},
		sessions:   sessions,
		ui:         ui,
		handoff:    handoff,
		in:         os.Stdin,
		out:        os.Stdout,
		stdinFD:    int(os.Stdin.Fd()),
		isTerminal: term.IsTerminal,
		readSecret: term.ReadPassword,
		logger:     log,
	}, nil
}

// Run performs one login. The terminal UI is used when stdin is a terminal
// and a UI is configured; otherwise the email and password are read as lines.
// A remembered account that finished email verification is unlocked with its
// stored key attributes instead of a server login.
func (a *App) Run(ctx context.Context) error {
	prefill := a.prefill(ctx)

	var (
		result tui.LoginResult
		err    error
	)
	if a.ui != nil && a.isTerminal(a.stdinFD) {
		result, err = a.ui.LoginFlow(ctx, prefill)
		if err != nil {
			return err
		}
	} else {
		result = a.lineLogin(ctx, prefill)
	}

	if result.Err != nil {
		fmt.Fprintln(a.out, service.UserMessage(result.Err))
		return result.Err
	}

	return a.finish(ctx, result)
}

// prefill looks up the last account used on this device.
func (a *App) prefill(ctx context.Context) tui.Prefill {
	if a.sessions == nil {
		return tui.Prefill{}
	}

	session, err := a.sessions.GetLatestSession(ctx)
	if err != nil {
		if !errors.Is(err, store.ErrSessionNotFound) {
			a.logger.Warn().Err(err).Msg("could not load last session")
		}
		return tui.Prefill{}
	}

	return tui.PrefillFromSession(session)
}

func (a *App) lineLogin(ctx context.Context, prefill tui.Prefill) tui.LoginResult {
	reader := bufio.NewReader(a.in)

	if prefill.Email != "" {
		fmt.Fprintf(a.out, "Email [%s]: ", prefill.Email)
	} else {
		fmt.Fprint(a.out, "Email: ")
	}
	email, _ := reader.ReadString('\n')
	email = strings.TrimSpace(email)
	if email == "" {
		email = prefill.Email
	}

	fmt.Fprint(a.out, "Password: ")
	password, err := a.readPassword(reader)
	fmt.Fprintln(a.out)
	if err != nil {
		return tui.LoginResult{Email: email, Err: fmt.Errorf("read password: %w", err)}
	}

	return a.runner.Attempt(ctx, prefill, email, password)
}

func (a *App) readPassword(reader *bufio.Reader) (string, error) {
	if a.isTerminal(a.stdinFD) {
		secret, err := a.readSecret(a.stdinFD)
		if err != nil {
			return "", err
		}
		defer crypto.Wipe(secret)
		return string(secret), nil
	}

	line, err := reader.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// finish reports a non-failed outcome and, on success, hands the keys over
// before wiping them.
func (a *App) finish(ctx context.Context, result tui.LoginResult) error {
	outcome := result.Outcome
	log := a.logger.With().Str("account", utils.Fingerprint(result.Email)).Str("status", outcome.Status.String()).Logger()

	switch outcome.Status {
	case models.AuthStatusSecondFactorRequired:
		method := "unknown"
		if outcome.SecondFactor != nil {
			method = string(outcome.SecondFactor.Method)
		}
		fmt.Fprintf(a.out, "Password accepted, second factor required: %s\n", method)
		log.Info().Str("method", method).Msg("login continues with second factor")
		return nil
	case models.AuthStatusVerificationPending:
		fmt.Fprintln(a.out, "A one-time code was sent to your email")
		log.Info().Msg("login continues with email verification")
		return nil
	case models.AuthStatusSuccess:
	default:
		return fmt.Errorf("unexpected login status %s", outcome.Status)
	}

	defer crypto.Wipe(outcome.MasterKey)
	defer crypto.Wipe(outcome.KEK)

	if a.handoff != nil {
		if err := a.handoff(ctx, result.Email, outcome); err != nil {
			return fmt.Errorf("hand off keys: %w", err)
		}
	}

	fmt.Fprintln(a.out, "Unlocked")
	log.Info().Msg("keys handed off")
	return nil
}
