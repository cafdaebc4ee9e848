package tui

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/MKhiriev/go-pass-unlock/internal/crypto"
	"github.com/MKhiriev/go-pass-unlock/internal/mock"
	"github.com/MKhiriev/go-pass-unlock/internal/service"
	"github.com/MKhiriev/go-pass-unlock/models"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func enterKey() tea.KeyMsg { return tea.KeyMsg{Type: tea.KeyEnter} }

func TestLoginModel_EnterRequiresBothFields(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m := NewLoginModel(context.Background(), Authenticator{Auth: mock.NewMockClientAuthService(ctrl)}, Prefill{})
	m.inputs[0].SetValue("u@example.com")

	_, cmd := m.Update(enterKey())

	assert.Nil(t, cmd)
	assert.False(t, m.submitting)
	assert.NotEmpty(t, m.errOverlay.message)
}

func TestLoginModel_EnterSubmitsAndClearsPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m := NewLoginModel(context.Background(), Authenticator{Auth: mock.NewMockClientAuthService(ctrl)}, Prefill{})
	m.inputs[0].SetValue("  u@example.com ")
	m.inputs[1].SetValue("secret")

	_, cmd := m.Update(enterKey())

	require.NotNil(t, cmd)
	assert.True(t, m.submitting)
	assert.Empty(t, m.inputs[1].Value())
	assert.Contains(t, m.View(), "Проверка пароля")

	// keys are ignored while the attempt runs
	_, cmd = m.Update(enterKey())
	assert.Nil(t, cmd)
}

func TestLoginModel_CmdLoginUsesPrefilledKeyAttributes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	auth := mock.NewMockClientAuthService(ctrl)
	cached := &models.KeyAttributes{KEKSalt: "salt"}
	m := NewLoginModel(context.Background(), Authenticator{Auth: auth}, Prefill{Email: "U@example.com", KeyAttributes: cached})
	assert.Equal(t, 1, m.focus, "password gets focus when email is known")

	outcome := models.AuthOutcome{Status: models.AuthStatusSuccess, MasterKey: []byte("mk")}
	auth.EXPECT().Login(gomock.Any(), models.LoginRequest{
		Identifier:    "u@example.com",
		Password:      "secret",
		KeyAttributes: cached,
	}).Return(outcome, nil)

	msg := m.cmdLogin(context.Background(), "u@example.com", "secret")()

	result, ok := msg.(LoginResult)
	require.True(t, ok)
	assert.NoError(t, result.Err)
	assert.Equal(t, "u@example.com", result.Email)
	assert.Equal(t, outcome, result.Outcome)
}

func TestLoginModel_CmdLoginIgnoresCacheOfOtherAccount(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	auth := mock.NewMockClientAuthService(ctrl)
	m := NewLoginModel(context.Background(), Authenticator{Auth: auth}, Prefill{Email: "a@example.com", KeyAttributes: &models.KeyAttributes{}})

	auth.EXPECT().Login(gomock.Any(), models.LoginRequest{Identifier: "b@example.com", Password: "pw"}).
		Return(models.AuthOutcome{}, errors.New("offline"))

	msg := m.cmdLogin(context.Background(), "b@example.com", "pw")()

	assert.Error(t, msg.(LoginResult).Err)
}

func TestLoginModel_ShowsFailureClassOnly(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		want    string
		notWant string
	}{
		{
			name: "incorrect password",
			err:  &service.AuthError{Kind: service.FailureIncorrectPassword, AttemptID: "a-1", Err: crypto.ErrDecryptionFailed},
			want: service.MsgIncorrectPassphrase,
		},
		{
			name: "weak device",
			err:  &service.AuthError{Kind: service.FailureWeakDevice, AttemptID: "a-1", Err: crypto.ErrWeakDevice},
			want: service.MsgWeakDevice,
		},
		{
			name:    "unknown",
			err:     &service.AuthError{Kind: service.FailureUnknown, AttemptID: "a-1", Err: errors.New("dial tcp 10.0.0.1:443")},
			want:    "UNKNOWN_ERROR (unknown, attempt a-1)",
			notWant: "dial tcp",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			m := NewLoginModel(context.Background(), Authenticator{Auth: mock.NewMockClientAuthService(ctrl)}, Prefill{})
			m.submitting = true

			m.Update(LoginResult{Err: tt.err})

			assert.False(t, m.submitting)
			assert.Contains(t, m.errOverlay.message, tt.want)
			if tt.notWant != "" {
				assert.NotContains(t, m.View(), tt.notWant)
			}
		})
	}
}

func TestLoginModel_TabCyclesFocus(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m := NewLoginModel(context.Background(), Authenticator{Auth: mock.NewMockClientAuthService(ctrl)}, Prefill{})
	require.Equal(t, 0, m.focus)

	m.Update(tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, 1, m.focus)
	m.Update(tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, 0, m.focus)
	m.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	assert.Equal(t, 1, m.focus)
}

// runBatch starts every command of a tea.Batch and collects their messages.
func runBatch(t *testing.T, cmd tea.Cmd) <-chan tea.Msg {
	t.Helper()
	batch, ok := cmd().(tea.BatchMsg)
	require.True(t, ok, "expected a batch of commands")

	msgs := make(chan tea.Msg, len(batch))
	for _, c := range batch {
		if c == nil {
			continue
		}
		go func() { msgs <- c() }()
	}
	return msgs
}

func TestRootModel_CtrlCCancelsRunningAttempt(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	auth := mock.NewMockClientAuthService(ctrl)
	started := make(chan context.Context, 1)
	auth.EXPECT().Login(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, _ models.LoginRequest) (models.AuthOutcome, error) {
			started <- ctx
			<-ctx.Done()
			return models.AuthOutcome{}, ctx.Err()
		})

	login := NewLoginModel(context.Background(), Authenticator{Auth: auth}, Prefill{})
	login.inputs[0].SetValue("u@example.com")
	login.inputs[1].SetValue("secret")
	root := NewRootModel(map[string]tea.Model{pageLogin: login, pageNotice: NewNoticeModel()}, pageLogin, models.AppBuildInfo{})

	updated, cmd := root.Update(enterKey())
	require.NotNil(t, cmd)
	msgs := runBatch(t, cmd)

	var attemptCtx context.Context
	select {
	case attemptCtx = <-started:
	case <-time.After(5 * time.Second):
		t.Fatal("login attempt did not start")
	}
	require.NoError(t, attemptCtx.Err())

	_, cmd = updated.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	assert.True(t, isQuit(cmd))

	select {
	case <-attemptCtx.Done():
	case <-time.After(5 * time.Second):
		t.Fatal("quitting did not cancel the running attempt")
	}

	require.Eventually(t, func() bool {
		for {
			select {
			case msg := <-msgs:
				if result, ok := msg.(LoginResult); ok {
					return errors.Is(result.Err, context.Canceled)
				}
			default:
				return false
			}
		}
	}, 5*time.Second, 10*time.Millisecond)
}

func TestLoginModel_FinishedAttemptReleasesContext(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m := NewLoginModel(context.Background(), Authenticator{Auth: mock.NewMockClientAuthService(ctrl)}, Prefill{})
	m.inputs[0].SetValue("u@example.com")
	m.inputs[1].SetValue("secret")

	_, cmd := m.Update(enterKey())
	require.NotNil(t, cmd)
	require.NotNil(t, m.cancel)

	m.Update(LoginResult{Err: errors.New("offline")})

	assert.Nil(t, m.cancel)
	m.Abort()
}
