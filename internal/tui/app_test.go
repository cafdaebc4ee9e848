package tui

import (
	"testing"

	"github.com/MKhiriev/go-pass-unlock/models"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubPage records the messages it receives.
type stubPage struct {
	got []tea.Msg
}

func (s *stubPage) Init() tea.Cmd { return nil }

func (s *stubPage) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	s.got = append(s.got, msg)
	return s, nil
}

func (s *stubPage) View() string { return "stub" }

func newTestRoot() (RootModel, *stubPage, *NoticeModel) {
	login := &stubPage{}
	notice := NewNoticeModel()
	root := NewRootModel(map[string]tea.Model{pageLogin: login, pageNotice: notice}, pageLogin,
		models.NewAppBuildInfo("v1.2.3", "2026-10-19", "abc123"))
	return root, login, notice
}

func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

func TestRootModel_CtrlCQuits(t *testing.T) {
	root, _, _ := newTestRoot()

	updated, cmd := root.Update(tea.KeyMsg{Type: tea.KeyCtrlC})

	assert.True(t, isQuit(cmd))
	assert.True(t, updated.(RootModel).quitByUser)
}

func TestRootModel_SuccessQuitsWithResult(t *testing.T) {
	root, _, _ := newTestRoot()
	result := LoginResult{Email: "u@example.com", Outcome: models.AuthOutcome{Status: models.AuthStatusSuccess}}

	updated, cmd := root.Update(result)

	assert.True(t, isQuit(cmd))
	got := updated.(RootModel)
	require.NotNil(t, got.result)
	assert.Equal(t, result, *got.result)
	assert.False(t, got.quitByUser)
}

func TestRootModel_FailureGoesToLoginPage(t *testing.T) {
	root, login, _ := newTestRoot()

	updated, cmd := root.Update(LoginResult{Err: assert.AnError})

	assert.Nil(t, cmd)
	assert.Nil(t, updated.(RootModel).result)
	require.Len(t, login.got, 1)
}

func TestRootModel_HandOverShowsNotice(t *testing.T) {
	for _, outcome := range []models.AuthOutcome{
		{Status: models.AuthStatusSecondFactorRequired, SecondFactor: &models.SecondFactor{Method: models.SecondFactorTOTP}},
		{Status: models.AuthStatusVerificationPending},
	} {
		t.Run(outcome.Status.String(), func(t *testing.T) {
			root, _, notice := newTestRoot()
			result := LoginResult{Email: "u@example.com", Outcome: outcome}

			updated, cmd := root.Update(result)
			require.NotNil(t, cmd)
			nav, ok := cmd().(NavigateTo)
			require.True(t, ok)
			assert.Equal(t, pageNotice, nav.Page)

			updated, cmd = updated.Update(nav)
			require.NotNil(t, cmd)
			updated, _ = updated.Update(cmd())

			assert.Same(t, notice, updated.(RootModel).current)
			assert.Equal(t, result, notice.result)
			assert.Contains(t, updated.View(), "u@example.com")

			_, cmd = updated.Update(enterKey())
			assert.True(t, isQuit(cmd))
		})
	}
}

func TestRootModel_BuildInfoToggle(t *testing.T) {
	root, login, _ := newTestRoot()

	updated, _ := root.Update(tea.KeyMsg{Type: tea.KeyF1})
	assert.Contains(t, updated.View(), "v1.2.3")

	// other keys do not reach the page while the window is open
	updated, _ = updated.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x")})
	assert.Empty(t, login.got)

	updated, _ = updated.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, "stub", updated.View())
}

func TestRootModel_UnknownPageIgnored(t *testing.T) {
	root, login, _ := newTestRoot()

	updated, cmd := root.Update(NavigateTo{Page: "nope"})

	assert.Nil(t, cmd)
	assert.Same(t, login, updated.(RootModel).current)
}
