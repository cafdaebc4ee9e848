// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// LoginModel is the Bubble Tea model for the login screen. It renders two text inputs
// (email and password) and dispatches an async login command on form submission.
// The finished attempt is reported as a [LoginResult] message and handled by
// [RootModel].
type LoginModel struct {
	ctx     context.Context
	runner  Authenticator
	prefill Prefill

	// cancel aborts the attempt in flight, if any.
	cancel context.CancelFunc

	inputs     []textinput.Model
	focus      int
	spinner    spinner.Model
	submitting bool
	errOverlay errorOverlayModel
}

// NewLoginModel creates a [LoginModel]. A prefilled email moves focus straight
// to the password field, which uses masked echo.
func NewLoginModel(ctx context.Context, runner Authenticator, prefill Prefill) *LoginModel {
	emailInput := textinput.New()
	emailInput.Placeholder = "email"
	emailInput.CharLimit = 254
	emailInput.Width = 40
	emailInput.SetValue(prefill.Email)

	passwordInput := textinput.New()
	passwordInput.Placeholder = "password"
	passwordInput.CharLimit = 256
	passwordInput.Width = 40
	passwordInput.EchoMode = textinput.EchoPassword
	passwordInput.EchoCharacter = '*'

	m := &LoginModel{
		ctx:     ctx,
		runner:  runner,
		prefill: prefill,
		inputs:  []textinput.Model{emailInput, passwordInput},
		spinner: spinner.New(spinner.WithSpinner(spinner.Dot)),
	}
	if prefill.Email != "" {
		m.focus = 1
	}
	m.inputs[m.focus].Focus()
	return m
}

// Init implements [tea.Model]. Starts the cursor-blink animation for the active input.
func (m *LoginModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements [tea.Model]. Handled messages:
//   - [LoginResult]   clears submitting state; on error, shows the failure class.
//   - spinner ticks   animate the progress indicator while an attempt runs.
//   - tab, shift+tab  move focus between inputs.
//   - enter           validates inputs and dispatches the async login command.
//
// All other key events are forwarded to the focused input widget.
func (m *LoginModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case LoginResult:
		m.release()
		m.submitting = false
		m.errOverlay.message = describeLoginError(msg.Err)
		return m, nil
	case spinner.TickMsg:
		if !m.submitting {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case tea.KeyMsg:
		if m.submitting {
			return m, nil
		}
		switch {
		case key.Matches(msg, keys.tab):
			m.focusNext()
			return m, nil
		case key.Matches(msg, keys.backtab):
			m.focusPrev()
			return m, nil
		case key.Matches(msg, keys.enter):
			email := strings.TrimSpace(m.inputs[0].Value())
			password := m.inputs[1].Value()
			if email == "" || password == "" {
				m.errOverlay.message = "Email и пароль обязательны"
				return m, nil
			}

			// the field must not keep the password once the attempt owns it
			m.inputs[1].Reset()
			m.errOverlay.message = ""
			m.submitting = true
			ctx, cancel := context.WithCancel(m.ctx)
			m.cancel = cancel
			return m, tea.Batch(m.spinner.Tick, m.cmdLogin(ctx, email, password))
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

// View implements [tea.Model].
func (m *LoginModel) View() string {
	var b strings.Builder
	b.WriteString("Email   │ [")
	b.WriteString(m.inputs[0].View())
	b.WriteString("]\n")
	b.WriteString("Пароль  │ [")
	b.WriteString(m.inputs[1].View())
	b.WriteString("]\n")

	if m.submitting {
		b.WriteString("\n")
		b.WriteString(m.spinner.View())
		b.WriteString(" Проверка пароля...\n")
	} else {
		b.WriteString("\n[Войти]\n")
	}

	if overlay := m.errOverlay.View(); overlay != "" {
		b.WriteString("\n")
		b.WriteString(overlay)
		b.WriteString("\n")
	}

	return renderPage("ВХОД", strings.TrimRight(b.String(), "\n"), "tab: след. поле │ enter: войти │ f1: версия")
}

// Abort cancels the attempt in flight. The orchestrator then wipes whatever
// it derived and the result is dropped.
func (m *LoginModel) Abort() {
	m.release()
}

func (m *LoginModel) release() {
	if m.cancel != nil {
		m.cancel()
		m.cancel = nil
	}
}

func (m *LoginModel) cmdLogin(ctx context.Context, email, password string) tea.Cmd {
	runner := m.runner
	prefill := m.prefill

	return func() tea.Msg {
		return runner.Attempt(ctx, prefill, email, password)
	}
}

func (m *LoginModel) focusNext() {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + 1) % len(m.inputs)
	m.inputs[m.focus].Focus()
}

func (m *LoginModel) focusPrev() {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus - 1 + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focus].Focus()
}
