package tui

import (
	"strings"

	"github.com/MKhiriev/go-pass-unlock/models"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// NoticeModel tells the user how to continue when the password was accepted
// but the login is finished elsewhere: a second factor or an emailed code.
type NoticeModel struct {
	result LoginResult
}

func NewNoticeModel() *NoticeModel {
	return &NoticeModel{}
}

func (m *NoticeModel) Init() tea.Cmd {
	return nil
}

func (m *NoticeModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case showNotice:
		m.result = msg.result
	case tea.KeyMsg:
		if key.Matches(msg, keys.enter) || key.Matches(msg, keys.esc) {
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m *NoticeModel) View() string {
	var b strings.Builder
	b.WriteString("Аккаунт: ")
	b.WriteString(m.result.Email)
	b.WriteString("\n\n")

	outcome := m.result.Outcome
	switch outcome.Status {
	case models.AuthStatusSecondFactorRequired:
		b.WriteString(noticeStyle.Render("Пароль принят."))
		b.WriteString("\nТребуется второй фактор: ")
		if outcome.SecondFactor != nil {
			b.WriteString(secondFactorLabel(outcome.SecondFactor.Method))
		}
	case models.AuthStatusVerificationPending:
		b.WriteString(noticeStyle.Render("Одноразовый код отправлен на почту."))
		b.WriteString("\nПодтвердите вход кодом из письма.")
	default:
		b.WriteString("-")
	}

	return renderPage("ПРОДОЛЖЕНИЕ ВХОДА", b.String(), "enter: закрыть")
}

func secondFactorLabel(method models.SecondFactorMethod) string {
	switch method {
	case models.SecondFactorTOTP:
		return "код из приложения-аутентификатора"
	case models.SecondFactorPasskey:
		return "ключ доступа (passkey)"
	case models.SecondFactorEmail:
		return "код из письма"
	default:
		return string(method)
	}
}
