package tui

import (
	"github.com/MKhiriev/go-pass-unlock/models"
	tea "github.com/charmbracelet/bubbletea"
)

// NavigateTo asks [RootModel] to switch the active page. Payload, if set, is
// delivered to the new page right after the switch.
type NavigateTo struct {
	Page    string
	Payload tea.Msg
}

// LoginResult is produced when a login attempt finishes, successfully or not.
type LoginResult struct {
	Email   string
	Outcome models.AuthOutcome
	Err     error
}

// showNotice opens the notice page for an attempt that did not end in an
// unlocked key.
type showNotice struct {
	result LoginResult
}
