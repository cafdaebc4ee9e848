// Package tui is the interactive login screen of the unlock client, built on
// Bubble Tea.
package tui

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-pass-unlock/internal/logger"
	"github.com/MKhiriev/go-pass-unlock/internal/service"
	"github.com/MKhiriev/go-pass-unlock/internal/store"
	"github.com/MKhiriev/go-pass-unlock/models"
	tea "github.com/charmbracelet/bubbletea"
)

var (
	ErrUserQuit    = errors.New("user quit")
	ErrNilServices = errors.New("tui: services are nil")
)

type TUI struct {
	runner    Authenticator
	buildInfo models.AppBuildInfo
	logger    *logger.Logger
}

// New builds the login UI. sessions may be nil, in which case only the
// prefill is remembered.
func New(services *service.ClientServices, sessions store.SessionRepository, buildInfo models.AppBuildInfo, log *logger.Logger) (*TUI, error) {
	if services == nil || services.AuthService == nil {
		return nil, ErrNilServices
	}
	return &TUI{
		runner:    Authenticator{Auth: services.AuthService, Sessions: sessions, Logger: log},
		buildInfo: buildInfo,
		logger:    log,
	}, nil
}

// LoginFlow runs the login screen until an attempt succeeds, hands over to a
// second factor or email verification, or the user quits. An attempt still
// running when the screen closes is cancelled.
func (t *TUI) LoginFlow(ctx context.Context, prefill Prefill) (LoginResult, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	pages := map[string]tea.Model{
		pageLogin:  NewLoginModel(ctx, t.runner, prefill),
		pageNotice: NewNoticeModel(),
	}

	root := NewRootModel(pages, pageLogin, t.buildInfo)
	finalModel, runErr := tea.NewProgram(root, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if runErr != nil {
		return LoginResult{}, runErr
	}

	result, ok := finalModel.(RootModel)
	if !ok {
		return LoginResult{}, tea.ErrProgramKilled
	}
	if result.quitByUser || result.result == nil {
		return LoginResult{}, ErrUserQuit
	}

	return *result.result, nil
}
