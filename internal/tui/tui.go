// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"

	"github.com/MKhiriev/go-pim-keeper/internal/logger"
	"github.com/MKhiriev/go-pim-keeper/internal/service"
	"github.com/MKhiriev/go-pim-keeper/models"
	tea "github.com/charmbracelet/bubbletea"
)

// TUI runs the terminal programs of the client.
type TUI struct {
	services  *service.ClientServices
	appInfo   service.AppInfoService
	buildInfo models.AppBuildInfo
	logger    *logger.Logger
}

// New returns a TUI over services.
func New(services *service.ClientServices, appInfo service.AppInfoService, buildInfo models.AppBuildInfo, logger *logger.Logger) (*TUI, error) {
	return &TUI{
		services:  services,
		appInfo:   appInfo,
		buildInfo: buildInfo,
		logger:    logger,
	}, nil
}

// LoginFlow shows the login/register menu until the user logs in. It
// returns [ErrUserQuit] when the user leaves instead.
func (t *TUI) LoginFlow(ctx context.Context) (models.Session, error) {
	pages := map[string]tea.Model{
		pageMenu:     NewMenuModel(),
		pageLogin:    NewLoginModel(ctx, t.services.AuthService),
		pageRegister: NewRegisterModel(ctx, t.services.AuthService),
	}

	router := NewLoginRouter(pages, pageMenu, t.appInfo.GetAppVersion(ctx), t.buildInfo)
	if _, err := tea.NewProgram(router, tea.WithAltScreen(), tea.WithContext(ctx)).Run(); err != nil {
		return models.Session{}, err
	}

	session, ok := router.Session()
	if !ok {
		return models.Session{}, ErrUserQuit
	}

	t.logger.Info().Str("func", "TUI.LoginFlow").Str("login", session.Login).Msg("user logged in")
	return session, nil
}

// MainLoop runs the main view for session. Sync events are forwarded to the
// view while it runs. logout is true when the user asked to log out.
func (t *TUI) MainLoop(ctx context.Context, session models.Session) (logout bool, err error) {
	model := NewMainModel(ctx, session, t.services, t.appInfo.GetAppVersion(ctx))
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))

	t.services.SyncJob.SetListener(func(event service.SyncEvent) {
		p.Send(syncEventMsg{event: event})
	})
	defer t.services.SyncJob.SetListener(nil)

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}

	result, ok := finalModel.(*MainModel)
	if !ok {
		return false, tea.ErrProgramKilled
	}
	return result.Logout(), nil
}
