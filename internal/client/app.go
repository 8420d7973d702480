// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-pim-keeper/internal/config"
	"github.com/MKhiriev/go-pim-keeper/internal/logger"
	"github.com/MKhiriev/go-pim-keeper/internal/service"
	"github.com/MKhiriev/go-pim-keeper/internal/tui"
	"github.com/MKhiriev/go-pim-keeper/internal/workers"
	"github.com/MKhiriev/go-pim-keeper/models"
)

// App runs login, background sync and the main view for one user at a
// time. A logout returns to the login flow.
type App struct {
	services   *service.ClientServices
	ui         UI
	workersCfg config.ClientWorkers
	logger     *logger.Logger
}

// NewApp returns an App over services and ui.
func NewApp(services *service.ClientServices, ui UI, workersCfg config.ClientWorkers, logger *logger.Logger) (*App, error) {
	if services == nil || ui == nil {
		return nil, errors.New("client app: services and ui are required")
	}
	return &App{
		services:   services,
		ui:         ui,
		workersCfg: workersCfg,
		logger:     logger,
	}, nil
}

func (a *App) Run(ctx context.Context) error {
	for {
		session, err := a.ui.LoginFlow(ctx)
		if errors.Is(err, tui.ErrUserQuit) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("login flow: %w", err)
		}

		logout, err := a.runSession(ctx, session)
		if err != nil {
			return err
		}
		if !logout {
			return nil
		}

		a.logger.Info().Str("func", "App.Run").Str("login", session.Login).Msg("user logged out")
	}
}

func (a *App) runSession(ctx context.Context, session models.Session) (bool, error) {
	sessionCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	ws := workers.NewWorkers(
		workers.NewSyncWorker(a.services.SyncJob, session.UserID, a.workersCfg.SyncInterval),
	)
	ws.Run(sessionCtx)
	defer ws.Stop()

	// the key must not outlive the session
	defer a.services.CryptoService.SetEncryptionKey(nil)

	logout, err := a.ui.MainLoop(sessionCtx, session)
	if err != nil {
		return false, fmt.Errorf("main loop: %w", err)
	}
	return logout, nil
}
