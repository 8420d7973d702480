// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"

	"github.com/MKhiriev/go-pim-keeper/internal/service"
	"github.com/MKhiriev/go-pim-keeper/models"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// LoginModel is the login screen. On submit it calls the auth service and
// emits a [LoginResult]; [LoginRouter] finishes the flow on success.
type LoginModel struct {
	ctx  context.Context
	auth service.ClientAuthService
	form credentialsForm
}

func NewLoginModel(ctx context.Context, auth service.ClientAuthService) *LoginModel {
	return &LoginModel{
		ctx:  ctx,
		auth: auth,
		form: newCredentialsForm(loginField, passwordField),
	}
}

func (m *LoginModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *LoginModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if result, ok := msg.(LoginResult); ok {
		m.form.submitting = false
		if result.Err != nil {
			m.form.errMsg = humanizeServerUnavailableError(result.Err)
		}
		return m, nil
	}

	action, cmd := m.form.update(msg)
	switch action {
	case formCancel:
		return m, navigate(pageMenu, nil)
	case formSubmit:
		login, pass := m.form.value(0), m.form.value(1)
		if login == "" || pass == "" {
			m.form.errMsg = "Login and password are required"
			return m, nil
		}
		m.form.errMsg = ""
		m.form.submitting = true
		return m, m.cmdLogin(login, pass)
	}
	return m, cmd
}

func (m *LoginModel) View() string {
	return m.form.view("LOG IN", "Log in", "Logging in...")
}

func (m *LoginModel) cmdLogin(login, pass string) tea.Cmd {
	ctx, auth := m.ctx, m.auth
	return func() tea.Msg {
		session, err := auth.Login(ctx, models.User{Login: login, MasterPassword: pass})
		return LoginResult{Session: session, Err: err}
	}
}

func navigate(page string, payload any) tea.Cmd {
	return func() tea.Msg { return NavigateTo{Page: page, Payload: payload} }
}
