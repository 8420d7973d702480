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

// RegisterModel is the registration screen. On success it resets the form
// and returns to the menu with a [RegisterSuccessNotice].
type RegisterModel struct {
	ctx  context.Context
	auth service.ClientAuthService
	form credentialsForm
}

func NewRegisterModel(ctx context.Context, auth service.ClientAuthService) *RegisterModel {
	return &RegisterModel{
		ctx:  ctx,
		auth: auth,
		form: newCredentialsForm(loginField, passwordField, repeatField),
	}
}

func (m *RegisterModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *RegisterModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if result, ok := msg.(RegisterResult); ok {
		m.form.submitting = false
		if result.Err != nil {
			m.form.errMsg = humanizeServerUnavailableError(result.Err)
			return m, nil
		}
		m.form.reset()
		return m, navigate(pageMenu, RegisterSuccessNotice{Username: result.Username})
	}

	action, cmd := m.form.update(msg)
	switch action {
	case formCancel:
		return m, navigate(pageMenu, nil)
	case formSubmit:
		return m, m.submit()
	}
	return m, cmd
}

func (m *RegisterModel) submit() tea.Cmd {
	login, pass, repeat := m.form.value(0), m.form.value(1), m.form.value(2)
	switch {
	case login == "" || pass == "" || repeat == "":
		m.form.errMsg = "All fields are required"
		return nil
	case pass != repeat:
		m.form.errMsg = "Passwords do not match"
		return nil
	}

	m.form.errMsg = ""
	m.form.submitting = true
	ctx, auth := m.ctx, m.auth
	return func() tea.Msg {
		err := auth.Register(ctx, models.User{Login: login, MasterPassword: pass})
		return RegisterResult{Username: login, Err: err}
	}
}

func (m *RegisterModel) View() string {
	return m.form.view("REGISTER", "Register", "Registering...")
}
