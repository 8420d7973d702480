// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"github.com/MKhiriev/go-pim-keeper/models"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// LoginRouter owns the pages shown before a session exists. It quits the
// program once a login succeeds or the user presses ctrl+c.
type LoginRouter struct {
	pages  map[string]tea.Model
	active tea.Model

	version   string
	buildInfo models.AppBuildInfo
	about     bool

	session  models.Session
	loggedIn bool
	aborted  bool
}

// NewLoginRouter opens start among pages.
func NewLoginRouter(pages map[string]tea.Model, start, version string, buildInfo models.AppBuildInfo) *LoginRouter {
	return &LoginRouter{
		pages:     pages,
		active:    pages[start],
		version:   version,
		buildInfo: buildInfo,
	}
}

// Session returns the logged-in session, ok is false if the user quit.
func (r *LoginRouter) Session() (models.Session, bool) {
	return r.session, r.loggedIn && !r.aborted
}

func (r *LoginRouter) Init() tea.Cmd {
	if r.active == nil {
		return nil
	}
	return r.active.Init()
}

func (r *LoginRouter) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if handled, cmd := r.handleKey(msg); handled {
			return r, cmd
		}

	case NavigateTo:
		return r, r.open(msg)

	case LoginResult:
		if msg.Err == nil {
			r.session, r.loggedIn = msg.Session, true
			return r, tea.Quit
		}
	}

	return r, r.forward(msg)
}

func (r *LoginRouter) handleKey(msg tea.KeyMsg) (bool, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		r.aborted = true
		return true, tea.Quit
	}

	if r.about {
		if key.Matches(msg, keys.esc, keys.version) {
			r.about = false
		}
		return true, nil
	}

	if _, onMenu := r.active.(*MenuModel); onMenu && key.Matches(msg, keys.version) {
		r.about = true
		return true, nil
	}
	return false, nil
}

func (r *LoginRouter) open(nav NavigateTo) tea.Cmd {
	page, ok := r.pages[nav.Page]
	if !ok {
		return nil
	}

	r.about = false
	r.active = page
	if nav.Payload != nil {
		payload := nav.Payload
		return func() tea.Msg { return payload }
	}
	return page.Init()
}

func (r *LoginRouter) forward(msg tea.Msg) tea.Cmd {
	if r.active == nil {
		return nil
	}
	var cmd tea.Cmd
	r.active, cmd = r.active.Update(msg)
	return cmd
}

func (r *LoginRouter) View() string {
	switch {
	case r.about:
		return renderBuildInfoWindow(r.version, r.buildInfo)
	case r.active == nil:
		return renderPage("GO-PIM-KEEPER", "", "")
	default:
		return r.active.View()
	}
}
