// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"strings"
	"time"

	"github.com/MKhiriev/go-pim-keeper/internal/router"
	"github.com/MKhiriev/go-pim-keeper/internal/service"
	"github.com/MKhiriev/go-pim-keeper/models"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// MainModel is the logged-in application. It owns the navigation history and
// routes between the collections coordinator and the journal view.
type MainModel struct {
	ctx      context.Context
	session  models.Session
	journals service.JournalService
	syncJob  service.ClientSyncJob
	manager  service.CollectionManager
	version  string
	now      func() time.Time

	nav    *router.History
	routes *router.Resolver

	collections *CollectionsModel
	journal     *JournalModel

	syncInfo       models.SyncInfo
	journalsLoaded bool
	journalsErr    error

	lastSync    time.Time
	lastSyncErr error
	syncing     bool

	logout bool
	width  int
	height int
}

// NewMainModel builds the main view for session, positioned on the
// collections list.
func NewMainModel(ctx context.Context, session models.Session, services *service.ClientServices, version string) *MainModel {
	routes := router.NewResolver()
	nav := router.NewHistory(routes.GetRoute(router.Collections))

	return &MainModel{
		ctx:      ctx,
		session:  session,
		journals: services.JournalService,
		syncJob:  services.SyncJob,
		manager:  services.CollectionManager,
		version:  version,
		now:      time.Now,
		nav:      nav,
		routes:   routes,
		collections: NewCollectionsModel(ctx, session,
			services.CollectionManager, services.Decryptor, nav, routes),
	}
}

// Logout reports whether the user asked to log out.
func (m *MainModel) Logout() bool {
	return m.logout
}

func (m *MainModel) Init() tea.Cmd {
	return tea.Batch(m.collections.Init(), m.cmdLoadLocal(), m.cmdLoadJournals())
}

func (m *MainModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.collections.Update(msg)
		if m.journal != nil {
			m.journal.Update(msg)
		}
		return m, nil

	case syncEventMsg:
		m.syncing = false
		m.lastSync = msg.event.At
		m.lastSyncErr = msg.event.Err
		collections := msg.event.Collections
		if collections == nil {
			if msg.event.Err != nil {
				// local list unavailable; keep the current cache
				return m, m.cmdLoadJournals()
			}
			collections = []models.Collection{}
		}
		_, cmd := m.collections.Update(collectionsChangedMsg{collections: collections})
		return m, tea.Batch(cmd, m.cmdLoadJournals())

	case syncRequestedMsg:
		m.syncing = true
		m.syncJob.Trigger()
		return m, nil

	case journalsLoadedMsg:
		m.journalsLoaded = true
		m.journalsErr = msg.err
		if msg.err == nil {
			m.syncInfo = msg.info
		}
		m.journal = nil
		m.syncJournalView()
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}

		var cmd tea.Cmd
		if m.onJournalRoute() {
			_, cmd = m.journal.Update(msg)
		} else {
			if !m.collections.Capturing() {
				switch {
				case key.Matches(msg, keys.logout):
					m.logout = true
					return m, tea.Quit
				case key.Matches(msg, keys.quit):
					return m, tea.Quit
				}
			}
			_, cmd = m.collections.Update(msg)
		}
		m.syncJournalView()
		return m, cmd
	}

	_, cmd := m.collections.Update(msg)
	return m, cmd
}

// syncJournalView keeps the journal model bound to the current route.
func (m *MainModel) syncJournalView() {
	match, ok := m.routes.Match(m.nav.Current())
	if !ok || match.Name != router.JournalsID {
		m.journal = nil
		return
	}

	uid, _ := match.Param(router.ParamJournalUID)
	if m.journal != nil && m.journal.UID() == uid {
		return
	}
	m.journal = NewJournalModel(uid, m.syncInfo, m.nav)
	if m.width > 0 {
		m.journal.Update(tea.WindowSizeMsg{Width: m.width, Height: m.height})
	}
}

func (m *MainModel) onJournalRoute() bool {
	return m.journal != nil
}

func (m *MainModel) View() string {
	var body string
	switch {
	case m.journal != nil && !m.journalsLoaded:
		body = renderPage("JOURNAL", "Loading...", "esc: back")
	case m.journal != nil && m.journalsErr != nil && !m.journal.Found():
		body = renderPage("JOURNAL", errorStyle.Render(humanizeError(m.journalsErr)), "esc: back")
	case m.journal != nil:
		body = m.journal.View()
	default:
		body = m.collections.View()
	}
	return body + "\n" + m.footer()
}

func (m *MainModel) footer() string {
	parts := []string{"user: " + valueOrDash(m.session.Login)}

	switch {
	case m.syncing:
		parts = append(parts, "syncing...")
	case m.lastSync.IsZero():
		parts = append(parts, "last sync: never")
	default:
		at := m.lastSync
		parts = append(parts, "last sync: "+relativeTime(&at, m.now()))
	}
	if m.lastSyncErr != nil {
		parts = append(parts, errorStyle.Render("sync failed: "+humanizeServerUnavailableError(m.lastSyncErr)))
	}
	parts = append(parts, valueOrNA(m.version))

	return helpStyle.Render("  " + strings.Join(parts, " │ "))
}

func (m *MainModel) cmdLoadLocal() tea.Cmd {
	ctx, manager, userID := m.ctx, m.manager, m.session.UserID
	return func() tea.Msg {
		collections, err := manager.List(ctx, userID)
		if collections == nil && err == nil {
			collections = []models.Collection{}
		}
		return collectionsReloadedMsg{collections: collections, err: err}
	}
}

func (m *MainModel) cmdLoadJournals() tea.Cmd {
	ctx, journals, userID := m.ctx, m.journals, m.session.UserID
	return func() tea.Msg {
		info, err := journals.SyncInfo(ctx, userID)
		return journalsLoadedMsg{info: info, err: err}
	}
}
