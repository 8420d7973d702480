// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/MKhiriev/go-pim-keeper/internal/processors"
	"github.com/MKhiriev/go-pim-keeper/internal/router"
	"github.com/MKhiriev/go-pim-keeper/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	tabItems = iota
	tabEntries
)

const entriesTitle = "Journal Entries"

// journalKind is the classification of a journal by its collection type.
type journalKind int

const (
	journalKindUnsupported journalKind = iota
	journalKindCalendar
	journalKindAddressBook
)

func classifyJournal(collectionType string) journalKind {
	switch models.CollectionType(collectionType) {
	case models.CollectionTypeCalendar:
		return journalKindCalendar
	case models.CollectionTypeAddressBook:
		return journalKindAddressBook
	default:
		return journalKindUnsupported
	}
}

// itemsPanel renders the type-specific items tab.
type itemsPanel interface {
	update(msg tea.KeyMsg)
	view(width int) string
	help() string
}

// journalProjections turn journal entries into display items. They must be
// free of side effects.
type journalProjections struct {
	contacts func(models.CollectionInfo, []models.SyncEntry) models.ContactItemMap
	events   func(models.CollectionInfo, []models.SyncEntry) models.EventItemMap
}

func defaultProjections() journalProjections {
	return journalProjections{
		contacts: processors.EntriesToItemMap,
		events:   processors.EntriesToCalendarItemMap,
	}
}

type journalKindView struct {
	itemsTitle string
	build      func(j models.SyncJournal, p journalProjections, now time.Time) itemsPanel
}

var journalKindViews = map[journalKind]journalKindView{
	journalKindCalendar: {
		itemsTitle: "Events",
		build: func(j models.SyncJournal, p journalProjections, now time.Time) itemsPanel {
			return newCalendarPanel(p.events(j.Collection, j.Entries), now)
		},
	},
	journalKindAddressBook: {
		itemsTitle: "Contacts",
		build: func(j models.SyncJournal, p journalProjections, _ time.Time) itemsPanel {
			return newContactsPanel(p.contacts(j.Collection, j.Entries))
		},
	},
	journalKindUnsupported: {
		itemsTitle: "Items",
		build: func(models.SyncJournal, journalProjections, time.Time) itemsPanel {
			return unsupportedPanel{}
		},
	},
}

type unsupportedPanel struct{}

func (unsupportedPanel) update(tea.KeyMsg) {}
func (unsupportedPanel) view(int) string   { return "Unsupported type" }
func (unsupportedPanel) help() string      { return "" }

// JournalModel shows one journal resolved from a [models.SyncInfo]. Items
// are projected once, when the model is built.
type JournalModel struct {
	nav router.Navigator
	now func() time.Time

	uid     string
	journal models.SyncJournal
	found   bool
	kind    journalKind
	title   string
	panel   itemsPanel

	tab     int
	entries viewport.Model
	width   int
}

// NewJournalModel resolves journalUID in info.
func NewJournalModel(journalUID string, info models.SyncInfo, nav router.Navigator) *JournalModel {
	return newJournalModel(journalUID, info, nav, defaultProjections(), time.Now)
}

func newJournalModel(
	journalUID string,
	info models.SyncInfo,
	nav router.Navigator,
	projections journalProjections,
	now func() time.Time,
) *JournalModel {
	m := &JournalModel{
		nav:     nav,
		now:     now,
		uid:     journalUID,
		entries: viewport.New(80, 15),
		width:   80,
	}

	j, ok := info.Get(journalUID)
	if !ok {
		return m
	}

	m.found = true
	m.journal = j
	m.kind = classifyJournal(j.Collection.Type)

	kindView := journalKindViews[m.kind]
	m.title = kindView.itemsTitle
	m.panel = kindView.build(j, projections, now())
	m.entries.SetContent(renderEntries(j.Entries, now()))

	return m
}

// Found reports whether the journal was resolved.
func (m *JournalModel) Found() bool {
	return m.found
}

// UID returns the journal UID the model was built for.
func (m *JournalModel) UID() string {
	return m.uid
}

func (m *JournalModel) Init() tea.Cmd {
	return nil
}

func (m *JournalModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.entries.Width = max(msg.Width-4, 20)
		m.entries.Height = max(msg.Height-12, 5)
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, keys.esc) {
			m.nav.GoBack()
			return m, nil
		}
		if !m.found {
			return m, nil
		}

		switch {
		case key.Matches(msg, keys.tab), key.Matches(msg, keys.backtab):
			m.tab = (m.tab + 1) % 2
			return m, nil
		}

		if m.tab == tabItems {
			m.panel.update(msg)
			return m, nil
		}

		var cmd tea.Cmd
		m.entries, cmd = m.entries.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m *JournalModel) View() string {
	if !m.found {
		return renderPage("JOURNAL", "Journal not found!", "esc: back")
	}

	var b strings.Builder
	b.WriteString(m.tabs())
	b.WriteString("\n\n")

	help := "tab: switch tab │ esc: back"
	if m.tab == tabItems {
		b.WriteString(m.panel.view(m.width))
		if h := m.panel.help(); h != "" {
			help = h + " │ " + help
		}
	} else {
		b.WriteString(m.entries.View())
		help = "↑/↓: scroll │ " + help
	}

	title := m.journal.Collection.DisplayName
	if title == "" {
		title = m.journal.Journal.UID
	}
	if m.journal.Journal.ReadOnly {
		title += " (read-only)"
	}

	return renderPage(swatch(m.journal.Collection.Color)+title, b.String(), help)
}

func (m *JournalModel) tabs() string {
	items, entries := inactiveTabStyle, inactiveTabStyle
	if m.tab == tabItems {
		items = activeTabStyle
	} else {
		entries = activeTabStyle
	}
	return items.Render(m.title) + " " + entries.Render(entriesTitle)
}

// renderEntries lists entries oldest first.
func renderEntries(entries []models.SyncEntry, now time.Time) string {
	if len(entries) == 0 {
		return "No entries"
	}

	sorted := make([]models.SyncEntry, len(entries))
	copy(sorted, entries)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].CreatedAt.Before(sorted[j].CreatedAt)
	})

	var b strings.Builder
	for _, e := range sorted {
		created := e.CreatedAt
		b.WriteString(fmt.Sprintf("%-7s %-16s %s\n",
			e.Action,
			relativeTime(&created, now),
			valueOrDash(entryLabel(e))))
	}
	return strings.TrimRight(b.String(), "\n")
}

// entryLabel picks a human label out of raw vCard or iCalendar text.
func entryLabel(e models.SyncEntry) string {
	for _, line := range strings.Split(e.Content, "\n") {
		line = strings.TrimRight(line, "\r")
		for _, prefix := range []string{"FN:", "SUMMARY:"} {
			if strings.HasPrefix(line, prefix) {
				return strings.TrimPrefix(line, prefix)
			}
		}
	}
	return e.UID
}
