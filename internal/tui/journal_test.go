// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-pim-keeper/internal/router"
	"github.com/MKhiriev/go-pim-keeper/models"
)

var journalNow = time.Date(2026, 2, 10, 12, 0, 0, 0, time.UTC)

// countingProjections считает вызовы проекций и запоминает переданные записи.
type countingProjections struct {
	contactCalls int
	eventCalls   int
	entries      []models.SyncEntry
}

func (c *countingProjections) projections() journalProjections {
	return journalProjections{
		contacts: func(_ models.CollectionInfo, entries []models.SyncEntry) models.ContactItemMap {
			c.contactCalls++
			c.entries = entries
			return models.ContactItemMap{
				"c1": {UID: "c1", FullName: "Ada Lovelace", Emails: []string{"ada@example.com"}},
			}
		},
		events: func(_ models.CollectionInfo, entries []models.SyncEntry) models.EventItemMap {
			c.eventCalls++
			c.entries = entries
			return models.EventItemMap{
				"e1": {
					UID:     "e1",
					Summary: "Standup",
					Start:   time.Date(2026, 2, 10, 9, 0, 0, 0, time.UTC),
					End:     time.Date(2026, 2, 10, 9, 30, 0, 0, time.UTC),
				},
			}
		},
	}
}

func syncInfoWith(collectionType string) models.SyncInfo {
	return models.SyncInfo{
		"j1": {
			Journal:    models.Journal{UID: "j1", Version: 1},
			Collection: models.CollectionInfo{UID: "j1", Type: collectionType, DisplayName: "Personal"},
			Entries: []models.SyncEntry{
				{UID: "e2", Action: models.SyncEntryActionChange, Content: "BEGIN:VCALENDAR\r\nSUMMARY:Second\r\nEND:VCALENDAR", CreatedAt: journalNow.Add(-time.Hour)},
				{UID: "e1", Action: models.SyncEntryActionAdd, Content: "BEGIN:VCALENDAR\r\nSUMMARY:First\r\nEND:VCALENDAR", CreatedAt: journalNow.Add(-48 * time.Hour)},
			},
		},
	}
}

func newTestJournal(uid string, info models.SyncInfo, p *countingProjections) (*JournalModel, *router.History) {
	nav := router.NewHistory("/collections")
	nav.Push("/journals/" + uid)
	return newJournalModel(uid, info, nav, p.projections(), func() time.Time { return journalNow }), nav
}

func TestJournal_Classification(t *testing.T) {
	tests := []struct {
		name         string
		typ          string
		kind         journalKind
		title        string
		wantContent  string
		contactCalls int
		eventCalls   int
	}{
		{"calendar", "CALENDAR", journalKindCalendar, "Events", "Standup", 0, 1},
		{"address book", "ADDRESS_BOOK", journalKindAddressBook, "Contacts", "Ada Lovelace", 1, 0},
		{"tasks are unsupported", "TASKS", journalKindUnsupported, "Items", "Unsupported type", 0, 0},
		{"unknown type", "JOURNAL_V2", journalKindUnsupported, "Items", "Unsupported type", 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := &countingProjections{}
			info := syncInfoWith(tt.typ)
			m, _ := newTestJournal("j1", info, p)

			// несколько кадров не должны повторять проекцию
			view := m.View()
			_ = m.View()

			require.True(t, m.Found())
			assert.Equal(t, tt.kind, m.kind)
			assert.Contains(t, view, tt.title)
			assert.Contains(t, view, tt.wantContent)
			assert.Contains(t, view, "Journal Entries")
			assert.Equal(t, tt.contactCalls, p.contactCalls)
			assert.Equal(t, tt.eventCalls, p.eventCalls)
			if tt.contactCalls+tt.eventCalls > 0 {
				assert.Equal(t, info["j1"].Entries, p.entries)
			}
		})
	}
}

func TestJournal_NotFound(t *testing.T) {
	p := &countingProjections{}
	m, nav := newTestJournal("missing", syncInfoWith("CALENDAR"), p)

	assert.False(t, m.Found())
	assert.Contains(t, m.View(), "Journal not found!")
	assert.Zero(t, p.contactCalls+p.eventCalls)

	// клавиши на ненайденном журнале не паникуют
	m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, "/collections", nav.Current())
}

func TestJournal_NilSyncInfo(t *testing.T) {
	m, _ := newTestJournal("j1", nil, &countingProjections{})
	assert.Contains(t, m.View(), "Journal not found!")
}

func TestJournal_EntriesTabIsChronological(t *testing.T) {
	m, _ := newTestJournal("j1", syncInfoWith("TASKS"), &countingProjections{})

	m.Update(tea.KeyMsg{Type: tea.KeyTab})
	view := m.View()

	first := strings.Index(view, "First")
	second := strings.Index(view, "Second")
	require.NotEqual(t, -1, first)
	require.NotEqual(t, -1, second)
	assert.Less(t, first, second)
	assert.Contains(t, view, "2 days ago")
	assert.NotContains(t, view, "Unsupported type")

	m.Update(tea.KeyMsg{Type: tea.KeyTab})
	assert.Contains(t, m.View(), "Unsupported type")
}

func TestClassifyJournal(t *testing.T) {
	assert.Equal(t, journalKindCalendar, classifyJournal("CALENDAR"))
	assert.Equal(t, journalKindAddressBook, classifyJournal("ADDRESS_BOOK"))
	assert.Equal(t, journalKindUnsupported, classifyJournal("calendar"))
	assert.Equal(t, journalKindUnsupported, classifyJournal(""))
}

func TestEntryLabel(t *testing.T) {
	assert.Equal(t, "Ada", entryLabel(models.SyncEntry{UID: "x", Content: "BEGIN:VCARD\r\nFN:Ada\r\nEND:VCARD"}))
	assert.Equal(t, "x", entryLabel(models.SyncEntry{UID: "x", Content: "garbage"}))
}
