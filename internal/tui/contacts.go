// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/MKhiriev/go-pim-keeper/models"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// contactsPanel lists the contacts of an address book with the details of
// the selected one.
type contactsPanel struct {
	contacts []models.ContactItem
	cursor   int
}

func newContactsPanel(items models.ContactItemMap) *contactsPanel {
	contacts := make([]models.ContactItem, 0, len(items))
	for _, c := range items {
		contacts = append(contacts, c)
	}
	sort.Slice(contacts, func(i, j int) bool {
		a, b := strings.ToLower(contacts[i].FullName), strings.ToLower(contacts[j].FullName)
		if a == b {
			return contacts[i].UID < contacts[j].UID
		}
		return a < b
	})
	return &contactsPanel{contacts: contacts}
}

func (p *contactsPanel) update(msg tea.KeyMsg) {
	switch {
	case key.Matches(msg, keys.up):
		if p.cursor > 0 {
			p.cursor--
		}
	case key.Matches(msg, keys.down):
		if p.cursor < len(p.contacts)-1 {
			p.cursor++
		}
	}
}

func (p *contactsPanel) view(width int) string {
	if len(p.contacts) == 0 {
		return "No contacts"
	}

	nameWidth := min(max(width/2, 20), 40)

	var b strings.Builder
	for i, c := range p.contacts {
		cursor := " "
		name := fitText(valueOrDash(c.FullName), nameWidth)
		if i == p.cursor {
			cursor = ">"
			name = selectedStyle.Render(name)
		}
		b.WriteString(cursor)
		b.WriteString(" ")
		b.WriteString(name)
		b.WriteString("\n")
	}

	c := p.contacts[p.cursor]
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("Name:   %s\n", valueOrDash(c.FullName)))
	b.WriteString(fmt.Sprintf("Email:  %s\n", valueOrDash(strings.Join(c.Emails, ", "))))
	b.WriteString(fmt.Sprintf("Phone:  %s\n", valueOrDash(strings.Join(c.Phones, ", "))))
	b.WriteString(fmt.Sprintf("Org:    %s", valueOrDash(c.Org)))

	return b.String()
}

func (p *contactsPanel) help() string {
	return "↑/↓: move"
}
