// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"slices"
	"strings"

	"github.com/MKhiriev/go-pim-keeper/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type formAction int

const (
	formNone formAction = iota
	formSubmit
	formCancel
)

const (
	fieldName = iota
	fieldColor
	fieldDescription
	fieldType
)

// collectionForm edits the plaintext metadata of one collection. The type is
// only selectable while creating.
type collectionForm struct {
	existing *models.CachedCollection

	inputs  []textinput.Model
	types   []models.CollectionType
	typeIdx int
	focus   int

	submitting bool
	errMsg     string
}

func newCollectionForm(existing *models.CachedCollection) *collectionForm {
	inputs := make([]textinput.Model, 3)

	inputs[fieldName] = textinput.New()
	inputs[fieldName].Placeholder = "name"
	inputs[fieldName].CharLimit = 128
	inputs[fieldName].Width = 40

	inputs[fieldColor] = textinput.New()
	inputs[fieldColor].Placeholder = "#RRGGBB"
	inputs[fieldColor].CharLimit = 7
	inputs[fieldColor].Width = 10

	inputs[fieldDescription] = textinput.New()
	inputs[fieldDescription].Placeholder = "description (markdown)"
	inputs[fieldDescription].Width = 60

	f := &collectionForm{
		existing: existing,
		inputs:   inputs,
		types:    slices.Clone(models.KnownCollectionTypes),
	}

	if existing != nil {
		f.inputs[fieldName].SetValue(existing.Meta.Name)
		f.inputs[fieldColor].SetValue(existing.Meta.Color)
		f.inputs[fieldDescription].SetValue(existing.Meta.Description)

		idx := slices.Index(f.types, existing.Meta.Type)
		if idx < 0 {
			f.types = append(f.types, existing.Meta.Type)
			idx = len(f.types) - 1
		}
		f.typeIdx = idx
	}

	f.inputs[fieldName].Focus()
	return f
}

func (f *collectionForm) isNew() bool {
	return f.existing == nil
}

func (f *collectionForm) meta() models.CollectionMeta {
	return models.CollectionMeta{
		Name:        strings.TrimSpace(f.inputs[fieldName].Value()),
		Type:        f.types[f.typeIdx],
		Description: strings.TrimSpace(f.inputs[fieldDescription].Value()),
		Color:       strings.TrimSpace(f.inputs[fieldColor].Value()),
	}
}

func (f *collectionForm) fieldCount() int {
	if f.isNew() {
		return len(f.inputs) + 1
	}
	return len(f.inputs)
}

func (f *collectionForm) update(msg tea.Msg) (formAction, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			return formCancel, nil
		case key.Matches(keyMsg, keys.enter), key.Matches(keyMsg, keys.save):
			if f.submitting {
				return formNone, nil
			}
			return formSubmit, nil
		case key.Matches(keyMsg, keys.tab), key.Matches(keyMsg, keys.down):
			f.setFocus((f.focus + 1) % f.fieldCount())
			return formNone, nil
		case key.Matches(keyMsg, keys.backtab), key.Matches(keyMsg, keys.up):
			f.setFocus((f.focus - 1 + f.fieldCount()) % f.fieldCount())
			return formNone, nil
		}

		if f.focus == fieldType {
			switch {
			case key.Matches(keyMsg, keys.left):
				f.typeIdx = (f.typeIdx - 1 + len(f.types)) % len(f.types)
			case key.Matches(keyMsg, keys.right):
				f.typeIdx = (f.typeIdx + 1) % len(f.types)
			}
			return formNone, nil
		}
	}

	if f.focus == fieldType {
		return formNone, nil
	}

	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	return formNone, cmd
}

func (f *collectionForm) setFocus(i int) {
	if f.focus < len(f.inputs) {
		f.inputs[f.focus].Blur()
	}
	f.focus = i
	if f.focus < len(f.inputs) {
		f.inputs[f.focus].Focus()
	}
}

func (f *collectionForm) view() string {
	var b strings.Builder
	b.WriteString("Field        │ Value\n")
	b.WriteString("─────────────┼──────────────────────────────────────────\n")
	b.WriteString("Name         │ [")
	b.WriteString(f.inputs[fieldName].View())
	b.WriteString("]\n")
	b.WriteString("Color        │ [")
	b.WriteString(f.inputs[fieldColor].View())
	b.WriteString("] ")
	b.WriteString(swatch(strings.TrimSpace(f.inputs[fieldColor].Value())))
	b.WriteString("\n")
	b.WriteString("Description  │ [")
	b.WriteString(f.inputs[fieldDescription].View())
	b.WriteString("]\n")
	b.WriteString("Type         │ ")
	b.WriteString(f.typeSelector())
	b.WriteString("\n")

	if f.submitting {
		b.WriteString("\n[Saving...]\n")
	} else {
		b.WriteString("\n[Save]\n")
	}

	if f.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("Error: " + f.errMsg))
		b.WriteString("\n")
	}

	return strings.TrimRight(b.String(), "\n")
}

func (f *collectionForm) typeSelector() string {
	title := f.types[f.typeIdx].Title()
	if !f.isNew() {
		return title
	}
	if f.focus == fieldType {
		return selectedStyle.Render("< " + title + " >")
	}
	return "  " + title
}
