// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type credentialField struct {
	label       string
	placeholder string
	secret      bool
	limit       int
}

var (
	loginField    = credentialField{label: "Login", placeholder: "login", limit: 20}
	passwordField = credentialField{label: "Password", placeholder: "master password", secret: true, limit: 256}
	repeatField   = credentialField{label: "Repeat password", placeholder: "repeat password", secret: true, limit: 256}
)

// credentialsForm is the input table shared by the login and register pages.
type credentialsForm struct {
	fields []credentialField
	inputs []textinput.Model
	focus  int

	submitting bool
	errMsg     string
}

func newCredentialsForm(fields ...credentialField) credentialsForm {
	f := credentialsForm{fields: fields, inputs: make([]textinput.Model, len(fields))}
	for i, field := range fields {
		in := textinput.New()
		in.Placeholder = field.placeholder
		in.CharLimit = field.limit
		in.Width = 40
		if field.secret {
			in.EchoMode = textinput.EchoPassword
			in.EchoCharacter = '*'
		}
		f.inputs[i] = in
	}
	f.inputs[0].Focus()
	return f
}

func (f *credentialsForm) value(i int) string {
	if f.fields[i].secret {
		return f.inputs[i].Value()
	}
	return strings.TrimSpace(f.inputs[i].Value())
}

// update moves focus and edits the focused input. It returns formSubmit
// on enter, formCancel on esc.
func (f *credentialsForm) update(msg tea.Msg) (formAction, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			f.submitting = false
			f.errMsg = ""
			return formCancel, nil
		case key.Matches(keyMsg, keys.tab):
			f.setFocus(f.focus + 1)
			return formNone, nil
		case key.Matches(keyMsg, keys.backtab):
			f.setFocus(f.focus - 1)
			return formNone, nil
		case key.Matches(keyMsg, keys.enter):
			if f.submitting {
				return formNone, nil
			}
			return formSubmit, nil
		}
	}

	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	return formNone, cmd
}

func (f *credentialsForm) setFocus(i int) {
	n := len(f.inputs)
	f.inputs[f.focus].Blur()
	f.focus = (i%n + n) % n
	f.inputs[f.focus].Focus()
}

func (f *credentialsForm) reset() {
	for i := range f.inputs {
		f.inputs[i].SetValue("")
	}
	f.setFocus(0)
	f.submitting = false
	f.errMsg = ""
}

func (f *credentialsForm) view(title, action, busy string) string {
	width := 0
	for _, field := range f.fields {
		width = max(width, len(field.label))
	}
	width += 2

	var b strings.Builder
	fmt.Fprintf(&b, "%-*s│ Value\n", width, "Field")
	b.WriteString(strings.Repeat("─", width) + "┼" + strings.Repeat("─", 42) + "\n")
	for i, field := range f.fields {
		fmt.Fprintf(&b, "%-*s│ [%s]\n", width, field.label, f.inputs[i].View())
	}

	label := action
	if f.submitting {
		label = busy
	}
	b.WriteString("\n[" + label + "]")

	if f.errMsg != "" {
		b.WriteString("\n\n" + errorStyle.Render("Error: "+f.errMsg))
	}

	return renderPage(title, b.String(), "esc: back │ tab: next field │ enter: submit")
}
