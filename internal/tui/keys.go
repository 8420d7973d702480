// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up       key.Binding
	down     key.Binding
	left     key.Binding
	right    key.Binding
	prevPage key.Binding
	nextPage key.Binding
	enter    key.Binding
	esc      key.Binding
	tab      key.Binding
	backtab  key.Binding
	quit     key.Binding
	logout   key.Binding
	newItem  key.Binding
	importIt key.Binding
	edit     key.Binding
	members  key.Binding
	journal  key.Binding
	delete   key.Binding
	copy     key.Binding
	sync     key.Binding
	retry    key.Binding
	save     key.Binding
	yes      key.Binding
	no       key.Binding
	version  key.Binding
}

var keys = keyMap{
	up:       key.NewBinding(key.WithKeys("up")),
	down:     key.NewBinding(key.WithKeys("down")),
	left:     key.NewBinding(key.WithKeys("left")),
	right:    key.NewBinding(key.WithKeys("right")),
	prevPage: key.NewBinding(key.WithKeys("[", "pgup")),
	nextPage: key.NewBinding(key.WithKeys("]", "pgdown")),
	enter:    key.NewBinding(key.WithKeys("enter")),
	esc:      key.NewBinding(key.WithKeys("esc")),
	tab:      key.NewBinding(key.WithKeys("tab")),
	backtab:  key.NewBinding(key.WithKeys("shift+tab")),
	quit:     key.NewBinding(key.WithKeys("q")),
	logout:   key.NewBinding(key.WithKeys("L")),
	newItem:  key.NewBinding(key.WithKeys("n")),
	importIt: key.NewBinding(key.WithKeys("i")),
	edit:     key.NewBinding(key.WithKeys("e")),
	members:  key.NewBinding(key.WithKeys("m")),
	journal:  key.NewBinding(key.WithKeys("j")),
	delete:   key.NewBinding(key.WithKeys("d")),
	copy:     key.NewBinding(key.WithKeys("c")),
	sync:     key.NewBinding(key.WithKeys("s")),
	retry:    key.NewBinding(key.WithKeys("r")),
	save:     key.NewBinding(key.WithKeys("ctrl+s")),
	yes:      key.NewBinding(key.WithKeys("y")),
	no:       key.NewBinding(key.WithKeys("n")),
	version:  key.NewBinding(key.WithKeys("v")),
}
