// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import "github.com/charmbracelet/lipgloss"

var (
	titleStyle      = lipgloss.NewStyle().Bold(true)
	helpStyle       = lipgloss.NewStyle().Faint(true)
	errorStyle      = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	statusStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	selectedStyle   = lipgloss.NewStyle().Bold(true)
	overlayBoxStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(1, 2)

	activeTabStyle   = lipgloss.NewStyle().Bold(true).Underline(true).Padding(0, 1)
	inactiveTabStyle = lipgloss.NewStyle().Faint(true).Padding(0, 1)

	calendarHeaderStyle   = lipgloss.NewStyle().Faint(true)
	calendarEmptyStyle    = lipgloss.NewStyle()
	calendarEntryStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	calendarTodayStyle    = lipgloss.NewStyle().Underline(true)
	calendarSelectedStyle = lipgloss.NewStyle().Reverse(true)
)

// swatch renders a colored block for a #RRGGBB color, or nothing.
func swatch(color string) string {
	if color == "" {
		return ""
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(color)).Render("■") + " "
}
