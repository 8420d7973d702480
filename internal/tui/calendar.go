// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/MKhiriev/go-pim-keeper/models"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// calendarDay describes a single day cell of the month grid.
type calendarDay struct {
	Day        int
	HasEntry   bool
	IsToday    bool
	IsSelected bool
}

// renderMonth produces a Sunday-first month grid.
func renderMonth(month time.Time, days []calendarDay) string {
	if month.IsZero() {
		return ""
	}

	first := time.Date(month.Year(), month.Month(), 1, 0, 0, 0, 0, month.Location())
	daysInMonth := daysIn(month)

	byDay := make(map[int]calendarDay, len(days))
	for _, d := range days {
		if d.Day >= 1 && d.Day <= daysInMonth {
			byDay[d.Day] = d
		}
	}

	lines := []string{calendarHeaderStyle.Render("Su Mo Tu We Th Fr Sa")}

	startOffset := int(first.Weekday())
	rows := (startOffset + daysInMonth + 6) / 7

	for row := 0; row < rows; row++ {
		cells := make([]string, 0, 7)
		for col := 0; col < 7; col++ {
			day := row*7 + col - startOffset + 1
			if day < 1 || day > daysInMonth {
				cells = append(cells, calendarEmptyStyle.Render("  "))
				continue
			}
			cells = append(cells, renderDay(byDay[day], day))
		}
		lines = append(lines, strings.Join(cells, " "))
	}

	return strings.Join(lines, "\n")
}

func renderDay(info calendarDay, day int) string {
	text := fmt.Sprintf("%2d", day)

	style := calendarEmptyStyle
	if info.HasEntry {
		style = calendarEntryStyle
	}
	if info.IsToday {
		style = style.Inherit(calendarTodayStyle)
	}
	if info.IsSelected {
		style = style.Inherit(calendarSelectedStyle)
	}
	return style.Render(text)
}

func daysIn(month time.Time) int {
	first := time.Date(month.Year(), month.Month(), 1, 0, 0, 0, 0, month.Location())
	return first.AddDate(0, 1, -1).Day()
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// calendarPanel shows a month grid and the events of the selected day.
type calendarPanel struct {
	events   []models.EventItem
	selected time.Time
	today    time.Time
}

func newCalendarPanel(items models.EventItemMap, now time.Time) *calendarPanel {
	events := make([]models.EventItem, 0, len(items))
	for _, e := range items {
		events = append(events, e)
	}
	sort.Slice(events, func(i, j int) bool {
		if events[i].Start.Equal(events[j].Start) {
			return events[i].UID < events[j].UID
		}
		return events[i].Start.Before(events[j].Start)
	})

	now = now.UTC()
	return &calendarPanel{
		events:   events,
		selected: time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC),
		today:    now,
	}
}

func (p *calendarPanel) update(msg tea.KeyMsg) {
	switch {
	case key.Matches(msg, keys.left):
		p.selected = p.selected.AddDate(0, 0, -1)
	case key.Matches(msg, keys.right):
		p.selected = p.selected.AddDate(0, 0, 1)
	case key.Matches(msg, keys.up):
		p.selected = p.selected.AddDate(0, 0, -7)
	case key.Matches(msg, keys.down):
		p.selected = p.selected.AddDate(0, 0, 7)
	case key.Matches(msg, keys.prevPage):
		p.selected = p.selected.AddDate(0, -1, 0)
	case key.Matches(msg, keys.nextPage):
		p.selected = p.selected.AddDate(0, 1, 0)
	}
}

// occurs reports whether e covers day. The end of an event is exclusive.
func occurs(e models.EventItem, day time.Time) bool {
	start := time.Date(e.Start.Year(), e.Start.Month(), e.Start.Day(), 0, 0, 0, 0, time.UTC)
	if sameDay(start, day) {
		return true
	}
	if e.End.IsZero() || !e.End.After(e.Start) {
		return false
	}
	return day.After(start) && day.Before(e.End)
}

func (p *calendarPanel) eventsOn(day time.Time) []models.EventItem {
	var out []models.EventItem
	for _, e := range p.events {
		if occurs(e, day) {
			out = append(out, e)
		}
	}
	return out
}

func (p *calendarPanel) view(_ int) string {
	month := time.Date(p.selected.Year(), p.selected.Month(), 1, 0, 0, 0, 0, time.UTC)

	var days []calendarDay
	for d := 1; d <= daysIn(month); d++ {
		day := month.AddDate(0, 0, d-1)
		days = append(days, calendarDay{
			Day:        d,
			HasEntry:   len(p.eventsOn(day)) > 0,
			IsToday:    sameDay(day, p.today),
			IsSelected: sameDay(day, p.selected),
		})
	}

	var b strings.Builder
	b.WriteString(month.Format("January 2006"))
	b.WriteString("\n")
	b.WriteString(renderMonth(month, days))
	b.WriteString("\n\n")
	b.WriteString(p.selected.Format("Mon, 02 Jan 2006"))
	b.WriteString("\n")

	events := p.eventsOn(p.selected)
	if len(events) == 0 {
		b.WriteString(helpStyle.Render("No events"))
	}
	for _, e := range events {
		b.WriteString(swatchOrSpace(e.Color))
		if e.AllDay {
			b.WriteString("all day      ")
		} else {
			b.WriteString(e.Start.Format("15:04"))
			b.WriteString("-")
			b.WriteString(valueOrDash(formatEnd(e.End)))
			b.WriteString("  ")
		}
		b.WriteString(valueOrDash(e.Summary))
		if e.Location != "" {
			b.WriteString(" @ ")
			b.WriteString(e.Location)
		}
		b.WriteString("\n")
	}

	b.WriteString(fmt.Sprintf("\n%d events in journal", len(p.events)))
	return b.String()
}

func (p *calendarPanel) help() string {
	return "←/→/↑/↓: day │ [/]: month"
}

func formatEnd(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("15:04")
}
