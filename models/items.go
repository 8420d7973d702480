// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// ContactItem is the display projection of a vCard entry.
type ContactItem struct {
	UID           string
	CollectionUID string
	FullName      string
	Emails        []string
	Phones        []string
	Org           string
}

// ContactItemMap maps contact UID to its projection.
type ContactItemMap map[string]ContactItem

// EventItem is the display projection of an iCalendar VEVENT.
type EventItem struct {
	UID           string
	CollectionUID string
	Summary       string
	Location      string
	Description   string
	Start         time.Time
	End           time.Time
	AllDay        bool

	// Color is the calendar color, "" when unset.
	Color string
}

// EventItemMap maps event UID to its projection.
type EventItemMap map[string]EventItem
