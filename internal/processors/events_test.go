// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package processors

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-pim-keeper/models"
)

func vevent(uid, summary, start, end string) string {
	return "BEGIN:VEVENT\r\nUID:" + uid + "\r\nDTSTAMP:20261001T080000Z\r\nSUMMARY:" + summary +
		"\r\nDTSTART:" + start + "\r\nDTEND:" + end + "\r\nEND:VEVENT\r\n"
}

func vcalendar(events ...string) string {
	s := "BEGIN:VCALENDAR\r\nVERSION:2.0\r\nPRODID:-//go-pim-keeper//test//EN\r\n"
	for _, e := range events {
		s += e
	}
	return s + "END:VCALENDAR\r\n"
}

var work = models.CollectionInfo{UID: "cal-1", Type: "CALENDAR", DisplayName: "Work", Color: "#3366FF"}

func TestEntriesToCalendarItemMap(t *testing.T) {
	standup := vevent("ev1", "Standup", "20261005T090000Z", "20261005T091500Z")
	review := vevent("ev2", "Review", "20261006T140000Z", "20261006T150000Z")

	tests := []struct {
		name    string
		entries []models.SyncEntry
		want    map[string]string // uid -> summary
	}{
		{
			name: "several events in one entry",
			entries: []models.SyncEntry{
				{UID: "e1", Action: models.SyncEntryActionAdd, Content: vcalendar(standup, review)},
			},
			want: map[string]string{"ev1": "Standup", "ev2": "Review"},
		},
		{
			name: "change overwrites",
			entries: []models.SyncEntry{
				{UID: "e1", Action: models.SyncEntryActionAdd, Content: vcalendar(standup)},
				{UID: "e2", Action: models.SyncEntryActionChange, Content: vcalendar(vevent("ev1", "Daily", "20261005T090000Z", "20261005T091500Z"))},
			},
			want: map[string]string{"ev1": "Daily"},
		},
		{
			name: "delete removes",
			entries: []models.SyncEntry{
				{UID: "e1", Action: models.SyncEntryActionAdd, Content: vcalendar(standup)},
				{UID: "e2", Action: models.SyncEntryActionAdd, Content: vcalendar(review)},
				{UID: "e3", Action: models.SyncEntryActionDelete, Content: vcalendar(standup)},
			},
			want: map[string]string{"ev2": "Review"},
		},
		{
			name: "garbage skipped",
			entries: []models.SyncEntry{
				{UID: "e1", Action: models.SyncEntryActionAdd, Content: "BEGIN:VEVENT"},
				{UID: "e2", Action: models.SyncEntryActionAdd, Content: vcalendar(review)},
			},
			want: map[string]string{"ev2": "Review"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := EntriesToCalendarItemMap(work, tt.entries)

			summaries := make(map[string]string, len(got))
			for uid, item := range got {
				assert.Equal(t, uid, item.UID)
				assert.Equal(t, "cal-1", item.CollectionUID)
				assert.Equal(t, "#3366FF", item.Color)
				summaries[uid] = item.Summary
			}
			assert.Equal(t, tt.want, summaries)
		})
	}
}

func TestEntriesToCalendarItemMap_Times(t *testing.T) {
	timed := vevent("ev1", "Standup", "20261005T090000Z", "20261005T091500Z")
	allDay := "BEGIN:VEVENT\r\nUID:ev2\r\nDTSTAMP:20261001T080000Z\r\nSUMMARY:Holiday\r\n" +
		"DTSTART;VALUE=DATE:20261012\r\nDTEND;VALUE=DATE:20261013\r\nLOCATION:Home\r\nEND:VEVENT\r\n"

	got := EntriesToCalendarItemMap(work, []models.SyncEntry{
		{UID: "e1", Action: models.SyncEntryActionAdd, Content: vcalendar(timed, allDay)},
	})
	require.Len(t, got, 2)

	ev1 := got["ev1"]
	assert.Equal(t, time.Date(2026, 10, 5, 9, 0, 0, 0, time.UTC), ev1.Start.UTC())
	assert.Equal(t, time.Date(2026, 10, 5, 9, 15, 0, 0, time.UTC), ev1.End.UTC())
	assert.False(t, ev1.AllDay)

	ev2 := got["ev2"]
	assert.True(t, ev2.AllDay)
	assert.Equal(t, "Home", ev2.Location)
	assert.Equal(t, 12, ev2.Start.Day())
}

func TestEntriesToCalendarItemMap_Empty(t *testing.T) {
	assert.Empty(t, EntriesToCalendarItemMap(work, nil))
}
