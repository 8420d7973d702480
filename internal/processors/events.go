// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package processors

import (
	"strings"
	"time"

	"github.com/emersion/go-ical"

	"github.com/MKhiriev/go-pim-keeper/models"
)

// EntriesToCalendarItemMap replays iCalendar entries into the event set of
// the calendar described by info. Every VEVENT of an entry is applied.
// Times without a zone are read as UTC.
func EntriesToCalendarItemMap(info models.CollectionInfo, entries []models.SyncEntry) models.EventItemMap {
	items := make(models.EventItemMap)

	for _, entry := range entries {
		cal, err := ical.NewDecoder(strings.NewReader(entry.Content)).Decode()
		if err != nil {
			continue
		}

		for _, event := range cal.Events() {
			uid := propText(event.Props, ical.PropUID)
			if uid == "" {
				uid = entry.UID
			}

			if entry.Action == models.SyncEntryActionDelete {
				delete(items, uid)
				continue
			}

			item, ok := eventItem(event)
			if !ok {
				continue
			}
			item.UID = uid
			item.CollectionUID = info.UID
			item.Color = info.Color
			items[uid] = item
		}
	}

	return items
}

func eventItem(event ical.Event) (models.EventItem, bool) {
	start, err := event.DateTimeStart(time.UTC)
	if err != nil || start.IsZero() {
		return models.EventItem{}, false
	}

	end, err := event.DateTimeEnd(time.UTC)
	if err != nil || end.Before(start) {
		end = start
	}

	allDay := false
	if prop := event.Props.Get(ical.PropDateTimeStart); prop != nil && prop.ValueType() == ical.ValueDate {
		allDay = true
	}

	return models.EventItem{
		Summary:     propText(event.Props, ical.PropSummary),
		Location:    propText(event.Props, ical.PropLocation),
		Description: propText(event.Props, ical.PropDescription),
		Start:       start,
		End:         end,
		AllDay:      allDay,
	}, true
}

func propText(props ical.Props, name string) string {
	text, err := props.Text(name)
	if err != nil {
		return ""
	}
	return text
}
