// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package processors

import (
	"errors"
	"io"
	"strings"

	"github.com/emersion/go-vcard"

	"github.com/MKhiriev/go-pim-keeper/models"
)

// EntriesToItemMap replays vCard entries into the contact set of the
// collection described by info.
func EntriesToItemMap(info models.CollectionInfo, entries []models.SyncEntry) models.ContactItemMap {
	items := make(models.ContactItemMap)

	for _, entry := range entries {
		contacts, err := parseContacts(entry.Content)
		if err != nil {
			continue
		}

		for _, card := range contacts {
			uid := card.Value(vcard.FieldUID)
			if uid == "" {
				uid = entry.UID
			}

			if entry.Action == models.SyncEntryActionDelete {
				delete(items, uid)
				continue
			}

			items[uid] = models.ContactItem{
				UID:           uid,
				CollectionUID: info.UID,
				FullName:      contactName(card),
				Emails:        card.Values(vcard.FieldEmail),
				Phones:        card.Values(vcard.FieldTelephone),
				Org:           strings.ReplaceAll(card.PreferredValue(vcard.FieldOrganization), ";", ", "),
			}
		}
	}

	return items
}

func parseContacts(content string) ([]vcard.Card, error) {
	dec := vcard.NewDecoder(strings.NewReader(content))

	var cards []vcard.Card
	for {
		card, err := dec.Decode()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		cards = append(cards, card)
	}

	if len(cards) == 0 {
		return nil, io.ErrUnexpectedEOF
	}
	return cards, nil
}

func contactName(card vcard.Card) string {
	if fn := card.PreferredValue(vcard.FieldFormattedName); fn != "" {
		return fn
	}
	if n := card.Name(); n != nil {
		return strings.TrimSpace(n.GivenName + " " + n.FamilyName)
	}
	return ""
}
