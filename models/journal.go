// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// SyncEntryAction is the kind of change recorded by a journal entry.
type SyncEntryAction string

const (
	SyncEntryActionAdd    SyncEntryAction = "ADD"
	SyncEntryActionChange SyncEntryAction = "CHANGE"
	SyncEntryActionDelete SyncEntryAction = "DELETE"
)

// Journal identifies a legacy per-collection sync log.
type Journal struct {
	UID      string `json:"uid"`
	Version  int64  `json:"version"`
	Owner    string `json:"owner"`
	ReadOnly bool   `json:"read_only"`
}

// CollectionInfo describes the collection a journal belongs to. Type is kept
// as a raw string since journals may carry types this client does not know.
type CollectionInfo struct {
	UID         string `json:"uid"`
	Type        string `json:"type"`
	DisplayName string `json:"display_name"`
	Description string `json:"description,omitempty"`
	Color       string `json:"color,omitempty"`
}

// SyncEntry is one recorded change. Content is raw vCard or iCalendar text.
type SyncEntry struct {
	UID       string          `json:"uid"`
	Action    SyncEntryAction `json:"action"`
	Content   string          `json:"content"`
	CreatedAt time.Time       `json:"created_at"`
}

// SyncJournal is a decrypted journal with its ordered entries.
type SyncJournal struct {
	Journal    Journal        `json:"journal"`
	Collection CollectionInfo `json:"collection"`
	Entries    []SyncEntry    `json:"entries"`
}

// SyncInfo maps journal UID to its decrypted journal.
type SyncInfo map[string]SyncJournal

// Get looks up a journal by UID. A nil map is a valid empty SyncInfo.
func (s SyncInfo) Get(uid string) (SyncJournal, bool) {
	j, ok := s[uid]
	return j, ok
}

// EncryptedEntry is the stored and transported form of a [SyncEntry].
// Content is a base64 AES-GCM blob of the raw entry text.
type EncryptedEntry struct {
	UID       string          `json:"uid"`
	Action    SyncEntryAction `json:"action"`
	Content   string          `json:"content"`
	CreatedAt time.Time       `json:"created_at"`
}

// EncryptedJournal is the stored and transported form of a [SyncJournal].
type EncryptedJournal struct {
	Journal    Journal          `json:"journal"`
	UserID     int64            `json:"user_id"`
	Collection CollectionInfo   `json:"collection"`
	Entries    []EncryptedEntry `json:"entries"`
}

// TableName returns the name of the local journal table.
func (j EncryptedJournal) TableName() string {
	return "journals"
}
