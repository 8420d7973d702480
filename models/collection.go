// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// CollectionType is the declared kind of a collection. Known values are
// listed below; any other string is accepted and treated as unsupported by
// type-specific views.
type CollectionType string

const (
	CollectionTypeCalendar    CollectionType = "CALENDAR"
	CollectionTypeAddressBook CollectionType = "ADDRESS_BOOK"
	CollectionTypeTasks       CollectionType = "TASKS"
)

// KnownCollectionTypes lists the collection types the client can create.
var KnownCollectionTypes = []CollectionType{
	CollectionTypeAddressBook,
	CollectionTypeCalendar,
	CollectionTypeTasks,
}

// String implements [fmt.Stringer].
func (t CollectionType) String() string {
	return string(t)
}

// Title returns the human-readable name shown in lists and forms.
func (t CollectionType) Title() string {
	switch t {
	case CollectionTypeCalendar:
		return "Calendar"
	case CollectionTypeAddressBook:
		return "Address Book"
	case CollectionTypeTasks:
		return "Tasks"
	default:
		return string(t)
	}
}

// CollectionMeta is the plaintext metadata of a collection. It is never
// stored or transmitted as is: it is JSON-encoded and encrypted with the
// session key into [CipheredMeta].
type CollectionMeta struct {
	Name        string         `json:"name"`
	Type        CollectionType `json:"type"`
	Description string         `json:"description,omitempty"`
	Color       string         `json:"color,omitempty"`
}

// CipheredMeta is a base64 blob (nonce || ciphertext) of an encrypted
// [CollectionMeta].
type CipheredMeta string

// Collection is the encrypted collection handle shared between the local
// cache, the server and the views.
type Collection struct {
	// UID is the client-generated UUIDv7 identifier.
	UID string `json:"uid"`

	// UserID is the owner of the collection.
	UserID int64 `json:"user_id"`

	// Meta holds the encrypted metadata.
	Meta CipheredMeta `json:"meta"`

	// Version is bumped on every upload and used for conflict resolution.
	Version int64 `json:"version"`

	// BaseVersion is the last server version this copy was based on. It
	// equals Version once the server has accepted the copy. Local only.
	BaseVersion int64 `json:"-"`

	// Hash is computed over the ciphered fields and lets the sync planner
	// detect changes without decrypting.
	Hash string `json:"hash"`

	// Deleted marks a tombstone. Tombstones are uploaded like regular
	// changes and filtered out of listings.
	Deleted bool `json:"deleted"`

	CreatedAt *time.Time `json:"created_at,omitempty"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
}

// TableName returns the name of the local cache table.
// Pending reports whether the copy holds a change the server has not
// accepted yet. Local tombstones are always pending.
func (c Collection) Pending() bool {
	return c.State().Pending()
}

func (c Collection) TableName() string {
	return "collections"
}

// State returns the lightweight sync descriptor of the collection.
func (c Collection) State() CollectionState {
	return CollectionState{
		UID:         c.UID,
		Hash:        c.Hash,
		Version:     c.Version,
		BaseVersion: c.BaseVersion,
		Deleted:     c.Deleted,
		UpdatedAt:   c.UpdatedAt,
	}
}

// CachedCollection pairs an encrypted handle with its decrypted metadata.
// Views render these; the handle is passed back to the collection manager
// on save and delete.
type CachedCollection struct {
	Collection Collection
	Meta       CollectionMeta
}

// UID is a shortcut for the handle identifier.
func (c CachedCollection) UID() string {
	return c.Collection.UID
}
