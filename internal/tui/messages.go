// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"time"

	"github.com/MKhiriev/go-pim-keeper/internal/service"
	"github.com/MKhiriev/go-pim-keeper/models"
)

// NavigateTo switches the login flow to another page.
type NavigateTo struct {
	Page    string
	Payload any
}

// LoginResult is produced by the login form.
type LoginResult struct {
	Session models.Session
	Err     error
}

// RegisterResult is produced by the registration form.
type RegisterResult struct {
	Username string
	Err      error
}

// RegisterSuccessNotice is shown on the menu after a registration.
type RegisterSuccessNotice struct {
	Username string
}

// collectionsChangedMsg carries a new encrypted source set.
type collectionsChangedMsg struct {
	collections []models.Collection
}

type collectionsDecryptedMsg struct {
	seq   uint64
	cache []models.CachedCollection
	err   error
}

type collectionSavedMsg struct {
	col models.Collection
	err error
}

type collectionDeletedMsg struct {
	col models.Collection
	err error
}

type collectionsReloadedMsg struct {
	collections []models.Collection
	err         error
}

type journalsLoadedMsg struct {
	info models.SyncInfo
	err  error
}

type syncEventMsg struct {
	event service.SyncEvent
}

type syncRequestedMsg struct{}

type copiedMsg struct {
	uid string
	err error
}

type clearStatusMsg struct {
	at time.Time
}
