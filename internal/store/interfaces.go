// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/MKhiriev/go-pim-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// CollectionRepository is the local cache of encrypted collections.
type CollectionRepository interface {
	// SaveCollections inserts or replaces collections by UID.
	SaveCollections(ctx context.Context, collections ...models.Collection) error
	// GetCollection returns one collection, including tombstones.
	GetCollection(ctx context.Context, userID int64, uid string) (models.Collection, error)
	// GetCollections returns the collections with the given UIDs, including tombstones.
	GetCollections(ctx context.Context, userID int64, uids []string) ([]models.Collection, error)
	// GetAllCollections returns every non-deleted collection of the user.
	GetAllCollections(ctx context.Context, userID int64) ([]models.Collection, error)
	// GetAllStates returns the sync descriptors of every collection, tombstones included.
	GetAllStates(ctx context.Context, userID int64) ([]models.CollectionState, error)
	// DeleteCollections removes collections from the cache.
	DeleteCollections(ctx context.Context, userID int64, uids ...string) error
}

// JournalRepository is the local cache of encrypted journals.
type JournalRepository interface {
	// SaveJournals replaces each journal and its entries.
	SaveJournals(ctx context.Context, userID int64, journals ...models.EncryptedJournal) error
	// GetJournals returns every journal of the user with entries in order.
	GetJournals(ctx context.Context, userID int64) ([]models.EncryptedJournal, error)
}
