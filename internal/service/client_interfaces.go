// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-pim-keeper/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/service_mock.go -package=mock

// ClientCryptoService encrypts and decrypts collection metadata and journal
// entry contents with the session DEK. The key must be set via
// SetEncryptionKey before calling any other method.
type ClientCryptoService interface {
	// SetEncryptionKey stores the DEK used for all subsequent operations.
	// It is called once after a successful login.
	SetEncryptionKey(key []byte)

	// EncryptMeta seals the JSON encoding of meta.
	EncryptMeta(meta models.CollectionMeta) (models.CipheredMeta, error)

	// DecryptMeta reverses EncryptMeta.
	DecryptMeta(cipher models.CipheredMeta) (models.CollectionMeta, error)

	// EncryptContent seals a raw journal entry.
	EncryptContent(content string) (string, error)

	// DecryptContent reverses EncryptContent.
	DecryptContent(cipher string) (string, error)

	// ComputeHash returns a deterministic hex digest over the ciphered
	// fields of col, used by the sync planner for change detection.
	ComputeHash(col models.Collection) string
}

// AppInfoService reports the running client version.
type AppInfoService interface {
	// GetAppVersion returns the version shown in the footer.
	GetAppVersion(ctx context.Context) string

	// Describe returns a one-line version string with build metadata.
	Describe() string
}

// ClientAuthService registers and authenticates users. Implementations own
// key derivation and talk to the server adapter.
type ClientAuthService interface {
	// Register derives a KEK from the master password, wraps a fresh DEK
	// with it and creates the account on the server.
	Register(ctx context.Context, user models.User) error

	// Login fetches the user's salt, derives the KEK, proves it with the
	// auth hash, unwraps the DEK and returns the resulting session. The
	// crypto service is keyed with the DEK on success.
	Login(ctx context.Context, user models.User) (models.Session, error)
}

// CollectionManager creates and changes encrypted collections. Changes are
// persisted locally and pushed to the server by Upload.
type CollectionManager interface {
	// Create builds a new collection with a fresh UID and encrypted meta.
	// Nothing is persisted until Upload.
	Create(userID int64, meta models.CollectionMeta) (models.Collection, error)

	// SetMeta validates meta and replaces the encrypted meta of col.
	SetMeta(col models.Collection, meta models.CollectionMeta) (models.Collection, error)

	// Upload bumps the version, recomputes the hash, saves col locally and
	// uploads it. A server failure is returned wrapped in ErrUploadToServer;
	// the local copy is kept and picked up by the next sync.
	Upload(ctx context.Context, col models.Collection) (models.Collection, error)

	// Delete marks col deleted. The tombstone still has to be uploaded.
	Delete(ctx context.Context, col models.Collection) (models.Collection, error)

	// List returns the user's non-deleted collections from the local cache.
	List(ctx context.Context, userID int64) ([]models.Collection, error)
}

// CollectionDecryptor turns an encrypted collection set into the decrypted
// cache the views render.
type CollectionDecryptor interface {
	// DecryptCollections decrypts every collection in order. The first
	// failure aborts the pass.
	DecryptCollections(ctx context.Context, collections []models.Collection) ([]models.CachedCollection, error)
}

// JournalService exposes the decrypted journals of the local cache.
type JournalService interface {
	// SyncInfo returns every journal of the user keyed by journal UID.
	SyncInfo(ctx context.Context, userID int64) (models.SyncInfo, error)
}

// SyncService compares server and client collection states.
type SyncService interface {
	// BuildSyncPlan classifies every collection into exactly one plan
	// bucket, or none when both sides agree.
	BuildSyncPlan(ctx context.Context, serverStates, clientStates []models.CollectionState) (models.SyncPlan, error)
}

// ClientSyncService synchronises the local cache with the server.
type ClientSyncService interface {
	// FullSync fetches server and client states, builds a plan, executes it
	// and refreshes the local journals.
	FullSync(ctx context.Context, userID int64) error

	// ExecutePlan carries out plan for userID.
	ExecutePlan(ctx context.Context, plan models.SyncPlan, userID int64) error
}

// SyncEvent is published by the sync job after every run.
type SyncEvent struct {
	// Collections is the user's current non-deleted local set. It is
	// published even when the run failed.
	Collections []models.Collection
	Err         error
	At          time.Time
}

// SyncListener receives sync events. It is called from the job goroutine.
type SyncListener func(SyncEvent)

// ClientSyncJob runs FullSync in the background.
type ClientSyncJob interface {
	// Start runs one sync immediately, then every interval. Any running job
	// is stopped first.
	Start(ctx context.Context, userID int64, interval time.Duration)

	// Trigger requests an immediate run. It never blocks; requests made
	// while a run is pending are coalesced.
	Trigger()

	// SetListener installs the callback for sync events.
	SetListener(listener SyncListener)

	// Stop cancels the job and waits for it to exit.
	Stop()
}
