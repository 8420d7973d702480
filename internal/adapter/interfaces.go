// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter is the client's REST transport to the sync server.
//
// [ServerAdapter] decouples the service layer from HTTP. Status codes are
// mapped to the sentinels in errors.go so callers can use [errors.Is]
// without knowing the protocol.
package adapter

import (
	"context"

	"github.com/MKhiriev/go-pim-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter is the server API used by the services.
type ServerAdapter interface {
	// SetToken stores the bearer token attached to authenticated requests.
	SetToken(token string)

	// Token returns the current bearer token or "".
	Token() string

	// Register creates the account. The bearer token from the response is
	// stored and returned on the user.
	Register(ctx context.Context, user models.User) (models.User, error)

	// RequestSalt returns the user's public encryption salt.
	RequestSalt(ctx context.Context, user models.User) (models.User, error)

	// Login sends the auth hash and returns the server record, including
	// the wrapped DEK. The bearer token is stored and set on the result.
	Login(ctx context.Context, user models.User) (models.User, error)

	// UploadCollections pushes new, changed and deleted collections. An
	// HMAC transport hash over the batch is attached.
	UploadCollections(ctx context.Context, req models.UploadRequest) error

	// DownloadCollections fetches full collections by UID.
	DownloadCollections(ctx context.Context, req models.DownloadRequest) ([]models.Collection, error)

	// GetCollectionStates fetches the server-side sync descriptors.
	GetCollectionStates(ctx context.Context) ([]models.CollectionState, error)

	// GetJournals fetches the user's encrypted journals.
	GetJournals(ctx context.Context) ([]models.EncryptedJournal, error)
}
