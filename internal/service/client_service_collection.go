// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-pim-keeper/internal/adapter"
	"github.com/MKhiriev/go-pim-keeper/internal/logger"
	"github.com/MKhiriev/go-pim-keeper/internal/store"
	"github.com/MKhiriev/go-pim-keeper/internal/utils"
	"github.com/MKhiriev/go-pim-keeper/internal/validators"
	"github.com/MKhiriev/go-pim-keeper/models"
)

type collectionManager struct {
	repo      store.CollectionRepository
	adapter   adapter.ServerAdapter
	crypto    ClientCryptoService
	validator validators.Validator
	uuid      *utils.UUIDGenerator

	now    func() time.Time
	logger *logger.Logger
}

// NewCollectionManager returns a [CollectionManager] that keeps repo and the
// server in step.
func NewCollectionManager(
	repo store.CollectionRepository,
	serverAdapter adapter.ServerAdapter,
	cryptoSvc ClientCryptoService,
	validator validators.Validator,
	logger *logger.Logger,
) CollectionManager {
	return &collectionManager{
		repo:      repo,
		adapter:   serverAdapter,
		crypto:    cryptoSvc,
		validator: validator,
		uuid:      utils.NewUUIDGenerator(),
		now:       func() time.Time { return time.Now().UTC() },
		logger:    logger,
	}
}

func (m *collectionManager) Create(userID int64, meta models.CollectionMeta) (models.Collection, error) {
	if err := m.validator.Validate(context.Background(), meta); err != nil {
		return models.Collection{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	ciphered, err := m.crypto.EncryptMeta(meta)
	if err != nil {
		return models.Collection{}, err
	}

	now := m.now()
	col := models.Collection{
		UID:       m.uuid.Generate(),
		UserID:    userID,
		Meta:      ciphered,
		CreatedAt: &now,
		UpdatedAt: &now,
	}
	col.Hash = m.crypto.ComputeHash(col)

	return col, nil
}

func (m *collectionManager) SetMeta(col models.Collection, meta models.CollectionMeta) (models.Collection, error) {
	if col.UID == "" {
		return models.Collection{}, ErrNoCollectionProvided
	}
	if col.Deleted {
		return models.Collection{}, ErrCollectionAlreadyDeleted
	}
	if err := m.validator.Validate(context.Background(), meta); err != nil {
		return models.Collection{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	ciphered, err := m.crypto.EncryptMeta(meta)
	if err != nil {
		return models.Collection{}, err
	}

	now := m.now()
	col.Meta = ciphered
	col.UpdatedAt = &now
	col.Hash = m.crypto.ComputeHash(col)

	return col, nil
}

// Upload implements [CollectionManager]. An edit based on a version older
// than the stored copy is rejected with [ErrVersionConflict].
func (m *collectionManager) Upload(ctx context.Context, col models.Collection) (models.Collection, error) {
	log := logger.FromContext(ctx)

	if col.UID == "" {
		return models.Collection{}, ErrNoCollectionProvided
	}

	editedFrom := col.Version
	now := m.now()
	col.Version++
	col.UpdatedAt = &now
	if col.CreatedAt == nil {
		col.CreatedAt = &now
	}
	col.Hash = m.crypto.ComputeHash(col)

	if err := m.validator.Validate(ctx, col); err != nil {
		return models.Collection{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	stored, err := m.repo.GetCollection(ctx, col.UserID, col.UID)
	switch {
	case err == nil:
		if stored.Version > editedFrom {
			log.Warn().
				Str("func", "collectionManager.Upload").
				Str("uid", col.UID).
				Int64("stored_version", stored.Version).
				Int64("edited_version", editedFrom).
				Msg("edit based on a stale copy")
			return models.Collection{}, fmt.Errorf("%w: stored copy is at version %d", ErrVersionConflict, stored.Version)
		}
		col.BaseVersion = stored.BaseVersion
	case errors.Is(err, store.ErrCollectionNotFound):
		col.BaseVersion = 0
	default:
		return models.Collection{}, fmt.Errorf("get stored collection: %w", err)
	}

	if err = m.repo.SaveCollections(ctx, col); err != nil {
		log.Err(err).Str("func", "collectionManager.Upload").Str("uid", col.UID).Msg("failed to save collection locally")
		return models.Collection{}, fmt.Errorf("save collection locally: %w", err)
	}

	req := models.UploadRequest{UserID: col.UserID, Collections: []models.Collection{col}}
	if err = m.adapter.UploadCollections(ctx, req); err != nil {
		m.logger.Err(err).
			Str("func", "collectionManager.Upload").
			Str("uid", col.UID).
			Int64("version", col.Version).
			Msg("upload failed, change kept locally")
		return col, fmt.Errorf("%w: %w", ErrUploadToServer, mapAdapterError(err))
	}

	col.BaseVersion = col.Version
	if err = m.repo.SaveCollections(ctx, col); err != nil {
		// the next sync downloads the accepted copy again
		m.logger.Warn().Err(err).
			Str("func", "collectionManager.Upload").
			Str("uid", col.UID).
			Msg("failed to mark collection as synced")
	}

	return col, nil
}

func (m *collectionManager) Delete(ctx context.Context, col models.Collection) (models.Collection, error) {
	if col.UID == "" {
		return models.Collection{}, ErrNoCollectionProvided
	}
	if col.Deleted {
		return models.Collection{}, ErrCollectionAlreadyDeleted
	}

	now := m.now()
	col.Deleted = true
	col.UpdatedAt = &now
	col.Hash = m.crypto.ComputeHash(col)

	// the tombstone is kept even if the upload never happens; sync pushes it
	if err := m.repo.SaveCollections(ctx, col); err != nil {
		return models.Collection{}, fmt.Errorf("save tombstone locally: %w", err)
	}

	return col, nil
}

func (m *collectionManager) List(ctx context.Context, userID int64) ([]models.Collection, error) {
	cols, err := m.repo.GetAllCollections(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list local collections: %w", err)
	}
	return cols, nil
}
