// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-pim-keeper/internal/config"
	"github.com/MKhiriev/go-pim-keeper/internal/logger"
)

// ClientStorages groups the local cache repositories.
type ClientStorages struct {
	CollectionRepository CollectionRepository
	JournalRepository    JournalRepository

	db *DB
}

// NewClientStorages opens the SQLite cache at cfg.DB.DSN, applies the
// schema and builds the repositories.
func NewClientStorages(ctx context.Context, cfg config.ClientStorage, logger *logger.Logger) (*ClientStorages, error) {
	logger.Info().Msg("creating new storages...")

	db, err := NewConnectSQLite(ctx, cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err = db.Migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &ClientStorages{
		CollectionRepository: NewCollectionRepository(db, logger),
		JournalRepository:    NewJournalRepository(db, logger),
		db:                   db,
	}, nil
}

// Close releases the database connection.
func (s *ClientStorages) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}
