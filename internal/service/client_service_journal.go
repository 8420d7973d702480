// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-pim-keeper/internal/logger"
	"github.com/MKhiriev/go-pim-keeper/internal/store"
	"github.com/MKhiriev/go-pim-keeper/models"
)

type journalService struct {
	journals    store.JournalRepository
	collections store.CollectionRepository
	crypto      ClientCryptoService

	logger *logger.Logger
}

// NewJournalService returns a [JournalService] reading the local cache.
func NewJournalService(journals store.JournalRepository, collections store.CollectionRepository, cryptoSvc ClientCryptoService, logger *logger.Logger) JournalService {
	return &journalService{
		journals:    journals,
		collections: collections,
		crypto:      cryptoSvc,
		logger:      logger,
	}
}

// SyncInfo implements [JournalService]. The collection info of a journal is
// taken from the decrypted meta of the local collection with the same UID
// when one exists. A journal with an undecryptable entry is logged and left
// out.
func (s *journalService) SyncInfo(ctx context.Context, userID int64) (models.SyncInfo, error) {
	encrypted, err := s.journals.GetJournals(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get local journals: %w", err)
	}

	metas := s.collectionMetas(ctx, userID)

	info := make(models.SyncInfo, len(encrypted))
	for _, j := range encrypted {
		if err = ctx.Err(); err != nil {
			return nil, err
		}

		entries, err := s.decryptEntries(j)
		if err != nil {
			s.logger.Warn().Err(err).
				Str("func", "journalService.SyncInfo").
				Str("journal", j.Journal.UID).
				Msg("skipping undecryptable journal")
			continue
		}

		colInfo := j.Collection
		if meta, ok := metas[colInfo.UID]; ok {
			colInfo.Type = meta.Type.String()
			colInfo.DisplayName = meta.Name
			colInfo.Description = meta.Description
			colInfo.Color = meta.Color
		}

		info[j.Journal.UID] = models.SyncJournal{
			Journal:    j.Journal,
			Collection: colInfo,
			Entries:    entries,
		}
	}

	return info, nil
}

func (s *journalService) decryptEntries(j models.EncryptedJournal) ([]models.SyncEntry, error) {
	entries := make([]models.SyncEntry, 0, len(j.Entries))
	for _, e := range j.Entries {
		content, err := s.crypto.DecryptContent(e.Content)
		if err != nil {
			return nil, fmt.Errorf("decrypt entry %s of journal %s: %w", e.UID, j.Journal.UID, err)
		}
		entries = append(entries, models.SyncEntry{
			UID:       e.UID,
			Action:    e.Action,
			Content:   content,
			CreatedAt: e.CreatedAt,
		})
	}
	return entries, nil
}

// collectionMetas decrypts the meta of every local collection. Failures are
// logged and skipped; the journal then keeps its transported info.
func (s *journalService) collectionMetas(ctx context.Context, userID int64) map[string]models.CollectionMeta {
	cols, err := s.collections.GetAllCollections(ctx, userID)
	if err != nil {
		s.logger.Warn().Err(err).Str("func", "journalService.collectionMetas").Msg("collections unavailable for journal info")
		return nil
	}

	metas := make(map[string]models.CollectionMeta, len(cols))
	for _, col := range cols {
		meta, err := s.crypto.DecryptMeta(col.Meta)
		if err != nil {
			s.logger.Warn().Err(err).Str("func", "journalService.collectionMetas").Str("uid", col.UID).Msg("skipping undecryptable collection")
			continue
		}
		metas[col.UID] = meta
	}
	return metas
}
