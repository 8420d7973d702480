// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-pim-keeper/internal/logger"
	"github.com/MKhiriev/go-pim-keeper/internal/mock"
	"github.com/MKhiriev/go-pim-keeper/internal/service"
	"github.com/MKhiriev/go-pim-keeper/models"
)

const testVCard = "BEGIN:VCARD\r\nVERSION:4.0\r\nUID:p1\r\nFN:Ann Lee\r\nEND:VCARD\r\n"

func TestJournalService_SyncInfo(t *testing.T) {
	ctrl := gomock.NewController(t)
	journals := mock.NewMockJournalRepository(ctrl)
	collections := mock.NewMockCollectionRepository(ctrl)
	cryptoSvc, _ := newRealCryptoSvc(t)
	ctx := context.Background()

	entryContent, err := cryptoSvc.EncryptContent(testVCard)
	require.NoError(t, err)
	colMeta, err := cryptoSvc.EncryptMeta(models.CollectionMeta{
		Name:  "Friends",
		Type:  models.CollectionTypeAddressBook,
		Color: "#00AA00",
	})
	require.NoError(t, err)

	created := time.Date(2026, 10, 1, 9, 0, 0, 0, time.UTC)
	journals.EXPECT().GetJournals(ctx, int64(1)).Return([]models.EncryptedJournal{
		{
			Journal:    models.Journal{UID: "c1", Version: 2},
			Collection: models.CollectionInfo{UID: "c1", Type: "ADDRESS_BOOK", DisplayName: "old name"},
			Entries: []models.EncryptedEntry{
				{UID: "e1", Action: models.SyncEntryActionAdd, Content: entryContent, CreatedAt: created},
			},
		},
		{
			// журнал без локальной коллекции сохраняет переданное описание
			Journal:    models.Journal{UID: "c2"},
			Collection: models.CollectionInfo{UID: "c2", Type: "TASKS", DisplayName: "Chores"},
		},
	}, nil)
	collections.EXPECT().GetAllCollections(ctx, int64(1)).Return([]models.Collection{
		{UID: "c1", Meta: colMeta},
	}, nil)

	svc := service.NewJournalService(journals, collections, cryptoSvc, logger.Nop())
	info, err := svc.SyncInfo(ctx, 1)
	require.NoError(t, err)
	require.Len(t, info, 2)

	j1, ok := info.Get("c1")
	require.True(t, ok)
	assert.Equal(t, "Friends", j1.Collection.DisplayName)
	assert.Equal(t, "#00AA00", j1.Collection.Color)
	require.Len(t, j1.Entries, 1)
	assert.Equal(t, testVCard, j1.Entries[0].Content)
	assert.Equal(t, models.SyncEntryActionAdd, j1.Entries[0].Action)
	assert.Equal(t, created, j1.Entries[0].CreatedAt)

	j2, ok := info.Get("c2")
	require.True(t, ok)
	assert.Equal(t, "Chores", j2.Collection.DisplayName)
	assert.Empty(t, j2.Entries)
}

func TestJournalService_SyncInfo_CollectionsUnavailable(t *testing.T) {
	ctrl := gomock.NewController(t)
	journals := mock.NewMockJournalRepository(ctrl)
	collections := mock.NewMockCollectionRepository(ctrl)
	cryptoSvc, _ := newRealCryptoSvc(t)
	ctx := context.Background()

	journals.EXPECT().GetJournals(ctx, int64(1)).Return([]models.EncryptedJournal{
		{Journal: models.Journal{UID: "c1"}, Collection: models.CollectionInfo{UID: "c1", DisplayName: "Remote"}},
	}, nil)
	collections.EXPECT().GetAllCollections(ctx, int64(1)).Return(nil, errors.New("db locked"))

	info, err := service.NewJournalService(journals, collections, cryptoSvc, logger.Nop()).SyncInfo(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "Remote", info["c1"].Collection.DisplayName)
}

func TestJournalService_SyncInfo_Errors(t *testing.T) {
	t.Run("repository", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		journals := mock.NewMockJournalRepository(ctrl)
		collections := mock.NewMockCollectionRepository(ctrl)
		cryptoSvc, _ := newRealCryptoSvc(t)

		journals.EXPECT().GetJournals(gomock.Any(), int64(1)).Return(nil, errors.New("no table"))

		_, err := service.NewJournalService(journals, collections, cryptoSvc, logger.Nop()).SyncInfo(context.Background(), 1)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "get local journals")
	})
}

func TestJournalService_SyncInfo_SkipsUndecryptableJournal(t *testing.T) {
	ctrl := gomock.NewController(t)
	journals := mock.NewMockJournalRepository(ctrl)
	collections := mock.NewMockCollectionRepository(ctrl)
	cryptoSvc, _ := newRealCryptoSvc(t)
	ctx := context.Background()

	good, err := cryptoSvc.EncryptContent(testVCard)
	require.NoError(t, err)

	journals.EXPECT().GetJournals(ctx, int64(1)).Return([]models.EncryptedJournal{
		{
			Journal:    models.Journal{UID: "bad"},
			Collection: models.CollectionInfo{UID: "bad", DisplayName: "Broken"},
			Entries: []models.EncryptedEntry{
				{UID: "e1", Content: good},
				{UID: "e2", Content: "garbage"},
			},
		},
		{
			Journal:    models.Journal{UID: "c2"},
			Collection: models.CollectionInfo{UID: "c2", DisplayName: "Contacts"},
			Entries:    []models.EncryptedEntry{{UID: "e3", Action: models.SyncEntryActionAdd, Content: good}},
		},
	}, nil)
	collections.EXPECT().GetAllCollections(ctx, int64(1)).Return(nil, nil)

	info, err := service.NewJournalService(journals, collections, cryptoSvc, logger.Nop()).SyncInfo(ctx, 1)
	require.NoError(t, err)

	_, ok := info.Get("bad")
	assert.False(t, ok, "журнал с битой записью пропускается")

	j2, ok := info.Get("c2")
	require.True(t, ok)
	require.Len(t, j2.Entries, 1)
	assert.Equal(t, testVCard, j2.Entries[0].Content)
}
