// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-pim-keeper/internal/adapter"
	"github.com/MKhiriev/go-pim-keeper/internal/app"
	"github.com/MKhiriev/go-pim-keeper/internal/logger"
	"github.com/MKhiriev/go-pim-keeper/internal/mock"
	"github.com/MKhiriev/go-pim-keeper/internal/service"
	"github.com/MKhiriev/go-pim-keeper/internal/store"
	"github.com/MKhiriev/go-pim-keeper/internal/validators"
	"github.com/MKhiriev/go-pim-keeper/models"
)

func newTestCollectionManager(t *testing.T, ctrl *gomock.Controller) (
	service.CollectionManager,
	*mock.MockCollectionRepository,
	*mock.MockServerAdapter,
	service.ClientCryptoService,
) {
	t.Helper()
	repo := mock.NewMockCollectionRepository(ctrl)
	serverAdapter := mock.NewMockServerAdapter(ctrl)
	cryptoSvc, _ := newRealCryptoSvc(t)

	m := service.NewCollectionManager(repo, serverAdapter, cryptoSvc, validators.NewCollectionValidator(), logger.Nop())
	return m, repo, serverAdapter, cryptoSvc
}

var workMeta = models.CollectionMeta{
	Name:  "Work",
	Type:  models.CollectionTypeCalendar,
	Color: "#FF8800",
}

// ── Create / SetMeta ─────────────────────────────────────────────────────────

func TestCollectionManager_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	m, _, _, cryptoSvc := newTestCollectionManager(t, ctrl)

	col, err := m.Create(1, workMeta)
	require.NoError(t, err)

	assert.NotEmpty(t, col.UID)
	assert.Equal(t, int64(1), col.UserID)
	assert.Zero(t, col.Version, "версия поднимается только при Upload")
	assert.False(t, col.Deleted)
	require.NotNil(t, col.CreatedAt)
	assert.Equal(t, cryptoSvc.ComputeHash(col), col.Hash)

	meta, err := cryptoSvc.DecryptMeta(col.Meta)
	require.NoError(t, err)
	assert.Equal(t, workMeta, meta)
}

func TestCollectionManager_Create_UniqueUIDs(t *testing.T) {
	ctrl := gomock.NewController(t)
	m, _, _, _ := newTestCollectionManager(t, ctrl)

	a, err := m.Create(1, workMeta)
	require.NoError(t, err)
	b, err := m.Create(1, workMeta)
	require.NoError(t, err)

	assert.NotEqual(t, a.UID, b.UID)
}

func TestCollectionManager_Create_InvalidMeta(t *testing.T) {
	tests := []struct {
		name    string
		meta    models.CollectionMeta
		wantErr error
	}{
		{"empty name", models.CollectionMeta{Type: models.CollectionTypeTasks}, validators.ErrEmptyName},
		{"empty type", models.CollectionMeta{Name: "x"}, validators.ErrEmptyCollectionType},
		{"bad color", models.CollectionMeta{Name: "x", Type: models.CollectionTypeTasks, Color: "red"}, validators.ErrInvalidColor},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			m, _, _, _ := newTestCollectionManager(t, ctrl)

			_, err := m.Create(1, tt.meta)
			require.Error(t, err)
			assert.ErrorIs(t, err, service.ErrInvalidDataProvided)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestCollectionManager_SetMeta(t *testing.T) {
	ctrl := gomock.NewController(t)
	m, _, _, cryptoSvc := newTestCollectionManager(t, ctrl)

	col, err := m.Create(1, workMeta)
	require.NoError(t, err)

	renamed := workMeta
	renamed.Name = "Personal"
	updated, err := m.SetMeta(col, renamed)
	require.NoError(t, err)

	assert.Equal(t, col.UID, updated.UID)
	assert.NotEqual(t, col.Hash, updated.Hash)

	meta, err := cryptoSvc.DecryptMeta(updated.Meta)
	require.NoError(t, err)
	assert.Equal(t, "Personal", meta.Name)
}

func TestCollectionManager_SetMeta_Errors(t *testing.T) {
	ctrl := gomock.NewController(t)
	m, _, _, _ := newTestCollectionManager(t, ctrl)

	_, err := m.SetMeta(models.Collection{}, workMeta)
	assert.ErrorIs(t, err, service.ErrNoCollectionProvided)

	_, err = m.SetMeta(models.Collection{UID: "c1", Deleted: true}, workMeta)
	assert.ErrorIs(t, err, service.ErrCollectionAlreadyDeleted)
}

// ── Upload ───────────────────────────────────────────────────────────────────

func TestCollectionManager_Upload_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	m, repo, serverAdapter, cryptoSvc := newTestCollectionManager(t, ctrl)
	ctx := context.Background()

	col, err := m.Create(1, workMeta)
	require.NoError(t, err)

	gomock.InOrder(
		repo.EXPECT().GetCollection(ctx, int64(1), col.UID).
			Return(models.Collection{}, fmt.Errorf("%w (uid=%s)", store.ErrCollectionNotFound, col.UID)),
		repo.EXPECT().SaveCollections(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, cols ...models.Collection) error {
				require.Len(t, cols, 1)
				assert.Equal(t, int64(1), cols[0].Version)
				assert.True(t, cols[0].Pending(), "до выгрузки копия ещё не синхронизирована")
				return nil
			},
		),
		serverAdapter.EXPECT().UploadCollections(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, req models.UploadRequest) error {
				assert.Equal(t, int64(1), req.UserID)
				require.Len(t, req.Collections, 1)
				assert.Equal(t, col.UID, req.Collections[0].UID)
				return nil
			},
		),
		repo.EXPECT().SaveCollections(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, cols ...models.Collection) error {
				require.Len(t, cols, 1)
				assert.Equal(t, int64(1), cols[0].BaseVersion)
				assert.False(t, cols[0].Pending())
				return nil
			},
		),
	)

	uploaded, err := m.Upload(ctx, col)
	require.NoError(t, err)
	assert.Equal(t, int64(1), uploaded.Version)
	assert.Equal(t, int64(1), uploaded.BaseVersion)
	assert.Equal(t, cryptoSvc.ComputeHash(uploaded), uploaded.Hash)
}

func TestCollectionManager_Upload_ServerError_KeepsLocalCopy(t *testing.T) {
	ctrl := gomock.NewController(t)
	m, repo, serverAdapter, _ := newTestCollectionManager(t, ctrl)
	ctx := context.Background()

	col, err := m.Create(1, workMeta)
	require.NoError(t, err)

	repo.EXPECT().GetCollection(ctx, int64(1), col.UID).Return(models.Collection{}, store.ErrCollectionNotFound)
	repo.EXPECT().SaveCollections(ctx, gomock.Any()).Return(nil).Times(1)
	serverAdapter.EXPECT().UploadCollections(ctx, gomock.Any()).
		Return(fmt.Errorf("%w: %s", adapter.ErrConflict, app.MsgVersionConflict))

	uploaded, err := m.Upload(ctx, col)
	require.Error(t, err)
	assert.ErrorIs(t, err, service.ErrUploadToServer)
	assert.ErrorIs(t, err, service.ErrVersionConflict)
	// локальная копия возвращается, чтобы UI мог продолжить работу
	assert.Equal(t, col.UID, uploaded.UID)
	assert.Equal(t, int64(1), uploaded.Version)
}

func TestCollectionManager_Upload_LocalSaveError(t *testing.T) {
	ctrl := gomock.NewController(t)
	m, repo, _, _ := newTestCollectionManager(t, ctrl)
	ctx := context.Background()

	col, err := m.Create(1, workMeta)
	require.NoError(t, err)

	repo.EXPECT().GetCollection(ctx, int64(1), col.UID).Return(models.Collection{}, store.ErrCollectionNotFound)
	repo.EXPECT().SaveCollections(ctx, gomock.Any()).Return(errors.New("disk full"))

	_, err = m.Upload(ctx, col)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "save collection locally")
}

func TestCollectionManager_Upload_EditOfSyncedCopyKeepsBase(t *testing.T) {
	ctrl := gomock.NewController(t)
	m, repo, serverAdapter, _ := newTestCollectionManager(t, ctrl)
	ctx := context.Background()

	col, err := m.Create(1, workMeta)
	require.NoError(t, err)
	col.Version, col.BaseVersion = 2, 2

	stored := col
	gomock.InOrder(
		repo.EXPECT().GetCollection(ctx, int64(1), col.UID).Return(stored, nil),
		repo.EXPECT().SaveCollections(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, cols ...models.Collection) error {
				require.Len(t, cols, 1)
				assert.Equal(t, int64(3), cols[0].Version)
				assert.Equal(t, int64(2), cols[0].BaseVersion)
				return nil
			},
		),
		serverAdapter.EXPECT().UploadCollections(ctx, gomock.Any()).
			Return(errors.New("connection refused")),
	)

	uploaded, err := m.Upload(ctx, col)
	require.Error(t, err)
	assert.ErrorIs(t, err, service.ErrUploadToServer)
	// правка остаётся ожидающей синхронизации поверх v2
	assert.True(t, uploaded.Pending())
	assert.Equal(t, int64(2), uploaded.BaseVersion)
}

func TestCollectionManager_Upload_StaleEditRejected(t *testing.T) {
	ctrl := gomock.NewController(t)
	m, repo, _, _ := newTestCollectionManager(t, ctrl)
	ctx := context.Background()

	col, err := m.Create(1, workMeta)
	require.NoError(t, err)
	col.Version, col.BaseVersion = 1, 1

	// синхронизация уже подтянула v2 с другого устройства
	stored := col
	stored.Version, stored.BaseVersion = 2, 2
	repo.EXPECT().GetCollection(ctx, int64(1), col.UID).Return(stored, nil)
	// ни SaveCollections, ни UploadCollections не ожидаются

	_, err = m.Upload(ctx, col)
	require.Error(t, err)
	assert.ErrorIs(t, err, service.ErrVersionConflict)
}

func TestCollectionManager_Upload_GetStoredError(t *testing.T) {
	ctrl := gomock.NewController(t)
	m, repo, _, _ := newTestCollectionManager(t, ctrl)
	ctx := context.Background()

	col, err := m.Create(1, workMeta)
	require.NoError(t, err)

	repo.EXPECT().GetCollection(ctx, int64(1), col.UID).Return(models.Collection{}, errors.New("locked"))

	_, err = m.Upload(ctx, col)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "get stored collection")
}

func TestCollectionManager_Upload_NoCollection(t *testing.T) {
	ctrl := gomock.NewController(t)
	m, _, _, _ := newTestCollectionManager(t, ctrl)

	_, err := m.Upload(context.Background(), models.Collection{})
	assert.ErrorIs(t, err, service.ErrNoCollectionProvided)
}

func TestCollectionManager_Upload_InvalidCollection(t *testing.T) {
	ctrl := gomock.NewController(t)
	m, _, _, _ := newTestCollectionManager(t, ctrl)

	// без UserID и Meta
	_, err := m.Upload(context.Background(), models.Collection{UID: "c1"})
	require.Error(t, err)
	assert.ErrorIs(t, err, service.ErrInvalidDataProvided)
}

// ── Delete / List ────────────────────────────────────────────────────────────

func TestCollectionManager_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	m, repo, _, _ := newTestCollectionManager(t, ctrl)
	ctx := context.Background()

	col, err := m.Create(1, workMeta)
	require.NoError(t, err)
	col.Version = 3

	repo.EXPECT().SaveCollections(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, cols ...models.Collection) error {
			require.Len(t, cols, 1)
			assert.True(t, cols[0].Deleted)
			return nil
		},
	)

	deleted, err := m.Delete(ctx, col)
	require.NoError(t, err)
	assert.True(t, deleted.Deleted)
	assert.Equal(t, int64(3), deleted.Version, "удаление не поднимает версию")
	assert.NotEqual(t, col.Hash, deleted.Hash)
}

func TestCollectionManager_Delete_Errors(t *testing.T) {
	ctrl := gomock.NewController(t)
	m, repo, _, _ := newTestCollectionManager(t, ctrl)
	ctx := context.Background()

	_, err := m.Delete(ctx, models.Collection{})
	assert.ErrorIs(t, err, service.ErrNoCollectionProvided)

	_, err = m.Delete(ctx, models.Collection{UID: "c1", Deleted: true})
	assert.ErrorIs(t, err, service.ErrCollectionAlreadyDeleted)

	repo.EXPECT().SaveCollections(ctx, gomock.Any()).Return(errors.New("locked"))
	_, err = m.Delete(ctx, models.Collection{UID: "c1", UserID: 1, Meta: "x"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "save tombstone locally")
}

func TestCollectionManager_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	m, repo, _, _ := newTestCollectionManager(t, ctrl)
	ctx := context.Background()

	want := []models.Collection{{UID: "c1"}, {UID: "c2"}}
	repo.EXPECT().GetAllCollections(ctx, int64(1)).Return(want, nil)

	got, err := m.List(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, want, got)

	repo.EXPECT().GetAllCollections(ctx, int64(2)).Return(nil, errors.New("db closed"))
	_, err = m.List(ctx, 2)
	require.Error(t, err)
}
