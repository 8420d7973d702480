// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/MKhiriev/go-pim-keeper/internal/adapter"
	"github.com/MKhiriev/go-pim-keeper/internal/logger"
	"github.com/MKhiriev/go-pim-keeper/internal/store"
	"github.com/MKhiriev/go-pim-keeper/models"
)

type clientSyncService struct {
	collections store.CollectionRepository
	journals    store.JournalRepository
	adapter     adapter.ServerAdapter
	planner     SyncService

	mu          sync.RWMutex
	serverState map[string]models.CollectionState

	logger *logger.Logger
}

// NewClientSyncService returns a [ClientSyncService] over the local
// repositories and serverAdapter.
func NewClientSyncService(
	collections store.CollectionRepository,
	journals store.JournalRepository,
	serverAdapter adapter.ServerAdapter,
	logger *logger.Logger,
) ClientSyncService {
	return &clientSyncService{
		collections: collections,
		journals:    journals,
		adapter:     serverAdapter,
		planner:     NewSyncService(),
		serverState: make(map[string]models.CollectionState),
		logger:      logger,
	}
}

func (s *clientSyncService) FullSync(ctx context.Context, userID int64) error {
	serverStates, err := s.adapter.GetCollectionStates(ctx)
	if err != nil {
		return fmt.Errorf("get server states: %w", mapAdapterError(err))
	}

	clientStates, err := s.collections.GetAllStates(ctx, userID)
	if err != nil {
		return fmt.Errorf("get local states: %w", err)
	}

	plan, err := s.planner.BuildSyncPlan(ctx, serverStates, clientStates)
	if err != nil {
		return fmt.Errorf("build sync plan: %w", err)
	}

	idx := make(map[string]models.CollectionState, len(serverStates))
	for _, st := range serverStates {
		idx[st.UID] = st
	}
	s.mu.Lock()
	s.serverState = idx
	s.mu.Unlock()

	if err = s.ExecutePlan(ctx, plan, userID); err != nil {
		return fmt.Errorf("execute sync plan: %w", err)
	}

	if err = s.refreshJournals(ctx, userID); err != nil {
		return fmt.Errorf("refresh journals: %w", err)
	}

	s.logger.Debug().
		Str("func", "clientSyncService.FullSync").
		Int64("user_id", userID).
		Int("download", len(plan.Download)).
		Int("upload", len(plan.Upload)).
		Int("update", len(plan.Update)).
		Int("delete_client", len(plan.DeleteClient)).
		Int("delete_server", len(plan.DeleteServer)).
		Msg("sync finished")

	return nil
}

// ExecutePlan implements [ClientSyncService]. Downloads are applied first,
// then every outgoing change (upload, update, server delete) is pushed in a
// single batch, then server deletions are applied locally.
func (s *clientSyncService) ExecutePlan(ctx context.Context, plan models.SyncPlan, userID int64) error {
	if len(plan.Download) > 0 {
		if err := s.download(ctx, userID, collectUIDs(plan.Download)); err != nil {
			return fmt.Errorf("download collections in plan: %w", err)
		}
	}

	outgoing := make([]models.CollectionState, 0, len(plan.Upload)+len(plan.Update)+len(plan.DeleteServer))
	outgoing = append(outgoing, plan.Upload...)
	outgoing = append(outgoing, plan.Update...)
	outgoing = append(outgoing, plan.DeleteServer...)
	if len(outgoing) > 0 {
		if err := s.push(ctx, userID, collectUIDs(outgoing)); err != nil {
			return err
		}
	}

	if len(plan.DeleteClient) > 0 {
		if err := s.collections.DeleteCollections(ctx, userID, collectUIDs(plan.DeleteClient)...); err != nil {
			return fmt.Errorf("delete on client: %w", err)
		}
	}

	return nil
}

func (s *clientSyncService) download(ctx context.Context, userID int64, uids []string) error {
	items, err := s.adapter.DownloadCollections(ctx, models.DownloadRequest{UserID: userID, UIDs: uids})
	if err != nil {
		return mapAdapterError(err)
	}
	if len(items) == 0 {
		return nil
	}

	for i := range items {
		items[i].BaseVersion = items[i].Version
	}
	if err = s.collections.SaveCollections(ctx, items...); err != nil {
		return fmt.Errorf("save downloaded collections locally: %w", err)
	}
	return nil
}

// push uploads the local copies of uids. A copy that is not ahead of the
// server gets its version moved past the server's first. Accepted copies are
// saved back with their base version set. On a version conflict the server
// copies win.
func (s *clientSyncService) push(ctx context.Context, userID int64, uids []string) error {
	items, err := s.collections.GetCollections(ctx, userID, uids)
	if err != nil {
		return fmt.Errorf("get local collections to push: %w", err)
	}

	for i := range items {
		if v, ok := s.serverVersion(items[i].UID); ok && items[i].Version <= v {
			items[i].Version = v + 1
		}
	}

	err = s.adapter.UploadCollections(ctx, models.UploadRequest{UserID: userID, Collections: items})
	if err == nil {
		for i := range items {
			items[i].BaseVersion = items[i].Version
		}
		if err = s.collections.SaveCollections(ctx, items...); err != nil {
			return fmt.Errorf("save pushed collections: %w", err)
		}
		return nil
	}

	mapped := mapAdapterError(err)
	if !errors.Is(mapped, ErrVersionConflict) {
		return fmt.Errorf("upload collections in sync plan: %w", mapped)
	}

	s.logger.Warn().
		Str("func", "clientSyncService.push").
		Strs("uids", uids).
		Msg("version conflict, taking server copies")

	return s.download(ctx, userID, uids)
}

func (s *clientSyncService) refreshJournals(ctx context.Context, userID int64) error {
	journals, err := s.adapter.GetJournals(ctx)
	if err != nil {
		return mapAdapterError(err)
	}
	if len(journals) == 0 {
		return nil
	}

	return s.journals.SaveJournals(ctx, userID, journals...)
}

func (s *clientSyncService) serverVersion(uid string) (int64, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	st, ok := s.serverState[uid]
	return st.Version, ok
}

func collectUIDs(states []models.CollectionState) []string {
	uids := make([]string, 0, len(states))
	for _, st := range states {
		uids = append(uids, st.UID)
	}
	return uids
}
