// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-pim-keeper/models"
)

// syncService is the concrete implementation of SyncService.
// It performs a purely in-memory comparison of server and client
// CollectionState slices.
type syncService struct{}

// NewSyncService constructs a SyncService ready for use.
func NewSyncService() SyncService {
	return &syncService{}
}

// BuildSyncPlan implements SyncService.
//
// It builds two lookup indexes from the input slices, then makes two
// linear passes to classify every collection into at most one bucket:
//
//   - Pass 1 (over serverStates): collections present on the server,
//     whether or not they also exist on the client.
//   - Pass 2 (over clientStates): collections that exist only on the
//     client and were therefore invisible in pass 1.
//
// A pending local change is pushed only while the server is still at the
// version the change was based on. Once another device has moved the server
// past that base the server copy wins.
//
// ctx cancellation is checked at the start of each iteration.
func (s *syncService) BuildSyncPlan(
	ctx context.Context,
	serverStates, clientStates []models.CollectionState,
) (models.SyncPlan, error) {
	var plan models.SyncPlan

	clientIndex := make(map[string]models.CollectionState, len(clientStates))
	for _, cs := range clientStates {
		clientIndex[cs.UID] = cs
	}

	serverIndex := make(map[string]models.CollectionState, len(serverStates))
	for _, ss := range serverStates {
		serverIndex[ss.UID] = ss
	}

	// ── Pass 1: iterate over server records ─────────────────────────────────
	for _, ss := range serverStates {
		if err := ctx.Err(); err != nil {
			return models.SyncPlan{}, err
		}

		cs, existsOnClient := clientIndex[ss.UID]

		if !existsOnClient {
			if !ss.Deleted {
				// Server has a live collection the client has never seen.
				plan.Download = append(plan.Download, ss)
			}
			// Created and deleted on the server before the client synced.
			continue
		}

		switch {
		case ss.Deleted && cs.Deleted:
			// Both sides agree it is deleted.

		case cs.Pending() && ss.Version > cs.BaseVersion:
			// Another device changed the collection after the local edit
			// was made: the server copy wins.
			takeServer(&plan, ss)

		case cs.Pending():
			// Local change on top of the current server copy.
			pushClient(&plan, cs)

		case ss.Version > cs.Version:
			takeServer(&plan, ss)

		case ss.Version < cs.Version:
			pushClient(&plan, cs)

		case ss.Deleted:
			plan.DeleteClient = append(plan.DeleteClient, ss)

		case ss.Hash != cs.Hash:
			// A clean copy never diverges on its own.
			plan.Download = append(plan.Download, ss)
		}
	}

	// ── Pass 2: client-only collections ─────────────────────────────────────
	for _, cs := range clientStates {
		if err := ctx.Err(); err != nil {
			return models.SyncPlan{}, err
		}

		if _, existsOnServer := serverIndex[cs.UID]; existsOnServer {
			continue
		}

		if !cs.Deleted {
			plan.Upload = append(plan.Upload, cs)
		}
		// Created and deleted locally before the first sync.
	}

	return plan, nil
}

func takeServer(plan *models.SyncPlan, ss models.CollectionState) {
	if ss.Deleted {
		plan.DeleteClient = append(plan.DeleteClient, ss)
		return
	}
	plan.Download = append(plan.Download, ss)
}

func pushClient(plan *models.SyncPlan, cs models.CollectionState) {
	if cs.Deleted {
		plan.DeleteServer = append(plan.DeleteServer, cs)
		return
	}
	plan.Update = append(plan.Update, cs)
}
