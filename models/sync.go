// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// CollectionState is the lightweight descriptor the sync planner compares.
type CollectionState struct {
	UID       string     `json:"uid"`
	Hash      string     `json:"hash"`
	Version   int64      `json:"version"`
	Deleted   bool       `json:"deleted"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`

	// BaseVersion is only known for local states, see [Collection].
	BaseVersion int64 `json:"-"`
}

// Pending reports whether a local state carries an unaccepted change.
func (s CollectionState) Pending() bool {
	return s.Deleted || s.Version != s.BaseVersion
}

// SyncPlan groups collection UIDs by the action a sync run has to take.
type SyncPlan struct {
	// Download lists collections to fetch from the server.
	Download []CollectionState
	// Upload lists collections present only on the client.
	Upload []CollectionState
	// Update lists collections whose client copy is newer.
	Update []CollectionState
	// DeleteClient lists collections deleted on the server.
	DeleteClient []CollectionState
	// DeleteServer lists client tombstones to push.
	DeleteServer []CollectionState
}

// Empty reports whether the plan has nothing to do.
func (p SyncPlan) Empty() bool {
	return len(p.Download) == 0 && len(p.Upload) == 0 && len(p.Update) == 0 &&
		len(p.DeleteClient) == 0 && len(p.DeleteServer) == 0
}
