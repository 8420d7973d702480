// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// UploadRequest is a batch of collections pushed to the server.
type UploadRequest struct {
	UserID      int64        `json:"user_id"`
	Collections []Collection `json:"collections"`

	// Hash of the serialized Collections, checked by the server.
	Hash string `json:"hash"`

	Length int `json:"length"`
}

// DownloadRequest selects collections to fetch by UID.
type DownloadRequest struct {
	UserID int64    `json:"user_id"`
	UIDs   []string `json:"uids,omitempty"`
}

// SyncResponse carries the server-side state of every collection.
type SyncResponse struct {
	CollectionStates []CollectionState `json:"collection_states"`
	Length           int               `json:"length"`
}

// JournalsResponse carries the user's encrypted journals.
type JournalsResponse struct {
	Journals []EncryptedJournal `json:"journals"`
	Length   int                `json:"length"`
}
