// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Sentinel errors returned by repository methods. Callers should match them
// with [errors.Is].
var (
	// ErrCollectionNotFound is returned when no collection with the given
	// UID exists for the user.
	ErrCollectionNotFound = errors.New("collection was not found")

	// ErrNoCollectionsProvided is returned by batch writes called with an
	// empty batch.
	ErrNoCollectionsProvided = errors.New("no collections provided")
)

// Low-level database operation errors. Repository methods wrap the driver
// error with one of these.
var (
	ErrBuildingSQLQuery     = errors.New("error building sql query")
	ErrExecutingQuery       = errors.New("error executing sql query")
	ErrBeginningTransaction = errors.New("failed to begin transaction")
	ErrCommitingTransaction = errors.New("failed to commit transaction")
	ErrExecutingStatement   = errors.New("failed to executing statement")
	ErrScanningRow          = errors.New("failed to scan row")
	ErrScanningRows         = errors.New("failed to scan rows")
)
