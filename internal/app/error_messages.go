// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains the message strings the sync server writes into
// error response bodies. The client matches on them to turn transport
// errors into business errors.
package app

const (
	// MsgInvalidDataProvided is returned when the request body cannot be
	// decoded or fails basic validation.
	MsgInvalidDataProvided = "invalid data provided"

	// MsgInvalidLoginPassword is returned when the supplied login/auth hash
	// combination does not match any existing user record.
	MsgInvalidLoginPassword = "invalid login/password"

	// MsgTokenIsExpired is returned when the bearer token has expired.
	MsgTokenIsExpired = "token is expired"

	// MsgTokenIsExpiredOrInvalid is returned when the bearer token is
	// either expired or cannot be verified.
	MsgTokenIsExpiredOrInvalid = "token is expired or invalid"

	// MsgNoCollectionsProvided is returned when an upload batch is empty.
	MsgNoCollectionsProvided = "no collections provided"

	// MsgNoDownloadRequestsProvided is returned when a download request
	// contains no collection UIDs.
	MsgNoDownloadRequestsProvided = "no download requests provided"

	// MsgHashMismatch is returned when the upload batch hash does not match
	// the server's computation.
	MsgHashMismatch = "hash mismatch"

	// MsgRegistrationFailed is returned when the server could not create
	// the account.
	MsgRegistrationFailed = "registration failed"

	// MsgLoginFailed is returned when the server could not issue a session
	// token.
	MsgLoginFailed = "login failed"

	// MsgLoginAlreadyExists is returned when a registration attempt is
	// rejected because the requested login is already in use.
	MsgLoginAlreadyExists = "login already exists"

	// MsgCollectionNotFound is returned when a requested collection does
	// not exist for the current user.
	MsgCollectionNotFound = "collection not found"

	// MsgVersionConflict is returned when the uploaded version is behind
	// the server copy. The client should sync before retrying.
	MsgVersionConflict = "version conflict, please sync"
)
