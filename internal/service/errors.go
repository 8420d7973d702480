// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrWrongPassword       = errors.New("wrong password")
	ErrLoginAlreadyExists  = errors.New("login already exists")
	ErrRegisterOnServer    = errors.New("registration on server failed")
	ErrLoginOnServer       = errors.New("login on server failed")

	ErrTokenIsExpired          = errors.New("token is expired")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")

	ErrNoEncryptionKey = errors.New("encryption key is not set")

	ErrNoCollectionProvided     = errors.New("no collection provided")
	ErrCollectionAlreadyDeleted = errors.New("collection is already deleted")
	ErrCollectionNotFound       = errors.New("collection not found")
	ErrVersionConflict          = errors.New("version conflict")
	ErrHashMismatch             = errors.New("upload hash mismatch")
	ErrUploadToServer           = errors.New("upload to server failed")
	ErrDeleteNotUploaded        = errors.New("collection deleted locally but not uploaded")
	ErrDecryptCollection        = errors.New("collection decryption failed")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")

	ErrValidationNoCollectionsProvided      = errors.New("no collections provided")
	ErrValidationNoDownloadRequestsProvided = errors.New("no download requests provided")
)
