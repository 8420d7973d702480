// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidUserID         = errors.New("invalid user ID")
	ErrInvalidUID            = errors.New("invalid collection uid")
	ErrInvalidHash           = errors.New("invalid hash")
	ErrEmptyMeta             = errors.New("meta is required")
	ErrInvalidVersion        = errors.New("invalid version")
	ErrEmptyName             = errors.New("name is required")
	ErrNameTooLong           = errors.New("name is too long")
	ErrEmptyCollectionType   = errors.New("collection type is required")
	ErrInvalidCollectionType = errors.New("invalid collection type")
	ErrInvalidColor          = errors.New("color must be #RRGGBB")
	ErrDescriptionTooLong    = errors.New("description is too long")
	ErrEmptyCollections      = errors.New("collections list cannot be empty")
	ErrEmptyUIDs             = errors.New("UIDs list cannot be empty")
)
