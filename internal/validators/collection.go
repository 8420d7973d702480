// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/MKhiriev/go-pim-keeper/models"
)

// Field name constants used to restrict validation to a subset of fields.
const (
	// FieldUID targets the client-generated collection identifier.
	FieldUID = "uid"

	// FieldUserID targets the owner identifier of a collection or request.
	FieldUserID = "user_id"

	// FieldMeta targets the encrypted meta blob of a collection.
	FieldMeta = "meta"

	// FieldHash targets the change-detection hash of a collection.
	FieldHash = "hash"

	// FieldVersion targets the collection version.
	FieldVersion = "version"

	// FieldName targets the plaintext collection name.
	FieldName = "name"

	// FieldType targets the plaintext collection type.
	FieldType = "type"

	// FieldColor targets the optional display color.
	FieldColor = "color"

	// FieldDescription targets the optional markdown description.
	FieldDescription = "description"

	// FieldCollections targets the collection list of an upload request.
	FieldCollections = "collections"

	// FieldUIDs targets the UID list of a download request.
	FieldUIDs = "uids"
)

const (
	maxNameLength        = 128
	maxDescriptionLength = 4096
)

var (
	colorPattern = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)
	// any upper-case identifier; unknown ones are rendered as unsupported
	typePattern = regexp.MustCompile(`^[A-Z][A-Z0-9_]*$`)
)

// CollectionValidator validates collection metadata before encryption and
// collection handles before upload.
type CollectionValidator struct{}

// NewCollectionValidator returns a [Validator] for [models.CollectionMeta],
// [models.Collection], [models.UploadRequest] and [models.DownloadRequest].
func NewCollectionValidator() Validator {
	return &CollectionValidator{}
}

func (v *CollectionValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.CollectionMeta:
		return v.validateMeta(ctx, value, fields...)
	case *models.CollectionMeta:
		return v.validateMeta(ctx, *value, fields...)

	case models.Collection:
		return v.validateCollection(ctx, value, fields...)
	case *models.Collection:
		return v.validateCollection(ctx, *value, fields...)

	case models.UploadRequest:
		return v.validateUploadRequest(ctx, value, fields...)
	case *models.UploadRequest:
		return v.validateUploadRequest(ctx, *value, fields...)

	case models.DownloadRequest:
		return v.validateDownloadRequest(ctx, value, fields...)
	case *models.DownloadRequest:
		return v.validateDownloadRequest(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *CollectionValidator) validateMeta(_ context.Context, meta models.CollectionMeta, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldName, FieldType, FieldColor, FieldDescription}
	}

	for _, f := range fields {
		switch f {
		case FieldName:
			name := strings.TrimSpace(meta.Name)
			if name == "" {
				return ErrEmptyName
			}
			if utf8.RuneCountInString(name) > maxNameLength {
				return ErrNameTooLong
			}
		case FieldType:
			if meta.Type == "" {
				return ErrEmptyCollectionType
			}
			if !typePattern.MatchString(string(meta.Type)) {
				return ErrInvalidCollectionType
			}
		case FieldColor:
			if meta.Color != "" && !colorPattern.MatchString(meta.Color) {
				return ErrInvalidColor
			}
		case FieldDescription:
			if utf8.RuneCountInString(meta.Description) > maxDescriptionLength {
				return ErrDescriptionTooLong
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *CollectionValidator) validateCollection(_ context.Context, col models.Collection, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUID, FieldUserID, FieldMeta, FieldHash, FieldVersion}
	}

	for _, f := range fields {
		switch f {
		case FieldUID:
			if col.UID == "" {
				return ErrInvalidUID
			}
		case FieldUserID:
			if col.UserID <= 0 {
				return ErrInvalidUserID
			}
		case FieldMeta:
			if col.Meta == "" {
				return ErrEmptyMeta
			}
		case FieldHash:
			if col.Hash == "" {
				return ErrInvalidHash
			}
		case FieldVersion:
			if col.Version < 0 {
				return ErrInvalidVersion
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *CollectionValidator) validateUploadRequest(ctx context.Context, request models.UploadRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUserID, FieldCollections}
	}

	for _, f := range fields {
		switch f {
		case FieldUserID:
			if request.UserID <= 0 {
				return ErrInvalidUserID
			}
		case FieldCollections:
			if len(request.Collections) == 0 {
				return ErrEmptyCollections
			}
			for i, col := range request.Collections {
				if err := v.validateCollection(ctx, col); err != nil {
					return fmt.Errorf("validation error at index %d: %w", i, err)
				}
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *CollectionValidator) validateDownloadRequest(_ context.Context, request models.DownloadRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUserID, FieldUIDs}
	}

	for _, f := range fields {
		switch f {
		case FieldUserID:
			if request.UserID <= 0 {
				return ErrInvalidUserID
			}
		case FieldUIDs:
			if len(request.UIDs) == 0 {
				return ErrEmptyUIDs
			}
			for _, uid := range request.UIDs {
				if uid == "" {
					return ErrInvalidUID
				}
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
