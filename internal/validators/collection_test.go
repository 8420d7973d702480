// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-pim-keeper/models"
)

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func validMeta() models.CollectionMeta {
	return models.CollectionMeta{
		Name:  "Work",
		Type:  models.CollectionTypeCalendar,
		Color: "#3F51B5",
	}
}

func validCollection() models.Collection {
	return models.Collection{
		UID:     "0190b1c2-0000-7000-8000-000000000001",
		UserID:  1,
		Meta:    "blob",
		Hash:    "hash",
		Version: 1,
	}
}

// ---------------------------------------------------------------------------
// Validate dispatch
// ---------------------------------------------------------------------------

func TestCollectionValidator_UnsupportedType(t *testing.T) {
	v := NewCollectionValidator()
	assert.ErrorIs(t, v.Validate(context.Background(), 42), ErrUnsupportedType)
}

func TestCollectionValidator_PointerAndValue(t *testing.T) {
	v := NewCollectionValidator()
	meta := validMeta()
	col := validCollection()

	assert.NoError(t, v.Validate(context.Background(), meta))
	assert.NoError(t, v.Validate(context.Background(), &meta))
	assert.NoError(t, v.Validate(context.Background(), col))
	assert.NoError(t, v.Validate(context.Background(), &col))
}

func TestCollectionValidator_UnknownField(t *testing.T) {
	v := NewCollectionValidator()
	assert.ErrorIs(t, v.Validate(context.Background(), validMeta(), "nope"), ErrUnknownField)
	assert.ErrorIs(t, v.Validate(context.Background(), validCollection(), "nope"), ErrUnknownField)
}

// ---------------------------------------------------------------------------
// CollectionMeta
// ---------------------------------------------------------------------------

func TestCollectionValidator_Meta(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(m *models.CollectionMeta)
		want   error
	}{
		{"valid", func(m *models.CollectionMeta) {}, nil},
		{"empty color allowed", func(m *models.CollectionMeta) { m.Color = "" }, nil},
		{"custom type allowed", func(m *models.CollectionMeta) { m.Type = "JOURNAL_V2" }, nil},
		{"blank name", func(m *models.CollectionMeta) { m.Name = "   " }, ErrEmptyName},
		{"long name", func(m *models.CollectionMeta) { m.Name = strings.Repeat("я", maxNameLength+1) }, ErrNameTooLong},
		{"empty type", func(m *models.CollectionMeta) { m.Type = "" }, ErrEmptyCollectionType},
		{"lower-case type", func(m *models.CollectionMeta) { m.Type = "calendar" }, ErrInvalidCollectionType},
		{"short color", func(m *models.CollectionMeta) { m.Color = "#FFF" }, ErrInvalidColor},
		{"color without hash", func(m *models.CollectionMeta) { m.Color = "3F51B5" }, ErrInvalidColor},
		{"long description", func(m *models.CollectionMeta) { m.Description = strings.Repeat("x", maxDescriptionLength+1) }, ErrDescriptionTooLong},
	}

	v := NewCollectionValidator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			meta := validMeta()
			tt.mutate(&meta)

			err := v.Validate(context.Background(), meta)
			if tt.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestCollectionValidator_Meta_FieldScoping(t *testing.T) {
	v := NewCollectionValidator()
	meta := models.CollectionMeta{Name: "only name"}

	// type is empty but not requested
	assert.NoError(t, v.Validate(context.Background(), meta, FieldName))
	assert.ErrorIs(t, v.Validate(context.Background(), meta, FieldName, FieldType), ErrEmptyCollectionType)
}

// ---------------------------------------------------------------------------
// Collection
// ---------------------------------------------------------------------------

func TestCollectionValidator_Collection(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *models.Collection)
		want   error
	}{
		{"valid", func(c *models.Collection) {}, nil},
		{"tombstone valid", func(c *models.Collection) { c.Deleted = true }, nil},
		{"empty uid", func(c *models.Collection) { c.UID = "" }, ErrInvalidUID},
		{"zero user", func(c *models.Collection) { c.UserID = 0 }, ErrInvalidUserID},
		{"empty meta", func(c *models.Collection) { c.Meta = "" }, ErrEmptyMeta},
		{"empty hash", func(c *models.Collection) { c.Hash = "" }, ErrInvalidHash},
		{"negative version", func(c *models.Collection) { c.Version = -1 }, ErrInvalidVersion},
	}

	v := NewCollectionValidator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			col := validCollection()
			tt.mutate(&col)

			err := v.Validate(context.Background(), col)
			if tt.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

// ---------------------------------------------------------------------------
// UploadRequest / DownloadRequest
// ---------------------------------------------------------------------------

func TestCollectionValidator_UploadRequest(t *testing.T) {
	v := NewCollectionValidator()
	ctx := context.Background()

	ok := models.UploadRequest{UserID: 1, Collections: []models.Collection{validCollection()}}
	require.NoError(t, v.Validate(ctx, ok))
	require.NoError(t, v.Validate(ctx, &ok))

	assert.ErrorIs(t, v.Validate(ctx, models.UploadRequest{UserID: 0, Collections: ok.Collections}), ErrInvalidUserID)
	assert.ErrorIs(t, v.Validate(ctx, models.UploadRequest{UserID: 1}), ErrEmptyCollections)

	bad := validCollection()
	bad.Hash = ""
	err := v.Validate(ctx, models.UploadRequest{UserID: 1, Collections: []models.Collection{validCollection(), bad}})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidHash)
	assert.Contains(t, err.Error(), "index 1")
}

func TestCollectionValidator_DownloadRequest(t *testing.T) {
	v := NewCollectionValidator()
	ctx := context.Background()

	assert.NoError(t, v.Validate(ctx, models.DownloadRequest{UserID: 1, UIDs: []string{"a"}}))
	assert.ErrorIs(t, v.Validate(ctx, models.DownloadRequest{UserID: 1}), ErrEmptyUIDs)
	assert.ErrorIs(t, v.Validate(ctx, models.DownloadRequest{UserID: 1, UIDs: []string{"a", ""}}), ErrInvalidUID)
	assert.ErrorIs(t, v.Validate(ctx, &models.DownloadRequest{UIDs: []string{"a"}}), ErrInvalidUserID)
}
