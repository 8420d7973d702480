// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-pim-keeper/models"
)

// qb builds SQLite statements with "?" placeholders.
var qb = sq.StatementBuilder.PlaceholderFormat(sq.Question)

var collectionColumns = []string{
	"uid",
	"user_id",
	"meta",
	"version",
	"base_version",
	"hash",
	"deleted",
	"created_at",
	"updated_at",
}

var stateColumns = []string{
	"uid",
	"hash",
	"version",
	"base_version",
	"deleted",
	"updated_at",
}

const upsertCollectionSuffix = `ON CONFLICT(uid) DO UPDATE SET
			meta         = excluded.meta,
			version      = excluded.version,
			base_version = excluded.base_version,
			hash         = excluded.hash,
			deleted      = excluded.deleted,
			updated_at   = excluded.updated_at`

const upsertJournalSuffix = `ON CONFLICT(uid) DO UPDATE SET
			version         = excluded.version,
			owner           = excluded.owner,
			read_only       = excluded.read_only,
			collection_uid  = excluded.collection_uid,
			collection_type = excluded.collection_type,
			display_name    = excluded.display_name,
			description     = excluded.description,
			color           = excluded.color`

func buildUpsertCollectionsQuery(collections []models.Collection) (string, []any, error) {
	if len(collections) == 0 {
		return "", nil, ErrNoCollectionsProvided
	}

	builder := qb.Insert("collections").Columns(collectionColumns...)
	for _, c := range collections {
		builder = builder.Values(c.UID, c.UserID, c.Meta, c.Version, c.BaseVersion, c.Hash, c.Deleted, c.CreatedAt, c.UpdatedAt)
	}

	query, args, err := builder.Suffix(upsertCollectionSuffix).ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

// buildSelectCollectionsQuery selects the user's collections. A nil uids
// means no UID filter; onlyAlive drops tombstones.
func buildSelectCollectionsQuery(userID int64, uids []string, onlyAlive bool) (string, []any, error) {
	builder := qb.Select(collectionColumns...).
		From("collections").
		Where(sq.Eq{"user_id": userID})

	if uids != nil {
		builder = builder.Where(sq.Eq{"uid": uids})
	}
	if onlyAlive {
		builder = builder.Where(sq.Eq{"deleted": false})
	}

	query, args, err := builder.OrderBy("created_at", "uid").ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildSelectStatesQuery(userID int64) (string, []any, error) {
	query, args, err := qb.Select(stateColumns...).
		From("collections").
		Where(sq.Eq{"user_id": userID}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildDeleteCollectionsQuery(userID int64, uids []string) (string, []any, error) {
	query, args, err := qb.Delete("collections").
		Where(sq.Eq{"user_id": userID}).
		Where(sq.Eq{"uid": uids}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildUpsertJournalQuery(userID int64, j models.EncryptedJournal) (string, []any, error) {
	query, args, err := qb.Insert("journals").
		Columns("uid", "user_id", "version", "owner", "read_only",
			"collection_uid", "collection_type", "display_name", "description", "color").
		Values(j.Journal.UID, userID, j.Journal.Version, j.Journal.Owner, j.Journal.ReadOnly,
			j.Collection.UID, j.Collection.Type, j.Collection.DisplayName, j.Collection.Description, j.Collection.Color).
		Suffix(upsertJournalSuffix).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildDeleteEntriesQuery(journalUID string) (string, []any, error) {
	query, args, err := qb.Delete("journal_entries").
		Where(sq.Eq{"journal_uid": journalUID}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildInsertEntriesQuery(journalUID string, entries []models.EncryptedEntry) (string, []any, error) {
	builder := qb.Insert("journal_entries").
		Columns("journal_uid", "position", "uid", "action", "content", "created_at")
	for i, e := range entries {
		builder = builder.Values(journalUID, i, e.UID, e.Action, e.Content, e.CreatedAt)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildSelectJournalsQuery(userID int64) (string, []any, error) {
	query, args, err := qb.Select("uid", "version", "owner", "read_only",
		"collection_uid", "collection_type", "display_name", "description", "color").
		From("journals").
		Where(sq.Eq{"user_id": userID}).
		OrderBy("uid").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildSelectEntriesQuery(userID int64) (string, []any, error) {
	query, args, err := qb.Select("e.journal_uid", "e.uid", "e.action", "e.content", "e.created_at").
		From("journal_entries e").
		Join("journals j ON j.uid = e.journal_uid").
		Where(sq.Eq{"j.user_id": userID}).
		OrderBy("e.journal_uid", "e.position").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}
