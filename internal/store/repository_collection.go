// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-pim-keeper/internal/logger"
	"github.com/MKhiriev/go-pim-keeper/models"
)

// collectionRepository is the SQLite-backed [CollectionRepository].
type collectionRepository struct {
	*DB
	logger *logger.Logger
}

// NewCollectionRepository returns a [CollectionRepository] over db.
func NewCollectionRepository(db *DB, logger *logger.Logger) CollectionRepository {
	return &collectionRepository{
		DB:     db,
		logger: logger,
	}
}

// SaveCollections writes all collections in one multi-row upsert.
func (r *collectionRepository) SaveCollections(ctx context.Context, collections ...models.Collection) error {
	log := logger.FromContext(ctx)

	query, args, err := buildUpsertCollectionsQuery(collections)
	if err != nil {
		log.Err(err).
			Str("func", "collectionRepository.SaveCollections").
			Int("count", len(collections)).
			Msg("failed to build upsert query")
		return err
	}

	if _, err = r.DB.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "collectionRepository.SaveCollections").
			Int("count", len(collections)).
			Msg("failed to execute upsert for collections")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (r *collectionRepository) GetCollection(ctx context.Context, userID int64, uid string) (models.Collection, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectCollectionsQuery(userID, []string{uid}, false)
	if err != nil {
		return models.Collection{}, err
	}

	item, err := scanCollection(r.DB.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Collection{}, fmt.Errorf("%w (uid=%s)", ErrCollectionNotFound, uid)
	}
	if err != nil {
		log.Err(err).
			Str("func", "collectionRepository.GetCollection").
			Int64("user_id", userID).
			Str("uid", uid).
			Msg("failed to scan collection row")
		return models.Collection{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return item, nil
}

func (r *collectionRepository) GetCollections(ctx context.Context, userID int64, uids []string) ([]models.Collection, error) {
	if len(uids) == 0 {
		return nil, nil
	}
	return r.queryCollections(ctx, "collectionRepository.GetCollections", userID, uids, false)
}

func (r *collectionRepository) GetAllCollections(ctx context.Context, userID int64) ([]models.Collection, error) {
	return r.queryCollections(ctx, "collectionRepository.GetAllCollections", userID, nil, true)
}

func (r *collectionRepository) queryCollections(ctx context.Context, fn string, userID int64, uids []string, onlyAlive bool) ([]models.Collection, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectCollectionsQuery(userID, uids, onlyAlive)
	if err != nil {
		return nil, err
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", fn).
			Int64("user_id", userID).
			Msg("failed to execute query for collections")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	items := make([]models.Collection, 0, 16)
	for rows.Next() {
		item, scanErr := scanCollection(rows)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", fn).
				Int64("user_id", userID).
				Msg("failed to scan collection row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		items = append(items, item)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", fn).
			Int64("user_id", userID).
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return items, nil
}

func (r *collectionRepository) GetAllStates(ctx context.Context, userID int64) ([]models.CollectionState, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectStatesQuery(userID)
	if err != nil {
		return nil, err
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "collectionRepository.GetAllStates").
			Int64("user_id", userID).
			Msg("failed to execute query for getting all states")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var states []models.CollectionState
	for rows.Next() {
		var s models.CollectionState
		if scanErr := rows.Scan(&s.UID, &s.Hash, &s.Version, &s.BaseVersion, &s.Deleted, &s.UpdatedAt); scanErr != nil {
			log.Err(scanErr).
				Str("func", "collectionRepository.GetAllStates").
				Int64("user_id", userID).
				Msg("failed to scan collection state row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		states = append(states, s)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "collectionRepository.GetAllStates").
			Int64("user_id", userID).
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return states, nil
}

func (r *collectionRepository) DeleteCollections(ctx context.Context, userID int64, uids ...string) error {
	if len(uids) == 0 {
		return nil
	}
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteCollectionsQuery(userID, uids)
	if err != nil {
		return err
	}

	if _, err = r.DB.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "collectionRepository.DeleteCollections").
			Int64("user_id", userID).
			Strs("uids", uids).
			Msg("failed to delete collections")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanCollection(row rowScanner) (models.Collection, error) {
	var c models.Collection
	err := row.Scan(
		&c.UID,
		&c.UserID,
		&c.Meta,
		&c.Version,
		&c.BaseVersion,
		&c.Hash,
		&c.Deleted,
		&c.CreatedAt,
		&c.UpdatedAt,
	)
	return c, err
}
