// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-pim-keeper/internal/logger"
	"github.com/MKhiriev/go-pim-keeper/models"
)

// journalRepository is the SQLite-backed [JournalRepository].
type journalRepository struct {
	*DB
	logger *logger.Logger
}

// NewJournalRepository returns a [JournalRepository] over db.
func NewJournalRepository(db *DB, logger *logger.Logger) JournalRepository {
	return &journalRepository{
		DB:     db,
		logger: logger,
	}
}

// SaveJournals replaces every given journal and its entries inside one
// transaction. Entries keep their slice order through the position column.
func (r *journalRepository) SaveJournals(ctx context.Context, userID int64, journals ...models.EncryptedJournal) error {
	if len(journals) == 0 {
		return nil
	}
	log := logger.FromContext(ctx)

	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).
			Str("func", "journalRepository.SaveJournals").
			Int("count", len(journals)).
			Msg("failed to begin transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	for idx, j := range journals {
		statements := make([]func() (string, []any, error), 0, 3)
		statements = append(statements,
			func() (string, []any, error) { return buildUpsertJournalQuery(userID, j) },
			func() (string, []any, error) { return buildDeleteEntriesQuery(j.Journal.UID) },
		)
		if len(j.Entries) > 0 {
			statements = append(statements, func() (string, []any, error) {
				return buildInsertEntriesQuery(j.Journal.UID, j.Entries)
			})
		}

		for _, build := range statements {
			query, args, buildErr := build()
			if buildErr != nil {
				return buildErr
			}
			if _, execErr := tx.ExecContext(ctx, query, args...); execErr != nil {
				log.Err(execErr).
					Str("func", "journalRepository.SaveJournals").
					Int("iteration", idx+1).
					Str("journal_uid", j.Journal.UID).
					Msg("failed to execute statement in transaction")
				return fmt.Errorf("%w (journal_uid=%s): %w", ErrExecutingStatement, j.Journal.UID, execErr)
			}
		}
	}

	if commitErr := tx.Commit(); commitErr != nil {
		log.Err(commitErr).
			Str("func", "journalRepository.SaveJournals").
			Int("count", len(journals)).
			Msg("failed to commit transaction")
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, commitErr)
	}

	return nil
}

func (r *journalRepository) GetJournals(ctx context.Context, userID int64) ([]models.EncryptedJournal, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectJournalsQuery(userID)
	if err != nil {
		return nil, err
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "journalRepository.GetJournals").
			Int64("user_id", userID).
			Msg("failed to execute query for journals")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	var journals []models.EncryptedJournal
	index := make(map[string]int)
	for rows.Next() {
		j := models.EncryptedJournal{UserID: userID}
		scanErr := rows.Scan(
			&j.Journal.UID,
			&j.Journal.Version,
			&j.Journal.Owner,
			&j.Journal.ReadOnly,
			&j.Collection.UID,
			&j.Collection.Type,
			&j.Collection.DisplayName,
			&j.Collection.Description,
			&j.Collection.Color,
		)
		if scanErr != nil {
			rows.Close()
			log.Err(scanErr).
				Str("func", "journalRepository.GetJournals").
				Int64("user_id", userID).
				Msg("failed to scan journal row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		index[j.Journal.UID] = len(journals)
		journals = append(journals, j)
	}
	rowsErr := rows.Err()
	rows.Close()
	if rowsErr != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	if len(journals) == 0 {
		return journals, nil
	}

	if err = r.attachEntries(ctx, userID, journals, index); err != nil {
		return nil, err
	}

	return journals, nil
}

func (r *journalRepository) attachEntries(ctx context.Context, userID int64, journals []models.EncryptedJournal, index map[string]int) error {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectEntriesQuery(userID)
	if err != nil {
		return err
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "journalRepository.attachEntries").
			Int64("user_id", userID).
			Msg("failed to execute query for journal entries")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			journalUID string
			e          models.EncryptedEntry
		)
		if scanErr := rows.Scan(&journalUID, &e.UID, &e.Action, &e.Content, &e.CreatedAt); scanErr != nil {
			log.Err(scanErr).
				Str("func", "journalRepository.attachEntries").
				Int64("user_id", userID).
				Msg("failed to scan journal entry row")
			return fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		if i, ok := index[journalUID]; ok {
			journals[i].Entries = append(journals[i].Entries, e)
		}
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		return fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}
	return nil
}
