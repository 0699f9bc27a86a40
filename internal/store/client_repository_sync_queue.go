// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"
	"time"

	"github.com/soletraderai/teachy-sub001/internal/logger"
	"github.com/soletraderai/teachy-sub001/models"
)

type localSyncQueueRepository struct {
	*DB
	logger *logger.Logger
}

func NewLocalSyncQueueRepository(db *DB, logger *logger.Logger) LocalSyncQueueRepository {
	return &localSyncQueueRepository{
		DB:     db,
		logger: logger,
	}
}

func (l *localSyncQueueRepository) SaveEntry(ctx context.Context, entry models.SyncQueueEntry, seq int64) error {
	log := logger.FromContext(ctx)

	query, args, err := buildSaveEntryQuery(entry, seq)
	if err != nil {
		return err
	}

	if _, err = l.DB.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "localSyncQueueRepository.SaveEntry").
			Str("session_id", entry.SessionID).
			Int("attempts", entry.Attempts).
			Msg("failed to save sync queue entry")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (l *localSyncQueueRepository) DeleteEntry(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return nil
	}
	return l.deleteEntries(ctx, sessionID)
}

func (l *localSyncQueueRepository) DeleteAllEntries(ctx context.Context) error {
	return l.deleteEntries(ctx, "")
}

func (l *localSyncQueueRepository) deleteEntries(ctx context.Context, sessionID string) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteEntryQuery(sessionID)
	if err != nil {
		return err
	}

	if _, err = l.DB.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "localSyncQueueRepository.deleteEntries").
			Str("session_id", sessionID).
			Msg("failed to delete sync queue entries")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (l *localSyncQueueRepository) LoadEntries(ctx context.Context) ([]StoredEntry, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildLoadEntriesQuery()
	if err != nil {
		return nil, err
	}

	rows, err := l.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "localSyncQueueRepository.LoadEntries").Msg("failed to query sync queue")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var entries []StoredEntry
	for rows.Next() {
		var (
			item      StoredEntry
			updatedAt int64
		)

		scanErr := rows.Scan(
			&item.Entry.SessionID,
			&item.Entry.LastError,
			&item.Entry.Attempts,
			&item.Entry.Pending,
			&item.Seq,
			&updatedAt,
		)
		if scanErr != nil {
			log.Err(scanErr).Str("func", "localSyncQueueRepository.LoadEntries").Msg("failed to scan sync queue row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		item.Entry.UpdatedAt = time.UnixMilli(updatedAt)

		entries = append(entries, item)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return entries, nil
}
