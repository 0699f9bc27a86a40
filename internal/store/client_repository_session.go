// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/soletraderai/teachy-sub001/internal/logger"
	"github.com/soletraderai/teachy-sub001/models"
)

// localSessionRepository is the SQLite implementation of
// [LocalSessionRepository].
type localSessionRepository struct {
	*DB
	logger *logger.Logger
}

func NewLocalSessionRepository(db *DB, logger *logger.Logger) LocalSessionRepository {
	return &localSessionRepository{
		DB:     db,
		logger: logger,
	}
}

func (l *localSessionRepository) SaveSession(ctx context.Context, session models.Session, position int64) error {
	log := logger.FromContext(ctx)

	query, args, err := buildSaveSessionQuery(session, position)
	if err != nil {
		log.Err(err).
			Str("func", "localSessionRepository.SaveSession").
			Str("session_id", session.ID).
			Msg("failed to build query")
		return err
	}

	if _, err = l.DB.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "localSessionRepository.SaveSession").
			Str("session_id", session.ID).
			Msg("failed to save session")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (l *localSessionRepository) DeleteSession(ctx context.Context, id string) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteSessionQuery(id)
	if err != nil {
		return err
	}

	if _, err = l.DB.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "localSessionRepository.DeleteSession").
			Str("session_id", id).
			Msg("failed to delete session")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

// ReplaceSessions swaps the whole table for sessions in one transaction.
// Positions follow slice order.
func (l *localSessionRepository) ReplaceSessions(ctx context.Context, sessions []models.Session) error {
	log := logger.FromContext(ctx)

	tx, err := l.DB.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "localSessionRepository.ReplaceSessions").Msg("failed to begin transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	clearQuery, clearArgs, err := sqliteBuilder.Delete(sessionsTable).ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	if _, err = tx.ExecContext(ctx, clearQuery, clearArgs...); err != nil {
		log.Err(err).Str("func", "localSessionRepository.ReplaceSessions").Msg("failed to clear sessions")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	for i, session := range sessions {
		query, args, err := buildSaveSessionQuery(session, int64(i))
		if err != nil {
			return err
		}
		if _, err = tx.ExecContext(ctx, query, args...); err != nil {
			log.Err(err).
				Str("func", "localSessionRepository.ReplaceSessions").
				Str("session_id", session.ID).
				Int("iteration", i).
				Msg("failed to insert session")
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).Str("func", "localSessionRepository.ReplaceSessions").Msg("failed to commit transaction")
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return nil
}

func (l *localSessionRepository) LoadSessions(ctx context.Context) ([]StoredSession, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildLoadSessionsQuery()
	if err != nil {
		return nil, err
	}

	rows, err := l.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "localSessionRepository.LoadSessions").Msg("failed to query sessions")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var stored []StoredSession
	for rows.Next() {
		var (
			item     StoredSession
			status   string
			topics   string
			progress sql.NullString
		)

		scanErr := rows.Scan(
			&item.Session.ID,
			&item.Session.CreatedAt,
			&item.Session.Title,
			&item.Session.VideoURL,
			&status,
			&item.Session.Score,
			&topics,
			&progress,
			&item.Session.RemoteID,
			&item.Position,
		)
		if scanErr != nil {
			log.Err(scanErr).Str("func", "localSessionRepository.LoadSessions").Msg("failed to scan session row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		item.Session.Status = models.SessionStatus(status)
		if err := decodeSessionPayload(&item.Session, topics, progress); err != nil {
			log.Err(err).
				Str("func", "localSessionRepository.LoadSessions").
				Str("session_id", item.Session.ID).
				Msg("failed to decode session payload")
			return nil, err
		}

		stored = append(stored, item)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).Str("func", "localSessionRepository.LoadSessions").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return stored, nil
}
