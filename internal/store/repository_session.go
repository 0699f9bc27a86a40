// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/soletraderai/teachy-sub001/internal/logger"
	"github.com/soletraderai/teachy-sub001/internal/utils"
	"github.com/soletraderai/teachy-sub001/models"
)

// sessionRepository is the PostgreSQL-backed implementation of
// [RemoteSessionRepository]. Sessions are addressed per user by either the
// server-assigned id or the client-generated id.
type sessionRepository struct {
	db     *DB
	ids    *utils.UUIDGenerator
	logger *logger.Logger
}

// NewSessionRepository constructs a [RemoteSessionRepository] backed by db.
func NewSessionRepository(db *DB, logger *logger.Logger) RemoteSessionRepository {
	logger.Debug().Msg("creating session repository")
	return &sessionRepository{
		db:     db,
		ids:    utils.NewUUIDGenerator(),
		logger: logger,
	}
}

// UpsertSession creates the session or replaces the stored copy with the
// same client id. Repeating the call with the same session is a no-op apart
// from updated_at, which keeps client retries idempotent.
func (r *sessionRepository) UpsertSession(ctx context.Context, userID string, session models.Session) (models.RemoteSession, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildUpsertRemoteSessionQuery(r.ids.Generate(), userID, session)
	if err != nil {
		log.Err(err).Str("func", "*sessionRepository.UpsertSession").Msg("failed to create query")
		return models.RemoteSession{}, err
	}

	remote, err := scanRemoteSession(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		log.Err(err).
			Str("func", "*sessionRepository.UpsertSession").
			Str("session_id", session.ID).
			Msg("failed to upsert session")
		if errors.Is(err, sql.ErrNoRows) {
			return models.RemoteSession{}, ErrSessionNotSaved
		}
		return models.RemoteSession{}, r.db.wrapDriverError(err, ErrExecutingQuery)
	}
	remote.UserID = userID

	return remote, nil
}

// GetSession returns the session matching key.
func (r *sessionRepository) GetSession(ctx context.Context, userID, key string) (models.RemoteSession, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildGetRemoteSessionQuery(userID, key, false)
	if err != nil {
		return models.RemoteSession{}, err
	}

	remote, err := scanRemoteSession(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.RemoteSession{}, ErrSessionNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*sessionRepository.GetSession").Str("key", key).Msg("failed to get session")
		return models.RemoteSession{}, r.db.wrapDriverError(err, ErrExecutingQuery)
	}
	remote.UserID = userID

	return remote, nil
}

// UpdateSession applies update to the stored session inside a transaction
// holding a row lock, so concurrent partial updates don't overwrite each
// other. The status never moves backwards.
func (r *sessionRepository) UpdateSession(ctx context.Context, userID, key string, update models.SessionUpdate) (models.RemoteSession, error) {
	log := logger.FromContext(ctx)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "*sessionRepository.UpdateSession").Msg("failed to begin transaction")
		return models.RemoteSession{}, r.db.wrapDriverError(err, ErrBeginningTransaction)
	}
	defer tx.Rollback()

	query, args, err := buildGetRemoteSessionQuery(userID, key, true)
	if err != nil {
		return models.RemoteSession{}, err
	}

	remote, err := scanRemoteSession(tx.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.RemoteSession{}, ErrSessionNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*sessionRepository.UpdateSession").Str("key", key).Msg("failed to lock session")
		return models.RemoteSession{}, r.db.wrapDriverError(err, ErrExecutingQuery)
	}

	update.Force = false
	remote.Session = update.Apply(remote.Session)

	query, args, err = buildUpdateRemoteSessionQuery(remote.RemoteID, remote.Session)
	if err != nil {
		return models.RemoteSession{}, err
	}

	var updatedAt time.Time
	if err = tx.QueryRowContext(ctx, query, args...).Scan(&updatedAt); err != nil {
		log.Err(err).Str("func", "*sessionRepository.UpdateSession").Str("key", key).Msg("failed to update session")
		return models.RemoteSession{}, r.db.wrapDriverError(err, ErrExecutingStatement)
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).Str("func", "*sessionRepository.UpdateSession").Msg("failed to commit transaction")
		return models.RemoteSession{}, r.db.wrapDriverError(err, ErrCommitingTransaction)
	}

	remote.UserID = userID
	remote.UpdatedAt = updatedAt
	return remote, nil
}

// DeleteSession removes the session matching key. Deleting an unknown
// session returns [ErrSessionNotFound].
func (r *sessionRepository) DeleteSession(ctx context.Context, userID, key string) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteRemoteSessionQuery(userID, key)
	if err != nil {
		return err
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*sessionRepository.DeleteSession").Str("key", key).Msg("failed to delete session")
		return r.db.wrapDriverError(err, ErrExecutingStatement)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrSessionNotFound
	}

	return nil
}

// ListSessions returns every session of the user, newest first.
func (r *sessionRepository) ListSessions(ctx context.Context, userID string) ([]models.RemoteSession, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListRemoteSessionsQuery(userID)
	if err != nil {
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*sessionRepository.ListSessions").Str("user_id", userID).Msg("failed to list sessions")
		return nil, r.db.wrapDriverError(err, ErrExecutingQuery)
	}
	defer rows.Close()

	sessions := make([]models.RemoteSession, 0, 16)
	for rows.Next() {
		remote, scanErr := scanRemoteSession(rows)
		if scanErr != nil {
			log.Err(scanErr).Str("func", "*sessionRepository.ListSessions").Msg("failed to scan session row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		remote.UserID = userID
		sessions = append(sessions, remote)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).Str("func", "*sessionRepository.ListSessions").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return sessions, nil
}

// LogCommitment appends a commitment record.
func (r *sessionRepository) LogCommitment(ctx context.Context, userID string, commitment models.Commitment) error {
	query, args, err := buildLogCommitmentQuery(userID, commitment)
	if err != nil {
		return err
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "*sessionRepository.LogCommitment").
			Str("session_id", commitment.SessionID).
			Msg("failed to log commitment")
		return r.db.wrapDriverError(err, ErrExecutingStatement)
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRemoteSession(row rowScanner) (models.RemoteSession, error) {
	var (
		remote    models.RemoteSession
		clientID  string
		createdAt int64
		payload   []byte
	)

	if err := row.Scan(&remote.RemoteID, &clientID, &createdAt, &payload, &remote.UpdatedAt); err != nil {
		return models.RemoteSession{}, err
	}
	if err := decodeRemotePayload(&remote, clientID, createdAt, payload); err != nil {
		return models.RemoteSession{}, err
	}

	return remote, nil
}
