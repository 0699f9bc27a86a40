// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"database/sql"
	"encoding/json"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/soletraderai/teachy-sub001/models"
)

const (
	sessionsTable  = "sessions"
	syncQueueTable = "sync_queue"
	kvTable        = "kv"
)

// sqlite placeholders are the squirrel default ("?").
var sqliteBuilder = sq.StatementBuilder.PlaceholderFormat(sq.Question)

var localSessionColumns = []string{
	"id", "created_at", "title", "video_url", "status", "score",
	"topics", "progress", "remote_id", "position",
}

var syncQueueColumns = []string{
	"session_id", "last_error", "attempts", "pending", "seq", "updated_at",
}

func buildSaveSessionQuery(session models.Session, position int64) (string, []any, error) {
	topics, progress, err := encodeSessionPayload(session)
	if err != nil {
		return "", nil, err
	}

	query, args, err := sqliteBuilder.
		Insert(sessionsTable).
		Options("OR REPLACE").
		Columns(localSessionColumns...).
		Values(
			session.ID,
			session.CreatedAt,
			session.Title,
			session.VideoURL,
			string(session.Status),
			session.Score,
			topics,
			progress,
			session.RemoteID,
			position,
		).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

func buildDeleteSessionQuery(id string) (string, []any, error) {
	query, args, err := sqliteBuilder.Delete(sessionsTable).Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildLoadSessionsQuery() (string, []any, error) {
	query, args, err := sqliteBuilder.
		Select(localSessionColumns...).
		From(sessionsTable).
		OrderBy("position ASC", "created_at DESC").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildSaveEntryQuery(entry models.SyncQueueEntry, seq int64) (string, []any, error) {
	query, args, err := sqliteBuilder.
		Insert(syncQueueTable).
		Options("OR REPLACE").
		Columns(syncQueueColumns...).
		Values(
			entry.SessionID,
			entry.LastError,
			entry.Attempts,
			entry.Pending,
			seq,
			entry.UpdatedAt.UnixMilli(),
		).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildDeleteEntryQuery(sessionID string) (string, []any, error) {
	deleteQuery := sqliteBuilder.Delete(syncQueueTable)
	if sessionID != "" {
		deleteQuery = deleteQuery.Where(sq.Eq{"session_id": sessionID})
	}

	query, args, err := deleteQuery.ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildLoadEntriesQuery() (string, []any, error) {
	query, args, err := sqliteBuilder.
		Select(syncQueueColumns...).
		From(syncQueueTable).
		OrderBy("seq ASC").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func encodeSessionPayload(session models.Session) (string, sql.NullString, error) {
	topics := session.Topics
	if topics == nil {
		topics = []models.Topic{}
	}

	topicsJSON, err := json.Marshal(topics)
	if err != nil {
		return "", sql.NullString{}, fmt.Errorf("%w: %w", ErrEncodingPayload, err)
	}

	var progress sql.NullString
	if session.Progress != nil {
		progressJSON, err := json.Marshal(session.Progress)
		if err != nil {
			return "", sql.NullString{}, fmt.Errorf("%w: %w", ErrEncodingPayload, err)
		}
		progress = sql.NullString{String: string(progressJSON), Valid: true}
	}

	return string(topicsJSON), progress, nil
}

func decodeSessionPayload(session *models.Session, topics string, progress sql.NullString) error {
	if err := json.Unmarshal([]byte(topics), &session.Topics); err != nil {
		return fmt.Errorf("%w: %w", ErrDecodingPayload, err)
	}

	if progress.Valid {
		session.Progress = new(models.Progress)
		if err := json.Unmarshal([]byte(progress.String), session.Progress); err != nil {
			return fmt.Errorf("%w: %w", ErrDecodingPayload, err)
		}
	}

	return nil
}
