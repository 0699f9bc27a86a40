// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"encoding/json"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/soletraderai/teachy-sub001/models"
)

const (
	remoteSessionsTable = "remote_sessions"
	commitmentsTable    = "commitments"

	upsertRemoteSessionSuffix = `ON CONFLICT (user_id, client_id) DO UPDATE SET
			created_at = EXCLUDED.created_at,
			status     = EXCLUDED.status,
			payload    = EXCLUDED.payload,
			updated_at = NOW()
		RETURNING id, client_id, created_at, payload, updated_at`
)

var postgresBuilder = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

var remoteSessionColumns = []string{"id", "client_id", "created_at", "payload", "updated_at"}

// sessionKey matches a session by its remote id or its client id.
func sessionKey(userID, key string) sq.And {
	return sq.And{
		sq.Eq{"user_id": userID},
		sq.Or{sq.Eq{"id": key}, sq.Eq{"client_id": key}},
	}
}

func buildUpsertRemoteSessionQuery(remoteID, userID string, session models.Session) (string, []any, error) {
	payload, err := encodeRemotePayload(session)
	if err != nil {
		return "", nil, err
	}

	query, args, err := postgresBuilder.
		Insert(remoteSessionsTable).
		Columns("id", "user_id", "client_id", "created_at", "status", "payload").
		Values(remoteID, userID, session.ID, session.CreatedAt, string(session.Status), payload).
		Suffix(upsertRemoteSessionSuffix).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildGetRemoteSessionQuery(userID, key string, forUpdate bool) (string, []any, error) {
	selectQuery := postgresBuilder.
		Select(remoteSessionColumns...).
		From(remoteSessionsTable).
		Where(sessionKey(userID, key)).
		Limit(1)
	if forUpdate {
		selectQuery = selectQuery.Suffix("FOR UPDATE")
	}

	query, args, err := selectQuery.ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildUpdateRemoteSessionQuery(remoteID string, session models.Session) (string, []any, error) {
	payload, err := encodeRemotePayload(session)
	if err != nil {
		return "", nil, err
	}

	query, args, err := postgresBuilder.
		Update(remoteSessionsTable).
		Set("status", string(session.Status)).
		Set("payload", payload).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": remoteID}).
		Suffix("RETURNING updated_at").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildDeleteRemoteSessionQuery(userID, key string) (string, []any, error) {
	query, args, err := postgresBuilder.
		Delete(remoteSessionsTable).
		Where(sessionKey(userID, key)).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildListRemoteSessionsQuery(userID string) (string, []any, error) {
	query, args, err := postgresBuilder.
		Select(remoteSessionColumns...).
		From(remoteSessionsTable).
		Where(sq.Eq{"user_id": userID}).
		OrderBy("created_at DESC", "client_id ASC").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildLogCommitmentQuery(userID string, commitment models.Commitment) (string, []any, error) {
	query, args, err := postgresBuilder.
		Insert(commitmentsTable).
		Columns("user_id", "session_id", "minutes_spent", "questions_answered").
		Values(userID, commitment.SessionID, commitment.MinutesSpent, commitment.QuestionsAnswered).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

// encodeRemotePayload stores the session without its remote id; the id
// column is the source of truth for it.
func encodeRemotePayload(session models.Session) ([]byte, error) {
	session.RemoteID = ""
	if session.Topics == nil {
		session.Topics = []models.Topic{}
	}

	payload, err := json.Marshal(session)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEncodingPayload, err)
	}
	return payload, nil
}

func decodeRemotePayload(remote *models.RemoteSession, clientID string, createdAt int64, payload []byte) error {
	if err := json.Unmarshal(payload, &remote.Session); err != nil {
		return fmt.Errorf("%w: %w", ErrDecodingPayload, err)
	}

	remote.Session.ID = clientID
	remote.Session.CreatedAt = createdAt
	remote.Session.RemoteID = remote.RemoteID
	return nil
}
