// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/soletraderai/teachy-sub001/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// RemoteSessionRepository is the session server's PostgreSQL store.
// key is either the remote id or the client-generated session id.
type RemoteSessionRepository interface {
	UpsertSession(ctx context.Context, userID string, session models.Session) (models.RemoteSession, error)
	GetSession(ctx context.Context, userID, key string) (models.RemoteSession, error)
	UpdateSession(ctx context.Context, userID, key string, update models.SessionUpdate) (models.RemoteSession, error)
	DeleteSession(ctx context.Context, userID, key string) error
	ListSessions(ctx context.Context, userID string) ([]models.RemoteSession, error)
	LogCommitment(ctx context.Context, userID string, commitment models.Commitment) error
}
