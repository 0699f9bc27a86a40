// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/soletraderai/teachy-sub001/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_store_mock.go -package=mock

// LocalSessionRepository persists the record store. Position orders the
// records: lower positions come first in list views.
type LocalSessionRepository interface {
	SaveSession(ctx context.Context, session models.Session, position int64) error
	DeleteSession(ctx context.Context, id string) error
	ReplaceSessions(ctx context.Context, sessions []models.Session) error
	LoadSessions(ctx context.Context) ([]StoredSession, error)
}

// LocalSyncQueueRepository persists sync queue entries. Seq keeps the
// order in which sessions were first queued.
type LocalSyncQueueRepository interface {
	SaveEntry(ctx context.Context, entry models.SyncQueueEntry, seq int64) error
	DeleteEntry(ctx context.Context, sessionID string) error
	DeleteAllEntries(ctx context.Context) error
	LoadEntries(ctx context.Context) ([]StoredEntry, error)
}

// LocalKVRepository stores small client settings: the bearer token, the
// last sync time and the migration flag.
type LocalKVRepository interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}

// StoredSession is a persisted session with its list position.
type StoredSession struct {
	Session  models.Session
	Position int64
}

// StoredEntry is a persisted sync queue entry with its queue sequence.
type StoredEntry struct {
	Entry models.SyncQueueEntry
	Seq   int64
}
