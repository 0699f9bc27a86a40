// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/soletraderai/teachy-sub001/internal/config"
	"github.com/soletraderai/teachy-sub001/internal/logger"
)

// ClientStorages groups the client's SQLite-backed repositories and the
// record store built on top of them.
type ClientStorages struct {
	Sessions LocalSessionRepository
	Queue    LocalSyncQueueRepository
	KV       LocalKVRepository

	// Records is loaded from the replica before it is returned.
	Records *RecordStore

	db *DB
}

// NewClientStorages opens the local replica at cfg.DB.DSN (creating the file
// when missing), applies pending migrations and loads the record store.
func NewClientStorages(ctx context.Context, cfg config.ClientStorage, logger *logger.Logger) (*ClientStorages, error) {
	logger.Info().Msg("creating new storages...")

	db, err := NewConnectSQLite(ctx, cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err = db.Migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	storages := &ClientStorages{
		Sessions: NewLocalSessionRepository(db, logger),
		Queue:    NewLocalSyncQueueRepository(db, logger),
		KV:       NewLocalKVRepository(db, logger),
		db:       db,
	}
	storages.Records = NewRecordStore(storages.Sessions, storages.Queue, logger)

	if err = storages.Records.Load(ctx); err != nil {
		db.Close()
		return nil, err
	}

	return storages, nil
}

// Close releases the database connection.
func (s *ClientStorages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
