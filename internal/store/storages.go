// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/soletraderai/teachy-sub001/internal/logger"
)

// Storages groups the session server's repositories.
type Storages struct {
	Sessions RemoteSessionRepository

	db *DB
}

// NewStorages connects to PostgreSQL, applies pending migrations and wires
// the repositories.
func NewStorages(ctx context.Context, dsn string, logger *logger.Logger) (*Storages, error) {
	logger.Info().Msg("creating new storages...")

	db, err := NewConnectPostgres(ctx, dsn, logger)
	if err != nil {
		return nil, fmt.Errorf("postgres connection error: %w", err)
	}

	if err = db.Migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &Storages{
		Sessions: NewSessionRepository(db, logger),
		db:       db,
	}, nil
}

// Close releases the database connection.
func (s *Storages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
