// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/soletraderai/teachy-sub001/internal/logger"
)

// Keys of the local settings table.
const (
	KeyAuthToken          = "auth_token"
	KeyLastSyncedAt       = "last_synced_at"
	KeyMigrationDismissed = "migration_dismissed"
)

type localKVRepository struct {
	*DB
	logger *logger.Logger
}

func NewLocalKVRepository(db *DB, logger *logger.Logger) LocalKVRepository {
	return &localKVRepository{
		DB:     db,
		logger: logger,
	}
}

// Get returns ErrKeyNotFound when key is absent.
func (l *localKVRepository) Get(ctx context.Context, key string) (string, error) {
	query, args, err := sqliteBuilder.Select("value").From(kvTable).Where(sq.Eq{"key": key}).ToSql()
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var value string
	err = l.DB.QueryRowContext(ctx, query, args...).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrKeyNotFound
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "localKVRepository.Get").Str("key", key).Msg("failed to read key")
		return "", fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return value, nil
}

func (l *localKVRepository) Set(ctx context.Context, key, value string) error {
	query, args, err := sqliteBuilder.
		Insert(kvTable).
		Options("OR REPLACE").
		Columns("key", "value").
		Values(key, value).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = l.DB.ExecContext(ctx, query, args...); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "localKVRepository.Set").Str("key", key).Msg("failed to write key")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (l *localKVRepository) Delete(ctx context.Context, key string) error {
	query, args, err := sqliteBuilder.Delete(kvTable).Where(sq.Eq{"key": key}).ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = l.DB.ExecContext(ctx, query, args...); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "localKVRepository.Delete").Str("key", key).Msg("failed to delete key")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}
