// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/soletraderai/teachy-sub001/internal/adapter"
	"github.com/soletraderai/teachy-sub001/internal/logger"
	"github.com/soletraderai/teachy-sub001/internal/store"
	"github.com/soletraderai/teachy-sub001/internal/validators"
	"github.com/soletraderai/teachy-sub001/models"
	"golang.org/x/sync/errgroup"
)

const defaultMigrationConcurrency = 4

type migrationDriver struct {
	records     *store.RecordStore
	gateway     adapter.RemoteGateway
	auth        ClientAuthService
	kv          store.LocalKVRepository
	validator   validators.Validator
	concurrency int

	logger *logger.Logger
}

func NewMigrationDriver(
	records *store.RecordStore,
	gateway adapter.RemoteGateway,
	auth ClientAuthService,
	kv store.LocalKVRepository,
	concurrency int,
	logger *logger.Logger,
) MigrationDriver {
	if concurrency <= 0 {
		concurrency = defaultMigrationConcurrency
	}
	return &migrationDriver{
		records:     records,
		gateway:     gateway,
		auth:        auth,
		kv:          kv,
		validator:   validators.NewSessionValidator(),
		concurrency: concurrency,
		logger:      logger,
	}
}

// Migrate uploads every local record, then clears the local collection and
// dismisses the migration prompt whatever the outcome. Records missing an
// identity field are skipped and reported as failed.
//
// Returns ErrNotAuthenticated when logged out, or ErrMigrationFailed when
// at least one upload was attempted and none succeeded.
func (m *migrationDriver) Migrate(ctx context.Context) (models.MigrationResult, error) {
	if !m.auth.IsAuthenticated() {
		return models.MigrationResult{}, ErrNotAuthenticated
	}

	var (
		result models.MigrationResult
		mu     sync.Mutex
	)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(m.concurrency)

	for _, session := range m.records.List() {
		if err := m.validator.Validate(ctx, session, validators.IdentityFields...); err != nil {
			m.logger.Warn().Err(err).Str("func", "*migrationDriver.Migrate").Str("session_id", session.ID).Msg("skipping session without identity")
			result.Skipped++
			result.Failed = append(result.Failed, session.ID)
			continue
		}

		result.Attempted++
		session := session
		g.Go(func() error {
			_, err := m.gateway.Create(gctx, session)

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				m.logger.Err(err).Str("func", "*migrationDriver.Migrate").Str("session_id", session.ID).Msg("upload failed")
				result.Failed = append(result.Failed, session.ID)
				return nil
			}
			result.Succeeded++
			return nil
		})
	}
	_ = g.Wait()

	m.records.Clear(ctx)
	if err := m.kv.Set(ctx, store.KeyMigrationDismissed, "true"); err != nil {
		m.logger.Err(err).Str("func", "*migrationDriver.Migrate").Msg("failed to persist migration flag")
	}

	if result.Attempted > 0 && result.Succeeded == 0 {
		return result, fmt.Errorf("%w: %d attempted", ErrMigrationFailed, result.Attempted)
	}
	if len(result.Failed) > 0 {
		m.logger.Warn().
			Str("func", "*migrationDriver.Migrate").
			Int("attempted", result.Attempted).
			Int("succeeded", result.Succeeded).
			Strs("failed", result.Failed).
			Msg("migration partially succeeded")
	}

	return result, nil
}

// NeedsMigration reports whether there are local records to offer for
// upload and the user hasn't dismissed the prompt.
func (m *migrationDriver) NeedsMigration(ctx context.Context) bool {
	return m.auth.IsAuthenticated() && m.records.Len() > 0 && !m.MigrationDismissed(ctx)
}

func (m *migrationDriver) MigrationDismissed(ctx context.Context) bool {
	v, err := m.kv.Get(ctx, store.KeyMigrationDismissed)
	if err != nil {
		if !errors.Is(err, store.ErrKeyNotFound) {
			m.logger.Err(err).Str("func", "*migrationDriver.MigrationDismissed").Msg("failed to read migration flag")
		}
		return false
	}
	return v == "true"
}

func (m *migrationDriver) DismissMigration(ctx context.Context) error {
	if err := m.kv.Set(ctx, store.KeyMigrationDismissed, "true"); err != nil {
		return fmt.Errorf("error dismissing migration: %w", err)
	}
	return nil
}
