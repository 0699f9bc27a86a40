// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/soletraderai/teachy-sub001/internal/adapter"
	"github.com/soletraderai/teachy-sub001/internal/config"
	"github.com/soletraderai/teachy-sub001/internal/logger"
	"github.com/soletraderai/teachy-sub001/internal/store"
	"github.com/soletraderai/teachy-sub001/internal/workers"
)

type ClientServices struct {
	AuthService    ClientAuthService
	SessionService ClientSessionService
	Coordinator    SyncCoordinator
	Migration      MigrationDriver
	SyncJob        ClientSyncJob
}

// NewClientServices wires the client services together. A login kicks off a
// background sync; the caller owns running and stopping Coordinator and
// SyncJob.
func NewClientServices(storages *store.ClientStorages, gateway adapter.RemoteGateway, cfg config.ClientWorkers, logger *logger.Logger) *ClientServices {
	auth := NewClientAuthService(storages.KV, gateway, logger)
	pool := workers.NewPool(cfg.PoolSize, logger)
	coordinator := NewSyncCoordinator(storages.Records, gateway, auth, storages.KV, pool, cfg.RetryCeiling, logger)
	migration := NewMigrationDriver(storages.Records, gateway, auth, storages.KV, cfg.MigrationConcurrency, logger)
	sessions := NewClientSessionService(storages.Records, coordinator, migration, logger)

	auth.OnLogin(func(ctx context.Context) {
		go coordinator.SyncWithCloud(context.WithoutCancel(ctx))
	})

	return &ClientServices{
		AuthService:    auth,
		SessionService: sessions,
		Coordinator:    coordinator,
		Migration:      migration,
		SyncJob:        NewClientSyncJob(sessions, cfg.SyncInterval),
	}
}
