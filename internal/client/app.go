// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/soletraderai/teachy-sub001/internal/adapter"
	"github.com/soletraderai/teachy-sub001/internal/config"
	"github.com/soletraderai/teachy-sub001/internal/logger"
	"github.com/soletraderai/teachy-sub001/internal/service"
	"github.com/soletraderai/teachy-sub001/internal/store"
	"github.com/soletraderai/teachy-sub001/internal/tui"
	"github.com/soletraderai/teachy-sub001/internal/workers"
)

// UI is the interactive surface driven by the App. Run blocks until the user
// quits or ctx is cancelled.
type UI interface {
	Run(ctx context.Context) error
}

type App struct {
	storages *store.ClientStorages
	services *service.ClientServices
	workers  *workers.Workers
	ui       UI

	logger *logger.Logger
}

// NewApp opens the local replica and wires the client services. With
// cfg.App.Headless set the App only runs the background sync until it
// receives a stop signal.
func NewApp(ctx context.Context, cfg *config.ClientConfig, logger *logger.Logger) (*App, error) {
	storages, err := store.NewClientStorages(ctx, cfg.Storage, logger)
	if err != nil {
		return nil, fmt.Errorf("create local storage: %w", err)
	}

	gateway, err := adapter.NewHTTPRemoteGateway(cfg.Adapter, logger)
	if err != nil {
		storages.Close()
		return nil, fmt.Errorf("create remote gateway: %w", err)
	}

	services := service.NewClientServices(storages, gateway, cfg.Workers, logger)

	var ui UI
	if !cfg.App.Headless {
		if ui, err = tui.New(services, logger); err != nil {
			storages.Close()
			return nil, fmt.Errorf("create ui: %w", err)
		}
	}

	return newApp(storages, services, ui, logger), nil
}

func newApp(storages *store.ClientStorages, services *service.ClientServices, ui UI, logger *logger.Logger) *App {
	services.AuthService.OnLogout(func(_ context.Context, reason string) {
		logger.Warn().Str("reason", reason).Int("pending", services.SessionService.GetPendingSyncCount()).
			Msg("signed out, pending changes stay queued until the next sign in")
	})

	return &App{
		storages: storages,
		services: services,
		workers:  workers.NewWorkers(services.Coordinator, services.SyncJob),
		ui:       ui,
		logger:   logger,
	}
}

// Run blocks until the UI exits or SIGINT/SIGTERM arrives.
func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	return a.run(ctx)
}

func (a *App) run(ctx context.Context) error {
	a.workers.Run()
	defer a.shutdown()

	// a restored token fires the login hook, which starts a sync pass
	if err := a.services.AuthService.Restore(ctx); err != nil {
		a.logger.Err(err).Str("func", "*App.run").Msg("error restoring sign-in")
	}

	if a.ui == nil {
		a.logger.Info().Msg("running headless")
		<-ctx.Done()
		return nil
	}

	return a.ui.Run(ctx)
}

func (a *App) shutdown() {
	a.workers.Stop()

	if err := a.storages.Close(); err != nil {
		a.logger.Err(err).Str("func", "*App.shutdown").Msg("error closing local storage")
	}
	a.logger.Info().Msg("client stopped")
}
