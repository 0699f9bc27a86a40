// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"time"
)

const (
	defaultPoolSize             = 4
	defaultRetryCeiling         = 3
	defaultMigrationConcurrency = 4
)

// ClientApp holds client-side application settings derived from the shared
// structured config.
type ClientApp struct {
	// LogFile is where the client logger writes. Empty means "next to the
	// executable".
	LogFile string
	// Headless disables the terminal UI.
	Headless bool
}

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// HTTPAddress is the remote session store address.
	HTTPAddress string
	// RequestTimeout is the default timeout for outbound client requests.
	RequestTimeout time.Duration
}

// ClientDB contains local database connection settings for the client.
type ClientDB struct {
	// DSN is the SQLite database file path.
	DSN string
}

// ClientStorage groups client storage backend settings.
type ClientStorage struct {
	// DB holds local database settings.
	DB ClientDB
}

// ClientWorkers contains client background worker settings.
type ClientWorkers struct {
	// SyncInterval defines how often the periodic sync job runs.
	SyncInterval time.Duration
	// PoolSize is the number of goroutines executing remote writes.
	PoolSize int
	// RetryCeiling is the number of failed attempts tolerated per session.
	RetryCeiling int
	// MigrationConcurrency caps parallel uploads during migration.
	MigrationConcurrency int
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	// App contains application-level client settings.
	App ClientApp
	// Adapter contains the remote store address and timeout.
	Adapter ClientAdapter
	// Storage contains client storage settings.
	Storage ClientStorage
	// Workers contains background job settings.
	Workers ClientWorkers
}

// GetClientConfig builds and validates a client-specific config view from the
// merged structured configuration.
//
// It loads the base config via [GetStructuredConfig], maps only the fields
// relevant to the client runtime, fills worker defaults, and validates the
// resulting [ClientConfig].
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := newClientConfig(cfg)

	return clientCfg, clientCfg.validate()
}

func newClientConfig(cfg *StructuredConfig) *ClientConfig {
	clientCfg := &ClientConfig{
		App: ClientApp{
			LogFile:  cfg.App.LogFile,
			Headless: cfg.App.Headless,
		},
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
		Storage: ClientStorage{
			DB: ClientDB{
				DSN: cfg.Storage.DB.DSN,
			},
		},
		Workers: ClientWorkers{
			SyncInterval:         cfg.Workers.SyncInterval,
			PoolSize:             cfg.Workers.PoolSize,
			RetryCeiling:         cfg.Workers.RetryCeiling,
			MigrationConcurrency: cfg.Workers.MigrationConcurrency,
		},
	}

	if clientCfg.Workers.PoolSize == 0 {
		clientCfg.Workers.PoolSize = defaultPoolSize
	}
	if clientCfg.Workers.RetryCeiling == 0 {
		clientCfg.Workers.RetryCeiling = defaultRetryCeiling
	}
	if clientCfg.Workers.MigrationConcurrency == 0 {
		clientCfg.Workers.MigrationConcurrency = defaultMigrationConcurrency
	}

	return clientCfg
}
