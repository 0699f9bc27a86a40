// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func validClientConfig() *ClientConfig {
	return &ClientConfig{
		Adapter: ClientAdapter{HTTPAddress: "localhost:8080", RequestTimeout: time.Second},
		Storage: ClientStorage{DB: ClientDB{DSN: "teachy.db"}},
		Workers: ClientWorkers{SyncInterval: time.Minute, PoolSize: 1, RetryCeiling: 3},
	}
}

func TestClientConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *ClientConfig)
		wantErr error
	}{
		{name: "valid", mutate: func(c *ClientConfig) {}},
		{name: "empty dsn", mutate: func(c *ClientConfig) { c.Storage.DB.DSN = "" }, wantErr: ErrInvalidStorageConfigs},
		{name: "memory dsn", mutate: func(c *ClientConfig) { c.Storage.DB.DSN = ":memory:" }, wantErr: ErrInvalidStorageConfigs},
		{name: "no address", mutate: func(c *ClientConfig) { c.Adapter.HTTPAddress = "" }, wantErr: ErrInvalidAdapterConfigs},
		{name: "no timeout", mutate: func(c *ClientConfig) { c.Adapter.RequestTimeout = 0 }, wantErr: ErrInvalidAdapterConfigs},
		{name: "no interval", mutate: func(c *ClientConfig) { c.Workers.SyncInterval = 0 }, wantErr: ErrInvalidWorkerConfigs},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validClientConfig()
			tt.mutate(cfg)

			err := cfg.validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestServerConfig_Validate(t *testing.T) {
	valid := ServerConfig{HTTPAddress: ":8080", DSN: "postgres://x", TokenSignKey: "k", TokenIssuer: "teachy"}
	assert.NoError(t, valid.validate())

	noAddr := valid
	noAddr.HTTPAddress = ""
	assert.ErrorIs(t, noAddr.validate(), ErrInvalidServerConfigs)

	noDSN := valid
	noDSN.DSN = ""
	assert.ErrorIs(t, noDSN.validate(), ErrInvalidStorageConfigs)

	noIssuer := valid
	noIssuer.TokenIssuer = ""
	assert.ErrorIs(t, noIssuer.validate(), ErrInvalidAppConfigs)
}

func TestNewClientConfig_KeepsExplicitWorkerSettings(t *testing.T) {
	cfg := newClientConfig(&StructuredConfig{Workers: Workers{PoolSize: 9, RetryCeiling: 1, MigrationConcurrency: 2}})

	assert.Equal(t, 9, cfg.Workers.PoolSize)
	assert.Equal(t, 1, cfg.Workers.RetryCeiling)
	assert.Equal(t, 2, cfg.Workers.MigrationConcurrency)
}
