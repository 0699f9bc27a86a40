// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "strings"

// validate checks that the final merged [StructuredConfig] satisfies the
// invariants shared by both roles. Role-specific requirements live in
// [ClientConfig.validate] and [ServerConfig.validate].
func (cfg *StructuredConfig) validate() error {
	if cfg.Workers.PoolSize < 0 || cfg.Workers.RetryCeiling < 0 || cfg.Workers.MigrationConcurrency < 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Storage.DB.DSN == "" || strings.Contains(cfg.Storage.DB.DSN, "memory") {
		return ErrInvalidStorageConfigs
	}

	if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout == 0 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Workers.SyncInterval == 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}

func (cfg *ServerConfig) validate() error {
	if cfg.HTTPAddress == "" {
		return ErrInvalidServerConfigs
	}

	if cfg.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.TokenSignKey == "" || cfg.TokenIssuer == "" {
		return ErrInvalidAppConfigs
	}

	return nil
}
