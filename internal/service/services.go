// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/soletraderai/teachy-sub001/internal/config"
	"github.com/soletraderai/teachy-sub001/internal/logger"
	"github.com/soletraderai/teachy-sub001/internal/store"
)

type Services struct {
	AuthService    AuthService
	SessionService SessionService
}

func NewServices(storages *store.Storages, cfg config.ServerConfig, logger *logger.Logger) *Services {
	return &Services{
		AuthService:    NewAuthService(cfg.TokenSignKey, cfg.TokenIssuer, DefaultTokenDuration, logger),
		SessionService: NewSessionValidationService().Wrap(NewSessionService(storages.Sessions, logger)),
	}
}
