// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/soletraderai/teachy-sub001/internal/adapter"
	"github.com/soletraderai/teachy-sub001/internal/logger"
	"github.com/soletraderai/teachy-sub001/internal/store"
	"github.com/soletraderai/teachy-sub001/internal/utils"
	"github.com/soletraderai/teachy-sub001/models"
)

type clientAuthService struct {
	kv      store.LocalKVRepository
	gateway adapter.RemoteGateway

	mu       sync.RWMutex
	token    models.Token
	loggedIn bool
	onLogin  []func(ctx context.Context)
	onLogout []func(ctx context.Context, reason string)

	now    func() time.Time
	logger *logger.Logger
}

// NewClientAuthService returns a logged out auth service. Call Restore to
// pick up a token persisted by a previous run.
func NewClientAuthService(kv store.LocalKVRepository, gateway adapter.RemoteGateway, logger *logger.Logger) ClientAuthService {
	return &clientAuthService{
		kv:      kv,
		gateway: gateway,
		now:     time.Now,
		logger:  logger,
	}
}

func (a *clientAuthService) Login(ctx context.Context, tokenString string) error {
	token, err := a.parse(tokenString)
	if err != nil {
		a.logger.Err(err).Str("func", "*clientAuthService.Login").Msg("rejected token")
		return err
	}

	if err = a.kv.Set(ctx, store.KeyAuthToken, token.SignedString); err != nil {
		a.logger.Err(err).Str("func", "*clientAuthService.Login").Msg("failed to persist token")
	}

	a.install(token)
	a.logger.Info().Str("func", "*clientAuthService.Login").Str("user_id", token.UserID).Msg("logged in")
	a.fireLogin(ctx)
	return nil
}

func (a *clientAuthService) Logout(ctx context.Context) error {
	a.logout(ctx, "logout")
	if err := a.kv.Delete(ctx, store.KeyAuthToken); err != nil && !errors.Is(err, store.ErrKeyNotFound) {
		return fmt.Errorf("error forgetting token: %w", err)
	}
	return nil
}

func (a *clientAuthService) ForceLogout(ctx context.Context, reason string) {
	if !a.hasToken() {
		return
	}
	a.logger.Warn().Str("func", "*clientAuthService.ForceLogout").Str("reason", reason).Msg("credential rejected, logging out")

	a.logout(ctx, reason)
	if err := a.kv.Delete(ctx, store.KeyAuthToken); err != nil && !errors.Is(err, store.ErrKeyNotFound) {
		a.logger.Err(err).Str("func", "*clientAuthService.ForceLogout").Msg("failed to forget token")
	}
}

func (a *clientAuthService) IsAuthenticated() bool {
	a.mu.RLock()
	defer a.mu.RUnlock()

	return a.loggedIn && !a.expiredLocked()
}

func (a *clientAuthService) CurrentBearerToken() (string, bool) {
	a.mu.RLock()
	defer a.mu.RUnlock()

	if !a.loggedIn || a.expiredLocked() {
		return "", false
	}
	return a.token.SignedString, true
}

func (a *clientAuthService) UserID() string {
	a.mu.RLock()
	defer a.mu.RUnlock()

	if !a.loggedIn {
		return ""
	}
	return a.token.UserID
}

func (a *clientAuthService) Restore(ctx context.Context) error {
	raw, err := a.kv.Get(ctx, store.KeyAuthToken)
	if errors.Is(err, store.ErrKeyNotFound) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("error reading persisted token: %w", err)
	}

	token, err := a.parse(raw)
	if err != nil {
		a.logger.Info().AnErr("reason", err).Str("func", "*clientAuthService.Restore").Msg("discarding persisted token")
		if delErr := a.kv.Delete(ctx, store.KeyAuthToken); delErr != nil && !errors.Is(delErr, store.ErrKeyNotFound) {
			return fmt.Errorf("error forgetting token: %w", delErr)
		}
		return nil
	}

	a.install(token)
	a.fireLogin(ctx)
	return nil
}

func (a *clientAuthService) OnLogin(hook func(ctx context.Context)) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.onLogin = append(a.onLogin, hook)
}

func (a *clientAuthService) OnLogout(hook func(ctx context.Context, reason string)) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.onLogout = append(a.onLogout, hook)
}

func (a *clientAuthService) parse(tokenString string) (models.Token, error) {
	token, err := utils.ParseUnverifiedToken(tokenString)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}
	if token.ExpiresAt != nil && !token.ExpiresAt.After(a.now()) {
		return models.Token{}, ErrTokenIsExpired
	}
	return token, nil
}

func (a *clientAuthService) install(token models.Token) {
	a.mu.Lock()
	a.token = token
	a.loggedIn = true
	a.mu.Unlock()

	a.gateway.SetToken(token.SignedString)
}

func (a *clientAuthService) logout(ctx context.Context, reason string) {
	a.mu.Lock()
	wasLoggedIn := a.loggedIn
	a.token = models.Token{}
	a.loggedIn = false
	hooks := slices.Clone(a.onLogout)
	a.mu.Unlock()

	a.gateway.SetToken("")
	if !wasLoggedIn {
		return
	}
	for _, hook := range hooks {
		hook(ctx, reason)
	}
}

func (a *clientAuthService) fireLogin(ctx context.Context) {
	a.mu.RLock()
	hooks := slices.Clone(a.onLogin)
	a.mu.RUnlock()

	for _, hook := range hooks {
		hook(ctx)
	}
}

func (a *clientAuthService) hasToken() bool {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.loggedIn
}

func (a *clientAuthService) expiredLocked() bool {
	return a.token.ExpiresAt != nil && !a.token.ExpiresAt.After(a.now())
}
