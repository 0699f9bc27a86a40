// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/soletraderai/teachy-sub001/internal/logger"
	"github.com/soletraderai/teachy-sub001/internal/store"
	"github.com/soletraderai/teachy-sub001/models"
)

type sessionService struct {
	sessionRepository store.RemoteSessionRepository

	logger *logger.Logger
}

func NewSessionService(sessionRepository store.RemoteSessionRepository, logger *logger.Logger) SessionService {
	return &sessionService{
		sessionRepository: sessionRepository,
		logger:            logger,
	}
}

func (s *sessionService) UpsertSession(ctx context.Context, userID string, session models.Session) (models.RemoteSession, error) {
	return s.sessionRepository.UpsertSession(ctx, userID, session)
}

func (s *sessionService) GetSession(ctx context.Context, userID, key string) (models.RemoteSession, error) {
	return s.sessionRepository.GetSession(ctx, userID, key)
}

func (s *sessionService) UpdateSession(ctx context.Context, userID, key string, update models.SessionUpdate) (models.RemoteSession, error) {
	return s.sessionRepository.UpdateSession(ctx, userID, key, update)
}

// CompleteSession moves the session to completed. Completing an already
// completed session is a no-op.
func (s *sessionService) CompleteSession(ctx context.Context, userID, key string) (models.RemoteSession, error) {
	completed := models.StatusCompleted
	remote, err := s.sessionRepository.UpdateSession(ctx, userID, key, models.SessionUpdate{Status: &completed})
	if err != nil {
		return models.RemoteSession{}, fmt.Errorf("error completing session: %w", err)
	}

	logger.FromContext(ctx).Info().
		Str("func", "*sessionService.CompleteSession").
		Str("session_id", remote.Session.ID).
		Msg("session completed")
	return remote, nil
}

func (s *sessionService) DeleteSession(ctx context.Context, userID, key string) error {
	return s.sessionRepository.DeleteSession(ctx, userID, key)
}

func (s *sessionService) ListSessions(ctx context.Context, userID string) ([]models.RemoteSession, error) {
	return s.sessionRepository.ListSessions(ctx, userID)
}

func (s *sessionService) LogCommitment(ctx context.Context, userID string, commitment models.Commitment) error {
	return s.sessionRepository.LogCommitment(ctx, userID, commitment)
}
