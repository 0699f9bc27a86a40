// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/soletraderai/teachy-sub001/internal/utils"
	"github.com/soletraderai/teachy-sub001/internal/validators"
	"github.com/soletraderai/teachy-sub001/models"
)

// SessionValidationService checks ownership and input before delegating to
// the wrapped SessionService.
type SessionValidationService struct {
	inner     SessionService
	validator validators.Validator
}

func NewSessionValidationService() SessionServiceWrapper {
	return &SessionValidationService{
		validator: validators.NewSessionValidator(),
	}
}

func (v *SessionValidationService) UpsertSession(ctx context.Context, userID string, session models.Session) (models.RemoteSession, error) {
	if err := v.checkOwner(ctx, userID); err != nil {
		return models.RemoteSession{}, err
	}
	if err := v.validator.Validate(ctx, session); err != nil {
		return models.RemoteSession{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.UpsertSession(ctx, userID, session)
}

func (v *SessionValidationService) GetSession(ctx context.Context, userID, key string) (models.RemoteSession, error) {
	if err := v.checkKey(ctx, userID, key); err != nil {
		return models.RemoteSession{}, err
	}

	return v.inner.GetSession(ctx, userID, key)
}

func (v *SessionValidationService) UpdateSession(ctx context.Context, userID, key string, update models.SessionUpdate) (models.RemoteSession, error) {
	if err := v.checkKey(ctx, userID, key); err != nil {
		return models.RemoteSession{}, err
	}
	if err := v.validator.Validate(ctx, update); err != nil {
		return models.RemoteSession{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.UpdateSession(ctx, userID, key, update)
}

func (v *SessionValidationService) CompleteSession(ctx context.Context, userID, key string) (models.RemoteSession, error) {
	if err := v.checkKey(ctx, userID, key); err != nil {
		return models.RemoteSession{}, err
	}

	return v.inner.CompleteSession(ctx, userID, key)
}

func (v *SessionValidationService) DeleteSession(ctx context.Context, userID, key string) error {
	if err := v.checkKey(ctx, userID, key); err != nil {
		return err
	}

	return v.inner.DeleteSession(ctx, userID, key)
}

func (v *SessionValidationService) ListSessions(ctx context.Context, userID string) ([]models.RemoteSession, error) {
	if err := v.checkOwner(ctx, userID); err != nil {
		return nil, err
	}

	return v.inner.ListSessions(ctx, userID)
}

func (v *SessionValidationService) LogCommitment(ctx context.Context, userID string, commitment models.Commitment) error {
	if err := v.checkOwner(ctx, userID); err != nil {
		return err
	}
	if err := v.validator.Validate(ctx, commitment); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.LogCommitment(ctx, userID, commitment)
}

func (v *SessionValidationService) Wrap(wrapped SessionService) SessionService {
	v.inner = wrapped
	return v
}

// checkOwner makes sure userID is the authenticated subject of the request.
func (v *SessionValidationService) checkOwner(ctx context.Context, userID string) error {
	if userID == "" {
		return ErrValidationNoUserID
	}
	subject, ok := utils.GetUserIDFromContext(ctx)
	if !ok || subject != userID {
		return ErrUnauthorizedAccessToDifferentUserData
	}
	return nil
}

func (v *SessionValidationService) checkKey(ctx context.Context, userID, key string) error {
	if err := v.checkOwner(ctx, userID); err != nil {
		return err
	}
	if strings.TrimSpace(key) == "" {
		return fmt.Errorf("%w: empty session key", ErrInvalidDataProvided)
	}
	return nil
}
