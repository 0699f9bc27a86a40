// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/soletraderai/teachy-sub001/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// SessionService is the session server's business layer. Every method is
// scoped to the sessions owned by userID; key is either the remote id or the
// client-generated session id.
type SessionService interface {
	// UpsertSession stores session, replacing an earlier copy with the same
	// client id, and returns it with its remote id.
	UpsertSession(ctx context.Context, userID string, session models.Session) (models.RemoteSession, error)
	GetSession(ctx context.Context, userID, key string) (models.RemoteSession, error)
	UpdateSession(ctx context.Context, userID, key string, update models.SessionUpdate) (models.RemoteSession, error)
	CompleteSession(ctx context.Context, userID, key string) (models.RemoteSession, error)
	DeleteSession(ctx context.Context, userID, key string) error
	ListSessions(ctx context.Context, userID string) ([]models.RemoteSession, error)
	LogCommitment(ctx context.Context, userID string, commitment models.Commitment) error
}

// AuthService issues and verifies the bearer tokens accepted by the session
// server. Accounts live elsewhere: the token subject is the session owner.
type AuthService interface {
	CreateToken(ctx context.Context, userID string) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// SessionServiceWrapper defines middleware composition for SessionService.
// Implementations wrap an existing SessionService to add behavior such as
// validation.
type SessionServiceWrapper interface {
	Wrap(SessionService) SessionService // returns a decorated SessionService applying additional behavior
}
