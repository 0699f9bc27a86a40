// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the client's transport to the remote session
// store.
//
// The primary abstraction is [RemoteGateway], which decouples the sync
// coordinator from the underlying protocol. The package ships an HTTP/REST
// implementation ([NewHTTPRemoteGateway]).
//
// Failures are mapped to the sentinel values in errors.go so that callers
// can classify them with [errors.Is]: [ErrNetwork] is retryable,
// [ErrValidation] is not, [ErrAuth] means the credential was rejected and
// [ErrNotFound] means the remote store has no such session.
package adapter

import (
	"context"

	"github.com/soletraderai/teachy-sub001/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/remote_gateway_mock.go -package=mock

// RemoteGateway is the remote session store as seen by the client. key is
// the remote id when one is known, otherwise the client-generated id; the
// remote store accepts both.
type RemoteGateway interface {
	// SetToken stores the bearer token attached to every subsequent request.
	// An empty token clears it.
	SetToken(token string)

	// Token returns the bearer token currently held by the gateway.
	Token() string

	// Create upserts the whole session keyed by its client id and returns
	// the remote id. Repeating it with the same session is harmless.
	Create(ctx context.Context, session models.Session) (string, error)

	// Update applies a partial update.
	Update(ctx context.Context, key string, update models.SessionUpdate) error

	// Complete marks the session completed.
	Complete(ctx context.Context, key string) error

	// Delete removes the session.
	Delete(ctx context.Context, key string) error

	// List returns the caller's remote snapshot.
	List(ctx context.Context) ([]models.RemoteSession, error)

	// LogCommitment records time spent in a session.
	LogCommitment(ctx context.Context, commitment models.Commitment) error
}
