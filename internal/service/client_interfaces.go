// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"time"

	"github.com/soletraderai/teachy-sub001/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_service_mock.go -package=mock

// ClientAuthService holds the bearer credential the client uses against the
// remote session store. Being logged out is a normal state: every remote
// operation is then skipped and the client works purely locally.
type ClientAuthService interface {
	// Login installs token, persists it and fires the login hooks.
	// Returns ErrInvalidToken or ErrTokenIsExpired for unusable tokens.
	Login(ctx context.Context, token string) error

	// Logout forgets the token and fires the logout hooks.
	Logout(ctx context.Context) error

	// ForceLogout is Logout triggered by the remote store rejecting the
	// credential. It is a no-op when already logged out.
	ForceLogout(ctx context.Context, reason string)

	IsAuthenticated() bool
	CurrentBearerToken() (string, bool)
	UserID() string

	// Restore reloads a persisted token at startup. Expired tokens are
	// discarded.
	Restore(ctx context.Context) error

	OnLogin(hook func(ctx context.Context))
	OnLogout(hook func(ctx context.Context, reason string))
}

// SyncCoordinator pushes local mutations to the remote store in the
// background and keeps the sync queue bookkeeping. None of the On* hooks
// block on the network.
type SyncCoordinator interface {
	OnCreate(ctx context.Context, session models.Session)
	OnUpdate(ctx context.Context, update models.SessionUpdate, prev, next models.Session)
	OnDelete(ctx context.Context, removed models.Session)
	LogCommitment(ctx context.Context, commitment models.Commitment)

	// RetryPendingSyncs re-issues a create-style write for every pending
	// entry and returns once their bookkeeping has been applied. A call made
	// while a pass is running joins that pass.
	RetryPendingSyncs(ctx context.Context)

	// SyncWithCloud reconciles the local store with the remote snapshot and
	// then drains the sync queue. Failures are logged and reported through
	// State; local records are left untouched.
	SyncWithCloud(ctx context.Context)

	State() models.SyncState
	PendingCount() int

	// Wait blocks until every background task submitted so far has been
	// applied.
	Wait()

	Run()
	Stop()
}

// MigrationDriver uploads local-only sessions once the user signs in.
type MigrationDriver interface {
	Migrate(ctx context.Context) (models.MigrationResult, error)
	NeedsMigration(ctx context.Context) bool
	MigrationDismissed(ctx context.Context) bool
	DismissMigration(ctx context.Context) error
}

// ClientSessionService is the session API used by the terminal UI. Every
// mutation is visible locally before the call returns; remote writes follow
// in the background.
type ClientSessionService interface {
	CreateSession(ctx context.Context, draft models.Session) (models.Session, error)
	UpdateSession(ctx context.Context, id string, update models.SessionUpdate) (models.Session, error)
	DeleteSession(ctx context.Context, id string) error

	GetSession(id string) (models.Session, bool)
	ListSessions() []models.Session
	CurrentSession() (models.Session, bool)
	SetCurrentSession(id string) bool

	PauseSession(ctx context.Context, id string) (models.Session, error)
	ResumeSession(ctx context.Context, id string) (models.Session, error)
	EndSessionEarly(ctx context.Context, id string) (models.Session, error)

	SyncWithCloud(ctx context.Context)
	RetryPendingSyncs(ctx context.Context)
	MigrateLocalSessions(ctx context.Context) (models.MigrationResult, error)
	GetPendingSyncCount() int
	SyncState() models.SyncState
}

// ClientSyncJob periodically retries pending writes and reconciles with the
// remote store while the user is signed in.
type ClientSyncJob interface {
	// Start launches the ticker, replacing a running one.
	Start(ctx context.Context, interval time.Duration)
	// Run is Start with the configured interval.
	Run()
	Stop()
}
