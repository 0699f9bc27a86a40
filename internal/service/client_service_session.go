// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"time"

	"github.com/soletraderai/teachy-sub001/internal/logger"
	"github.com/soletraderai/teachy-sub001/internal/store"
	"github.com/soletraderai/teachy-sub001/internal/utils"
	"github.com/soletraderai/teachy-sub001/internal/validators"
	"github.com/soletraderai/teachy-sub001/models"
)

type clientSessionService struct {
	records     *store.RecordStore
	coordinator SyncCoordinator
	migration   MigrationDriver
	validator   validators.Validator
	ids         *utils.UUIDGenerator

	now    func() time.Time
	logger *logger.Logger
}

func NewClientSessionService(records *store.RecordStore, coordinator SyncCoordinator, migration MigrationDriver, logger *logger.Logger) ClientSessionService {
	return &clientSessionService{
		records:     records,
		coordinator: coordinator,
		migration:   migration,
		validator:   validators.NewSessionValidator(),
		ids:         utils.NewUUIDGenerator(),
		now:         time.Now,
		logger:      logger,
	}
}

// CreateSession fills in the id, creation time and initial status of draft
// when they are missing, stores it at the head of the list and makes it the
// current session. The remote write happens in the background.
//
// The draft is validated before the optimistic insert: a draft with neither
// title nor video url is rejected with ErrInvalidDataProvided and nothing is
// stored or queued. Once the draft passes, the insert itself cannot fail.
func (c *clientSessionService) CreateSession(ctx context.Context, draft models.Session) (models.Session, error) {
	session := draft.Clone()
	if session.ID == "" {
		session.ID = c.ids.Generate()
	}
	if session.CreatedAt == 0 {
		session.CreatedAt = c.now().UnixMilli()
	}
	if session.Status == "" {
		session.Status = models.StatusOverview
	}
	session.RemoteID = ""

	if err := c.validator.Validate(ctx, session); err != nil {
		return models.Session{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	created := c.records.Create(ctx, session)
	c.coordinator.OnCreate(ctx, created)
	return created, nil
}

func (c *clientSessionService) UpdateSession(ctx context.Context, id string, update models.SessionUpdate) (models.Session, error) {
	if err := c.validator.Validate(ctx, update); err != nil {
		return models.Session{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	return c.apply(ctx, id, update)
}

func (c *clientSessionService) DeleteSession(ctx context.Context, id string) error {
	removed, ok := c.records.Delete(ctx, id)
	if !ok {
		return ErrSessionNotFound
	}
	c.coordinator.OnDelete(ctx, removed)
	return nil
}

func (c *clientSessionService) GetSession(id string) (models.Session, bool) {
	return c.records.Get(id)
}

func (c *clientSessionService) ListSessions() []models.Session {
	return c.records.List()
}

func (c *clientSessionService) CurrentSession() (models.Session, bool) {
	return c.records.Current()
}

func (c *clientSessionService) SetCurrentSession(id string) bool {
	return c.records.SetCurrent(id)
}

// PauseSession stamps the pause time on the session's progress.
func (c *clientSessionService) PauseSession(ctx context.Context, id string) (models.Session, error) {
	session, ok := c.records.Get(id)
	if !ok {
		return models.Session{}, ErrSessionNotFound
	}
	if session.Progress.Paused() {
		return session, nil
	}

	progress := models.Progress{}
	if session.Progress != nil {
		progress = *session.Progress
	}
	pausedAt := c.now().UTC()
	progress.PausedAt = &pausedAt

	return c.apply(ctx, id, models.SessionUpdate{Progress: &progress})
}

// ResumeSession clears the pause and moves a session still in overview to
// active.
func (c *clientSessionService) ResumeSession(ctx context.Context, id string) (models.Session, error) {
	session, ok := c.records.Get(id)
	if !ok {
		return models.Session{}, ErrSessionNotFound
	}

	var update models.SessionUpdate
	if session.Progress.Paused() {
		progress := *session.Progress
		progress.PausedAt = nil
		update.Progress = &progress
	}
	if session.Status == models.StatusOverview {
		active := models.StatusActive
		update.Status = &active
	}
	if update.IsEmpty() {
		c.records.SetCurrent(id)
		return session, nil
	}

	resumed, err := c.apply(ctx, id, update)
	if err != nil {
		return models.Session{}, err
	}
	c.records.SetCurrent(id)
	return resumed, nil
}

// EndSessionEarly completes the session and logs the time spent on it.
func (c *clientSessionService) EndSessionEarly(ctx context.Context, id string) (models.Session, error) {
	session, ok := c.records.Get(id)
	if !ok {
		return models.Session{}, ErrSessionNotFound
	}

	completed := models.StatusCompleted
	ended, err := c.apply(ctx, id, models.SessionUpdate{Status: &completed, ClearProgress: true})
	if err != nil {
		return models.Session{}, err
	}

	commitment := models.Commitment{
		SessionID:         id,
		QuestionsAnswered: ended.QuestionsAnswered(),
	}
	if prev := session.Progress; prev != nil {
		commitment.MinutesSpent = int(prev.ElapsedSeconds / 60)
	}
	c.coordinator.LogCommitment(ctx, commitment)

	if current, ok := c.records.Current(); ok && current.ID == id {
		c.records.SetCurrent("")
	}
	return ended, nil
}

func (c *clientSessionService) SyncWithCloud(ctx context.Context) {
	c.coordinator.SyncWithCloud(ctx)
}

func (c *clientSessionService) RetryPendingSyncs(ctx context.Context) {
	c.coordinator.RetryPendingSyncs(ctx)
}

// MigrateLocalSessions uploads local-only sessions and pulls the remote
// snapshot back in, so migrated sessions reappear with their remote ids.
func (c *clientSessionService) MigrateLocalSessions(ctx context.Context) (models.MigrationResult, error) {
	result, err := c.migration.Migrate(ctx)
	if err != nil {
		return result, err
	}
	c.coordinator.SyncWithCloud(ctx)
	return result, nil
}

func (c *clientSessionService) GetPendingSyncCount() int {
	return c.coordinator.PendingCount()
}

func (c *clientSessionService) SyncState() models.SyncState {
	return c.coordinator.State()
}

func (c *clientSessionService) apply(ctx context.Context, id string, update models.SessionUpdate) (models.Session, error) {
	prev, next, ok := c.records.Update(ctx, id, update)
	if !ok {
		return models.Session{}, ErrSessionNotFound
	}
	c.coordinator.OnUpdate(ctx, update, prev, next)

	c.logger.Debug().
		Str("func", "*clientSessionService.apply").
		Str("session_id", id).
		Str("status", string(next.Status)).
		Msg("session updated")
	return next, nil
}
