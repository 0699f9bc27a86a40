// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/soletraderai/teachy-sub001/internal/adapter"
	"github.com/soletraderai/teachy-sub001/internal/logger"
	"github.com/soletraderai/teachy-sub001/internal/store"
	"github.com/soletraderai/teachy-sub001/internal/workers"
	"github.com/soletraderai/teachy-sub001/models"
	"golang.org/x/sync/singleflight"
)

// DefaultRetryCeiling is the number of failed attempts a pending write may
// accumulate before it is dropped.
const DefaultRetryCeiling = 3

const (
	taskCreate     = "create"
	taskUpdate     = "update"
	taskComplete   = "complete"
	taskDelete     = "delete"
	taskCommitment = "commitment"
)

type syncCoordinator struct {
	records *store.RecordStore
	queue   *store.SyncQueue
	gateway adapter.RemoteGateway
	auth    ClientAuthService
	kv      store.LocalKVRepository
	pool    *workers.Pool
	ceiling int

	passes   singleflight.Group
	inflight *tracker
	loopDone chan struct{}

	mu           sync.RWMutex
	started      bool
	isSyncing    bool
	lastSyncedAt *time.Time
	lastSyncErr  string

	now    func() time.Time
	logger *logger.Logger
}

// NewSyncCoordinator wires the record store to the remote gateway. Remote
// writes run on pool; Run must be called before they are applied.
func NewSyncCoordinator(
	records *store.RecordStore,
	gateway adapter.RemoteGateway,
	auth ClientAuthService,
	kv store.LocalKVRepository,
	pool *workers.Pool,
	ceiling int,
	logger *logger.Logger,
) SyncCoordinator {
	if ceiling <= 0 {
		ceiling = DefaultRetryCeiling
	}
	return &syncCoordinator{
		records:  records,
		queue:    records.Queue(),
		gateway:  gateway,
		auth:     auth,
		kv:       kv,
		pool:     pool,
		ceiling:  ceiling,
		inflight: newTracker(),
		loopDone: make(chan struct{}),
		now:      time.Now,
		logger:   logger,
	}
}

// Run implements workers.Worker. It starts the pool and the loop applying
// task results, and restores the last sync time.
func (c *syncCoordinator) Run() {
	c.mu.Lock()
	if c.started {
		c.mu.Unlock()
		return
	}
	c.started = true
	c.mu.Unlock()

	c.restoreLastSyncedAt(context.Background())
	c.pool.Run()
	go c.applyResults()
}

// Stop implements workers.Worker. Queued writes fail fast and are held
// pending, so they are retried on the next start.
func (c *syncCoordinator) Stop() {
	c.mu.Lock()
	if !c.started {
		c.started = true
		go c.applyResults()
	}
	c.mu.Unlock()

	c.pool.Stop()
	<-c.loopDone
}

func (c *syncCoordinator) Wait() {
	c.inflight.wait()
}

func (c *syncCoordinator) OnCreate(ctx context.Context, session models.Session) {
	if !c.auth.IsAuthenticated() {
		return
	}
	c.queue.ResetTerminal(ctx, session.ID)
	c.submitCreate(ctx, session, nil)
}

func (c *syncCoordinator) OnUpdate(ctx context.Context, update models.SessionUpdate, prev, next models.Session) {
	if !c.auth.IsAuthenticated() {
		return
	}
	c.queue.ResetTerminal(ctx, next.ID)

	id := next.ID
	key := next.RemoteKey()
	if models.Completes(prev, next) {
		final := models.FullUpdate(next)
		c.submit(ctx, workers.Task{
			Key:  id,
			Kind: taskComplete,
			Run: func(runCtx context.Context) error {
				if err := c.gateway.Update(runCtx, key, final); err != nil {
					return err
				}
				return c.gateway.Complete(runCtx, key)
			},
		}, c.writeDone(ctx, id, nil))
		return
	}

	// the task runs later on a pool goroutine; the caller may reuse update
	update = update.Clone()
	c.submit(ctx, workers.Task{
		Key:  id,
		Kind: taskUpdate,
		Run: func(runCtx context.Context) error {
			return c.gateway.Update(runCtx, key, update)
		},
	}, c.writeDone(ctx, id, nil))
}

func (c *syncCoordinator) OnDelete(ctx context.Context, removed models.Session) {
	if !c.auth.IsAuthenticated() {
		return
	}

	id := removed.ID
	key := removed.RemoteKey()
	c.submit(ctx, workers.Task{
		Key:  id,
		Kind: taskDelete,
		Run: func(runCtx context.Context) error {
			return c.gateway.Delete(runCtx, key)
		},
	}, func(err error) {
		if err != nil && !errors.Is(err, adapter.ErrNotFound) {
			c.logger.Err(err).Str("func", "*syncCoordinator.OnDelete").Str("session_id", id).Msg("remote delete failed")
		}
	})
}

func (c *syncCoordinator) LogCommitment(ctx context.Context, commitment models.Commitment) {
	if !c.auth.IsAuthenticated() {
		return
	}

	c.submit(ctx, workers.Task{
		Key:  commitment.SessionID,
		Kind: taskCommitment,
		Run: func(runCtx context.Context) error {
			return c.gateway.LogCommitment(runCtx, commitment)
		},
	}, func(err error) {
		if err != nil {
			c.logger.Debug().Err(err).Str("func", "*syncCoordinator.LogCommitment").Str("session_id", commitment.SessionID).Msg("commitment not logged")
		}
	})
}

func (c *syncCoordinator) RetryPendingSyncs(ctx context.Context) {
	_, _, _ = c.passes.Do("retry", func() (any, error) {
		c.retryPending(ctx)
		return nil, nil
	})
}

func (c *syncCoordinator) SyncWithCloud(ctx context.Context) {
	_, _, _ = c.passes.Do("sync", func() (any, error) {
		if err := c.syncWithCloud(ctx); err != nil {
			c.logger.Err(err).Str("func", "*syncCoordinator.SyncWithCloud").Msg("sync with remote store failed")
			c.mu.Lock()
			c.lastSyncErr = err.Error()
			c.mu.Unlock()
		}
		return nil, nil
	})
}

func (c *syncCoordinator) State() models.SyncState {
	c.mu.RLock()
	state := models.SyncState{
		IsSyncing:     c.isSyncing,
		LastSyncError: c.lastSyncErr,
	}
	if c.lastSyncedAt != nil {
		t := *c.lastSyncedAt
		state.LastSyncedAt = &t
	}
	c.mu.RUnlock()

	state.PendingSyncSessions = c.queue.PendingIDs()
	state.SyncErrors = c.queue.Errors()
	return state
}

func (c *syncCoordinator) PendingCount() int {
	return c.queue.PendingCount()
}

func (c *syncCoordinator) syncWithCloud(ctx context.Context) error {
	if !c.auth.IsAuthenticated() {
		return nil
	}

	c.setSyncing(true)
	defer c.setSyncing(false)

	remote, err := c.gateway.List(ctx)
	if err != nil {
		if errors.Is(err, adapter.ErrAuth) {
			c.auth.ForceLogout(ctx, err.Error())
		}
		return fmt.Errorf("%w: %w", ErrSyncFailed, err)
	}

	sessions := make([]models.Session, 0, len(remote))
	for _, r := range remote {
		s := r.Session
		s.RemoteID = r.RemoteID
		sessions = append(sessions, s)
	}
	merged := c.records.Reconcile(ctx, sessions, Reconcile)

	syncedAt := c.now().UTC()
	c.mu.Lock()
	c.lastSyncedAt = &syncedAt
	c.lastSyncErr = ""
	c.mu.Unlock()
	if err = c.kv.Set(ctx, store.KeyLastSyncedAt, syncedAt.Format(time.RFC3339Nano)); err != nil {
		c.logger.Err(err).Str("func", "*syncCoordinator.syncWithCloud").Msg("failed to persist last sync time")
	}

	c.logger.Info().
		Str("func", "*syncCoordinator.syncWithCloud").
		Int("remote", len(remote)).
		Int("merged", len(merged)).
		Msg("reconciled with remote store")

	c.RetryPendingSyncs(ctx)
	return nil
}

func (c *syncCoordinator) retryPending(ctx context.Context) {
	if !c.auth.IsAuthenticated() {
		return
	}

	pass := newTracker()
	for _, entry := range c.queue.Snapshot() {
		session, ok := c.records.Get(entry.SessionID)
		if !ok {
			c.queue.Remove(ctx, entry.SessionID)
			continue
		}
		pass.add()
		c.submitCreate(ctx, session, pass.done)
	}

	select {
	case <-pass.waitChan():
	case <-ctx.Done():
	}
}

// submitCreate issues a create-style write. The remote create is an upsert
// keyed by the session id, so it also heals a write lost in between.
func (c *syncCoordinator) submitCreate(ctx context.Context, session models.Session, after func()) {
	id := session.ID
	var remoteID string
	c.submit(ctx, workers.Task{
		Key:  id,
		Kind: taskCreate,
		Run: func(runCtx context.Context) error {
			var err error
			remoteID, err = c.gateway.Create(runCtx, session)
			return err
		},
	}, c.writeDone(ctx, id, func() {
		c.records.SetRemoteID(context.WithoutCancel(ctx), id, remoteID)
	}, after))
}

// writeDone returns the bookkeeping for a remote write of session id.
func (c *syncCoordinator) writeDone(ctx context.Context, id string, onSuccess func(), after ...func()) func(error) {
	ctx = context.WithoutCancel(ctx)
	return func(err error) {
		if err == nil {
			if onSuccess != nil {
				onSuccess()
			}
			c.markSyncSuccess(ctx, id)
		} else {
			c.markSyncFailed(ctx, id, err)
		}
		for _, fn := range after {
			if fn != nil {
				fn()
			}
		}
	}
}

func (c *syncCoordinator) markSyncSuccess(ctx context.Context, id string) {
	c.queue.MarkSuccess(ctx, id)
}

func (c *syncCoordinator) markSyncFailed(ctx context.Context, id string, err error) {
	cause := err.Error()
	log := c.logger.WithSession(id)

	switch {
	case errors.Is(err, context.Canceled), errors.Is(err, workers.ErrPoolStopped):
		c.queue.Hold(ctx, id, cause)

	case errors.Is(err, adapter.ErrValidation):
		if c.queue.Drop(ctx, id, cause) {
			log.Warn().Err(err).Str("func", "*syncCoordinator.markSyncFailed").Msg("remote store rejected session, write dropped")
		}

	case errors.Is(err, adapter.ErrAuth):
		if c.queue.Hold(ctx, id, cause) {
			log.Warn().Err(err).Str("func", "*syncCoordinator.markSyncFailed").Msg("credential rejected, write held")
		}
		c.auth.ForceLogout(ctx, cause)

	default:
		entry, outcome := c.queue.MarkFailed(ctx, id, cause, c.ceiling)
		switch outcome {
		case store.FailureDropped:
			log.Warn().Err(err).
				Str("func", "*syncCoordinator.markSyncFailed").
				Int("attempts", entry.Attempts).
				Msg("retry ceiling exceeded, write dropped")
		case store.FailureQueued:
			log.Info().Err(err).
				Str("func", "*syncCoordinator.markSyncFailed").
				Int("attempts", entry.Attempts).
				Msg("remote write failed, queued for retry")
		}
	}
}

// submit hands t to the pool. done runs on the result loop once the task
// finishes; a task the pool refuses is completed with ErrPoolStopped.
func (c *syncCoordinator) submit(ctx context.Context, t workers.Task, done func(error)) {
	t.Done = done
	c.inflight.add()
	if !c.pool.Submit(t) {
		c.logger.Debug().Str("func", "*syncCoordinator.submit").Str("session_id", t.Key).Str("kind", t.Kind).Msg("pool stopped, task refused")
		c.complete(t, workers.ErrPoolStopped)
	}
}

func (c *syncCoordinator) applyResults() {
	defer close(c.loopDone)
	for res := range c.pool.Results() {
		c.complete(res.Task, res.Err)
	}
}

func (c *syncCoordinator) complete(t workers.Task, err error) {
	defer c.inflight.done()
	if t.Done != nil {
		t.Done(err)
	}
}

func (c *syncCoordinator) setSyncing(v bool) {
	c.mu.Lock()
	c.isSyncing = v
	c.mu.Unlock()
}

func (c *syncCoordinator) restoreLastSyncedAt(ctx context.Context) {
	raw, err := c.kv.Get(ctx, store.KeyLastSyncedAt)
	if err != nil {
		if !errors.Is(err, store.ErrKeyNotFound) {
			c.logger.Err(err).Str("func", "*syncCoordinator.restoreLastSyncedAt").Msg("failed to read last sync time")
		}
		return
	}

	t, err := time.Parse(time.RFC3339Nano, raw)
	if err != nil {
		c.logger.Err(err).Str("func", "*syncCoordinator.restoreLastSyncedAt").Msg("bad last sync time")
		return
	}

	c.mu.Lock()
	c.lastSyncedAt = &t
	c.mu.Unlock()
}

// tracker counts outstanding tasks. Unlike sync.WaitGroup it allows add
// while another goroutine waits.
type tracker struct {
	mu   sync.Mutex
	n    int
	idle chan struct{}
}

func newTracker() *tracker {
	idle := make(chan struct{})
	close(idle)
	return &tracker{idle: idle}
}

func (t *tracker) add() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.n == 0 {
		t.idle = make(chan struct{})
	}
	t.n++
}

func (t *tracker) done() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.n--
	if t.n == 0 {
		close(t.idle)
	}
}

func (t *tracker) waitChan() <-chan struct{} {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.idle
}

func (t *tracker) wait() {
	<-t.waitChan()
}
